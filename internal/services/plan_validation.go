package services

import (
	"fmt"
	"strings"

	"tripfit/internal/assets"
	"tripfit/internal/models/request_models"
	"tripfit/internal/models/response_models"

	"github.com/xeipuuv/gojsonschema"
)

// planDocumentSchema is the machine-checkable contract sent to the
// generative backend and enforced on its output. It mirrors the
// response_models types.
const planDocumentSchema = `{
  "type": "object",
  "required": ["meta", "trip"],
  "properties": {
    "meta": {
      "type": "object",
      "required": ["city", "days", "date_start", "persona"],
      "properties": {
        "city": {"type": "string"},
        "days": {"type": "integer", "minimum": 1, "maximum": 7},
        "date_start": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
        "persona": {
          "type": "object",
          "required": ["gender", "style_keywords", "budget_level", "walk_intensity"],
          "properties": {
            "gender": {"type": "string", "enum": ["female", "male"]},
            "style_keywords": {"type": "array", "items": {"type": "string"}},
            "budget_level": {"type": "string"},
            "walk_intensity": {"type": "string", "enum": ["low", "medium", "high"]}
          }
        }
      }
    },
    "trip": {
      "type": "object",
      "required": ["title", "subtitle", "days"],
      "properties": {
        "title": {"type": "string"},
        "subtitle": {"type": "string"},
        "days": {
          "type": "array",
          "minItems": 1,
          "items": {
            "type": "object",
            "required": ["day_index", "date", "weekday_en", "schedule", "outfit"],
            "properties": {
              "day_index": {"type": "integer", "minimum": 1},
              "date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
              "weekday_en": {"type": "string"},
              "schedule": {
                "type": "array",
                "minItems": 1,
                "items": {
                  "type": "object",
                  "required": ["time_range", "spot", "map_query", "what_to_do"],
                  "properties": {
                    "time_range": {"type": "string"},
                    "spot": {"type": "string"},
                    "map_query": {"type": "string"},
                    "what_to_do": {"type": "array", "items": {"type": "string"}}
                  }
                }
              },
              "outfit": {
                "type": "object",
                "required": ["theme", "items"],
                "properties": {
                  "theme": {"type": "string"},
                  "items": {
                    "type": "array",
                    "minItems": 4,
                    "items": {
                      "type": "object",
                      "required": ["slot", "image"],
                      "properties": {
                        "slot": {"type": "string", "enum": ["jacket", "top", "bottom", "bag", "shoes"]},
                        "image": {"type": "string"}
                      }
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

// ValidatePlanJSON checks raw backend output against the document schema
// before it is decoded into typed models.
func ValidatePlanJSON(content string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(planDocumentSchema),
		gojsonschema.NewStringLoader(content),
	)
	if err != nil {
		return fmt.Errorf("schema check: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("schema violations: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// ValidatePlanDocument enforces the invariants the schema cannot express:
// day count matches the request, dates and indices advance correctly,
// the dress rule holds per day, and every asset reference resolves to
// the fixed catalog for its slot and gender. Violations are reported,
// never repaired.
func ValidatePlanDocument(doc *response_models.PlanDocument, req request_models.ResolvedPlanRequest, catalog *assets.Catalog) error {
	if len(doc.Trip.Days) != req.Days {
		return fmt.Errorf("expected %d days, got %d", req.Days, len(doc.Trip.Days))
	}

	slots := catalog.ForGender(req.Persona.Gender)
	for i, day := range doc.Trip.Days {
		if day.DayIndex != i+1 {
			return fmt.Errorf("day %d has day_index %d", i+1, day.DayIndex)
		}
		wantDate := req.DateStart.AddDate(0, 0, i).Format("2006-01-02")
		if day.Date != wantDate {
			return fmt.Errorf("day %d: expected date %s, got %s", i+1, wantDate, day.Date)
		}
		dressDay := req.Persona.Gender == "female" && i%2 == 1
		for _, item := range day.Outfit.Items {
			if err := validateOutfitItem(item, slots, dressDay); err != nil {
				return fmt.Errorf("day %d: %w", i+1, err)
			}
		}
	}
	return nil
}

func validateOutfitItem(item response_models.OutfitItem, slots *assets.SlotCatalog, dressDay bool) error {
	if item.Slot == "top" {
		// Dress days omit the top asset; every other day must carry one.
		if dressDay {
			if item.Image != "" {
				return fmt.Errorf("top slot must stay empty on a dress day, got %q", item.Image)
			}
			return nil
		}
	}
	if item.Image == "" {
		return fmt.Errorf("slot %s has no asset reference", item.Slot)
	}

	folder, name, ok := strings.Cut(item.Image, "/")
	if !ok || folder != slots.Folder {
		return fmt.Errorf("slot %s: asset %q not under %s/", item.Slot, item.Image, slots.Folder)
	}

	var list []string
	switch item.Slot {
	case "jacket":
		list = slots.Jackets
	case "top":
		list = slots.Tops
	case "bottom":
		// Dress days put a one-piece in the bottom slot instead.
		if dressDay {
			if !assets.Contains(slots.Dresses, name) {
				return fmt.Errorf("bottom slot must reference a dress on a dress day, got %q", name)
			}
			return nil
		}
		list = slots.Bottoms
	case "bag":
		list = slots.Bags
	case "shoes":
		list = slots.Shoes
	default:
		return fmt.Errorf("unknown slot %q", item.Slot)
	}

	if !assets.Contains(list, name) {
		return fmt.Errorf("slot %s: %q is not in the catalog", item.Slot, name)
	}
	return nil
}
