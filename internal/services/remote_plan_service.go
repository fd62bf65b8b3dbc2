package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripfit/internal/assets"
	"tripfit/internal/models/request_models"
	"tripfit/internal/models/response_models"
	"tripfit/pkg/utils"

	"go.uber.org/zap"
)

// RemotePlanService fulfills the same contract as LocalPlanService by
// delegating day and outfit generation to a generative-language backend.
// The backend output must match the document schema and the fixed asset
// catalogs exactly; anything else is surfaced as a backend failure with
// no fallback to local synthesis.
type RemotePlanService struct {
	generator utils.PlanGeneratorInterface
	catalog   *assets.Catalog
	logger    *zap.Logger
}

func NewRemotePlanService(generator utils.PlanGeneratorInterface, catalog *assets.Catalog, logger *zap.Logger) PlanServiceInterface {
	return &RemotePlanService{
		generator: generator,
		catalog:   catalog,
		logger:    logger,
	}
}

func (s *RemotePlanService) GeneratePlan(ctx context.Context, req request_models.PlanRequest) (*response_models.PlanDocument, error) {
	resolved := req.Resolve()

	s.logger.Info("requesting plan from backend",
		zap.String("city", resolved.City),
		zap.Int("days", resolved.Days),
	)

	content, err := s.generator.GeneratePlanJSON(ctx, s.buildPrompt(resolved))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, utils.ErrBackendResponseEmpty
	}

	if err := ValidatePlanJSON(content); err != nil {
		return nil, fmt.Errorf("%v: %w", err, utils.ErrBackendResponseUnparseable)
	}

	var doc response_models.PlanDocument
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("decode plan: %v: %w", err, utils.ErrBackendResponseUnparseable)
	}

	if err := ValidatePlanDocument(&doc, resolved, s.catalog); err != nil {
		return nil, fmt.Errorf("%v: %w", err, utils.ErrBackendResponseUnparseable)
	}

	return &doc, nil
}

func (s *RemotePlanService) buildPrompt(req request_models.ResolvedPlanRequest) string {
	slots := s.catalog.ForGender(req.Persona.Gender)

	var b strings.Builder
	fmt.Fprintf(&b, "You are planning a %d-day trip to %s starting %s for a %s traveler ",
		req.Days, req.City, req.DateStart.Format("2006-01-02"), req.Persona.Gender)
	fmt.Fprintf(&b, "(style: %s, budget: %s, walk intensity: %s).\n\n",
		strings.Join(req.Persona.StyleKeywords, ", "), req.Persona.BudgetLevel, req.Persona.WalkIntensity)

	b.WriteString("Return **JSON only**, no markdown, matching this JSON Schema exactly:\n")
	b.WriteString(planDocumentSchema)
	b.WriteString("\n\nHard constraints:\n")
	fmt.Fprintf(&b, "- Exactly %d entries in trip.days, day_index 1..%d, dates consecutive from %s.\n",
		req.Days, req.Days, req.DateStart.Format("2006-01-02"))
	fmt.Fprintf(&b, "- Every outfit item image must be \"%s/<filename>\" using only these filenames:\n", slots.Folder)
	fmt.Fprintf(&b, "  jackets: %s\n", strings.Join(slots.Jackets, ", "))
	fmt.Fprintf(&b, "  tops: %s\n", strings.Join(slots.Tops, ", "))
	fmt.Fprintf(&b, "  bottoms: %s\n", strings.Join(slots.Bottoms, ", "))
	if len(slots.Dresses) > 0 {
		fmt.Fprintf(&b, "  dresses (bottom slot on dress days): %s\n", strings.Join(slots.Dresses, ", "))
	}
	fmt.Fprintf(&b, "  bags: %s\n", strings.Join(slots.Bags, ", "))
	fmt.Fprintf(&b, "  shoes: %s\n", strings.Join(slots.Shoes, ", "))
	b.WriteString("- On dress days keep the top slot with image \"\" and explain the omission in its copy.\n")
	b.WriteString("- meta must echo the resolved request values given above.\n")

	return b.String()
}
