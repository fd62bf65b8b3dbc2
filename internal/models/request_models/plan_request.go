package request_models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultCity      = "目的地"
	DefaultDays      = 2
	DefaultDateStart = "2026-03-18"
	MinDays          = 1
	MaxDays          = 7
)

var DefaultStyleKeywords = []string{"时尚", "经典", "休闲"}

type PlanRequest struct {
	City      string   `json:"city"`
	Days      FlexDays `json:"days"`
	DateStart string   `json:"date_start"`
	Persona   *Persona `json:"persona"`
}

type Persona struct {
	Gender        string   `json:"gender"`
	StyleKeywords []string `json:"style_keywords"`
	BudgetLevel   string   `json:"budget_level"`
	WalkIntensity string   `json:"walk_intensity"`
}

// FlexDays accepts a JSON number, a numeric string, or anything else.
// Non-numeric input is treated as absent rather than rejected, so the
// request as a whole still decodes and the default day count applies.
type FlexDays struct {
	Value int
	Set   bool
}

func (d *FlexDays) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Set = false
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		d.Value = int(n)
		d.Set = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			d.Value = int(f)
			d.Set = true
			return nil
		}
	}
	d.Set = false
	return nil
}

func (d FlexDays) MarshalJSON() ([]byte, error) {
	if !d.Set {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value)
}

// ResolvedPlanRequest carries only defaulted values. Synthesis never sees
// a raw PlanRequest.
type ResolvedPlanRequest struct {
	City      string
	Days      int
	DateStart time.Time
	Persona   ResolvedPersona
}

type ResolvedPersona struct {
	Gender        string
	StyleKeywords []string
	BudgetLevel   string
	WalkIntensity string
}

// Resolve normalizes every field of the request. Malformed input is
// defaulted, never rejected: day counts clamp into [1,7], unknown genders
// become "female", the budget tier is always "mid".
func (r PlanRequest) Resolve() ResolvedPlanRequest {
	city := strings.TrimSpace(r.City)
	if city == "" {
		city = DefaultCity
	}

	days := DefaultDays
	if r.Days.Set {
		days = r.Days.Value
		if days < MinDays {
			days = MinDays
		}
		if days > MaxDays {
			days = MaxDays
		}
	}

	start, err := time.Parse("2006-01-02", strings.TrimSpace(r.DateStart))
	if err != nil {
		start, _ = time.Parse("2006-01-02", DefaultDateStart)
	}

	return ResolvedPlanRequest{
		City:      city,
		Days:      days,
		DateStart: start,
		Persona:   resolvePersona(r.Persona),
	}
}

func resolvePersona(p *Persona) ResolvedPersona {
	resolved := ResolvedPersona{
		Gender:        "female",
		StyleKeywords: DefaultStyleKeywords,
		BudgetLevel:   "mid",
		WalkIntensity: "medium",
	}
	if p == nil {
		return resolved
	}
	if strings.ToLower(strings.TrimSpace(p.Gender)) == "male" {
		resolved.Gender = "male"
	}
	if len(p.StyleKeywords) > 0 {
		resolved.StyleKeywords = p.StyleKeywords
	}
	switch strings.ToLower(strings.TrimSpace(p.WalkIntensity)) {
	case "low":
		resolved.WalkIntensity = "low"
	case "high":
		resolved.WalkIntensity = "high"
	}
	return resolved
}
