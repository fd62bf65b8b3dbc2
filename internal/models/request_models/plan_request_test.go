package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Days(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"in range", `{"days": 3}`, 3},
		{"below range clamps to 1", `{"days": 0}`, 1},
		{"negative clamps to 1", `{"days": -4}`, 1},
		{"above range clamps to 7", `{"days": 10}`, 7},
		{"numeric string accepted", `{"days": "5"}`, 5},
		{"non-numeric defaults to 2", `{"days": "a week"}`, 2},
		{"absent defaults to 2", `{}`, 2},
		{"null defaults to 2", `{"days": null}`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req PlanRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, req.Resolve().Days)
		})
	}
}

func TestResolve_CityAndDate(t *testing.T) {
	t.Run("empty city gets placeholder", func(t *testing.T) {
		resolved := PlanRequest{City: "  "}.Resolve()
		assert.Equal(t, DefaultCity, resolved.City)
	})

	t.Run("city passes through verbatim", func(t *testing.T) {
		resolved := PlanRequest{City: "Paris"}.Resolve()
		assert.Equal(t, "Paris", resolved.City)
	})

	t.Run("valid date parses", func(t *testing.T) {
		resolved := PlanRequest{DateStart: "2026-03-18"}.Resolve()
		assert.Equal(t, "2026-03-18", resolved.DateStart.Format("2006-01-02"))
	})

	t.Run("invalid date falls back to default", func(t *testing.T) {
		for _, raw := range []string{"", "next week", "2026-13-99", "18/03/2026"} {
			resolved := PlanRequest{DateStart: raw}.Resolve()
			assert.Equal(t, DefaultDateStart, resolved.DateStart.Format("2006-01-02"), "input %q", raw)
		}
	})
}

func TestResolve_Persona(t *testing.T) {
	t.Run("absent persona gets full defaults", func(t *testing.T) {
		p := PlanRequest{}.Resolve().Persona
		assert.Equal(t, "female", p.Gender)
		assert.Equal(t, DefaultStyleKeywords, p.StyleKeywords)
		assert.Equal(t, "mid", p.BudgetLevel)
		assert.Equal(t, "medium", p.WalkIntensity)
	})

	t.Run("gender normalizes to male or female", func(t *testing.T) {
		tests := map[string]string{
			"male":    "male",
			"MALE":    "male",
			"female":  "female",
			"other":   "female",
			"":        "female",
			"unknown": "female",
		}
		for in, want := range tests {
			p := PlanRequest{Persona: &Persona{Gender: in}}.Resolve().Persona
			assert.Equal(t, want, p.Gender, "gender %q", in)
		}
	})

	t.Run("budget level is always forced to mid", func(t *testing.T) {
		p := PlanRequest{Persona: &Persona{BudgetLevel: "luxury"}}.Resolve().Persona
		assert.Equal(t, "mid", p.BudgetLevel)
	})

	t.Run("walk intensity defaults and validates", func(t *testing.T) {
		tests := map[string]string{
			"low":     "low",
			"high":    "high",
			"medium":  "medium",
			"":        "medium",
			"extreme": "medium",
		}
		for in, want := range tests {
			p := PlanRequest{Persona: &Persona{WalkIntensity: in}}.Resolve().Persona
			assert.Equal(t, want, p.WalkIntensity, "intensity %q", in)
		}
	})

	t.Run("style keywords kept when provided", func(t *testing.T) {
		p := PlanRequest{Persona: &Persona{StyleKeywords: []string{"street"}}}.Resolve().Persona
		assert.Equal(t, []string{"street"}, p.StyleKeywords)
	})
}
