package response_models

type PlanDocument struct {
	Meta Meta `json:"meta"`
	Trip Trip `json:"trip"`
}

// Meta echoes the resolved request parameters. Fields always carry
// defaulted values, never the raw input.
type Meta struct {
	City      string      `json:"city"`
	Days      int         `json:"days"`
	DateStart string      `json:"date_start"`
	Persona   PersonaMeta `json:"persona"`
}

type PersonaMeta struct {
	Gender        string   `json:"gender"`
	StyleKeywords []string `json:"style_keywords"`
	BudgetLevel   string   `json:"budget_level"`
	WalkIntensity string   `json:"walk_intensity"`
}

type Trip struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Days     []DayPlan `json:"days"`
}

type DayPlan struct {
	DayIndex    int             `json:"day_index"`
	Date        string          `json:"date"`
	WeekdayEN   string          `json:"weekday_en"`
	DateDisplay string          `json:"date_display"`
	Area        string          `json:"area"`
	Headline    string          `json:"headline"`
	OneLiner    string          `json:"one_liner"`
	Schedule    []ScheduleBlock `json:"schedule"`
	Outfit      OutfitPlan      `json:"outfit"`
}

type ScheduleBlock struct {
	TimeRange string   `json:"time_range"`
	Spot      string   `json:"spot"`
	MapQuery  string   `json:"map_query"`
	WhatToDo  []string `json:"what_to_do"`
	Notes     string   `json:"notes"`
}

type OutfitPlan struct {
	Theme      string       `json:"theme"`
	TitleZH    string       `json:"title_zh"`
	SubtitleEN string       `json:"subtitle_en"`
	HeroImages HeroImages   `json:"hero_images"`
	Items      []OutfitItem `json:"items"`
	ImageCard  ImageCard    `json:"image_card"`
}

type HeroImages struct {
	Left  AssetRef `json:"left"`
	Right AssetRef `json:"right"`
}

type AssetRef struct {
	Name string `json:"name"`
}

// OutfitItem is one garment slot. On dress days the top slot stays in the
// list with an empty Image and a rationale explaining the omission.
type OutfitItem struct {
	Slot          string `json:"slot"`
	Image         string `json:"image"`
	DisplayNameZH string `json:"display_name_zh"`
	Copy          string `json:"copy"`
}

// ImageCard is presentation-only data for the frontend outfit banner.
type ImageCard struct {
	HeaderZH string `json:"header_zh"`
	HeaderEN string `json:"header_en"`
	Caption  string `json:"caption"`
	Layout   string `json:"layout"`
}
