package assets

// ScheduleTemplate is one block of the fixed daily schedule. MapQuery is
// composed at synthesis time from the city plus QuerySuffix.
type ScheduleTemplate struct {
	TimeRange   string
	Spot        string
	QuerySuffix string
	WhatToDo    []string
	Notes       string
}

// Templates holds the non-asset reference data: the three-block daily
// schedule, the day headline lookup and the outfit presentation strings.
// Like the catalog it is built once and shared read-only.
type Templates struct {
	Schedule        []ScheduleTemplate
	HeadlineDay1    string
	HeadlineDay2    string
	HeadlineLater   string
	OneLiner        string
	Area            string
	OutfitTheme     string
	OutfitTitleZH   string
	OutfitSubtitle  string
	CardHeaderZH    string
	CardHeaderEN    string
	CardLayout      string
	WalkIntensityZH map[string]string
}

func DefaultTemplates() *Templates {
	return &Templates{
		Schedule: []ScheduleTemplate{
			{
				TimeRange: "09:00-12:00",
				Spot:      "城市地标",
				WhatToDo:  []string{"拍照", "散步"},
				Notes:     "适合轻松出行",
			},
			{
				TimeRange:   "12:30-15:00",
				Spot:        "本地市集",
				QuerySuffix: " market",
				WhatToDo:    []string{"逛市集", "尝小吃"},
				Notes:       "午后人流较多，注意随身物品",
			},
			{
				TimeRange:   "15:30-18:00",
				Spot:        "城市博物馆",
				QuerySuffix: " museum",
				WhatToDo:    []string{"看展", "小憩"},
				Notes:       "室内行程，天气不佳也适用",
			},
		},
		HeadlineDay1:   "城市漫步",
		HeadlineDay2:   "街巷探索",
		HeadlineLater:  "自在慢游",
		OneLiner:       "轻松探索城市风景",
		Area:           "市中心",
		OutfitTheme:    "city chic",
		OutfitTitleZH:  "城市轻搭",
		OutfitSubtitle: "City Casual",
		CardHeaderZH:   "今日穿搭",
		CardHeaderEN:   "OUTFIT OF THE DAY",
		CardLayout:     "hero-2x2",
		WalkIntensityZH: map[string]string{
			"low":    "较低",
			"medium": "中等",
			"high":   "较高",
		},
	}
}
