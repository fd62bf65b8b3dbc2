package services

import (
	"context"
	"fmt"

	"tripfit/internal/assets"
	"tripfit/internal/models/request_models"
	"tripfit/internal/models/response_models"

	"go.uber.org/zap"
)

type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, req request_models.PlanRequest) (*response_models.PlanDocument, error)
}

// LocalPlanService synthesizes the plan document from the fixed catalogs
// and templates. Output depends only on the resolved request; two calls
// with the same input produce identical documents.
type LocalPlanService struct {
	catalog   *assets.Catalog
	templates *assets.Templates
	logger    *zap.Logger
}

func NewLocalPlanService(catalog *assets.Catalog, templates *assets.Templates, logger *zap.Logger) PlanServiceInterface {
	return &LocalPlanService{
		catalog:   catalog,
		templates: templates,
		logger:    logger,
	}
}

var weekdayNames = [7]string{
	"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY",
}

func (s *LocalPlanService) GeneratePlan(_ context.Context, req request_models.PlanRequest) (*response_models.PlanDocument, error) {
	resolved := req.Resolve()

	s.logger.Info("synthesizing plan",
		zap.String("city", resolved.City),
		zap.Int("days", resolved.Days),
		zap.String("gender", resolved.Persona.Gender),
	)

	days := make([]response_models.DayPlan, 0, resolved.Days)
	for offset := 0; offset < resolved.Days; offset++ {
		days = append(days, s.buildDay(resolved, offset))
	}

	return &response_models.PlanDocument{
		Meta: response_models.Meta{
			City:      resolved.City,
			Days:      resolved.Days,
			DateStart: resolved.DateStart.Format("2006-01-02"),
			Persona: response_models.PersonaMeta{
				Gender:        resolved.Persona.Gender,
				StyleKeywords: resolved.Persona.StyleKeywords,
				BudgetLevel:   resolved.Persona.BudgetLevel,
				WalkIntensity: resolved.Persona.WalkIntensity,
			},
		},
		Trip: response_models.Trip{
			Title:    resolved.City + " 行程与穿搭",
			Subtitle: fmt.Sprintf("%d 日旅行 · Outfit Plan", resolved.Days),
			Days:     days,
		},
	}, nil
}

func (s *LocalPlanService) buildDay(req request_models.ResolvedPlanRequest, offset int) response_models.DayPlan {
	// Calendar arithmetic only; date_start carries no time-of-day and no
	// timezone, so AddDate handles month and year rollover.
	date := req.DateStart.AddDate(0, 0, offset)

	return response_models.DayPlan{
		DayIndex:    offset + 1,
		Date:        date.Format("2006-01-02"),
		WeekdayEN:   weekdayNames[date.Weekday()],
		DateDisplay: fmt.Sprintf("%d月%d日", int(date.Month()), date.Day()),
		Area:        s.templates.Area,
		Headline:    s.headline(offset + 1),
		OneLiner:    s.templates.OneLiner,
		Schedule:    s.buildSchedule(req.City),
		Outfit:      s.buildOutfit(req, offset),
	}
}

func (s *LocalPlanService) headline(dayIndex int) string {
	switch dayIndex {
	case 1:
		return s.templates.HeadlineDay1
	case 2:
		return s.templates.HeadlineDay2
	default:
		return s.templates.HeadlineLater
	}
}

func (s *LocalPlanService) buildSchedule(city string) []response_models.ScheduleBlock {
	blocks := make([]response_models.ScheduleBlock, 0, len(s.templates.Schedule))
	for _, t := range s.templates.Schedule {
		blocks = append(blocks, response_models.ScheduleBlock{
			TimeRange: t.TimeRange,
			Spot:      t.Spot,
			MapQuery:  city + t.QuerySuffix,
			WhatToDo:  t.WhatToDo,
			Notes:     t.Notes,
		})
	}
	return blocks
}

func (s *LocalPlanService) buildOutfit(req request_models.ResolvedPlanRequest, offset int) response_models.OutfitPlan {
	slots := s.catalog.ForGender(req.Persona.Gender)
	walkZH := s.templates.WalkIntensityZH[req.Persona.WalkIntensity]

	// Dress days: female persona, every second day starting from offset 1.
	dressDay := req.Persona.Gender == "female" && offset%2 == 1

	jacket := assets.Pick(slots.Jackets, offset)
	bag := assets.Pick(slots.Bags, offset)
	shoes := assets.Pick(slots.Shoes, offset)

	items := []response_models.OutfitItem{
		{
			Slot:          "jacket",
			Image:         slots.Folder + "/" + jacket,
			DisplayNameZH: "外套",
			Copy:          fmt.Sprintf("白天进出地标与博物馆，室内外温差明显，轻外套方便穿脱；今日步行强度%s。", walkZH),
		},
	}

	if dressDay {
		dress := assets.Pick(slots.Dresses, offset)
		items = append(items,
			response_models.OutfitItem{
				Slot:          "top",
				Image:         "",
				DisplayNameZH: "上衣",
				Copy:          "今日选择连衣裙，一件成型，无需单独上衣。",
			},
			response_models.OutfitItem{
				Slot:          "bottom",
				Image:         slots.Folder + "/" + dress,
				DisplayNameZH: "连衣裙",
				Copy:          "连衣裙在市集与展馆之间切换自如，傍晚降温时叠穿外套即可。",
			},
		)
	} else {
		top := assets.Pick(slots.Tops, offset)
		bottom := assets.Pick(slots.Bottoms, offset)
		items = append(items,
			response_models.OutfitItem{
				Slot:          "top",
				Image:         slots.Folder + "/" + top,
				DisplayNameZH: "上衣",
				Copy:          fmt.Sprintf("亲肤透气的百搭上衣，%s强度的全天步行也不闷热。", walkZH),
			},
			response_models.OutfitItem{
				Slot:          "bottom",
				Image:         slots.Folder + "/" + bottom,
				DisplayNameZH: "下装",
				Copy:          "耐走不易皱，长时间步行与乘车久坐交替也保持利落。",
			},
		)
	}

	items = append(items,
		response_models.OutfitItem{
			Slot:          "bag",
			Image:         slots.Folder + "/" + bag,
			DisplayNameZH: "包袋",
			Copy:          fmt.Sprintf("装得下水和相机，斜挎解放双手，适合%s强度的步行日。", walkZH),
		},
		response_models.OutfitItem{
			Slot:          "shoes",
			Image:         slots.Folder + "/" + shoes,
			DisplayNameZH: "鞋子",
			Copy:          "缓震耐走，从地标、市集到博物馆全程舒适。",
		},
	)

	return response_models.OutfitPlan{
		Theme:      s.templates.OutfitTheme,
		TitleZH:    s.templates.OutfitTitleZH,
		SubtitleEN: s.templates.OutfitSubtitle,
		HeroImages: response_models.HeroImages{
			Left:  response_models.AssetRef{Name: jacket},
			Right: response_models.AssetRef{Name: bag},
		},
		Items: items,
		ImageCard: response_models.ImageCard{
			HeaderZH: s.templates.CardHeaderZH,
			HeaderEN: s.templates.CardHeaderEN,
			Caption:  fmt.Sprintf("Day %d · %s", offset+1, s.templates.OutfitTheme),
			Layout:   s.templates.CardLayout,
		},
	}
}
