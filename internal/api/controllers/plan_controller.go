package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripfit/internal/models/request_models"
	"tripfit/internal/services"
	"tripfit/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
	logger      *zap.Logger
}

func NewPlanController(planService services.PlanServiceInterface, logger *zap.Logger) *PlanController {
	return &PlanController{
		planService: planService,
		logger:      logger,
	}
}

// CreatePlanHandler serves POST /api/plan. Malformed field values are
// defaulted during resolution; only a body that does not decode at all
// fails, and it is reported with status 500 to match the reference
// behavior (not 4xx).
func (p *PlanController) CreatePlanHandler(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandlePlanError(c, p.logger, fmt.Errorf("%v: %w", err, utils.ErrRequestBodyInvalid))
		return
	}

	doc, err := p.planService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandlePlanError(c, p.logger, err)
		return
	}

	utils.RespondPlan(c, doc)
}
