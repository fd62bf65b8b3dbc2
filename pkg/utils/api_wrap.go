package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlanErrorResponse is the uniform failure body. The reference frontend
// expects this exact shape, including the 500 status for malformed
// request bodies.
type PlanErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

const (
	KindConfigurationMissing       = "CONFIGURATION_MISSING"
	KindRequestBodyInvalid         = "REQUEST_BODY_INVALID"
	KindBackendCallFailed          = "BACKEND_CALL_FAILED"
	KindBackendResponseEmpty       = "BACKEND_RESPONSE_EMPTY"
	KindBackendResponseUnparseable = "BACKEND_RESPONSE_UNPARSEABLE"
	KindGenerationFailed           = "PLAN_GENERATION_FAILED"
)

func RespondPlan(c *gin.Context, doc interface{}) {
	c.JSON(http.StatusOK, doc)
}

func RespondPlanError(c *gin.Context, kind, message string) {
	c.JSON(http.StatusInternalServerError, PlanErrorResponse{
		Error:   kind,
		Message: message,
	})
}

// HandlePlanError converts a service failure into the uniform error body.
// Every kind is reported with status 500; generation is all-or-nothing,
// so no partial document ever accompanies an error.
func HandlePlanError(c *gin.Context, logger *zap.Logger, err error) {
	traceID := c.GetString("trace_id")

	kind := KindGenerationFailed
	switch {
	case errors.Is(err, ErrConfigurationMissing):
		kind = KindConfigurationMissing
	case errors.Is(err, ErrRequestBodyInvalid):
		kind = KindRequestBodyInvalid
	case errors.Is(err, ErrBackendCallFailed):
		kind = KindBackendCallFailed
	case errors.Is(err, ErrBackendResponseEmpty):
		kind = KindBackendResponseEmpty
	case errors.Is(err, ErrBackendResponseUnparseable):
		kind = KindBackendResponseUnparseable
	}

	logger.Error("plan request failed",
		zap.String("trace_id", traceID),
		zap.String("kind", kind),
		zap.Error(err),
	)
	RespondPlanError(c, kind, err.Error())
}
