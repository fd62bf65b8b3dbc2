package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripfit/internal/assets"
	"tripfit/internal/models/request_models"
	"tripfit/internal/models/response_models"
	"tripfit/internal/services"
	"tripfit/pkg/middleware"
	"tripfit/pkg/utils"
)

type stubPlanService struct {
	err error
}

func (s *stubPlanService) GeneratePlan(ctx context.Context, req request_models.PlanRequest) (*response_models.PlanDocument, error) {
	if s.err != nil {
		return nil, s.err
	}
	local := services.NewLocalPlanService(assets.DefaultCatalog(), assets.DefaultTemplates(), zap.NewNop())
	return local.GeneratePlan(ctx, req)
}

func newTestRouter(svc services.PlanServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	controller := NewPlanController(svc, zap.NewNop())
	api := r.Group("/api")
	api.POST("/plan", controller.CreatePlanHandler)
	api.OPTIONS("/plan", func(c *gin.Context) {})
	return r
}

func TestCreatePlanHandler_Success(t *testing.T) {
	router := newTestRouter(&stubPlanService{})

	body := `{"city":"Paris","days":2,"date_start":"2026-03-18","persona":{"gender":"female"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	var doc response_models.PlanDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Paris", doc.Meta.City)
	assert.Len(t, doc.Trip.Days, 2)
	assert.Equal(t, "2026-03-18", doc.Trip.Days[0].Date)
}

func TestCreatePlanHandler_InvalidBody(t *testing.T) {
	router := newTestRouter(&stubPlanService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader("not json {{{"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// The reference system reports undecodable bodies with 500, not 4xx.
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp utils.PlanErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, utils.KindRequestBodyInvalid, resp.Error)
	assert.NotEmpty(t, resp.Message)
}

func TestCreatePlanHandler_ServiceFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind string
	}{
		{"missing credential", utils.ErrConfigurationMissing, utils.KindConfigurationMissing},
		{"backend call failed", utils.ErrBackendCallFailed, utils.KindBackendCallFailed},
		{"backend empty", utils.ErrBackendResponseEmpty, utils.KindBackendResponseEmpty},
		{"backend unparseable", utils.ErrBackendResponseUnparseable, utils.KindBackendResponseUnparseable},
		{"generation failed", utils.ErrGenerationFailed, utils.KindGenerationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubPlanService{err: tt.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(`{"days":1}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

			var resp utils.PlanErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantKind, resp.Error)
		})
	}
}

func TestPlanPreflight(t *testing.T) {
	router := newTestRouter(&stubPlanService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/plan", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
}
