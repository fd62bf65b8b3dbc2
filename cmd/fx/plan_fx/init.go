package plan_fx

import (
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripfit/internal/api/controllers"
	"tripfit/internal/assets"
	"tripfit/internal/services"
	"tripfit/pkg/utils"
)

var Module = fx.Provide(
	ProvideCatalog,
	ProvideTemplates,
	ProvidePlanService,
	ProvidePlanController,
)

func ProvideCatalog() *assets.Catalog {
	return assets.DefaultCatalog()
}

func ProvideTemplates() *assets.Templates {
	return assets.DefaultTemplates()
}

// ProvidePlanService selects the generator by PLAN_BACKEND. The local
// deterministic synthesizer is the default; "gemini" and "openai" switch
// to the remote schema-constrained variant. A missing API key is not
// fatal here — the remote client reports it per request.
func ProvidePlanService(
	catalog *assets.Catalog,
	templates *assets.Templates,
	logger *zap.Logger,
) (services.PlanServiceInterface, error) {
	backend := getEnvWithDefault("PLAN_BACKEND", "local")

	switch strings.ToLower(backend) {
	case "local":
		return services.NewLocalPlanService(catalog, templates, logger), nil
	case "gemini":
		generator, err := utils.NewPlanGenerator("gemini", os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			return nil, err
		}
		return services.NewRemotePlanService(generator, catalog, logger), nil
	case "openai":
		generator, err := utils.NewPlanGenerator("openai", os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
		if err != nil {
			return nil, err
		}
		return services.NewRemotePlanService(generator, catalog, logger), nil
	default:
		logger.Warn("unknown PLAN_BACKEND, using local synthesizer", zap.String("backend", backend))
		return services.NewLocalPlanService(catalog, templates, logger), nil
	}
}

func ProvidePlanController(
	planService services.PlanServiceInterface,
	logger *zap.Logger,
) *controllers.PlanController {
	return controllers.NewPlanController(planService, logger)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
