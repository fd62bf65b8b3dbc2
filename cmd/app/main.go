package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"os"
	"tripfit/cmd/fx/logger_fx"
	"tripfit/cmd/fx/plan_fx"
	"tripfit/internal/api/controllers"
	"tripfit/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		logger_fx.Module,
		plan_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return logger.Sync()
		},
	})
}

func ProvideRouter(planController *controllers.PlanController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController)

	return r
}

func RegisterRoutes(r *gin.Engine, planController *controllers.PlanController) {
	api := r.Group("/api")
	api.POST("/plan", planController.CreatePlanHandler)
	// Preflight is short-circuited by the CORS middleware; the route only
	// keeps gin from answering 404 for OPTIONS.
	api.OPTIONS("/plan", func(c *gin.Context) {})
}
