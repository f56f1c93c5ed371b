package main

import (
	"context"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"routediscovery/cmd/fx/configfx"
	"routediscovery/cmd/fx/controllersfx"
	"routediscovery/cmd/fx/poisfx"
	"routediscovery/cmd/fx/stravafx"
	"routediscovery/internal/api/controllers"
	"routediscovery/internal/services"
	"routediscovery/pkg/config"
	"routediscovery/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		configfx.Module,
		stravafx.Module,
		poisfx.Module,
		controllersfx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func ProvideRouter(
	cfg *config.Config,
	log zerolog.Logger,
	tokenService services.TokenServiceInterface,
	authController *controllers.AuthController,
	activitiesController *controllers.ActivitiesController,
	poisController *controllers.POIsController) *gin.Engine {

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL))
	r.Use(sessions.Sessions("routediscovery_session", cookie.NewStore([]byte(cfg.SessionSecret))))

	RegisterRoutes(r, log, tokenService, authController, activitiesController, poisController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	log zerolog.Logger,
	tokenService services.TokenServiceInterface,
	authController *controllers.AuthController,
	activitiesController *controllers.ActivitiesController,
	poisController *controllers.POIsController) {

	authGroup := r.Group("/auth")
	authGroup.GET("/strava", authController.Login)
	authGroup.GET("/strava/callback", authController.Callback)
	authGroup.GET("/status", authController.Status)
	authGroup.POST("/logout", authController.Logout)

	apiGroup := r.Group("/api")
	apiGroup.POST("/pois", poisController.FindPois)

	activitiesGroup := apiGroup.Group("/activities")
	activitiesGroup.Use(middleware.SessionAuthMiddleware(tokenService, log))
	activitiesGroup.GET("", activitiesController.ListActivities)
	activitiesGroup.GET("/:id/stream", activitiesController.GetStream)
	activitiesGroup.GET("/:id/gpx", activitiesController.GetGPX)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("port", cfg.Port).Msg("starting http server")
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping http server")
			return nil
		},
	})
}
