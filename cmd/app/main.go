package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"wanderly/cmd/fx/account_fx"
	"wanderly/cmd/fx/config_fx"
	"wanderly/cmd/fx/controllers_fx"
	"wanderly/cmd/fx/db_fx"
	"wanderly/cmd/fx/itinerary_fx"
	"wanderly/cmd/fx/prompt_fx"
	"wanderly/cmd/fx/session_fx"
	"wanderly/internal/api/controllers"
	"wanderly/internal/config"
	"wanderly/internal/services"
	"wanderly/pkg/middleware"
	"wanderly/pkg/utils"
)

const swaggerSpecPath = "docs/swagger.yaml"

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		session_fx.Module,
		account_fx.Module,
		prompt_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	sessionService services.SessionServiceInterface,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[%s] panic: %v", c.GetString(middleware.ContextTraceID), recovered)
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternal)
		c.Abort()
	}))
	r.Use(middleware.CORSMiddleware(cfg.AllowOrigins))
	r.Use(middleware.SessionMiddleware(sessionService, controllers.SessionCookieName))

	RegisterRoutes(r, middleware.NewRateLimiter(cfg.GenerateRatePerMinute), accountController, itineraryController)
	controllers.RegisterSwagger(r, swaggerSpecPath)

	return r
}

func RegisterRoutes(r *gin.Engine,
	limiter *middleware.RateLimiter,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController) {

	r.GET("/", controllers.Health)

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)
	authGroup.GET("/google", accountController.GoogleLogin)
	authGroup.GET("/google/callback", accountController.GoogleCallback)
	authGroup.GET("/logout", accountController.Logout)
	authGroup.GET("/me", accountController.Me)

	apiGroup := r.Group("/api")
	apiGroup.POST("/itinerary", limiter.Limit(), itineraryController.GenerateItinerary)

	savedGroup := apiGroup.Group("/itineraries", middleware.RequireAuth())
	savedGroup.POST("", itineraryController.SaveItinerary)
	savedGroup.GET("", itineraryController.ListItineraries)
}
