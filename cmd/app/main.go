package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"wanderai/cmd/fx/account_fx"
	"wanderai/cmd/fx/config_fx"
	"wanderai/cmd/fx/db_fx"
	"wanderai/cmd/fx/generator_fx"
	"wanderai/cmd/fx/itinerary_fx"
	"wanderai/internal/api/controllers"
	"wanderai/internal/infra"
	"wanderai/pkg/middleware"
	"wanderai/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		account_fx.Module,
		generator_fx.Module,
		itinerary_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on port %s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *infra.Config,
	jwtMaker *utils.JWTMaker,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))

	RegisterRoutes(r, jwtMaker, accountController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jwtMaker *utils.JWTMaker,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController) {

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "WanderAI Backend API is running!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"status":    "healthy",
		})
	})

	authGroup := r.Group("/api/auth")
	authGroup.POST("/signup", accountController.Signup)
	authGroup.POST("/login", accountController.Login)

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.JWTAuthMiddleware(jwtMaker))
	apiGroup.POST("/generate", itineraryController.Generate)
	apiGroup.GET("/itineraries", itineraryController.List)
	apiGroup.GET("/itinerary/:id", itineraryController.Get)
	apiGroup.GET("/itinerary/:id/parsed", itineraryController.GetBreakdown)
	apiGroup.GET("/itinerary/:id/pdf", itineraryController.ExportPDF)
	apiGroup.DELETE("/itinerary/:id", itineraryController.Delete)
}
