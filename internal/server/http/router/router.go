package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/knaeeim/Bangla-Drop-Server/internal/adapter/fireauth"
	"github.com/knaeeim/Bangla-Drop-Server/internal/server/http/handlers"
	"github.com/knaeeim/Bangla-Drop-Server/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Only the parcel
// listing is guarded; the remaining routes are open, matching the observed
// behavior of the original API.
func Setup(facade handlers.DeliveryFacade, verifier fireauth.Verifier, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	userHandler := handlers.NewUserHandler(facade)
	parcelHandler := handlers.NewParcelHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	riderHandler := handlers.NewRiderHandler(facade)

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Bangla Drop API")
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	engine.POST("/users", userHandler.RecordSignIn)
	engine.GET("/parcels", middleware.AuthRequired(verifier), parcelHandler.List)
	engine.GET("/parcel/:id", parcelHandler.Get)
	engine.POST("/parcels", parcelHandler.Create)
	engine.POST("/create-payment-intent", paymentHandler.CreateIntent)
	engine.GET("/payments", paymentHandler.List)
	engine.POST("/payments", paymentHandler.Record)
	engine.POST("/riders", riderHandler.Register)

	return engine
}
