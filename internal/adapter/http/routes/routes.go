package routes

import (
	"context"
	"strconv"
	"time"

	_ "payment_service/docs" // swag generated
	"payment_service/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run wires the service described by cfg and serves HTTP until the server
// stops.
func Run(cfg config.Config, log *zap.Logger) error {
	deps, err := buildDependencies(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close(log)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, deps)

	log.Info("[payment][routes] listening", zap.Int("port", cfg.HTTPPort))
	return router.Run(":" + strconv.Itoa(cfg.HTTPPort))
}

func getRoutes(r *gin.Engine, deps *dependencies) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.collector.Registry(), promhttp.HandlerOpts{})))

	// Rotas publicas
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, deps.paymentHandler)
}

func setMiddlewares(r *gin.Engine, log *zap.Logger) {
	r.Use(requestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("[payment][routes] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		log.Info("[payment][http] request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(started)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
