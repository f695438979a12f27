package main

import (
	_ "payment_service/docs"
	"payment_service/internal/adapter/http/routes"
	"payment_service/internal/config"
	"payment_service/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Payment Service API
// @version         1.0
// @description     Payment lifecycle service: process, cancel and refund payments through a simulated gateway.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	log := logger.FromEnv()
	defer func() { _ = log.Sync() }()

	cfg := config.Load(log)
	if err := routes.Run(cfg, log); err != nil {
		log.Fatal("Failed to startup the application", zap.Error(err))
	}
}
