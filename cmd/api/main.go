package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/adapter/http/routes"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/config"
	"github.com/Michaeldoss/apptecnico1-sub001/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Apptecnico API
// @version         1.0
// @description     Budgets, service orders, marketplace catalog, agenda and payments for field technicians.
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
	configPath := flag.String("config", os.Getenv("APPTECNICO_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	log := logger.Must(cfg.Server.Mode)
	defer func() { _ = log.Sync() }()

	if cfg.Server.Debug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal("failed to run the application", zap.Error(err))
	}
}
