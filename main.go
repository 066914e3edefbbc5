package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/config"
	logger "github.com/Inphy521/Home-Economics/internal/logging"
	"github.com/Inphy521/Home-Economics/internal/models"
	"github.com/Inphy521/Home-Economics/internal/repository"
	"github.com/Inphy521/Home-Economics/internal/router"
	"github.com/Inphy521/Home-Economics/internal/services"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".", logger.DefaultRotation())
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize Configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Load the pressure-point dataset at startup
	points, err := models.LoadPressurePoints(config.Conf.Data.PressurePoints)
	if err != nil {
		log.Fatal("Failed to load pressure points", zap.Error(err))
	}

	store := repository.NewStore(log, points.Points)

	uploader := services.NewUploader(
		log,
		config.Conf.Submission.URL,
		time.Duration(config.Conf.Submission.TimeoutSeconds)*time.Second,
	)

	// Start the two-week follow-up reminder sweep
	scheduler := services.NewScheduler(log, store)
	scheduler.Start()

	r := router.Setup(log, store, uploader, points.Points)

	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
