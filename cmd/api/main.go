package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-portal-backend/config"
	_ "resume-portal-backend/docs" // Important for Swagger
	v1 "resume-portal-backend/internal/delivery/http/v1"
	"resume-portal-backend/internal/repository/postgres"
	"resume-portal-backend/internal/usecase"
	"resume-portal-backend/pkg/database"
	"resume-portal-backend/pkg/logger"
	"resume-portal-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Resume Builder & Job Portal API
// @version         1.0
// @description     Backend for the resume builder and job portal using Clean Architecture.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	masterRepo := postgres.NewMasterDataRepository(dbPool)
	analyticsRepo := postgres.NewAnalyticsRepository(dbPool)

	// 5. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo)
	userUC := usecase.NewUserUsecase(userRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	masterUC := usecase.NewMasterDataUsecase(masterRepo)
	analyticsUC := usecase.NewAnalyticsUsecase(analyticsRepo)

	// 6. Register custom binding validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 7. Startup probe: log entity counts so a bad schema fails loudly
	probeCtx, probeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if counts, err := analyticsRepo.EntityCounts(probeCtx); err != nil {
		logger.Log.Warn("Startup count probe failed", "error", err)
	} else {
		logger.Log.Info("Database ready",
			"users", counts.Users,
			"resumes", counts.Resumes,
			"jobs", counts.Jobs,
		)
	}
	probeCancel()

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		ResumeUC:     resumeUC,
		JobUC:        jobUC,
		MasterDataUC: masterUC,
		AnalyticsUC:  analyticsUC,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exited gracefully")
}
