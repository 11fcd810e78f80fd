package v1

import (
	"resume-portal-backend/internal/delivery/http/middleware"
	"resume-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	UserUC       domain.UserUsecase
	ResumeUC     domain.ResumeUsecase
	JobUC        domain.JobUsecase
	MasterDataUC domain.MasterDataUsecase
	AnalyticsUC  domain.AnalyticsUsecase
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewHealthHandler(api, deps.AnalyticsUC)
	NewAuthHandler(api, deps.AuthUC)
	NewUserHandler(api, deps.UserUC)
	NewResumeHandler(api, deps.ResumeUC)
	NewJobHandler(api, deps.JobUC)
	NewMasterDataHandler(api, deps.MasterDataUC)
	NewAnalyticsHandler(api, deps.AnalyticsUC)

	return r
}
