package v1

import (
	"net/http"
	"time"

	"go-careercoach-backend/config"
	"go-careercoach-backend/internal/delivery/http/middleware"
	"go-careercoach-backend/internal/delivery/http/response"
	"go-careercoach-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	DashboardUC  domain.DashboardUsecase
	ActivityUC   domain.ActivityUsecase
	ResumeUC     domain.ResumeUsecase
	SkillUC      domain.SkillUsecase
	JobUC        domain.JobUsecase
	CareerPathUC domain.CareerPathUsecase
	CourseUC     domain.CourseUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The upload route gets its own, tighter limit on top of the
	// global one.
	uploadLimiter := middleware.RateLimitMiddleware(
		middleware.UploadRateLimitConfig(deps.Config.RateLimitUploadThreshold, window))

	NewDashboardHandler(api, deps.DashboardUC)
	NewActivityHandler(api, deps.ActivityUC)
	NewResumeHandler(api, deps.ResumeUC, uploadLimiter)
	NewSkillHandler(api, deps.SkillUC)
	NewJobHandler(api, deps.JobUC)
	NewCareerPathHandler(api, deps.CareerPathUC)
	NewCourseHandler(api, deps.CourseUC)

	return r
}
