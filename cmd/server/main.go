package main

import (
	"log"
	"time"

	"github.com/lexablackstar/HealthCheckApp/internal/config"
	"github.com/lexablackstar/HealthCheckApp/internal/database"
	"github.com/lexablackstar/HealthCheckApp/internal/handlers"
	"github.com/lexablackstar/HealthCheckApp/internal/metrics"
	"github.com/lexablackstar/HealthCheckApp/internal/middleware"
	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title           Health Check API
// @version         1.0
// @description     Role-based organizational health-check surveys: teams, departments, sessions and voting analytics
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	zapLogger := newLogger(cfg.LogLevel)
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	authService := services.NewAuthService(logger, db, cfg.JWTSecret)
	userService := services.NewUserService(logger, db)
	teamService := services.NewTeamService(logger, db)
	departmentService := services.NewDepartmentService(logger, db)
	surveyService := services.NewSurveyService(logger, db)
	votingService := services.NewVotingService(logger, db)
	analyticsService := services.NewAnalyticsService(logger, db)
	dashboardService := services.NewDashboardService(logger, db)

	authHandler := handlers.NewAuthHandler(authService)
	settingsHandler := handlers.NewSettingsHandler(userService, authService)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService, userService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService, userService)
	surveyHandler := handlers.NewSurveyHandler(surveyService)
	votingHandler := handlers.NewVotingHandler(surveyService, votingService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, teamService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	r := gin.New()
	r.Use(ginzap.GinzapWithConfig(zapLogger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		Skipper: func(c *gin.Context) bool {
			return c.Request.URL.Path == "/metrics" && c.Request.Method == "GET"
		},
	}))
	r.Use(ginzap.RecoveryWithZap(zapLogger, true))
	r.Use(metrics.GinMiddleware)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		authed := api.Group("")
		authed.Use(middleware.JWTAuth(authService))
		{
			authed.GET("/dashboard", dashboardHandler.GetDashboard)

			authed.GET("/settings", settingsHandler.GetSettings)
			authed.PUT("/settings", settingsHandler.UpdateSettings)
			authed.POST("/settings/password", settingsHandler.ChangePassword)

			authed.PUT("/users/:username", userHandler.UpdateUser)
			authed.DELETE("/users/:username", userHandler.DeleteUser)

			authed.GET("/teams", teamHandler.ListTeams)
			authed.POST("/teams", teamHandler.CreateTeam)
			authed.PUT("/teams/:id", teamHandler.UpdateTeam)
			authed.DELETE("/teams/:id", teamHandler.DeleteTeam)

			authed.GET("/departments", departmentHandler.ListDepartments)
			authed.POST("/departments", departmentHandler.CreateDepartment)
			authed.PUT("/departments/:id", departmentHandler.UpdateDepartment)
			authed.DELETE("/departments/:id", departmentHandler.DeleteDepartment)

			authed.GET("/sessions", surveyHandler.ListSessions)
			authed.POST("/sessions", surveyHandler.CreateSession)
			authed.GET("/questions", surveyHandler.ListQuestions)
			authed.POST("/questions", surveyHandler.CreateQuestion)

			authed.GET("/sessions/:id/voting", votingHandler.GetVotingForm)
			authed.POST("/sessions/:id/voting", votingHandler.SubmitResponses)
			authed.POST("/sessions/:id/votes", votingHandler.CastVote)

			authed.GET("/analytics/votes", analyticsHandler.VoteAnalysis)
			authed.GET("/analytics/team-progress", analyticsHandler.TeamProgress)
		}
	}

	logger.Infof("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newLogger(levelStr string) *zap.Logger {
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		log.Fatalf("invalid log level %q: %v", levelStr, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := zapConfig.Build()
	if err != nil {
		log.Fatalf("error initializing logger: %v", err)
	}
	return zapLogger
}
