package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/classpulse/backend/config"
	"github.com/classpulse/backend/database"
	_ "github.com/classpulse/backend/docs"
	"github.com/classpulse/backend/internal/controller"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/logger"
	"github.com/classpulse/backend/internal/middleware"
	"github.com/classpulse/backend/internal/model"
	"github.com/classpulse/backend/internal/realtime"
	"github.com/classpulse/backend/internal/repository"
	"github.com/classpulse/backend/internal/service"
)

// @title Classroom Engagement API
// @version 1.0
// @description Anonymous attendance, live polls, doubts and feedback for classroom sessions.
// @host localhost:4000
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			realtime.NewHub,
			func(hub *realtime.Hub) realtime.Publisher { return hub },
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewClassRepository,
			repository.NewSessionRepository,
			repository.NewAttendanceRepository,
			repository.NewPollRepository,
			repository.NewFeedbackRepository,
			repository.NewDoubtRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewTokenService,
			service.NewAuthService,
			service.NewClassService,
			service.NewSessionService,
			service.NewAttendanceService,
			service.NewPollService,
			service.NewFeedbackService,
			service.NewDoubtService,
			service.NewReportService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewClassController,
			controller.NewSessionController,
			controller.NewAttendanceController,
			controller.NewPollController,
			controller.NewDoubtController,
			controller.NewFeedbackController,
			controller.NewReportController,
			controller.NewWSController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	authCtrl *controller.AuthController,
	classCtrl *controller.ClassController,
	sessionCtrl *controller.SessionController,
	attendanceCtrl *controller.AttendanceController,
	pollCtrl *controller.PollController,
	doubtCtrl *controller.DoubtController,
	feedbackCtrl *controller.FeedbackController,
	reportCtrl *controller.ReportController,
	wsCtrl *controller.WSController,
) {
	api := router.Group("/api/v1")

	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.OKResponse{OK: true})
	})

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/anonymous", authCtrl.CreateAnonymous)
		authGroup.POST("/anonymous/login", authCtrl.ResumeAnonymous)
	}

	authed := api.Group("")
	authed.Use(middleware.Authentication(tokens))
	{
		authed.POST("/classes", middleware.Authorize(model.OpClassCreate), classCtrl.CreateClass)
		authed.GET("/classes/mine", middleware.Authorize(model.OpClassListMine), classCtrl.GetMyClasses)
		authed.GET("/classes", middleware.Authorize(model.OpClassListAll), classCtrl.GetAllClasses)

		authed.POST("/sessions", middleware.Authorize(model.OpSessionCreate), sessionCtrl.CreateSession)
		authed.GET("/sessions/by-class/:classId", middleware.Authorize(model.OpSessionListByClass), sessionCtrl.GetClassSessions)

		authed.POST("/attendance/:sessionId", middleware.Authorize(model.OpAttendanceMark), attendanceCtrl.MarkAttendance)
		authed.GET("/attendance/:sessionId/count", middleware.Authorize(model.OpAttendanceCount), attendanceCtrl.GetAttendanceCount)

		authed.POST("/polls", middleware.Authorize(model.OpPollCreate), pollCtrl.CreatePoll)
		authed.POST("/polls/:pollId/respond", middleware.Authorize(model.OpPollRespond), pollCtrl.Respond)
		authed.GET("/polls/:pollId/results", middleware.Authorize(model.OpPollResults), pollCtrl.GetResults)

		authed.POST("/doubts/:sessionId", middleware.Authorize(model.OpDoubtSubmit), doubtCtrl.SubmitDoubt)
		authed.GET("/doubts/:sessionId", middleware.Authorize(model.OpDoubtList), doubtCtrl.GetSessionDoubts)

		authed.POST("/feedback/:sessionId", middleware.Authorize(model.OpFeedbackSubmit), feedbackCtrl.SubmitFeedback)
		authed.GET("/feedback/session/:sessionId/aggregate", middleware.Authorize(model.OpFeedbackAggregate), feedbackCtrl.GetAggregate)
		authed.GET("/feedback/session/:sessionId/comments", middleware.Authorize(model.OpFeedbackComments), feedbackCtrl.GetComments)

		authed.GET("/reports/teachers", middleware.Authorize(model.OpReportTeachers), reportCtrl.GetTeacherReports)
	}

	router.GET("/ws", wsCtrl.Serve)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Classroom engagement API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Class{},
		&model.Enrollment{},
		&model.Session{},
		&model.Attendance{},
		&model.Poll{},
		&model.PollOption{},
		&model.PollResponse{},
		&model.Feedback{},
		&model.Doubt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
