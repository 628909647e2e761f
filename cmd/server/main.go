package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adminhub/config"
	_ "adminhub/docs"
	authadapter "adminhub/internal/adapters/auth"
	emailadapter "adminhub/internal/adapters/email"
	delivery "adminhub/internal/delivery/http"
	"adminhub/internal/delivery/http/controllers"
	"adminhub/internal/delivery/http/middleware"
	"adminhub/internal/repository/postgres"
	"adminhub/internal/services"
)

const contextTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := postgres.Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		},
	})
	if err != nil {
		log.Fatalf("create mailer: %v", err)
	}

	hasher := authadapter.NewBcryptHasher(12)
	issuer := authadapter.NewJWTIssuer(cfg.JWTSecret)
	verifier := authadapter.NewJWTVerifier(cfg.JWTSecret)

	eventRepo := postgres.NewEventRepository(db)
	courseRepo := postgres.NewCourseRepository(db)
	examRepo := postgres.NewExamRepository(db)
	competitionRepo := postgres.NewCompetitionRepository(db)
	userRepo := postgres.NewUserRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	enrollmentRepo := postgres.NewEnrollmentRepository(db)

	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	eventService := services.NewEventService(eventRepo, logger, contextTimeout)
	courseService := services.NewCourseService(courseRepo, logger, contextTimeout)
	examService := services.NewExamService(examRepo, logger, contextTimeout)
	competitionService := services.NewCompetitionService(competitionRepo, logger, contextTimeout)
	userService := services.NewUserService(userRepo, hasher, emailService, logger, contextTimeout)
	authService := services.NewAuthService(userRepo, hasher, issuer, cfg.TokenExpiry, contextTimeout)
	reportService := services.NewReportService(reportRepo, contextTimeout)
	enrollmentService := services.NewEnrollmentService(enrollmentRepo, courseRepo, contextTimeout)

	mux := delivery.NewRouter(delivery.Controllers{
		Auth:        controllers.NewAuthController(logger, authService),
		Event:       controllers.NewEventController(logger, eventService),
		Course:      controllers.NewCourseController(logger, courseService),
		Exam:        controllers.NewExamController(logger, examService),
		Competition: controllers.NewCompetitionController(logger, competitionService),
		User:        controllers.NewUserController(logger, userService),
		Report:      controllers.NewReportController(logger, reportService),
		Enrollment:  controllers.NewEnrollmentController(logger, enrollmentService),
	}, verifier, logger)

	allowedOrigins := []string{"http://localhost:3000"}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		allowedOrigins = []string{v}
	}
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
