package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"officehours-service/internal/app"
	"officehours-service/internal/booking"
	"officehours-service/internal/config"
	"officehours-service/internal/gcal"
	"officehours-service/internal/logger"
	"officehours-service/internal/policy"
	"officehours-service/internal/schedule"
	"officehours-service/internal/server"
	"officehours-service/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	tmpl, err := loadTemplate(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("load availability template", zap.Error(err))
	}
	if err := tmpl.Validate(); err != nil {
		zl.Fatal("invalid availability template", zap.Error(err))
	}

	cal, err := gcal.Connect(ctx, gcal.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		TokenFile:    cfg.GoogleTokenFile,
		CalendarName: cfg.CalendarName,
		Timezone:     cfg.Timezone,
	}, cfg.Location())
	if err != nil {
		zl.Fatal("connect calendar", zap.Error(err))
	}

	pol := policy.Policy{
		AllowedEmailDomains:      cfg.AllowedEmailDomains,
		MaxAppointmentsPerPerson: cfg.MaxAppointmentsPerPerson,
	}
	svc := booking.NewService(cal, pol, tmpl, booking.Config{
		SlotLength:      cfg.SlotLength,
		Location:        cfg.Location(),
		UpstreamTimeout: cfg.UpstreamTimeout,
	}, zl)

	appInstance := &app.App{Booking: svc, Template: tmpl, Log: zl}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestLogger(zl))
	router.LoadHTMLGlob("templates/*.html")

	router.GET("/", appInstance.IndexHandler)
	router.POST("/", appInstance.BookFormHandler)

	api := router.Group("/api")
	{
		api.GET("/schedule", appInstance.GetScheduleHandler)
		api.POST("/bookings", appInstance.CreateBookingHandler)

		admin := api.Group("/admin")
		admin.Use(app.AuthMiddleware(cfg.AdminStaticTokens, cfg.AdminJWTSecret))
		{
			admin.GET("/availability", appInstance.ListAvailabilityHandler)
			admin.GET("/events", appInstance.ListEventsHandler)
		}
	}

	zl.Info("starting server", zap.String("port", cfg.Port), zap.String("calendar", cfg.CalendarName))
	if err := server.Run(router, cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func loadTemplate(ctx context.Context, cfg *config.Config, zl *zap.Logger) (schedule.WeeklyTemplate, error) {
	if cfg.DatabaseURL == "" {
		return config.DefaultTemplate(), nil
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer pool.Close()
	zl.Info("loading availability template from database")
	return store.LoadTemplate(ctx, pool)
}
