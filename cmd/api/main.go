package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tavernarpg/taverna/core"
	"github.com/tavernarpg/taverna/x/account"
	"github.com/tavernarpg/taverna/x/util"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var version = "unknown"

func main() {

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("Taverna %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true

	config := util.Config{}
	configPath := os.Getenv("TAVERNA_CONFIG")
	if configPath == "" {
		configPath = "/etc/taverna/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
	}

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "taverna/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "taverna",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	slog.Info("start migrate")
	err = db.AutoMigrate(
		&core.User{},
		&core.Message{},
		&core.CharacterSheet{},
		&core.Story{},
		&core.AssistantMessage{},
	)
	if err != nil {
		// keep serving; requests against missing tables will fail on their own
		slog.Error("failed to migrate schema", slog.String("error", err.Error()))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "",
		DB:       0,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	accountService := SetupAccountService(db)
	accountHandler := SetupAccountHandler(db)

	chatService := SetupChatService(db, rdb, mc)
	chatHandler := SetupChatHandler(db, rdb, mc)

	socketManager := SetupSocketManager(rdb)
	socketHandler := SetupSocketHandler(db, rdb, mc, socketManager)

	sheetService := SetupSheetService(db)
	sheetHandler := SetupSheetHandler(db)

	storyService := SetupStoryService(db)
	storyHandler := SetupStoryHandler(db)

	assistantHandler := SetupAssistantHandler(db, config)

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := storyService.Seed(ctx)
		if err != nil {
			slog.Error("failed to seed story", slog.String("error", err.Error()))
		}
		cancel()
	}

	api := e.Group("", accountService.IdentifyRequester)

	// account
	api.POST("/register", accountHandler.Register)
	api.POST("/login", accountHandler.Login)

	// chat room
	api.GET("/history", chatHandler.GetHistory)
	api.POST("/clear_history", chatHandler.Clear, account.Restrict(account.ISADMIN))
	api.GET("/socket", socketHandler.Connect)

	// character sheets
	api.POST("/save_sheet", sheetHandler.Save)
	api.GET("/get_sheet/:username", sheetHandler.Get)
	api.GET("/get_all_sheets", sheetHandler.GetAll, account.Restrict(account.ISADMIN))

	// story
	api.GET("/get_historia", storyHandler.Get)
	api.POST("/save_historia", storyHandler.Save, account.Restrict(account.ISADMIN))

	// assistant
	api.POST("/chat", assistantHandler.Chat)
	api.GET("/chat_history/:username", assistantHandler.History)

	e.GET("/stats", func(c echo.Context) error {
		ctx := c.Request().Context()

		users, err := accountService.Count(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		messages, err := chatService.Count(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		sheets, err := sheetService.Count(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"users":       users,
			"messages":    messages,
			"sheets":      sheets,
			"connections": socketManager.Count(),
		})
	})

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echoprometheus.NewHandler())

	listenAddr := config.Server.ListenAddr
	if listenAddr == "" {
		listenAddr = ":10000"
	}
	e.Logger.Fatal(e.Start(listenAddr))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
