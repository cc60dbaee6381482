package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"blog-service/configs"
	"blog-service/internal/kafka"
	"blog-service/internal/media"
	"blog-service/internal/migrate"
	"blog-service/internal/post"
	"blog-service/internal/shared/db"
	"blog-service/internal/shared/httpx"
	"blog-service/internal/storage/s3"
	"blog-service/internal/user"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "otel-collector:4318"
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(os.Getenv("OTEL_SERVICE_NAME")),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	cfg := configs.LoadConfig()
	store := db.Open(cfg)

	if cfg.AutoMigrate {
		if err := migrate.AutoMigrateAll(store.Base); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	var events kafka.Publisher = kafka.Noop{}
	if cfg.KafkaBootstrap != "" {
		w := kafka.NewWriter(cfg.KafkaBootstrap, cfg.KafkaTopic)
		defer w.Close()
		events = w
	}

	userRepo := user.NewRepository(store.Base)
	userSvc := user.NewService(userRepo)

	postRepo := post.NewRepository(store.Base)
	postSvc := post.NewService(postRepo, events)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	protect := func(pattern string, h http.Handler) {
		mux.Handle(pattern, httpx.AuthMiddleware(h))
	}

	uh := user.NewHandler(userSvc)
	mux.Handle("POST /auth/signup", httpx.Wrap(uh.Signup))
	mux.Handle("POST /auth/login", httpx.Wrap(uh.Login))
	protect("POST /auth/me", httpx.Wrap(uh.Me))

	if cfg.S3Endpoint != "" {
		storage, err := s3.New(s3.Config{
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			UseSSL:        cfg.S3UseSSL,
			Bucket:        cfg.S3Bucket,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			log.Fatalf("s3 storage: %v", err)
		}
		if err := storage.EnsureBucket(ctx); err != nil {
			log.Fatalf("s3 bucket: %v", err)
		}
		mh := media.NewHandler(media.NewService(storage, userRepo))
		protect("POST /auth/avatar", httpx.Wrap(mh.UploadAvatar))
	} else {
		log.Printf("S3_ENDPOINT not set, avatar upload disabled")
	}

	ph := post.NewHandler(postSvc, userSvc)
	protect("GET /post", httpx.Wrap(ph.List))
	protect("GET /post/{id}", httpx.Wrap(ph.GetByID))
	protect("POST /post", httpx.Wrap(ph.Create))
	protect("PUT /post/{id}", httpx.Wrap(ph.Update))
	protect("DELETE /post/{id}", httpx.Wrap(ph.Delete))

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(mux, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	log.Printf("blog-service listening on %s", cfg.AppPort)
	log.Fatal(srv.ListenAndServe())
}
