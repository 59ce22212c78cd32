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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/urban-monkey/storefront/internal/auth"
	"github.com/urban-monkey/storefront/internal/config"
	"github.com/urban-monkey/storefront/internal/events"
	"github.com/urban-monkey/storefront/internal/httpserver"
	"github.com/urban-monkey/storefront/internal/logging"
	loggingmw "github.com/urban-monkey/storefront/internal/middleware/logging"
	metricsmw "github.com/urban-monkey/storefront/internal/middleware/metrics"
	"github.com/urban-monkey/storefront/internal/search"
	"github.com/urban-monkey/storefront/internal/service"
	"github.com/urban-monkey/storefront/internal/store"
	"github.com/urban-monkey/storefront/internal/telemetry"
)

const serviceName = "storefront"

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()

	st, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("store connection failed: %v", err)
	}

	var producer *events.Producer
	if cfg.KafkaAddress != "" {
		producer = events.NewProducer(cfg.KafkaAddress)
	}

	var searcher *search.Client
	if cfg.ESURL != "" {
		searcher, err = search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword, search.DefaultIndex)
		if err != nil {
			log.Fatalf("search client failed: %v", err)
		}
	}

	metrics, err := telemetry.Init(ctx, cfg.OTLPEndpoint, serviceName)
	if err != nil {
		log.Fatalf("telemetry init failed: %v", err)
	}

	catalogSvc := &service.CatalogService{Store: st.Products()}
	if producer != nil {
		catalogSvc.Producer = producer
	}
	if searcher != nil {
		catalogSvc.Index = searcher
	}

	deps := &httpserver.Deps{
		Products:     &httpserver.ProductHandler{Svc: catalogSvc, Metrics: metrics},
		Gallery:      &httpserver.GalleryHandler{Svc: &service.GalleryService{Store: st.Gallery()}},
		Users:        &httpserver.UserHandler{Svc: &service.UserService{Users: st.Users(), Products: st.Products()}},
		Search:       &httpserver.SearchHandler{},
		Verifier:     &auth.JWTVerifier{Secret: []byte(cfg.JWTSecret)},
		AdminKeyHash: []byte(cfg.AdminKeyHash),
	}
	if searcher != nil {
		deps.Search.Searcher = searcher
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(metricsmw.Record(metrics))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Printf("store close error: %v", err)
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}
	if err := metrics.Shutdown(shutdownCtx); err != nil {
		log.Printf("telemetry shutdown error: %v", err)
	}

	logger.Info("shutdown complete")
}
