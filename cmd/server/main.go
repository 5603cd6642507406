package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"golang.org/x/sync/errgroup"

	"pixclaim/internal/claim/adapters/pixkey"
	claimconsumer "pixclaim/internal/claim/consumer"
	"pixclaim/internal/claim/handler"
	claimmetrics "pixclaim/internal/claim/metrics"
	"pixclaim/internal/claim/service"
	httpapi "pixclaim/internal/http"
	jwttoken "pixclaim/internal/jwt_token"
	"pixclaim/internal/platform/config"
	"pixclaim/internal/platform/httpserver"
	"pixclaim/internal/platform/kafka/consumer"
	"pixclaim/internal/platform/logger"
	"pixclaim/internal/platform/metrics"
	"pixclaim/pkg/platform/circuit"
)

// main wires dependencies and runs the HTTP server and the Kafka consumer until
// a signal arrives. Business logic lives in internal/claim.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pixclaim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))

	backends, err := buildInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer backends.Close()

	pixOpts := []pixkey.Option{pixkey.WithTimeout(cfg.PixKey.Timeout), pixkey.WithLogger(log)}
	if cfg.PixKey.JWTKey != "" {
		pixOpts = append(pixOpts, pixkey.WithSigner(
			jwttoken.NewJWTService(cfg.PixKey.JWTKey, cfg.PixKey.JWTIssuer, cfg.PixKey.JWTAudience),
		))
	}
	if cfg.PixKey.BreakerFailures > 0 {
		pixOpts = append(pixOpts, pixkey.WithBreaker(circuit.New("pixkey",
			circuit.WithFailureThreshold(cfg.PixKey.BreakerFailures),
			circuit.WithCooldown(cfg.PixKey.BreakerCooldown),
		)))
	}
	pixKeys, err := pixkey.New(cfg.PixKey.URL, pixOpts...)
	if err != nil {
		return err
	}

	svcOpts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(claimmetrics.New()),
		service.WithFailureStore(backends.failures),
		service.WithReconciliation(cfg.Claims.ReconciliationEnabled),
	}
	if backends.locker != nil {
		svcOpts = append(svcOpts, service.WithKeyLocker(backends.locker))
	}
	claims, err := service.New(backends.notifications, pixKeys, svcOpts...)
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(httpapi.Config{
		Logger:  log,
		Metrics: metrics.New(),
		Health:  backends.health,
		Routes:  []httpapi.Registrar{handler.New(claims, log)},
	})
	srv := httpserver.New(cfg.Server.Addr, router, httpserver.Timeouts{})

	// Kafka setup can fail; it runs before anything is listening.
	kc, err := newKafkaConsumer(ctx, cfg.Kafka, claimconsumer.NewHandler(claims, log).Handle, log)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "http server listening",
		"addr", cfg.Server.Addr,
		"reconciliation_enabled", cfg.Claims.ReconciliationEnabled,
		"key_lock", cfg.Claims.KeyLock,
	)
	return serve(ctx, srv, kc, cfg.Server.ShutdownTimeout, log)
}

// newKafkaConsumer returns nil when no brokers are configured.
func newKafkaConsumer(ctx context.Context, cfg config.Kafka, handle consumer.Handler, log *slog.Logger) (*consumer.Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil
	}
	if cfg.CreateTopic {
		if err := consumer.EnsureTopic(ctx, cfg.Brokers, cfg.Topic, 3, 1); err != nil {
			return nil, err
		}
	}
	return consumer.New(consumer.Config{
		Brokers: cfg.Brokers,
		Group:   cfg.Group,
		Topic:   cfg.Topic,
	}, handle, consumer.WithLogger(log))
}

// serve runs the HTTP server and the optional consumer until ctx ends or one
// of them fails, then shuts the server down.
func serve(ctx context.Context, srv *http.Server, kc *consumer.Consumer, shutdownTimeout time.Duration, log *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})
	if kc != nil {
		g.Go(func() error {
			defer kc.Close()
			log.InfoContext(gctx, "kafka consumer started")
			return kc.Run(gctx)
		})
	}

	return g.Wait()
}
