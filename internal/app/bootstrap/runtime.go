package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/adapters/ai"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/adapters/cache"
	eventadapter "github.com/ayyan656/Real-estate-SaaS-CRM/internal/adapters/events"
	httpadapter "github.com/ayyan656/Real-estate-SaaS-CRM/internal/adapters/http"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/adapters/memory"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/adapters/security"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/application"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	grpcServer *grpc.Server
	grpcLis    net.Listener
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With("service", cfg.ServiceID)
	slog.SetDefault(logger)

	var seedLeads []domain.Lead
	var seedProperties []domain.Property
	if cfg.SeedDemoData {
		seedLeads = memory.SeedLeads(time.Now().UTC())
		seedProperties = memory.SeedProperties()
	}
	leadRepo := memory.NewLeadRepository(seedLeads)
	propertyRepo := memory.NewPropertyRepository(seedProperties)

	var closers []io.Closer
	sessions := ports.SessionSlotStore(memory.NewSessionSlotStore())
	if cfg.RedisURL != "" {
		redisClient, redisErr := cache.Connect(ctx, cfg.RedisURL)
		if redisErr != nil {
			logger.WarnContext(ctx, "redis disabled, using in-memory session slot", "error", redisErr)
		} else {
			sessions = cache.NewRedisSessionSlotStore(redisClient, cfg.AppName)
			closers = append(closers, redisClient)
		}
	}

	publisher := ports.EventPublisher(eventadapter.NewLoggingPublisher(logger))
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, pubErr := eventadapter.NewKafkaPublisher(cfg.KafkaBrokers, map[string]string{
			"lead.created":        cfg.KafkaTopicLeadEvents,
			"lead.status_changed": cfg.KafkaTopicLeadEvents,
			"lead.updated":        cfg.KafkaTopicLeadEvents,
			"property.created":    cfg.KafkaTopicPropertyEvents,
			"property.updated":    cfg.KafkaTopicPropertyEvents,
			"property.deleted":    cfg.KafkaTopicPropertyEvents,
			"session.started":     cfg.KafkaTopicSessionEvents,
		})
		if pubErr != nil {
			logger.WarnContext(ctx, "kafka publisher disabled, using logging publisher", "error", pubErr)
		} else {
			publisher = kafkaPublisher
			closers = append(closers, kafkaPublisher)
		}
	}

	var signer ports.TokenSigner
	if cfg.JWTPrivateKeyPEM != "" && cfg.JWTPublicKeyPEM != "" {
		signer, err = security.NewJWTSigner(cfg.JWTKeyID, cfg.JWTPrivateKeyPEM, cfg.JWTPublicKeyPEM)
	} else {
		signer, err = security.NewEphemeralJWTSigner(cfg.JWTKeyID)
	}
	if err != nil {
		for _, closer := range closers {
			_ = closer.Close()
		}
		return nil, err
	}

	generator := ports.DescriptionGenerator(ai.NewTemplateGenerator())
	if cfg.OpenAIAPIKey != "" {
		generator = ai.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	}

	service := application.NewService(application.Dependencies{
		Config: application.Config{
			AppName:     cfg.AppName,
			TokenTTL:    cfg.TokenTTL,
			MockLatency: cfg.MockLatency,
		},
		Leads:      leadRepo,
		Properties: propertyRepo,
		Sessions:   sessions,
		Publisher:  publisher,
		Hasher:     security.NewBcryptHasher(cfg.BcryptCost),
		Signer:     signer,
		Generator:  generator,
	})
	board := application.NewBoard(service)
	desk := application.NewListingDesk(service)

	handler := httpadapter.NewHandler(service, board, desk)
	router := httpadapter.NewRouter(handler, logger)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		for _, closer := range closers {
			_ = closer.Close()
		}
		return nil, err
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		grpcServer: grpcServer,
		grpcLis:    lis,
		cleanupFn: func(_ context.Context) {
			for _, closer := range closers {
				_ = closer.Close()
			}
		},
	}, nil
}

func (r *Runtime) RunAPI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := make(chan error, 2)

	go func() {
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		if err := r.grpcServer.Serve(r.grpcLis); err != nil {
			errCh <- err
		}
	}()
	r.logger.InfoContext(ctx, "runtime started", "http_port", r.cfg.HTTPPort, "grpc_port", r.cfg.GRPCPort)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		r.logger.ErrorContext(ctx, "runtime failure", "error", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.grpcServer.GracefulStop()
	r.cleanupFn(shutdownCtx)
	return nil
}
