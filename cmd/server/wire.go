package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/auth"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/blobstore"
	adapthttp "github.com/jsamuelsen11/mentorship-admin/internal/adapters/http"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/memory"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/postgres"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/redisstore"
	"github.com/jsamuelsen11/mentorship-admin/internal/app"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/config"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/health"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/httpclient"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/metrics"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/telemetry"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

// objectStorageService names the outbound client used for S3 traffic in
// logs, spans and metrics.
const objectStorageService = "object-storage"

// resources collects what the providers opened: health checkers to register
// once the graph is built and closers to run on exit.
type resources struct {
	checkers []ports.HealthChecker
	closers  []func() error
}

func (r *resources) track(v any) {
	if c, ok := v.(ports.HealthChecker); ok {
		r.checkers = append(r.checkers, c)
	}
}

// close runs closers in reverse order of acquisition.
func (r *resources) close(logger *slog.Logger) {
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			logger.Error("closing resource", slog.Any("error", err))
		}
	}
}

// repositories is the record store selected by database.driver.
type repositories struct {
	staff     ports.StaffRepository
	mentees   ports.MenteeRepository
	invoices  ports.InvoiceRepository
	receipts  ports.ReceiptRepository
	inventory ports.InventoryRepository
	documents ports.DocumentRepository
	users     ports.UserRepository
}

func openRepositories(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger, res *resources) (*repositories, error) {
	if cfg.Driver != config.DriverPostgres {
		logger.Warn("using in-memory record store; data is lost on restart")
		s := memory.New()
		return &repositories{
			staff: s.Staff, mentees: s.Mentees, invoices: s.Invoices, receipts: s.Receipts,
			inventory: s.Inventory, documents: s.Documents, users: s.Users,
		}, nil
	}

	db, err := postgres.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	res.closers = append(res.closers, func() error { db.Close(); return nil })
	res.track(db)

	if cfg.MigrateOnStart {
		if err := db.Migrate(ctx, logger); err != nil {
			return nil, err
		}
	}

	s := postgres.NewStore(db)
	return &repositories{
		staff: s.Staff, mentees: s.Mentees, invoices: s.Invoices, receipts: s.Receipts,
		inventory: s.Inventory, documents: s.Documents, users: s.Users,
	}, nil
}

func openBlobStore(ctx context.Context, cfg *config.Config, tel *telemetry.Metrics, logger *slog.Logger, res *resources) (ports.BlobStore, error) {
	var store ports.BlobStore
	switch cfg.Storage.Driver {
	case config.DriverS3:
		client := httpclient.New(&cfg.Client, objectStorageService, tel, logger)
		s3, err := blobstore.NewS3(ctx, &cfg.Storage, client.SDK())
		if err != nil {
			return nil, err
		}
		res.track(client)
		store = s3
	default:
		store = blobstore.NewLocal(cfg.Storage.Root)
	}
	res.track(store)
	return store, nil
}

func openRevocations(ctx context.Context, cfg *config.RedisConfig, logger *slog.Logger, res *resources) (ports.RevocationStore, error) {
	if cfg.URL == "" {
		logger.Warn("redis not configured; token revocations are kept in process memory")
		return memory.NewRevocationStore(), nil
	}

	client, err := redisstore.Connect(ctx, cfg.URL)
	if err != nil {
		return nil, err
	}
	res.closers = append(res.closers, client.Close)
	store := redisstore.NewRevocationStore(client)
	res.track(store)
	return store, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger, res *resources) {
	// Platform.
	do.Provide(injector, func(_ do.Injector) (*catalog.Registry, error) {
		return catalog.Default(), nil
	})

	promReg, domainMetrics := metrics.NewRegistry()
	do.ProvideValue(injector, promReg)
	do.ProvideValue(injector, domainMetrics)

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*inventory.StockRules, error) {
		return inventory.NewStockRules(cfg.Inventory.Rules())
	})

	// Outbound adapters.
	do.Provide(injector, func(_ do.Injector) (*repositories, error) {
		repos, err := openRepositories(ctx, &cfg.Database, logger, res)
		if err != nil {
			return nil, fmt.Errorf("opening record store: %w", err)
		}
		return repos, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BlobStore, error) {
		store, err := openBlobStore(ctx, cfg, do.MustInvoke[*telemetry.Metrics](i), logger, res)
		if err != nil {
			return nil, fmt.Errorf("opening blob store: %w", err)
		}
		return store, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.RevocationStore, error) {
		store, err := openRevocations(ctx, &cfg.Redis, logger, res)
		if err != nil {
			return nil, fmt.Errorf("opening revocation store: %w", err)
		}
		return store, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.TokenIssuer, error) {
		return auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	})

	do.Provide(injector, func(_ do.Injector) (ports.PasswordHasher, error) {
		return auth.NewBcryptHasher(cfg.Auth.BcryptCost), nil
	})

	// Application services.
	registerServices(injector, logger)

	// Inbound HTTP.
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		reg := do.MustInvoke[*catalog.Registry](i)
		promReg := do.MustInvoke[*prometheus.Registry](i)
		m := do.MustInvoke[*metrics.Metrics](i)
		authSvc := do.MustInvoke[ports.AuthService](i)

		h := adapthttp.Handlers{
			Health:    handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Auth:      handlers.NewAuthHandler(authSvc),
			Staff:     handlers.NewStaffHandler(do.MustInvoke[ports.StaffService](i)),
			Mentees:   handlers.NewMenteeHandler(do.MustInvoke[ports.MenteeService](i)),
			Invoices:  handlers.NewInvoiceHandler(do.MustInvoke[ports.InvoiceService](i)),
			Receipts:  handlers.NewReceiptHandler(do.MustInvoke[ports.ReceiptService](i)),
			Inventory: handlers.NewInventoryHandler(do.MustInvoke[ports.InventoryService](i)),
			Documents: handlers.NewDocumentHandler(do.MustInvoke[ports.DocumentService](i), int64(cfg.Server.MaxUploadMB)<<20),
			Catalog:   handlers.NewCatalogHandler(reg, do.MustInvoke[ports.DashboardService](i), m),
		}

		return adapthttp.NewRouter(h, adapthttp.RouterConfig{
			Endpoints: reg.Endpoints(),
			Auth:      authSvc,
			Metrics:   promhttp.HandlerFor(promReg, promhttp.HandlerOpts{Registry: promReg}),
		},
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

func registerServices(injector *do.RootScope, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.StaffService, error) {
		repos := do.MustInvoke[*repositories](i)
		return app.NewStaffService(repos.staff, do.MustInvoke[*catalog.Registry](i), do.MustInvoke[*metrics.Metrics](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MenteeService, error) {
		repos := do.MustInvoke[*repositories](i)
		return app.NewMenteeService(repos.mentees, repos.staff, do.MustInvoke[*catalog.Registry](i), do.MustInvoke[*metrics.Metrics](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.InvoiceService, error) {
		repos := do.MustInvoke[*repositories](i)
		return app.NewInvoiceService(repos.invoices, do.MustInvoke[*catalog.Registry](i), do.MustInvoke[*metrics.Metrics](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ReceiptService, error) {
		repos := do.MustInvoke[*repositories](i)
		return app.NewReceiptService(repos.receipts, repos.documents, do.MustInvoke[*catalog.Registry](i), do.MustInvoke[*metrics.Metrics](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.InventoryService, error) {
		repos := do.MustInvoke[*repositories](i)
		rules := do.MustInvoke[*inventory.StockRules](i)
		return app.NewInventoryService(repos.inventory, rules, do.MustInvoke[*catalog.Registry](i), do.MustInvoke[*metrics.Metrics](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DocumentService, error) {
		repos := do.MustInvoke[*repositories](i)
		blobs, err := do.Invoke[ports.BlobStore](i)
		if err != nil {
			return nil, err
		}
		return app.NewDocumentService(repos.documents, blobs, do.MustInvoke[*catalog.Registry](i), do.MustInvoke[*metrics.Metrics](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		repos := do.MustInvoke[*repositories](i)
		revocations, err := do.Invoke[ports.RevocationStore](i)
		if err != nil {
			return nil, err
		}
		tokens, err := do.Invoke[ports.TokenIssuer](i)
		if err != nil {
			return nil, err
		}
		return app.NewAuthService(
			repos.users,
			do.MustInvoke[ports.PasswordHasher](i),
			tokens,
			revocations,
			do.MustInvoke[*catalog.Registry](i),
			do.MustInvoke[*metrics.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DashboardService, error) {
		repos := do.MustInvoke[*repositories](i)
		return app.NewDashboardService(app.DashboardRepositories{
			Staff:     repos.staff,
			Mentees:   repos.mentees,
			Invoices:  repos.invoices,
			Receipts:  repos.receipts,
			Inventory: repos.inventory,
			Documents: repos.documents,
		}, do.MustInvoke[*inventory.StockRules](i), logger), nil
	})
}
