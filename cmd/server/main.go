package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sessionguard/sessionguard/modules/demo"
	"github.com/sessionguard/sessionguard/pkg/auth"
	"github.com/sessionguard/sessionguard/pkg/config"
	"github.com/sessionguard/sessionguard/pkg/cookie"
	"github.com/sessionguard/sessionguard/pkg/csrf"
	"github.com/sessionguard/sessionguard/pkg/httpserver"
	"github.com/sessionguard/sessionguard/pkg/logger"
	"github.com/sessionguard/sessionguard/pkg/ratelimit"
	redisconn "github.com/sessionguard/sessionguard/pkg/redis"
	"github.com/sessionguard/sessionguard/pkg/requestid"
	"github.com/sessionguard/sessionguard/pkg/session"
)

type appConfig struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"sessionguard"`

	// SessionStore selects the session persistence backend: "memory" or
	// "redis". Redis requires REDIS_URL.
	SessionStore string `env:"SESSION_STORE" envDefault:"memory"`
}

func main() {
	ctx := context.Background()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Environment, cfg.ServiceName))
	logger.SetAsDefault(log)

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	var sessCfg session.Config
	config.MustLoad(&sessCfg)

	var healthchecks []func(context.Context) error

	var store session.Store
	switch cfg.SessionStore {
	case "redis":
		var redisCfg redisconn.Config
		config.MustLoad(&redisCfg)

		client, err := redisconn.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()

		store = session.NewRedisStore(client)
		healthchecks = append(healthchecks, redisconn.Healthcheck(client))
	default:
		memStore := session.NewMemoryStore(sessCfg.CleanupInterval)
		defer memStore.Close()
		store = memStore
	}

	guard := session.NewGuard(store,
		session.WithConfig(sessCfg),
		session.WithLogger(log),
	)

	var cookieCfg cookie.Config
	config.MustLoad(&cookieCfg)

	cookieMgr, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return err
	}
	transport := session.NewCookieTransport(cookieMgr, sessCfg.CookieName, sessCfg.SecureCookies)

	var csrfCfg csrf.Config
	config.MustLoad(&csrfCfg)

	issuer := csrf.NewFromConfig(csrfCfg)
	defer issuer.Close()

	var demoCfg demo.Config
	config.MustLoad(&demoCfg)

	authn := auth.NewStaticAuthenticator()
	if err := authn.AddUser(demoCfg.UserID, demoCfg.Username, demoCfg.Password); err != nil {
		return err
	}

	if demoCfg.AllowSimulatedFingerprint {
		log.WarnContext(ctx, "simulated fingerprint overrides enabled; do not use in production")
	}

	var limitCfg ratelimit.Config
	config.MustLoad(&limitCfg)

	limitStore := ratelimit.NewMemoryStore(time.Hour)
	defer limitStore.Close()

	loginLimiter, err := ratelimit.NewBucket(limitStore, limitCfg)
	if err != nil {
		return err
	}

	svc := demo.NewService(demoCfg, guard, issuer, authn, transport,
		demo.WithLogger(log),
		demo.WithSessionConfig(sessCfg),
		demo.WithLoginRateLimit(ratelimit.Middleware(loginLimiter, ratelimit.KeyByClientIP)),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Get("/health", httpserver.HealthCheckHandler(ctx, log, healthchecks...))
	r.Mount("/", svc.Handler())

	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
