package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/searchscope/web/internal/account"
	"github.com/searchscope/web/internal/backend"
	"github.com/searchscope/web/internal/entitlement"
	"github.com/searchscope/web/internal/i18n"
	mw "github.com/searchscope/web/internal/middleware"
	"github.com/searchscope/web/internal/observability"
	"github.com/searchscope/web/internal/snapshot"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	localesDir   = "locales"
	// devMode is set in main() based on env: SEARCHSCOPE_DEV (preferred) or DEV (fallback)
	devMode bool

	appLogger    *zap.Logger
	i18nBundle   *i18n.Bundle
	apiClient    *backend.Client
	tierResolver *account.Resolver
	snapshots    snapshot.Store
	policies     = entitlement.DefaultPolicies()
)

func main() {
	var (
		addr       string
		tmplPath   string
		pubPath    string
		locPath    string
		policyPath string
	)
	// Port resolution: prefer SEARCHSCOPE_PORT, then PORT, else 8080
	port := os.Getenv("SEARCHSCOPE_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&locPath, "locales", localesDir, "locale tables directory")
	flag.StringVar(&policyPath, "policies", "configs/policies.yaml", "entitlement policies file (optional)")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath
	localesDir = locPath

	devMode = os.Getenv("SEARCHSCOPE_DEV") != "" || os.Getenv("DEV") != ""

	logger, err := observability.NewLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	appLogger = logger

	i18nBundle, err = i18n.Load(localesDir, "en", nil)
	if err != nil {
		logger.Fatal("load locales", zap.Error(err))
	}

	apiClient = backend.NewClientFromEnv()
	tierResolver = account.NewResolver(apiClient, logger)

	policies, err = entitlement.LoadPolicies(policyPath)
	if err != nil {
		logger.Warn("policies file invalid, using defaults", zap.String("path", policyPath), zap.Error(err))
	}

	if redisAddr := os.Getenv("SEARCHSCOPE_SNAPSHOT_REDIS_ADDR"); redisAddr != "" {
		snapshots = snapshot.NewRedisStore(redisAddr, snapshot.DefaultTTL, logger)
		logger.Info("snapshot store: redis", zap.String("addr", redisAddr))
	} else {
		snapshots = snapshot.NewMemoryStore(snapshot.DefaultTTL)
	}

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	r := newRouter()

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("web listening", zap.String("addr", addr), zap.Bool("dev", devMode))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

// newRouter wires the middleware stack and all page routes.
func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.Locale(i18nBundle))
	r.Use(mw.CSRF)
	r.Use(mw.VaryLocale)
	r.Use(mw.Logger(appLogger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(publicDir+"/assets"))
	r.Handle("/assets/*", assets)

	r.Get("/", LandingHandler)
	r.Post("/billing/checkout", CheckoutHandler)

	r.Get("/analyzer", AnalyzerPage)
	r.Post("/analyzer", AnalyzerSubmit)

	r.Get("/keyword-rank", KeywordPage)
	r.Post("/keyword-rank", KeywordSubmit)

	r.Get("/prompt-tracker", PromptPage)
	r.Post("/prompt-tracker", PromptSubmit)

	r.Get("/optimizer", OptimizerPage)
	r.Post("/optimizer", OptimizerSubmit)

	r.Get("/auth/login", LoginPage)
	r.Post("/auth/login", LoginSubmit)
	r.Get("/auth/register", RegisterPage)
	r.Post("/auth/register", RegisterSubmit)
	r.Post("/auth/logout", LogoutHandler)

	return r
}
