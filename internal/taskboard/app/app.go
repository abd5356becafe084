package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	httpapi "github.com/aussiebroadwan/taskboard/internal/taskboard/http"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/notify"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store/drivers/mongo"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	jwtSecretBytes   = 32
	redisPingTimeout = 5 * time.Second
)

// Application wires the task service together: store, services, push
// fan-out and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db   store.Store
	keys *jwtx.HS256

	authService *service.AuthService
	taskService *service.TaskService

	hub    *notify.Hub
	relay  *notify.RedisRelay // optional
	redis  redis.UniversalClient
	export *notify.AMQPExporter // optional

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "taskboard",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.closeResources()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run serves until SIGINT/SIGTERM or until the server or relay fails, then
// shuts down.
func (app *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = slogx.WithContext(ctx, app.logger)
	g, ctx := errgroup.WithContext(ctx)

	app.logger.Info("taskboard starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store", app.cfg.StoreDriver,
		"delivery", string(app.hub.Mode()),
	)

	g.Go(func() error {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	if app.relay != nil {
		g.Go(func() error { return app.relay.Run(ctx) })
	}

	g.Go(func() error {
		<-ctx.Done()
		app.logger.Info("shutdown requested")
		return app.Shutdown()
	})

	return g.Wait()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down taskboard...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Ends every push connection's writer.
	app.hub.Close()

	err := app.closeResources()
	app.logger.Info("taskboard stopped")
	return err
}

func (app *Application) closeResources() error {
	var errs []error

	if app.export != nil {
		if err := app.export.Close(); err != nil {
			app.logger.Error("error closing amqp exporter", "error", err)
			errs = append(errs, err)
		}
	}
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
			errs = append(errs, err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// initDatabase opens the configured store and applies migrations. Failure
// here is fatal.
func (app *Application) initDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		db  store.Store
		err error
	)
	switch app.cfg.StoreDriver {
	case DriverMongo:
		db, err = mongo.NewStore(ctx, app.cfg.MongoURI, app.cfg.MongoDatabase)
	default:
		db, err = sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.StoreDriver)
	return nil
}

// initServices builds the token keys, the services and the event sinks.
func (app *Application) initServices() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		secret = cryptox.MustGenerateToken(jwtSecretBytes)
		app.logger.Warn("JWT_SECRET not set, using a per-process secret; sessions end on restart")
	}

	keys, err := jwtx.NewHS256([]byte(secret), app.cfg.JWTIssuer)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT keys: %w", err)
	}
	app.keys = keys

	app.hub = notify.NewHub(app.cfg.NotifyDelivery, notify.DefaultQueueSize)
	sinks := notify.NewFanout().Add("hub", app.hub)

	if app.cfg.RedisAddr != "" {
		app.redis = redis.NewClient(&redis.Options{
			Addr:     app.cfg.RedisAddr,
			Password: app.cfg.RedisPassword,
			DB:       app.cfg.RedisDB,
		})
		app.relay = notify.NewRedisRelay(app.redis, app.hub, notify.DefaultRelayChannel)

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		err := app.relay.Ping(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to connect to redis at %s: %w", app.cfg.RedisAddr, err)
		}
		sinks.Add("redis", app.relay)
		app.logger.Info("redis relay enabled", "addr", app.cfg.RedisAddr, "instance_id", app.relay.InstanceID())
	}

	if app.cfg.AMQPURL != "" {
		export, err := notify.DialAMQP(app.cfg.AMQPURL, notify.EventsQueue)
		if err != nil {
			return fmt.Errorf("failed to connect event export: %w", err)
		}
		app.export = export
		sinks.Add("amqp", export)
		app.logger.Info("amqp event export enabled", "queue", notify.EventsQueue)
	}

	app.authService = &service.AuthService{
		Store:    app.db,
		Signer:   keys,
		Verifier: keys,
		Issuer:   app.cfg.JWTIssuer,
		TokenTTL: app.cfg.JWTExpiresIn,
	}
	app.taskService = &service.TaskService{
		Store:    app.db,
		Notifier: sinks,
	}

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		BuildVersion,
		app.cfg.Env,
		app.db,
		app.logger,
		app.cfg.CORSAllowedOrigins,
	)

	router.AuthService = app.authService
	router.TaskService = app.taskService
	router.Google = &httpapi.GoogleHandler{
		AuthService: app.authService,
		OAuth: httpapi.NewGoogleConfig(
			app.cfg.GoogleClientID,
			app.cfg.GoogleClientSecret,
			app.cfg.GoogleRedirectURL,
		),
		FrontendURL: app.cfg.FrontendURL,
		Secure:      app.cfg.Env == "prod",
	}
	router.Push = notify.NewWSHandler(app.hub, app.authService, app.cfg.WSIdleTimeout,
		originChecker(app.cfg.CORSAllowedOrigins))
	if app.relay != nil {
		router.Relay = app.relay
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// originChecker admits websocket upgrades from the CORS origins. Requests
// without an Origin header are not from a browser and pass.
func originChecker(origins []string) func(*http.Request) bool {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(origins, origin)
	}
}
