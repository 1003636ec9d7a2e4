package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/api"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/booking"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/cache"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/events"
	appmiddleware "github.com/gnaneshwar04/Movie-Ticket-Booking/internal/middleware"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/repository"
	appvalidator "github.com/gnaneshwar04/Movie-Ticket-Booking/internal/validator"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/vcs"
	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
)

const serviceName = "movie-ticket-booking-api"

var (
	version = vcs.Version()
)

type bookingManager interface {
	Book(ctx context.Context, showID int, seatIDs []int) (*domain.Booking, error)
}

type analyticsAggregator interface {
	MovieAnalytics(ctx context.Context, movieID int, start, end time.Time) (*domain.MovieAnalytics, error)
}

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate

	movieRepo   domain.MovieRepository
	venueRepo   domain.VenueRepository
	seatRepo    domain.SeatRepository
	showRepo    domain.ShowRepository
	bookingRepo domain.BookingStore

	bookingManager bookingManager
	analytics      analyticsAggregator
}

func Run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, displayVersion, err := ParseConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		return nil
	}

	app := &Application{
		config: cfg,
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	logger := app.logger

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var redisClient redis.UniversalClient
	if cfg.Redis.URL != "" {
		client, err := NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer client.Close()

		redisClient = client
	} else {
		logger.Info("redis URL not set, analytics cache disabled")
	}

	var publisher domain.EventPublisher = events.NoopPublisher{}
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQP.URL)
		if err != nil {
			return err
		}
		defer amqpPublisher.Close()

		publisher = amqpPublisher
	} else {
		logger.Info("AMQP URL not set, booking events disabled")
	}

	app, err = NewApp(cfg, logger, db, redisClient, appvalidator.NewValidator(), publisher)
	if err != nil {
		return err
	}

	return app.run()
}

type options struct {
	bookingStore domain.BookingStore
}

type Option func(*options)

// WithBookingStore makes bookings run through store instead of the Postgres
// booking repository. Reads of committed bookings still go to Postgres.
func WithBookingStore(store domain.BookingStore) Option {
	return func(o *options) {
		o.bookingStore = store
	}
}

// NewApp wires repositories and services on top of the given connections.
// redisClient may be nil, in which case analytics are not cached.
func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	publisher domain.EventPublisher,
	opts ...Option) (*Application, error) {

	bookingRepo := repository.NewPostgresBookingRepository(db)

	o := options{bookingStore: bookingRepo}
	for _, opt := range opts {
		opt(&o)
	}

	analyticsRepo := repository.NewPostgresAnalyticsRepository(db)

	managerOpts := []booking.Option{
		booking.WithLogger(logger),
		booking.WithPublisher(publisher),
	}

	var analyticsCache booking.AnalyticsCache
	if redisClient != nil {
		redisCache := cache.NewAnalyticsCache(redisClient, cfg.Cache.AnalyticsTTL)
		analyticsCache = redisCache
		managerOpts = append(managerOpts, booking.WithCacheInvalidator(redisCache))
	}

	manager, err := booking.NewManager(o.bookingStore, managerOpts...)
	if err != nil {
		return nil, err
	}

	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redisClient,
		validator:      validator,
		movieRepo:      repository.NewPostgresMovieRepository(db),
		venueRepo:      repository.NewPostgresVenueRepository(db),
		seatRepo:       repository.NewPostgresSeatRepository(db),
		showRepo:       repository.NewPostgresShowRepository(db),
		bookingRepo:    bookingRepo,
		bookingManager: manager,
		analytics:      booking.NewAggregator(analyticsRepo, analyticsCache, logger),
	}, nil
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		rdb.Close()
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(rdb); err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(appmiddleware.NotFoundHandler)
	r.MethodNotAllowed(appmiddleware.MethodNotAllowedHandler)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(appmiddleware.RequestLogger(app.logger))
	r.Use(appmiddleware.RecoverPanic)

	r.Get("/openapi.yaml", app.GetOpenAPIDocument)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.invalidParamResponse,
	})
}
