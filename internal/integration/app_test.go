package integration_test

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/app"
	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/domain"
	appvalidator "github.com/gnaneshwar04/Movie-Ticket-Booking/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	Config      app.Config
	App         *app.Application
	DB          *pgxpool.Pool
	RedisClient *redis.Client
	Publisher   *recordingPublisher
}

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.BookingConfirmed
}

func (p *recordingPublisher) PublishBookingConfirmed(ctx context.Context, event domain.BookingConfirmed) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Events() []domain.BookingConfirmed {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]domain.BookingConfirmed(nil), p.events...)
}

func (p *recordingPublisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = nil
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	validator := appvalidator.NewValidator()
	publisher := &recordingPublisher{}

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	application, err := app.NewApp(cfg, logger, db, redisClient, validator, publisher)
	if err != nil {
		redisClient.Close()
		db.Close()
		return nil, err
	}

	return &TestApp{
		Config:      cfg,
		App:         application,
		DB:          db,
		RedisClient: redisClient,
		Publisher:   publisher,
	}, nil
}

func (a *TestApp) Close() {
	a.RedisClient.Close()
	a.DB.Close()
}
