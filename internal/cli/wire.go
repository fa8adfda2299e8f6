package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tradeready/portal/internal/api"
	"github.com/tradeready/portal/internal/api/metrics"
	"github.com/tradeready/portal/internal/core/ports"
	"github.com/tradeready/portal/internal/core/service"
	"github.com/tradeready/portal/internal/infrastructure/db/memory"
	mongodb "github.com/tradeready/portal/internal/infrastructure/db/mongo"
	redisdb "github.com/tradeready/portal/internal/infrastructure/db/redis"
	"github.com/tradeready/portal/internal/infrastructure/http/handlers"
	"github.com/tradeready/portal/internal/infrastructure/queue"
	"github.com/tradeready/portal/internal/pkg/config"
	"github.com/tradeready/portal/internal/pkg/validation"
)

// app holds the wired services and the backends they run on.
type app struct {
	cfg          *config.Config
	log          zerolog.Logger
	validator    *validation.Validator
	portal       *service.PortalService
	assessment   *service.AssessmentService
	registration *service.RegistrationService
	activity     ports.ActivityService
	dispatcher   *queue.Dispatcher
	health       map[string]handlers.Checker
	closers      []func(context.Context) error
}

type backends struct {
	users   ports.UserStore
	records ports.ActivityRepository
	tokens  ports.TokenStore
	tabs    ports.TabStore
	dedup   service.DedupChecker
	health  map[string]handlers.Checker
	closers []func(context.Context) error
}

// build connects the configured backends and wires the services on top.
func build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	b, err := connectBackends(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	codec, hasher := credentials(cfg)
	v := validation.New()

	activity := service.NewActivityService(b.records, b.dedup, log.With().Str("component", "activity").Logger())
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activity, metrics.ActivityQueueDepth,
		log.With().Str("component", "dispatcher").Logger())

	portal := service.NewPortalService(b.users, b.tokens, codec, hasher, dispatcher,
		log.With().Str("component", "portal").Logger())
	if cfg.SeedDefaultUser {
		if err := portal.SeedDefault(ctx); err != nil {
			b.close(ctx)
			return nil, err
		}
	}

	return &app{
		cfg:        cfg,
		log:        log,
		validator:  v,
		portal:     portal,
		assessment: service.NewAssessmentService(b.tabs, dispatcher, log.With().Str("component", "assessment").Logger()),
		registration: service.NewRegistrationService(b.tabs, portal, v, cfg.RedirectAfter,
			log.With().Str("component", "registration").Logger()),
		activity:   activity,
		dispatcher: dispatcher,
		health:     b.health,
		closers:    b.closers,
	}, nil
}

func connectBackends(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backends, error) {
	b := &backends{health: map[string]handlers.Checker{}}

	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:         cfg.Mongo.URI,
			Database:    cfg.Mongo.Database,
			MaxPoolSize: cfg.Mongo.MaxPoolSize,
		})
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, client.Disconnect)

		users := mongodb.NewUserRepository(db)
		records := mongodb.NewActivityRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			b.close(ctx)
			return nil, fmt.Errorf("user indexes: %w", err)
		}
		if err := records.EnsureIndexes(ctx); err != nil {
			b.close(ctx)
			return nil, fmt.Errorf("activity indexes: %w", err)
		}
		b.users, b.records = users, records
		b.health["mongodb"] = handlers.MongoChecker(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	default:
		b.users = memory.NewUserStore(memory.Latency{Min: cfg.Store.LatencyMin, Max: cfg.Store.LatencyMax})
		b.records = memory.NewActivityRepository()
	}

	switch cfg.Session.Driver {
	case config.DriverRedis:
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			b.close(ctx)
			return nil, err
		}
		b.closers = append(b.closers, func(context.Context) error { return rdb.Close() })

		b.tokens = redisdb.NewTokenStore(rdb)
		b.tabs = redisdb.NewTabStore(rdb, cfg.Session.TabTTL)
		b.dedup = redisdb.NewDedupChecker(rdb)
		b.health["redis"] = handlers.RedisChecker(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	default:
		b.tokens = memory.NewTokenStore()
		b.tabs = memory.NewTabStore(cfg.Session.TabTTL)
		b.dedup = memory.NewDedupChecker()
	}

	return b, nil
}

func (b *backends) close(ctx context.Context) {
	for i := len(b.closers) - 1; i >= 0; i-- {
		_ = b.closers[i](ctx)
	}
}

func credentials(cfg *config.Config) (service.TokenCodec, service.PasswordHasher) {
	var codec service.TokenCodec = service.OpaqueTokenCodec{}
	if cfg.Token.Format == config.TokenJWT {
		codec = service.NewJWTTokenCodec(cfg.Token.Secret, cfg.Token.TTL)
	}
	var hasher service.PasswordHasher = service.BcryptHasher{Cost: cfg.Password.BcryptCost}
	if cfg.Password.Hashing == config.HashPlain {
		hasher = service.PlainHasher{}
	}
	return codec, hasher
}

// services exposes the wired services to the router.
func (a *app) services() api.Services {
	return api.Services{
		Portal:       a.portal,
		Assessment:   a.assessment,
		Registration: a.registration,
		Activity:     a.activity,
	}
}

// Close releases the backend connections in reverse order of opening.
func (a *app) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
