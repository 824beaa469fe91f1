package main

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tailtime/internal/adapters/auth/jwtauth"
	"tailtime/internal/adapters/auth/passwords"
	"tailtime/internal/adapters/lock/memlock"
	"tailtime/internal/adapters/lock/redislock"
	"tailtime/internal/adapters/photos/s3store"
	"tailtime/internal/adapters/storage/mongodb"
	"tailtime/internal/adapters/storage/postgres"
	"tailtime/internal/domain/pets"
	"tailtime/internal/jobs/dailyreset"
	"tailtime/internal/platform/config"
	"tailtime/internal/platform/logger"
	"tailtime/internal/ports/auth"
	"tailtime/internal/ports/lock"
	"tailtime/internal/router"
)

const (
	startTimeout    = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func newLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    cfg.App.Name,
	})
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}

func newLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Location()
}

// newRepositories abre el backend elegido en storage.driver.
// memory deja los campos en nil y el router completa con la versión in-memory.
func newRepositories(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (router.Repositories, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)) {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Storage.Postgres.DSN)
		if err != nil {
			return router.Repositories{}, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return router.Repositories{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return errors.WithStack(db.Close()) },
		})
		log.Info("storage ready", zap.String("driver", config.DriverPostgres))
		return router.Repositories{
			Users:    postgres.NewUsersRepo(db),
			Pets:     postgres.NewPetsRepo(db),
			Activity: postgres.NewActivityRepo(db),
			Events:   postgres.NewEventsRepo(db),
			Medical:  postgres.NewMedicalRepo(db),
		}, nil

	case config.DriverMongo:
		client, err := mongodb.Open(ctx, cfg.Storage.Mongo.URI)
		if err != nil {
			return router.Repositories{}, err
		}
		db := client.Database(cfg.Storage.Mongo.Database)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return router.Repositories{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error { return errors.WithStack(client.Disconnect(ctx)) },
		})
		log.Info("storage ready", zap.String("driver", config.DriverMongo), zap.String("database", db.Name()))
		return router.Repositories{
			Users:    mongodb.NewUsersRepo(db),
			Pets:     mongodb.NewPetsRepo(db),
			Activity: mongodb.NewActivityRepo(db),
			Events:   mongodb.NewEventsRepo(db),
			Medical:  mongodb.NewMedicalRepo(db),
		}, nil

	case config.DriverMemory, "":
		log.Warn("storage ready: in-memory, los datos se pierden al reiniciar")
		return router.Repositories{}, nil

	default:
		return router.Repositories{}, errors.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}
}

func newJWT(cfg *config.Config) (*jwtauth.Service, error) {
	return jwtauth.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func newHasher(cfg *config.Config) auth.PasswordHasher {
	return passwords.NewBcrypt(cfg.Auth.BcryptCost)
}

// newPhotoStore: sin photos.bucket el upload queda deshabilitado.
func newPhotoStore(cfg *config.Config, log *zap.Logger) (pets.PhotoStore, error) {
	if strings.TrimSpace(cfg.Photos.Bucket) == "" {
		log.Info("photo uploads disabled: photos.bucket not set")
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	store, err := s3store.New(ctx, s3store.Options{
		Bucket:        cfg.Photos.Bucket,
		Region:        cfg.Photos.Region,
		PublicBaseURL: cfg.Photos.PublicBaseURL,
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// newLocker: redis si hay redis.addr; si no, lock en memoria (una sola instancia).
func newLocker(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (lock.Locker, error) {
	if strings.TrimSpace(cfg.Redis.Addr) == "" {
		return memlock.New(), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	client, err := redislock.NewClient(ctx, redislock.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return errors.WithStack(client.Close()) },
	})
	log.Info("daily reset lock: redis", zap.String("addr", cfg.Redis.Addr))
	return redislock.New(client), nil
}

type routerParams struct {
	fx.In

	Config   *config.Config
	Log      *zap.Logger
	Location *time.Location
	Repos    router.Repositories
	JWT      *jwtauth.Service
	Hasher   auth.PasswordHasher
	Photos   pets.PhotoStore `optional:"true"`
}

func newRouterOptions(p routerParams) router.Options {
	return router.Options{
		Log:          p.Log,
		AuthVerifier: p.JWT,
		RequireToken: p.Config.Auth.RequireToken,
		Hasher:       p.Hasher,
		Issuer:       p.JWT,
		Photos:       p.Photos,
		Location:     p.Location,
		MaxBodyBytes: p.Config.HTTP.MaxBodyBytes,
		Repos:        p.Repos,
	}
}

func newServices(opts router.Options) router.Services {
	return router.NewServices(opts)
}

func newHTTPServer(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger, opts router.Options, svc router.Services) *http.Server {
	srv := &http.Server{
		Addr:         net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port)),
		Handler:      router.NewHandler(opts, svc),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()

			log.Info("shutting down http server")
			return errors.WithStack(srv.Shutdown(shutdownCtx))
		},
	})
	return srv
}

func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, srv *http.Server, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return errors.Wrapf(err, "listen %s", srv.Addr)
			}
			log.Info("starting http server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
	})
}

func startDailyReset(lc fx.Lifecycle, cfg *config.Config, svc router.Services, locker lock.Locker, loc *time.Location, log *zap.Logger) {
	if !cfg.DailyReset.Enabled {
		log.Info("daily reset disabled")
		return
	}
	runner := dailyreset.New(svc.Pets, locker, log.Named("dailyreset"), loc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				runner.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
