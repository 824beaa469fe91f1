package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "tailtime/docs"
	"tailtime/internal/adapters/auth/jwtauth"
	"tailtime/internal/adapters/auth/passwords"
	mem "tailtime/internal/adapters/storage/memory"
	"tailtime/internal/domain/activity"
	"tailtime/internal/domain/events"
	"tailtime/internal/domain/medical"
	"tailtime/internal/domain/pets"
	"tailtime/internal/domain/users"
	"tailtime/internal/middleware"
	"tailtime/internal/platform/respond"
	"tailtime/internal/ports/auth"
)

const (
	devSecret = "dev-secret-change-me"

	// DefaultMaxBodyBytes alcanza para una foto en data URL base64.
	DefaultMaxBodyBytes int64 = 8 << 20
)

// Repositories: los que vengan nil se reemplazan por la versión in-memory.
type Repositories struct {
	Users    users.Repository
	Pets     pets.Repository
	Activity activity.Repository
	Events   events.Repository
	Medical  medical.Repository
}

type Options struct {
	Log *zap.Logger

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	RequireToken bool

	Hasher auth.PasswordHasher // nil => bcrypt default cost
	Issuer auth.TokenIssuer    // nil => JWT con secreto de desarrollo
	Photos pets.PhotoStore     // nil => upload de fotos deshabilitado

	// Zona para "hoy" y para fechas sin offset. nil => local.
	Location *time.Location

	// Límite del body de cada request. 0 => DefaultMaxBodyBytes.
	MaxBodyBytes int64

	Repos Repositories
}

type Services struct {
	Users    *users.Service
	Pets     *pets.Service
	Activity *activity.Service
	Events   *events.Service
	Medical  *medical.Service
}

func NewServices(opts Options) Services {
	opts = withDefaults(opts)
	repos := opts.Repos

	petsSvc := pets.NewService(repos.Pets, opts.Photos)
	return Services{
		Users:    users.NewService(repos.Users, opts.Hasher, opts.Issuer),
		Pets:     petsSvc,
		Activity: activity.NewService(repos.Activity, petsSvc, opts.Log, opts.Location),
		Events:   events.NewService(repos.Events),
		Medical:  medical.NewService(repos.Medical),
	}
}

// NewRouter arma servicios y handler en un paso (tests y modo dev).
func NewRouter(opts Options) http.Handler {
	return NewHandler(opts, NewServices(opts))
}

func NewHandler(opts Options, svc Services) http.Handler {
	opts = withDefaults(opts)
	log := opts.Log
	loc := opts.Location

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	// AuthContext antes del logger para que el log lleve user_id
	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS)
	r.Use(chimw.RequestSize(opts.MaxBodyBytes))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("TailTime Backend is Running!"))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// /api/auth nunca exige token
	r.Route("/api/auth", func(r chi.Router) {
		users.RegisterAuthRoutes(r, svc.Users, log)
	})

	r.Group(func(r chi.Router) {
		if opts.RequireToken {
			r.Use(middleware.RequireClaims)
		}

		r.Route("/api/pets", func(r chi.Router) {
			activity.RegisterRoutes(r, svc.Activity, log)
			pets.RegisterRoutes(r, svc.Pets, log)
		})
		r.Route("/api/events", func(r chi.Router) {
			events.RegisterRoutes(r, svc.Events, log, loc)
		})
		r.Route("/api/medical", func(r chi.Router) {
			medical.RegisterRoutes(r, svc.Medical, log, loc)
		})
		r.Route("/api/user", func(r chi.Router) {
			users.RegisterRoutes(r, svc.Users, log)
		})
	})

	return r
}

func withDefaults(opts Options) Options {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Hasher == nil {
		opts.Hasher = passwords.NewBcrypt(0)
	}
	if opts.Issuer == nil {
		// con secreto no vacío New no falla
		issuer, _ := jwtauth.New(devSecret, 24*time.Hour)
		opts.Issuer = issuer
	}

	repos := &opts.Repos
	if repos.Users == nil {
		repos.Users = mem.NewUserRepo()
	}
	if repos.Pets == nil {
		repos.Pets = mem.NewPetRepo()
	}
	if repos.Activity == nil {
		repos.Activity = mem.NewActivityRepo()
	}
	if repos.Events == nil {
		repos.Events = mem.NewEventRepo()
	}
	if repos.Medical == nil {
		repos.Medical = mem.NewMedicalRepo()
	}
	return opts
}
