package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	App struct {
		Name string `yaml:"name"`
	} `yaml:"app"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	HTTP struct {
		Port         int           `yaml:"port"`
		ReadTimeout  time.Duration `yaml:"readTimeout"`
		WriteTimeout time.Duration `yaml:"writeTimeout"`
		MaxBodyBytes int64         `yaml:"maxBodyBytes"`
	} `yaml:"http"`

	Storage struct {
		Driver   string `yaml:"driver"`
		Postgres struct {
			DSN string `yaml:"dsn"`
		} `yaml:"postgres"`
		Mongo struct {
			URI      string `yaml:"uri"`
			Database string `yaml:"database"`
		} `yaml:"mongo"`
	} `yaml:"storage"`

	Auth struct {
		JWTSecret    string        `yaml:"jwtSecret"`
		TokenTTL     time.Duration `yaml:"tokenTTL"`
		BcryptCost   int           `yaml:"bcryptCost"`
		RequireToken bool          `yaml:"requireToken"`
	} `yaml:"auth"`

	Activity struct {
		// IANA (ej: "America/Lima"). Vacío => zona local del servidor.
		Timezone string `yaml:"timezone"`
	} `yaml:"activity"`

	DailyReset struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"dailyReset"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Photos struct {
		Bucket        string `yaml:"bucket"`
		Region        string `yaml:"region"`
		PublicBaseURL string `yaml:"publicBaseURL"`
	} `yaml:"photos"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.App.Name = "tailtime"
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	cfg.HTTP.Port = 3000
	cfg.HTTP.ReadTimeout = 5 * time.Second
	cfg.HTTP.WriteTimeout = 10 * time.Second
	cfg.HTTP.MaxBodyBytes = 8 << 20
	cfg.Storage.Driver = DriverMemory
	cfg.Storage.Mongo.Database = "tailtime"
	cfg.Auth.JWTSecret = "dev-secret-change-me"
	cfg.Auth.TokenTTL = 24 * time.Hour
	cfg.Auth.BcryptCost = 10
	cfg.DailyReset.Enabled = true
	return cfg
}

// Location resuelve activity.timezone.
func (c *Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Activity.Timezone)
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid activity.timezone %q", name)
	}
	return loc, nil
}

// New carga .env (si existe), config.yaml (si existe) y overrides por env.
func New() (*Config, error) {
	_ = godotenv.Load()
	return Load("config", ".", "config", "../config", "../../config")
}

func Load(name string, searchPaths ...string) (*Config, error) {
	k := koanf.New(".")

	if path, ok := findFile(name+".yaml", searchPaths); ok {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s failed", path)
		}
	}

	existing := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, v string) (string, any) {
			return canonicalizeEnvKey(key, existing), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "yaml",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			TagName:          "yaml",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config failed")
	}

	applyLegacyEnv(cfg)
	return cfg, nil
}

// applyLegacyEnv respeta las variables que usaba el despliegue anterior.
func applyLegacyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if port, err := parsePort(v); err == nil {
			cfg.HTTP.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("MONGO_URI")); v != "" {
		cfg.Storage.Mongo.URI = v
		if os.Getenv("STORAGE_DRIVER") == "" {
			cfg.Storage.Driver = DriverMongo
		}
	}
	if v := strings.TrimSpace(os.Getenv("DB_DSN")); v != "" {
		cfg.Storage.Postgres.DSN = v
		if os.Getenv("STORAGE_DRIVER") == "" && os.Getenv("MONGO_URI") == "" {
			cfg.Storage.Driver = DriverPostgres
		}
	}
}

func parsePort(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 65535 {
		return 0, errors.Errorf("invalid port %q", s)
	}
	return n, nil
}

func findFile(name string, paths []string) (string, bool) {
	for _, p := range paths {
		candidate := filepath.Join(p, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// canonicalizeEnvKey: STORAGE_MONGO_URI => storage.mongo.uri, alineando cada
// segmento con las keys ya cargadas del yaml (AUTH_JWTSECRET => auth.jwtSecret).
func canonicalizeEnvKey(raw string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(raw), "_")
	out := make([]string, 0, len(segments))
	current := existing

	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if matched, next, ok := findSegment(current, seg); ok {
			out = append(out, matched)
			current = next
			continue
		}
		out = append(out, seg)
		current = nil
	}
	return strings.Join(out, ".")
}

func findSegment(current map[string]any, seg string) (string, map[string]any, bool) {
	needle := normalize(seg)
	for key, value := range current {
		if normalize(key) != needle {
			continue
		}
		child, _ := value.(map[string]any)
		return key, child, true
	}
	return "", nil, false
}

func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
