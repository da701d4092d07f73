package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultDotEnvFile         = ".env"
	defaultMaxRequestBodySize = "100KB"
	defaultAPIPrefix          = "/api/v1"
	defaultAlgorithm          = "HS256"
	defaultTokenTTLMinutes    = 30
	defaultCORSOrigin         = "http://localhost:5173"

	configPathEnv = "CONFIG_PATH"
)

// legacyEnvKeys maps the flat variable names used by older deployments onto config paths.
var legacyEnvKeys = map[string]string{
	"SECRET_KEY":                  "security.secretKey",
	"ALGORITHM":                   "security.algorithm",
	"ACCESS_TOKEN_EXPIRE_MINUTES": "security.accessTokenExpireMinutes",
	"PROJECT_NAME":                "env.serviceName",
	"VERSION":                     "env.version",
	"API_PREFIX":                  "http.apiPrefix",
	"POSTGRES_HOST":               "postgres.master.host",
	"POSTGRES_PORT":               "postgres.master.port",
	"POSTGRES_USER":               "postgres.master.userName",
	"POSTGRES_PASSWORD":           "postgres.master.password",
	"POSTGRES_DB":                 "postgres.database",
}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Version     string `json:"version" yaml:"version"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"gt=0,lte=65535"`
		APIPrefix          string `json:"apiPrefix" yaml:"apiPrefix"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		CORS CORSConfig `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres" validate:"required"`

	Migrations struct {
		Enabled bool `json:"enabled" yaml:"enabled"`
	} `json:"migrations" yaml:"migrations"`

	Security SecurityConfig `json:"security" yaml:"security"`

	// PubSub configuration for account event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// SecurityConfig holds the token signing and password hashing settings.
type SecurityConfig struct {
	SecretKey                string `json:"secretKey" yaml:"secretKey" validate:"required"`
	Algorithm                string `json:"algorithm" yaml:"algorithm" validate:"oneof=HS256 HS384 HS512"`
	AccessTokenExpireMinutes int    `json:"accessTokenExpireMinutes" yaml:"accessTokenExpireMinutes" validate:"gt=0"`
	BcryptCost               int    `json:"bcryptCost" yaml:"bcryptCost" validate:"gte=0,lte=31"`
}

// AccessTokenTTL returns the lifetime of tokens issued at login.
func (s SecurityConfig) AccessTokenTTL() time.Duration {
	return time.Duration(s.AccessTokenExpireMinutes) * time.Minute
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowOrigins     []string `json:"allowOrigins" yaml:"allowOrigins"`
	AllowCredentials bool     `json:"allowCredentials" yaml:"allowCredentials"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			if legacy, ok := legacyEnvKeys[k]; ok {
				return canonicalizePath(legacy, existingConfigMap), v
			}
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New builds the process configuration: config.yaml, then .env, then the environment.
// A missing required value aborts startup.
func New() (*Config, error) {
	if err := loadDotEnv(defaultDotEnvFile); err != nil {
		return nil, err
	}

	paths := []string{"config", "../config", "../../config"}
	if custom := strings.TrimSpace(os.Getenv(configPathEnv)); custom != "" {
		paths = append([]string{custom}, paths...)
	}

	cfg, err := LoadWithEnv[Config]("config", paths...)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the required values and ranges declared in struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			names := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				names = append(names, fe.Namespace()+" ("+fe.Tag()+")")
			}

			return errors.Errorf("invalid configuration: %s", strings.Join(names, ", "))
		}

		return errors.Wrap(err, "invalid configuration")
	}

	return c.validatePostgres()
}

// validatePostgres requires the credentials that have no safe default.
func (c *Config) validatePostgres() error {
	var missing []string
	if strings.TrimSpace(c.Postgres.Master.UserName) == "" {
		missing = append(missing, "postgres.master.userName (POSTGRES_USER)")
	}
	if c.Postgres.Master.Password == "" {
		missing = append(missing, "postgres.master.password (POSTGRES_PASSWORD)")
	}
	if strings.TrimSpace(c.Postgres.Database) == "" {
		missing = append(missing, "postgres.database (POSTGRES_DB)")
	}

	if len(missing) > 0 {
		return errors.Errorf("invalid configuration: missing %s", strings.Join(missing, ", "))
	}

	return nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if strings.TrimSpace(c.HTTP.APIPrefix) == "" {
		c.HTTP.APIPrefix = defaultAPIPrefix
	}
	if len(c.HTTP.CORS.AllowOrigins) == 0 {
		c.HTTP.CORS.AllowOrigins = []string{defaultCORSOrigin}
	}
	if strings.TrimSpace(c.Security.Algorithm) == "" {
		c.Security.Algorithm = defaultAlgorithm
	}
	if c.Security.AccessTokenExpireMinutes == 0 {
		c.Security.AccessTokenExpireMinutes = defaultTokenTTLMinutes
	}
}

// loadDotEnv exports the variables of a .env file without overriding the real environment.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrapf(err, "stat %s", path)
	}

	return errors.Wrapf(godotenv.Load(path), "load %s", path)
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")

	return canonicalizeSegments(segments, existing)
}

// canonicalizePath aligns an already dotted path with the casing used in the YAML file.
func canonicalizePath(path string, existing map[string]any) string {
	return canonicalizeSegments(strings.Split(path, "."), existing)
}

func canonicalizeSegments(segments []string, existing map[string]any) string {
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
