package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPort               = 3001
	defaultSummarizerTimeout  = 30 * time.Second
	defaultEventQueueSize     = 256
	defaultEventWorkers       = 4
	defaultQRCodeSize         = 256
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Summarizer providers.
const (
	SummarizerProviderWebhook = "webhook"
	SummarizerProviderGoogle  = "google"
	SummarizerProviderNoop    = "noop"
)

// Legacy flat environment variables, applied after the layered config.
const (
	envPort           = "PORT"
	envDatabaseURL    = "DATABASE_URL"
	envInterpreterURL = "INTERPRETER_URL"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		// RateLimit caps requests per second per client IP; nil disables it
		RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	// Summarizer configures how comment events reach the external summarizer
	Summarizer SummarizerConfig `json:"summarizer" yaml:"summarizer"`

	// EventBus sizes the in-process dispatcher
	EventBus EventBusConfig `json:"eventBus" yaml:"eventBus"`

	// QRCode configuration for building share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig defines per-IP request throttling
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// DatabaseConfig defines the relational store
type DatabaseConfig struct {
	// Driver is "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// URL is a PostgreSQL connection string
	URL string `json:"url" yaml:"url"`

	// ReplicaURLs are optional read replicas routed through dbresolver
	ReplicaURLs []string `json:"replicaUrls" yaml:"replicaUrls"`

	// AutoMigrate applies the embedded schema on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold logs statements slower than this at warn level
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

// SummarizerConfig defines the summarization trigger
type SummarizerConfig struct {
	// Provider type: "webhook", "google" or "noop"
	Provider string `json:"provider" yaml:"provider"`

	// BaseURL of the summarizer service (webhook provider)
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Timeout bounds a single trigger call
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Breaker configures the circuit breaker around webhook calls
	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`

	// Google Cloud project ID (google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (google provider)
	TopicID string `json:"topicId" yaml:"topicId"`
}

// BreakerConfig defines circuit breaker thresholds
type BreakerConfig struct {
	MaxRequests      uint32        `json:"maxRequests" yaml:"maxRequests"`
	Interval         time.Duration `json:"interval" yaml:"interval"`
	Timeout          time.Duration `json:"timeout" yaml:"timeout"`
	FailureThreshold float64       `json:"failureThreshold" yaml:"failureThreshold"`
	MinRequests      uint32        `json:"minRequests" yaml:"minRequests"`
}

// EventBusConfig defines dispatcher capacity
type EventBusConfig struct {
	QueueSize int `json:"queueSize" yaml:"queueSize"`
	Workers   int `json:"workers" yaml:"workers"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	// BaseURL of the web frontend; codes link to {baseUrl}/apartment/{id}
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyLegacyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings every deployment needs.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if strings.TrimSpace(c.Database.URL) == "" {
			return errors.New("database url is required for postgres driver")
		}
	case DriverMemory:
	default:
		return errors.Errorf("unknown database driver: %s", c.Database.Driver)
	}

	switch c.Summarizer.Provider {
	case SummarizerProviderWebhook:
		if strings.TrimSpace(c.Summarizer.BaseURL) == "" {
			return errors.New("summarizer base url is required for webhook provider")
		}
	case SummarizerProviderGoogle:
		if c.Summarizer.ProjectID == "" || c.Summarizer.TopicID == "" {
			return errors.New("project ID and topic ID are required for google provider")
		}
	case SummarizerProviderNoop:
	default:
		return errors.Errorf("unknown summarizer provider: %s", c.Summarizer.Provider)
	}

	return nil
}

// applyLegacyEnv honours the flat PORT / DATABASE_URL / INTERPRETER_URL variables
// the frontend and summarizer deployments already set.
func applyLegacyEnv(cfg *Config) {
	if port, err := strconv.Atoi(os.Getenv(envPort)); err == nil && port > 0 {
		cfg.HTTP.Port = port
	}
	if url := os.Getenv(envDatabaseURL); url != "" {
		cfg.Database.URL = url
	}
	if url := os.Getenv(envInterpreterURL); url != "" {
		cfg.Summarizer.BaseURL = url
	}
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverPostgres
	}
	if cfg.Summarizer.Provider == "" {
		cfg.Summarizer.Provider = SummarizerProviderNoop
		if cfg.Summarizer.BaseURL != "" {
			cfg.Summarizer.Provider = SummarizerProviderWebhook
		}
	}
	if cfg.Summarizer.Timeout <= 0 {
		cfg.Summarizer.Timeout = defaultSummarizerTimeout
	}
	if cfg.EventBus.QueueSize <= 0 {
		cfg.EventBus.QueueSize = defaultEventQueueSize
	}
	if cfg.EventBus.Workers <= 0 {
		cfg.EventBus.Workers = defaultEventWorkers
	}
	if cfg.QRCode != nil && cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
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
