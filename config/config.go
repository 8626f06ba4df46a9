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
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "2MB"
	defaultMaxUploadBytes     = 1 << 20
	defaultAccessTTL          = 15 * time.Minute
	defaultRefreshTTL         = 7 * 24 * time.Hour
	defaultMembershipMonths   = 12
	defaultPurgeInterval      = time.Hour
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
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Session controls the cookies that carry the identity tokens
	Session *SessionConfig `json:"session" yaml:"session"`

	// Storage configuration for uploaded logos
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Membership pricing and validity
	Membership *MembershipConfig `json:"membership" yaml:"membership"`

	// QRCode configuration for membership cards
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	Migrate *MigrateConfig `json:"migrate" yaml:"migrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int `json:"bcryptCost" yaml:"bcryptCost"`
	MinPasswordLength int `json:"minPasswordLength" yaml:"minPasswordLength"`
}

// SessionConfig defines the session cookies
type SessionConfig struct {
	AccessCookie  string        `json:"accessCookie" yaml:"accessCookie"`
	RefreshCookie string        `json:"refreshCookie" yaml:"refreshCookie"`
	Domain        string        `json:"domain" yaml:"domain"`
	Secure        bool          `json:"secure" yaml:"secure"`
	AccessTTL     time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL    time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
	// PurgeInterval is how often expired refresh tokens are deleted
	PurgeInterval time.Duration `json:"purgeInterval" yaml:"purgeInterval"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines where uploads are written and how they are served.
type StorageConfig struct {
	// BucketURL is a gocloud.dev URL: file:///var/lib/perkpass/uploads, mem://, gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL is prepended to object keys to build public links
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxUploadBytes int64 `json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

// MembershipConfig defines membership pricing and how many calendar months a membership lasts
type MembershipConfig struct {
	PriceCents             int64 `json:"priceCents" yaml:"priceCents"`
	FundraiserSharePercent int64 `json:"fundraiserSharePercent" yaml:"fundraiserSharePercent"`
	ValidityMonths         int   `json:"validityMonths" yaml:"validityMonths"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

// MetricsConfig defines the Prometheus namespace
type MetricsConfig struct {
	Namespace string `json:"namespace" yaml:"namespace"`
}

// MigrateConfig controls the embedded schema migrations.
type MigrateConfig struct {
	OnStart bool `json:"onStart" yaml:"onStart"`
}

// LoadWithEnv reads <currEnv>.yaml from the first search path that has it and
// overlays environment variables on top. POSTGRES_SSLMODE lands on
// postgres.sslMode because env keys are matched against the YAML keys.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	configFile, err := findConfigFile(currEnv+".yaml", configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", configFile)
	}

	yamlKeys := k.Raw()
	envOpt := env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, yamlKeys), value
		},
	}
	if err := k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}

	cfg := new(T)
	decoder := &mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoder}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", configFile)
	}

	return cfg, nil
}

// findConfigFile looks in the working directory first, then in each extra
// path relative to it.
func findConfigFile(name string, extra []string) (string, error) {
	dirs := []string{defaultPath}
	if len(extra) > 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range extra {
			dirs = append(dirs, filepath.Join(pwd, dir))
		}
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", name, strings.Join(dirs, ", "))
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so the rest of the application can read them without nil checks.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.MinPasswordLength <= 0 {
		cfg.Auth.MinPasswordLength = 8
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.AccessCookie == "" {
		cfg.Session.AccessCookie = "pp_access"
	}
	if cfg.Session.RefreshCookie == "" {
		cfg.Session.RefreshCookie = "pp_refresh"
	}
	if cfg.Session.AccessTTL <= 0 {
		cfg.Session.AccessTTL = defaultAccessTTL
	}
	if cfg.Session.RefreshTTL <= 0 {
		cfg.Session.RefreshTTL = defaultRefreshTTL
	}
	if cfg.Session.PurgeInterval <= 0 {
		cfg.Session.PurgeInterval = defaultPurgeInterval
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = "mem://"
	}
	if cfg.Storage.PublicBaseURL == "" {
		cfg.Storage.PublicBaseURL = "/uploads/"
	}
	if cfg.Storage.MaxUploadBytes <= 0 {
		cfg.Storage.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.Membership == nil {
		cfg.Membership = &MembershipConfig{}
	}
	if cfg.Membership.ValidityMonths <= 0 {
		cfg.Membership.ValidityMonths = defaultMembershipMonths
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "perkpass"
	}

	if cfg.Migrate == nil {
		cfg.Migrate = &MigrateConfig{}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
