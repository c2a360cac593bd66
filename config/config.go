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
	defaultMaxRequestBodySize = "100KB"
	defaultAppBaseURL         = "http://localhost:5000"

	defaultStateTTL           = 10 * time.Minute
	defaultStateSweepInterval = time.Minute

	defaultHTTPClientTimeout = 30 * time.Second
	defaultHTTPMaxRetries    = 3
	defaultHTTPBaseDelay     = 200 * time.Millisecond
	defaultHTTPMaxDelay      = 5 * time.Second

	defaultSyncWindow        = 7 * 24 * time.Hour
	defaultOrgConcurrency    = 1
	defaultOrgLimit          = 1000
	defaultSlackChannelLimit = 10
	defaultSlackPageSize     = 200
	defaultGmailPageSize     = 100
	defaultGmailMaxPages     = 1

	defaultSchedulerSpec = "@every 15m"

	// A local sqlite file has no network hop, so its slow threshold is lower.
	defaultPostgresSlowQuery = 200 * time.Millisecond
	defaultSQLiteSlowQuery   = 50 * time.Millisecond

	defaultRateLimitRequests = 100
	defaultRateLimitWindow   = time.Minute
)

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
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

	App struct {
		// BaseURL is the public origin used for OAuth redirects and the popup postMessage target.
		BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	} `json:"app" yaml:"app"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SQLite struct {
		Path string `json:"path" yaml:"path"`
	} `json:"sqlite" yaml:"sqlite"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Encryption EncryptionConfig `json:"encryption" yaml:"encryption"`

	OAuth OAuthConfig `json:"oauth" yaml:"oauth"`

	Redis RedisConfig `json:"redis" yaml:"redis"`

	Providers ProvidersConfig `json:"providers" yaml:"providers"`

	HTTPClient HTTPClientConfig `json:"httpClient" yaml:"httpClient"`

	Sync SyncConfig `json:"sync" yaml:"sync"`

	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// PubSub configuration for sync notifications
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig selects the persistence backend. An empty driver leaves the
// service running with integrations disabled.
type DatabaseConfig struct {
	Driver      string `json:"driver" yaml:"driver"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
	// SlowQueryThreshold defaults per driver.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	// LogRecordNotFound logs gorm.ErrRecordNotFound as a query error. Lookups
	// by natural key miss routinely, so it is off by default.
	LogRecordNotFound bool `json:"logRecordNotFound" yaml:"logRecordNotFound"`
}

// Configured reports whether a database driver was selected.
func (c DatabaseConfig) Configured() bool {
	return c.Driver != ""
}

// EncryptionConfig holds the token encryption key. Either KeyBase64 is the raw
// 32-byte key, or WrappedKeyBase64 is decrypted at startup through KeeperURL.
type EncryptionConfig struct {
	KeyBase64        string `json:"keyBase64" yaml:"keyBase64"`
	WrappedKeyBase64 string `json:"wrappedKeyBase64" yaml:"wrappedKeyBase64"`
	KeeperURL        string `json:"keeperUrl" yaml:"keeperUrl"`
}

// OAuthConfig controls anti-CSRF state handling.
type OAuthConfig struct {
	StateTTL           time.Duration `json:"stateTtl" yaml:"stateTtl"`
	StateSweepInterval time.Duration `json:"stateSweepInterval" yaml:"stateSweepInterval"`
	// StateStore is "memory" (single instance) or "redis" (shared across instances).
	StateStore string `json:"stateStore" yaml:"stateStore"`
}

// RedisConfig is used by the redis state store.
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// ProviderCredentials are the OAuth client settings of one provider.
type ProviderCredentials struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string `json:"redirectUri" yaml:"redirectUri"`
}

// Configured reports whether a client id is present.
func (p ProviderCredentials) Configured() bool {
	return p.ClientID != ""
}

// ProvidersConfig groups provider credentials. Outlook and Teams share the Microsoft app.
type ProvidersConfig struct {
	Slack     ProviderCredentials `json:"slack" yaml:"slack"`
	Google    ProviderCredentials `json:"google" yaml:"google"`
	Microsoft ProviderCredentials `json:"microsoft" yaml:"microsoft"`
	Zoom      ProviderCredentials `json:"zoom" yaml:"zoom"`
}

// HTTPClientConfig bounds outbound provider calls.
type HTTPClientConfig struct {
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
	MaxRetries int           `json:"maxRetries" yaml:"maxRetries"`
	BaseDelay  time.Duration `json:"baseDelay" yaml:"baseDelay"`
	MaxDelay   time.Duration `json:"maxDelay" yaml:"maxDelay"`
}

// SyncConfig tunes ingestion.
type SyncConfig struct {
	Window            time.Duration `json:"window" yaml:"window"`
	OrgConcurrency    int           `json:"orgConcurrency" yaml:"orgConcurrency"`
	OrgLimit          int           `json:"orgLimit" yaml:"orgLimit"`
	SlackChannelLimit int           `json:"slackChannelLimit" yaml:"slackChannelLimit"`
	SlackPageSize     int           `json:"slackPageSize" yaml:"slackPageSize"`
	GmailPageSize     int           `json:"gmailPageSize" yaml:"gmailPageSize"`
	GmailMaxPages     int           `json:"gmailMaxPages" yaml:"gmailMaxPages"`
}

// SchedulerConfig controls the periodic all-org sync.
type SchedulerConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Spec    string `json:"spec" yaml:"spec"`
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

// RateLimitConfig is the per-IP budget on public routes.
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Requests int           `json:"requests" yaml:"requests"`
	Window   time.Duration `json:"window" yaml:"window"`
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

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: ENCRYPTION_KEYBASE64 -> encryption.keyBase64
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
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
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	applyConventionalEnv(cfg, os.Getenv)
	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills zero values. Tests call it on hand-built configs.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.App.BaseURL == "" {
		c.App.BaseURL = defaultAppBaseURL
	}
	c.App.BaseURL = strings.TrimRight(c.App.BaseURL, "/")

	if c.OAuth.StateTTL <= 0 {
		c.OAuth.StateTTL = defaultStateTTL
	}
	if c.OAuth.StateSweepInterval <= 0 {
		c.OAuth.StateSweepInterval = defaultStateSweepInterval
	}
	if c.OAuth.StateStore == "" {
		c.OAuth.StateStore = "memory"
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "performiq:oauth_state:"
	}

	if c.HTTPClient.Timeout <= 0 {
		c.HTTPClient.Timeout = defaultHTTPClientTimeout
	}
	if c.HTTPClient.MaxRetries < 0 {
		c.HTTPClient.MaxRetries = 0
	} else if c.HTTPClient.MaxRetries == 0 {
		c.HTTPClient.MaxRetries = defaultHTTPMaxRetries
	}
	if c.HTTPClient.BaseDelay <= 0 {
		c.HTTPClient.BaseDelay = defaultHTTPBaseDelay
	}
	if c.HTTPClient.MaxDelay <= 0 {
		c.HTTPClient.MaxDelay = defaultHTTPMaxDelay
	}

	if c.Sync.Window <= 0 {
		c.Sync.Window = defaultSyncWindow
	}
	if c.Sync.OrgConcurrency <= 0 {
		c.Sync.OrgConcurrency = defaultOrgConcurrency
	}
	if c.Sync.OrgLimit <= 0 {
		c.Sync.OrgLimit = defaultOrgLimit
	}
	if c.Sync.SlackChannelLimit <= 0 {
		c.Sync.SlackChannelLimit = defaultSlackChannelLimit
	}
	if c.Sync.SlackPageSize <= 0 {
		c.Sync.SlackPageSize = defaultSlackPageSize
	}
	if c.Sync.GmailPageSize <= 0 {
		c.Sync.GmailPageSize = defaultGmailPageSize
	}
	if c.Sync.GmailMaxPages <= 0 {
		c.Sync.GmailMaxPages = defaultGmailMaxPages
	}

	if c.Database.SlowQueryThreshold <= 0 {
		c.Database.SlowQueryThreshold = defaultPostgresSlowQuery
		if c.Database.Driver == DriverSQLite {
			c.Database.SlowQueryThreshold = defaultSQLiteSlowQuery
		}
	}

	if c.Scheduler.Spec == "" {
		c.Scheduler.Spec = defaultSchedulerSpec
	}

	if c.RateLimit.Requests <= 0 {
		c.RateLimit.Requests = defaultRateLimitRequests
	}
	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = defaultRateLimitWindow
	}
}

// Validate rejects combinations that cannot start.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "":
	case DriverPostgres:
		if c.Postgres == nil {
			return errors.New("database.driver is postgres but postgres settings are missing")
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return errors.New("database.driver is sqlite but sqlite.path is empty")
		}
	default:
		return errors.Errorf("unknown database driver: %s", c.Database.Driver)
	}

	switch c.OAuth.StateStore {
	case "memory":
	case "redis":
		if c.Redis.Addr == "" {
			return errors.New("oauth.stateStore is redis but redis.addr is empty")
		}
	default:
		return errors.Errorf("unknown oauth state store: %s", c.OAuth.StateStore)
	}

	if c.SecretKey.Access == "" {
		return errors.New("secretKey.access must be provided")
	}

	return nil
}

// applyConventionalEnv fills empty settings from the flat variable names
// deployments commonly use (SLACK_CLIENT_ID, ENCRYPTION_KEY_BASE64, ...).
func applyConventionalEnv(cfg *Config, getenv func(string) string) {
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = getenv(key)
		}
	}

	fill(&cfg.App.BaseURL, "APP_BASE_URL")
	fill(&cfg.Encryption.KeyBase64, "ENCRYPTION_KEY_BASE64")
	fill(&cfg.SecretKey.Access, "JWT_SECRET")

	fill(&cfg.Providers.Slack.ClientID, "SLACK_CLIENT_ID")
	fill(&cfg.Providers.Slack.ClientSecret, "SLACK_CLIENT_SECRET")
	fill(&cfg.Providers.Slack.RedirectURI, "SLACK_REDIRECT_URI")

	fill(&cfg.Providers.Google.ClientID, "GOOGLE_CLIENT_ID")
	fill(&cfg.Providers.Google.ClientSecret, "GOOGLE_CLIENT_SECRET")
	fill(&cfg.Providers.Google.RedirectURI, "GOOGLE_REDIRECT_URI")

	fill(&cfg.Providers.Microsoft.ClientID, "MS_CLIENT_ID")
	fill(&cfg.Providers.Microsoft.ClientSecret, "MS_CLIENT_SECRET")
	fill(&cfg.Providers.Microsoft.RedirectURI, "MS_REDIRECT_URI")

	fill(&cfg.Providers.Zoom.ClientID, "ZOOM_CLIENT_ID")
	fill(&cfg.Providers.Zoom.ClientSecret, "ZOOM_CLIENT_SECRET")
	fill(&cfg.Providers.Zoom.RedirectURI, "ZOOM_REDIRECT_URI")
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
