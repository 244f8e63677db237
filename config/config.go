package config

import (
	"os"
	"path/filepath"
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

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	// Store configures the key-value persistence backing all caches.
	Store *StoreConfig `json:"store" yaml:"store"`

	// Location configures the location resolver.
	Location *LocationConfig `json:"location" yaml:"location"`

	// PrayerTimes configures the prayer-time resolver.
	PrayerTimes *PrayerTimesConfig `json:"prayerTimes" yaml:"prayerTimes"`

	// Notifications configures the prayer-notification scheduler.
	Notifications *NotificationsConfig `json:"notifications" yaml:"notifications"`

	// Providers configures the third-party content APIs.
	Providers *ProvidersConfig `json:"providers" yaml:"providers"`

	// PubSub configures refresh-event publishing to the worker.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configures the background refresh delivery.
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig selects and configures the key-value store provider.
type StoreConfig struct {
	// Provider is one of "redis", "postgres", "memory".
	Provider string `json:"provider" yaml:"provider"`

	// KeyPrefix namespaces every persisted key.
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
}

// RedisConfig defines the Redis connection for the key-value store.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// LocationConfig defines location resolution behavior.
type LocationConfig struct {
	// Provider is one of "agent", "static".
	Provider string `json:"provider" yaml:"provider"`

	// AgentURL is the device-agent endpoint returning the current coordinate.
	AgentURL string `json:"agentUrl" yaml:"agentUrl"`

	// Cache staleness window for the last-known location.
	CacheMaxAge time.Duration `json:"cacheMaxAge" yaml:"cacheMaxAge"`

	// Sensor timeouts for foreground and background reads.
	SensorTimeout           time.Duration `json:"sensorTimeout" yaml:"sensorTimeout"`
	BackgroundSensorTimeout time.Duration `json:"backgroundSensorTimeout" yaml:"backgroundSensorTimeout"`

	// Fallback city used when both cache and sensor fail.
	DefaultCity      string  `json:"defaultCity" yaml:"defaultCity"`
	DefaultLatitude  float64 `json:"defaultLatitude" yaml:"defaultLatitude"`
	DefaultLongitude float64 `json:"defaultLongitude" yaml:"defaultLongitude"`
}

// PrayerTimesConfig defines prayer-time lookup behavior.
type PrayerTimesConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Method is the calculation-method parameter sent to the provider
	// (20 = Kemenag RI).
	Method int `json:"method" yaml:"method"`

	// CacheRadiusKm bounds how far the device may move before a cached
	// schedule is refetched.
	CacheRadiusKm float64 `json:"cacheRadiusKm" yaml:"cacheRadiusKm"`
}

// NotificationsConfig defines the scheduler and its FCM transport.
type NotificationsConfig struct {
	// EnableImsyak schedules the pre-dawn abstinence reminder as a sixth entry.
	EnableImsyak bool `json:"enableImsyak" yaml:"enableImsyak"`

	// DeviceToken is the FCM registration token notifications are pushed to.
	DeviceToken string `json:"deviceToken" yaml:"deviceToken"`

	// Firebase credentials; when absent the gateway degrades to logging only.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

// FirebaseConfig defines Firebase credentials for push delivery.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// ProvidersConfig defines the third-party content API endpoints.
type ProvidersConfig struct {
	EquranBaseURL      string `json:"equranBaseUrl" yaml:"equranBaseUrl"`
	EquranDoaBaseURL   string `json:"equranDoaBaseUrl" yaml:"equranDoaBaseUrl"`
	IslamicAPIBaseURL  string `json:"islamicApiBaseUrl" yaml:"islamicApiBaseUrl"`
	IslamicAPIKey      string `json:"islamicApiKey" yaml:"islamicApiKey"`
	GoldAPIBaseURL     string `json:"goldApiBaseUrl" yaml:"goldApiBaseUrl"`
	FrankfurterBaseURL string `json:"frankfurterBaseUrl" yaml:"frankfurterBaseUrl"`
	GeocodeBaseURL     string `json:"geocodeBaseUrl" yaml:"geocodeBaseUrl"`

	// RequestTimeout bounds every outbound provider call.
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// RatePerSecond throttles outbound provider calls; zero disables.
	RatePerSecond float64 `json:"ratePerSecond" yaml:"ratePerSecond"`
}

// PubSubConfig defines refresh-event publishing.
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub.
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// LocalEndpoint is the worker push URL used by the local provider.
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the background refresh delivery.
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// RefreshInterval drives the fallback ticker when Pub/Sub is not
	// configured. The platform cadence in production is roughly hourly.
	RefreshInterval time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
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
			// Example: STORE_KEYPREFIX -> store.keyPrefix (not store.keyprefix)
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
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Store == nil {
		c.Store = &StoreConfig{Provider: "memory"}
	}
	if c.Store.KeyPrefix == "" {
		c.Store.KeyPrefix = "muslimhub"
	}

	if c.Location == nil {
		c.Location = &LocationConfig{}
	}
	if c.Location.CacheMaxAge == 0 {
		c.Location.CacheMaxAge = 30 * time.Minute
	}
	if c.Location.SensorTimeout == 0 {
		c.Location.SensorTimeout = 5 * time.Second
	}
	if c.Location.BackgroundSensorTimeout == 0 {
		c.Location.BackgroundSensorTimeout = 10 * time.Second
	}
	if c.Location.DefaultCity == "" {
		// Jakarta
		c.Location.DefaultCity = "Jakarta"
		c.Location.DefaultLatitude = -6.2088
		c.Location.DefaultLongitude = 106.8456
	}

	if c.PrayerTimes == nil {
		c.PrayerTimes = &PrayerTimesConfig{}
	}
	if c.PrayerTimes.BaseURL == "" {
		c.PrayerTimes.BaseURL = "https://api.aladhan.com/v1"
	}
	if c.PrayerTimes.Method == 0 {
		c.PrayerTimes.Method = 20
	}
	if c.PrayerTimes.CacheRadiusKm == 0 {
		c.PrayerTimes.CacheRadiusKm = 10
	}

	if c.Providers == nil {
		c.Providers = &ProvidersConfig{}
	}
	if c.Providers.EquranBaseURL == "" {
		c.Providers.EquranBaseURL = "https://equran.id/api/v2"
	}
	if c.Providers.EquranDoaBaseURL == "" {
		// The doa collection lives outside the v2 API tree.
		c.Providers.EquranDoaBaseURL = "https://equran.id/api/doa"
	}
	if c.Providers.IslamicAPIBaseURL == "" {
		c.Providers.IslamicAPIBaseURL = "https://islamicapi.com/api"
	}
	if c.Providers.GoldAPIBaseURL == "" {
		c.Providers.GoldAPIBaseURL = "https://api.gold-api.com"
	}
	if c.Providers.FrankfurterBaseURL == "" {
		c.Providers.FrankfurterBaseURL = "https://api.frankfurter.app"
	}
	if c.Providers.GeocodeBaseURL == "" {
		c.Providers.GeocodeBaseURL = "https://api.bigdatacloud.net"
	}
	if c.Providers.RequestTimeout == 0 {
		c.Providers.RequestTimeout = 15 * time.Second
	}

	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Port == 0 {
		c.Worker.Port = 8081
	}
	if c.Worker.RefreshInterval == 0 {
		c.Worker.RefreshInterval = time.Hour
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
