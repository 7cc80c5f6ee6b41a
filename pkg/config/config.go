package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default values used when the environment doesn't set them.
const (
	DefaultBaseURL    = "https://raw.communitydragon.org/latest/plugins/rcp-be-lol-game-data/global"
	DefaultOutputDir  = "resources/skinid_mapping"
	DefaultTimeout    = 30 * time.Second
	DefaultUserAgent  = "skinmapping/1.0"
	DefaultApiAddr    = ":8080"
	DefaultRunHour    = 4
	DefaultLogLevel   = "info"
	DefaultRedisPort  = "6379"
	defaultLocaleList = "ar_ae,cs_cz,de_de,default,el_gr,en_gb,es_es,fr_fr,hu_hu,id_id,it_it,ja_jp,ko_kr,pl_pl,pt_br,ro_ro,ru_ru,th_th,tr_tr,vi_vn,zh_cn,zh_tw"
)

// Configuration for the CommunityDragon requests.
type FetchConfiguration struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Where and for which locales the mappings are written.
type OutputConfiguration struct {
	Dir     string
	Locales []string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfiguration) Enabled() bool {
	return r.Host != ""
}

type DatabaseConfiguration struct {
	URL string
}

func (d DatabaseConfiguration) Enabled() bool {
	return d.URL != ""
}

// S3 compatible bucket configuration.
type BucketConfiguration struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	SkinBucket   string
	LogBucket    string
}

// Enabled reports whether credentials for the bucket were provided.
func (b BucketConfiguration) Enabled() bool {
	return b.AccessKey != "" && b.AccessSecret != ""
}

type MonitoringConfiguration struct {
	SentryDSN   string
	Environment string
	MetricsFile string
	LogLevel    string
}

type ApiConfiguration struct {
	Addr string
}

type SchedulerConfiguration struct {
	RunHour uint
}

// Full application configuration.
type Config struct {
	Fetch      FetchConfiguration
	Output     OutputConfiguration
	Redis      RedisConfiguration
	Database   DatabaseConfiguration
	Bucket     BucketConfiguration
	Monitoring MonitoringConfiguration
	Api        ApiConfiguration
	Scheduler  SchedulerConfiguration
}

// DefaultLocales returns the locales processed when LOCALES isn't set.
// "default" is the base en_US namespace.
func DefaultLocales() []string {
	return strings.Split(defaultLocaleList, ",")
}

// Load reads the configuration from the environment.
// The .env file must already be loaded by the caller.
func Load() (*Config, error) {
	timeout, err := getDuration("REQUEST_TIMEOUT", DefaultTimeout)
	if err != nil {
		return nil, err
	}

	runHour, err := getUint("SCHEDULE_HOUR", DefaultRunHour)
	if err != nil {
		return nil, err
	}
	if runHour > 23 {
		return nil, fmt.Errorf("invalid SCHEDULE_HOUR %d: must be between 0 and 23", runHour)
	}

	cfg := &Config{
		Fetch: FetchConfiguration{
			BaseURL:   strings.TrimRight(getEnvWithDefault("CDRAGON_BASE_URL", DefaultBaseURL), "/"),
			Timeout:   timeout,
			UserAgent: getEnvWithDefault("USER_AGENT", DefaultUserAgent),
		},
		Output: OutputConfiguration{
			Dir:     getEnvWithDefault("OUTPUT_DIR", DefaultOutputDir),
			Locales: getList("LOCALES", DefaultLocales()),
		},
		Redis: RedisConfiguration{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnvWithDefault("REDIS_PORT", DefaultRedisPort),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Database: DatabaseConfiguration{
			URL: os.Getenv("DATABASE_URL"),
		},
		Bucket: BucketConfiguration{
			Region:       os.Getenv("BUCKET_REGION"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			SkinBucket:   os.Getenv("BUCKET_SKIN_BUCKET"),
			LogBucket:    os.Getenv("BUCKET_LOG_BUCKET"),
		},
		Monitoring: MonitoringConfiguration{
			SentryDSN:   os.Getenv("SENTRY_DSN"),
			Environment: getEnvWithDefault("ENVIRONMENT", "local"),
			MetricsFile: os.Getenv("METRICS_FILE"),
			LogLevel:    getEnvWithDefault("LOG_LEVEL", DefaultLogLevel),
		},
		Api: ApiConfiguration{
			Addr: getEnvWithDefault("API_ADDR", DefaultApiAddr),
		},
		Scheduler: SchedulerConfiguration{
			RunHour: runHour,
		},
	}

	if len(cfg.Output.Locales) == 0 {
		return nil, fmt.Errorf("LOCALES is set but contains no locale")
	}

	return cfg, nil
}

func getEnvWithDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, value)
	}
	return duration, nil
}

func getUint(key string, fallback uint) (uint, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return uint(parsed), nil
}

// Split a comma separated variable, dropping blanks.
func getList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}

	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
