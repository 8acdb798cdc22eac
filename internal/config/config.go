package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

var errEmptyList = errors.New("empty list")

// Environment names accepted in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// DatabaseConfig holds Postgres settings. URL takes precedence over the discrete fields when set.
type DatabaseConfig struct {
	URL                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	ConnectRetryMaxSec int
}

// MinIOConfig holds object storage settings for the trust-center documents bucket.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ContentConfig points at the markdown content tree.
type ContentConfig struct {
	Dir string
}

// SlackConfig holds the bot credentials used for Slack Connect onboarding.
type SlackConfig struct {
	BotToken          string
	OwnerUserID       string
	PartnersChannelID string
}

// ResendConfig holds transactional email settings.
type ResendConfig struct {
	APIKey string
	From   string
}

// VideoSDKConfig is carried for the site's meeting widget; the API itself does not call VideoSDK.
type VideoSDKConfig struct {
	APIKey string
	Secret string
}

// TrustConfig lists the documents the trust center may hand out.
type TrustConfig struct {
	Documents     []string
	LinkExpirySec int
}

// AppConfig is everything the API and the lint CLI read from the environment.
type AppConfig struct {
	Env      string
	Port     string
	BaseURL  string
	LogLevel string
	Content  ContentConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
	Slack    SlackConfig
	Resend   ResendConfig
	VideoSDK VideoSDKConfig
	Trust    TrustConfig
}

// IsDevelopment reports whether authoring aids (content quality warnings, console logs) are enabled.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Load reads the environment. Binaries import godotenv/autoload so a local .env
// fills in whatever the real environment leaves unset.
func Load() *AppConfig {
	return &AppConfig{
		Env:      getEnv("APP_ENV", EnvProduction),
		Port:     getEnv("PORT", "8080"),
		BaseURL:  strings.TrimRight(getEnv("NEXT_PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Content: ContentConfig{
			Dir: getEnv("CONTENT_DIR", "content"),
		},
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			ConnectRetryMaxSec: getEnvInt("DB_CONNECT_RETRY_MAX_SEC", 60),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "trust-center"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Slack: SlackConfig{
			BotToken:          getEnv("SLACK_BOT_TOKEN", ""),
			OwnerUserID:       getEnv("SLACK_OWNER_USER_ID", ""),
			PartnersChannelID: getEnv("SLACK_PARTNERS_CHANNEL_ID", ""),
		},
		Resend: ResendConfig{
			APIKey: getEnv("RESEND_API_KEY", ""),
			From:   getEnv("EMAIL_FROM", "Stereos <hello@stereos.ai>"),
		},
		VideoSDK: VideoSDKConfig{
			APIKey: getEnv("VIDEOSDK_API_KEY", ""),
			Secret: getEnv("VIDEOSDK_SECRET", ""),
		},
		Trust: TrustConfig{
			Documents:     getEnvList("TRUST_DOCUMENTS", []string{"soc2-type2.pdf", "pentest-summary.pdf", "security-whitepaper.pdf"}),
			LinkExpirySec: getEnvInt("TRUST_LINK_EXPIRY_SEC", 900),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parsedEnv returns def when key is unset or parse rejects its value.
func parsedEnv[T any](key string, def T, parse func(string) (T, error)) T {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out, err := parse(v)
	if err != nil {
		return def
	}
	return out
}

func getEnvBool(key string, def bool) bool { return parsedEnv(key, def, strconv.ParseBool) }

func getEnvInt(key string, def int) int { return parsedEnv(key, def, strconv.Atoi) }

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key string, def []string) []string {
	return parsedEnv(key, def, func(v string) ([]string, error) {
		var out []string
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		if len(out) == 0 {
			return nil, errEmptyList
		}
		return out, nil
	})
}
