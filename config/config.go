package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const VERSION = "1.2"

// Config is the immutable configuration assembled at startup. Adapters and
// services receive the sections they need by reference and never read
// environment state directly.
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Cookies     CookieConfig
	CORS        CORSConfig
	Acuity      AcuityConfig
	QStash      QStashConfig
	Meta        MetaConfig
	GoogleAds   GoogleAdsConfig
	TikTok      TikTokConfig
	HubSpot     HubSpotConfig
	Environment string
	LogLevel    string
	Version     string

	// OutboundMode "mock" marks deliveries successful without calling any
	// vendor API. Anything else is live.
	OutboundMode string

	// DefaultPhoneCountryCode is prepended to phone numbers that carry no
	// explicit country code before hashing.
	DefaultPhoneCountryCode string
}

type ServerConfig struct {
	Port int
	Host string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CookieConfig struct {
	Domain string
	Secure bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// AcuityConfig covers webhook verification, the appointments API and the
// intake-field mapping. A field id of 0 means "not configured" and the
// extraction step skips it.
type AcuityConfig struct {
	UserID string
	APIKey string

	TrialAppointmentTypeIDs []string

	FieldAttributionID int64
	FieldGCLIDID       int64
	FieldTTCLIDID      int64
	FieldFBPID         int64
	FieldFBCID         int64
}

// IsTrialType reports whether an appointment type id belongs to the
// configured trial set.
func (c *AcuityConfig) IsTrialType(appointmentTypeID string) bool {
	if appointmentTypeID == "" {
		return false
	}
	for _, id := range c.TrialAppointmentTypeIDs {
		if id == appointmentTypeID {
			return true
		}
	}
	return false
}

// QStashConfig configures the queue publisher and the callback verifier.
// Both signing keys are accepted so Upstash key rotation needs no downtime.
type QStashConfig struct {
	Token             string
	CurrentSigningKey string
	NextSigningKey    string
	PublicBaseURL     string
}

type MetaConfig struct {
	PixelID       string
	AccessToken   string
	TestEventCode string
	APIVersion    string
	EventNames    map[string]string
	EventName     string
	LDUEnabled    bool
}

type GoogleAdsConfig struct {
	DeveloperToken    string
	ClientID          string
	ClientSecret      string
	RefreshToken      string
	CustomerID        string
	LoginCustomerID   string
	ConversionActions map[string]string
	ConversionAction  string
	TimeZone          string
	TimeZoneOffset    string
	JobID             string
	ValidateOnly      bool
}

type TikTokConfig struct {
	PixelCode   string
	AccessToken string
	EventNames  map[string]string
	EventName   string
}

type HubSpotConfig struct {
	PortalID    string
	FormGUID    string
	AccessToken string
}

// IsMockOutbound reports whether vendor calls are stubbed out.
func (c *Config) IsMockOutbound() bool {
	return c.OutboundMode == "mock"
}

// LoadOptions customizes configuration loading.
type LoadOptions struct {
	EnvFile string
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "touchpoint")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	v.SetDefault("COOKIE_DOMAIN", ".virtu.academy")
	v.SetDefault("OUTBOUND_MODE", "live")
	v.SetDefault("META_CAPI_API_VERSION", "v24.0")
	v.SetDefault("DEFAULT_PHONE_COUNTRY_CODE", "")

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Cookies: CookieConfig{
			Domain: v.GetString("COOKIE_DOMAIN"),
			Secure: v.GetString("ENVIRONMENT") == "production",
		},
		CORS: CORSConfig{
			AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS")),
		},
		Acuity: AcuityConfig{
			UserID:                  v.GetString("ACUITY_USER_ID"),
			APIKey:                  v.GetString("ACUITY_API_KEY"),
			TrialAppointmentTypeIDs: splitAndTrim(v.GetString("ACUITY_TRIAL_APPOINTMENT_TYPE_IDS")),
			FieldAttributionID:      v.GetInt64("ACUITY_FIELD_VA_ATTRIB_ID"),
			FieldGCLIDID:            v.GetInt64("ACUITY_FIELD_GCLID_ID"),
			FieldTTCLIDID:           v.GetInt64("ACUITY_FIELD_TTCLID_ID"),
			FieldFBPID:              v.GetInt64("ACUITY_FIELD_FBP_ID"),
			FieldFBCID:              v.GetInt64("ACUITY_FIELD_FBC_ID"),
		},
		QStash: QStashConfig{
			Token:             v.GetString("QSTASH_TOKEN"),
			CurrentSigningKey: v.GetString("QSTASH_CURRENT_SIGNING_KEY"),
			NextSigningKey:    v.GetString("QSTASH_NEXT_SIGNING_KEY"),
			PublicBaseURL:     v.GetString("PUBLIC_BASE_URL"),
		},
		Meta: MetaConfig{
			PixelID:       v.GetString("META_PIXEL_ID"),
			AccessToken:   v.GetString("META_CAPI_ACCESS_TOKEN"),
			TestEventCode: v.GetString("META_CAPI_TEST_EVENT_CODE"),
			APIVersion:    v.GetString("META_CAPI_API_VERSION"),
			EventNames:    parsePairs(v.GetString("META_CAPI_EVENT_NAMES")),
			EventName:     strings.TrimSpace(v.GetString("META_CAPI_EVENT_NAME")),
			LDUEnabled:    v.GetBool("META_CAPI_LDU_ENABLED"),
		},
		GoogleAds: GoogleAdsConfig{
			DeveloperToken:    v.GetString("GOOGLE_ADS_DEVELOPER_TOKEN"),
			ClientID:          v.GetString("GOOGLE_ADS_CLIENT_ID"),
			ClientSecret:      v.GetString("GOOGLE_ADS_CLIENT_SECRET"),
			RefreshToken:      v.GetString("GOOGLE_ADS_REFRESH_TOKEN"),
			CustomerID:        v.GetString("GOOGLE_ADS_CUSTOMER_ID"),
			LoginCustomerID:   v.GetString("GOOGLE_ADS_LOGIN_CUSTOMER_ID"),
			ConversionActions: parsePairs(v.GetString("GOOGLE_ADS_CONVERSION_ACTIONS")),
			ConversionAction:  strings.TrimSpace(v.GetString("GOOGLE_ADS_CONVERSION_ACTION_ID")),
			TimeZone:          v.GetString("GOOGLE_ADS_CONVERSION_TIMEZONE"),
			TimeZoneOffset:    v.GetString("GOOGLE_ADS_CONVERSION_TIMEZONE_OFFSET"),
			JobID:             v.GetString("GOOGLE_ADS_JOB_ID"),
			ValidateOnly:      v.GetBool("GOOGLE_ADS_VALIDATE_ONLY"),
		},
		TikTok: TikTokConfig{
			PixelCode:   v.GetString("TIKTOK_PIXEL_CODE"),
			AccessToken: v.GetString("TIKTOK_ACCESS_TOKEN"),
			EventNames:  parsePairs(v.GetString("TIKTOK_EVENT_NAMES")),
			EventName:   strings.TrimSpace(v.GetString("TIKTOK_EVENT_NAME")),
		},
		HubSpot: HubSpotConfig{
			PortalID:    v.GetString("HUBSPOT_PORTAL_ID"),
			FormGUID:    v.GetString("HUBSPOT_TRIAL_FORM_GUID"),
			AccessToken: v.GetString("HUBSPOT_PRIVATE_APP_TOKEN"),
		},
		Environment:             v.GetString("ENVIRONMENT"),
		LogLevel:                v.GetString("LOG_LEVEL"),
		Version:                 v.GetString("VERSION"),
		OutboundMode:            v.GetString("OUTBOUND_MODE"),
		DefaultPhoneCountryCode: v.GetString("DEFAULT_PHONE_COUNTRY_CODE"),
	}

	return cfg, nil
}

// splitAndTrim turns a comma-separated value into its non-empty parts.
func splitAndTrim(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parsePairs parses "KEY=value,KEY2=value2" mappings used for per-event
// platform event names and conversion actions.
func parsePairs(value string) map[string]string {
	pairs := make(map[string]string)
	for _, pair := range strings.Split(value, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		if key != "" && val != "" {
			pairs[key] = val
		}
	}
	return pairs
}
