package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Meta               Meta               `mapstructure:",squash"`
	GoogleAds          GoogleAds          `mapstructure:",squash"`
	TextGen            TextGen            `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	RecommendationSync RecommendationSync `mapstructure:",squash"`
	Rules              Rules              `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	MigrationsPath string `mapstructure:"database_migrations_path"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	Version     string `mapstructure:"meta_version"`
	URL         string `mapstructure:"-"`
	AccessToken string `mapstructure:"meta_access_token"`
}

type GoogleAds struct {
	BaseURL        string `mapstructure:"google_ads_base_url"`
	Version        string `mapstructure:"google_ads_version"`
	URL            string `mapstructure:"-"`
	DeveloperToken string `mapstructure:"google_ads_developer_token"`
	AccessToken    string `mapstructure:"google_ads_access_token"`
	CustomerID     string `mapstructure:"google_ads_customer_id"`
}

type TextGen struct {
	APIKey         string `mapstructure:"textgen_api_key"`
	Model          string `mapstructure:"textgen_model"`
	TimeoutSeconds int    `mapstructure:"textgen_timeout_seconds"`
}

type Auth struct {
	Secret        string `mapstructure:"auth_secret"`
	TokenTTLHours int    `mapstructure:"auth_token_ttl_hours"`
}

type RecommendationSync struct {
	CronSchedule        string `mapstructure:"recommendation_sync_cron"`
	WindowDays          int    `mapstructure:"recommendation_sync_window_days"`
	RequestDelaySeconds int    `mapstructure:"recommendation_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"recommendation_sync_enabled"`
}

// Rules exposes the engine thresholds so workspaces can be tuned without a
// redeploy. Values map onto domain.RuleThresholds.
type Rules struct {
	ReduceBudgetChange float64 `mapstructure:"rules_reduce_budget_change"`
	ScaleBudgetChange  float64 `mapstructure:"rules_scale_budget_change"`
	ScaleRoasFactor    float64 `mapstructure:"rules_scale_roas_factor"`
	ScaleCpaFactor     float64 `mapstructure:"rules_scale_cpa_factor"`
	FatigueFrequency   float64 `mapstructure:"rules_fatigue_frequency"`
	FatigueCTR         float64 `mapstructure:"rules_fatigue_ctr"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adpilot?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATIONS_PATH", "../../migrations")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v19")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")
	viper.SetDefault("GOOGLE_ADS_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")

	viper.SetDefault("TEXTGEN_API_KEY", "")
	viper.SetDefault("TEXTGEN_MODEL", "gemini-2.0-flash")
	viper.SetDefault("TEXTGEN_TIMEOUT_SECONDS", 60)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	viper.SetDefault("RECOMMENDATION_SYNC_CRON", "0 6 * * *") // every day at 6am
	viper.SetDefault("RECOMMENDATION_SYNC_WINDOW_DAYS", 7)
	viper.SetDefault("RECOMMENDATION_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("RECOMMENDATION_SYNC_ENABLED", false)

	viper.SetDefault("RULES_REDUCE_BUDGET_CHANGE", -30.0)
	viper.SetDefault("RULES_SCALE_BUDGET_CHANGE", 15.0)
	viper.SetDefault("RULES_SCALE_ROAS_FACTOR", 1.2)
	viper.SetDefault("RULES_SCALE_CPA_FACTOR", 0.8)
	viper.SetDefault("RULES_FATIGUE_FREQUENCY", 3.0)
	viper.SetDefault("RULES_FATIGUE_CTR", 1.0)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in known locations")
}
