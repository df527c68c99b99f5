package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Owner account. The studio has exactly one operator.
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	OwnerEmail        string `mapstructure:"OWNER_EMAIL"`
	OwnerPasswordHash string `mapstructure:"OWNER_PASSWORD_HASH"` // bcrypt

	// Studio settings. Minutes are from midnight.
	StudioOpenMinutes      int    `mapstructure:"STUDIO_OPEN_MINUTES"`
	StudioCloseMinutes     int    `mapstructure:"STUDIO_CLOSE_MINUTES"`
	SlotGranularityMinutes int    `mapstructure:"SLOT_GRANULARITY_MINUTES"`
	PhoneCountryPrefix     string `mapstructure:"PHONE_COUNTRY_PREFIX"`
	PhoneNationalDigits    int    `mapstructure:"PHONE_NATIONAL_DIGITS"`

	// Public booking page base, e.g. https://book.mybeautycrave.com.
	WebDomain string `mapstructure:"WEB_DOMAIN"`

	// Notification / calendar integrations.
	FirebaseCredentialsFile string   `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	OwnerDeviceTokens       []string `mapstructure:"OWNER_DEVICE_TOKENS"`
	CalendarCredentialsFile string   `mapstructure:"CALENDAR_CREDENTIALS_FILE"`
	CalendarID              string   `mapstructure:"CALENDAR_ID"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "beautycrave")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("STUDIO_OPEN_MINUTES", 9*60)
	viper.SetDefault("STUDIO_CLOSE_MINUTES", 22*60)
	viper.SetDefault("SLOT_GRANULARITY_MINUTES", 15)
	viper.SetDefault("PHONE_COUNTRY_PREFIX", "+45")
	viper.SetDefault("PHONE_NATIONAL_DIGITS", 8)
	viper.SetDefault("WEB_DOMAIN", "https://book.mybeautycrave.com")
	viper.SetDefault("CALENDAR_ID", "primary")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
