package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type MongoConfig struct {
	URI      string
	Database string
}

type RESTconfig struct {
	PORT           string
	AllowedOrigins string
}

type RabbitMQConfig struct {
	// URL брокера. Пустая строка отключает консьюмер импорта.
	URL     string
	Enabled bool
}

type CacheConfig struct {
	// MemcachedAddr - адрес второго уровня кэша. Пусто - только локальный.
	MemcachedAddr string
	LocalTTL      time.Duration
	RemoteTTL     time.Duration
}

type StdoutLogConfig struct {
	Level string `mapstructure:"STDOUT_LOG_LEVEL" default:"debug"` // По умолчанию DEBUG
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string `mapstructure:"FLUENTBIT_LOG_LEVEL" default:"info"` // По умолчанию INFO
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Environment  string
	Mongo        MongoConfig
	Rest         RESTconfig
	RabbitMQ     RabbitMQConfig
	Cache        CacheConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// IsDevelopment сообщает, запущено ли приложение в режиме разработки.
// В этом режиме REST-ошибки содержат детали для отладки.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadConfig загружает конфигурацию из переменных окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}

	if err != nil {
		// .env нужен только для локального запуска, в контейнере
		// все приходит через окружение.
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "real-estate-api")
	cfg.Environment = getEnvAsString("APP_ENV", "development")

	// Читаем конфигурацию MongoDB
	cfg.Mongo.URI = os.Getenv("MONGODB_URI")
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable is required")
	}
	cfg.Mongo.Database = getEnvAsString("MONGODB_DATABASE", "real_estate")

	// Читаем конфигурацию для REST
	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.AllowedOrigins = getEnvAsString("CORS_ALLOWED_ORIGINS", "*")

	cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
	cfg.RabbitMQ.Enabled = cfg.RabbitMQ.URL != ""

	cfg.Cache.MemcachedAddr = getEnvAsString("MEMCACHED_ADDR", "")
	cfg.Cache.LocalTTL = time.Duration(getEnvAsInt("CACHE_LOCAL_TTL_SECONDS", 300)) * time.Second
	cfg.Cache.RemoteTTL = time.Duration(getEnvAsInt("CACHE_REMOTE_TTL_SECONDS", 900)) * time.Second

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
