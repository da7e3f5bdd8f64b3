package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       *DBconfig
	RabbitMq *RabbitMqconfig
	App      *Appconfig
	Srv      *Serviceconfig
	Log      *Loggerconfig
}

type DBconfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}
type RabbitMqconfig struct {
	Host     string
	Port     int
	User     string
	Password string
}
type Appconfig struct {
	JwtSecret string
}
type Serviceconfig struct {
	FleetServicePort string
	AuthServicePort  string
}
type Loggerconfig struct {
	Level string
}

func New() (*Config, error) {
	// .env is optional, real env vars win either way
	_ = godotenv.Load()

	getEnv := func(key, def string) string {
		val := os.Getenv(key)
		if val == "" {
			fmt.Printf("using default value for %v\n", key)
			return def
		}
		return val
	}

	getEnvInt := func(key string, def int) int {
		valStr := os.Getenv(key)
		if valStr == "" {
			fmt.Printf("using default value for %v\n", key)
			return def
		}
		val, err := strconv.Atoi(valStr)
		if err != nil {
			fmt.Printf("using default value for %v\n", key)
			return def
		}
		return val
	}

	cnf := &Config{
		DB: &DBconfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "fleetops_user"),
			Password: getEnv("DB_PASSWORD", "fleetops_pass"),
			Database: getEnv("DB_NAME", "fleetops_db"),
		},
		RabbitMq: &RabbitMqconfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		App: &Appconfig{
			JwtSecret: getEnv("JWT_SECRET", "fleetops-dev-secret"),
		},
		Srv: &Serviceconfig{
			FleetServicePort: getEnv("FLEET_SERVICE_PORT", "3000"),
			AuthServicePort:  getEnv("AUTH_SERVICE_PORT", "3001"),
		},
		Log: &Loggerconfig{
			Level: getEnv("LOG_LEVEL", "INFO"),
		},
	}

	return cnf, nil
}
