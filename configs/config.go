package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	UploadDir string

	// optional infrastructure; empty disables the feature
	RedisAddr   string
	KafkaBroker string
	KafkaTopic  string

	SeedAdminEmail    string
	SeedAdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "restoflow.db"),
		Port:      getEnv("PORT", "5000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,

		UploadDir: getEnv("UPLOAD_PATH", "uploads"),

		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "orders.placed"),

		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "superadmin@gmail.com"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "password123"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
