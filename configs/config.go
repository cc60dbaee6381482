package configs

import (
	"fmt"
	"os"
)

type Config struct {
	AppPort string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	AutoMigrate bool

	KafkaBootstrap string
	KafkaTopic     string

	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3UseSSL        bool
	S3PublicBaseURL string
}

func LoadConfig() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", ":8080"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBUser: getEnv("DB_USER", "blog"),
		DBPass: getEnv("DB_PASSWORD", "blogpass"),
		DBName: getEnv("DB_NAME", "blog_db"),

		AutoMigrate: getEnv("AUTO_MIGRATE", "true") == "true",

		KafkaBootstrap: getEnv("KAFKA_BOOTSTRAP_SERVERS", ""),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "posts.created"),

		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3AccessKey:     getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:     getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:        getEnv("S3_BUCKET", "blog-media"),
		S3UseSSL:        getEnv("S3_USE_SSL", "false") == "true",
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}
