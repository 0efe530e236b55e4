package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDriver  string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr string
	CacheTTL  time.Duration

	S3Bucket   string
	S3Region   string
	CDNBaseURL string

	StripeSecretKey string

	// Upcoming meals are promoted once their like count reaches this.
	PublishLikeThreshold int64
	// Lowest badge tier allowed to request a meal.
	RequestMinBadge string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:                 getEnv("PORT", "8000"),
		DBDriver:             getEnv("DB_DRIVER", "sqlite"),
		DBSource:             getEnv("DB_SOURCE", "cooksync.db"),
		JWTSecret:            getEnv("JWT_SECRET", "changeme"),
		JWTTTL:               time.Duration(24) * time.Hour,
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:             time.Duration(5) * time.Minute,
		S3Bucket:             os.Getenv("S3_BUCKET"),
		S3Region:             os.Getenv("S3_REGION"),
		CDNBaseURL:           os.Getenv("CDN_BASE_URL"),
		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		PublishLikeThreshold: getEnvInt64("PUBLISH_LIKE_THRESHOLD", 10),
		RequestMinBadge:      getEnv("REQUEST_MIN_BADGE", "Silver"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Fatalf("invalid %s: %s", key, v)
	}
	return fallback
}
