package config

import (
	"log/slog"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env                string
	ServerAddr         string
	FrontendOrigins    []string
	LogLevel           slog.Level
	RequestTimeoutSec  int
	MongoURI           string
	MongoDB            string
	RedisURL           string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	CacheTTLSeconds    int
	RateLimitChat      int
	RateLimitReviews   int
	RateLimitUploads   int
	RateLimitAuth      int
	RateLimitWindowSec int
	JWTSecret          string
	AccessTTLMinutes   int
	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOBucket        string
	MinIOUseSSL        bool
	MaxUploadMB        int
	Timezone           *time.Location
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("FRONTEND_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REQUEST_TIMEOUT_SEC", 30)
	v.SetDefault("TZ", "Asia/Kolkata")
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DB", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL_SECONDS", 60)
	v.SetDefault("RATE_LIMIT_CHAT", 20)
	v.SetDefault("RATE_LIMIT_REVIEWS", 5)
	v.SetDefault("RATE_LIMIT_UPLOADS", 10)
	v.SetDefault("RATE_LIMIT_AUTH", 10)
	v.SetDefault("RATE_LIMIT_WINDOW_SEC", 60)
	v.SetDefault("ACCESS_TTL_MINUTES", 60)
	v.SetDefault("MINIO_BUCKET", "dhaara-uploads")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("MAX_UPLOAD_MB", 10)
}

func Load() (*Config, error) {
	// .env never overrides variables already present in the environment.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	loc, err := time.LoadLocation(v.GetString("TZ"))
	if err != nil {
		return nil, err
	}

	mongoURI := strings.TrimSpace(v.GetString("MONGO_URI"))
	mongoDB := strings.TrimSpace(v.GetString("MONGO_DB"))
	if mongoDB == "" && mongoURI != "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "dhaara"
	}

	cfg := &Config{
		Env:                v.GetString("APP_ENV"),
		ServerAddr:         v.GetString("SERVER_ADDR"),
		FrontendOrigins:    splitList(v.GetString("FRONTEND_ORIGINS")),
		LogLevel:           parseLevel(v.GetString("LOG_LEVEL")),
		RequestTimeoutSec:  v.GetInt("REQUEST_TIMEOUT_SEC"),
		MongoURI:           mongoURI,
		MongoDB:            mongoDB,
		RedisURL:           v.GetString("REDIS_URL"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		CacheTTLSeconds:    v.GetInt("CACHE_TTL_SECONDS"),
		RateLimitChat:      v.GetInt("RATE_LIMIT_CHAT"),
		RateLimitReviews:   v.GetInt("RATE_LIMIT_REVIEWS"),
		RateLimitUploads:   v.GetInt("RATE_LIMIT_UPLOADS"),
		RateLimitAuth:      v.GetInt("RATE_LIMIT_AUTH"),
		RateLimitWindowSec: v.GetInt("RATE_LIMIT_WINDOW_SEC"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		AccessTTLMinutes:   v.GetInt("ACCESS_TTL_MINUTES"),
		MinIOEndpoint:      strings.TrimSpace(v.GetString("MINIO_ENDPOINT")),
		MinIOAccessKey:     v.GetString("MINIO_ACCESS_KEY"),
		MinIOSecretKey:     v.GetString("MINIO_SECRET_KEY"),
		MinIOBucket:        v.GetString("MINIO_BUCKET"),
		MinIOUseSSL:        v.GetBool("MINIO_USE_SSL"),
		MaxUploadMB:        v.GetInt("MAX_UPLOAD_MB"),
		Timezone:           loc,
	}

	return cfg, nil
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSec) * time.Second
}

func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLMinutes) * time.Minute
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// mongodb URIs sometimes include extra path segments; only the first one names the database.
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}
