package config

import (
	"errors"
	"os"
)

// Defaults for the admin credential pair. Only acceptable for local
// development; Parse refuses them when APP_ENV=production.
const (
	defaultAdminID = "test"
	defaultAdminPW = "test"
)

type Config struct {
	AppEnv      string
	RunAddress  string
	DatabaseURL string
	RedisURL    string

	AdminID string
	AdminPW string

	SupabaseURL string
	SupabaseKey string
	BucketName  string
	BucketPath  string

	SendgridAPIKey string
	OwnerEmail     string

	MusicDir     string
	ThumbnailDir string

	LogLevel string
}

func Parse() (*Config, error) {
	cfg := Config{
		// Defaults
		RunAddress:   ":8080",
		AdminID:      defaultAdminID,
		AdminPW:      defaultAdminPW,
		BucketName:   "photos",
		BucketPath:   "public",
		MusicDir:     "static/music",
		ThumbnailDir: "static/thumbnail",
		LogLevel:     "debug",
	}
	cfg.updateFromEnv()

	if cfg.DatabaseURL == "" {
		return nil, errors.New("config: DATABASE_URL is required")
	}
	if cfg.RedisURL == "" {
		return nil, errors.New("config: REDIS_URL is required")
	}
	if cfg.Production() && (cfg.AdminID == defaultAdminID || cfg.AdminPW == defaultAdminPW) {
		return nil, errors.New("config: ADMIN_ID and ADMIN_PW must be set in production")
	}

	return &cfg, nil
}

func (cfg *Config) Production() bool {
	return cfg.AppEnv == "production"
}

func (cfg *Config) updateFromEnv() {
	if env, ok := os.LookupEnv("APP_ENV"); ok {
		cfg.AppEnv = env
	}
	if addr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = addr
	}
	if db, ok := os.LookupEnv("DATABASE_URL"); ok {
		cfg.DatabaseURL = db
	}
	if rd, ok := os.LookupEnv("REDIS_URL"); ok {
		cfg.RedisURL = rd
	}
	if id, ok := os.LookupEnv("ADMIN_ID"); ok {
		cfg.AdminID = id
	}
	if pw, ok := os.LookupEnv("ADMIN_PW"); ok {
		cfg.AdminPW = pw
	}
	if url, ok := os.LookupEnv("SUPABASE_URL"); ok {
		cfg.SupabaseURL = url
	}
	if key, ok := os.LookupEnv("SUPABASE_SERVICE_KEY"); ok {
		cfg.SupabaseKey = key
	}
	if name, ok := os.LookupEnv("BUCKET_NAME"); ok {
		cfg.BucketName = name
	}
	if path, ok := os.LookupEnv("BUCKET_PATH"); ok {
		cfg.BucketPath = path
	}
	if key, ok := os.LookupEnv("SENDGRID_API_KEY"); ok {
		cfg.SendgridAPIKey = key
	}
	if email, ok := os.LookupEnv("OWNER_EMAIL"); ok {
		cfg.OwnerEmail = email
	}
	if dir, ok := os.LookupEnv("MUSIC_DIR"); ok {
		cfg.MusicDir = dir
	}
	if dir, ok := os.LookupEnv("THUMBNAIL_DIR"); ok {
		cfg.ThumbnailDir = dir
	}
	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = lvl
	}
}
