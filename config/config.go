package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/podcast-site/models"
)

// Config chứa toàn bộ cấu hình lấy từ biến môi trường.
type Config struct {
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"podcasts"`
	DBTimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	DBLogLevel string `envconfig:"DB_LOG_LEVEL" default:"warn"`

	Port        string `envconfig:"PORT" default:"8080"`
	GinMode     string `envconfig:"GIN_MODE" default:"release"`
	SiteURL     string `envconfig:"SITE_URL" default:"http://localhost:8080"`
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	// Phân trang
	IndexPerPage          int  `envconfig:"INDEX_PER_PAGE" default:"12"`
	IndexFirstPage        int  `envconfig:"INDEX_FIRST_PAGE" default:"7"`
	ViewPerPage           int  `envconfig:"VIEW_PER_PAGE" default:"10"`
	FeedMaxEpisodes       int  `envconfig:"FEED_MAX_EPISODES" default:"25"`
	IndexPreviewEpisodes  int  `envconfig:"INDEX_PREVIEW_EPISODES" default:"4"`
	RedirectSinglePodcast bool `envconfig:"INDEX_REDIRECT_SINGLE_PODCAST" default:"false"`
}

// DSN trả về chuỗi kết nối PostgreSQL
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBTimeZone,
	)
}

// AllowOrigins tách CORS_ORIGINS theo dấu phẩy
func (c *Config) AllowOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Load đọc .env (nếu có) rồi parse biến môi trường.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// OpenDB kết nối database và cấu hình connection pool
func OpenDB(c *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(c.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(c.DBLogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("không thể kết nối database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("không thể lấy sql.DB từ gorm: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Migrate tạo/cập nhật bảng cho các models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Podcast{},
		&models.Topic{},
		&models.Media{},
		&models.Comment{},
	)
}
