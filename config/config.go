package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Threshold     int     `validate:"gte=0,lte=255"`
	EpsilonFactor float64 `validate:"gt=0,lte=0.2"`
	MinArea       float64 `validate:"gte=0"`
	BlurRadius    float64 `validate:"gte=0,lte=20"`
	MaxSide       int     `validate:"gte=0"`

	VisionBackend  string `validate:"oneof=raster gocv"`
	BorderStrategy string `validate:"oneof=permutation sort"`
	PathPolicy     string `validate:"oneof=any bounds polygon"`

	Preview          string `validate:"oneof=window file telegram none"`
	PreviewFile      string `validate:"required_if=Preview file"`
	MarkerColor      string `validate:"hexcolor,len=7|len=4"` // только #rgb и #rrggbb
	PathColor        string `validate:"hexcolor,len=7|len=4"`
	TelegramToken    string `validate:"required_if=Preview telegram"`
	TelegramChatID   int64  `validate:"required_if=Preview telegram"`
	TelegramEndpoint string

	LogLevel string `validate:"oneof=trace debug info warn warning error"`
	LogFile  string
	AppEnv   string
}

// NewValidator создаёт валидатор структур.
func NewValidator() *validator.Validate {
	return validator.New()
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		VisionBackend:    getEnv("VISION_BACKEND", "raster"),
		BorderStrategy:   getEnv("BORDER_STRATEGY", "permutation"),
		PathPolicy:       getEnv("PATH_POLICY", "polygon"),
		Preview:          getEnv("PREVIEW", "window"),
		PreviewFile:      os.Getenv("PREVIEW_FILE"),
		MarkerColor:      getEnv("MARKER_COLOR", "#ff0000"),
		PathColor:        getEnv("PATH_COLOR", "#ffff00"),
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
		TelegramEndpoint: os.Getenv("TELEGRAM_API_ENDPOINT"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFile:          os.Getenv("LOG_FILE"),
		AppEnv:           getEnv("APP_ENV", "production"),
	}

	var err error
	if cfg.Threshold, err = getInt("THRESHOLD", 127); err != nil {
		return nil, err
	}
	if cfg.EpsilonFactor, err = getFloat("EPSILON_FACTOR", 0.01); err != nil {
		return nil, err
	}
	if cfg.MinArea, err = getFloat("MIN_AREA", 0); err != nil {
		return nil, err
	}
	if cfg.BlurRadius, err = getFloat("BLUR_RADIUS", 0); err != nil {
		return nil, err
	}
	if cfg.MaxSide, err = getInt("MAX_SIDE", 0); err != nil {
		return nil, err
	}
	if cfg.TelegramChatID, err = getInt64("TELEGRAM_CHAT_ID", 0); err != nil {
		return nil, err
	}

	if err := NewValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return f, nil
}
