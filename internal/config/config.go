package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cast"
)

// Config 应用配置
type Config struct {
	Port    string
	GinMode string

	// 默认地图视角
	DefaultLng     float64
	DefaultLat     float64
	DefaultZoom    float64
	DefaultBearing float64
	DefaultPitch   float64

	MaxBuildings int
	Seed         *uint64 // 非空时使用可复现的随机源

	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

// Load 加载配置
func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	cfg := &Config{
		Port:            port,
		GinMode:         os.Getenv("GIN_MODE"),
		DefaultLng:      114.1694,
		DefaultLat:      22.3193,
		DefaultZoom:     15,
		DefaultBearing:  0,
		DefaultPitch:    45,
		MaxBuildings:    200,
		RateLimitRPS:    20,
		RateLimitBurst:  40,
		ShutdownTimeout: 5 * time.Second,
	}

	var err error
	if cfg.DefaultLng, err = envFloat("DEMO_LNG", cfg.DefaultLng); err != nil {
		return nil, err
	}
	if cfg.DefaultLat, err = envFloat("DEMO_LAT", cfg.DefaultLat); err != nil {
		return nil, err
	}
	if cfg.DefaultZoom, err = envFloat("DEMO_ZOOM", cfg.DefaultZoom); err != nil {
		return nil, err
	}
	if cfg.DefaultBearing, err = envFloat("DEMO_BEARING", cfg.DefaultBearing); err != nil {
		return nil, err
	}
	if cfg.DefaultPitch, err = envFloat("DEMO_PITCH", cfg.DefaultPitch); err != nil {
		return nil, err
	}
	if cfg.MaxBuildings, err = envInt("DEMO_MAX_BUILDINGS", cfg.MaxBuildings); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = envFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return nil, err
	}

	if raw := os.Getenv("DEMO_SEED"); raw != "" {
		seed, err := cast.ToUint64E(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid DEMO_SEED %q: %w", raw, err)
		}
		cfg.Seed = &seed
	}

	if cfg.MaxBuildings < 1 {
		return nil, fmt.Errorf("DEMO_MAX_BUILDINGS must be positive, got %d", cfg.MaxBuildings)
	}

	return cfg, nil
}

func envFloat(key string, def float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func envInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
