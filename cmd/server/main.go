package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/building-map-demo-go/internal/api"
	"github.com/jengzang/building-map-demo-go/internal/config"
	"github.com/jengzang/building-map-demo-go/internal/handler"
	"github.com/jengzang/building-map-demo-go/internal/middleware"
	"github.com/jengzang/building-map-demo-go/internal/mockdata"
	"github.com/jengzang/building-map-demo-go/internal/models"
	"github.com/jengzang/building-map-demo-go/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 随机源
	src := mockdata.DefaultSource()
	if cfg.Seed != nil {
		src = mockdata.NewSeededSource(*cfg.Seed)
		log.Printf("Using seeded random source: %d", *cfg.Seed)
	}

	viewport := models.MapViewport{
		Lng:     cfg.DefaultLng,
		Lat:     cfg.DefaultLat,
		Zoom:    cfg.DefaultZoom,
		Bearing: cfg.DefaultBearing,
		Pitch:   cfg.DefaultPitch,
	}
	demo := handler.NewDemoHandler(service.NewDemoService(src, viewport, cfg.MaxBuildings))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, time.Minute)
	go limiter.Run(ctx)

	// 初始化路由
	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: api.SetupRouter(demo, limiter),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Failed to start server:", err)
	}
	log.Printf("Server stopped")
}
