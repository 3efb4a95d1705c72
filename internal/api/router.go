package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/building-map-demo-go/internal/handler"
	"github.com/jengzang/building-map-demo-go/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(demo *handler.DemoHandler, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Building map demo API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	if limiter != nil {
		api.Use(middleware.RateLimit(limiter))
	}
	{
		// 地图演示数据
		d := api.Group("/demo")
		{
			d.GET("/viewport", demo.GetViewport)
			d.GET("/building", demo.GetBuilding)
			d.GET("/buildings", demo.GetBuildings)
			d.GET("/timeline", demo.GetTimeline)
		}
	}

	return r
}
