package api

import (
	"context"
	"fmt"
	"time"

	"soup-catalog/internal/api/handlers/health"
	recipeHandler "soup-catalog/internal/api/handlers/recipe"
	"soup-catalog/internal/api/middleware"
	"soup-catalog/internal/core/catalog"
	"soup-catalog/internal/core/presenter"
	"soup-catalog/internal/infrastructure/config"
	"soup-catalog/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 單一請求的處理時限
const timeoutDuration = 30 * time.Second

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, p *presenter.Presenter) (*gin.Engine, error) {
	if cfg == nil || p == nil {
		return nil, fmt.Errorf("router requires config and presenter")
	}

	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug && gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 注入設定與視圖
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("presenter", p)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", timeoutDuration),
			)
		}
	})

	handler := recipeHandler.NewHandler(p, cfg.App.Debug)

	// 健康檢查路由
	router.GET("/health", health.HealthCheck(len(catalog.SupportedSoups)))
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// 頁面路由
	router.GET("/", handler.HandleIndex)
	router.GET("/recipes/:name", handler.HandleDetailFragment)
	router.Static("/Pictures", cfg.Catalog.PicturesDir)

	// API 路由組
	api := router.Group("/api/v1")
	api.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))
	{
		api.GET("/recipes", handler.HandleListRecipes)
		api.GET("/recipes/:name", handler.HandleGetRecipe)
	}

	router.NoRoute(func(c *gin.Context) {
		common.WriteError(c, common.ErrNotFound, cfg.App.Debug)
	})

	common.LogInfo("Router setup completed successfully",
		zap.Int("recipes", len(p.Cards())),
		zap.Bool("catalog_loaded", p.LoadError() == nil),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.String("pictures_dir", cfg.Catalog.PicturesDir),
	)

	return router, nil
}
