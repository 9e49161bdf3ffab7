package health

import (
	"net/http"
	"runtime"
	"time"

	"soup-catalog/internal/core/presenter"
	"soup-catalog/internal/infrastructure/config"
	"soup-catalog/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Catalog   CatalogStatus          `json:"catalog"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
	Runtime   map[string]interface{} `json:"runtime"`
}

// CatalogStatus 目錄狀態
type CatalogStatus struct {
	Recipes   int    `json:"recipes"`
	Supported int    `json:"supported"`
	Loaded    bool   `json:"loaded"`
	Error     string `json:"error,omitempty"`
}

// fromContext 取得路由注入的設定與視圖
func fromContext(c *gin.Context) (*config.Config, *presenter.Presenter, bool) {
	cfgVal, exists := c.Get("config")
	if !exists {
		common.LogError("Configuration not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Configuration not found"})
		return nil, nil, false
	}
	cfg, ok := cfgVal.(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid configuration type"})
		return nil, nil, false
	}

	pVal, exists := c.Get("presenter")
	if !exists {
		common.LogError("Presenter not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Presenter not found"})
		return nil, nil, false
	}
	p, ok := pVal.(*presenter.Presenter)
	if !ok {
		common.LogError("Invalid presenter type in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid presenter type"})
		return nil, nil, false
	}

	return cfg, p, true
}

func catalogStatus(p *presenter.Presenter, supported int) CatalogStatus {
	st := CatalogStatus{
		Recipes:   len(p.Cards()),
		Supported: supported,
		Loaded:    p.LoadError() == nil,
	}
	if err := p.LoadError(); err != nil {
		st.Error = err.Error()
	}
	return st
}

// HealthCheck 健康檢查處理器
func HealthCheck(supported int) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, p, ok := fromContext(c)
		if !ok {
			return
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		status := "ok"
		st := catalogStatus(p, supported)
		if !st.Loaded {
			status = "degraded"
		}

		response := HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   cfg.App.Version,
			Catalog:   st,
			Cache:     p.CacheStats(),
			Runtime: map[string]interface{}{
				"goroutines": runtime.NumGoroutine(),
				"memory": map[string]interface{}{
					"alloc":       m.Alloc,
					"total_alloc": m.TotalAlloc,
					"sys":         m.Sys,
					"num_gc":      m.NumGC,
				},
			},
		}

		common.LogDebug("Health check request",
			zap.String("client_ip", c.ClientIP()),
			zap.String("path", c.Request.URL.Path),
		)

		c.JSON(http.StatusOK, response)
	}
}

// ReadinessCheck 就緒檢查處理器，目錄載入失敗時回傳 503
func ReadinessCheck(c *gin.Context) {
	_, p, ok := fromContext(c)
	if !ok {
		return
	}
	if err := p.LoadError(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
