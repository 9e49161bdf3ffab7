package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"soup-catalog/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bucket 單一用戶端的令牌桶
type bucket struct {
	tokens   int
	lastTime time.Time
	lastSeen time.Time
}

// RateLimiter 依用戶端分開計算的令牌桶限流器
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	capacity  int
	rate      float64
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter 創建新的限流器，每個用戶端在 window 內最多 requests 次
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:   make(map[string]*bucket),
		capacity:  requests,
		rate:      float64(requests) / window.Seconds(),
		window:    window,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow 檢查 key 對應的用戶端是否還有令牌
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: rl.capacity, lastTime: now}
		rl.buckets[key] = b
	}
	b.lastSeen = now

	// 未滿一個令牌時保留累積時間
	if added := int(now.Sub(b.lastTime).Seconds() * rl.rate); added > 0 {
		b.tokens = min(rl.capacity, b.tokens+added)
		b.lastTime = now
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// Clients 回傳目前追蹤中的用戶端數量
func (rl *RateLimiter) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

// sweep 移除閒置超過一個視窗的用戶端，此時其令牌桶必定已滿
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.window {
		return
	}
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) >= rl.window {
			delete(rl.buckets, key)
		}
	}
	rl.lastSweep = now
}

// RateLimit 限流中間件，以用戶端 IP 區分
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	return RateLimitWith(NewRateLimiter(requests, window))
}

// RateLimitWith 以既有的限流器建立中間件
func RateLimitWith(limiter *RateLimiter) gin.HandlerFunc {
	retryAfter := fmt.Sprintf("%d", int(limiter.window.Seconds()))

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			common.LogInfo("Rate limit exceeded",
				zap.String("ip", ip),
				zap.String("path", c.Request.URL.Path),
			)

			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.ErrTooManyRequests.ToResponse(false))
			return
		}

		c.Next()
	}
}
