package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"soup-catalog/internal/infrastructure/config"
	"soup-catalog/internal/pkg/common"
)

func newTestManager(maxSize int) *CacheManager {
	return NewManager(config.CacheConfig{
		Enabled: true,
		Driver:  "memory",
		MaxSize: maxSize,
		TTL:     time.Minute,
	})
}

func TestManagerSetGet(t *testing.T) {
	t.Parallel()

	m := newTestManager(10)
	defer m.Close()
	ctx := context.Background()

	if _, err := m.Get(ctx, "detail", "ABC Soup"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("expected miss, got %v", err)
	}
	if err := m.Set(ctx, "detail", "ABC Soup", "<div>abc</div>"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := m.Get(ctx, "detail", "ABC Soup")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "<div>abc</div>" {
		t.Fatalf("unexpected value %q", got)
	}
	if _, err := m.Get(ctx, "card", "ABC Soup"); err == nil {
		t.Fatal("namespaces must not collide")
	}

	stats := m.GetStats()
	if stats["hits"].(int64) != 1 || stats["misses"].(int64) != 2 {
		t.Fatalf("unexpected stats %v", stats)
	}
}

func TestManagerExpiry(t *testing.T) {
	t.Parallel()

	m := newTestManager(10)
	defer m.Close()
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }
	if err := m.Set(ctx, "detail", "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := m.Get(ctx, "detail", "k"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("expected expired entry to miss, got %v", err)
	}
}

func TestManagerEvictsLeastUsed(t *testing.T) {
	t.Parallel()

	m := newTestManager(2)
	defer m.Close()
	ctx := context.Background()

	_ = m.Set(ctx, "detail", "a", "1")
	_ = m.Set(ctx, "detail", "b", "2")
	if _, err := m.Get(ctx, "detail", "a"); err != nil {
		t.Fatalf("get a: %v", err)
	}
	if err := m.Set(ctx, "detail", "c", "3"); err != nil {
		t.Fatalf("set c: %v", err)
	}

	if _, err := m.Get(ctx, "detail", "b"); err == nil {
		t.Fatal("expected b to be evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, err := m.Get(ctx, "detail", k); err != nil {
			t.Fatalf("expected %s to survive: %v", k, err)
		}
	}
}

func TestManagerOverwriteAtCapacity(t *testing.T) {
	t.Parallel()

	m := newTestManager(1)
	defer m.Close()
	ctx := context.Background()

	_ = m.Set(ctx, "detail", "a", "1")
	if err := m.Set(ctx, "detail", "a", "2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got, _ := m.Get(ctx, "detail", "a"); got != "2" {
		t.Fatalf("expected overwritten value, got %q", got)
	}
}

func TestNewStore(t *testing.T) {
	t.Parallel()

	s, err := NewStore(config.CacheConfig{Enabled: false})
	if err != nil || s != nil {
		t.Fatalf("disabled cache should be nil, got %v %v", s, err)
	}

	s, err = NewStore(config.CacheConfig{Enabled: true, Driver: "memory", MaxSize: 1, TTL: time.Minute, CleanupInterval: time.Hour})
	if err != nil {
		t.Fatalf("memory store: %v", err)
	}
	if _, ok := s.(*CacheManager); !ok {
		t.Fatalf("expected *CacheManager, got %T", s)
	}
	_ = s.Close()
	_ = s.Close()

	if _, err := NewStore(config.CacheConfig{Enabled: true, Driver: "memcached"}); err == nil {
		t.Fatal("expected unknown driver error")
	}

	if _, err := NewStore(config.CacheConfig{Enabled: true, Driver: "redis", RedisAddr: "127.0.0.1:1", TTL: time.Minute}); err == nil {
		t.Fatal("expected redis connection error")
	}
}
