package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Stefan-Trajkovski/Saloon/internal/config"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/domain"
	"github.com/Stefan-Trajkovski/Saloon/internal/core/ports/out"
)

type nopLogger struct{}

func (nopLogger) Debug(string, out.LogFields)               {}
func (nopLogger) Info(string, out.LogFields)                {}
func (nopLogger) Warn(string, out.LogFields)                {}
func (nopLogger) Error(string, out.LogFields)               {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

func testAdapter(t *testing.T) *CacheAdapter {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.Size = 8

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	if err != nil {
		t.Fatalf("failed to build cache adapter: %v", err)
	}
	return adapter
}

func testSlots(date time.Time) []domain.TimeSlot {
	return []domain.TimeSlot{
		{StartTime: date.Add(8 * time.Hour), EndTime: date.Add(8*time.Hour + 30*time.Minute)},
		{StartTime: date.Add(9 * time.Hour), EndTime: date.Add(9*time.Hour + 30*time.Minute)},
	}
}

func TestCacheAdapter_StoreGetInvalidate(t *testing.T) {
	adapter := testAdapter(t)
	ctx := context.Background()
	date := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)

	if _, exists := adapter.GetFreeSlots(ctx, date); exists {
		t.Fatalf("expected miss before store")
	}

	adapter.StoreFreeSlots(ctx, date, testSlots(date))

	slots, exists := adapter.GetFreeSlots(ctx, date)
	if !exists {
		t.Fatalf("expected hit after store")
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}

	adapter.InvalidateDate(ctx, date)

	if _, exists := adapter.GetFreeSlots(ctx, date); exists {
		t.Fatalf("expected miss after invalidation")
	}
}

func TestCacheAdapter_ExpiredEntryMisses(t *testing.T) {
	adapter := testAdapter(t)
	ctx := context.Background()
	date := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)

	adapter.StoreFreeSlots(ctx, date, testSlots(date))

	// Age the entry past its lifetime.
	entry, exists := adapter.cache.Get(date.Format(dateKeyFormat))
	if !exists {
		t.Fatalf("expected stored entry")
	}
	entry.StoredAt = time.Now().Add(-(freeSlotsTTL + time.Minute))

	if _, exists := adapter.GetFreeSlots(ctx, date); exists {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestNewCacheAdapter_DisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adapter != nil {
		t.Fatalf("expected nil adapter when cache is disabled")
	}
}
