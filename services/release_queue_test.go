package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestReleaseQueueInMemoryFallback(t *testing.T) {
	queue := NewReleaseQueue(nil, testLogger())
	ctx := context.Background()

	roomID := uuid.New()
	queue.Enqueue(ctx, footprint(t, roomID, "2026-09-10", "2026-09-12", 1))
	queue.Enqueue(ctx, footprint(t, roomID, "2026-09-12", "2026-09-14", 2))

	if got := queue.Depth(ctx); got != 2 {
		t.Fatalf("expected depth 2, got %d", got)
	}

	t.Run("FailedReleasesGoBack", func(t *testing.T) {
		done, failed := queue.Flush(ctx, func(context.Context, Footprint) error {
			return fmt.Errorf("ledger unavailable")
		})
		if done != 0 || failed != 2 {
			t.Fatalf("expected 0 done / 2 failed, got %d / %d", done, failed)
		}
		if got := queue.Depth(ctx); got != 2 {
			t.Errorf("failed releases must stay queued, depth = %d", got)
		}
	})

	t.Run("SuccessDrainsQueue", func(t *testing.T) {
		var seen []Footprint
		done, failed := queue.Flush(ctx, func(_ context.Context, fp Footprint) error {
			seen = append(seen, fp)
			return nil
		})
		if done != 2 || failed != 0 {
			t.Fatalf("expected 2 done / 0 failed, got %d / %d", done, failed)
		}
		if got := queue.Depth(ctx); got != 0 {
			t.Errorf("expected empty queue after flush, depth = %d", got)
		}
		if len(seen) != 2 || seen[0].Units != 1 || seen[1].Units != 2 {
			t.Errorf("flush must replay footprints in order, got %+v", seen)
		}
	})
}

func TestReleaseQueueAdapterRestoresLedger(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelRoom(t, db)
	// tồn kho đang bị giữ: 0/2, chờ release bù
	seedDay(t, db, room.ID, "2026-09-10", 2, 0, false, nil)

	queue := NewReleaseQueue(nil, testLogger())
	coordinator := NewReservationService(db, testLogger(), queue)
	adapter := NewReleaseQueueAdapter(coordinator, queue)
	ctx := context.Background()

	queue.Enqueue(ctx, footprint(t, room.ID, "2026-09-10", "2026-09-11", 2))

	done, failed := adapter.FlushReleases(ctx)
	if done != 1 || failed != 0 {
		t.Fatalf("expected 1 done / 0 failed, got %d / %d", done, failed)
	}
	if got := availableOn(t, db, room.ID, "2026-09-10"); got != 2 {
		t.Errorf("expected ledger restored to 2 units, got %d", got)
	}
}

func TestReleaseQueueAdapterKeepsInvalidFootprint(t *testing.T) {
	db := newTestDB(t)
	_, room := seedHotelRoom(t, db)

	queue := NewReleaseQueue(nil, testLogger())
	coordinator := NewReservationService(db, testLogger(), queue)
	adapter := NewReleaseQueueAdapter(coordinator, queue)
	ctx := context.Background()

	// footprint 0 suất không release được, phải nằm lại hàng đợi
	queue.Enqueue(ctx, footprint(t, room.ID, "2026-09-10", "2026-09-11", 0))

	done, failed := adapter.FlushReleases(ctx)
	if done != 0 || failed != 1 {
		t.Fatalf("expected 0 done / 1 failed, got %d / %d", done, failed)
	}
	if got := queue.Depth(ctx); got != 1 {
		t.Errorf("unreleasable footprint must stay queued, depth = %d", got)
	}
}
