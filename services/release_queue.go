package services

import (
	"context"
	"sync"

	"staycore/constants"
	"staycore/metrics"
	"staycore/services/logger"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// ReleaseQueue giữ các lần trả tồn kho chưa hoàn tất để retry. Hàng đợi
// chính nằm trên Redis; khi Redis cũng không ghi được thì giữ tạm trong
// bộ nhớ — một release không bao giờ bị vứt bỏ.
type ReleaseQueue struct {
	rdb *redis.Client
	log logger.Logger

	mu      sync.Mutex
	pending []Footprint // fallback khi Redis không sẵn sàng
}

func NewReleaseQueue(rdb *redis.Client, log logger.Logger) *ReleaseQueue {
	return &ReleaseQueue{rdb: rdb, log: log}
}

// Enqueue xếp một footprint vào hàng đợi retry
func (q *ReleaseQueue) Enqueue(ctx context.Context, fp Footprint) {
	if q.rdb != nil {
		data, err := json.Marshal(fp)
		if err == nil {
			if err := q.rdb.RPush(ctx, constants.ReleaseQueueKey, data).Err(); err == nil {
				metrics.ReleaseQueueDepth.Set(float64(q.Depth(ctx)))
				return
			}
			q.log.Error("Không ghi được hàng đợi release vào Redis, giữ trong bộ nhớ")
		}
	}

	q.mu.Lock()
	q.pending = append(q.pending, fp)
	q.mu.Unlock()
	metrics.ReleaseQueueDepth.Set(float64(q.Depth(ctx)))
}

// Depth tổng số release đang chờ (Redis + bộ nhớ)
func (q *ReleaseQueue) Depth(ctx context.Context) int {
	depth := 0
	if q.rdb != nil {
		if n, err := q.rdb.LLen(ctx, constants.ReleaseQueueKey).Result(); err == nil {
			depth += int(n)
		}
	}
	q.mu.Lock()
	depth += len(q.pending)
	q.mu.Unlock()
	return depth
}

// Flush thử lại từng release trong hàng đợi. Footprint thất bại được xếp
// lại cuối hàng; mỗi lượt flush chỉ đi qua hàng đợi đúng một vòng.
func (q *ReleaseQueue) Flush(ctx context.Context, release func(context.Context, Footprint) error) (done, failed int) {
	// Hàng chờ trong bộ nhớ trước: đẩy ngược về đường retry chung
	q.mu.Lock()
	inMemory := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fp := range inMemory {
		if err := release(ctx, fp); err != nil {
			q.Enqueue(ctx, fp)
			failed++
			continue
		}
		done++
	}

	if q.rdb != nil {
		n, err := q.rdb.LLen(ctx, constants.ReleaseQueueKey).Result()
		if err != nil {
			q.log.Error("Không đọc được hàng đợi release: %v", err)
		}
		for i := int64(0); i < n; i++ {
			data, err := q.rdb.LPop(ctx, constants.ReleaseQueueKey).Result()
			if err == redis.Nil {
				break
			}
			if err != nil {
				q.log.Error("Không lấy được phần tử hàng đợi release: %v", err)
				break
			}

			var fp Footprint
			if err := json.Unmarshal([]byte(data), &fp); err != nil {
				q.log.Error("Bỏ phần tử hàng đợi release hỏng định dạng: %v", err)
				continue
			}

			if err := release(ctx, fp); err != nil {
				q.rdb.RPush(ctx, constants.ReleaseQueueKey, data)
				failed++
				continue
			}
			done++
		}
	}

	metrics.ReleaseQueueDepth.Set(float64(q.Depth(ctx)))
	if done > 0 || failed > 0 {
		q.log.Info("Flush hàng đợi release: %d xong, %d chờ lượt sau", done, failed)
	}
	return done, failed
}
