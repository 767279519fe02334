package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"staycore/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// ReleaseFlusher định nghĩa interface cho việc xả hàng đợi trả tồn kho
type ReleaseFlusher interface {
	FlushReleases(ctx context.Context) (done, failed int)
}

// BookingCompleter định nghĩa interface cho việc hoàn thành booking quá hạn
type BookingCompleter interface {
	CompleteDeparted(ctx context.Context, now time.Time) (int, error)
}

var (
	releaseFlusher   ReleaseFlusher
	bookingCompleter BookingCompleter
)

// SetReleaseFlusher thiết lập implementation cho ReleaseFlusher
func SetReleaseFlusher(flusher ReleaseFlusher) {
	releaseFlusher = flusher
}

// SetBookingCompleter thiết lập implementation cho BookingCompleter
func SetBookingCompleter(completer BookingCompleter) {
	bookingCompleter = completer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Xả hàng đợi trả tồn kho mỗi phút: release hỏng chỉ được nằm chờ,
	// không bao giờ bị bỏ
	_, err := c.AddFunc("@every 1m", func() {
		if releaseFlusher == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		done, failed := releaseFlusher.FlushReleases(ctx)
		if done > 0 || failed > 0 {
			utils.LogInfo("Xả hàng đợi trả tồn kho: %d thành công, %d chờ lần sau", done, failed)
		}
	})
	if err != nil {
		return err
	}

	// Cron job chạy lúc 0h mỗi ngày: booking đã xác nhận và qua ngày trả
	// phòng chuyển sang hoàn thành
	_, err = c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang quét booking đến hạn hoàn thành lúc: %v", now)
		if bookingCompleter == nil {
			log.Printf("Lỗi: BookingCompleter chưa được thiết lập")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		count, err := bookingCompleter.CompleteDeparted(ctx, now)
		if err != nil {
			utils.LogError("Lỗi khi hoàn thành booking quá hạn: %v", err)
			return
		}
		if count > 0 {
			utils.LogInfo("Đã hoàn thành %d booking quá ngày trả phòng", count)
			m.Broadcast([]byte(fmt.Sprintf("🔔 %d booking đã hoàn thành", count)))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
