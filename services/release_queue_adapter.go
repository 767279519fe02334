package services

import "context"

// ReleaseQueueAdapter nối hàng đợi trả tồn kho với coordinator cho cron job
type ReleaseQueueAdapter struct {
	coordinator *ReservationService
	queue       *ReleaseQueue
}

func NewReleaseQueueAdapter(coordinator *ReservationService, queue *ReleaseQueue) *ReleaseQueueAdapter {
	return &ReleaseQueueAdapter{
		coordinator: coordinator,
		queue:       queue,
	}
}

// FlushReleases xả hàng đợi: mỗi footprint được trả qua coordinator, cái
// nào vẫn hỏng thì quay lại hàng đợi chờ lượt sau
func (a *ReleaseQueueAdapter) FlushReleases(ctx context.Context) (done, failed int) {
	return a.queue.Flush(ctx, a.coordinator.Release)
}
