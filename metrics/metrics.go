package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReserveTotal đếm số lần giữ chỗ theo kết quả
	ReserveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staycore_reserve_total",
		Help: "Reserve operations by result",
	}, []string{"result"})

	// ReleaseTotal đếm số lần trả tồn kho theo kết quả
	ReleaseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staycore_release_total",
		Help: "Release operations by result",
	}, []string{"result"})

	// ReleaseQueueDepth số release đang chờ retry
	ReleaseQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "staycore_release_queue_depth",
		Help: "Pending releases waiting for retry",
	})

	// BookingsTotal đếm booking theo chuyển trạng thái
	BookingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staycore_bookings_total",
		Help: "Booking lifecycle events",
	}, []string{"event"})
)

const (
	ResultOK           = "ok"
	ResultInsufficient = "insufficient"
	ResultContention   = "contention"
	ResultError        = "error"
)
