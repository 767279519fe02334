package constants

import "time"

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Ledger defaults
const (
	DefaultTotalUnits = 5
	MinGuests         = 1
	MaxGuests         = 10
)

// DateLayout format ngày cho toàn bộ API (check-in/check-out, ledger dates)
const DateLayout = "2006-01-02"

// Pagination defaults
const (
	DefaultPage  = 0
	DefaultLimit = 10
)

// Cache
const (
	CacheTTL             = 5 * time.Minute
	CacheKeyHotels       = "hotels:all"
	CacheKeyRooms        = "rooms:all"
	CacheKeyDestinations = "destinations:all"
)

// Quote
const QuoteCurrency = "USD"

// ReleaseQueueKey key Redis của hàng đợi release chưa hoàn tất
const ReleaseQueueKey = "ledger:release:pending"
