package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Footprint là dấu chân tồn kho của một booking: phòng nào, những đêm nào,
// bao nhiêu suất. Release luôn dùng footprint đã ghi, không đoán lại từ sổ.
type Footprint struct {
	RoomID   uuid.UUID `json:"roomId"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Units    int       `json:"units"`
}

// Equal so sánh hai footprint
func (f Footprint) Equal(other Footprint) bool {
	return f.RoomID == other.RoomID &&
		f.CheckIn.Equal(other.CheckIn) &&
		f.CheckOut.Equal(other.CheckOut) &&
		f.Units == other.Units
}

// Dates liệt kê các đêm trong khoảng [CheckIn, CheckOut) theo thứ tự tăng dần
func (f Footprint) Dates() []time.Time {
	return DatesBetween(f.CheckIn, f.CheckOut)
}

// DatesBetween liệt kê các ngày trong [from, to), to không được tính
func DatesBetween(from, to time.Time) []time.Time {
	var dates []time.Time
	for d := NormalizeDate(from); d.Before(NormalizeDate(to)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// NormalizeDate cắt giờ phút giây, giữ ngày theo UTC để so sánh ổn định giữa các driver
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// isDuplicateErr nhận diện lỗi vi phạm unique index của postgres và sqlite
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// isContentionErr nhận diện lỗi tranh chấp khóa/timeout có thể retry
func isContentionErr(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "could not obtain lock") ||
		strings.Contains(msg, "canceling statement due to lock timeout") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}
