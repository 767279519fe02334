package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// NoopService dùng khi không có websocket (test, job chạy nền)
type NoopService struct{}

func (s *NoopService) SendMessage(message string) error { return nil }

// BookingMessageBuilder dựng thông báo sự kiện booking
type BookingMessageBuilder struct {
	bookingID string
	event     string
}

func NewBookingMessageBuilder(bookingID, event string) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		bookingID: bookingID,
		event:     event,
	}
}

func (b *BookingMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Booking %s: %s", b.bookingID, b.event)
}
