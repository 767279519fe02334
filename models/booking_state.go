package models

import (
	"staycore/constants"
	"staycore/errors"
)

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking) error
	Complete(booking *Booking) error
}

// PendingState trạng thái chờ xác nhận
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(booking *Booking) error {
	return errors.ErrBookingNotPending
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return errors.ErrBookingConfirmed
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(booking *Booking) error {
	booking.Status = constants.BookingStatusCompleted
	return nil
}

// CancelledState trạng thái đã hủy — terminal
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return errors.ErrBookingCancelled
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.ErrBookingCancelled
}

func (s *CancelledState) Complete(booking *Booking) error {
	return errors.ErrBookingCancelled
}

// CompletedState trạng thái hoàn thành — terminal
type CompletedState struct{}

func (s *CompletedState) Confirm(booking *Booking) error {
	return errors.ErrBookingCompleted
}

func (s *CompletedState) Cancel(booking *Booking) error {
	return errors.ErrBookingCompleted
}

func (s *CompletedState) Complete(booking *Booking) error {
	return errors.ErrBookingCompleted
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	default:
		return &PendingState{}
	}
}
