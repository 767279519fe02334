package dto

import (
	"time"

	"staycore/models"

	"github.com/shopspring/decimal"
)

// CreateBookingRequest là DTO cho yêu cầu đặt phòng
type CreateBookingRequest struct {
	HotelID      string           `json:"hotelId" binding:"required"`
	RoomID       string           `json:"roomId" binding:"required"`
	CheckInDate  string           `json:"checkInDate" binding:"required"`
	CheckOutDate string           `json:"checkOutDate" binding:"required"`
	Guests       int              `json:"guests"`
	TotalPrice   *decimal.Decimal `json:"totalPrice"` // nếu bỏ trống thì hệ thống tự tính
}

// UpdateBookingRequest thay toàn bộ thông tin đặt phòng (trừ trạng thái)
type UpdateBookingRequest struct {
	ID           string           `json:"id" binding:"required"`
	HotelID      string           `json:"hotelId" binding:"required"`
	RoomID       string           `json:"roomId" binding:"required"`
	CheckInDate  string           `json:"checkInDate" binding:"required"`
	CheckOutDate string           `json:"checkOutDate" binding:"required"`
	Guests       int              `json:"guests"`
	TotalPrice   *decimal.Decimal `json:"totalPrice"`
}

// PatchBookingRequest là patch: field nào nil thì giữ nguyên
type PatchBookingRequest struct {
	ID           string           `json:"id" binding:"required"`
	RoomID       *string          `json:"roomId"`
	CheckInDate  *string          `json:"checkInDate"`
	CheckOutDate *string          `json:"checkOutDate"`
	Guests       *int             `json:"guests"`
	TotalPrice   *decimal.Decimal `json:"totalPrice"`
	Status       *string          `json:"status"` // đi qua máy trạng thái, không ghi đè trực tiếp
}

// BookingIDRequest cho các thao tác chỉ cần ID (confirm, cancel)
type BookingIDRequest struct {
	ID string `json:"id" binding:"required"`
}

// QuoteRequest báo giá cho khoảng ngày, không giữ chỗ
type QuoteRequest struct {
	RoomID       string `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Guests       int    `json:"guests"`
}

// NightQuote giá một đêm trong báo giá
type NightQuote struct {
	Date          string          `json:"date"`
	Price         decimal.Decimal `json:"price"`
	IsSpecialRate bool            `json:"isSpecialRate"`
}

// QuoteResponse báo giá đầy đủ cho một khoảng ngày
type QuoteResponse struct {
	RoomID           string          `json:"roomId"`
	CheckInDate      string          `json:"checkInDate"`
	CheckOutDate     string          `json:"checkOutDate"`
	Nights           int             `json:"nights"`
	Guests           int             `json:"guests"`
	Available        bool            `json:"available"`
	NightlyBreakdown []NightQuote    `json:"nightlyBreakdown"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	AveragePerNight  decimal.Decimal `json:"averagePerNight"`
	Currency         string          `json:"currency"`
}

// BookingResponse là DTO trả về của booking
type BookingResponse struct {
	ID           string          `json:"id"`
	HotelID      string          `json:"hotelId"`
	RoomID       string          `json:"roomId"`
	RoomName     string          `json:"roomName,omitempty"`
	CheckInDate  string          `json:"checkInDate"`
	CheckOutDate string          `json:"checkOutDate"`
	Nights       int             `json:"nights"`
	Guests       int             `json:"guests"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// MakeBookingResponse convert model sang DTO
func MakeBookingResponse(b models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:           b.ID.String(),
		HotelID:      b.HotelID.String(),
		RoomID:       b.RoomID.String(),
		CheckInDate:  b.CheckInDate.Format("2006-01-02"),
		CheckOutDate: b.CheckOutDate.Format("2006-01-02"),
		Nights:       b.Nights(),
		Guests:       b.Guests,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	if b.Room != nil {
		resp.RoomName = b.Room.Name
	}
	return resp
}
