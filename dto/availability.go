package dto

import (
	"time"

	"staycore/models"

	"github.com/shopspring/decimal"
)

// CreateAvailabilityRequest là DTO cho yêu cầu tạo một dòng tồn kho
type CreateAvailabilityRequest struct {
	RoomID         string           `json:"roomId" binding:"required"`
	Date           string           `json:"date" binding:"required"`
	TotalUnits     *int             `json:"totalUnits"`
	AvailableUnits *int             `json:"availableUnits"`
	PriceOverride  *decimal.Decimal `json:"priceOverride"`
	IsBlocked      bool             `json:"isBlocked"`
}

// UpdateAvailabilityRequest là patch: chỉ áp dụng field nào được gửi lên
type UpdateAvailabilityRequest struct {
	ID             string           `json:"id" binding:"required"`
	TotalUnits     *int             `json:"totalUnits"`
	AvailableUnits *int             `json:"availableUnits"`
	PriceOverride  *decimal.Decimal `json:"priceOverride"`
	ClearOverride  bool             `json:"clearOverride"`
	IsBlocked      *bool            `json:"isBlocked"`
}

// RangeAvailabilityRequest tạo tồn kho cho cả khoảng ngày [checkIn, checkOut)
type RangeAvailabilityRequest struct {
	RoomID         string           `json:"roomId" binding:"required"`
	CheckInDate    string           `json:"checkInDate" binding:"required"`
	CheckOutDate   string           `json:"checkOutDate" binding:"required"`
	TotalUnits     *int             `json:"totalUnits"`
	AvailableUnits *int             `json:"availableUnits"`
	PriceOverride  *decimal.Decimal `json:"priceOverride"`
}

// RangeAvailabilityResult đếm số dòng tạo mới / bỏ qua vì đã tồn tại
type RangeAvailabilityResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// BlockRangeRequest chặn bán cả khoảng ngày của một phòng
type BlockRangeRequest struct {
	RoomID       string `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

// BlockRangeResult đếm số dòng cập nhật / tạo mới khi chặn khoảng ngày
type BlockRangeResult struct {
	Updated int `json:"updated"`
	Created int `json:"created"`
}

// AvailabilityFilter là bộ lọc cho danh sách tồn kho
type AvailabilityFilter struct {
	RoomID        string
	FromDate      string
	ToDate        string
	AvailableOnly bool
	Page          int
	Limit         int
}

// SearchAvailabilityRequest tìm phòng trống đủ mọi ngày trong khoảng
type SearchAvailabilityRequest struct {
	CheckInDate  string `form:"checkInDate" binding:"required"`
	CheckOutDate string `form:"checkOutDate" binding:"required"`
	MinUnits     int    `form:"minUnits"`
	HotelID      string `form:"hotelId"`
	RoomID       string `form:"roomId"`
}

// AvailabilityResponse là DTO trả về của một dòng tồn kho
type AvailabilityResponse struct {
	ID             string           `json:"id"`
	RoomID         string           `json:"roomId"`
	RoomName       string           `json:"roomName,omitempty"`
	Date           string           `json:"date"`
	TotalUnits     int              `json:"totalUnits"`
	AvailableUnits int              `json:"availableUnits"`
	PriceOverride  *decimal.Decimal `json:"priceOverride,omitempty"`
	IsBlocked      bool             `json:"isBlocked"`
	IsAvailable    bool             `json:"isAvailable"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// CalendarDay là một ngày trong lịch tồn kho của phòng
type CalendarDay struct {
	Date           string           `json:"date"`
	TotalUnits     int              `json:"totalUnits"`
	AvailableUnits int              `json:"availableUnits"`
	IsBlocked      bool             `json:"isBlocked"`
	IsAvailable    bool             `json:"isAvailable"`
	Price          *decimal.Decimal `json:"price,omitempty"`
}

// RoomCalendarResponse lịch tồn kho của một phòng trong khoảng ngày
type RoomCalendarResponse struct {
	RoomID   string        `json:"roomId"`
	RoomName string        `json:"roomName"`
	Days     []CalendarDay `json:"days"`
}

// MakeAvailabilityResponse convert model sang DTO
func MakeAvailabilityResponse(a models.Availability) AvailabilityResponse {
	resp := AvailabilityResponse{
		ID:             a.ID.String(),
		RoomID:         a.RoomID.String(),
		Date:           a.Date.Format("2006-01-02"),
		TotalUnits:     a.TotalUnits,
		AvailableUnits: a.AvailableUnits,
		PriceOverride:  a.PriceOverride,
		IsBlocked:      a.IsBlocked,
		IsAvailable:    a.IsSellable(1),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.Room != nil {
		resp.RoomName = a.Room.Name
	}
	return resp
}
