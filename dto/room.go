package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreateRoomRequest là DTO cho yêu cầu tạo phòng
type CreateRoomRequest struct {
	HotelID     string          `json:"hotelId" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Images      json.RawMessage `json:"images"`
	Amenities   []string        `json:"amenities"`
}

type UpdateRoomRequest struct {
	ID          string           `json:"id" binding:"required"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Images      json.RawMessage  `json:"images"`
	Amenities   []string         `json:"amenities"`
}
