package dto

import (
	"encoding/json"

	"staycore/models"
)

// CreateHotelRequest là DTO cho yêu cầu tạo khách sạn
type CreateHotelRequest struct {
	Name    string          `json:"name" binding:"required"`
	Country string          `json:"country"`
	City    string          `json:"city"`
	Stars   int             `json:"stars"`
	Images  json.RawMessage `json:"images"`
}

type UpdateHotelRequest struct {
	ID      string          `json:"id" binding:"required"`
	Name    *string         `json:"name"`
	Country *string         `json:"country"`
	City    *string         `json:"city"`
	Stars   *int            `json:"stars"`
	Images  json.RawMessage `json:"images"`
}

// ScoredHotel dùng cho tìm kiếm gần đúng, sắp theo điểm
type ScoredHotel struct {
	Hotel models.Hotel `json:"hotel"`
	Score int          `json:"score"`
}
