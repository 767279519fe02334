package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Room struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	HotelID     uuid.UUID       `json:"hotelId" gorm:"type:uuid;not null;index"`
	Hotel       *Hotel          `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"` // Giá cơ bản mỗi đêm
	Images      json.RawMessage `json:"images" gorm:"type:json"`
	Amenities   pq.StringArray  `json:"amenities" gorm:"type:text[]"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
