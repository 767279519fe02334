package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Hotel struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string          `json:"name" gorm:"not null"`
	Country   string          `json:"country"`
	City      string          `json:"city"`
	Stars     int             `json:"stars" gorm:"default:0"`
	Images    json.RawMessage `json:"images" gorm:"type:json"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms     []Room          `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
