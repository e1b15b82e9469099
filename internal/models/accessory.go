package models

import "time"

type Accessory struct {

	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      *string   `gorm:"size:120" json:"name"`
	Category  *string   `gorm:"size:120" json:"category"`
	Price     float64   `gorm:"not null;default:0" json:"price"`
	Stock     int       `gorm:"default:0" json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}
