package models

import "time"

type Fish struct {

	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      *string   `gorm:"size:120" json:"name"`
	Species   *string   `gorm:"size:120" json:"species"`
	Price     float64   `gorm:"not null;default:0" json:"price"`
	Stock     int       `gorm:"default:0" json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}
