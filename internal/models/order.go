package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OrderItem is one line of an order, a snapshot taken at order time.
// The referenced fish or accessory is not required to still exist.
type OrderItem struct {
	Type  string  `json:"type"` // "fish" or "accessory"
	ID    uint    `json:"id"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// OrderItems is persisted as a single JSON text column.
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *OrderItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*items = nil
		return nil
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("unsupported type %T for OrderItems", value)
	}
}

type Order struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CustomerName string     `gorm:"size:120" json:"customer_name"`
	Items        OrderItems `gorm:"type:text" json:"items"`
	Total        float64    `gorm:"not null" json:"total"`
	Status       string     `gorm:"size:50;default:Pending" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}
