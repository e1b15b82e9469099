package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/vuanhp265/Aquashop/internal/db"
	"github.com/vuanhp265/Aquashop/internal/models"
)

// listOrdersLimit caps GET /api/orders at the most recent rows.
const listOrdersLimit = 200

type CreateOrderRequest struct {

	CustomerName string            `json:"customer_name"`
	Items        models.OrderItems `json:"items"`
	Total        float64           `json:"total"`
}

type UpdateOrderRequest struct {
	Status *string `json:"status"`
}

type OrderResponse struct {
	ID           uint              `json:"id"`
	CustomerName string            `json:"customer_name"`
	Items        models.OrderItems `json:"items"`
	Total        float64           `json:"total"`
	Status       string            `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}

func ListOrders(c *gin.Context) {

	var orders []models.Order
	err := db.DB.
		Order("created_at DESC, id DESC").
		Limit(listOrdersLimit).
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, lo.Map(orders, func(o models.Order, _ int) OrderResponse {
		return OrderResponse{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			Items:        o.Items,
			Total:        o.Total,
			Status:       o.Status,
			CreatedAt:    o.CreatedAt,
		}
	}))
}

func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest

	_ = c.ShouldBindJSON(&req)

	// Items must serialize to a list even when omitted.
	if req.Items == nil {
		req.Items = models.OrderItems{}
	}

	order := models.Order{
		CustomerName: req.CustomerName,
		Items:        req.Items,
		Total:        req.Total,
		Status:       "Pending",
	}

	if err := db.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "created", "id": order.ID})
}

// UpdateOrder mutates status only; customer_name, items and total are frozen
// at creation.
func UpdateOrder(c *gin.Context) {

	id, ok := parseID(c)
	if !ok {
		return
	}

	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Order not found with ID: %d", id)})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req UpdateOrderRequest
	_ = c.ShouldBindJSON(&req)

	if req.Status != nil {
		order.Status = *req.Status
	}

	if err := db.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}
