package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/vuanhp265/Aquashop/internal/db"
	"github.com/vuanhp265/Aquashop/internal/models"
)

type CreateAccessoryRequest struct {

	Name     *string `json:"name"`
	Category *string `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

type UpdateAccessoryRequest struct {

	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
}

type AccessoryResponse struct {
	ID       uint    `json:"id"`
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

func ListAccessories(c *gin.Context) {

	var accessories []models.Accessory
	if err := db.DB.Find(&accessories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, lo.Map(accessories, func(a models.Accessory, _ int) AccessoryResponse {
		return AccessoryResponse{ID: a.ID, Name: a.Name, Category: a.Category, Price: a.Price, Stock: a.Stock}
	}))
}

func CreateAccessory(c *gin.Context) {
	var req CreateAccessoryRequest

	_ = c.ShouldBindJSON(&req)

	accessory := models.Accessory{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
	}

	if err := db.DB.Create(&accessory).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "created", "id": accessory.ID})
}

func UpdateAccessory(c *gin.Context) {

	id, ok := parseID(c)
	if !ok {
		return
	}

	var accessory models.Accessory
	if err := db.DB.First(&accessory, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Accessory not found with ID: %d", id)})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req UpdateAccessoryRequest
	_ = c.ShouldBindJSON(&req)

	if req.Name != nil {
		accessory.Name = req.Name
	}
	if req.Category != nil {
		accessory.Category = req.Category
	}
	if req.Price != nil {
		accessory.Price = *req.Price
	}
	if req.Stock != nil {
		accessory.Stock = *req.Stock
	}

	if err := db.DB.Save(&accessory).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func DeleteAccessory(c *gin.Context) {

	id, ok := parseID(c)
	if !ok {
		return
	}

	var accessory models.Accessory
	if err := db.DB.First(&accessory, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Accessory not found with ID: %d", id)})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.Delete(&accessory).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
