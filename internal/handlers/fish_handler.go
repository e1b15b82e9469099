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

type CreateFishRequest struct {

	Name    *string `json:"name"`
	Species *string `json:"species"`
	Price   float64 `json:"price"`
	Stock   int     `json:"stock"`
}

type UpdateFishRequest struct {

	Name    *string  `json:"name"`
	Species *string  `json:"species"`
	Price   *float64 `json:"price"`
	Stock   *int     `json:"stock"`
}

type FishResponse struct {
	ID      uint    `json:"id"`
	Name    *string `json:"name"`
	Species *string `json:"species"`
	Price   float64 `json:"price"`
	Stock   int     `json:"stock"`
}

func ListFish(c *gin.Context) {

	var fish []models.Fish
	if err := db.DB.Find(&fish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, lo.Map(fish, func(f models.Fish, _ int) FishResponse {
		return FishResponse{ID: f.ID, Name: f.Name, Species: f.Species, Price: f.Price, Stock: f.Stock}
	}))
}

func CreateFish(c *gin.Context) {
	var req CreateFishRequest

	// Missing fields default silently; an absent name is stored as NULL.
	_ = c.ShouldBindJSON(&req)

	fish := models.Fish{
		Name:    req.Name,
		Species: req.Species,
		Price:   req.Price,
		Stock:   req.Stock,
	}

	if err := db.DB.Create(&fish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "created", "id": fish.ID})
}

func UpdateFish(c *gin.Context) {

	id, ok := parseID(c)
	if !ok {
		return
	}

	var fish models.Fish
	if err := db.DB.First(&fish, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Fish not found with ID: %d", id)})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req UpdateFishRequest
	_ = c.ShouldBindJSON(&req)

	// Only keys present in the body overwrite existing values.
	if req.Name != nil {
		fish.Name = req.Name
	}
	if req.Species != nil {
		fish.Species = req.Species
	}
	if req.Price != nil {
		fish.Price = *req.Price
	}
	if req.Stock != nil {
		fish.Stock = *req.Stock
	}

	if err := db.DB.Save(&fish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func DeleteFish(c *gin.Context) {

	id, ok := parseID(c)
	if !ok {
		return
	}

	var fish models.Fish
	if err := db.DB.First(&fish, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Fish not found with ID: %d", id)})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := db.DB.Delete(&fish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
