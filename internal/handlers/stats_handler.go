package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vuanhp265/Aquashop/internal/db"
	"github.com/vuanhp265/Aquashop/internal/models"
)

// StatsSummary recomputes the shop totals on every call; nothing is cached.
func StatsSummary(c *gin.Context) {

	var totalFish int64
	if err := db.DB.Model(&models.Fish{}).Count(&totalFish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var totalAccessories int64
	if err := db.DB.Model(&models.Accessory{}).Count(&totalAccessories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var totalOrders int64
	if err := db.DB.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var totalRevenue float64
	err := db.DB.
		Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalRevenue).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_fish":        totalFish,
		"total_accessories": totalAccessories,
		"total_orders":      totalOrders,
		"total_revenue":     totalRevenue,
	})
}
