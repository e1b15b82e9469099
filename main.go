package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vuanhp265/Aquashop/configs"
	"github.com/vuanhp265/Aquashop/internal/db"
	"github.com/vuanhp265/Aquashop/internal/handlers"
)

func main() {

	cfg := config.LoadServerConfig()
	db.Init(cfg.DBPath)

	r := gin.Default()

	// ── frontend talks to us from another origin ──
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// ── API ──
	api := r.Group("/api")
	{
		api.GET("/fish", handlers.ListFish)
		api.POST("/fish", handlers.CreateFish)
		api.PUT("/fish/:id", handlers.UpdateFish)
		api.DELETE("/fish/:id", handlers.DeleteFish)

		api.GET("/accessories", handlers.ListAccessories)
		api.POST("/accessories", handlers.CreateAccessory)
		api.PUT("/accessories/:id", handlers.UpdateAccessory)
		api.DELETE("/accessories/:id", handlers.DeleteAccessory)

		api.GET("/orders", handlers.ListOrders)
		api.POST("/orders", handlers.CreateOrder)
		api.PUT("/orders/:id", handlers.UpdateOrder)

		api.GET("/stats/summary", handlers.StatsSummary)
	}

	r.Run(cfg.Addr)
}
