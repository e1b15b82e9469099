package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vuanhp265/Aquashop/internal/models"
)

type statsSummary struct {
	TotalFish        int64   `json:"total_fish"`
	TotalAccessories int64   `json:"total_accessories"`
	TotalOrders      int64   `json:"total_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
}

func getStats(t *testing.T, router http.Handler) statsSummary {
	t.Helper()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/stats/summary", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var s statsSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	return s
}

func TestStatsSummaryEmpty(t *testing.T) {
	router, _ := setupTestRouter(t)

	s := getStats(t, router)
	assert.Equal(t, statsSummary{}, s)
}

func TestStatsSummaryRecomputed(t *testing.T) {
	router, testDB := setupTestRouter(t)

	testDB.Create(&models.Fish{Name: strPtr("Betta"), Price: 9.99, Stock: 5})
	testDB.Create(&models.Fish{Name: strPtr("Guppy"), Price: 2.5, Stock: 20})
	testDB.Create(&models.Accessory{Name: strPtr("Air Pump"), Price: 19.5, Stock: 8})
	testDB.Create(&models.Order{Items: models.OrderItems{}, Total: 10.5, Status: "Pending"})
	testDB.Create(&models.Order{Items: models.OrderItems{}, Total: 4.5, Status: "Pending"})

	s := getStats(t, router)
	assert.Equal(t, int64(2), s.TotalFish)
	assert.Equal(t, int64(1), s.TotalAccessories)
	assert.Equal(t, int64(2), s.TotalOrders)
	assert.Equal(t, 15.0, s.TotalRevenue)

	// A further mutation shows up on the very next read.
	testDB.Create(&models.Order{Items: models.OrderItems{}, Total: 5, Status: "Pending"})

	s = getStats(t, router)
	assert.Equal(t, int64(3), s.TotalOrders)
	assert.Equal(t, 20.0, s.TotalRevenue)
}
