package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter. An unparseable id behaves like a
// missing row and answers 404.
func parseID(c *gin.Context) (uint, bool) {

	var id uint
	if _, err := fmt.Sscan(c.Param("id"), &id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Invalid ID: %s", c.Param("id"))})
		return 0, false
	}

	return id, true
}
