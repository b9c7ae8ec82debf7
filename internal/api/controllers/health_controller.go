package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Server is running"})
}
