package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

func LandingPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "CA Kenya Staff Meal Portal API",
		"status":  "running",
		"docs":    "/api/status",
		"version": "1.0",
	})
}

func APIStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(startedAt).String(),
		"time":   time.Now().UTC(),
	})
}
