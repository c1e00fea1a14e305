package handlers

import (
	"net/http"
	"time"

	"github.com/ahmohbati/forex-backend/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// registerHealthRoutes registers the health check endpoint.
func registerHealthRoutes(rg *gin.RouterGroup, dbPool *pgxpool.Pool) {
	rg.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":    "Error",
				"message":   "Database connection failed",
				"timestamp": time.Now().UTC(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":       "OK",
			"message":      "Forex API is running",
			"database":     "Connected",
			"baseCurrency": domain.BaseCurrencyCode,
			"timestamp":    time.Now().UTC(),
		})
	})
}
