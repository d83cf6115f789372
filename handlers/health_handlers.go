package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/klubapp/klub-backend/repository"
)

// HealthCheck handles GET /api/health: liveness plus backing-store
// connectivity. Returns 200 when the database is reachable, 500 otherwise.
func HealthCheck(c *gin.Context) {
	if err := repository.PingDB(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "error",
			"timestamp": time.Now().UTC(),
			"database":  gin.H{"connected": false, "error": err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"database":  gin.H{"connected": true},
	})
}
