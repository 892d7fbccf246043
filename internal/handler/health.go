package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var inicio = time.Now()

// Health reports liveness. There is no external infrastructure to probe:
// all state is in-process.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(inicio).Round(time.Second).String(),
		})
	}
}
