package http

import (
	"log"

	"github.com/gin-gonic/gin"
)

var production bool

// SetProduction controls whether raw error detail leaks into failure
// envelopes. Called once at startup.
func SetProduction(p bool) { production = p }

// Fail renders the standard failure envelope.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// Internal renders a 500 envelope, logging the cause. Detail is elided in
// production.
func Internal(c *gin.Context, message string, err error) {
	log.Printf("[error] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)

	body := gin.H{"success": false, "message": message}
	if err != nil && !production {
		body["error"] = err.Error()
	}
	c.JSON(500, body)
}
