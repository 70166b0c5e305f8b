package response

import "github.com/gin-gonic/gin"

// The API speaks flat JSON: payloads as-is on success, {"error": msg}
// on failure.

func JSON(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}
