package handlers

import "github.com/gin-gonic/gin"

// respondData sends a success envelope carrying a payload.
func respondData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"status": "success",
		"data":   data,
	})
}

// respondMessage sends a success envelope carrying only a message.
func respondMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status":  "success",
		"message": message,
	})
}
