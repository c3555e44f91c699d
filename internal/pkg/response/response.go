package response

import "github.com/gin-gonic/gin"

// The wire format predates this service: errors are a flat {"error": msg}
// object and successful bodies are the raw payload, no envelope.

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
