package response

import "github.com/gin-gonic/gin"

// Every failure on the wire is `{"error": string}` with a real HTTP
// status; success bodies are the entities themselves.

func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// AbortErr is Err for middleware: it also stops the handler chain.
func AbortErr(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}
