package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// JSONErrorDetails carries the underlying error string for diagnostics on
// unexpected failures. Never used for auth or validation responses.
func JSONErrorDetails(c *gin.Context, code int, message string, err error) {
	c.JSON(code, gin.H{"success": false, "message": message, "details": err.Error()})
}
