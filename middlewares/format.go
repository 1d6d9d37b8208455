package middlewares

import (
	"MediPlus/utils"
	"log"

	"github.com/gin-gonic/gin"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError logs an error and writes an HTTP error response to the client.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Printf("HTTP %d - %s: %v", status, message, err)
	c.JSON(status, gin.H{"error": message})
}

// HttpAppError writes an error response whose status comes from the error's
// kind. Unknown errors are reported as internal.
func HttpAppError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	log.Printf("HTTP %d - %s (%s)", status, err.Error(), utils.KindOf(err))
	c.JSON(status, gin.H{"error": err.Error(), "kind": string(utils.KindOf(err))})
}
