package response

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/khushijha-kj/signvibe-api/pkg/errors"
)

// JSON sends a success payload. Bodies are flat keyed objects
// ({"academics": ...}, {"user": ...}) matching the public API contract.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, payload)
}

// Error converts any error into the flat {"error": "<message>"} body. The
// wrapped cause is never serialized; operators get it from the logs.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
