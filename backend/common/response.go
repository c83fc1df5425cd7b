package common

import (
	"github.com/gin-gonic/gin"
)

// MessageResponse is the uniform error body of the API: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespMessage writes a JSON body carrying only a message.
func RespMessage(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, MessageResponse{Message: msg})
}

// RespError writes a message body with the error text appended.
func RespError(c *gin.Context, statusCode int, msg string, err error) {
	errMsg := msg
	if err != nil {
		errMsg = msg + ": " + err.Error()
	}
	c.JSON(statusCode, MessageResponse{Message: errMsg})
}
