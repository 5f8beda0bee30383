package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every API call answers with, success or not.
type Response struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Stack      string      `json:"stack,omitempty"`
}

func respondWithData(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
	})
}
