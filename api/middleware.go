package api

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/resq-net/resq-api/store"
)

const errorStackKey = "errorStack"

// abortWithError hands a failure to the error normalization middleware.
// Handlers never format error bodies themselves.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	if !productionMode() {
		c.Set(errorStackKey, string(debug.Stack()))
	}
	c.Abort()
}

func productionMode() bool {
	return viper.GetString("server.environment") == "production"
}

// errorNormalization converts any error attached to the context into the
// uniform failure envelope. Unrecognized errors are coerced to an internal
// server error; the stack is exposed only outside production.
func errorNormalization() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		statusCode := http.StatusInternalServerError
		message := "Internal Server Error"

		switch e := err.(type) {
		case *store.ValidationError:
			statusCode = e.StatusCode
			message = e.Message
		case *store.NotFoundError:
			statusCode = http.StatusNotFound
			message = e.Message
		case *store.UploadError:
			log.WithError(e.Err).Error("image upload failed")
			message = "Image upload failed"
		default:
			log.Error(err)
			if err.Error() != "" {
				message = err.Error()
			}
		}

		response := Response{
			Success:    false,
			StatusCode: statusCode,
			Message:    message,
		}
		if !productionMode() {
			response.Stack = c.GetString(errorStackKey)
		}

		c.JSON(statusCode, response)
	}
}
