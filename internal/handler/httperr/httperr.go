package httperr

import (
	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Message string `json:"message"`
}

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

// AbortWithError writes the JSON error body and attaches the original
// error to the gin context so the logging middleware can record it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: nil error")
	}

	resp := Response{
		Status: status,
		Error:  ErrorBody{Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
