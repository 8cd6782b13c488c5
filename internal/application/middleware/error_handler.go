package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// ErrorHandler renders errors that escape the handlers as {"error": ...}. Anything
// that is not an *echo.HTTPError is hidden behind the generic internal message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := msg.GetMessage("app.error.internal")

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code != http.StatusInternalServerError {
		status = httpErr.Code
		message = http.StatusText(status)
		if text, ok := httpErr.Message.(string); ok {
			message = text
		}
	} else {
		log.Error(message,
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, map[string]string{"error": message})
	}
	if writeErr != nil {
		log.Error("failed to write error response", zap.Error(writeErr))
	}
}
