package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/apperrors"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as a Response envelope. Unclassified errors
// are logged and hidden behind a generic 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, Response{Status: "error", Message: message, Code: status})
	}
	if writeErr != nil {
		log.Printf("Failed to write error response: %v", writeErr)
	}
}

var kindStatus = map[apperrors.Kind]int{
	apperrors.KindConflict:        http.StatusConflict,
	apperrors.KindUnauthenticated: http.StatusUnauthorized,
	apperrors.KindNotFound:        http.StatusNotFound,
	apperrors.KindForbidden:       http.StatusForbidden,
	apperrors.KindInvalid:         http.StatusBadRequest,
}

func statusFor(err error) (int, string) {
	if status, ok := kindStatus[apperrors.KindOf(err)]; ok {
		var appErr *apperrors.Error
		errors.As(err, &appErr)
		return status, appErr.Message
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	}

	return http.StatusInternalServerError, "internal server error"
}
