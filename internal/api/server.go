package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// MaxBodySize bounds the JSON request body
const MaxBodySize = "16K"

// NewServer creates an Echo instance with the service middleware stack
func NewServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(MaxBodySize))

	return e
}

// errorHandler renders router and middleware errors as ErrorResponse
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := http.StatusInternalServerError, MessageGeneric
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch status {
		case http.StatusRequestEntityTooLarge:
			message = MessageBodyTooLarge
		case http.StatusInternalServerError:
		default:
			message = http.StatusText(status)
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, ErrorResponse{Error: message})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
