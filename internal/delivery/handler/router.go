package handler

import (
	"log"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type RouterOptions struct {
	AllowedOrigins []string
	// AuthLimiter throttles register and login. Nil disables it.
	AuthLimiter RateLimiter
	// TrustedProxies are the ranges allowed to set X-Forwarded-For. Empty
	// means the client is always the socket peer.
	TrustedProxies []*net.IPNet
}

func NewRouter(h *Handler, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler
	e.IPExtractor = clientIPExtractor(opts.TrustedProxies)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	var authLimit []echo.MiddlewareFunc
	if opts.AuthLimiter != nil {
		authLimit = append(authLimit, RateLimit(opts.AuthLimiter))
	}

	auth := e.Group("/api/auth")
	auth.POST("/register", h.Register, authLimit...)
	auth.POST("/login", h.Login, authLimit...)
	auth.GET("/health", h.Health)

	todos := e.Group("/api/todos", BearerAuth(h.tokens))
	todos.GET("", h.ListTodos)
	todos.POST("", h.CreateTodo)
	todos.PUT("/:id", h.UpdateTodo)
	todos.DELETE("/:id", h.DeleteTodo)

	return e
}
