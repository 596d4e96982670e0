package handler

import (
	"net"
	"net/http"
	"strings"

	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/interfaces"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/apperrors"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// BearerAuth validates the Authorization header and stores the email claim on
// the echo context. Handlers hand it to services explicitly.
func BearerAuth(tokens interfaces.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return apperrors.New(apperrors.KindUnauthenticated, "missing bearer token")
			}

			identity, err := tokens.ValidateToken(token)
			if err != nil {
				return err
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// RateLimiter decides whether a client may proceed.
type RateLimiter interface {
	Allow(key string) bool
}

// clientIPExtractor keys clients on the socket address. X-Forwarded-For is
// only honoured when the request arrives from one of the trusted ranges.
func clientIPExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, ipRange := range trusted {
		options = append(options, echo.TrustIPRange(ipRange))
	}
	return echo.ExtractIPFromXFFHeader(options...)
}

// RateLimit throttles per client IP as resolved by the router's IPExtractor.
func RateLimit(limiter RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func identityFrom(c echo.Context) string {
	identity, _ := c.Get(identityKey).(string)
	return identity
}
