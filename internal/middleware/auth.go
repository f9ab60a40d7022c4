package middleware

import (
	stderrors "errors"

	"wallet-service/internal/errors"
	"wallet-service/internal/handlers"
	"wallet-service/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth rejects requests without a valid RS256 access token and stores
// the caller's id and email in the echo context.
func RequireAuth(tokenService services.TokenServiceInterface, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				recordAuthEvent(metrics, "missing_token")
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				recordAuthEvent(metrics, "invalid_format")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					recordAuthEvent(metrics, "expired_token")
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				recordAuthEvent(metrics, "invalid_token")
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				recordAuthEvent(metrics, "invalid_token")
				return handlers.SendError(c, errors.AuthInvalidToken, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)
			recordAuthEvent(metrics, "token_accepted")

			return next(c)
		}
	}
}

func recordAuthEvent(metrics services.MetricsRecorderInterface, eventType string) {
	if metrics == nil {
		return
	}
	metrics.IncrementCounter("authentication_event", map[string]string{"event_type": eventType})
}
