package http

import (
	"errors"
	"net/http"
	"strings"

	"grameego/internal/core/domain/model/account"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Actor is the authenticated caller extracted from a bearer token.
type Actor struct {
	AccountID kernel.UUID
	Role      account.Role
	ShopID    *kernel.UUID
}

// authMiddleware parses the Authorization bearer token and stores the
// resulting Actor on the request context. Expired sessions and malformed
// tokens both end the request with 401.
func authMiddleware(cfg token.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := token.Parse(cfg, raw)
			if err != nil {
				// Any parse failure means the session cannot be trusted,
				// whether the token expired or never was ours.
				message := "invalid token"
				if errors.Is(err, token.ErrTokenExpired) {
					message = "session expired"
				}
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: message,
				})
			}

			accountID, err := kernel.UUIDFromBytes(claims.AccountID[:])
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "malformed token subject",
				})
			}

			actor := Actor{
				AccountID: accountID,
				Role:      account.Role(claims.Role),
			}
			if claims.ShopID != nil {
				shopID, shopErr := kernel.UUIDFromBytes((*claims.ShopID)[:])
				if shopErr != nil {
					return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
						Code:    http.StatusUnauthorized,
						Message: "malformed token shop claim",
					})
				}
				actor.ShopID = &shopID
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// requireRole rejects requests whose actor does not carry one of the
// given roles.
func requireRole(roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actor, ok := actorFrom(ctx)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			for _, role := range roles {
				if actor.Role == role {
					return next(ctx)
				}
			}

			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "role " + string(actor.Role) + " is not allowed here",
			})
		}
	}
}

func actorFrom(ctx echo.Context) (Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(Actor)
	return actor, ok
}
