package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"skill-swap-service/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	// actorContextKey - ключ echo-контекста с ID пользователя, выполняющего запрос.
	actorContextKey = "actor_id"
	roleContextKey  = "actor_role"

	// ActorHeader и RoleHeader используются вместо токена, когда секрет JWT не задан.
	ActorHeader = "X-User-Id"
	RoleHeader  = "X-User-Role"

	// RoleAdmin - роль модератора: блокировка пользователей, одобрение предложений, скрытие отзывов.
	RoleAdmin = "admin"
)

// ActorClaims - claims токена: sub задает актора, role - его роль.
type ActorClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// LoggingMiddleware добавляет структурированное логирование
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Выполняем запрос
			err := next(c)

			// Логируем детали запроса
			latency := time.Since(start)
			status := c.Response().Status

			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"status":     status,
				"latency":    latency,
				"user_agent": c.Request().UserAgent(),
				"ip":         c.RealIP(),
			})

			if actor := actorID(c); actor != "" {
				entry = entry.WithField("actor_id", actor)
			}

			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			if status >= 500 {
				entry.Error("Server error")
			} else if status >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}

// AuthMiddleware проверяет bearer-токен и кладет claims sub и role в контекст.
// Запрос без токена проходит анонимно: операции, требующие актора, вернут UNAUTHORIZED.
// При пустом secret токены не проверяются, а актор и роль берутся из заголовков X-User-Id и X-User-Role.
func AuthMiddleware(secret string, logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				if actor := strings.TrimSpace(c.Request().Header.Get(ActorHeader)); actor != "" {
					c.Set(actorContextKey, actor)
					c.Set(roleContextKey, strings.TrimSpace(c.Request().Header.Get(RoleHeader)))
				}
				return next(c)
			}

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				return c.JSON(http.StatusUnauthorized, toErrorResponse("UNAUTHORIZED", "malformed authorization header"))
			}

			claims := &ActorClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.WithError(err).WithField("ip", c.RealIP()).Warn("Rejected bearer token")
				return c.JSON(http.StatusUnauthorized, toErrorResponse("UNAUTHORIZED", "invalid or expired token"))
			}

			if claims.Subject == "" {
				return c.JSON(http.StatusUnauthorized, toErrorResponse("UNAUTHORIZED", "token has no subject"))
			}

			c.Set(actorContextKey, claims.Subject)
			c.Set(roleContextKey, claims.Role)
			return next(c)
		}
	}
}

// actorID возвращает ID актора текущего запроса или пустую строку.
func actorID(c echo.Context) string {
	actor, _ := c.Get(actorContextKey).(string)
	return actor
}

func actorRole(c echo.Context) string {
	role, _ := c.Get(roleContextKey).(string)
	return role
}

// requireAdmin пропускает только актора с ролью admin.
func requireAdmin(c echo.Context) error {
	if actorID(c) == "" {
		return domain.ErrUnauthorized
	}
	if actorRole(c) != RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
