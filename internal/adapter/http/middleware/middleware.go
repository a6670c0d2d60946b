package middleware

import (
	"net/http"
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
	HeaderRequestID = "X-Request-ID"

	actorKey     = "actor"
	requestIDKey = "request_id"
)

// Logger writes one structured line per request.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(requestIDKey)),
		}
		if a, ok := c.Get(actorKey); ok {
			fields = append(fields, zap.String("actor", a.(entities.Actor).ID))
		}

		switch {
		case status >= 500:
			logger.Error("server error", fields...)
		case status >= 400:
			logger.Warn("client error", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 envelope and logs the recovered value.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(HeaderRequestID, requestID)
		c.Next()
	}
}

// Actor reads the caller identity forwarded by the gateway. Identity is not
// verified here.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		a := entities.NewActor(c.GetHeader(HeaderActorID), c.GetHeader(HeaderActorRole))
		if a.ID != "" {
			c.Set(actorKey, a)
		}
		c.Next()
	}
}

// RequireActor rejects requests without an actor id.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := ActorFrom(c); !ok {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "X-Actor-ID header is required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// ActorFrom returns the actor set by Actor, falling back to the raw headers
// when the middleware was not installed.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(entities.Actor); ok {
			return a, true
		}
	}
	a := entities.NewActor(c.GetHeader(HeaderActorID), c.GetHeader(HeaderActorRole))
	return a, a.ID != ""
}
