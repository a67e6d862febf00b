package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OmkarKashyap/Auto-Reason/internal/auth"
	apperrors "github.com/OmkarKashyap/Auto-Reason/pkg/errors"
)

const identityKey = "identity"

// requestID tags every request with an id, echoed as X-Request-ID
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// ginLogger is a zap logging middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}

// authRequired extracts and verifies the bearer credential, storing the
// verified identity in the request context. Malformed headers are rejected
// before the verifier is called.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			s.abortWithError(c, apperrors.Auth("Authorization header with Bearer token is required", nil))
			return
		}

		ident, err := s.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			s.abortWithError(c, verifierError(err))
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}

// verifierError maps verification outcomes onto the response taxonomy.
// Expired, revoked and invalid credentials all reject with 401 but keep
// distinct messages so clients and logs can tell them apart.
func verifierError(err error) *apperrors.Error {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return apperrors.Auth("credential expired", err)
	case errors.Is(err, auth.ErrTokenRevoked):
		return apperrors.Auth("credential revoked", err)
	case errors.Is(err, auth.ErrTokenInvalid):
		return apperrors.Auth("invalid credential", err)
	case errors.Is(err, auth.ErrSubjectDisabled):
		return apperrors.New(apperrors.KindForbidden, "account disabled", err)
	case errors.Is(err, auth.ErrSubjectNotFound):
		return apperrors.New(apperrors.KindNotFound, "user not found", err)
	default:
		return apperrors.Provider("identity provider error", err)
	}
}

func (s *Server) identity(c *gin.Context) *auth.Identity {
	val, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	ident, _ := val.(*auth.Identity)
	return ident
}

func (s *Server) abortWithError(c *gin.Context, reqErr *apperrors.Error) {
	s.logError(c, reqErr)
	c.AbortWithStatusJSON(reqErr.HTTPStatus(), gin.H{
		"error": reqErr.Message,
		"kind":  string(reqErr.Kind),
	})
}

func (s *Server) respondError(c *gin.Context, reqErr *apperrors.Error) {
	s.logError(c, reqErr)
	c.JSON(reqErr.HTTPStatus(), gin.H{
		"error": reqErr.Message,
		"kind":  string(reqErr.Kind),
	})
}

// logError keeps the wrapped cause in server logs; clients only see the
// client-safe message.
func (s *Server) logError(c *gin.Context, reqErr *apperrors.Error) {
	if reqErr.HTTPStatus() >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(reqErr),
		)
		return
	}
	s.logger.Debug("Request rejected",
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString("request_id")),
		zap.String("kind", string(reqErr.Kind)),
		zap.String("reason", reqErr.Message),
	)
}
