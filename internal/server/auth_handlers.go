package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OmkarKashyap/Auto-Reason/internal/auth"
	"github.com/OmkarKashyap/Auto-Reason/internal/graph"
	apperrors "github.com/OmkarKashyap/Auto-Reason/pkg/errors"
)

type registerRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register creates a user at the identity provider and seeds the matching
// user node in the graph store.
func (s *Server) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.Validation("fullName, email and password are required"))
		return
	}

	uid, err := s.registrar.Register(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			s.respondError(c, apperrors.Conflict("Email address is already in use"))
			return
		}
		s.respondError(c, apperrors.Provider("An error occurred during registration", err))
		return
	}

	// Profile claims land on the node now; EnsureUser never overwrites them
	// on later requests.
	if err := s.store.EnsureUser(c.Request.Context(), uid, graph.UserProfile{
		Email: req.Email,
		Name:  req.FullName,
	}); err != nil {
		s.respondError(c, apperrors.AsError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"userId":  uid,
	})
}

// SignIn verifies the bearer credential and returns the subject id. Kept as
// its own handler rather than behind the auth middleware so its 404 mapping
// for missing subjects stays explicit.
func (s *Server) SignIn(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		s.respondError(c, apperrors.Auth("Authorization header with Bearer token is required", nil))
		return
	}

	ident, err := s.verifier.Verify(c.Request.Context(), token)
	if err != nil {
		s.respondError(c, verifierError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sign in successful",
		"userId":  ident.SubjectID,
	})
}
