package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OmkarKashyap/Auto-Reason/internal/auth"
	"github.com/OmkarKashyap/Auto-Reason/internal/graph"
	apperrors "github.com/OmkarKashyap/Auto-Reason/pkg/errors"
)

// ensureUser merges the caller's user node before any graph operation, so
// first-time callers can list and create graphs without registering through
// this API.
func (s *Server) ensureUser(c *gin.Context, ident *auth.Identity) bool {
	err := s.store.EnsureUser(c.Request.Context(), ident.SubjectID, graph.UserProfile{
		Email: ident.Email,
		Name:  ident.Name,
	})
	if err != nil {
		s.respondError(c, apperrors.AsError(err))
		return false
	}
	return true
}

// storeError maps graph store outcomes onto the response taxonomy
func storeError(err error) *apperrors.Error {
	var notFound graph.ErrGraphNotFound
	if errors.As(err, &notFound) {
		return apperrors.NotFound("Graph not found")
	}
	var badType graph.ErrInvalidEdgeType
	if errors.As(err, &badType) {
		return apperrors.Validation(badType.Error())
	}
	return apperrors.AsError(err)
}

// ListGraphs returns all graphs linked to the caller
func (s *Server) ListGraphs(c *gin.Context) {
	ident := s.identity(c)
	if !s.ensureUser(c, ident) {
		return
	}

	graphs, err := s.store.ListGraphs(c.Request.Context(), ident.SubjectID)
	if err != nil {
		s.respondError(c, storeError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"graphs": graphs})
}

type createGraphRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateGraph merges a named graph under the caller
func (s *Server) CreateGraph(c *gin.Context) {
	var req createGraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.Validation("Graph name is required"))
		return
	}

	ident := s.identity(c)
	if !s.ensureUser(c, ident) {
		return
	}

	if err := s.store.CreateGraph(c.Request.Context(), ident.SubjectID, req.Name); err != nil {
		s.respondError(c, storeError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Graph created successfully"})
}

// GetGraph returns a graph with its nodes and relationships
func (s *Server) GetGraph(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		s.respondError(c, apperrors.Validation("Graph name is required"))
		return
	}

	ident := s.identity(c)
	if !s.ensureUser(c, ident) {
		return
	}

	data, err := s.store.FetchGraph(c.Request.Context(), ident.SubjectID, name)
	if err != nil {
		s.respondError(c, storeError(err))
		return
	}

	c.JSON(http.StatusOK, data)
}

type updateGraphRequest struct {
	GraphName string            `json:"graphName" binding:"required"`
	Nodes     []graph.NodeInput `json:"nodes" binding:"required,min=1"`
	Edges     []graph.EdgeInput `json:"edges" binding:"required,min=1"`
}

// UpdateGraph bulk-upserts nodes and edges into a graph in one transaction
func (s *Server) UpdateGraph(c *gin.Context) {
	var req updateGraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.Validation("graphName, nodes and edges are required"))
		return
	}
	for _, node := range req.Nodes {
		if node.ID == "" {
			s.respondError(c, apperrors.Validation("every node requires an id"))
			return
		}
	}
	for _, edge := range req.Edges {
		if edge.Source == "" || edge.Target == "" {
			s.respondError(c, apperrors.Validation("every edge requires source and target"))
			return
		}
	}

	ident := s.identity(c)
	if !s.ensureUser(c, ident) {
		return
	}

	if err := s.store.BulkUpsert(c.Request.Context(), ident.SubjectID, req.GraphName, req.Nodes, req.Edges); err != nil {
		s.respondError(c, storeError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Graph updated successfully"})
}

type processTextRequest struct {
	GraphName string `json:"graphName" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// ProcessText appends a thought to a graph
func (s *Server) ProcessText(c *gin.Context) {
	var req processTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.Validation("graphName and text are required"))
		return
	}

	ident := s.identity(c)
	if !s.ensureUser(c, ident) {
		return
	}

	if err := s.store.AppendThought(c.Request.Context(), ident.SubjectID, req.GraphName, req.Text); err != nil {
		s.respondError(c, storeError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thought added successfully"})
}
