package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OmkarKashyap/Auto-Reason/internal/auth"
	"github.com/OmkarKashyap/Auto-Reason/internal/graph"
	"github.com/OmkarKashyap/Auto-Reason/pkg/config"
	"github.com/OmkarKashyap/Auto-Reason/pkg/logger"
)

// GraphStore is the set of graph database operations the server depends on
type GraphStore interface {
	EnsureUser(ctx context.Context, uid string, profile graph.UserProfile) error
	ListGraphs(ctx context.Context, uid string) ([]graph.GraphInfo, error)
	CreateGraph(ctx context.Context, uid, name string) error
	FetchGraph(ctx context.Context, uid, name string) (*graph.GraphData, error)
	AppendThought(ctx context.Context, uid, graphName, text string) error
	BulkUpsert(ctx context.Context, uid, graphName string, nodes []graph.NodeInput, edges []graph.EdgeInput) error
}

// Server routes HTTP requests to the identity provider and the graph store
type Server struct {
	store     GraphStore
	verifier  auth.Verifier
	registrar auth.Registrar
	cfg       *config.Config
	logger    *zap.Logger
}

// New creates a server over the given collaborators
func New(store GraphStore, verifier auth.Verifier, registrar auth.Registrar, cfg *config.Config) *Server {
	return &Server{
		store:     store,
		verifier:  verifier,
		registrar: registrar,
		cfg:       cfg,
		logger:    logger.Get(),
	}
}

// SetupRouter builds the gin engine with middleware and routes
func (s *Server) SetupRouter() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(requestID())
	router.Use(ginLogger(s.logger))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/register", s.Register)
		api.POST("/signin", s.SignIn)

		graphs := api.Group("")
		graphs.Use(s.authRequired())
		{
			graphs.GET("/graphs", s.ListGraphs)
			graphs.POST("/graphs", s.CreateGraph)
			graphs.GET("/graphs/:name", s.GetGraph)
			graphs.POST("/graphs/update", s.UpdateGraph)
			graphs.POST("/process-text", s.ProcessText)
		}
	}

	return router
}
