package graph

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/OmkarKashyap/Auto-Reason/pkg/logger"
)

// Store issues queries against the Neo4j graph database. It borrows the
// process-lifetime driver injected at construction; each operation opens a
// short-lived session from the driver's pool, so a single Store is safe for
// concurrent use by in-flight requests.
type Store struct {
	driver  neo4j.DriverWithContext
	timeout time.Duration
	logger  *zap.Logger
}

// NewStore creates a store on an existing driver. timeout bounds every
// operation issued through the store.
func NewStore(driver neo4j.DriverWithContext, timeout time.Duration) *Store {
	return &Store{
		driver:  driver,
		timeout: timeout,
		logger:  logger.Get(),
	}
}

// VerifyConnectivity checks the database is reachable
func (s *Store) VerifyConnectivity(ctx context.Context) error {
	return s.driver.VerifyConnectivity(ctx)
}

// Close closes the underlying driver connection
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Store) readSession(ctx context.Context) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
}

func (s *Store) writeSession(ctx context.Context) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
}
