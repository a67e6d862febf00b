package graph

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"go.uber.org/zap"

	apperrors "github.com/OmkarKashyap/Auto-Reason/pkg/errors"
)

// ListGraphs returns the graphs linked to the user, empty slice if none.
// Lookup failures are returned, never collapsed into an empty listing, so
// callers can tell "no graphs" from "store degraded".
func (s *Store) ListGraphs(ctx context.Context, uid string) ([]GraphInfo, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	session := s.readSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, listGraphsQuery, map[string]interface{}{
		"uid": uid,
	})
	if err != nil {
		return nil, apperrors.Storage("graph store unavailable", err)
	}

	graphs := []GraphInfo{}
	for result.Next(ctx) {
		record := result.Record()
		graphs = append(graphs, GraphInfo{
			Name:      getStringFromRecord(record, "name"),
			CreatedAt: getTimeFromRecord(record, "createdAt"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, apperrors.Storage("graph store unavailable", err)
	}

	return graphs, nil
}

// CreateGraph merges a graph with the given name under the user. Re-creating
// an existing name is a no-op, not an error.
func (s *Store) CreateGraph(ctx context.Context, uid, name string) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	session := s.writeSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, createGraphQuery, map[string]interface{}{
		"uid":  uid,
		"name": name,
		"now":  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return apperrors.Storage("graph store unavailable", err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return apperrors.Storage("graph store unavailable", err)
	}

	s.logger.Debug("Graph ensured", zap.String("uid", uid), zap.String("name", name))
	return nil
}

// FetchGraph reads the graph plus all contained nodes and the relationships
// between them in one query. The match starts from the authenticated user,
// so another user's graph of the same name is simply not found.
func (s *Store) FetchGraph(ctx context.Context, uid, name string) (*GraphData, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	session := s.readSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, fetchGraphQuery, map[string]interface{}{
		"uid":  uid,
		"name": name,
	})
	if err != nil {
		return nil, apperrors.Storage("graph store unavailable", err)
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, apperrors.Storage("graph store unavailable", err)
		}
		return nil, ErrGraphNotFound{UserID: uid, Name: name}
	}
	record := result.Record()

	data := &GraphData{
		Nodes:         []Node{},
		Relationships: []Relationship{},
	}

	if val, ok := record.Get("g"); ok {
		if g, ok := val.(dbtype.Node); ok {
			data.Graph = graphFromDB(g)
		}
	}

	if val, ok := record.Get("nodes"); ok {
		if list, ok := val.([]interface{}); ok {
			for _, item := range list {
				if n, ok := item.(dbtype.Node); ok {
					data.Nodes = append(data.Nodes, nodeFromDB(n))
				}
			}
		}
	}

	if val, ok := record.Get("relationships"); ok {
		if list, ok := val.([]interface{}); ok {
			for _, item := range list {
				if r, ok := item.(dbtype.Relationship); ok {
					data.Relationships = append(data.Relationships, relationshipFromDB(r))
				}
			}
		}
	}

	return data, nil
}
