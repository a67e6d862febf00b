package graph

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	apperrors "github.com/OmkarKashyap/Auto-Reason/pkg/errors"
)

// DefaultEdgeType is used when a bulk upsert edge carries no type
const DefaultEdgeType = "RELATION"

// Cypher cannot parameterize relationship types, so bulk edge types are
// restricted to plain identifiers before being spliced into the query.
var edgeTypePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// BulkUpsert merges the given nodes and edges into the user's graph inside a
// single write transaction: either every statement commits or none do.
// Nodes merge by application id with a property overlay (absent keys are
// retained). Edges merge by (source, target, type); an edge whose endpoints
// are not both present in the graph is a no-op.
func (s *Store) BulkUpsert(ctx context.Context, uid, graphName string, nodes []NodeInput, edges []EdgeInput) error {
	for _, edge := range edges {
		if edge.Type != "" && !edgeTypePattern.MatchString(edge.Type) {
			return ErrInvalidEdgeType{Type: edge.Type}
		}
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	session := s.writeSession(ctx)
	defer session.Close(ctx)

	now := time.Now().UTC().Format(time.RFC3339)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		result, err := tx.Run(ctx, matchGraphQuery, map[string]interface{}{
			"uid":       uid,
			"graphName": graphName,
		})
		if err != nil {
			return nil, err
		}
		if !result.Next(ctx) {
			if err := result.Err(); err != nil {
				return nil, err
			}
			return nil, ErrGraphNotFound{UserID: uid, Name: graphName}
		}

		for _, node := range nodes {
			props := node.Properties
			if props == nil {
				props = map[string]interface{}{}
			}
			result, err := tx.Run(ctx, upsertNodeQuery, map[string]interface{}{
				"uid":       uid,
				"graphName": graphName,
				"id":        node.ID,
				"props":     props,
				"now":       now,
			})
			if err != nil {
				return nil, err
			}
			if _, err := result.Consume(ctx); err != nil {
				return nil, err
			}
		}

		for _, edge := range edges {
			edgeType := edge.Type
			if edgeType == "" {
				edgeType = DefaultEdgeType
			}
			props := edge.Properties
			if props == nil {
				props = map[string]interface{}{}
			}
			query := fmt.Sprintf(upsertEdgeQueryFmt, edgeType)
			result, err := tx.Run(ctx, query, map[string]interface{}{
				"uid":       uid,
				"graphName": graphName,
				"source":    edge.Source,
				"target":    edge.Target,
				"props":     props,
			})
			if err != nil {
				return nil, err
			}
			if _, err := result.Consume(ctx); err != nil {
				return nil, err
			}
		}

		return nil, nil
	})
	if err != nil {
		if notFound, ok := err.(ErrGraphNotFound); ok {
			return notFound
		}
		return apperrors.Storage("graph store unavailable", err)
	}

	s.logger.Debug("Bulk upsert committed",
		zap.String("uid", uid),
		zap.String("graph", graphName),
		zap.Int("nodes", len(nodes)),
		zap.Int("edges", len(edges)),
	)
	return nil
}
