package graph

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/OmkarKashyap/Auto-Reason/pkg/errors"
)

// AppendThought links a thought with the given text to the user's graph.
// Thought identity is the text itself: appending identical text twice merges
// into one node. Thoughts are append-only and carry no sequence number, so
// retrieval order is unrelated to insertion order.
func (s *Store) AppendThought(ctx context.Context, uid, graphName, text string) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	session := s.writeSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, appendThoughtQuery, map[string]interface{}{
		"uid":       uid,
		"graphName": graphName,
		"text":      text,
		"id":        uuid.NewString(),
		"now":       time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return apperrors.Storage("graph store unavailable", err)
	}

	// The MATCH anchors on the user's graph: no returned row means the graph
	// does not exist for this caller.
	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return apperrors.Storage("graph store unavailable", err)
		}
		return ErrGraphNotFound{UserID: uid, Name: graphName}
	}
	if _, err := result.Consume(ctx); err != nil {
		return apperrors.Storage("graph store unavailable", err)
	}

	return nil
}
