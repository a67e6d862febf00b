package graph

import (
	"context"
	"time"

	apperrors "github.com/OmkarKashyap/Auto-Reason/pkg/errors"
)

// EnsureUser merges the user node for a verified subject id. Profile claims
// are written only when the node is first created, so a later token with
// default claims never clobbers an existing profile. Idempotent.
func (s *Store) EnsureUser(ctx context.Context, uid string, profile UserProfile) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	session := s.writeSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, ensureUserQuery, map[string]interface{}{
		"uid":   uid,
		"email": profile.Email,
		"name":  profile.Name,
		"now":   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return apperrors.Storage("graph store unavailable", err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return apperrors.Storage("graph store unavailable", err)
	}

	return nil
}
