package graph

import "fmt"

// ErrGraphNotFound is returned when the named graph is not linked to the
// requesting user. Cross-user access looks identical to a missing graph.
type ErrGraphNotFound struct {
	UserID string
	Name   string
}

func (e ErrGraphNotFound) Error() string {
	return fmt.Sprintf("graph %q not found for user %s", e.Name, e.UserID)
}

// ErrInvalidEdgeType is returned when a bulk upsert edge type is not a valid
// relationship identifier
type ErrInvalidEdgeType struct {
	Type string
}

func (e ErrInvalidEdgeType) Error() string {
	return fmt.Sprintf("invalid edge type %q", e.Type)
}
