package graph

import "time"

// UserProfile carries the optional claims set on a user node the first time
// it is created. Later calls never overwrite them.
type UserProfile struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// GraphInfo is a single entry in a user's graph listing
type GraphInfo struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Graph is the graph entity itself, without its contents
type Graph struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Node is a vertex contained in a graph
type Node struct {
	ID         string                 `json:"id"`
	Labels     []string               `json:"labels"`
	Properties map[string]interface{} `json:"properties"`
}

// Relationship connects two nodes of the same graph
type Relationship struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	StartID    string                 `json:"startId"`
	EndID      string                 `json:"endId"`
	Properties map[string]interface{} `json:"properties"`
}

// GraphData is a complete read of one graph
type GraphData struct {
	Graph         Graph          `json:"graph"`
	Nodes         []Node         `json:"nodes"`
	Relationships []Relationship `json:"relationships"`
}

// NodeInput is one node in a bulk upsert payload, keyed by an
// application-supplied id
type NodeInput struct {
	ID         string                 `json:"id"`
	Properties map[string]interface{} `json:"properties"`
}

// EdgeInput is one edge in a bulk upsert payload. Type defaults to RELATION.
type EdgeInput struct {
	Source     string                 `json:"source"`
	Target     string                 `json:"target"`
	Type       string                 `json:"type,omitempty"`
	Properties map[string]interface{} `json:"properties"`
}
