package graph

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

func getStringFromRecord(record *neo4j.Record, key string) string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

func getTimeFromRecord(record *neo4j.Record, key string) time.Time {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return time.Time{}
	}
	return timeFromValue(val)
}

// timeFromValue normalizes the shapes a Neo4j datetime property can arrive
// in: a zoned time from the driver or an RFC3339 string from older writes.
func timeFromValue(val interface{}) time.Time {
	switch v := val.(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func nodeFromDB(n dbtype.Node) Node {
	props := n.Props
	if props == nil {
		props = map[string]interface{}{}
	}
	return Node{
		ID:         n.ElementId,
		Labels:     n.Labels,
		Properties: props,
	}
}

func relationshipFromDB(r dbtype.Relationship) Relationship {
	props := r.Props
	if props == nil {
		props = map[string]interface{}{}
	}
	return Relationship{
		ID:         r.ElementId,
		Type:       r.Type,
		StartID:    r.StartElementId,
		EndID:      r.EndElementId,
		Properties: props,
	}
}

func graphFromDB(g dbtype.Node) Graph {
	out := Graph{}
	if name, ok := g.Props["name"].(string); ok {
		out.Name = name
	}
	if created, ok := g.Props["createdAt"]; ok {
		out.CreatedAt = timeFromValue(created)
	}
	return out
}
