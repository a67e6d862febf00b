package graph

import (
	"context"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
)

func TestTimeFromValue(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now, timeFromValue(now))
	assert.Equal(t, now, timeFromValue("2026-08-01T12:00:00Z"))
	assert.True(t, timeFromValue("not a time").IsZero())
	assert.True(t, timeFromValue(nil).IsZero())
	assert.True(t, timeFromValue(42).IsZero())
}

func TestNodeFromDB(t *testing.T) {
	n := dbtype.Node{
		ElementId: "element-1",
		Labels:    []string{"Node"},
		Props:     map[string]interface{}{"id": "n1", "label": "idea"},
	}

	out := nodeFromDB(n)
	assert.Equal(t, "element-1", out.ID)
	assert.Equal(t, []string{"Node"}, out.Labels)
	assert.Equal(t, "idea", out.Properties["label"])
}

func TestNodeFromDBNilProps(t *testing.T) {
	out := nodeFromDB(dbtype.Node{ElementId: "element-1"})
	assert.NotNil(t, out.Properties)
	assert.Empty(t, out.Properties)
}

func TestRelationshipFromDB(t *testing.T) {
	r := dbtype.Relationship{
		ElementId:      "rel-1",
		Type:           "LEADS_TO",
		StartElementId: "element-1",
		EndElementId:   "element-2",
		Props:          map[string]interface{}{"weight": 0.5},
	}

	out := relationshipFromDB(r)
	assert.Equal(t, "rel-1", out.ID)
	assert.Equal(t, "LEADS_TO", out.Type)
	assert.Equal(t, "element-1", out.StartID)
	assert.Equal(t, "element-2", out.EndID)
	assert.Equal(t, 0.5, out.Properties["weight"])
}

func TestGraphFromDB(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	g := dbtype.Node{
		Labels: []string{"Graph"},
		Props:  map[string]interface{}{"name": "notes", "createdAt": created},
	}

	out := graphFromDB(g)
	assert.Equal(t, "notes", out.Name)
	assert.Equal(t, created, out.CreatedAt)
}

func TestBulkUpsertRejectsInvalidEdgeType(t *testing.T) {
	// Validation runs before any session is opened
	store := NewStore(nil, time.Second)

	err := store.BulkUpsert(context.Background(), "u1", "notes",
		[]NodeInput{{ID: "n1"}},
		[]EdgeInput{{Source: "n1", Target: "n1", Type: "BAD TYPE]-(x) DETACH DELETE x //"}},
	)

	assert.Error(t, err)
	var badType ErrInvalidEdgeType
	assert.ErrorAs(t, err, &badType)
}

func TestEdgeTypePattern(t *testing.T) {
	valid := []string{"RELATION", "LEADS_TO", "_private", "rel2"}
	invalid := []string{"", "BAD TYPE", "a-b", "1starts", "x`y"}

	for _, v := range valid {
		assert.True(t, edgeTypePattern.MatchString(v), v)
	}
	for _, v := range invalid {
		assert.False(t, edgeTypePattern.MatchString(v), v)
	}
}
