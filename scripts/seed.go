package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/OmkarKashyap/Auto-Reason/internal/graph"
	"github.com/OmkarKashyap/Auto-Reason/pkg/config"
	"github.com/OmkarKashyap/Auto-Reason/pkg/logger"
)

// Dev-only seeding: ensures constraints and a demo user with one graph and
// a few thoughts. Safe to run repeatedly (everything merges).
func main() {
	uid := flag.String("uid", "demo-user", "Subject id to seed")
	graphName := flag.String("graph", "notes", "Graph name to seed")
	flag.Parse()

	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting database seeding...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}
	defer driver.Close(context.Background())

	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	log.Info("Creating constraints...")
	if err := createConstraints(ctx, driver); err != nil {
		log.Warn("Failed to create some constraints (may already exist)", zap.Error(err))
	}

	store := graph.NewStore(driver, cfg.QueryTimeout)

	if err := store.EnsureUser(ctx, *uid, graph.UserProfile{
		Email: "demo@example.com",
		Name:  "Demo User",
	}); err != nil {
		log.Fatal("Failed to ensure user", zap.Error(err))
	}

	if err := store.CreateGraph(ctx, *uid, *graphName); err != nil {
		log.Fatal("Failed to create graph", zap.Error(err))
	}

	thoughts := []string{
		"first idea",
		"a connected observation",
		"something to revisit later",
	}
	for _, text := range thoughts {
		if err := store.AppendThought(ctx, *uid, *graphName, text); err != nil {
			log.Fatal("Failed to append thought", zap.String("text", text), zap.Error(err))
		}
	}

	log.Info("Seeding complete",
		zap.String("uid", *uid),
		zap.String("graph", *graphName),
		zap.Int("thoughts", len(thoughts)),
	)
}

func createConstraints(ctx context.Context, driver neo4j.DriverWithContext) error {
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	constraints := []string{
		"CREATE CONSTRAINT user_uid IF NOT EXISTS FOR (u:User) REQUIRE u.uid IS UNIQUE",
		"CREATE INDEX graph_name IF NOT EXISTS FOR (g:Graph) ON (g.name)",
		"CREATE INDEX node_id IF NOT EXISTS FOR (n:Node) ON (n.id)",
		"CREATE INDEX thought_content IF NOT EXISTS FOR (t:Thought) ON (t.content)",
	}

	for _, stmt := range constraints {
		if _, err := session.Run(ctx, stmt, nil); err != nil {
			return err
		}
	}
	return nil
}
