package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "NEO4J_URI", "QUERY_TIMEOUT_SECONDS", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4jURI)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("NEO4J_URI", "bolt://db:7687")
	t.Setenv("QUERY_TIMEOUT_SECONDS", "12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "bolt://db:7687", cfg.Neo4jURI)
	assert.Equal(t, 12*time.Second, cfg.QueryTimeout)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Neo4jURI:      "bolt://localhost:7687",
		Neo4jUser:     "neo4j",
		Neo4jPassword: "password",
		QueryTimeout:  time.Second,
	}
	assert.NoError(t, cfg.Validate())

	cfg.Neo4jURI = ""
	assert.Error(t, cfg.Validate())
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	assert.Equal(t, 7, getEnvInt("SOME_INT", 7))

	t.Setenv("SOME_LIST", " , ,")
	assert.Equal(t, []string{"fallback"}, getEnvList("SOME_LIST", []string{"fallback"}))
}
