package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SEARCH_DEPTH", "MAX_SEARCH_DEPTH", "MAX_TREE_NODES", "PARALLEL_SEARCH", "ALLOWED_ORIGINS", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 6, cfg.SearchDepth)
	assert.Equal(t, 7, cfg.MaxSearchDepth)
	assert.Equal(t, int64(1_000_000), cfg.MaxTreeNodes)
	assert.False(t, cfg.ParallelSearch)
	assert.Empty(t, cfg.JWTSecret)
	assert.Same(t, cfg, AppConfig)
}

func TestDefaultNodeBudgetCoversMaxDepth(t *testing.T) {
	for _, key := range []string{"MAX_SEARCH_DEPTH", "MAX_TREE_NODES"} {
		t.Setenv(key, "")
	}
	cfg := LoadConfig()

	nodes, width := int64(0), int64(1)
	for ply := 0; ply <= cfg.MaxSearchDepth; ply++ {
		nodes += width
		width *= 7
	}
	assert.LessOrEqual(t, nodes, cfg.MaxTreeNodes)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SEARCH_DEPTH", "12")
	t.Setenv("MAX_SEARCH_DEPTH", "7")
	t.Setenv("PARALLEL_SEARCH", "true")
	t.Setenv("FRONTEND_URL", "http://example.test")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg := LoadConfig()
	assert.Equal(t, 7, cfg.SearchDepth)
	assert.Equal(t, 7, cfg.MaxSearchDepth)
	assert.True(t, cfg.ParallelSearch)
	assert.Equal(t, []string{"http://example.test", "http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("C4_TEST_INT", "four")
	t.Setenv("C4_TEST_BOOL", "maybe")

	assert.Equal(t, 4, GetEnvAsInt("C4_TEST_INT", 4))
	assert.True(t, GetEnvAsBool("C4_TEST_BOOL", true))
	assert.Equal(t, "x", GetEnv("C4_TEST_MISSING", "x"))
}
