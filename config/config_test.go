package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load() with missing file should not fail: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("default port = %d, want 8000", cfg.Server.Port)
	}
	if len(cfg.Cors.AllowOrigins) != 1 || cfg.Cors.AllowOrigins[0] != "*" {
		t.Errorf("default CORS origins = %v, want [*]", cfg.Cors.AllowOrigins)
	}
	if cfg.Files.Topics != "./topics.txt" || cfg.Files.Blueprint != "./system_blueprint.json" {
		t.Errorf("default file paths wrong: %+v", cfg.Files)
	}
}

func TestLoadYamlAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
server:
  port: 9000
gemini:
  apiKey: from-yaml
database:
  uri: mongodb://yaml/db
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want yaml value 9000", cfg.Server.Port)
	}
	if cfg.Gemini.ApiKey != "from-env" {
		t.Errorf("gemini key = %q, env must override yaml", cfg.Gemini.ApiKey)
	}
	if cfg.Database.URI != "mongodb://yaml/db" {
		t.Errorf("database uri = %q, want yaml value", cfg.Database.URI)
	}
}
