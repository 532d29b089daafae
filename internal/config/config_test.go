package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeCredentialFile writes a config file into a temp dir and points
// LINEAR_MCP_CONFIG at it so Resolve reads it instead of ~/.
func writeCredentialFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFile)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: write config file: %v", err)
	}
	t.Setenv("LINEAR_MCP_CONFIG", path)
	return path
}

func TestResolve_ArgumentWins(t *testing.T) {
	t.Setenv("LINEAR_API_KEY", "from-env")
	writeCredentialFile(t, `{"apiKey": "from-file"}`)

	cfg, err := Resolve("from-arg")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.APIKey != "from-arg" {
		t.Errorf("APIKey = %s, want from-arg", cfg.APIKey)
	}
}

func TestResolve_EnvBeatsFile(t *testing.T) {
	t.Setenv("LINEAR_API_KEY", "from-env")
	writeCredentialFile(t, `{"apiKey": "from-file"}`)

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("APIKey = %s, want from-env", cfg.APIKey)
	}
}

func TestResolve_FileOnly(t *testing.T) {
	t.Setenv("LINEAR_API_KEY", "")
	writeCredentialFile(t, `{"apiKey": "from-file"}`)

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.APIKey != "from-file" {
		t.Errorf("APIKey = %s, want from-file", cfg.APIKey)
	}
}

func TestResolve_NoSource(t *testing.T) {
	t.Setenv("LINEAR_API_KEY", "")
	t.Setenv("LINEAR_MCP_CONFIG", filepath.Join(t.TempDir(), ConfigFile))

	_, err := Resolve("")
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("Resolve error = %v, want ErrNoCredential", err)
	}
}

func TestResolve_EmptyKeyInFile(t *testing.T) {
	t.Setenv("LINEAR_API_KEY", "")
	writeCredentialFile(t, `{"apiKey": ""}`)

	_, err := Resolve("")
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("Resolve error = %v, want ErrNoCredential", err)
	}
}

func TestResolve_MalformedFile(t *testing.T) {
	t.Setenv("LINEAR_API_KEY", "")
	writeCredentialFile(t, `{not json`)

	_, err := Resolve("")
	if err == nil {
		t.Fatal("Resolve should fail on a malformed config file")
	}
	if errors.Is(err, ErrNoCredential) {
		t.Fatal("malformed file should be reported as a parse error, not a missing credential")
	}
}
