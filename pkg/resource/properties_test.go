package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testProperties = `
app:
  name: todo-api
  server:
    port: 8080
    shutdown-timeout: 5s
  db:
    dsn: ${RESOURCE_TEST_DSN:todo.db}
    driver: ${RESOURCE_TEST_DRIVER:sqlite}
  queue:
    enabled: false
  proxies: ${RESOURCE_TEST_PROXIES:}
`

func writeProperties(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(testProperties), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}
	return path
}

func TestLoadResolvesEnvironmentPlaceholders(t *testing.T) {
	t.Setenv("RESOURCE_TEST_DSN", "/var/lib/todo/items.db")

	if err := Load(writeProperties(t)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := GetString("app.db.dsn"); got != "/var/lib/todo/items.db" {
		t.Errorf("app.db.dsn = %q", got)
	}
	if got := GetString("app.db.driver"); got != "sqlite" {
		t.Errorf("app.db.driver = %q, want default sqlite", got)
	}
	if got := GetString("app.name"); got != "todo-api" {
		t.Errorf("app.name = %q", got)
	}
	if got := GetInt("app.server.port"); got != 8080 {
		t.Errorf("app.server.port = %d", got)
	}
	if got := GetDuration("app.server.shutdown-timeout"); got != 5*time.Second {
		t.Errorf("app.server.shutdown-timeout = %v", got)
	}
	if GetBool("app.queue.enabled") {
		t.Error("app.queue.enabled should be false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected an error for a missing properties file")
	}
}

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("RESOURCE_TEST_SET", "value")

	cases := map[string]string{
		"plain":                           "plain",
		"${RESOURCE_TEST_SET}":            "value",
		"${RESOURCE_TEST_SET:fallback}":   "value",
		"${RESOURCE_TEST_UNSET:fallback}": "fallback",
		"${RESOURCE_TEST_UNSET}":          "",
		"prefix-${RESOURCE_TEST_SET}":     "prefix-${RESOURCE_TEST_SET}",
	}

	for input, want := range cases {
		if got := resolveEnvVariable(input); got != want {
			t.Errorf("resolveEnvVariable(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestGetStringSliceAndDefaults(t *testing.T) {
	t.Setenv("RESOURCE_TEST_PROXIES", "10.0.0.0/8 192.168.1.10/32")
	SetDefault("app.not-in-file", "30s")

	if err := Load(writeProperties(t)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	proxies := GetStringSlice("app.proxies")
	if len(proxies) != 2 || proxies[0] != "10.0.0.0/8" || proxies[1] != "192.168.1.10/32" {
		t.Errorf("app.proxies = %v", proxies)
	}
	if got := GetDuration("app.not-in-file"); got != 30*time.Second {
		t.Errorf("default not applied: %v", got)
	}
}
