package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetMessageFromEmbeddedCatalog(t *testing.T) {
	got := GetMessage("todo.created", int64(7), 3)
	if got != "ToDo item 7 created for user 3" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestGetMessageFormatsArguments(t *testing.T) {
	got := GetMessage("app.req-fail", "POST", "/todo", 500, 1500*time.Millisecond, "req-1", errors.New("boom"))
	want := "Request POST /todo failed with status 500 in 1.5s (request_id=req-1): boom"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetMessageUnknownKey(t *testing.T) {
	if got := GetMessage("does.not.exist"); got != "Message not found: does.not.exist" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestInitOverridesMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	content := "custom:\n  greeting: \"hello {0}\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write messages: %v", err)
	}

	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := GetMessage("custom.greeting", map[string]int{"id": 1}); got != `hello {"id":1}` {
		t.Errorf("unexpected message: %q", got)
	}
	if got := GetMessage("todo.error.required-fields"); got != "task and user_id are required" {
		t.Errorf("embedded messages lost after Init: %q", got)
	}
}
