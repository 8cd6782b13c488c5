package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	gormdb "gorm.io/gorm"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/usecase/todo"
	database "todo-api/internal/infra/database/gorm"
)

func newTestServer(t *testing.T) (*echo.Echo, *gormdb.DB) {
	t.Helper()

	store, err := database.Open(database.Config{
		Driver:       database.DriverSQLite,
		DSN:          filepath.Join(t.TempDir(), "todo.db"),
		MaxOpenConns: 1,
		BusyTimeout:  time.Second,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(store) })

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	useCase := todo.NewToDoItemUseCase(db.NewGormUnitOfWork(store), queue.NoopSender{}, "")
	NewToDoItemController(e.Group(""), useCase).InitToDoItemRoutes()

	return e, store
}

func postToDo(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/todo", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func listToDos(e *echo.Echo) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body["error"]
}

func TestCreateThenList(t *testing.T) {
	e, _ := newTestServer(t)

	rec := postToDo(e, `{"task":"buy milk","user_id":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /todo status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"id":1,"task":"buy milk","user_id":1}` {
		t.Errorf("POST /todo body = %s", got)
	}

	rec = listToDos(e)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /todos status = %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `[{"id":1,"task":"buy milk","user_id":1}]` {
		t.Errorf("GET /todos body = %s", got)
	}
}

func TestListEmpty(t *testing.T) {
	e, _ := newTestServer(t)

	rec := listToDos(e)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("GET /todos = %d %s, want 200 []", rec.Code, rec.Body.String())
	}
}

func TestListReturnsEveryCreatedItem(t *testing.T) {
	e, _ := newTestServer(t)

	const n = 5
	ids := make(map[int64]bool)
	for i := 0; i < n; i++ {
		rec := postToDo(e, fmt.Sprintf(`{"task":"task %d","user_id":%d}`, i, i%2))
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %d: status %d", i, rec.Code)
		}
		var item entity.ToDoItem
		if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
			t.Fatalf("decode: %v", err)
		}
		ids[item.ID] = true
	}
	if len(ids) != n {
		t.Fatalf("expected %d distinct ids, got %v", n, ids)
	}

	first := listToDos(e)
	second := listToDos(e)
	if first.Body.String() != second.Body.String() {
		t.Errorf("consecutive lists differ:\n%s\n%s", first.Body.String(), second.Body.String())
	}

	var items []entity.ToDoItem
	if err := json.Unmarshal(first.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != n {
		t.Fatalf("expected %d items, got %d", n, len(items))
	}
	for i, item := range items {
		if !ids[item.ID] || item.Task != fmt.Sprintf("task %d", i) {
			t.Errorf("item %d = %+v", i, item)
		}
		if i > 0 && items[i-1].ID >= item.ID {
			t.Errorf("items not ordered by id: %+v", items)
		}
	}
}

func TestCreateIgnoresClientID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := postToDo(e, `{"id":99,"task":"a","user_id":3}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d", rec.Code)
	}
	var item entity.ToDoItem
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if item.ID != 1 {
		t.Errorf("expected the server assigned id 1, got %d", item.ID)
	}
}

func TestCreateRejectsBadRequests(t *testing.T) {
	e, _ := newTestServer(t)

	cases := map[string]string{
		"missing task":    `{"user_id":1}`,
		"missing user_id": `{"task":"a"}`,
		"empty object":    `{}`,
		"user_id string":  `{"task":"a","user_id":"one"}`,
		"malformed json":  `{"task":`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := postToDo(e, body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			if decodeError(t, rec) == "" {
				t.Errorf("expected an error message")
			}
		})
	}

	if rec := listToDos(e); strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("rejected requests must not add rows: %s", rec.Body.String())
	}
}

func TestCreateReportsConflict(t *testing.T) {
	e, store := newTestServer(t)
	if err := store.Exec("CREATE UNIQUE INDEX idx_todo_items_task_user ON todo_items (task, user_id)").Error; err != nil {
		t.Fatalf("create index: %v", err)
	}

	if rec := postToDo(e, `{"task":"a","user_id":1}`); rec.Code != http.StatusCreated {
		t.Fatalf("first create: status %d", rec.Code)
	}

	rec := postToDo(e, `{"task":"a","user_id":1}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate create: status %d, body %s", rec.Code, rec.Body.String())
	}
	if detail := decodeError(t, rec); !strings.Contains(detail, "UNIQUE") {
		t.Errorf("expected the driver's violation text, got %q", detail)
	}

	var items []entity.ToDoItem
	if err := json.Unmarshal(listToDos(e).Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("conflict must not add a row, got %d rows", len(items))
	}
}

func TestCreateReportsStorageFailure(t *testing.T) {
	e, store := newTestServer(t)
	if err := store.Migrator().DropTable(&entity.ToDoItem{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	rec := postToDo(e, `{"task":"a","user_id":1}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec); got != "internal server error" {
		t.Errorf("error = %q", got)
	}

	if rec := listToDos(e); rec.Code != http.StatusInternalServerError {
		t.Errorf("list status = %d", rec.Code)
	}
}

func TestConcurrentCreates(t *testing.T) {
	e, _ := newTestServer(t)

	const n = 20
	var wg sync.WaitGroup
	codes := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes <- postToDo(e, fmt.Sprintf(`{"task":"t%d","user_id":1}`, i)).Code
		}(i)
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		if code != http.StatusCreated {
			t.Errorf("concurrent create status %d", code)
		}
	}

	var items []entity.ToDoItem
	if err := json.Unmarshal(listToDos(e).Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != n {
		t.Errorf("expected %d items, got %d", n, len(items))
	}
}
