package attendance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"kintai-backend/internal/platform/storage"
)

func newTestRouter(t *testing.T, at string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewStore(storage.NewMemoryBlob())
	svc := NewService(store)
	if at != "" {
		fixed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			t.Fatal(err)
		}
		svc.now = func() time.Time { return fixed }
	}

	r := gin.New()
	api := r.Group("/api/v1")
	RegisterRoutes(api, svc)
	RegisterAdminRoutes(api, svc)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_PunchCreated(t *testing.T) {
	r := newTestRouter(t, "2024-03-01T00:00:00Z")

	w := doJSON(r, http.MethodPost, "/api/v1/attendance", `{"type":"出勤"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var res PunchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if !res.Success || res.Record.Type != TypeClockIn {
		t.Errorf("response = %+v", res)
	}
}

func TestHandler_PunchRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "本文なし", body: ""},
		{name: "タイプなし", body: `{}`},
		{name: "不明なタイプ", body: `{"type":"残業"}`},
		{name: "空コメント", body: `{"type":"コメント","comment":""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, "2024-03-01T00:00:00Z")
			w := doJSON(r, http.MethodPost, "/api/v1/attendance", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body=%s)", w.Code, w.Body.String())
			}
			var res errDTO
			if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
				t.Fatal(err)
			}
			if res.Error == nil || res.Error.Code != CodeInvalidArgument {
				t.Errorf("error body = %+v", res)
			}
		})
	}
}

func TestHandler_ListAndTodayAndDateFilter(t *testing.T) {
	r := newTestRouter(t, "2024-03-01T00:00:00Z")

	if w := doJSON(r, http.MethodPost, "/api/v1/attendance", `{"type":"出勤"}`); w.Code != http.StatusCreated {
		t.Fatal(w.Body.String())
	}

	for _, path := range []string{
		"/api/v1/attendance",
		"/api/v1/attendance/today",
		"/api/v1/attendance?date=2024-03-01",
		"/api/v1/attendance?date=today",
	} {
		w := doJSON(r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", path, w.Code)
		}
		var records []AttendanceRecord
		if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
			t.Fatal(err)
		}
		if len(records) != 1 {
			t.Errorf("GET %s returned %d records, want 1", path, len(records))
		}
	}

	// 該当なしの日付は空配列（nullではない）
	w := doJSON(r, http.MethodGet, "/api/v1/attendance?date=2024-03-02", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}

func TestHandler_ExportHeaders(t *testing.T) {
	r := newTestRouter(t, "2024-03-01T00:00:00Z")

	w := doJSON(r, http.MethodGet, "/api/v1/attendance/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != exportMIME {
		t.Errorf("Content-Type = %q", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "attachment; filename*=UTF-8''") || !strings.Contains(cd, "2024-03-01.xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if w.Body.Len() == 0 {
		t.Error("empty body")
	}
}

func TestHandler_ExportCSVHeaders(t *testing.T) {
	r := newTestRouter(t, "2024-03-01T00:00:00Z")

	w := doJSON(r, http.MethodGet, "/api/v1/attendance/export/csv", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "Shift_JIS") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, ".csv") {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestHandler_Delete(t *testing.T) {
	r := newTestRouter(t, "2024-03-01T00:00:00Z")

	w := doJSON(r, http.MethodPost, "/api/v1/attendance", `{"type":"出勤"}`)
	var punched PunchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &punched); err != nil {
		t.Fatal(err)
	}

	w = doJSON(r, http.MethodDelete, "/api/v1/attendance/"+punched.Record.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var res DeleteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if !res.Deleted {
		t.Error("Deleted = false, want true")
	}

	// 2回目は deleted=false（冪等）
	w = doJSON(r, http.MethodDelete, "/api/v1/attendance/"+punched.Record.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("second delete status = %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Deleted {
		t.Error("second Deleted = true, want false")
	}
}
