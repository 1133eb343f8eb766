package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerRoutes(r)
	r.NoRoute(customNotFoundHandler)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	parsed := map[string]interface{}{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("%s %s: response is not JSON: %v", method, target, err)
		}
	}
	return w, parsed
}

func TestFocusBundle_RejectsBadKind(t *testing.T) {
	r := testRouter()

	w, body := doRequest(t, r, http.MethodGet, "/api/focus-bundle?kind=universe&id=1", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if body["error"] != "invalid_args" {
		t.Fatalf("unexpected error code %v", body["error"])
	}
	if body["hint"] == nil {
		t.Fatal("expected a hint")
	}
}

func TestFocusBundle_RejectsMissingId(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodGet, "/api/focus-bundle?kind=project", "")
	if w.Code != http.StatusBadRequest || body["error"] != "invalid_args" {
		t.Fatalf("expected invalid_args 400, got %d %v", w.Code, body)
	}
}

func TestFocusBundle_RejectsBadExposuresMode(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodGet, "/api/focus-bundle?kind=project&id=1&exposures_mode=sometimes", "")
	if w.Code != http.StatusBadRequest || body["error"] != "invalid_args" {
		t.Fatalf("expected invalid_args 400, got %d %v", w.Code, body)
	}
}

func TestSharedDependencies_RejectsMalformedBody(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodPost, "/api/analysis/concentration/shared-dependencies", "{not json")
	if w.Code != http.StatusBadRequest || body["error"] != "invalid_args" {
		t.Fatalf("expected invalid_args 400, got %d %v", w.Code, body)
	}
}

func TestSharedDependencies_RejectsBadGroupBy(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodPost, "/api/analysis/concentration/shared-dependencies",
		`{"pov_kind":"project","pov_id":1,"group_by":"color"}`)
	if w.Code != http.StatusBadRequest || body["error"] != "invalid_args" {
		t.Fatalf("expected invalid_args 400, got %d %v", w.Code, body)
	}
	hint, _ := body["hint"].(string)
	if !strings.Contains(hint, "group_by") {
		t.Fatalf("hint must name the bad parameter, got %q", hint)
	}
}

func TestSharedDependencies_RejectsLastNMode(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodPost, "/api/analysis/concentration/shared-dependencies",
		`{"pov_kind":"project","pov_id":1,"exposures_mode":"last_n"}`)
	if w.Code != http.StatusBadRequest || body["error"] != "invalid_args" {
		t.Fatalf("expected invalid_args 400, got %d %v", w.Code, body)
	}
}

func TestExpiryMonitoring_RejectsMissingPov(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodPost, "/api/analysis/expiry-monitoring", `{}`)
	if w.Code != http.StatusBadRequest || body["error"] != "invalid_args" {
		t.Fatalf("expected invalid_args 400, got %d %v", w.Code, body)
	}
	hint, _ := body["hint"].(string)
	if !strings.Contains(hint, "pov_id") {
		t.Fatalf("hint must name pov_id, got %q", hint)
	}
}

func TestExpiryMonitoring_RejectsBadMeasure(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodPost, "/api/analysis/expiry-monitoring",
		`{"pov_id":1,"measure":"evil"}`)
	if w.Code != http.StatusBadRequest || body["error"] != "invalid_args" {
		t.Fatalf("expected invalid_args 400, got %d %v", w.Code, body)
	}
}

func TestCrudRoutes_RejectBadId(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodGet, "/api/currencies/abc", "")
	if w.Code != http.StatusBadRequest || body["error"] != "invalid_args" {
		t.Fatalf("expected invalid_args 400, got %d %v", w.Code, body)
	}
}

func TestUpload_RequiresFile(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodPost, "/api/interlinkage-attachments/upload", "")
	if w.Code != http.StatusBadRequest || body["error"] != "file_required" {
		t.Fatalf("expected file_required 400, got %d %v", w.Code, body)
	}
}

func TestLogin_RequiresCredentials(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodPost, "/api/login", `{"username":"admin"}`)
	if w.Code != http.StatusBadRequest || body["error"] != "invalid_args" {
		t.Fatalf("expected invalid_args 400, got %d %v", w.Code, body)
	}
}

func TestMe_RequiresLogin(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodGet, "/api/me", "")
	if w.Code != http.StatusUnauthorized || body["error"] != "unauthorized" {
		t.Fatalf("expected unauthorized 401, got %d %v", w.Code, body)
	}
}

func TestLogout_RequiresLogin(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodPost, "/api/logout", "")
	if w.Code != http.StatusUnauthorized || body["error"] != "unauthorized" {
		t.Fatalf("expected unauthorized 401, got %d %v", w.Code, body)
	}
}

func TestWriteGuard_BlocksAnonymousWrites(t *testing.T) {
	t.Setenv("AUTH_REQUIRED", "1")
	r := testRouter()

	w, body := doRequest(t, r, http.MethodPost, "/api/currencies", `{"code":"EUR","name":"Euro"}`)
	if w.Code != http.StatusUnauthorized || body["error"] != "unauthorized" {
		t.Fatalf("expected unauthorized 401, got %d %v", w.Code, body)
	}

	// analysis endpoints stay open even with the guard on
	w, body = doRequest(t, r, http.MethodPost, "/api/analysis/expiry-monitoring", `{}`)
	if w.Code != http.StatusBadRequest || body["error"] != "invalid_args" {
		t.Fatalf("expected the guard to let analysis through, got %d %v", w.Code, body)
	}
}

func TestNoRoute(t *testing.T) {
	r := testRouter()
	w, body := doRequest(t, r, http.MethodGet, "/api/nowhere/at/all", "")
	if w.Code != http.StatusNotFound || body["error"] != "route not found" {
		t.Fatalf("expected route not found 404, got %d %v", w.Code, body)
	}
}

func TestSecureFilename(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"report.pdf", "report.pdf"},
		{"../../etc/passwd", "passwd"},
		{"weird name (1).xlsx", "weirdname1.xlsx"},
		{"...", "attachment"},
		{"", "attachment"},
	}
	for _, tc := range cases {
		if got := secureFilename(tc.in); got != tc.expected {
			t.Fatalf("secureFilename(%q) expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestSecureFilename_TruncatesLongNames(t *testing.T) {
	got := secureFilename(strings.Repeat("x", 300) + ".pdf")
	if len(got) != maxAttachmentFilename || !strings.HasSuffix(got, ".pdf") {
		t.Fatalf("expected %d chars ending in .pdf, got %d chars: %q", maxAttachmentFilename, len(got), got)
	}

	// the extension alone exceeds the limit and cannot survive
	got = secureFilename("a." + strings.Repeat("x", 300))
	if len(got) != maxAttachmentFilename {
		t.Fatalf("expected %d chars, got %d: %q", maxAttachmentFilename, len(got), got)
	}
}
