package middleware

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/knaeeim/Bangla-Drop-Server/internal/adapter/fireauth"
	testhelpers "github.com/knaeeim/Bangla-Drop-Server/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(verifier fireauth.Verifier) (*gin.Engine, *string) {
	var seenEmail string
	router := gin.New()
	router.GET("/guarded", AuthRequired(verifier), func(c *gin.Context) {
		seenEmail = c.GetString(EmailContextKey)
		c.Status(http.StatusOK)
	})
	return router, &seenEmail
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	verifier := &testhelpers.VerifierStub{}
	router, _ := authTestRouter(verifier)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if verifier.Calls() != 0 {
		t.Fatalf("verifier should not run without a header, got %d calls", verifier.Calls())
	}
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no scheme", header: "token-without-scheme"},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "empty token", header: "Bearer"},
		{name: "too many parts", header: "Bearer one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &testhelpers.VerifierStub{}
			router, _ := authTestRouter(verifier)

			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			req.Header.Set("Authorization", tt.header)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", resp.Code)
			}
			if verifier.Calls() != 0 {
				t.Fatalf("verifier should not run for %q", tt.header)
			}
		})
	}
}

func TestAuthRequiredRejectedToken(t *testing.T) {
	verifier := &testhelpers.VerifierStub{Err: errors.New("token expired")}
	router, _ := authTestRouter(verifier)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
	if verifier.Calls() != 1 {
		t.Fatalf("expected one verifier call, got %d", verifier.Calls())
	}
}

func TestAuthRequiredAttachesEmail(t *testing.T) {
	verifier := &testhelpers.VerifierStub{Identity: fireauth.Identity{UID: "uid-1", Email: "sender@example.com"}}
	router, seenEmail := authTestRouter(verifier)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "bearer good-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if *seenEmail != "sender@example.com" {
		t.Fatalf("expected email attached to context, got %q", *seenEmail)
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "BEARER abc", want: "abc"},
		{header: "Bearer", want: ""},
		{header: "Basic abc", want: ""},
		{header: "Bearer a b", want: ""},
	}

	for _, tt := range tests {
		if got := extractToken(tt.header); got != tt.want {
			t.Errorf("extractToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestDecompressRequest(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/echo", func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, string(data))
	})

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(`{"title":"Books"}`)); err != nil {
		t.Fatalf("compress body: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/echo", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != `{"title":"Books"}` {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestDecompressRequestRejectsGarbage(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/echo", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestDecompressRequestPassthrough(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest())
	router.POST("/echo", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(data))
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader([]byte("plain body")))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Body.String() != "plain body" {
		t.Fatalf("expected untouched body, got %q", resp.Body.String())
	}
}

func TestMetricsDoesNotInterfere(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK || resp.Body.String() != "pong" {
		t.Fatalf("unexpected response %d %q", resp.Code, resp.Body.String())
	}

	// unmatched routes must not panic the label lookup
	req = httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
