package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/cashbench/internal/api"
	"github.com/mmynk/cashbench/internal/config"
	"github.com/mmynk/cashbench/internal/storage/sqlite"
)

func setupTestServer(t *testing.T, staticDir string) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := config.DefaultConfig()
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Server.StaticPath = staticDir

	handler, err := newHandler(cfg, store, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("newHandler failed: %v", err)
	}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body failed: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestHandler(t *testing.T) {
	server := setupTestServer(t, "")
	ctx := context.Background()

	t.Run("healthz", func(t *testing.T) {
		code, body := get(t, server.URL+"/healthz")
		if code != http.StatusOK || strings.TrimSpace(body) != "ok" {
			t.Errorf("healthz = %d %q", code, body)
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodOptions, server.URL+api.LedgerServiceGetNoteProcedure, nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("OPTIONS failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
		if h := resp.Header.Get("Access-Control-Allow-Headers"); !strings.Contains(h, "Authorization") {
			t.Errorf("Access-Control-Allow-Headers = %q, want Authorization", h)
		}
	})

	t.Run("register then use ledger", func(t *testing.T) {
		authClient := api.NewAuthServiceClient(http.DefaultClient, server.URL)
		ledgerClient := api.NewLedgerServiceClient(http.DefaultClient, server.URL)

		_, err := ledgerClient.ListAccounts(ctx, connect.NewRequest(&api.ListAccountsRequest{}))
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Fatalf("ListAccounts without token: %v, want Unauthenticated", err)
		}

		reg, err := authClient.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Email:    "alice@example.com",
			Password: "correct horse",
		}))
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		req := connect.NewRequest(&api.ListWorkbenchesRequest{})
		req.Header().Set("Authorization", "Bearer "+reg.Msg.Token)
		resp, err := ledgerClient.ListWorkbenches(ctx, req)
		if err != nil {
			t.Fatalf("ListWorkbenches failed: %v", err)
		}
		if len(resp.Msg.Workbenches) != 1 || resp.Msg.Workbenches[0].Title != "Main" {
			t.Errorf("Workbenches = %+v, want only Main", resp.Msg.Workbenches)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		code, body := get(t, server.URL+"/metrics")
		if code != http.StatusOK {
			t.Fatalf("metrics status = %d", code)
		}
		for _, want := range []string{
			`cashbench_rpc_requests_total{code="ok",procedure="` + api.AuthServiceRegisterProcedure + `"} 1`,
			`cashbench_rpc_requests_total{code="unauthenticated",procedure="` + api.LedgerServiceListAccountsProcedure + `"} 1`,
		} {
			if !strings.Contains(body, want) {
				t.Errorf("metrics missing %q", want)
			}
		}
	})
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"index.html": "<h1>cashbench</h1>",
		"app.js":     "console.log('hi')",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	server := setupTestServer(t, dir)

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/", http.StatusOK, "<h1>cashbench</h1>"},
		{"/app.js", http.StatusOK, "console.log"},
		{"/bills/upcoming", http.StatusOK, "<h1>cashbench</h1>"},
		{"/cashbench.v1.NoSuchService/Call", http.StatusNotFound, ""},
		{"/healthz", http.StatusOK, "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			code, body := get(t, server.URL+tt.path)
			if code != tt.wantCode {
				t.Errorf("status = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(body, tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", body, tt.wantBody)
			}
		})
	}
}
