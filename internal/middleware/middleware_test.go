package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/cashbench/internal/api"
	"github.com/mmynk/cashbench/internal/auth"
	"github.com/mmynk/cashbench/internal/models"
)

// noteEcho is a minimal LedgerService: GetNote echoes the caller's user ID.
type noteEcho struct {
	api.LedgerServiceHandler
}

func (noteEcho) GetNote(ctx context.Context, _ *connect.Request[api.GetNoteRequest]) (*connect.Response[api.GetNoteResponse], error) {
	if GetUserID(ctx) == "boom" {
		return nil, connect.NewError(connect.CodeInternal, errors.New("boom"))
	}
	return connect.NewResponse(&api.GetNoteResponse{Content: GetUserID(ctx)}), nil
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := bearerToken(tt.header)
			if got != tt.want || ok != tt.ok {
				t.Errorf("bearerToken(%q) = %q, %v; want %q, %v", tt.header, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRequireAuthAndMetrics(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	path, handler := api.NewLedgerServiceHandler(noteEcho{},
		connect.WithInterceptors(metrics.Interceptor(), RequireAuth(jwtManager), LoggingInterceptor()),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	client := api.NewLedgerServiceClient(http.DefaultClient, server.URL)
	ctx := context.Background()

	t.Run("missing token", func(t *testing.T) {
		_, err := client.GetNote(ctx, connect.NewRequest(&api.GetNoteRequest{}))
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("code = %v, want Unauthenticated", connect.CodeOf(err))
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := jwtManager.Generate(&models.User{ID: "user-42", Email: "x@example.com"})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		req := connect.NewRequest(&api.GetNoteRequest{})
		req.Header().Set("Authorization", "Bearer "+token)
		resp, err := client.GetNote(ctx, req)
		if err != nil {
			t.Fatalf("GetNote failed: %v", err)
		}
		if resp.Msg.Content != "user-42" {
			t.Errorf("user id in context = %q, want user-42", resp.Msg.Content)
		}
	})

	t.Run("handler error", func(t *testing.T) {
		token, err := jwtManager.Generate(&models.User{ID: "boom"})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		req := connect.NewRequest(&api.GetNoteRequest{})
		req.Header().Set("Authorization", "Bearer "+token)
		if _, err := client.GetNote(ctx, req); connect.CodeOf(err) != connect.CodeInternal {
			t.Errorf("code = %v, want Internal", connect.CodeOf(err))
		}
	})

	t.Run("counters", func(t *testing.T) {
		rec := httptest.NewRecorder()
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		body, _ := io.ReadAll(rec.Body)

		for _, want := range []string{
			`cashbench_rpc_requests_total{code="internal",procedure="/cashbench.v1.LedgerService/GetNote"} 1`,
			`cashbench_rpc_requests_total{code="ok",procedure="/cashbench.v1.LedgerService/GetNote"} 1`,
			`cashbench_rpc_requests_total{code="unauthenticated",procedure="/cashbench.v1.LedgerService/GetNote"} 1`,
			`cashbench_rpc_duration_seconds_count{procedure="/cashbench.v1.LedgerService/GetNote"} 3`,
		} {
			if !strings.Contains(string(body), want) {
				t.Errorf("metrics output missing %s", want)
			}
		}
	})
}
