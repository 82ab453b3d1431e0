package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/cashbench/internal/api"
	"github.com/mmynk/cashbench/internal/auth"
	"github.com/mmynk/cashbench/internal/middleware"
	"github.com/mmynk/cashbench/internal/storage/sqlite"
)

func setupAuthTestServer(t *testing.T) (api.AuthServiceClient, api.LedgerServiceClient) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mux := http.NewServeMux()
	mux.Handle(api.NewAuthServiceHandler(
		NewAuthService(authenticator, jwtManager, logger),
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager)),
	))
	mux.Handle(api.NewLedgerServiceHandler(
		NewLedgerService(store, LedgerOptions{DueSoonHorizon: 3}),
		connect.WithInterceptors(middleware.RequireAuth(jwtManager)),
	))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return api.NewAuthServiceClient(http.DefaultClient, server.URL),
		api.NewLedgerServiceClient(http.DefaultClient, server.URL)
}

func withToken[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthFlow(t *testing.T) {
	authClient, ledgerClient := setupAuthTestServer(t)
	ctx := context.Background()

	reg, err := authClient.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email:       "Alice@Example.com",
		DisplayName: "Alice",
		Password:    "correct horse",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if reg.Msg.Token == "" || reg.Msg.User.Email != "alice@example.com" {
		t.Fatalf("Register response = %+v", reg.Msg)
	}

	t.Run("register errors", func(t *testing.T) {
		tests := []struct {
			name string
			req  *api.RegisterRequest
			code connect.Code
		}{
			{"duplicate", &api.RegisterRequest{Email: "alice@example.com", Password: "another one"}, connect.CodeAlreadyExists},
			{"weak password", &api.RegisterRequest{Email: "bob@example.com", Password: "short"}, connect.CodeInvalidArgument},
			{"missing email", &api.RegisterRequest{Password: "long enough"}, connect.CodeInvalidArgument},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := authClient.Register(ctx, connect.NewRequest(tt.req))
				wantCode(t, err, tt.code)
			})
		}
	})

	t.Run("login", func(t *testing.T) {
		login, err := authClient.Login(ctx, connect.NewRequest(&api.LoginRequest{
			Email:    "alice@example.com",
			Password: "correct horse",
		}))
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if login.Msg.User.ID != reg.Msg.User.ID {
			t.Errorf("Login user = %s, want %s", login.Msg.User.ID, reg.Msg.User.ID)
		}

		_, err = authClient.Login(ctx, connect.NewRequest(&api.LoginRequest{Email: "alice@example.com", Password: "wrong password"}))
		wantCode(t, err, connect.CodeUnauthenticated)
		_, err = authClient.Login(ctx, connect.NewRequest(&api.LoginRequest{Email: "ghost@example.com", Password: "whatever!"}))
		wantCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("current user", func(t *testing.T) {
		me, err := authClient.GetCurrentUser(ctx, withToken(reg.Msg.Token, &api.GetCurrentUserRequest{}))
		if err != nil {
			t.Fatalf("GetCurrentUser failed: %v", err)
		}
		if me.Msg.User.DisplayName != "Alice" || me.Msg.User.CreatedAt == 0 {
			t.Errorf("user = %+v", me.Msg.User)
		}

		_, err = authClient.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
		wantCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("token scopes the ledger", func(t *testing.T) {
		_, err := ledgerClient.GetNote(ctx, connect.NewRequest(&api.GetNoteRequest{}))
		wantCode(t, err, connect.CodeUnauthenticated)

		_, err = ledgerClient.GetNote(ctx, withToken("garbage", &api.GetNoteRequest{}))
		wantCode(t, err, connect.CodeUnauthenticated)

		if _, err := ledgerClient.SaveNote(ctx, withToken(reg.Msg.Token, &api.SaveNoteRequest{Content: "hi"})); err != nil {
			t.Fatalf("SaveNote failed: %v", err)
		}
		note, err := ledgerClient.GetNote(ctx, withToken(reg.Msg.Token, &api.GetNoteRequest{}))
		if err != nil {
			t.Fatalf("GetNote failed: %v", err)
		}
		if note.Msg.Content != "hi" {
			t.Errorf("Content = %q, want hi", note.Msg.Content)
		}
	})

	t.Run("logout", func(t *testing.T) {
		if _, err := authClient.Logout(ctx, withToken(reg.Msg.Token, &api.LogoutRequest{})); err != nil {
			t.Errorf("Logout failed: %v", err)
		}
	})
}
