package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/envialo/shipping-portal/internal/core/domain"
	"github.com/envialo/shipping-portal/internal/core/ports"
)

func TestLogin_ReturnsIssuedToken(t *testing.T) {
	var gotBody loginRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != loginPath {
			t.Errorf("path = %q, want %q", r.URL.Path, loginPath)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(tokenResponse{Token: "jwt-abc"})
	}))
	defer srv.Close()

	gw := NewAuthGateway(newTestClient(srv))
	token, err := gw.Login(context.Background(), "laura@example.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "jwt-abc" {
		t.Errorf("token = %q, want jwt-abc", token)
	}
	if gotBody.Email != "laura@example.com" || gotBody.Password != "secret123" {
		t.Errorf("credentials not forwarded: %+v", gotBody)
	}
}

func TestLogin_UnauthorizedMeansBadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	gw := NewAuthGateway(newTestClient(srv))
	_, err := gw.Login(context.Background(), "laura@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials (not session expiry)", err)
	}
}

func TestLogin_EmptyTokenIsInvalidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":""}`))
	}))
	defer srv.Close()

	gw := NewAuthGateway(newTestClient(srv))
	_, err := gw.Login(context.Background(), "laura@example.com", "secret123")
	if !errors.Is(err, domain.ErrInvalidPayload) {
		t.Errorf("error = %v, want ErrInvalidPayload", err)
	}
}

func TestRegister_ForwardsAllFields(t *testing.T) {
	var gotBody registerRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != registerPath {
			t.Errorf("path = %q, want %q", r.URL.Path, registerPath)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	gw := NewAuthGateway(newTestClient(srv))
	err := gw.Register(context.Background(), ports.RegisterInput{
		FirstName: "Laura", LastName: "Gómez",
		Email: "laura@example.com", Password: "secret123", Address: "Calle 45",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody.FirstName != "Laura" || gotBody.LastName != "Gómez" || gotBody.Address != "Calle 45" {
		t.Errorf("register body not forwarded: %+v", gotBody)
	}
}

func TestRegister_ConflictCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"el correo ya está registrado"}`))
	}))
	defer srv.Close()

	gw := NewAuthGateway(newTestClient(srv))
	err := gw.Register(context.Background(), ports.RegisterInput{Email: "laura@example.com"})

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("error = %v, want *domain.UpstreamError", err)
	}
	if ue.Status != http.StatusConflict || ue.Message != "el correo ya está registrado" {
		t.Errorf("got status=%d msg=%q", ue.Status, ue.Message)
	}
}
