package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/smsportal/console-gateway/internal/core/domain"
	"github.com/smsportal/console-gateway/internal/core/ports"
)

type stubAuthorizationService struct {
	authorizeFn func(ctx context.Context, in ports.AuthorizeInput) (*ports.AuthorizationResult, error)
}

func (s *stubAuthorizationService) Authorize(ctx context.Context, in ports.AuthorizeInput) (*ports.AuthorizationResult, error) {
	return s.authorizeFn(ctx, in)
}

func TestAuthorizationHandler_Check(t *testing.T) {
	stub := &stubAuthorizationService{
		authorizeFn: func(_ context.Context, in ports.AuthorizeInput) (*ports.AuthorizationResult, error) {
			if in.SessionID != "sid" || in.Route != "/admin/clients" {
				t.Fatalf("unexpected input %+v", in)
			}
			return &ports.AuthorizationResult{State: domain.StateUnauthorized}, nil
		},
	}
	c, rec := newContext(newEcho(), http.MethodGet, "/v1/authorization?route=/admin/clients", nil, "sid")

	if err := NewAuthorizationHandler(stub).Check(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeJSON(t, rec)
	if resp["route"] != "/admin/clients" || resp["state"] != "unauthorized" {
		t.Fatalf("unexpected body %v", resp)
	}
}

func TestAuthorizationHandler_Validation(t *testing.T) {
	stub := &stubAuthorizationService{
		authorizeFn: func(context.Context, ports.AuthorizeInput) (*ports.AuthorizationResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	for _, target := range []string{"/v1/authorization", "/v1/authorization?route=admin"} {
		c, _ := newContext(newEcho(), http.MethodGet, target, nil, "sid")
		if code := httpStatus(t, NewAuthorizationHandler(stub).Check(c)); code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %d", target, code)
		}
	}
}

func TestAuthorizationHandler_ServiceError(t *testing.T) {
	boom := errors.New("store down")
	stub := &stubAuthorizationService{
		authorizeFn: func(context.Context, ports.AuthorizeInput) (*ports.AuthorizationResult, error) {
			return nil, boom
		},
	}
	c, _ := newContext(newEcho(), http.MethodGet, "/v1/authorization?route=/admin", nil, "sid")
	if err := NewAuthorizationHandler(stub).Check(c); !errors.Is(err, boom) {
		t.Fatalf("expected service error, got %v", err)
	}
}
