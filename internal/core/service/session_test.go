package service

import (
	"context"
	"testing"
	"time"
)

func TestSession_Lifecycle(t *testing.T) {
	tokens := newStubTokenStore()
	portal := newPortal(newStubUserStore(), tokens, nil)
	ctx := context.Background()
	_, _ = portal.Register(ctx, registerInput("hana@example.com", "pass1234"))

	s := NewSession(portal, device, "")
	if s.State() != SessionUninitialized {
		t.Fatalf("expected uninitialized, got %s", s.State())
	}

	if err := s.Resolve(ctx); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.State() != SessionAnonymous || s.Current() != nil {
		t.Fatalf("expected anonymous, got %s", s.State())
	}

	if _, _, err := s.SignIn(ctx, "hana@example.com", "pass1234"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if !s.Authenticated() || s.Current().Email != "hana@example.com" {
		t.Fatalf("expected authenticated session")
	}

	// A fresh session on the same device picks up the persisted token.
	again := NewSession(portal, device, "")
	_ = again.Resolve(ctx)
	if !again.Authenticated() {
		t.Fatalf("expected device token to authenticate a new session")
	}

	if err := s.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if s.State() != SessionAnonymous {
		t.Fatalf("expected anonymous after sign out")
	}
}

func TestSession_BearerToken(t *testing.T) {
	portal := newPortal(newStubUserStore(), newStubTokenStore(), nil)
	ctx := context.Background()
	_, _ = portal.Register(ctx, registerInput("ivy@example.com", "pass1234"))
	token, _, _ := portal.Login(ctx, "other-device", "ivy@example.com", "pass1234")

	s := NewSession(portal, "fresh-device", token)
	if err := s.Resolve(ctx); err != nil || !s.Authenticated() {
		t.Fatalf("expected bearer token to authenticate, state %s (%v)", s.State(), err)
	}

	bad := NewSession(portal, "fresh-device", "garbage")
	if err := bad.Resolve(ctx); err != nil || bad.Authenticated() {
		t.Fatalf("expected garbage bearer to resolve anonymous, state %s (%v)", bad.State(), err)
	}
}

func TestSession_ResolveError(t *testing.T) {
	users := newStubUserStore()
	tokens := newStubTokenStore()
	portal := newPortal(users, tokens, nil)
	tokens.tokens[device], _ = OpaqueTokenCodec{}.Encode("x@example.com", time.Unix(0, 0))
	users.findErr = errBoom

	s := NewSession(portal, device, "")
	if err := s.Resolve(context.Background()); err == nil {
		t.Fatalf("expected store error")
	}
	if s.State() != SessionAnonymous {
		t.Fatalf("failed resolve must settle anonymous, got %s", s.State())
	}
}
