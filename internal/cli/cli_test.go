package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeready/portal/internal/core/domain"
	"github.com/tradeready/portal/internal/core/service"
	"github.com/tradeready/portal/internal/pkg/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		ActivityWorkers: 1,
		Store:           config.StoreConfig{Driver: config.DriverMemory},
		Session:         config.SessionConfig{Driver: config.DriverMemory},
		Token:           config.TokenConfig{Format: config.TokenOpaque},
		Password:        config.PasswordConfig{Hashing: config.HashPlain},
	}
}

func TestQuestionsCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"questions"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Count(out.String(), "[Yes / No / ")
	if lines != domain.QuestionCount {
		t.Fatalf("expected %d questions, got %d:\n%s", domain.QuestionCount, lines, out.String())
	}
	if !strings.Contains(out.String(), "passing score: 70%") {
		t.Fatalf("missing passing score:\n%s", out.String())
	}
}

func TestQuestionsCommand_JSON(t *testing.T) {
	var out bytes.Buffer
	if err := printQuestions(&out, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var qs []domain.Question
	if err := json.Unmarshal(out.Bytes(), &qs); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(qs) != domain.QuestionCount || qs[0].ID != 1 {
		t.Fatalf("unexpected catalog %+v", qs)
	}
}

func TestBuild_MemoryBackends(t *testing.T) {
	ctx := context.Background()
	a, err := build(ctx, memoryConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close(ctx)

	if len(a.health) != 0 {
		t.Fatalf("memory backends should have no readiness checks, got %v", a.health)
	}

	var out bytes.Buffer
	in := domain.RegisterInput{Email: "Seed@Example.com", Password: "seedpassword", Name: "Seed"}
	if err := createUser(ctx, a, in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "seed@example.com") {
		t.Fatalf("unexpected output %q", out.String())
	}

	if err := createUser(ctx, a, in, &out); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	if _, _, err := a.portal.Login(ctx, "device-1", "seed@example.com", "seedpassword"); err != nil {
		t.Fatalf("seeded user should log in: %v", err)
	}
}

func TestBuild_SeedsDefaultAccount(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig()
	cfg.SeedDefaultUser = true
	a, err := build(ctx, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close(ctx)

	if _, _, err := a.portal.Login(ctx, "device-1", domain.DefaultAccount.Email, domain.DefaultAccount.Password); err != nil {
		t.Fatalf("default account should log in: %v", err)
	}
}

func TestCredentials(t *testing.T) {
	cfg := memoryConfig()
	codec, hasher := credentials(cfg)
	if _, ok := codec.(service.OpaqueTokenCodec); !ok {
		t.Fatalf("expected opaque codec, got %T", codec)
	}
	if _, ok := hasher.(service.PlainHasher); !ok {
		t.Fatalf("expected plain hasher, got %T", hasher)
	}

	cfg.Token = config.TokenConfig{Format: config.TokenJWT, Secret: "s3cret"}
	cfg.Password = config.PasswordConfig{Hashing: config.HashBcrypt, BcryptCost: 4}
	codec, hasher = credentials(cfg)
	if _, ok := codec.(*service.JWTTokenCodec); !ok {
		t.Fatalf("expected jwt codec, got %T", codec)
	}
	if h, ok := hasher.(service.BcryptHasher); !ok || h.Cost != 4 {
		t.Fatalf("expected bcrypt hasher with cost 4, got %#v", hasher)
	}
}

func TestRunServe_ReportsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	_, port, _ := net.SplitHostPort(ln.Addr().String())

	t.Setenv("STORE_DRIVER", config.DriverMemory)
	t.Setenv("SESSION_DRIVER", config.DriverMemory)
	t.Setenv("PASSWORD_HASHING", config.HashPlain)
	t.Setenv("SEED_DEFAULT_USER", "false")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = runServe(ctx, port)
	if err == nil {
		t.Fatalf("expected the bind failure to be returned")
	}
	if ctx.Err() != nil {
		t.Fatalf("runServe only returned after the timeout: %v", err)
	}
	if !strings.Contains(err.Error(), ":"+port) {
		t.Fatalf("error should name the address: %v", err)
	}
}
