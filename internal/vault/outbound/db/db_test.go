package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/otpvault/internal/pkg/goerror"
	"github.com/shandysiswandi/otpvault/internal/pkg/instrument"
	"github.com/shandysiswandi/otpvault/internal/vault/entity"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("otpvault"),
		postgres.WithUsername("otpvault"),
		postgres.WithPassword("otpvault"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("connect pool: %v", err)
	}
	t.Cleanup(pool.Close)

	store := NewDB(pool, instrument.NewNoop())
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	return store
}

func TestSecretLifecycle(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	in := entity.Secret{Name: "github", SecretKey: "JBSWY3DPEHPK3PXP"}
	if err := store.CreateSecret(ctx, in); err != nil {
		t.Fatalf("CreateSecret: %v", err)
	}

	// Duplicate insert resolves to a conflict, not an overwrite.
	err := store.CreateSecret(ctx, entity.Secret{Name: "github", SecretKey: "OTHER234"})
	if !errors.Is(err, goerror.ErrConflict) {
		t.Fatalf("CreateSecret(duplicate) error = %v, want %v", err, goerror.ErrConflict)
	}

	got, err := store.GetSecret(ctx, "github")
	if err != nil {
		t.Fatalf("GetSecret: %v", err)
	}
	if got.SecretKey != in.SecretKey {
		t.Errorf("SecretKey = %q, want %q (original kept on conflict)", got.SecretKey, in.SecretKey)
	}

	if err := store.DeleteSecret(ctx, "github"); err != nil {
		t.Fatalf("DeleteSecret: %v", err)
	}
	if err := store.DeleteSecret(ctx, "github"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("DeleteSecret(absent) error = %v, want %v", err, goerror.ErrNotFound)
	}
	if _, err := store.GetSecret(ctx, "github"); !errors.Is(err, goerror.ErrNotFound) {
		t.Fatalf("GetSecret(absent) error = %v, want %v", err, goerror.ErrNotFound)
	}
}

func TestListSecretNamesSorted(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	names, err := store.ListSecretNames(ctx)
	if err != nil {
		t.Fatalf("ListSecretNames(empty): %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("len(names) = %d, want 0", len(names))
	}

	for _, name := range []string{"github", "aws", "mail"} {
		if err := store.CreateSecret(ctx, entity.Secret{Name: name, SecretKey: "JBSWY3DPEHPK3PXP"}); err != nil {
			t.Fatalf("CreateSecret(%q): %v", name, err)
		}
	}

	names, err = store.ListSecretNames(ctx)
	if err != nil {
		t.Fatalf("ListSecretNames: %v", err)
	}

	want := []string{"aws", "github", "mail"}
	if len(names) != len(want) {
		t.Fatalf("len(names) = %d, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
