package db

import (
	"context"

	"github.com/shandysiswandi/otpvault/internal/pkg/goerror"
	"github.com/shandysiswandi/otpvault/internal/vault/entity"
)

// CreateSecret inserts a secret, returning goerror.ErrConflict when the name
// is already taken. The single statement keeps concurrent adds for one name
// resolving to exactly one winner.
func (s *DB) CreateSecret(ctx context.Context, in entity.Secret) (err error) {
	ctx, span := s.startSpan(ctx, "CreateSecret")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx,
		`INSERT INTO otp_secrets (name, secret_key) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
		in.Name, in.SecretKey,
	)
	if err != nil {
		err = s.mapError(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrConflict
		return err
	}
	return nil
}

// GetSecret fetches a secret by normalized name.
func (s *DB) GetSecret(ctx context.Context, name string) (res *entity.Secret, err error) {
	ctx, span := s.startSpan(ctx, "GetSecret")
	defer func() { s.endSpan(span, err) }()

	var secret entity.Secret
	err = s.conn.QueryRow(ctx,
		`SELECT name, secret_key FROM otp_secrets WHERE name = $1`,
		name,
	).Scan(&secret.Name, &secret.SecretKey)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &secret, nil
}

// DeleteSecret removes a secret by name, returning goerror.ErrNotFound when
// nothing was deleted.
func (s *DB) DeleteSecret(ctx context.Context, name string) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteSecret")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM otp_secrets WHERE name = $1`, name)
	if err != nil {
		err = s.mapError(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}
	return nil
}

// ListSecretNames returns all stored service names sorted ascending.
func (s *DB) ListSecretNames(ctx context.Context) (names []string, err error) {
	ctx, span := s.startSpan(ctx, "ListSecretNames")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `SELECT name FROM otp_secrets ORDER BY name`)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
