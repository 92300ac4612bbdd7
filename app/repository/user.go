package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/vibast-solutions/ms-go-accounts/app/entity"
)

const mysqlErrDuplicateEntry = 1062

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return ErrDuplicateEmail
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = uint64(id)
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, reset_token, reset_token_expires_at, created_at, updated_at
		FROM users WHERE email = ?
	`
	user := &entity.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.ResetToken,
		&user.ResetTokenExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByValidResetToken returns the user holding an unexpired token; expiry
// is filtered in SQL.
func (r *UserRepository) FindByValidResetToken(ctx context.Context, token string, now time.Time) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, reset_token, reset_token_expires_at, created_at, updated_at
		FROM users WHERE reset_token = ? AND reset_token_expires_at > ?
	`
	user := &entity.User{}
	err := r.db.QueryRowContext(ctx, query, token, now).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.ResetToken,
		&user.ResetTokenExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SetResetToken overwrites both reset fields in one statement, invalidating
// any previously issued token. It returns the number of rows affected.
func (r *UserRepository) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) (int64, error) {
	query := `
		UPDATE users SET
			reset_token = ?,
			reset_token_expires_at = ?,
			updated_at = ?
		WHERE email = ?
	`
	result, err := r.db.ExecContext(ctx, query, token, expiresAt, time.Now(), email)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ConsumePasswordReset installs the new password hash and clears both reset
// fields in one conditional UPDATE. Zero rows affected means the token was
// unknown, expired, or already consumed by a concurrent caller.
func (r *UserRepository) ConsumePasswordReset(ctx context.Context, token, newHash string, now time.Time) (int64, error) {
	query := `
		UPDATE users SET
			password_hash = ?,
			reset_token = NULL,
			reset_token_expires_at = NULL,
			updated_at = ?
		WHERE reset_token = ? AND reset_token_expires_at > ?
	`
	result, err := r.db.ExecContext(ctx, query, newHash, time.Now(), token, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
