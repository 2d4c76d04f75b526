package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/solenik/userhub/internal/domain/errors"
	"github.com/solenik/userhub/internal/domain/model"
	"github.com/solenik/userhub/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool the storage relies on; pgxmock
// satisfies it in tests.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage is the user repository backed by PostgreSQL. Uniqueness of
// username and email is enforced by unique indexes; violations are
// reported as domain ErrAlreadyExists.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping verifies database connectivity.
func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            username TEXT NOT NULL,
            email TEXT NOT NULL,
            full_name TEXT NOT NULL,
            phone TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            last_login TIMESTAMPTZ
        )`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(lower(email))`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const userColumns = `id, username, email, full_name, phone, password_hash, created_at, last_login`

// Create inserts a new user with a store-assigned opaque identifier.
func (s *Storage) Create(ctx context.Context, user repository.NewUser) (*model.User, error) {
	const query = `INSERT INTO users (id, username, email, full_name, phone, password_hash)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
	u := model.User{
		ID:           uuid.NewString(),
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
	}
	err := s.pool.QueryRow(ctx, query, u.ID, u.Username, u.Email, u.FullName, u.Phone, u.PasswordHash).Scan(&u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

// GetByIdentifier fetches a user by username or email.
func (s *Storage) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username=$1 OR lower(email)=lower($1)`
	return s.scanUser(s.pool.QueryRow(ctx, query, identifier))
}

// GetByID fetches a user by its opaque identifier.
func (s *Storage) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return s.scanUser(s.pool.QueryRow(ctx, query, id))
}

// Update applies a partial profile patch and returns the updated record.
func (s *Storage) Update(ctx context.Context, id string, patch repository.UserPatch) (*model.User, error) {
	query := `UPDATE users
              SET full_name = COALESCE($2, full_name),
                  phone = COALESCE($3, phone),
                  email = COALESCE($4, email)
              WHERE id=$1 RETURNING ` + userColumns
	user, err := s.scanUser(s.pool.QueryRow(ctx, query, id, patch.FullName, patch.Phone, patch.Email))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// TouchLastLogin records a successful login timestamp.
func (s *Storage) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	const query = `UPDATE users SET last_login=$2 WHERE id=$1`
	tag, err := s.pool.Exec(ctx, query, id, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// List returns all users in registration order.
func (s *Storage) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Phone, &u.PasswordHash, &u.CreatedAt, &u.LastLogin); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Storage) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Phone, &u.PasswordHash, &u.CreatedAt, &u.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

var _ repository.UserRepository = (*Storage)(nil)
