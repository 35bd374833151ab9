package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/ports"
)

const mysqlDuplicateEntry = 1062

const (
	insertUserQuery = `
INSERT INTO users (username, password_hash, created_at)
VALUES (?, ?, ?);
`

	findUserByUsernameQuery = `
SELECT id, username, password_hash, created_at
FROM users
WHERE username = ?;
`

	findUserByIDQuery = `
SELECT id, username, password_hash, created_at
FROM users
WHERE id = ?;
`

	deleteUserQuery = `
DELETE FROM users
WHERE id = ?;
`
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uint64    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	result, err := r.db.ExecContext(ctx, insertUserQuery, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		// The unique index on username is the source of truth; a concurrent
		// registration surfaces here as a duplicate-entry error.
		var mysqlErr *gomysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.ErrUsernameTaken
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

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByUsernameQuery, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}
