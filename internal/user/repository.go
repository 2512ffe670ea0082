package user

import (
	"context"
	"database/sql"
	"errors"

	"floreria-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	FindByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id int) (User, error)
	Create(ctx context.Context, username, email, passwordHash string, superuser bool) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `
	u.id, u.username, u.email, u.password, u.is_superuser,
	COALESCE(array_agg(g.name ORDER BY g.name) FILTER (WHERE g.name IS NOT NULL), '{}')
`

func (r *repository) FindByUsername(ctx context.Context, username string) (User, error) {
	return r.findOne(ctx, "u.username = $1", username)
}

func (r *repository) GetByID(ctx context.Context, id int) (User, error) {
	return r.findOne(ctx, "u.id = $1", id)
}

func (r *repository) findOne(ctx context.Context, where string, arg any) (User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN user_groups ug ON ug.user_id = u.id
		LEFT JOIN groups g ON g.id = ug.group_id
		WHERE ` + where + `
		GROUP BY u.id
	`

	var u User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.IsSuperuser, pq.Array(&u.Groups))

	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to query user", zap.Error(err))
		return User{}, err
	}

	return u, nil
}

func (r *repository) Create(ctx context.Context, username, email, passwordHash string, superuser bool) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password, is_superuser)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password, is_superuser
	`, username, email, passwordHash, superuser).
		Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.IsSuperuser)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("username", username),
			zap.Error(err),
		)
	}

	return u, err
}
