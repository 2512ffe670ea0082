package user

import (
	"context"
	"errors"

	"floreria-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, username, password string) (string, User, error)
	GetByID(ctx context.Context, id int) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, username, password string) (string, User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
		zap.String("username", username),
	)

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("login failed: unknown username")
			return "", User{}, ErrInvalidCredentials
		}
		log.Error("failed to look up user", zap.Error(err))
		return "", User{}, err
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Warn("login failed: password mismatch")
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u)
	if err != nil {
		log.Error("failed to generate jwt", zap.Error(err))
		return "", User{}, err
	}

	log.Info("login success", zap.Int("user_id", u.ID))
	return token, u, nil
}

func (s *service) GetByID(ctx context.Context, id int) (User, error) {
	return s.repo.GetByID(ctx, id)
}
