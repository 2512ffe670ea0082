package product

import (
	"context"
	"errors"
	"strings"

	"floreria-be/internal/category"
	"floreria-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for products.
type Service interface {
	GetProducts(ctx context.Context, search *string) ([]*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, p CreateParams) (*Product, error)
	UpdateProduct(ctx context.Context, id string, p UpdateParams) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type service struct {
	repo         Repository
	categoryRepo category.Repository
}

func NewService(repo Repository, categoryRepo category.Repository) Service {
	return &service{repo: repo, categoryRepo: categoryRepo}
}

func (s *service) GetProducts(ctx context.Context, search *string) ([]*Product, error) {
	return s.repo.GetProducts(ctx, search)
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, p CreateParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
		zap.String("sku", p.SKU),
	)

	if strings.TrimSpace(p.SKU) == "" {
		log.Warn("CreateProduct validation failed: blank sku")
		return nil, ErrSKURequired
	}
	if p.Price < 0 {
		return nil, ErrPriceNegative
	}
	if p.Stock < 0 {
		return nil, ErrStockNegative
	}

	if _, err := s.categoryRepo.GetCategory(ctx, p.CategoryID); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			log.Warn("CreateProduct validation failed: unknown category",
				zap.Int("category_id", p.CategoryID))
			return nil, ErrUnknownCategory
		}
		return nil, err
	}

	if p.ID == "" {
		id, err := s.generateID(ctx)
		if err != nil {
			log.Error("failed to generate product id", zap.Error(err))
			return nil, err
		}
		p.ID = id
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("CreateProduct success", zap.String("product_id", created.ID))
	return created, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, p UpdateParams) (*Product, error) {
	if p.SKU != nil && strings.TrimSpace(*p.SKU) == "" {
		return nil, ErrSKURequired
	}
	if p.Price != nil && *p.Price < 0 {
		return nil, ErrPriceNegative
	}
	if p.Stock != nil && *p.Stock < 0 {
		return nil, ErrStockNegative
	}

	if p.CategoryID != nil {
		if _, err := s.categoryRepo.GetCategory(ctx, *p.CategoryID); err != nil {
			if errors.Is(err, category.ErrNotFound) {
				return nil, ErrUnknownCategory
			}
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, p)
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

const (
	shortIDLen   = 12
	idMaxRetries = 5
)

// generateID picks a short random hex token, falling back to a full 32-hex
// uuid when the short space keeps colliding.
func (s *service) generateID(ctx context.Context) (string, error) {
	for i := 0; i < idMaxRetries; i++ {
		id := randomHex()[:shortIDLen]
		taken, err := s.repo.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return randomHex(), nil
}

func randomHex() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
