package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"floreria-be/internal/category"
	"floreria-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetProducts(ctx context.Context, search *string) ([]*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, p CreateParams) (*Product, error)
	Update(ctx context.Context, id string, p UpdateParams) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	p.id, p.sku, p.name, p.category_id, p.price, p.stock, p.image, p.barcode,
	c.id, c.name
`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	var c category.Category
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.CategoryID, &p.Price, &p.Stock,
		&p.Image, &p.Barcode,
		&c.ID, &c.Name,
	)
	if err != nil {
		return nil, err
	}
	p.Category = &c
	return &p, nil
}

func (r *repository) GetProducts(ctx context.Context, search *string) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "GetProducts"),
	)

	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
	`

	where := []string{}
	args := []interface{}{}

	if search != nil && *search != "" {
		n := len(args) + 1
		where = append(where, fmt.Sprintf(
			"(p.name ILIKE $%d OR p.sku ILIKE $%d OR p.barcode ILIKE $%d)", n, n, n))
		args = append(args, "%"+*search+"%")
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY p.name ASC"

	log.Debug("Executing GetProducts query",
		zap.String("query", query),
		zap.Any("args", args),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed GetProducts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, err
	}

	return products, nil
}

func (r *repository) GetProduct(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`, id)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product failed: %w", err)
	}

	return p, nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).
		Scan(&exists)
	return exists, err
}

func (r *repository) Create(ctx context.Context, p CreateParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "Create"),
		zap.String("product_id", p.ID),
		zap.String("sku", p.SKU),
	)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, sku, name, category_id, price, stock, image, barcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.SKU, p.Name, p.CategoryID, p.Price, p.Stock, p.Image, p.Barcode)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				log.Warn("Create product duplicate sku or id")
				return nil, ErrDuplicateSKU
			case "23503":
				return nil, ErrUnknownCategory
			}
		}
		log.Error("Create product DB query failed", zap.Error(err))
		return nil, fmt.Errorf("create product failed: %w", err)
	}

	log.Info("Create product success")
	return r.GetProduct(ctx, p.ID)
}

func (r *repository) Update(ctx context.Context, id string, p UpdateParams) (*Product, error) {
	set := []string{}
	args := []interface{}{}

	add := func(col string, val interface{}) {
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)+1))
		args = append(args, val)
	}

	if p.SKU != nil {
		add("sku", *p.SKU)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.CategoryID != nil {
		add("category_id", *p.CategoryID)
	}
	if p.Price != nil {
		add("price", *p.Price)
	}
	if p.Stock != nil {
		add("stock", *p.Stock)
	}
	if p.Image != nil {
		add("image", *p.Image)
	}
	if p.Barcode != nil {
		add("barcode", *p.Barcode)
	}

	if len(set) == 0 {
		return r.GetProduct(ctx, id)
	}

	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d",
		strings.Join(set, ", "), len(args)+1,
	)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return nil, ErrDuplicateSKU
			case "23503":
				return nil, ErrUnknownCategory
			}
		}
		return nil, fmt.Errorf("update product failed: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetProduct(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "Delete"),
		zap.String("product_id", id),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		// order_items.product_id is ON DELETE RESTRICT: history stays intact
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			log.Warn("Delete product blocked by order history")
			return ErrHasSales
		}
		log.Error("Delete product DB query failed", zap.Error(err))
		return fmt.Errorf("delete product failed: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}

	log.Info("Delete product success")
	return nil
}
