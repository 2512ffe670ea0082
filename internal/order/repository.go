package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"floreria-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, order *Order, items []ItemInput) error
	GetOrders(ctx context.Context) ([]*Order, error)
	GetOrderDetail(ctx context.Context, orderID int) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// codePrefix is the human-readable order code prefix, followed by the
// creation date and the order id zero-padded to four digits.
const codePrefix = "PDLF"

func orderCode(id int, createdAt time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", codePrefix, createdAt.Format("20060102"), id)
}

// CreateOrderTx runs the whole checkout as one transaction: create the order
// row, then per item lock the product row, check stock, decrement it and
// snapshot the product into an order item. Any failure rolls everything back,
// stock decrements included.
func (r *repository) CreateOrderTx(ctx context.Context, order *Order, items []ItemInput) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.Int("item_count", len(items)),
	)

	log.Debug("starting checkout transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	order.Status = StatusPaid
	order.CreatedAt = time.Now()

	// Order row first, so the id exists for the items and the code.
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			created_at, full_name, email, phone,
			delivery_mode, address, notes, payment_method,
			total, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,0,$9)
		RETURNING id
	`,
		order.CreatedAt,
		order.FullName,
		order.Email,
		order.Phone,
		order.DeliveryMode,
		order.Address,
		order.Notes,
		order.PaymentMethod,
		order.Status,
	).Scan(&order.ID)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	total := 0
	order.Items = make([]OrderItem, 0, len(items))

	for i, it := range items {
		logItem := log.With(
			zap.Int("index", i),
			zap.String("product_id", it.ProductID),
			zap.Int("quantity", it.Quantity),
		)

		// Exclusive row lock: concurrent checkouts against the same product
		// serialize here, held until commit or rollback.
		var (
			name  string
			sku   string
			price int
			stock int
		)
		err := tx.QueryRowContext(ctx, `
			SELECT name, sku, price, stock
			FROM products
			WHERE id = $1
			FOR UPDATE
		`, it.ProductID).Scan(&name, &sku, &price, &stock)

		if errors.Is(err, sql.ErrNoRows) {
			logItem.Warn("product not found")
			return NewValidationError("items",
				fmt.Sprintf("Producto '%s' no existe.", it.ProductID))
		}
		if err != nil {
			logItem.Error("failed to lock product row", zap.Error(err))
			return err
		}

		if stock < it.Quantity {
			logItem.Warn("insufficient stock", zap.Int("available", stock))
			return NewValidationError("items",
				fmt.Sprintf("Stock insuficiente para %s. Disponible: %d.", name, stock))
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1
			WHERE id = $2
		`, it.Quantity, it.ProductID)
		if err != nil {
			logItem.Error("failed to decrement stock", zap.Error(err))
			return err
		}

		item := OrderItem{
			OrderID:     order.ID,
			ProductID:   &it.ProductID,
			ProductName: name,
			ProductSKU:  sku,
			Quantity:    it.Quantity,
			Price:       price,
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (
				order_id, product_id, product_name, product_sku,
				quantity, price
			) VALUES ($1,$2,$3,$4,$5,$6)
			RETURNING id
		`,
			item.OrderID,
			item.ProductID,
			item.ProductName,
			item.ProductSKU,
			item.Quantity,
			item.Price,
		).Scan(&item.ID)
		if err != nil {
			logItem.Error("failed to insert order item", zap.Error(err))
			return err
		}

		total += item.LineTotal()
		order.Items = append(order.Items, item)
	}

	order.Total = total
	order.Code = orderCode(order.ID, order.CreatedAt)

	_, err = tx.ExecContext(ctx, `
		UPDATE orders
		SET total = $1, code = $2
		WHERE id = $3
	`, order.Total, order.Code, order.ID)
	if err != nil {
		log.Error("failed to finalize order", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit checkout transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("checkout transaction committed",
		zap.Int("order_id", order.ID),
		zap.String("code", order.Code),
		zap.Int("total", order.Total),
	)

	return nil
}

const orderColumns = `
	o.id, o.code, o.created_at, o.full_name, o.email, o.phone,
	o.delivery_mode, o.address, o.notes, o.payment_method, o.total, o.status
`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.Code, &o.CreatedAt, &o.FullName, &o.Email, &o.Phone,
		&o.DeliveryMode, &o.Address, &o.Notes, &o.PaymentMethod, &o.Total, &o.Status,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrders returns all orders newest first, items attached.
func (r *repository) GetOrders(ctx context.Context) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "GetOrders"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		ORDER BY o.created_at DESC
	`)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	ids := []int64{}

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, int64(o.ID))
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := r.fetchItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Items = itemsByOrder[o.ID]
	}

	log.Info("get orders success", zap.Int("count", len(orders)))
	return orders, nil
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID int) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.id = $1
	`, orderID)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order failed: %w", err)
	}

	itemsByOrder, err := r.fetchItems(ctx, []int64{int64(o.ID)})
	if err != nil {
		return nil, err
	}
	o.Items = itemsByOrder[o.ID]

	return o, nil
}

// fetchItems loads items for a set of orders in one query. Name and sku come
// from the live product when it still exists, falling back to the snapshot.
func (r *repository) fetchItems(ctx context.Context, orderIDs []int64) (map[int][]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			oi.id, oi.order_id, oi.product_id,
			COALESCE(p.name, oi.product_name, ''),
			COALESCE(p.sku, oi.product_sku, ''),
			oi.quantity, oi.price
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, fmt.Errorf("query order items failed: %w", err)
	}
	defer rows.Close()

	out := map[int][]OrderItem{}
	for rows.Next() {
		var item OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID,
			&item.ProductName, &item.ProductSKU,
			&item.Quantity, &item.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order item failed: %w", err)
		}
		out[item.OrderID] = append(out[item.OrderID], item)
	}

	return out, rows.Err()
}
