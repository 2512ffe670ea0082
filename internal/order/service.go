package order

import (
	"context"
	"strings"

	"floreria-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetOrders(ctx context.Context) ([]*Order, error)
	GetOrderDetail(ctx context.Context, orderID int) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Int("item_count", len(input.Items)),
	)

	log.Info("create order started")

	if err := validateInput(input); err != nil {
		log.Warn("create order validation failed", zap.Error(err))
		return nil, err
	}

	order := &Order{
		FullName:      strings.TrimSpace(input.Customer.FullName),
		Email:         input.Customer.Email,
		Phone:         strings.TrimSpace(input.Customer.Phone),
		DeliveryMode:  input.Delivery.Mode,
		Address:       input.Delivery.Address,
		Notes:         input.Delivery.Notes,
		PaymentMethod: input.PaymentMethod,
	}

	if err := s.repo.CreateOrderTx(ctx, order, input.Items); err != nil {
		log.Error("checkout transaction failed", zap.Error(err))
		return nil, err
	}

	log.Info("create order success",
		zap.Int("order_id", order.ID),
		zap.String("code", order.Code),
		zap.Int("total", order.Total),
	)

	return order, nil
}

func validateInput(input CreateOrderInput) error {
	verr := &ValidationError{}

	if strings.TrimSpace(input.Customer.FullName) == "" {
		verr.Add("customer", "Nombre completo requerido.")
	}
	if strings.TrimSpace(input.Customer.Phone) == "" {
		verr.Add("customer", "Teléfono requerido.")
	}

	if !ValidDeliveryMode(input.Delivery.Mode) {
		verr.Add("delivery", "Modo de entrega inválido.")
	} else if input.Delivery.Mode == DeliveryShipping {
		if input.Delivery.Address == nil || strings.TrimSpace(*input.Delivery.Address) == "" {
			verr.Add("delivery", "Dirección requerida para envío.")
		}
	}

	if !ValidPaymentMethod(input.PaymentMethod) {
		verr.Add("payment_method", "Método de pago inválido.")
	}

	if len(input.Items) == 0 {
		verr.Add("items", "Debe incluir al menos un producto.")
	}
	for _, it := range input.Items {
		if it.Quantity < 1 {
			verr.Add("items", "La cantidad debe ser al menos 1.")
			break
		}
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

func (s *service) GetOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.GetOrders(ctx)
}

func (s *service) GetOrderDetail(ctx context.Context, orderID int) (*Order, error) {
	return s.repo.GetOrderDetail(ctx, orderID)
}
