package product

import "errors"

var (
	ErrNotFound        = errors.New("product not found")
	ErrSKURequired     = errors.New("SKU es obligatorio")
	ErrPriceNegative   = errors.New("el precio no puede ser negativo")
	ErrStockNegative   = errors.New("el stock no puede ser negativo")
	ErrUnknownCategory = errors.New("category does not exist")
	ErrDuplicateSKU    = errors.New("SKU already exists")
	ErrHasSales        = errors.New("no se puede eliminar este producto porque tiene ventas asociadas")
)
