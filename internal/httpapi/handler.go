package httpapi

import (
	"errors"
	"net/http"

	"floreria-be/internal/category"
	"floreria-be/internal/logger"
	"floreria-be/internal/media"
	"floreria-be/internal/order"
	"floreria-be/internal/product"
	"floreria-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	UserSvc     user.Service
	CategorySvc category.Service
	ProductSvc  product.Service
	OrderSvc    order.Service
	Media       *media.Storage
}

func NewHandler(
	userSvc user.Service,
	categorySvc category.Service,
	productSvc product.Service,
	orderSvc order.Service,
	mediaStore *media.Storage,
) *Handler {
	return &Handler{
		UserSvc:     userSvc,
		CategorySvc: categorySvc,
		ProductSvc:  productSvc,
		OrderSvc:    orderSvc,
		Media:       mediaStore,
	}
}

// requestOrigin rebuilds the scheme and host the client used, for
// materializing stored image references into absolute URLs.
func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}

// writeError maps domain errors onto the HTTP error taxonomy. Anything not
// recognized is a plain 500; infrastructure failures are never dressed up as
// client errors.
func (h *Handler) writeError(c *gin.Context, err error) {
	var verr *order.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, category.ErrNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, user.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})

	case errors.Is(err, product.ErrHasSales):
		c.JSON(http.StatusConflict,
			gin.H{"detail": "No se puede eliminar este producto porque tiene ventas asociadas."})

	case errors.Is(err, category.ErrInUse):
		c.JSON(http.StatusConflict,
			gin.H{"detail": "No se puede eliminar esta categoría porque tiene productos asociados."})

	case errors.Is(err, category.ErrEmptyName),
		errors.Is(err, category.ErrDuplicate),
		errors.Is(err, product.ErrSKURequired),
		errors.Is(err, product.ErrPriceNegative),
		errors.Is(err, product.ErrStockNegative),
		errors.Is(err, product.ErrUnknownCategory),
		errors.Is(err, product.ErrDuplicateSKU):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})

	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})

	default:
		logger.FromCtx(c.Request.Context()).Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
	}
}
