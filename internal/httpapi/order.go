package httpapi

import (
	"net/http"
	"strconv"

	"floreria-be/internal/order"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateOrder(c *gin.Context) {
	var input order.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	created, err := h.OrderSvc.CreateOrder(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order.ToResponse(created))
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.OrderSvc.GetOrders(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]*order.Response, 0, len(orders))
	for _, o := range orders {
		out = append(out, order.ToResponse(o))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	o, err := h.OrderSvc.GetOrderDetail(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order.ToResponse(o))
}
