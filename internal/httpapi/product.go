package httpapi

import (
	"net/http"
	"strconv"

	"floreria-be/internal/logger"
	"floreria-be/internal/product"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) ListProducts(c *gin.Context) {
	var search *string
	if q := c.Query("search"); q != "" {
		search = &q
	}

	products, err := h.ProductSvc.GetProducts(c.Request.Context(), search)
	if err != nil {
		h.writeError(c, err)
		return
	}

	origin := requestOrigin(c)
	out := make([]*product.Representation, 0, len(products))
	for _, p := range products {
		out = append(out, product.ToRepresentation(p, origin))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.ProductSvc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product.ToRepresentation(p, requestOrigin(c)))
}

// CreateProduct accepts a multipart/form-data (or urlencoded) body so the
// image can ride along with the fields.
func (h *Handler) CreateProduct(c *gin.Context) {
	params := product.CreateParams{
		ID:   c.PostForm("id"),
		SKU:  c.PostForm("sku"),
		Name: c.PostForm("name"),
	}

	categoryID, err := strconv.Atoi(c.PostForm("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"category_id": []string{"La categoría es obligatoria."}})
		return
	}
	params.CategoryID = categoryID

	price, err := strconv.Atoi(c.PostForm("price"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"price": []string{"El precio es obligatorio."}})
		return
	}
	params.Price = price

	// stock defaults to 0 when absent
	if raw, ok := c.GetPostForm("stock"); ok && raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"stock": []string{"Stock inválido."}})
			return
		}
		params.Stock = stock
	}

	if barcode, ok := c.GetPostForm("barcode"); ok {
		params.Barcode = &barcode
	}

	if stored, ok := h.saveImage(c); !ok {
		return
	} else if stored != nil {
		params.Image = stored
	}

	created, err := h.ProductSvc.CreateProduct(c.Request.Context(), params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product.ToRepresentation(created, requestOrigin(c)))
}

// UpdateProduct handles PATCH and PUT. Only fields present in the form are
// touched.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	var params product.UpdateParams

	if v, ok := c.GetPostForm("sku"); ok {
		params.SKU = &v
	}
	if v, ok := c.GetPostForm("name"); ok {
		params.Name = &v
	}
	if v, ok := c.GetPostForm("barcode"); ok {
		params.Barcode = &v
	}
	if v, ok := c.GetPostForm("category_id"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"category_id": []string{"Categoría inválida."}})
			return
		}
		params.CategoryID = &n
	}
	if v, ok := c.GetPostForm("price"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"price": []string{"Precio inválido."}})
			return
		}
		params.Price = &n
	}
	if v, ok := c.GetPostForm("stock"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"stock": []string{"Stock inválido."}})
			return
		}
		params.Stock = &n
	}

	if stored, ok := h.saveImage(c); !ok {
		return
	} else if stored != nil {
		// replacing the image drops the old file
		if prev, err := h.ProductSvc.GetProduct(c.Request.Context(), id); err == nil && prev.Image != nil {
			if rmErr := h.Media.Remove(*prev.Image); rmErr != nil {
				logger.FromCtx(c.Request.Context()).Warn("failed to remove old image", zap.Error(rmErr))
			}
		}
		params.Image = stored
	}

	updated, err := h.ProductSvc.UpdateProduct(c.Request.Context(), id, params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product.ToRepresentation(updated, requestOrigin(c)))
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.ProductSvc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// saveImage stores an uploaded "image" file, if any. The bool result is
// false when the request has already been answered with an error.
func (h *Handler) saveImage(c *gin.Context) (*string, bool) {
	file, err := c.FormFile("image")
	if err != nil || file == nil {
		// no upload on this request
		return nil, true
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"image": []string{"Imagen inválida."}})
		return nil, false
	}
	defer src.Close()

	stored, err := h.Media.SaveProductImage(src, file.Filename)
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to store image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
		return nil, false
	}

	return &stored, true
}
