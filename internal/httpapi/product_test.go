package httpapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"floreria-be/internal/category"
	"floreria-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestListProducts(t *testing.T) {
	t.Run("MaterializesImageURL", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.products.On("GetProducts", mock.Anything, (*string)(nil)).
			Return([]*product.Product{
				{
					ID:       "a1b2c3d4e5f6",
					SKU:      "P001",
					Name:     "Ramo 12 rosas",
					Price:    13990,
					Stock:    10,
					Image:    strPtr("media/products/abc.jpg"),
					Category: &category.Category{ID: 1, Name: "Ramos"},
				},
			}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.Host = "api.floreria.cl"
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "http://api.floreria.cl/media/products/abc.jpg")
	})

	t.Run("SearchForwarded", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.products.On("GetProducts", mock.Anything, mock.MatchedBy(func(s *string) bool {
			return s != nil && *s == "rosa"
		})).Return([]*product.Product{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products?search=rosa", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		m.products.AssertExpectations(t)
	})
}

func TestCreateProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.products.On("CreateProduct", mock.Anything, product.CreateParams{
			SKU:        "P010",
			Name:       "Orquidea",
			CategoryID: 2,
			Price:      15990,
			Stock:      4,
		}).Return(&product.Product{
			ID:    "deadbeef0102",
			SKU:   "P010",
			Name:  "Orquidea",
			Price: 15990,
			Stock: 4,
		}, nil)

		form := url.Values{}
		form.Set("sku", "P010")
		form.Set("name", "Orquidea")
		form.Set("category_id", "2")
		form.Set("price", "15990")
		form.Set("stock", "4")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "deadbeef0102")
		m.products.AssertExpectations(t)
	})

	t.Run("MissingCategory", func(t *testing.T) {
		r, m := newTestRouter(t)

		form := url.Values{}
		form.Set("sku", "P010")
		form.Set("name", "Orquidea")
		form.Set("price", "15990")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "La categoría es obligatoria.")
		m.products.AssertNotCalled(t, "CreateProduct")
	})

	t.Run("WithImage", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.products.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p product.CreateParams) bool {
			return p.Image != nil && strings.HasPrefix(*p.Image, "media/products/")
		})).Return(&product.Product{ID: "cafe01020304", SKU: "P011", Name: "Girasoles"}, nil)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("sku", "P011"))
		require.NoError(t, mw.WriteField("name", "Girasoles"))
		require.NoError(t, mw.WriteField("category_id", "1"))
		require.NoError(t, mw.WriteField("price", "8990"))
		part, err := mw.CreateFormFile("image", "girasoles.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/products", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		m.products.AssertExpectations(t)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.products.On("DeleteProduct", mock.Anything, "a1b2c3d4e5f6").Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/products/a1b2c3d4e5f6", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("HasSales", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.products.On("DeleteProduct", mock.Anything, "a1b2c3d4e5f6").
			Return(product.ErrHasSales)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/products/a1b2c3d4e5f6", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "tiene ventas asociadas")
	})

	t.Run("NotFound", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.products.On("DeleteProduct", mock.Anything, "missing000000").
			Return(product.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/products/missing000000", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
