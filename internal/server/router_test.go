package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/ordenes-api/internal/customer"
	"github.com/MikeMC777/ordenes-api/internal/entity"
	"github.com/MikeMC777/ordenes-api/internal/order"
	"github.com/MikeMC777/ordenes-api/internal/product"
	"github.com/MikeMC777/ordenes-api/internal/store/memstore"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewRouter(Services{
		Customers: customer.NewService(customer.NewStoreRepo(memstore.New[entity.Customer]())),
		Products:  product.NewService(product.NewStoreRepo(memstore.New[entity.Product]())),
		Orders:    order.NewService(order.NewStoreRepo(memstore.New[entity.Order]())),
	}, log, Options{})
}

func TestHealthAndRequestID(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}

func TestRoutesAreMounted(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/customers", "/api/products", "/api/orders"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String())
	}
}

func TestMetricsCountRequests(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/customers",
		bytes.NewBufferString(`{"first_name":"John","last_name":"Doe","phone":"078 0156 5740","email":"john.doe@lineten.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(),
		`ordenes_http_requests_total{method="POST",route="/api/customers",status="201"} 1`)
}
