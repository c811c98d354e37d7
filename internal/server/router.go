// Package server assembles the gin engine.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/ordenes-api/internal/customer"
	"github.com/MikeMC777/ordenes-api/internal/httpx"
	"github.com/MikeMC777/ordenes-api/internal/order"
	"github.com/MikeMC777/ordenes-api/internal/product"
)

type Services struct {
	Customers *customer.Service
	Products  *product.Service
	Orders    *order.Service
}

type Options struct {
	Swagger bool
}

func NewRouter(svc Services, log logrus.FieldLogger, opts Options) *gin.Engine {
	r := gin.New()
	m := httpx.NewMetrics()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(log), m.Middleware())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(m.Handler()))
	if opts.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	customer.Routes(api, svc.Customers)
	product.Routes(api, svc.Products)
	order.Routes(api, svc.Orders)
	return r
}
