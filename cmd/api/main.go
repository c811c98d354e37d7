// @title       Ordenes API
// @version     1.0
// @description Customers, products and orders CRUD service.
// @BasePath    /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "github.com/MikeMC777/ordenes-api/docs"
	"github.com/MikeMC777/ordenes-api/internal/config"
	"github.com/MikeMC777/ordenes-api/internal/customer"
	"github.com/MikeMC777/ordenes-api/internal/database"
	"github.com/MikeMC777/ordenes-api/internal/entity"
	"github.com/MikeMC777/ordenes-api/internal/logging"
	"github.com/MikeMC777/ordenes-api/internal/order"
	"github.com/MikeMC777/ordenes-api/internal/product"
	"github.com/MikeMC777/ordenes-api/internal/server"
	"github.com/MikeMC777/ordenes-api/internal/store"
	"github.com/MikeMC777/ordenes-api/internal/store/gormstore"
	"github.com/MikeMC777/ordenes-api/internal/store/memstore"
)

type stores struct {
	customers store.Provider[entity.Customer]
	products  store.Provider[entity.Product]
	orders    store.Provider[entity.Order]
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	log.WithFields(logrus.Fields{
		"http_addr":    cfg.HTTPAddr,
		"store_driver": cfg.StoreDriver,
	}).Info("config loaded")

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("api stopped")
	}
}

func run(cfg config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStores, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStores()

	gin.SetMode(cfg.GinMode)
	router := server.NewRouter(server.Services{
		Customers: customer.NewService(customer.NewStoreRepo(st.customers)),
		Products:  product.NewService(product.NewStoreRepo(st.products)),
		Orders:    order.NewService(order.NewStoreRepo(st.orders)),
	}, log, server.Options{Swagger: cfg.SwaggerEnabled})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	errc := make(chan error, 1)
	go func() {
		log.Infof("api listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStores(ctx context.Context, cfg config.Config, log *logrus.Logger) (stores, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Warn("using in-memory store; data is lost on exit")
		return stores{
			customers: memstore.New[entity.Customer](),
			products:  memstore.New[entity.Product](),
			orders:    memstore.New[entity.Order](),
		}, func() {}, nil
	}

	db, err := database.Open(ctx, cfg, log)
	if err != nil {
		return stores{}, nil, err
	}
	if cfg.DBEnsureSchema {
		if err := database.EnsureSchema(db.Gorm, cfg.DBRecreate, entity.All()...); err != nil {
			db.Close()
			return stores{}, nil, err
		}
		log.WithField("recreate", cfg.DBRecreate).Info("schema ready")
	}
	return stores{
		customers: gormstore.New[entity.Customer](db.Gorm),
		products:  gormstore.New[entity.Product](db.Gorm),
		orders:    gormstore.New[entity.Order](db.Gorm),
	}, db.Close, nil
}
