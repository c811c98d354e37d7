package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-api/internal/httpx"
)

func Routes(r gin.IRouter, svc *Service) {
	g := r.Group("/orders")
	g.POST("", addHandler(svc))
	g.GET("", listHandler(svc))
	g.GET("/:id", getHandler(svc))
	g.PUT("", updateHandler(svc))
	g.DELETE("/:id", deleteHandler(svc))
}

// addHandler godoc
// @Summary  Add an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body     AddOrderRequest true "order"
// @Success  201  {object} OrderResponse
// @Failure  400  {object} httpx.HTTPError
// @Router   /orders [post]
func addHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddOrderRequest
		if !httpx.BindJSON(c, &req) {
			return
		}
		out, err := svc.Add(c.Request.Context(), req.ToModel())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, NewResponse(out))
	}
}

// listHandler godoc
// @Summary  List orders
// @Tags     orders
// @Produce  json
// @Success  200 {array} OrderResponse
// @Router   /orders [get]
func listHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.GetAll(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, NewResponses(list))
	}
}

// getHandler godoc
// @Summary  Get an order
// @Tags     orders
// @Produce  json
// @Param    id  path     int true "order id"
// @Success  200 {object} OrderResponse
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id} [get]
func getHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.PathID(c)
		if !ok {
			return
		}
		out, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		if out == nil {
			httpx.NotFound(c)
			return
		}
		c.JSON(http.StatusOK, NewResponse(out))
	}
}

// updateHandler godoc
// @Summary  Update an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body     UpdateOrderRequest true "order"
// @Success  200  {object} OrderResponse
// @Failure  400  {object} httpx.HTTPError
// @Failure  404  {object} httpx.HTTPError
// @Router   /orders [put]
func updateHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderRequest
		if !httpx.BindJSON(c, &req) {
			return
		}
		out, err := svc.Update(c.Request.Context(), req.ToModel())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		if out == nil {
			httpx.NotFound(c)
			return
		}
		c.JSON(http.StatusOK, NewResponse(out))
	}
}

// deleteHandler godoc
// @Summary  Delete an order
// @Tags     orders
// @Param    id  path int true "order id"
// @Success  204
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id} [delete]
func deleteHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.PathID(c)
		if !ok {
			return
		}
		deleted, err := svc.Delete(c.Request.Context(), id)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		if !deleted {
			httpx.NotFound(c)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
