package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-api/internal/httpx"
)

func Routes(r gin.IRouter, svc *Service) {
	httpx.RegisterValidations()
	g := r.Group("/customers")
	g.POST("", addHandler(svc))
	g.GET("", listHandler(svc))
	g.GET("/:id", getHandler(svc))
	g.PUT("", updateHandler(svc))
	g.DELETE("/:id", deleteHandler(svc))
}

// addHandler godoc
// @Summary  Add a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    body body     AddCustomerRequest true "customer"
// @Success  201  {object} CustomerResponse
// @Failure  400  {object} httpx.HTTPError
// @Router   /customers [post]
func addHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCustomerRequest
		if !httpx.BindJSON(c, &req) {
			return
		}
		m, err := req.ToModel()
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		out, err := svc.Add(c.Request.Context(), m)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, NewResponse(out))
	}
}

// listHandler godoc
// @Summary  List customers
// @Tags     customers
// @Produce  json
// @Success  200 {array} CustomerResponse
// @Router   /customers [get]
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
// @Summary  Get a customer
// @Tags     customers
// @Produce  json
// @Param    id  path     int true "customer id"
// @Success  200 {object} CustomerResponse
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /customers/{id} [get]
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
// @Summary  Update a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    body body     UpdateCustomerRequest true "customer"
// @Success  200  {object} CustomerResponse
// @Failure  400  {object} httpx.HTTPError
// @Failure  404  {object} httpx.HTTPError
// @Router   /customers [put]
func updateHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCustomerRequest
		if !httpx.BindJSON(c, &req) {
			return
		}
		m, err := req.ToModel()
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		out, err := svc.Update(c.Request.Context(), m)
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
// @Summary  Delete a customer
// @Tags     customers
// @Param    id  path int true "customer id"
// @Success  204
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /customers/{id} [delete]
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
