package product

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-api/internal/httpx"
)

func Routes(r gin.IRouter, svc *Service) {
	g := r.Group("/products")
	g.POST("", addHandler(svc))
	g.GET("", listHandler(svc))
	g.GET("/:id", getHandler(svc))
	g.PUT("", updateHandler(svc))
	g.DELETE("/:id", deleteHandler(svc))
}

// addHandler godoc
// @Summary  Add a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    body body     AddProductRequest true "product"
// @Success  201  {object} ProductResponse
// @Failure  400  {object} httpx.HTTPError
// @Router   /products [post]
func addHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddProductRequest
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
// @Summary  List products
// @Tags     products
// @Produce  json
// @Success  200 {array} ProductResponse
// @Router   /products [get]
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
// @Summary  Get a product
// @Tags     products
// @Produce  json
// @Param    id  path     int true "product id"
// @Success  200 {object} ProductResponse
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /products/{id} [get]
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
// @Summary  Update a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    body body     UpdateProductRequest true "product"
// @Success  200  {object} ProductResponse
// @Failure  400  {object} httpx.HTTPError
// @Failure  404  {object} httpx.HTTPError
// @Router   /products [put]
func updateHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProductRequest
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
// @Summary  Delete a product
// @Tags     products
// @Param    id  path int true "product id"
// @Success  204
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /products/{id} [delete]
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
