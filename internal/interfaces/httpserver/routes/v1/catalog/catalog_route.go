package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocart-server/store-api/internal/interfaces/httpserver/handlers/cataloghandler"
	"autocart-server/store-api/internal/interfaces/httpserver/responses"
)

type CatalogRoute struct {
	handler *cataloghandler.CatalogHandler
}

func NewCatalogRoute(handler *cataloghandler.CatalogHandler) *CatalogRoute {
	return &CatalogRoute{handler: handler}
}

func (route *CatalogRoute) RegisterRouter(router gin.IRouter) {
	productRouter := router.Group("/products")
	productRouter.GET("", route.listProducts)
	productRouter.GET("/categories", route.listCategories)
	productRouter.GET("/:product_public_id", route.getProduct)
}

func (route *CatalogRoute) listProducts(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	category := reqCtx.Query("category")
	onlyOffers := reqCtx.Query("offers") == "true"

	response, err := route.handler.ListProducts(ctx, category, onlyOffers)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to list products")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}

func (route *CatalogRoute) listCategories(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := route.handler.ListCategories(ctx)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to list categories")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}

func (route *CatalogRoute) getProduct(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := route.handler.GetProduct(ctx, reqCtx.Param("product_public_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "product not found")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}
