package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pehlione.com/storefront/internal/http/middleware"
	"pehlione.com/storefront/internal/http/render"
	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/pages"
)

// AccountOrders is the order history target of the confirmation page. Orders
// are not stored here, so it renders the empty state.
func (h *OrdersHandler) AccountOrders(c *gin.Context) {
	render.Component(c, http.StatusOK, pages.AccountOrders(middleware.GetFlash(c), view.AccountOrdersPage{
		ShopURL: h.links.Home,
	}))
}
