package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"pehlione.com/storefront/internal/config"
	"pehlione.com/storefront/internal/http/middleware"
	"pehlione.com/storefront/internal/http/render"
	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/pages"
)

var orderRefPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,32}$`)

type OrdersHandler struct {
	links config.LinksConfig
}

func NewOrdersHandler(links config.LinksConfig) *OrdersHandler {
	return &OrdersHandler{links: links}
}

// Confirmation is the thank-you page checkout redirects to. The optional
// ?order= reference is only echoed when it looks like an order number.
func (h *OrdersHandler) Confirmation(c *gin.Context) {
	ref := c.Query("order")
	if !orderRefPattern.MatchString(ref) {
		ref = ""
	}

	render.Component(c, http.StatusOK, pages.OrderConfirmation(middleware.GetFlash(c), view.OrderConfirmation{
		OrderRef:        ref,
		OrderHistoryURL: h.links.OrderHistory,
		HomeURL:         h.links.Home,
	}))
}
