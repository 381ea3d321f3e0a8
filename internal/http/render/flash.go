package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pehlione.com/storefront/internal/http/flash"
	"pehlione.com/storefront/internal/http/middleware"
	"pehlione.com/storefront/pkg/view"
)

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
