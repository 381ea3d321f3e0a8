package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"pehlione.com/storefront/internal/config"
	"pehlione.com/storefront/internal/http/flash"
	"pehlione.com/storefront/internal/http/handlers"
	"pehlione.com/storefront/internal/http/handlers/admin"
	"pehlione.com/storefront/internal/http/middleware"
	"pehlione.com/storefront/internal/modules/catalog"
	"pehlione.com/storefront/internal/shared/apperr"
	"pehlione.com/storefront/internal/storage"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Config  config.Config
	Catalog *catalog.Service
	Assets  storage.Storage
}

func NewRouter(logger *slog.Logger, d Deps) *gin.Engine {
	cfg := d.Config
	r := gin.New()

	quiet := []string{"/static/", "/favicon.ico"}
	localUploads := cfg.Storage.Driver == "local" && cfg.Storage.LocalURLPrefix != ""
	if localUploads {
		quiet = append(quiet, strings.TrimRight(cfg.Storage.LocalURLPrefix, "/")+"/")
	}

	fl := flash.NewCodec([]byte(cfg.FlashSecret), cfg.FlashCookie, cfg.CookieSecure)

	// ErrorHandler sits outside Recovery so recovered panics still get a page.
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger, quiet...),
		middleware.ErrorHandler(logger),
		middleware.Recovery(logger),
		middleware.FlashMiddleware(fl),
	)

	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}
	if localUploads {
		r.Static(cfg.Storage.LocalURLPrefix, cfg.Storage.LocalDir)
	}

	products := handlers.NewProductsHandler(d.Catalog, d.Assets, fl)
	orders := handlers.NewOrdersHandler(cfg.Links)
	api := handlers.NewProductsAPI(d.Catalog, d.Assets)

	r.GET("/", products.List)
	r.GET("/products/:ref", products.Show)
	r.GET("/orders/confirmation", orders.Confirmation)
	r.GET("/account/orders", orders.AccountOrders)

	apiGroup := r.Group("/api")
	apiGroup.GET("/products", api.List)
	apiGroup.GET("/products/:id", api.Get)

	adminGroup := r.Group("/admin", middleware.RequireAdmin(middleware.AdminAuthCfg{
		User:         cfg.Admin.User,
		PasswordHash: []byte(cfg.Admin.PasswordHash),
		Realm:        "storefront admin",
	}))
	{
		cat := admin.NewCatalogHandler(d.Catalog, d.Assets)
		adminGroup.GET("/catalog", cat.List)
	}

	r.NoRoute(func(c *gin.Context) {
		middleware.Fail(c, apperr.NotFoundErr("Page not found."))
	})

	return r
}
