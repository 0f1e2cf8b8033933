// Package httpapi exposes the stock and billing views of the point of sale
// over HTTP.
package httpapi

import (
	"net/http"

	"github.com/ginjaninja78/ventas-pos/internal/app"
	"github.com/ginjaninja78/ventas-pos/internal/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// NewRouter mounts every route on a chi router.
//
//	GET    /stock                 products, ?q= filters
//	POST   /stock/import          multipart "file" (xlsx or csv)
//	GET    /stock/export          stock workbook download
//	GET    /billing               cart, total and ticket info
//	GET    /billing/products      products, ?q= filters
//	POST   /billing/cart/{code}   add one unit
//	PATCH  /billing/cart/{code}   {"delta": n}
//	DELETE /billing/cart/{code}   remove the line
//	PUT    /billing/ticket        replace ticket info
//	POST   /billing/confirm       confirm the sale
func NewRouter(a *app.App, log *logger.Logger) http.Handler {
	h := &handlers{app: a, log: log}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Route("/stock", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/import", h.importCatalog)
		r.Get("/export", h.exportStock)
	})

	r.Route("/billing", func(r chi.Router) {
		r.Get("/", h.billing)
		r.Get("/products", h.listProducts)
		r.Post("/cart/{code}", h.addToCart)
		r.Patch("/cart/{code}", h.changeQuantity)
		r.Delete("/cart/{code}", h.removeFromCart)
		r.Put("/ticket", h.setTicket)
		r.Post("/confirm", h.confirmSale)
	})

	return r
}
