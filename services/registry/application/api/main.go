package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/assetforge/pkg/app"
	"github.com/ghuser/assetforge/services/registry/application/handlers"
	appsvcs "github.com/ghuser/assetforge/services/registry/application/services"
)

// RegistryRoutes registers registry, marketplace, burn, wallet and admin
// endpoints on the provided chi router.
func RegistryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			h := handlers.NewGetItemsHandler(svcs)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/", h.List)
			r.Get("/{index}", h.GetByIndex)
			r.Put("/{id}/listing", handlers.NewPutListingHandler(svcs).Execute)
			r.Get("/{id}/audit", handlers.NewGetAuditHandler(svcs).Execute)
		})

		r.Get("/listings/{owner}/{id}", handlers.NewGetListingHandler(svcs).Execute)
		r.Post("/purchases", handlers.NewPostPurchaseHandler(svcs).Execute)

		burn := handlers.NewBurnHandlers(svcs)
		r.Post("/burn-requests", burn.Request)
		r.Post("/burn-acceptances", burn.Accept)
		r.Post("/burns", burn.Burn)

		wallet := handlers.NewWalletHandlers(svcs)
		r.Route("/wallet", func(r chi.Router) {
			r.Post("/deposits", wallet.Deposit)
			r.Get("/balance", wallet.Balance)
		})

		admin := handlers.NewAdminHandlers(svcs)
		r.Route("/admin", func(r chi.Router) {
			r.Get("/", admin.Current)
			r.Post("/transfer", admin.Transfer)
		})
	})
}
