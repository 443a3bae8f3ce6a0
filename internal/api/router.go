package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Sowmya0405/Super-mall-web-application/internal/api/handlers"
	"github.com/Sowmya0405/Super-mall-web-application/internal/api/middleware"
	"github.com/Sowmya0405/Super-mall-web-application/internal/auth"
	"github.com/Sowmya0405/Super-mall-web-application/internal/metrics"
	"github.com/Sowmya0405/Super-mall-web-application/internal/store"
)

// NewRouter builds the HTTP surface: public reads, admin-gated
// mutations, auth endpoints, stats, health and metrics.
func NewRouter(st *store.Store, tokens *auth.Tokens, log *slog.Logger, m *metrics.HTTPMetrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))
	if m != nil {
		r.Use(middleware.Metrics(m))
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	adminOnly := middleware.AdminOnly(st)

	shops := handlers.NewShopHandler(st)
	offers := handlers.NewOfferHandler(st)
	categories := handlers.NewCategoryHandler(st)
	floors := handlers.NewFloorHandler(st)
	authHandler := handlers.NewAuthHandler(st, tokens)
	stats := handlers.NewStatsHandler(st)

	r.Route("/api", func(r chi.Router) {
		mountResource(r, "/shops", resource{
			list: shops.List, get: shops.Get,
			create: shops.Create, update: shops.Update, delete: shops.Delete,
		}, adminOnly)
		mountResource(r, "/offers", resource{
			list: offers.List, get: offers.Get,
			create: offers.Create, update: offers.Update, delete: offers.Delete,
		}, adminOnly)
		mountResource(r, "/categories", resource{
			list: categories.List, get: categories.Get,
			create: categories.Create, update: categories.Update, delete: categories.Delete,
		}, adminOnly)
		mountResource(r, "/floors", resource{
			list: floors.List, get: floors.Get,
			create: floors.Create, update: floors.Update, delete: floors.Delete,
		}, adminOnly)

		r.Post("/auth/login", authHandler.AdminLogin)
		r.Post("/auth/user-register", authHandler.UserRegister)
		r.Post("/auth/user-login", authHandler.UserLogin)
		r.Get("/user/profile/{id}", authHandler.Profile)

		r.Get("/stats", stats.Get)
	})

	return r
}

// resource is the uniform shape every catalog entity exposes: public
// reads, admin-gated writes.
type resource struct {
	list   http.HandlerFunc
	get    http.HandlerFunc
	create http.HandlerFunc
	update http.HandlerFunc
	delete http.HandlerFunc
}

func mountResource(r chi.Router, path string, res resource, adminOnly func(http.Handler) http.Handler) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", res.list)
		r.Get("/{id}", res.get)
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/", res.create)
			r.Put("/{id}", res.update)
			r.Delete("/{id}", res.delete)
		})
	})
}
