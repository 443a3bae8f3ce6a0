package handlers

import (
	"net/http"

	"github.com/Sowmya0405/Super-mall-web-application/internal/catalog"
	"github.com/Sowmya0405/Super-mall-web-application/internal/httpx"
	"github.com/Sowmya0405/Super-mall-web-application/internal/store"
)

type StatsHandler struct {
	Store *store.Store
}

func NewStatsHandler(s *store.Store) *StatsHandler { return &StatsHandler{Store: s} }

type statsResponse struct {
	TotalShops      int `json:"totalShops"`
	TotalOffers     int `json:"totalOffers"`
	ActiveOffers    int `json:"activeOffers"`
	TotalCategories int `json:"totalCategories"`
	TotalFloors     int `json:"totalFloors"`
}

// Get handles GET /api/stats: collection counts plus how many offers
// are valid today.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc := h.Store.Snapshot()
	today := catalog.Today()
	active := 0
	for _, o := range doc.Offers {
		if catalog.OfferActiveOn(o, today) {
			active++
		}
	}
	httpx.JSON(w, http.StatusOK, statsResponse{
		TotalShops:      len(doc.Shops),
		TotalOffers:     len(doc.Offers),
		ActiveOffers:    active,
		TotalCategories: len(doc.Categories),
		TotalFloors:     len(doc.Floors),
	})
}
