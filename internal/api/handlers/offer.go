package handlers

import (
	"net/http"

	"github.com/Sowmya0405/Super-mall-web-application/internal/catalog"
	"github.com/Sowmya0405/Super-mall-web-application/internal/httpx"
	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
	"github.com/Sowmya0405/Super-mall-web-application/internal/store"
	"github.com/Sowmya0405/Super-mall-web-application/internal/validation"
)

type OfferHandler struct {
	Store *store.Store
}

func NewOfferHandler(s *store.Store) *OfferHandler { return &OfferHandler{Store: s} }

// List handles GET /api/offers. shopId narrows to one shop;
// active=true keeps only offers whose window includes today.
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := catalog.OfferFilter{ShopID: queryID(r, "shopId")}
	if r.URL.Query().Get("active") == "true" {
		filter.ActiveOn = catalog.Today()
	}
	httpx.JSON(w, http.StatusOK, catalog.FilterOffers(h.Store.Offers(), filter))
}

func (h *OfferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "offer_not_found", nil)
		return
	}
	offer, err := h.Store.OfferByID(id)
	if err != nil {
		writeStoreError(w, err, "offer_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.Offer
	if !httpx.Decode(w, r, &input) {
		return
	}
	v := validation.Violations{}
	validation.Required("title", input.Title, v)
	validation.RequiredID("shopId", input.ShopID, v)
	validation.Required("validFrom", input.ValidFrom, v)
	validation.Required("validUntil", input.ValidUntil, v)
	validation.ISODate("validFrom", input.ValidFrom, v)
	validation.ISODate("validUntil", input.ValidUntil, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	offer, err := h.Store.CreateOffer(input)
	if err != nil {
		writeStoreError(w, err, "offer_not_found")
		return
	}
	httpx.JSON(w, http.StatusCreated, offer)
}

func (h *OfferHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "offer_not_found", nil)
		return
	}
	var patch models.OfferPatch
	if !httpx.Decode(w, r, &patch) {
		return
	}
	v := validation.Violations{}
	if patch.ValidFrom != nil {
		validation.ISODate("validFrom", *patch.ValidFrom, v)
	}
	if patch.ValidUntil != nil {
		validation.ISODate("validUntil", *patch.ValidUntil, v)
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	offer, err := h.Store.UpdateOffer(id, patch)
	if err != nil {
		writeStoreError(w, err, "offer_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "offer_not_found", nil)
		return
	}
	if err := h.Store.DeleteOffer(id); err != nil {
		writeStoreError(w, err, "offer_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Ack{Success: true, Message: "Offer deleted successfully"})
}
