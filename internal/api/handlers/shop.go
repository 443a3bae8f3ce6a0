package handlers

import (
	"net/http"

	"github.com/Sowmya0405/Super-mall-web-application/internal/catalog"
	"github.com/Sowmya0405/Super-mall-web-application/internal/httpx"
	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
	"github.com/Sowmya0405/Super-mall-web-application/internal/store"
	"github.com/Sowmya0405/Super-mall-web-application/internal/validation"
)

type ShopHandler struct {
	Store *store.Store
}

func NewShopHandler(s *store.Store) *ShopHandler { return &ShopHandler{Store: s} }

// List handles GET /api/shops with optional category, floor and search
// filters, applied as a conjunction.
func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := catalog.ShopFilter{
		Category: queryID(r, "category"),
		Floor:    queryID(r, "floor"),
		Search:   r.URL.Query().Get("search"),
	}
	httpx.JSON(w, http.StatusOK, catalog.FilterShops(h.Store.Shops(), filter))
}

func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "shop_not_found", nil)
		return
	}
	shop, err := h.Store.ShopByID(id)
	if err != nil {
		writeStoreError(w, err, "shop_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, shop)
}

func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.Shop
	if !httpx.Decode(w, r, &input) {
		return
	}
	v := validation.Violations{}
	validation.Required("name", input.Name, v)
	validation.RequiredID("category", input.Category, v)
	validation.RequiredID("floor", input.Floor, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	shop, err := h.Store.CreateShop(input)
	if err != nil {
		writeStoreError(w, err, "shop_not_found")
		return
	}
	httpx.JSON(w, http.StatusCreated, shop)
}

func (h *ShopHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "shop_not_found", nil)
		return
	}
	var patch models.ShopPatch
	if !httpx.Decode(w, r, &patch) {
		return
	}
	shop, err := h.Store.UpdateShop(id, patch)
	if err != nil {
		writeStoreError(w, err, "shop_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, shop)
}

// Delete removes the shop and, with it, every offer the shop carried.
func (h *ShopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "shop_not_found", nil)
		return
	}
	if err := h.Store.DeleteShop(id); err != nil {
		writeStoreError(w, err, "shop_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Ack{Success: true, Message: "Shop deleted successfully"})
}
