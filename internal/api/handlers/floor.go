package handlers

import (
	"net/http"

	"github.com/Sowmya0405/Super-mall-web-application/internal/httpx"
	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
	"github.com/Sowmya0405/Super-mall-web-application/internal/store"
	"github.com/Sowmya0405/Super-mall-web-application/internal/validation"
)

type FloorHandler struct {
	Store *store.Store
}

func NewFloorHandler(s *store.Store) *FloorHandler { return &FloorHandler{Store: s} }

func (h *FloorHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.Store.Floors())
}

func (h *FloorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "floor_not_found", nil)
		return
	}
	floor, err := h.Store.FloorByID(id)
	if err != nil {
		writeStoreError(w, err, "floor_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, floor)
}

func (h *FloorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.Floor
	if !httpx.Decode(w, r, &input) {
		return
	}
	v := validation.Violations{}
	validation.RequiredID("number", input.Number, v)
	validation.Required("name", input.Name, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	floor, err := h.Store.CreateFloor(input)
	if err != nil {
		writeStoreError(w, err, "floor_not_found")
		return
	}
	httpx.JSON(w, http.StatusCreated, floor)
}

func (h *FloorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "floor_not_found", nil)
		return
	}
	var patch models.FloorPatch
	if !httpx.Decode(w, r, &patch) {
		return
	}
	floor, err := h.Store.UpdateFloor(id, patch)
	if err != nil {
		writeStoreError(w, err, "floor_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, floor)
}

// Delete refuses while shops still reference the floor.
func (h *FloorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "floor_not_found", nil)
		return
	}
	if err := h.Store.DeleteFloor(id); err != nil {
		writeStoreError(w, err, "floor_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Ack{Success: true, Message: "Floor deleted successfully"})
}
