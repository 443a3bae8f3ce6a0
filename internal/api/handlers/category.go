package handlers

import (
	"net/http"

	"github.com/Sowmya0405/Super-mall-web-application/internal/httpx"
	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
	"github.com/Sowmya0405/Super-mall-web-application/internal/store"
	"github.com/Sowmya0405/Super-mall-web-application/internal/validation"
)

type CategoryHandler struct {
	Store *store.Store
}

func NewCategoryHandler(s *store.Store) *CategoryHandler { return &CategoryHandler{Store: s} }

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.Store.Categories())
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "category_not_found", nil)
		return
	}
	category, err := h.Store.CategoryByID(id)
	if err != nil {
		writeStoreError(w, err, "category_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.Category
	if !httpx.Decode(w, r, &input) {
		return
	}
	v := validation.Violations{}
	validation.Required("name", input.Name, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	category, err := h.Store.CreateCategory(input)
	if err != nil {
		writeStoreError(w, err, "category_not_found")
		return
	}
	httpx.JSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "category_not_found", nil)
		return
	}
	var patch models.CategoryPatch
	if !httpx.Decode(w, r, &patch) {
		return
	}
	category, err := h.Store.UpdateCategory(id, patch)
	if err != nil {
		writeStoreError(w, err, "category_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, category)
}

// Delete refuses while shops still reference the category.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "category_not_found", nil)
		return
	}
	if err := h.Store.DeleteCategory(id); err != nil {
		writeStoreError(w, err, "category_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Ack{Success: true, Message: "Category deleted successfully"})
}
