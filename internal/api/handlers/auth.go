package handlers

import (
	"net/http"
	"time"

	"github.com/Sowmya0405/Super-mall-web-application/internal/auth"
	"github.com/Sowmya0405/Super-mall-web-application/internal/httpx"
	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
	"github.com/Sowmya0405/Super-mall-web-application/internal/store"
	"github.com/Sowmya0405/Super-mall-web-application/internal/validation"
)

// AuthHandler serves admin login plus the customer-facing register,
// login and profile endpoints. Passwords are only ever stored and
// compared as bcrypt hashes.
type AuthHandler struct {
	Store  *store.Store
	Tokens *auth.Tokens
}

func NewAuthHandler(s *store.Store, t *auth.Tokens) *AuthHandler {
	return &AuthHandler{Store: s, Tokens: t}
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AdminLogin handles POST /api/auth/login. The response carries a
// signed expiring token the client can hold instead of a bare
// "logged in" marker.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	user, err := h.Store.AdminByUsername(req.Username)
	if err != nil || !auth.CheckHash(user.Password, req.Password) {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   h.Tokens.Mint(user.ID, user.Role),
		"user":    adminSummary{ID: user.ID, Username: user.Username, Role: user.Role},
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type customerSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UserRegister handles POST /api/auth/user-register. Duplicate emails
// are rejected before any row is created.
func (h *AuthHandler) UserRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	validation.Required("email", req.Email, v)
	validation.Required("password", req.Password, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	customer, err := h.Store.RegisterCustomer(models.Customer{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hash,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err == store.ErrEmailTaken {
		httpx.JSONError(w, http.StatusBadRequest, "email_already_registered", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Registration successful",
		"user":    customerSummary{ID: customer.ID, Name: customer.Name, Email: customer.Email},
	})
}

type userLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserLogin handles POST /api/auth/user-login.
func (h *AuthHandler) UserLogin(w http.ResponseWriter, r *http.Request) {
	var req userLoginRequest
	if !httpx.Decode(w, r, &req) {
		return
	}
	customer, err := h.Store.CustomerByEmail(req.Email)
	if err != nil || !auth.CheckHash(customer.Password, req.Password) {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_email_or_password", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   h.Tokens.Mint(customer.ID, "customer"),
		"user":    customerSummary{ID: customer.ID, Name: customer.Name, Email: customer.Email, Phone: customer.Phone},
	})
}

// Profile handles GET /api/user/profile/{id}. The stored hash never
// leaves the server.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "user_not_found", nil)
		return
	}
	customer, err := h.Store.CustomerByID(id)
	if err != nil {
		writeStoreError(w, err, "user_not_found")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"id":        customer.ID,
		"name":      customer.Name,
		"email":     customer.Email,
		"phone":     customer.Phone,
		"createdAt": customer.CreatedAt,
	})
}
