package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func authStub(t *testing.T) *httptest.Server {
	t.Helper()
	registered := map[string]string{"asha@mall.test": "s3cret"}

	decode := func(w http.ResponseWriter, r *http.Request, dst any) bool {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			http.Error(w, `{"error":"invalid_json"}`, http.StatusBadRequest)
			return false
		}
		return true
	}
	reply := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(v); err != nil {
			t.Errorf("encode: %v", err)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Username, Password string }
		if !decode(w, r, &req) {
			return
		}
		if req.Username != "admin" || req.Password != "admin123" {
			reply(w, http.StatusUnauthorized, map[string]string{"error": "invalid_credentials"})
			return
		}
		reply(w, http.StatusOK, map[string]any{
			"success": true,
			"token":   "1.admin.9999999999.sig",
			"user":    map[string]any{"id": 1, "username": "admin", "role": "admin"},
		})
	})
	mux.HandleFunc("/api/auth/user-register", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Name, Email, Password string }
		if !decode(w, r, &req) {
			return
		}
		if _, taken := registered[req.Email]; taken {
			reply(w, http.StatusBadRequest, map[string]string{"error": "email_already_registered"})
			return
		}
		registered[req.Email] = req.Password
		reply(w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "Registration successful",
			"user":    map[string]any{"id": 2, "name": req.Name, "email": req.Email},
		})
	})
	mux.HandleFunc("/api/auth/user-login", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Email, Password string }
		if !decode(w, r, &req) {
			return
		}
		if registered[req.Email] != req.Password || req.Password == "" {
			reply(w, http.StatusUnauthorized, map[string]string{"error": "invalid_email_or_password"})
			return
		}
		reply(w, http.StatusOK, map[string]any{
			"success": true,
			"token":   "2.customer.9999999999.sig",
			"user":    map[string]any{"id": 2, "email": req.Email, "role": "customer"},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAdminLogin(t *testing.T) {
	c := New(authStub(t).URL)
	ctx := context.Background()

	res, err := c.AdminLogin(ctx, "admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !res.Success || res.Token == "" || res.User.Role != "admin" {
		t.Fatalf("unexpected result: %+v", res)
	}

	if _, err := c.AdminLogin(ctx, "admin", "wrong"); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("bad password: expected ErrLoginFailed got %v", err)
	}
}

func TestRegisterAndUserLogin(t *testing.T) {
	c := New(authStub(t).URL)
	ctx := context.Background()

	res, err := c.Register(ctx, "Ravi", "ravi@mall.test", "456", "pa55word")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !res.Success || res.User.Email != "ravi@mall.test" {
		t.Fatalf("unexpected result: %+v", res)
	}

	// The stub seeds asha@mall.test, so re-registering it is refused.
	if _, err := c.Register(ctx, "Other", "asha@mall.test", "", "x"); err == nil {
		t.Fatal("duplicate email should be rejected")
	}

	login, err := c.UserLogin(ctx, "ravi@mall.test", "pa55word")
	if err != nil || login.Token == "" {
		t.Fatalf("login: %+v err=%v", login, err)
	}
	if _, err := c.UserLogin(ctx, "ravi@mall.test", "wrong"); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("wrong password: expected ErrLoginFailed got %v", err)
	}
}

func TestLoginUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(srv.URL)
	if _, err := c.AdminLogin(context.Background(), "admin", "admin123"); err == nil {
		t.Fatal("unreachable backend should surface a transport error")
	}
}
