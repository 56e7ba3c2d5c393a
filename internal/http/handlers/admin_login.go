package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sankaL/loku-caters-sub000/internal/auth"
	"github.com/sankaL/loku-caters-sub000/pkg/response"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" || body.Password == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}

	var adminID string
	var passwordHash string
	var isActive bool
	err := h.DB.QueryRow(ctx,
		`select id, password_hash, is_active from admin_users where lower(email) = $1`,
		email,
	).Scan(&adminID, &passwordHash, &isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Error(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		h.Logger.Error("load admin user", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}
	if !isActive {
		response.Error(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(body.Password)); err != nil {
		response.Error(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	ttl := time.Duration(h.Config.JWTExpirySeconds) * time.Second
	token, err := auth.IssueAdminToken(adminID, email, h.Config.JWTSecret, ttl)
	if err != nil {
		h.Logger.Error("issue admin token", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	response.Success(w, map[string]any{
		"access_token": token,
		"expires_in":   int64(ttl.Seconds()),
	})
}
