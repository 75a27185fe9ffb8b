package handler

import (
	"net/http"

	"github.com/NssGourav/shuttle-tracker/internal/adapter/http/handler/dto"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	"github.com/NssGourav/shuttle-tracker/pkg/validator"
)

// Signup godoc
//
//	@Summary		Register a new account
//	@Description	Creates a driver or student account and returns an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignupRequest	true	"signup payload"
//	@Success		201		{object}	map[string]any
//	@Failure		400		{object}	map[string]any
//	@Router			/api/auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := readJSON(w, r, &req); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if req.Validate(v); !v.Valid() {
		h.failedValidationResponse(w, r, v.Errors)
		return
	}

	role := types.RoleStudent
	if req.Role != "" {
		parsed, err := types.ParseRole(req.Role)
		if err != nil {
			h.badRequestResponse(w, r, err)
			return
		}
		role = parsed
	}

	user, token, err := h.auth.Signup(r.Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	data := envelope{
		"token": token.AccessToken,
		"user":  dto.NewUserResponse(user),
	}
	if err := writeJSON(w, http.StatusCreated, data, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Exchanges email and password for an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequest	true	"login payload"
//	@Success		200		{object}	map[string]any
//	@Failure		401		{object}	map[string]any
//	@Router			/api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if req.Validate(v); !v.Valid() {
		h.failedValidationResponse(w, r, v.Errors)
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	data := envelope{
		"token": token.AccessToken,
		"user":  dto.NewUserResponse(user),
	}
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
