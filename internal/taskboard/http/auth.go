package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/wire"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// Register creates a local account.
//
//	@Summary		Register
//	@Description	Creates a local account and returns a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tasksdk.RegisterRequest						true	"Account details"
//	@Success		201		{object}	tasksdk.Response[tasksdk.AuthData]			"Registered"
//	@Failure		400		{object}	tasksdk.Response[any]						"Validation failed"
//	@Failure		409		{object}	tasksdk.Response[any]						"Email already registered"
//	@Failure		429		{object}	tasksdk.Response[any]						"Too many requests"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.AuthService.Register(r.Context(), domain.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, "User registered successfully", authData(sess))
}

// Login signs in with email and password.
//
//	@Summary		Login
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tasksdk.LoginRequest				true	"Credentials"
//	@Success		200		{object}	tasksdk.Response[tasksdk.AuthData]	"Signed in"
//	@Failure		400		{object}	tasksdk.Response[any]				"Validation failed"
//	@Failure		401		{object}	tasksdk.Response[any]				"Invalid email or password"
//	@Failure		429		{object}	tasksdk.Response[any]				"Too many requests"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "Login successful", authData(sess))
}

// Logout acknowledges a sign-out. Tokens are stateless; the client drops its
// copy.
//
//	@Summary	Logout
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	tasksdk.Response[any]	"Logout successful"
//	@Router		/api/auth/logout [post].
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, "Logout successful", nil)
}

// Verify confirms the bearer token is still good.
//
//	@Summary	Verify token
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	tasksdk.Response[tasksdk.UserData]	"Token is valid"
//	@Failure	401	{object}	tasksdk.Response[any]				"Invalid or expired token"
//	@Security	BearerAuth
//	@Router		/api/auth/verify [get].
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.Profile(r.Context(), actorFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Token is valid", tasksdk.UserData{User: wire.User(user)})
}

// Profile returns the caller's account.
//
//	@Summary	Get profile
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	tasksdk.Response[tasksdk.UserData]	"Profile"
//	@Failure	401	{object}	tasksdk.Response[any]				"Invalid or expired token"
//	@Security	BearerAuth
//	@Router		/api/auth/profile [get].
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.Profile(r.Context(), actorFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", tasksdk.UserData{User: wire.User(user)})
}

// UpdateProfile changes the caller's name and/or avatar.
//
//	@Summary	Update profile
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		tasksdk.ProfileUpdateRequest		true	"Fields to change"
//	@Success	200		{object}	tasksdk.Response[tasksdk.UserData]	"Profile updated successfully"
//	@Failure	400		{object}	tasksdk.Response[any]				"Validation failed"
//	@Failure	401		{object}	tasksdk.Response[any]				"Invalid or expired token"
//	@Security	BearerAuth
//	@Router		/api/auth/profile [put].
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.ProfileUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.AuthService.UpdateProfile(r.Context(), actorFrom(r.Context()), domain.ProfileUpdate{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Profile updated successfully", tasksdk.UserData{User: wire.User(user)})
}

func authData(sess service.Session) tasksdk.AuthData {
	return tasksdk.AuthData{User: wire.User(sess.User), Token: sess.Token}
}
