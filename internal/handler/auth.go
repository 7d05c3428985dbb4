package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-management/internal/config"
	"github.com/iliyamo/event-management/internal/model"
	"github.com/iliyamo/event-management/internal/repository"
	"github.com/iliyamo/event-management/internal/utils"
)

// UserStore is the slice of the user repository the auth endpoints need.
type UserStore interface {
	Create(ctx context.Context, name, email, password, phone, address string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	IsAdmin(ctx context.Context, userID uint64) (bool, error)
}

// LoginStore maintains the login/logout audit trail.
type LoginStore interface {
	RecordLogin(ctx context.Context, userID uint64) error
	CloseLatest(ctx context.Context, userID uint64) error
}

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  UserStore
	Logins LoginStore
}

func NewAuthHandler(cfg config.Config, users UserStore, logins LoginStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Logins: logins}
}

// ----- DTOs -----

type registerUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phoneNumber"`
	Address  string `json:"address"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type userPart struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
type loginResp struct {
	Token string   `json:"token"`
	User  userPart `json:"user"`
}

// RegisterUser creates a user account plus its attendee row.
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	var req registerUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if strings.TrimSpace(req.Name) == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide name, email, and password"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, req.Phone, req.Address, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User with this email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during registration"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"userId":  uid,
	})
}

// Login verifies credentials and issues an access token.  Unknown email
// and wrong password return the identical response, so the endpoint
// cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please provide email and password"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid email or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid email or password"})
	}

	isAdmin, err := h.Users.IsAdmin(ctx, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Name, u.Email, isAdmin, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login"})
	}

	if err := h.Logins.RecordLogin(ctx, u.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login"})
	}

	return c.JSON(http.StatusOK, loginResp{
		Token: access.Token,
		User:  userPart{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: isAdmin},
	})
}

// Logout stamps logout_time on the caller's open login record.
// Idempotent: calling without an open record still succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Logins.CloseLatest(ctx, uid); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during logout"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}
