package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack-api/internal/core/domain"
	"github.com/healthtrack/healthtrack-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	UserType string `json:"userType" validate:"omitempty,oneof=USER DOCTOR"`
}

type registerRequest struct {
	Name           string  `json:"name"`
	Username       string  `json:"username" validate:"required"`
	Password       string  `json:"password" validate:"required,min=6"`
	UserType       string  `json:"userType" validate:"required,oneof=USER DOCTOR"`
	HealthID       *int64  `json:"healthId"`
	Phone          *string `json:"phone"`
	LicenseID      *int64  `json:"licenseId"`
	Specialization *int    `json:"specialization"`
}

type authResponse struct {
	Token      string `json:"token"`
	Type       string `json:"type"`
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role"`
	ExternalID *int64 `json:"externalId,omitempty"`
}

func newAuthResponse(token string, p *domain.Principal) authResponse {
	return authResponse{
		Token:      token,
		Type:       "Bearer",
		ID:         p.ID,
		Username:   p.Username,
		Name:       p.Name,
		Role:       string(p.Kind),
		ExternalID: p.ExternalID,
	}
}

// Login authenticates a principal and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, principal, err := h.authService.Login(c.Request().Context(), req.Username, req.Password, req.UserType)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newAuthResponse(token, principal))
}

// Register creates a new principal of the declared kind and logs it in.
//
// @Summary      Register a patient or practitioner
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, principal, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:       req.Username,
		Password:       req.Password,
		UserType:       req.UserType,
		Name:           req.Name,
		HealthID:       req.HealthID,
		LicenseID:      req.LicenseID,
		Phone:          req.Phone,
		Specialization: req.Specialization,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newAuthResponse(token, principal))
}

// Roles lists the user types accepted at registration.
//
// @Summary      List available roles
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/auth/roles [get]
func (h *AuthHandler) Roles(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{
		"roles": {string(domain.KindPatient), string(domain.KindPractitioner)},
	})
}
