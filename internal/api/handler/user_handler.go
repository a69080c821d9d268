package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

// Profile returns the authenticated caller's own record.
//
// @Summary      Get own profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  map[string]string
// @Router       /api/user/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.Profile(c.Request().Context(), claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// CheckUsername reports whether a username is taken in either store.
//
// @Summary      Check username availability
// @Tags         user
// @Produce      json
// @Param        username  query     string  true  "Username to check"
// @Success      200       {object}  existsResponse
// @Router       /api/user/check-username [get]
func (h *UserHandler) CheckUsername(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}

	exists, err := h.userService.UsernameExists(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, existsResponse{Exists: exists})
}

// CheckHealthID reports whether a health-id is taken in the patient store.
//
// @Summary      Check health-id availability
// @Tags         user
// @Produce      json
// @Param        healthId  query     int  true  "Health identifier to check"
// @Success      200       {object}  existsResponse
// @Router       /api/user/check-health-id [get]
func (h *UserHandler) CheckHealthID(c echo.Context) error {
	healthID, err := strconv.ParseInt(c.QueryParam("healthId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "healthId must be an integer")
	}

	exists, err := h.userService.HealthIDExists(c.Request().Context(), healthID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, existsResponse{Exists: exists})
}

// CheckPhone reports whether a phone number is taken in either store.
//
// @Summary      Check phone availability
// @Tags         user
// @Produce      json
// @Param        phone  query     string  true  "Phone number to check"
// @Success      200    {object}  existsResponse
// @Router       /api/user/check-phone [get]
func (h *UserHandler) CheckPhone(c echo.Context) error {
	phone := c.QueryParam("phone")
	if phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "phone is required")
	}

	exists, err := h.userService.PhoneExists(c.Request().Context(), phone)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, existsResponse{Exists: exists})
}
