package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusauth/auth-api/internal/core/ports"
)

// UserHandler handles registration and the user CRUD surface.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns all users in the public projection (no password, no role).
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.UserOutput
// @Failure      500  {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single user in the public projection.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.UserOutput
// @Failure      404  {object}  messageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetPublic(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Register creates a new account. The role is never taken from the client;
// every new account starts as a plain user.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Message: "User created",
		User:    user.Output(false),
	})
}

// UpdateSelf updates the caller's own record. The target id comes from the
// verified token, never from the body.
//
// @Summary      Update the authenticated user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      selfUpdateRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /users [put]
func (h *UserHandler) UpdateSelf(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req selfUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateSelf(c.Request().Context(), userID, ports.UpdateInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Message: "User updated",
		User:    user.Output(false),
	})
}

// UpdateAsAdmin updates an arbitrary record, including the role. The route
// is gated by RequireRole(admin).
//
// @Summary      Update any user (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      adminUpdateRequest  true  "Target id and fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /users/admin [put]
func (h *UserHandler) UpdateAsAdmin(c echo.Context) error {
	var req adminUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateAsAdmin(c.Request().Context(), ports.AdminUpdateInput{
		ID: req.ID,
		UpdateInput: ports.UpdateInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		},
		Role: req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Message: "User updated",
		User:    user.Output(false),
	})
}

// DeleteSelf removes the caller's own record.
//
// @Summary      Delete the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users [delete]
func (h *UserHandler) DeleteSelf(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Delete(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Message: "User deleted",
		User:    user.Output(false),
	})
}

// DeleteAsAdmin removes an arbitrary record by path id. The route is gated
// by RequireRole(admin).
//
// @Summary      Delete any user (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/admin/{id} [delete]
func (h *UserHandler) DeleteAsAdmin(c echo.Context) error {
	user, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Message: "User deleted",
		User:    user.Output(false),
	})
}

// CheckToken confirms the token is live by echoing the resolved identity.
// The record is re-read so a token for a deleted user reports 404.
//
// @Summary      Check token validity
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/token [get]
func (h *UserHandler) CheckToken(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Message: "Token is valid",
		User:    user.Output(true),
	})
}
