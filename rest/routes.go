package rest

import (
	"errors"
	"net/http"

	"github.com/JustDean/sessionstore/pkg/session"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the session API on e.
func RegisterRoutes(e *echo.Echo, store *session.Store) {
	h := &handlers{store: store}

	e.GET("/healthz", healthCheck)

	sessions := e.Group("/sessions")
	sessions.POST("", h.issue)
	sessions.GET("/:token", h.describe)
	sessions.GET("/:token/valid", h.isValid)
	sessions.DELETE("/:token", h.revoke)
}

type handlers struct {
	store *session.Store
}

type issueRequest struct {
	Login  string `json:"login"`
	RoleId *int32 `json:"role_id"`
}

type sessionResponse struct {
	Login  string `json:"login"`
	RoleId int32  `json:"role_id"`
}

func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *handlers) issue(c echo.Context) error {
	var req issueRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}
	if req.RoleId == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "role_id is required",
		})
	}
	token, err := h.store.Issue(c.Request().Context(), req.Login, *req.RoleId)
	if err != nil {
		return errorResponse(c, "issue", err)
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"token": token,
	})
}

func (h *handlers) isValid(c echo.Context) error {
	valid, err := h.store.IsValid(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errorResponse(c, "validate", err)
	}
	return c.JSON(http.StatusOK, map[string]bool{
		"valid": valid,
	})
}

// describe only answers for live sessions; lookups by themselves do not
// check expiry.
func (h *handlers) describe(c echo.Context) error {
	ctx := c.Request().Context()
	token := c.Param("token")
	valid, err := h.store.IsValid(ctx, token)
	if err != nil {
		return errorResponse(c, "validate", err)
	}
	if !valid {
		return errorResponse(c, "lookup", session.ErrSessionNotFound)
	}
	login, err := h.store.GetLogin(ctx, token)
	if err != nil {
		return errorResponse(c, "lookup", err)
	}
	roleId, err := h.store.GetRoleId(ctx, token)
	if err != nil {
		return errorResponse(c, "lookup", err)
	}
	return c.JSON(http.StatusOK, sessionResponse{Login: login, RoleId: roleId})
}

func (h *handlers) revoke(c echo.Context) error {
	if err := h.store.Revoke(c.Request().Context(), c.Param("token")); err != nil {
		return errorResponse(c, "revoke", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func errorResponse(c echo.Context, op string, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		code = http.StatusNotFound
	case errors.Is(err, session.ErrNoConnection):
		code = http.StatusServiceUnavailable
	case errors.Is(err, session.ErrEmptyLogin):
		code = http.StatusBadRequest
	}
	msg := err.Error()
	if code >= http.StatusInternalServerError {
		c.Logger().Error(op+" error: ", err)
		msg = http.StatusText(code)
	}
	return c.JSON(code, map[string]string{
		"error": msg,
	})
}
