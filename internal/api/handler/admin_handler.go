package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hireflow/interviewer/internal/core/ports"
)

// AdminHandler serves login and the interview review routes under /api/admin.
type AdminHandler struct {
	auth  ports.AuthService
	admin ports.AdminService
}

func NewAdminHandler(auth ports.AuthService, admin ports.AdminService) *AdminHandler {
	return &AdminHandler{auth: auth, admin: admin}
}

// Login authenticates an admin and returns a bearer token.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, admin, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Admin:       adminResponse{ID: admin.ID, Email: admin.Email},
	})
}

// ListInterviews handles GET /api/admin/interviews.
//
// @Summary      List interviews
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role   query     string  false  "Exact role"
// @Param        email  query     string  false  "Candidate email fragment"
// @Param        page   query     int     false  "Page (default 1)"
// @Param        limit  query     int     false  "Page size 1-100 (default 20)"
// @Success      200    {object}  listInterviewsResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Router       /api/admin/interviews [get]
func (h *AdminHandler) ListInterviews(c echo.Context) error {
	var q listInterviewsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.admin.ListInterviews(c.Request().Context(), ports.ListInterviewsInput{
		Role:  q.Role,
		Email: q.Email,
		Page:  q.Page,
		Limit: q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(res))
}

// GetInterview handles GET /api/admin/interviews/:id.
//
// @Summary      Interview detail
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  resultsResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/interviews/{id} [get]
func (h *AdminHandler) GetInterview(c echo.Context) error {
	res, err := h.admin.GetInterview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResultsResponse(res))
}
