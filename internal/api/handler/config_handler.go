package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hireflow/interviewer/internal/core/ports"
)

// ConfigHandler exposes the runtime interview configuration.
type ConfigHandler struct {
	config ports.ConfigService
	log    zerolog.Logger
}

func NewConfigHandler(config ports.ConfigService, log zerolog.Logger) *ConfigHandler {
	return &ConfigHandler{config: config, log: log}
}

// Root handles GET /.
//
// @Summary      Service banner
// @Tags         meta
// @Produce      json
// @Success      200  {object}  rootResponse
// @Router       / [get]
func (h *ConfigHandler) Root(c echo.Context) error {
	cfg := h.config.Current()
	return c.JSON(http.StatusOK, rootResponse{
		Message:                "AI interviewer backend is running",
		MaxQuestions:           cfg.MaxQuestions,
		QuestionTimeoutSeconds: cfg.QuestionTimeoutSeconds,
	})
}

// Get handles GET /api/admin/config.
//
// @Summary      Current configuration
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  configResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/admin/config [get]
func (h *ConfigHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, toConfigResponse(h.config.Current()))
}

// Update handles PUT /api/admin/config.
//
// @Summary      Update configuration
// @Description  Partial update; absent keys keep their current value.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateConfigRequest  true  "Settings to change"
// @Success      200   {object}  configResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/admin/config [put]
func (h *ConfigHandler) Update(c echo.Context) error {
	claims, err := ctxAdmin(c)
	if err != nil {
		return err
	}

	var req updateConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	cfg, err := h.config.Apply(c.Request().Context(), ports.ConfigUpdate{
		MaxQuestions:           req.MaxQuestions,
		QuestionTimeoutSeconds: req.QuestionTimeoutSeconds,
	})
	if err != nil {
		return err
	}

	h.log.Info().
		Str("admin", claims.Email).
		Int("max_questions", cfg.MaxQuestions).
		Int("question_timeout_seconds", cfg.QuestionTimeoutSeconds).
		Msg("runtime config updated")

	return c.JSON(http.StatusOK, toConfigResponse(cfg))
}
