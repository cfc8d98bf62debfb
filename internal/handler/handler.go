package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"linkshortener/internal/domain"
	"linkshortener/internal/service"
)

type Handler struct {
	links  LinkService
	health HealthChecker
	logger *slog.Logger
}

func New(links LinkService, health HealthChecker, logger *slog.Logger) *Handler {
	return &Handler{
		links:  links,
		health: health,
		logger: logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.POST("/shorten", h.Shorten)
	api.GET("/links/:code/stats", h.Stats)

	e.GET("/:code", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	if err := h.health.Ping(c.Request().Context()); err != nil {
		h.logger.Error("health check failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, respUnavailable)
	}
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) Shorten(c echo.Context) error {
	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Debug("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, respInvalidBody)
	}

	resp, err := h.links.Create(c.Request().Context(), service.CreateInput{
		URL:        req.URL,
		CustomCode: req.CustomCode,
		ExpiresAt:  req.ExpiresAt,
	})
	if err != nil {
		return h.fail(c, "failed to create link", err)
	}

	return c.JSON(http.StatusCreated, domain.OK(resp))
}

func (h *Handler) Redirect(c echo.Context) error {
	target, err := h.links.Resolve(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.fail(c, "failed to resolve link", err)
	}
	return c.Redirect(http.StatusTemporaryRedirect, target)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.links.Stats(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.fail(c, "failed to load link stats", err)
	}
	return c.JSON(http.StatusOK, domain.OK(stats))
}

func (h *Handler) fail(c echo.Context, msg string, err error) error {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg,
			slog.String("code", c.Param("code")),
			slog.String("error", err.Error()))
	}
	return c.JSON(status, body)
}
