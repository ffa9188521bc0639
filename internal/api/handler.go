// Package api exposes tab feed views over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news_feed/internal/ads"
	"news_feed/internal/domain"
	"news_feed/internal/feedview"
	"news_feed/internal/tabs"
)

type Handler struct {
	registry *tabs.Registry
	slot     *ads.Slot
	updates  UpdateChecker
	verifier FeedVerifier
	logger   *slog.Logger
}

// NewHandler creates the HTTP handler. verifier may be nil when the
// configured source cannot verify feed URLs.
func NewHandler(registry *tabs.Registry, slot *ads.Slot, updates UpdateChecker, verifier FeedVerifier, logger *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		slot:     slot,
		updates:  updates,
		verifier: verifier,
		logger:   logger.With("component", "api"),
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	t := e.Group("/tabs/:id")
	t.POST("/attach", h.Attach)
	t.GET("/cards", h.Cards)
	t.POST("/drag", h.DragStart)
	t.POST("/idle", h.ScrollIdle)
	t.POST("/refresh", h.Refresh)
	t.POST("/detach", h.Detach)
	e.DELETE("/tabs/:id", h.CloseTab)

	e.PUT("/ads/current", h.SetAd)
	e.DELETE("/ads/current", h.ClearAd)

	e.GET("/feed/update-available", h.UpdateAvailable)
	e.POST("/sources/verify", h.VerifySource)
}

type feedResponse struct {
	TabID    string         `json:"tab_id"`
	State    string         `json:"state"`
	ScrollTo int            `json:"scroll_to,omitempty"`
	Cards    []cardResponse `json:"cards"`
}

type dragRequest struct {
	FirstFullyVisible int `json:"first_fully_visible"`
}

type rowRequest struct {
	Position      int     `json:"position"`
	VisibleHeight float64 `json:"visible_height"`
	Height        float64 `json:"height"`
}

type idleRequest struct {
	Rows []rowRequest `json:"rows"`
}

type idleResponse struct {
	ActivePosition  int    `json:"active_position"`
	Impression      string `json:"impression,omitempty"`
	UpdateAvailable bool   `json:"update_available"`
}

type verifyRequest struct {
	URL string `json:"url"`
}

type verifyResponse struct {
	URL   string `json:"url"`
	Valid bool   `json:"valid"`
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Attach shows a tab's feed and waits for its cards.
func (h *Handler) Attach(c echo.Context) error {
	view := h.registry.View(c.Param("id"))

	res, err := view.Attach(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return h.respondWhenReady(c, view, res)
}

func (h *Handler) Refresh(c echo.Context) error {
	view, err := h.lookup(c)
	if err != nil {
		return h.mapError(c, err)
	}

	res, err := view.Refresh(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return h.respondWhenReady(c, view, res)
}

func (h *Handler) respondWhenReady(c echo.Context, view *feedview.View, res *feedview.AttachResult) error {
	ctx := c.Request().Context()
	select {
	case <-res.Done:
	case <-ctx.Done():
		return h.mapError(c, ctx.Err())
	}

	return c.JSON(http.StatusOK, feedResponse{
		TabID:    view.TabID(),
		State:    view.State().String(),
		ScrollTo: res.ScrollTo,
		Cards:    newCardResponses(view.Cards(), h.slot.Current()),
	})
}

func (h *Handler) Cards(c echo.Context) error {
	view, err := h.lookup(c)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, feedResponse{
		TabID: view.TabID(),
		State: view.State().String(),
		Cards: newCardResponses(view.Cards(), h.slot.Current()),
	})
}

func (h *Handler) DragStart(c echo.Context) error {
	var req dragRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	view, err := h.lookup(c)
	if err != nil {
		return h.mapError(c, err)
	}

	if err := view.OnDragStart(c.Request().Context(), req.FirstFullyVisible); err != nil {
		return h.mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ScrollIdle(c echo.Context) error {
	var req idleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	view, err := h.lookup(c)
	if err != nil {
		return h.mapError(c, err)
	}

	rows := make([]feedview.RowVisibility, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, feedview.RowVisibility{
			Position:      r.Position,
			VisibleHeight: r.VisibleHeight,
			Height:        r.Height,
		})
	}

	res, err := view.OnScrollIdle(c.Request().Context(), rows)
	if err != nil {
		if res == nil {
			return h.mapError(c, err)
		}
		h.logger.Warn("impression not recorded", "tab_id", view.TabID(), "error", err)
	}

	return c.JSON(http.StatusOK, idleResponse{
		ActivePosition:  res.ActivePosition,
		Impression:      string(res.Impression),
		UpdateAvailable: res.UpdateAvailable,
	})
}

func (h *Handler) Detach(c echo.Context) error {
	view, err := h.lookup(c)
	if err != nil {
		return h.mapError(c, err)
	}

	view.Detach()
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CloseTab(c echo.Context) error {
	if err := h.registry.Close(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) SetAd(c echo.Context) error {
	var req displayAdResponse
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if req.UUID == "" || req.CreativeInstanceID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "uuid and creative_instance_id are required"})
	}

	h.slot.Set(req.toDomain())
	h.logger.Debug("display ad updated", "uuid", req.UUID)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ClearAd(c echo.Context) error {
	h.slot.Set(nil)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UpdateAvailable(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{
		"update_available": h.updates.UpdateAvailable(c.Request().Context()),
	})
}

func (h *Handler) VerifySource(c echo.Context) error {
	if h.verifier == nil {
		return c.JSON(http.StatusNotImplemented, map[string]string{"error": "source does not support feed verification"})
	}

	var req verifyRequest
	if err := c.Bind(&req); err != nil || req.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url is required"})
	}

	return c.JSON(http.StatusOK, verifyResponse{
		URL:   req.URL,
		Valid: h.verifier.VerifyFeedURL(c.Request().Context(), req.URL),
	})
}

func (h *Handler) lookup(c echo.Context) (*feedview.View, error) {
	view, ok := h.registry.Lookup(c.Param("id"))
	if !ok {
		return nil, domain.ErrUnknownTab
	}
	return view, nil
}

func (h *Handler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownTab):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidResumeIndex):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, feedview.ErrNotReady), errors.Is(err, feedview.ErrNotAttached):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "request cancelled"})
	default:
		h.logger.Error("request failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
