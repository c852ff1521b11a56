package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/truongn999/ShortLink/internal/domain"
	"github.com/truongn999/ShortLink/internal/service"
	"github.com/truongn999/ShortLink/pkg/response"
)

type AnalyticsService interface {
	GetAnalytics(ctx context.Context, shortCode string, days int) (*domain.LinkAnalytics, error)
	GetClickHistory(ctx context.Context, shortCode string, page, pageSize int) (*domain.ClickHistory, error)
}

type AnalyticsHandler struct {
	service AnalyticsService
}

func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	shortCode := c.Param("shortCode")

	days := 30
	if daysParam := c.Query("days"); daysParam != "" {
		if d, err := strconv.Atoi(daysParam); err == nil && d > 0 && d <= 365 {
			days = d
		}
	}

	analytics, err := h.service.GetAnalytics(c.Request.Context(), shortCode, days)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			response.NotFound(c, "Link not found")
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.OK(c, "Analytics retrieved", analytics)
}

func (h *AnalyticsHandler) GetClickHistory(c *gin.Context) {
	shortCode := c.Param("shortCode")

	page := parsePositiveQuery(c, "page", 1)
	pageSize := parsePositiveQuery(c, "page_size", 20)
	if pageSize > 100 {
		pageSize = 100
	}

	history, err := h.service.GetClickHistory(c.Request.Context(), shortCode, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			response.NotFound(c, "Link not found")
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.OK(c, "Click history retrieved", history)
}
