package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/truongn999/ShortLink/internal/domain"
	"github.com/truongn999/ShortLink/internal/service"
	"github.com/truongn999/ShortLink/pkg/response"
	"github.com/truongn999/ShortLink/pkg/validator"
)

type LinkService interface {
	Create(ctx context.Context, req *domain.CreateLinkRequest) (*domain.Link, error)
	List(ctx context.Context, userID int64, page, pageSize int) (*domain.LinkList, error)
	SetActive(ctx context.Context, linkID int64, active bool, shortCode string) error
	Delete(ctx context.Context, linkID int64, shortCode string) error
}

type LinkHandler struct {
	service LinkService
	baseURL string
}

func NewLinkHandler(service LinkService, baseURL string) *LinkHandler {
	return &LinkHandler{service: service, baseURL: baseURL}
}

func (h *LinkHandler) Create(c *gin.Context) {
	var req domain.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if errs := validator.Validate(&req); len(errs) > 0 {
		response.ValidationErrors(c, errs)
		return
	}

	if req.CustomAlias != "" && validator.IsReservedAlias(req.CustomAlias) {
		response.BadRequest(c, "This alias is reserved")
		return
	}

	link, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAliasTaken) {
			response.Conflict(c, "Short code already in use")
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.Created(c, "Link created", gin.H{
		"short_url":    h.baseURL + "/" + link.ShortCode,
		"short_code":   link.ShortCode,
		"original_url": link.OriginalURL,
		"title":        link.Title,
	})
}

func (h *LinkHandler) List(c *gin.Context) {
	userID, ok := parseIDParam(c, c.Query("user_id"))
	if !ok {
		return
	}

	page := parsePositiveQuery(c, "page", 1)
	pageSize := parsePositiveQuery(c, "page_size", 20)
	if pageSize > 100 {
		pageSize = 100
	}

	links, err := h.service.List(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.OK(c, "Links retrieved", links)
}

func (h *LinkHandler) SetActive(c *gin.Context) {
	linkID, ok := parseIDParam(c, c.Param("id"))
	if !ok {
		return
	}

	var req struct {
		IsActive  bool   `json:"is_active"`
		ShortCode string `json:"short_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.SetActive(c.Request.Context(), linkID, req.IsActive, req.ShortCode); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.OK(c, "Link updated", nil)
}

func (h *LinkHandler) Delete(c *gin.Context) {
	linkID, ok := parseIDParam(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), linkID, c.Query("short_code")); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.OK(c, "Link deleted", nil)
}

func parseIDParam(c *gin.Context, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "A valid numeric id is required")
		return 0, false
	}
	return id, true
}

func parsePositiveQuery(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
