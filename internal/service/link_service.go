package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/truongn999/ShortLink/internal/domain"
	"github.com/truongn999/ShortLink/internal/logger"
	"github.com/truongn999/ShortLink/pkg/generator"
	"github.com/truongn999/ShortLink/pkg/urlnorm"
)

var ErrLinkNotFound = errors.New("link not found")
var ErrAliasTaken = errors.New("short code already in use")

// LinkService covers the CRUD and analytics surface around links. The
// redirect pipeline lives in RedirectService.
type LinkService struct {
	links  LinkRepository
	clicks ClickRepository
	cache  LinkCache
}

func NewLinkService(links LinkRepository, clicks ClickRepository, cache LinkCache) *LinkService {
	return &LinkService{
		links:  links,
		clicks: clicks,
		cache:  cache,
	}
}

// Create stores a new link. Anonymous creation is allowed: req.UserID may
// be nil. Without a custom alias a random code is generated, retrying on
// the unique-constraint violation.
func (s *LinkService) Create(ctx context.Context, req *domain.CreateLinkRequest) (*domain.Link, error) {
	var err error
	shortCode := req.CustomAlias
	maxRetries := 3

	for i := 0; i < maxRetries; i++ {
		if shortCode == "" {
			shortCode, err = generator.ShortCode()
			if err != nil {
				return nil, err
			}
		}

		link := &domain.Link{
			ShortCode:   shortCode,
			OriginalURL: urlnorm.Normalize(req.OriginalURL),
			Title:       req.Title,
			UserID:      req.UserID,
			IsActive:    true,
		}

		err = s.links.Create(ctx, link)
		if err == nil {
			return link, nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "short_code") {
			if req.CustomAlias != "" {
				return nil, ErrAliasTaken
			}
			shortCode = ""
			continue
		}

		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return nil, fmt.Errorf("failed to generate short code after %d retries: %w", maxRetries, err)
}

func (s *LinkService) List(ctx context.Context, userID int64, page, pageSize int) (*domain.LinkList, error) {
	return s.links.ListByUser(ctx, userID, page, pageSize)
}

// SetActive toggles servability and drops the cached copy so the change
// takes effect on the next visit.
func (s *LinkService) SetActive(ctx context.Context, linkID int64, active bool, shortCode string) error {
	if err := s.links.SetActive(ctx, linkID, active); err != nil {
		return fmt.Errorf("failed to update link: %w", err)
	}

	if err := s.cache.Invalidate(ctx, shortCode); err != nil {
		logger.FromContext(ctx).Warn("cache invalidation failed",
			"short_code", shortCode, "error", err)
	}

	return nil
}

func (s *LinkService) Delete(ctx context.Context, linkID int64, shortCode string) error {
	if err := s.links.Delete(ctx, linkID); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if err := s.cache.Invalidate(ctx, shortCode); err != nil {
		logger.FromContext(ctx).Warn("cache invalidation failed",
			"short_code", shortCode, "error", err)
	}

	return nil
}

func (s *LinkService) GetAnalytics(ctx context.Context, shortCode string, days int) (*domain.LinkAnalytics, error) {
	link, err := s.getByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	return s.clicks.GetAnalytics(ctx, link.ID, days)
}

func (s *LinkService) GetClickHistory(ctx context.Context, shortCode string, page, pageSize int) (*domain.ClickHistory, error) {
	link, err := s.getByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	return s.clicks.GetHistory(ctx, link.ID, page, pageSize)
}

func (s *LinkService) getByShortCode(ctx context.Context, shortCode string) (*domain.Link, error) {
	link, err := s.links.GetByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	return link, nil
}
