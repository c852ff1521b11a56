package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/truongn999/ShortLink/internal/domain"
	"github.com/truongn999/ShortLink/internal/logger"
)

type LinkRepository interface {
	Create(ctx context.Context, link *domain.Link) error
	GetByShortCode(ctx context.Context, shortCode string) (*domain.Link, error)
	RegisterClick(ctx context.Context, linkID int64) error
	SetActive(ctx context.Context, linkID int64, active bool) error
	Delete(ctx context.Context, linkID int64) error
	ListByUser(ctx context.Context, userID int64, page, pageSize int) (*domain.LinkList, error)
}

type LinkCache interface {
	Get(ctx context.Context, shortCode string) (*domain.Link, error)
	Set(ctx context.Context, link *domain.Link, ttl time.Duration) error
	Invalidate(ctx context.Context, shortCode string) error
}

// Resolver turns a short code into a servability verdict. It is read-only
// with respect to the link row: the only side effect is refreshing the
// cache with servable links.
type Resolver struct {
	links    LinkRepository
	cache    LinkCache
	timeout  time.Duration
	cacheTTL time.Duration
}

func NewResolver(links LinkRepository, cache LinkCache, timeout, cacheTTL time.Duration) *Resolver {
	return &Resolver{
		links:    links,
		cache:    cache,
		timeout:  timeout,
		cacheTTL: cacheTTL,
	}
}

// Resolve matches the code verbatim. A missing row is NotFound, a row with
// is_active false is Inactive, and any transport or query failure is a
// Transient verdict the caller may retry. The lookup runs under the
// resolver's timeout so a hung database cannot hold a visitor forever.
func (r *Resolver) Resolve(ctx context.Context, shortCode string) domain.Verdict {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if link, err := r.cache.Get(ctx, shortCode); err == nil && link != nil {
		return domain.Servable(link)
	}

	link, err := r.links.GetByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotFound()
		}
		return domain.Transient(err)
	}

	if !link.IsActive {
		return domain.Inactive(link)
	}

	go func() {
		if err := r.cache.Set(context.Background(), link, r.cacheTTL); err != nil {
			logger.Get().Debug("link cache refresh failed", "short_code", shortCode, "error", err)
		}
	}()

	return domain.Servable(link)
}
