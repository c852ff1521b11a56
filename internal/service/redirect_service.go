package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/truongn999/ShortLink/internal/domain"
	"github.com/truongn999/ShortLink/internal/geo"
	"github.com/truongn999/ShortLink/internal/logger"
	"github.com/truongn999/ShortLink/pkg/urlnorm"
	"github.com/truongn999/ShortLink/pkg/useragent"
)

type ClickRepository interface {
	Insert(ctx context.Context, click *domain.Click) error
	GetAnalytics(ctx context.Context, linkID int64, days int) (*domain.LinkAnalytics, error)
	GetHistory(ctx context.Context, linkID int64, page, pageSize int) (*domain.ClickHistory, error)
}

type DedupStore interface {
	Mark(ctx context.Context, sessionID, shortCode string) (bool, error)
	Seen(ctx context.Context, sessionID, shortCode string) (bool, error)
}

type GeoLookup interface {
	Lookup(ctx context.Context, ip string) (*geo.Result, error)
}

// RedirectService runs the resolution and click-attribution pipeline:
// dedup mark, resolve, enrich, persist, redirect. Stages are sequential
// except the two attribution writes, which are issued concurrently and
// awaited together.
type RedirectService struct {
	resolver *Resolver
	links    LinkRepository
	clicks   ClickRepository
	dedup    DedupStore
	geo      GeoLookup
}

func NewRedirectService(resolver *Resolver, links LinkRepository, clicks ClickRepository, dedup DedupStore, geo GeoLookup) *RedirectService {
	return &RedirectService{
		resolver: resolver,
		links:    links,
		clicks:   clicks,
		dedup:    dedup,
		geo:      geo,
	}
}

// Track resolves shortCode for the given session and, on the first visit of
// that session, attributes the click before returning the redirect target.
// Repeat visits within a session are redirected without attribution.
func (s *RedirectService) Track(ctx context.Context, sessionID, shortCode string, visit domain.Visit) domain.RedirectOutcome {
	log := logger.FromContext(ctx)

	// The flag is set before any asynchronous work so a concurrent
	// re-entry for the same session/code pair cannot double-count.
	first, err := s.dedup.Mark(ctx, sessionID, shortCode)
	if err != nil {
		// Dedup degrades open: an unreachable store counts the click
		// rather than blocking the visitor.
		log.Warn("dedup store unavailable", "short_code", shortCode, "error", err)
		first = true
	}

	verdict := s.resolver.Resolve(ctx, shortCode)
	if verdict.Kind == domain.VerdictTransient {
		log.Warn("transient resolution failure, retrying once",
			"short_code", shortCode, "error", verdict.Err)
		verdict = s.resolver.Resolve(ctx, shortCode)
	}

	switch verdict.Kind {
	case domain.VerdictNotFound:
		return domain.RedirectOutcome{State: domain.StateNotFound}
	case domain.VerdictTransient:
		log.Error("resolution failed after retry",
			"short_code", shortCode, "error", verdict.Err)
		return domain.RedirectOutcome{State: domain.StateNotFound}
	case domain.VerdictInactive:
		return domain.RedirectOutcome{State: domain.StateInactive}
	}

	link := verdict.Link
	destination := urlnorm.Normalize(link.OriginalURL)

	if !first {
		return domain.RedirectOutcome{State: domain.StateRedirecting, Location: destination}
	}

	click := s.collect(ctx, link.ID, visit)

	// The insert and the counter increment are independent; neither waits
	// on the other and a failure of one does not cancel its sibling.
	var g errgroup.Group
	g.Go(func() error {
		return s.clicks.Insert(ctx, click)
	})
	g.Go(func() error {
		return s.links.RegisterClick(ctx, link.ID)
	})
	if err := g.Wait(); err != nil {
		// The destination is known; losing one click record is better
		// than stranding the visitor.
		log.Error("click attribution failed", "short_code", shortCode,
			"link_id", link.ID, "error", err)
	}

	return domain.RedirectOutcome{State: domain.StateRedirecting, Location: destination}
}

// collect builds the click record from the request signals plus the timed
// geolocation lookup. Geo failure leaves the nullable fields absent.
func (s *RedirectService) collect(ctx context.Context, linkID int64, visit domain.Visit) *domain.Click {
	click := &domain.Click{
		LinkID:         linkID,
		UserAgent:      visit.UserAgent,
		Device:         useragent.Device(visit.UserAgent),
		Browser:        useragent.Browser(visit.UserAgent),
		OS:             useragent.OS(visit.UserAgent),
		ViewportWidth:  visit.ViewportWidth,
		ViewportHeight: visit.ViewportHeight,
	}

	if visit.Referer != "" {
		referer := visit.Referer
		click.Referer = &referer
	}

	result, err := s.geo.Lookup(ctx, visit.RemoteIP)
	if err != nil {
		logger.FromContext(ctx).Debug("geo lookup skipped", "error", err)
		return click
	}

	if result.IP != "" {
		click.IPAddress = &result.IP
	}
	if result.CountryName != "" {
		click.Country = &result.CountryName
	}
	if result.City != "" {
		click.City = &result.City
	}

	return click
}
