package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/truongn999/ShortLink/internal/domain"
)

type ClickRepository struct {
	db *pgxpool.Pool
}

func NewClickRepository(db *pgxpool.Pool) *ClickRepository {
	return &ClickRepository{db: db}
}

func (r *ClickRepository) Insert(ctx context.Context, click *domain.Click) error {
	query := `
		INSERT INTO clicks (link_id, ip_address, country, city, user_agent, referer,
			device, browser, os, viewport_width, viewport_height)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		click.LinkID,
		click.IPAddress,
		click.Country,
		click.City,
		click.UserAgent,
		click.Referer,
		click.Device,
		click.Browser,
		click.OS,
		click.ViewportWidth,
		click.ViewportHeight,
	)
	return err
}

func (r *ClickRepository) GetAnalytics(ctx context.Context, linkID int64, days int) (*domain.LinkAnalytics, error) {
	analytics := &domain.LinkAnalytics{}

	query := `
		SELECT l.short_code, l.original_url, l.clicks, l.last_clicked_at, l.created_at,
			COUNT(DISTINCT c.ip_address) AS unique_ips
		FROM links l
		LEFT JOIN clicks c ON l.id = c.link_id
		WHERE l.id = $1
		GROUP BY l.id, l.short_code, l.original_url, l.clicks, l.last_clicked_at, l.created_at
	`

	err := r.db.QueryRow(ctx, query, linkID).Scan(
		&analytics.ShortCode,
		&analytics.OriginalURL,
		&analytics.TotalClicks,
		&analytics.LastClickedAt,
		&analytics.CreatedAt,
		&analytics.UniqueIPs,
	)
	if err != nil {
		return nil, err
	}

	if analytics.ClicksByDate, err = r.getClicksByDate(ctx, linkID, days); err != nil {
		return nil, err
	}

	if analytics.TopReferrers, err = r.getTopReferrers(ctx, linkID, 5); err != nil {
		return nil, err
	}

	if analytics.Devices, err = r.getBreakdown(ctx, linkID, "device"); err != nil {
		return nil, err
	}

	if analytics.Browsers, err = r.getBreakdown(ctx, linkID, "browser"); err != nil {
		return nil, err
	}

	if analytics.Systems, err = r.getBreakdown(ctx, linkID, "os"); err != nil {
		return nil, err
	}

	return analytics, nil
}

func (r *ClickRepository) getClicksByDate(ctx context.Context, linkID int64, days int) ([]domain.ClicksByDate, error) {
	query := `
		SELECT DATE(created_at) AS date, COUNT(*) AS count
		FROM clicks
		WHERE link_id = $1
			AND created_at >= NOW() - INTERVAL '1 day' * $2
		GROUP BY DATE(created_at)
		ORDER BY date DESC
		LIMIT 30
	`

	rows, err := r.db.Query(ctx, query, linkID, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ClicksByDate
	for rows.Next() {
		var cbd domain.ClicksByDate
		var date time.Time
		if err := rows.Scan(&date, &cbd.Count); err != nil {
			return nil, err
		}
		cbd.Date = date.Format("2006-01-02")
		results = append(results, cbd)
	}

	return results, rows.Err()
}

func (r *ClickRepository) getTopReferrers(ctx context.Context, linkID int64, limit int) ([]domain.ReferrerStats, error) {
	query := `
		SELECT COALESCE(referer, 'Direct') AS referer, COUNT(*) AS count
		FROM clicks
		WHERE link_id = $1
		GROUP BY referer
		ORDER BY count DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, linkID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ReferrerStats
	for rows.Next() {
		var rs domain.ReferrerStats
		if err := rows.Scan(&rs.Referer, &rs.Count); err != nil {
			return nil, err
		}
		results = append(results, rs)
	}

	return results, rows.Err()
}

// getBreakdown aggregates one categorical click column. The column name is
// taken from a fixed caller-supplied set, never from user input.
func (r *ClickRepository) getBreakdown(ctx context.Context, linkID int64, column string) ([]domain.LabelCount, error) {
	query := `
		SELECT ` + column + `, COUNT(*) AS count
		FROM clicks
		WHERE link_id = $1
		GROUP BY ` + column + `
		ORDER BY count DESC
	`

	rows, err := r.db.Query(ctx, query, linkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.LabelCount
	for rows.Next() {
		var lc domain.LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, err
		}
		results = append(results, lc)
	}

	return results, rows.Err()
}

func (r *ClickRepository) GetHistory(ctx context.Context, linkID int64, page, pageSize int) (*domain.ClickHistory, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM clicks WHERE link_id = $1`
	if err := r.db.QueryRow(ctx, countQuery, linkID).Scan(&total); err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	query := `
		SELECT id, link_id, ip_address, country, city, user_agent, referer,
			device, browser, os, viewport_width, viewport_height, created_at
		FROM clicks
		WHERE link_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, linkID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clicks []domain.Click
	for rows.Next() {
		var click domain.Click
		err := rows.Scan(
			&click.ID,
			&click.LinkID,
			&click.IPAddress,
			&click.Country,
			&click.City,
			&click.UserAgent,
			&click.Referer,
			&click.Device,
			&click.Browser,
			&click.OS,
			&click.ViewportWidth,
			&click.ViewportHeight,
			&click.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		clicks = append(clicks, click)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &domain.ClickHistory{
		Clicks:     clicks,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, rows.Err()
}
