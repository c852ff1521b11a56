package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/truongn999/ShortLink/internal/domain"
)

type LinkRepository struct {
	db *pgxpool.Pool
}

func NewLinkRepository(db *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Create(ctx context.Context, link *domain.Link) error {
	query := `
		INSERT INTO links (short_code, original_url, title, user_id, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.db.QueryRow(ctx, query,
		link.ShortCode,
		link.OriginalURL,
		link.Title,
		link.UserID,
		link.IsActive,
	).Scan(&link.ID, &link.CreatedAt)
}

// GetByShortCode matches the code verbatim and returns the row regardless
// of is_active, so the caller can tell an inactive link from a missing one.
func (r *LinkRepository) GetByShortCode(ctx context.Context, shortCode string) (*domain.Link, error) {
	var link domain.Link

	query := `
		SELECT id, short_code, original_url, title, is_active, clicks, last_clicked_at, user_id, created_at
		FROM links
		WHERE short_code = $1
	`

	err := r.db.QueryRow(ctx, query, shortCode).Scan(
		&link.ID,
		&link.ShortCode,
		&link.OriginalURL,
		&link.Title,
		&link.IsActive,
		&link.Clicks,
		&link.LastClickedAt,
		&link.UserID,
		&link.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &link, nil
}

// RegisterClick bumps the aggregate counter and touches last_clicked_at in
// one statement. The increment happens in SQL so concurrent visitors never
// lose updates.
func (r *LinkRepository) RegisterClick(ctx context.Context, linkID int64) error {
	query := `
		UPDATE links
		SET clicks = clicks + 1, last_clicked_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query, linkID)
	return err
}

func (r *LinkRepository) SetActive(ctx context.Context, linkID int64, active bool) error {
	query := `UPDATE links SET is_active = $2 WHERE id = $1`

	_, err := r.db.Exec(ctx, query, linkID, active)
	return err
}

func (r *LinkRepository) Delete(ctx context.Context, linkID int64) error {
	query := `DELETE FROM links WHERE id = $1`

	_, err := r.db.Exec(ctx, query, linkID)
	return err
}

func (r *LinkRepository) ListByUser(ctx context.Context, userID int64, page, pageSize int) (*domain.LinkList, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM links WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	query := `
		SELECT id, short_code, original_url, title, is_active, clicks, last_clicked_at, user_id, created_at
		FROM links
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		var link domain.Link
		err := rows.Scan(
			&link.ID,
			&link.ShortCode,
			&link.OriginalURL,
			&link.Title,
			&link.IsActive,
			&link.Clicks,
			&link.LastClickedAt,
			&link.UserID,
			&link.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return &domain.LinkList{
		Links:    links,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, rows.Err()
}
