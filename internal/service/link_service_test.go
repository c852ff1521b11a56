package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/truongn999/ShortLink/internal/domain"
	"github.com/truongn999/ShortLink/pkg/generator"
	"github.com/truongn999/ShortLink/tests/mocks"
)

func newTestLinkService() (*LinkService, *mocks.MockLinkRepository, *mocks.MockClickRepository, *mocks.MockLinkCache) {
	mockRepo := new(mocks.MockLinkRepository)
	mockClicks := new(mocks.MockClickRepository)
	mockCache := new(mocks.MockLinkCache)
	return NewLinkService(mockRepo, mockClicks, mockCache), mockRepo, mockClicks, mockCache
}

func TestCreate_GeneratedCode(t *testing.T) {
	svc, mockRepo, _, _ := newTestLinkService()
	ctx := context.Background()

	req := &domain.CreateLinkRequest{OriginalURL: "https://example.com"}

	mockRepo.On("Create", ctx, mock.MatchedBy(func(link *domain.Link) bool {
		return link.OriginalURL == "https://example.com" &&
			len(link.ShortCode) == generator.CodeLength &&
			link.IsActive &&
			link.UserID == nil
	})).Return(nil).Once()

	link, err := svc.Create(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, link)
	assert.True(t, link.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestCreate_SchemeAutoPrepended(t *testing.T) {
	svc, mockRepo, _, _ := newTestLinkService()
	ctx := context.Background()

	req := &domain.CreateLinkRequest{OriginalURL: "shopee.vn/x"}

	mockRepo.On("Create", ctx, mock.MatchedBy(func(link *domain.Link) bool {
		return link.OriginalURL == "https://shopee.vn/x"
	})).Return(nil).Once()

	_, err := svc.Create(ctx, req)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCreate_CustomAlias(t *testing.T) {
	svc, mockRepo, _, _ := newTestLinkService()
	ctx := context.Background()

	userID := int64(7)
	req := &domain.CreateLinkRequest{
		OriginalURL: "https://example.com",
		CustomAlias: "mylink",
		Title:       "My link",
		UserID:      &userID,
	}

	mockRepo.On("Create", ctx, mock.MatchedBy(func(link *domain.Link) bool {
		return link.ShortCode == "mylink" &&
			link.Title == "My link" &&
			link.UserID != nil && *link.UserID == 7
	})).Return(nil).Once()

	link, err := svc.Create(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "mylink", link.ShortCode)
	mockRepo.AssertExpectations(t)
}

func TestCreate_RetryAfterCollision(t *testing.T) {
	svc, mockRepo, _, _ := newTestLinkService()
	ctx := context.Background()

	req := &domain.CreateLinkRequest{OriginalURL: "https://example.com"}

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "links_short_code_key"}

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Link")).Return(pgErr).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Link")).Return(nil).Once()

	link, err := svc.Create(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, link)
	mockRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestCreate_CustomAliasTaken(t *testing.T) {
	svc, mockRepo, _, _ := newTestLinkService()
	ctx := context.Background()

	req := &domain.CreateLinkRequest{
		OriginalURL: "https://example.com",
		CustomAlias: "existing",
	}

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "links_short_code_key"}

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Link")).Return(pgErr).Once()

	link, err := svc.Create(ctx, req)

	assert.ErrorIs(t, err, ErrAliasTaken)
	assert.Nil(t, link)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreate_FailAfterMaxRetries(t *testing.T) {
	svc, mockRepo, _, _ := newTestLinkService()
	ctx := context.Background()

	req := &domain.CreateLinkRequest{OriginalURL: "https://example.com"}

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "links_short_code_key"}

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Link")).Return(pgErr).Times(3)

	link, err := svc.Create(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, link)
	assert.Contains(t, err.Error(), "failed to generate short code after 3 retries")
}

func TestSetActive_InvalidatesCache(t *testing.T) {
	svc, mockRepo, _, mockCache := newTestLinkService()
	ctx := context.Background()

	mockRepo.On("SetActive", ctx, int64(42), false).Return(nil).Once()
	mockCache.On("Invalidate", ctx, "promo1").Return(nil).Once()

	err := svc.SetActive(ctx, 42, false, "promo1")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestSetActive_CacheFailureTolerated(t *testing.T) {
	svc, mockRepo, _, mockCache := newTestLinkService()
	ctx := context.Background()

	mockRepo.On("SetActive", ctx, int64(42), true).Return(nil).Once()
	mockCache.On("Invalidate", ctx, "promo1").Return(errors.New("redis down")).Once()

	err := svc.SetActive(ctx, 42, true, "promo1")

	assert.NoError(t, err, "cache invalidation failure must not fail the toggle")
}

func TestGetAnalytics_UnknownCode(t *testing.T) {
	svc, mockRepo, _, _ := newTestLinkService()
	ctx := context.Background()

	mockRepo.On("GetByShortCode", ctx, "ghost").Return(nil, pgx.ErrNoRows).Once()

	analytics, err := svc.GetAnalytics(ctx, "ghost", 30)

	assert.ErrorIs(t, err, ErrLinkNotFound)
	assert.Nil(t, analytics)
}

func TestGetClickHistory_Success(t *testing.T) {
	svc, mockRepo, mockClicks, _ := newTestLinkService()
	ctx := context.Background()

	link := &domain.Link{ID: 42, ShortCode: "promo1", IsActive: true}
	history := &domain.ClickHistory{Total: 3, Page: 1, PageSize: 20, TotalPages: 1}

	mockRepo.On("GetByShortCode", ctx, "promo1").Return(link, nil).Once()
	mockClicks.On("GetHistory", ctx, int64(42), 1, 20).Return(history, nil).Once()

	result, err := svc.GetClickHistory(ctx, "promo1", 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), result.Total)
	mockClicks.AssertExpectations(t)
}
