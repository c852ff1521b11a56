package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/truongn999/ShortLink/internal/domain"
)

type MockLinkRepository struct {
	mock.Mock
}

func (m *MockLinkRepository) Create(ctx context.Context, link *domain.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockLinkRepository) GetByShortCode(ctx context.Context, shortCode string) (*domain.Link, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *MockLinkRepository) RegisterClick(ctx context.Context, linkID int64) error {
	args := m.Called(ctx, linkID)
	return args.Error(0)
}

func (m *MockLinkRepository) SetActive(ctx context.Context, linkID int64, active bool) error {
	args := m.Called(ctx, linkID, active)
	return args.Error(0)
}

func (m *MockLinkRepository) Delete(ctx context.Context, linkID int64) error {
	args := m.Called(ctx, linkID)
	return args.Error(0)
}

func (m *MockLinkRepository) ListByUser(ctx context.Context, userID int64, page, pageSize int) (*domain.LinkList, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkList), args.Error(1)
}

type MockClickRepository struct {
	mock.Mock
}

func (m *MockClickRepository) Insert(ctx context.Context, click *domain.Click) error {
	args := m.Called(ctx, click)
	return args.Error(0)
}

func (m *MockClickRepository) GetAnalytics(ctx context.Context, linkID int64, days int) (*domain.LinkAnalytics, error) {
	args := m.Called(ctx, linkID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkAnalytics), args.Error(1)
}

func (m *MockClickRepository) GetHistory(ctx context.Context, linkID int64, page, pageSize int) (*domain.ClickHistory, error) {
	args := m.Called(ctx, linkID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClickHistory), args.Error(1)
}

type MockLinkCache struct {
	mock.Mock
}

func (m *MockLinkCache) Get(ctx context.Context, shortCode string) (*domain.Link, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *MockLinkCache) Set(ctx context.Context, link *domain.Link, ttl time.Duration) error {
	args := m.Called(ctx, link, ttl)
	return args.Error(0)
}

func (m *MockLinkCache) Invalidate(ctx context.Context, shortCode string) error {
	args := m.Called(ctx, shortCode)
	return args.Error(0)
}

type MockDedupStore struct {
	mock.Mock
}

func (m *MockDedupStore) Mark(ctx context.Context, sessionID, shortCode string) (bool, error) {
	args := m.Called(ctx, sessionID, shortCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockDedupStore) Seen(ctx context.Context, sessionID, shortCode string) (bool, error) {
	args := m.Called(ctx, sessionID, shortCode)
	return args.Bool(0), args.Error(1)
}
