package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/truongn999/ShortLink/internal/domain"
	"github.com/truongn999/ShortLink/internal/geo"
)

type MockGeoLookup struct {
	mock.Mock
}

func (m *MockGeoLookup) Lookup(ctx context.Context, ip string) (*geo.Result, error) {
	args := m.Called(ctx, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Result), args.Error(1)
}

type MockRedirectTracker struct {
	mock.Mock
}

func (m *MockRedirectTracker) Track(ctx context.Context, sessionID, shortCode string, visit domain.Visit) domain.RedirectOutcome {
	args := m.Called(ctx, sessionID, shortCode, visit)
	return args.Get(0).(domain.RedirectOutcome)
}

type MockLinkService struct {
	mock.Mock
}

func (m *MockLinkService) Create(ctx context.Context, req *domain.CreateLinkRequest) (*domain.Link, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

func (m *MockLinkService) List(ctx context.Context, userID int64, page, pageSize int) (*domain.LinkList, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkList), args.Error(1)
}

func (m *MockLinkService) SetActive(ctx context.Context, linkID int64, active bool, shortCode string) error {
	args := m.Called(ctx, linkID, active, shortCode)
	return args.Error(0)
}

func (m *MockLinkService) Delete(ctx context.Context, linkID int64, shortCode string) error {
	args := m.Called(ctx, linkID, shortCode)
	return args.Error(0)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetAnalytics(ctx context.Context, shortCode string, days int) (*domain.LinkAnalytics, error) {
	args := m.Called(ctx, shortCode, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkAnalytics), args.Error(1)
}

func (m *MockAnalyticsService) GetClickHistory(ctx context.Context, shortCode string, page, pageSize int) (*domain.ClickHistory, error) {
	args := m.Called(ctx, shortCode, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClickHistory), args.Error(1)
}
