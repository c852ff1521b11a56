package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/truongn999/ShortLink/internal/domain"
	"github.com/truongn999/ShortLink/internal/service"
	"github.com/truongn999/ShortLink/tests/mocks"
)

func setupLinkRouter(mockService *mocks.MockLinkService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewLinkHandler(mockService, "http://localhost:8080")
	router.POST("/api/links", h.Create)
	router.PATCH("/api/links/:id/active", h.SetActive)
	router.DELETE("/api/links/:id", h.Delete)
	return router
}

func TestCreateLink_Success(t *testing.T) {
	mockService := new(mocks.MockLinkService)
	router := setupLinkRouter(mockService)

	mockService.On("Create", mock.Anything, mock.MatchedBy(func(req *domain.CreateLinkRequest) bool {
		return req.OriginalURL == "shopee.vn/x"
	})).Return(&domain.Link{
		ID:          1,
		ShortCode:   "abc1234",
		OriginalURL: "https://shopee.vn/x",
		IsActive:    true,
	}, nil).Once()

	body := `{"url": "shopee.vn/x"}`
	req := httptest.NewRequest("POST", "/api/links", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ShortURL    string `json:"short_url"`
			ShortCode   string `json:"short_code"`
			OriginalURL string `json:"original_url"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "http://localhost:8080/abc1234", resp.Data.ShortURL)
	assert.Equal(t, "https://shopee.vn/x", resp.Data.OriginalURL)
	mockService.AssertExpectations(t)
}

func TestCreateLink_MissingURL(t *testing.T) {
	mockService := new(mocks.MockLinkService)
	router := setupLinkRouter(mockService)

	req := httptest.NewRequest("POST", "/api/links", strings.NewReader(`{"custom_alias": "mylink"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestCreateLink_ReservedAlias(t *testing.T) {
	mockService := new(mocks.MockLinkService)
	router := setupLinkRouter(mockService)

	body := `{"url": "https://example.com", "custom_alias": "healthz"}`
	req := httptest.NewRequest("POST", "/api/links", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestCreateLink_AliasTaken(t *testing.T) {
	mockService := new(mocks.MockLinkService)
	router := setupLinkRouter(mockService)

	mockService.On("Create", mock.Anything, mock.Anything).
		Return(nil, service.ErrAliasTaken).Once()

	body := `{"url": "https://example.com", "custom_alias": "existing"}`
	req := httptest.NewRequest("POST", "/api/links", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestSetActive_Success(t *testing.T) {
	mockService := new(mocks.MockLinkService)
	router := setupLinkRouter(mockService)

	mockService.On("SetActive", mock.Anything, int64(42), false, "promo1").Return(nil).Once()

	body := `{"is_active": false, "short_code": "promo1"}`
	req := httptest.NewRequest("PATCH", "/api/links/42/active", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestSetActive_InvalidID(t *testing.T) {
	mockService := new(mocks.MockLinkService)
	router := setupLinkRouter(mockService)

	req := httptest.NewRequest("PATCH", "/api/links/abc/active", strings.NewReader(`{"is_active": false}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "SetActive")
}

func TestDeleteLink_Success(t *testing.T) {
	mockService := new(mocks.MockLinkService)
	router := setupLinkRouter(mockService)

	mockService.On("Delete", mock.Anything, int64(42), "promo1").Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/api/links/42?short_code=promo1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
