package ads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/internal/dto"
	"github.com/adearn/adearn/internal/service/adservice"
	"github.com/adearn/adearn/internal/service/ledgerservice"
	"github.com/adearn/adearn/pkg/auth"
)

func NewMock(t *testing.T) (*AdsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func viewerCtx(adID string) context.Context {
	ctx := context.WithValue(context.Background(), auth.AccountIDKey, 1)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("adID", adID)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func TestListAdsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func(ctx context.Context)
		expectedCode int
		expectedBody []dto.AdResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					ListAds(ctx).
					Return([]domain.Ad{
						{ID: 1, Title: "Modern Web Solutions", Reward: 10, Duration: 15, URL: "https://example.com"},
						{ID: 2, Title: "Cloud Backup", Reward: 25, Duration: 30, URL: "https://example.org"},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.AdResponseDTO{
				{ID: 1, Title: "Modern Web Solutions", Reward: 10, Duration: 15, URL: "https://example.com"},
				{ID: 2, Title: "Cloud Backup", Reward: 25, Duration: 30, URL: "https://example.org"},
			},
		},
		{
			name: "Internal server error",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					ListAds(ctx).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.WithValue(context.Background(), auth.AccountIDKey, 1)
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodGet, "/ads", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.ListAds(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.AdResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestCompleteViewHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		adID          string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
		expectedBody  dto.AdViewResponseDTO
	}{
		{
			name: "Successful view",
			adID: "3",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					CompleteView(ctx, 1, 3).
					Return(int64(10), &domain.Account{ID: 1, Points: 110}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.AdViewResponseDTO{Reward: 10, Points: 110},
		},
		{
			name:          "Invalid ad id",
			adID:          "abc",
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid ad id",
		},
		{
			name: "Ad not found",
			adID: "999",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					CompleteView(ctx, 1, 999).
					Return(int64(0), nil, adservice.ErrAdNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: adservice.ErrAdNotFound.Error(),
		},
		{
			name: "Blocked account",
			adID: "3",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					CompleteView(ctx, 1, 3).
					Return(int64(0), nil, adservice.ErrAccountBlocked)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: adservice.ErrAccountBlocked.Error(),
		},
		{
			name: "Account not found",
			adID: "3",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					CompleteView(ctx, 1, 3).
					Return(int64(0), nil, ledgerservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: ledgerservice.ErrAccountNotFound.Error(),
		},
		{
			name: "Internal server error",
			adID: "3",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					CompleteView(ctx, 1, 3).
					Return(int64(0), nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := viewerCtx(tt.adID)
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodPost, "/ads/"+tt.adID+"/complete", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.CompleteView(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.AdViewResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
