package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/internal/dto"
	"github.com/adearn/adearn/internal/service/accountservice"
	"github.com/adearn/adearn/pkg/auth"
)

func NewMock(t *testing.T) (*ProfileHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, "http://localhost:8080")
	return handler, service
}

func TestGetProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func(ctx context.Context)
		expectedCode int
		expectedBody dto.ProfileResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					GetProfile(ctx, 1).
					Return(&domain.Account{
						ID:            1,
						Name:          "Alice",
						Email:         "alice@example.com",
						WalletAddress: "wallet-abc-123",
						Points:        150,
						Referrals:     3,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ProfileResponseDTO{
				ID:            1,
				Name:          "Alice",
				Email:         "alice@example.com",
				WalletAddress: "wallet-abc-123",
				Points:        150,
				Referrals:     3,
			},
		},
		{
			name: "Internal server error",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					GetProfile(ctx, 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.WithValue(context.Background(), auth.AccountIDKey, 1)
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodGet, "/profile", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.GetProfile(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ProfileResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful update",
			body: `{"name":"Alice","wallet_address":"wallet-abc-123"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					UpdateProfile(ctx, 1, "Alice", "wallet-abc-123").
					Return(&domain.Account{
						ID:            1,
						Name:          "Alice",
						WalletAddress: "wallet-abc-123",
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"name":invalid}`,
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing name",
			body:          `{"wallet_address":"wallet-abc-123"}`,
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Name is required",
		},
		{
			name: "Invalid wallet address",
			body: `{"name":"Alice","wallet_address":"no spaces allowed"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					UpdateProfile(ctx, 1, "Alice", "no spaces allowed").
					Return(nil, accountservice.ErrInvalidWalletAddress)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: accountservice.ErrInvalidWalletAddress.Error(),
		},
		{
			name: "Internal server error",
			body: `{"name":"Alice","wallet_address":"wallet-abc-123"}`,
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					UpdateProfile(ctx, 1, "Alice", "wallet-abc-123").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.WithValue(context.Background(), auth.AccountIDKey, 1)
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(tt.body))
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.UpdateProfile(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetReferralHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func(ctx context.Context)
		expectedCode int
		expectedBody dto.ReferralResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					GetProfile(ctx, 1).
					Return(&domain.Account{ID: 1, Referrals: 3}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ReferralResponseDTO{
				Code:      "1",
				Link:      "http://localhost:8080/?ref=1",
				Referrals: 3,
			},
		},
		{
			name: "Internal server error",
			prepareMock: func(ctx context.Context) {
				service.EXPECT().
					GetProfile(ctx, 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.WithValue(context.Background(), auth.AccountIDKey, 1)
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodGet, "/referral", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.GetReferral(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ReferralResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
