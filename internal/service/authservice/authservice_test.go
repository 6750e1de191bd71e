package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, accountRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		referralCode  string
		prepareMock   func()
		expectedError error
		checkAccount  func(t *testing.T, acc *domain.Account)
	}{
		{
			name:  "Successful registration",
			email: "alice@example.com",
			prepareMock: func() {
				accountRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				accountRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
					acc.ID = 1
					return acc, nil
				})
			},
			checkAccount: func(t *testing.T, acc *domain.Account) {
				assert.Equal(t, 1, acc.ID)
				assert.Equal(t, "hashedpassword", acc.PasswordHash)
				assert.Equal(t, domain.RoleUser, acc.Role)
				assert.Equal(t, domain.StatusActive, acc.Status)
				assert.Nil(t, acc.ReferredBy)
			},
		},
		{
			name:         "Registration with valid referral code",
			email:        "bob@example.com",
			referralCode: "7",
			prepareMock: func() {
				accountRepo.EXPECT().FindByEmail(context.Background(), "bob@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				accountRepo.EXPECT().FindByID(context.Background(), 7).Return(&domain.Account{ID: 7}, nil)
				accountRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
					acc.ID = 2
					return acc, nil
				})
				accountRepo.EXPECT().IncrementReferrals(context.Background(), 7).Return(true, nil)
			},
			checkAccount: func(t *testing.T, acc *domain.Account) {
				assert.NotNil(t, acc.ReferredBy)
				assert.Equal(t, 7, *acc.ReferredBy)
			},
		},
		{
			name:         "Unknown referral code is ignored",
			email:        "carol@example.com",
			referralCode: "999",
			prepareMock: func() {
				accountRepo.EXPECT().FindByEmail(context.Background(), "carol@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				accountRepo.EXPECT().FindByID(context.Background(), 999).Return(nil, nil)
				accountRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
					acc.ID = 3
					return acc, nil
				})
			},
			checkAccount: func(t *testing.T, acc *domain.Account) {
				assert.Nil(t, acc.ReferredBy)
			},
		},
		{
			name:         "Malformed referral code is ignored",
			email:        "dave@example.com",
			referralCode: "not-a-number",
			prepareMock: func() {
				accountRepo.EXPECT().FindByEmail(context.Background(), "dave@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				accountRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
					acc.ID = 4
					return acc, nil
				})
			},
			checkAccount: func(t *testing.T, acc *domain.Account) {
				assert.Nil(t, acc.ReferredBy)
			},
		},
		{
			name:  "Email already taken",
			email: "alice@example.com",
			prepareMock: func() {
				accountRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(&domain.Account{Email: "alice@example.com"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:  "Error finding account",
			email: "alice@example.com",
			prepareMock: func() {
				accountRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:  "Error hashing password",
			email: "alice@example.com",
			prepareMock: func() {
				accountRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			acc, err := service.Register(context.Background(), "Test User", tt.email, "testpassword", tt.referralCode)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				if tt.checkAccount != nil {
					tt.checkAccount(t, acc)
				}
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, accountRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			email:    "alice@example.com",
			password: "testpassword",
			prepareMock: func() {
				accountRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(&domain.Account{
					ID:           1,
					Email:        "alice@example.com",
					PasswordHash: "hashedpassword",
					Status:       domain.StatusActive,
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
		},
		{
			name:     "Unknown email",
			email:    "nobody@example.com",
			password: "testpassword",
			prepareMock: func() {
				accountRepo.EXPECT().FindByEmail(context.Background(), "nobody@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			email:    "alice@example.com",
			password: "wrongpassword",
			prepareMock: func() {
				accountRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(&domain.Account{
					ID:           1,
					PasswordHash: "hashedpassword",
					Status:       domain.StatusActive,
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Blocked account",
			email:    "blocked@example.com",
			password: "testpassword",
			prepareMock: func() {
				accountRepo.EXPECT().FindByEmail(context.Background(), "blocked@example.com").Return(&domain.Account{
					ID:           2,
					PasswordHash: "hashedpassword",
					Status:       domain.StatusBlocked,
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedError: ErrAccountBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			acc, err := service.Authenticate(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, acc)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	service, accountRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful password change",
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.Account{
					ID:           1,
					PasswordHash: "oldhash",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("oldhash", "oldpassword").Return(true)
				passwordHasher.EXPECT().HashPassword("newpassword").Return("newhash", nil)
				accountRepo.EXPECT().UpdatePassword(context.Background(), 1, "newhash").Return(nil)
			},
		},
		{
			name: "Wrong old password",
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.Account{
					ID:           1,
					PasswordHash: "oldhash",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("oldhash", "oldpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Account not found",
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(context.Background(), 1).Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Error updating password",
			prepareMock: func() {
				accountRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.Account{
					ID:           1,
					PasswordHash: "oldhash",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("oldhash", "oldpassword").Return(true)
				passwordHasher.EXPECT().HashPassword("newpassword").Return("newhash", nil)
				accountRepo.EXPECT().UpdatePassword(context.Background(), 1, "newhash").Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.ChangePassword(context.Background(), 1, "oldpassword", "newpassword")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT(1, domain.RoleUser, gomock.Any()).Return("token123", nil)
	token, err := service.GenerateToken(1, domain.RoleUser)
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)

	jwtService.EXPECT().GenerateJWT(1, domain.RoleUser, gomock.Any()).Return("", errors.New("sign error"))
	_, err = service.GenerateToken(1, domain.RoleUser)
	assert.Error(t, err)
}
