package application

import (
	"testing"

	authmocks "github.com/itsnaruto045-hub/EBONZ/gen/mocks/auth"
	jwtmocks "github.com/itsnaruto045-hub/EBONZ/gen/mocks/jwt"
	"github.com/golang/mock/gomock"
	"github.com/itsnaruto045-hub/EBONZ/internal/auth/domain"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key"

func TestAuthCase_Register(t *testing.T) {
	t.Parallel()

	type deps struct {
		usersRepository *authmocks.MockUsersRepository
		passwordHasher  *authmocks.MockPasswordHasher
		tokenIssuer     *jwtmocks.MockTokenIssuer
	}

	type testCase struct {
		name     string
		username string
		password string

		prepareFn func(t *testing.T, d *deps)

		expectedRole string
		expectedErr  error
	}

	tests := []testCase{
		{
			name:     "first account becomes admin",
			username: "admin",
			password: "sup3r-secret",
			prepareFn: func(t *testing.T, d *deps) {
				d.usersRepository.EXPECT().CountUsers(gomock.Any()).
					Return(0, nil)
				d.passwordHasher.EXPECT().HashPassword("sup3r-secret").
					Return("hashed", nil)
				d.usersRepository.EXPECT().CreateUser(gomock.Any(), "admin", "hashed", domain.RoleAdmin).
					Return(domain.UserInfo{ID: "u1", Username: "admin", Role: domain.RoleAdmin}, nil)
			},
			expectedRole: domain.RoleAdmin,
			expectedErr:  nil,
		},
		{
			name:     "later accounts get user role",
			username: "alice",
			password: "sup3r-secret",
			prepareFn: func(t *testing.T, d *deps) {
				d.usersRepository.EXPECT().CountUsers(gomock.Any()).
					Return(1, nil)
				d.passwordHasher.EXPECT().HashPassword("sup3r-secret").
					Return("hashed", nil)
				d.usersRepository.EXPECT().CreateUser(gomock.Any(), "alice", "hashed", domain.RoleUser).
					Return(domain.UserInfo{ID: "u2", Username: "alice", Role: domain.RoleUser}, nil)
			},
			expectedRole: domain.RoleUser,
			expectedErr:  nil,
		},
		{
			name:     "username taken",
			username: "alice",
			password: "sup3r-secret",
			prepareFn: func(t *testing.T, d *deps) {
				d.usersRepository.EXPECT().CountUsers(gomock.Any()).
					Return(1, nil)
				d.passwordHasher.EXPECT().HashPassword("sup3r-secret").
					Return("hashed", nil)
				d.usersRepository.EXPECT().CreateUser(gomock.Any(), "alice", "hashed", domain.RoleUser).
					Return(domain.UserInfo{}, &domain.UsernameTakenError{Msg: "username alice is taken"})
			},
			expectedErr: &domain.UsernameTakenError{},
		},
		{
			name:     "hashing error",
			username: "alice",
			password: "sup3r-secret",
			prepareFn: func(t *testing.T, d *deps) {
				d.usersRepository.EXPECT().CountUsers(gomock.Any()).
					Return(1, nil)
				d.passwordHasher.EXPECT().HashPassword("sup3r-secret").
					Return("", assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := &deps{
				usersRepository: authmocks.NewMockUsersRepository(ctrl),
				passwordHasher:  authmocks.NewMockPasswordHasher(ctrl),
				tokenIssuer:     jwtmocks.NewMockTokenIssuer(ctrl),
			}

			tt.prepareFn(t, d)

			authCase := NewAuthCase(d.usersRepository, d.passwordHasher, d.tokenIssuer, testSecret)
			userInfo, err := authCase.Register(t.Context(), tt.username, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, userInfo.Role)
			}
		})
	}
}

func TestAuthCase_Login(t *testing.T) {
	t.Parallel()

	storedUser := domain.UserInfo{ID: "u2", Username: "alice", PasswordHash: "hashed", Role: domain.RoleUser}

	type deps struct {
		usersRepository *authmocks.MockUsersRepository
		passwordHasher  *authmocks.MockPasswordHasher
		tokenIssuer     *jwtmocks.MockTokenIssuer
	}

	type testCase struct {
		name     string
		username string
		password string

		prepareFn func(t *testing.T, d *deps)

		expectedToken string
		expectedErr   error
	}

	tests := []testCase{
		{
			name:     "successful login",
			username: "alice",
			password: "sup3r-secret",
			prepareFn: func(t *testing.T, d *deps) {
				d.usersRepository.EXPECT().TryGetUserInfo(gomock.Any(), "alice").
					Return(storedUser, true, nil)
				d.passwordHasher.EXPECT().VerifyPassword("sup3r-secret", "hashed").
					Return(true, nil)
				d.tokenIssuer.EXPECT().IssueToken([]byte(testSecret), "u2", "alice", domain.RoleUser, tokenTimeLimit).
					Return("signed-token", nil)
			},
			expectedToken: "signed-token",
			expectedErr:   nil,
		},
		{
			name:     "unknown username",
			username: "bob",
			password: "sup3r-secret",
			prepareFn: func(t *testing.T, d *deps) {
				d.usersRepository.EXPECT().TryGetUserInfo(gomock.Any(), "bob").
					Return(domain.UserInfo{}, false, nil)
			},
			expectedErr: &domain.CredentialsMismatchError{},
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			prepareFn: func(t *testing.T, d *deps) {
				d.usersRepository.EXPECT().TryGetUserInfo(gomock.Any(), "alice").
					Return(storedUser, true, nil)
				d.passwordHasher.EXPECT().VerifyPassword("wrong", "hashed").
					Return(false, nil)
			},
			expectedErr: &domain.CredentialsMismatchError{},
		},
		{
			name:     "repository error",
			username: "alice",
			password: "sup3r-secret",
			prepareFn: func(t *testing.T, d *deps) {
				d.usersRepository.EXPECT().TryGetUserInfo(gomock.Any(), "alice").
					Return(domain.UserInfo{}, false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := &deps{
				usersRepository: authmocks.NewMockUsersRepository(ctrl),
				passwordHasher:  authmocks.NewMockPasswordHasher(ctrl),
				tokenIssuer:     jwtmocks.NewMockTokenIssuer(ctrl),
			}

			tt.prepareFn(t, d)

			authCase := NewAuthCase(d.usersRepository, d.passwordHasher, d.tokenIssuer, testSecret)
			token, userInfo, err := authCase.Login(t.Context(), tt.username, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
				assert.Equal(t, storedUser, userInfo)
			}
		})
	}
}
