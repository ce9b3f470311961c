package application

import (
	"context"
	"time"

	"github.com/itsnaruto045-hub/EBONZ/internal/auth/domain"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/jwt"
)

const (
	tokenTimeLimit = 24 * time.Hour
)

type AuthCase struct {
	usersRepository domain.UsersRepository
	passwordHasher  domain.PasswordHasher
	tokenIssuer     jwt.TokenIssuer
	secretKey       []byte
}

func NewAuthCase(
	usersRepository domain.UsersRepository,
	passwordHasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
	secretKey string,
) *AuthCase {
	return &AuthCase{
		usersRepository: usersRepository,
		passwordHasher:  passwordHasher,
		tokenIssuer:     tokenIssuer,
		secretKey:       []byte(secretKey),
	}
}

// Register creates an account with a zero balance. The very first account gets
// the ADMIN role so a fresh deployment can be administered without seed data.
func (a *AuthCase) Register(ctx context.Context, username, password string) (domain.UserInfo, error) {
	count, err := a.usersRepository.CountUsers(ctx)
	if err != nil {
		return domain.UserInfo{}, err
	}

	role := domain.RoleUser
	if count == 0 {
		role = domain.RoleAdmin
	}

	hashedPassword, err := a.passwordHasher.HashPassword(password)
	if err != nil {
		return domain.UserInfo{}, err
	}

	return a.usersRepository.CreateUser(ctx, username, hashedPassword, role)
}

func (a *AuthCase) Login(ctx context.Context, username, password string) (string, domain.UserInfo, error) {
	userInfo, found, err := a.usersRepository.TryGetUserInfo(ctx, username)
	if err != nil {
		return "", domain.UserInfo{}, err
	}

	if !found {
		return "", domain.UserInfo{}, &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
	}

	valid, err := a.passwordHasher.VerifyPassword(password, userInfo.PasswordHash)
	if err != nil {
		return "", domain.UserInfo{}, err
	}

	if !valid {
		return "", domain.UserInfo{}, &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
	}

	token, err := a.tokenIssuer.IssueToken(a.secretKey, userInfo.ID, userInfo.Username, userInfo.Role, tokenTimeLimit)
	if err != nil {
		return "", domain.UserInfo{}, err
	}

	return token, userInfo, nil
}
