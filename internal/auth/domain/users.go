package domain

import "context"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type UserInfo struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
}

type UsersRepository interface {
	CreateUser(ctx context.Context, username, hashedPassword, role string) (UserInfo, error)
	TryGetUserInfo(ctx context.Context, username string) (UserInfo, bool, error)
	CountUsers(ctx context.Context) (int, error)
}
