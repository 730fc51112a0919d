package ports

import (
	"context"

	"logging-web-server/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
	FindByName(ctx context.Context, name string) (*model.User, error)
	UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error
	SetAdmin(ctx context.Context, uuid string, isAdmin bool) error
	ListUsers(ctx context.Context, cursor string, limit int) ([]*model.User, string, error)
}

type UserService interface {
	Register(ctx context.Context, name, password, passwordConfirm string) (*model.User, error)
	ChangePassword(ctx context.Context, userUUID, oldPassword, newPassword, newPasswordConfirm string) error
	ListUsers(ctx context.Context, cursor string, limit int) ([]*model.User, string, error)
}
