package repo

import (
	"context"

	"github.com/tripal/tripal-blast/pkg/repo/model"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, uid int64) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
}
