package user

import (
	"context"
	"errors"

	"github.com/tripal/tripal-blast/pkg/common/code"
	"github.com/tripal/tripal-blast/pkg/middleware/db"
	"github.com/tripal/tripal-blast/pkg/repo"
	"github.com/tripal/tripal-blast/pkg/repo/model"
	"gorm.io/gorm"
)

type userImpl struct {
	*db.Datastore
}

func New(ds *db.Datastore) repo.UserRepo {
	return &userImpl{Datastore: ds}
}

func (u *userImpl) GetUserByID(ctx context.Context, uid int64) (*model.User, error) {
	user := &model.User{}
	err := u.DBWithContext(ctx).Where("id = ?", uid).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.UserNotFound
	}
	if err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return user, nil
}

func (u *userImpl) CreateUser(ctx context.Context, user *model.User) error {
	if err := u.DBWithContext(ctx).Create(user).Error; err != nil {
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}
