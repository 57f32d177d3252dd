package model

import (
	"github.com/tripal/tripal-blast/pkg/common"
	"gorm.io/datatypes"
)

const (
	AnonymousUID int64 = 0
	AdminUID     int64 = 1
)

type User struct {
	BaseModel
	Name   string         `gorm:"type:varchar(60);not null;uniqueIndex" json:"name"`
	Mail   string         `gorm:"type:varchar(254)" json:"mail"`
	Role   common.Role    `gorm:"type:varchar(32);not null" json:"role"`
	Status bool           `gorm:"not null" json:"status"`
	Data   datatypes.JSON `json:"data,omitempty"`
}

func (*User) TableName() string { return "users" }

// AnonymousUser is the unauthenticated actor. It is never persisted.
func AnonymousUser() *User {
	return &User{Role: common.Anonymous}
}

func (u *User) IsAnonymous() bool {
	return u == nil || u.ID == AnonymousUID
}

func (u *User) Can(p common.Perm) bool {
	if u == nil {
		return common.Anonymous.Has(p)
	}
	return u.Role.Has(p)
}
