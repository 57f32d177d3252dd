package blastdb

import (
	"context"

	"github.com/tripal/tripal-blast/pkg/common"
	"github.com/tripal/tripal-blast/pkg/repo/model"
)

type CreateReq struct {
	Title         string            `json:"title" binding:"required"`
	DBName        string            `json:"db_name"`
	DBPath        string            `json:"db_path" binding:"required"`
	DBType        model.DBType      `json:"db_type" binding:"required"`
	LinkoutType   model.LinkoutType `json:"linkout_type"`
	LinkoutRegex  string            `json:"linkout_regex"`
	LinkoutDBID   *int64            `json:"linkout_db_id"`
	CvitjsEnabled bool              `json:"cvitjs_enabled"`
	Promote       bool              `json:"promote"`
	Unpublished   bool              `json:"unpublished"`
}

type ListReq struct {
	common.PageReq
	DBType model.DBType `json:"db_type" form:"db_type"`
}

type NodeReq struct {
	NID int64 `uri:"nid" binding:"required"`
}

type Service interface {
	// Prepare fills the blastdb content type defaults.
	Prepare(ctx context.Context, node *model.Node)
	// Submit normalizes and validates node in place.
	Submit(ctx context.Context, node *model.Node) error
	// Save persists a submitted node as the context actor.
	Save(ctx context.Context, node *model.Node) error
	Create(ctx context.Context, req *CreateReq) (*model.Node, error)
	Get(ctx context.Context, nid int64) (*model.Node, error)
	List(ctx context.Context, req *ListReq) (*common.PageResp[[]*model.Node], error)
	Delete(ctx context.Context, nid int64) error
}
