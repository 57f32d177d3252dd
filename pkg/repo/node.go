package repo

import (
	"context"

	"github.com/tripal/tripal-blast/pkg/repo/model"
)

type NodeQuery struct {
	Type   model.NodeType
	DBType *model.DBType
	Offset int
	Limit  int
}

type NodeRepo interface {
	// CreateNode inserts the node and its blastdb row, assigning ID and UUID in place.
	CreateNode(ctx context.Context, node *model.Node) error
	GetNode(ctx context.Context, nid int64) (*model.Node, error)
	ListNodes(ctx context.Context, q NodeQuery) ([]*model.Node, int64, error)
	DeleteNode(ctx context.Context, nid int64) error
}
