package node

import (
	"context"
	"errors"

	"github.com/tripal/tripal-blast/pkg/common/code"
	"github.com/tripal/tripal-blast/pkg/middleware/db"
	"github.com/tripal/tripal-blast/pkg/middleware/logger"
	"github.com/tripal/tripal-blast/pkg/repo"
	"github.com/tripal/tripal-blast/pkg/repo/model"
	"gorm.io/gorm"
)

type nodeImpl struct {
	*db.Datastore
}

func New(ds *db.Datastore) repo.NodeRepo {
	return &nodeImpl{Datastore: ds}
}

func (n *nodeImpl) CreateNode(ctx context.Context, node *model.Node) error {
	err := n.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit("BlastDB").Create(node).Error; err != nil {
			return err
		}
		if node.BlastDB == nil {
			return nil
		}
		node.BlastDB.NID = node.ID
		return tx.Create(node.BlastDB).Error
	})
	if err != nil {
		node.ID = 0
		if node.BlastDB != nil {
			node.BlastDB.NID = 0
		}
		logger.Errorf(ctx, "CreateNode err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (n *nodeImpl) GetNode(ctx context.Context, nid int64) (*model.Node, error) {
	node := &model.Node{}
	err := n.DBWithContext(ctx).Preload("BlastDB").Where("id = ?", nid).First(node).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.RecordNotFound
	}
	if err != nil {
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return node, nil
}

func (n *nodeImpl) ListNodes(ctx context.Context, q repo.NodeQuery) ([]*model.Node, int64, error) {
	d := n.DBWithContext(ctx).Model(&model.Node{})
	if q.Type != "" {
		d = d.Where("nodes.type = ?", q.Type)
	}
	if q.DBType != nil {
		d = d.Where("EXISTS (SELECT 1 FROM blastdb WHERE blastdb.nid = nodes.id AND blastdb.db_dbtype = ?)", *q.DBType)
	}
	d = d.Session(&gorm.Session{})

	var total int64
	if err := d.Count(&total).Error; err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}

	if q.Limit == 0 {
		q.Limit = 20
	}
	nodes := make([]*model.Node, 0, q.Limit)
	err := d.Preload("BlastDB").Order("nodes.id DESC").Offset(q.Offset).Limit(q.Limit).Find(&nodes).Error
	if err != nil {
		return nil, 0, code.QueryRecordErr.WithErr(err)
	}
	return nodes, total, nil
}

func (n *nodeImpl) DeleteNode(ctx context.Context, nid int64) error {
	var affected int64
	err := n.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("nid = ?", nid).Delete(&model.BlastDB{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", nid).Delete(&model.Node{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		logger.Errorf(ctx, "DeleteNode err: %+v", err)
		return code.DeleteDataErr.WithErr(err)
	}
	if affected == 0 {
		return code.RecordNotFound
	}
	return nil
}
