package blastdb

import (
	"context"
	"regexp"
	"strings"

	"github.com/tripal/tripal-blast/pkg/common"
	"github.com/tripal/tripal-blast/pkg/common/code"
	"github.com/tripal/tripal-blast/pkg/core/blastdb"
	"github.com/tripal/tripal-blast/pkg/core/notify"
	"github.com/tripal/tripal-blast/pkg/middleware/auth"
	"github.com/tripal/tripal-blast/pkg/middleware/logger"
	"github.com/tripal/tripal-blast/pkg/repo"
	"github.com/tripal/tripal-blast/pkg/repo/model"
)

type blastDBImpl struct {
	nodeStore repo.NodeRepo
	msgCenter notify.MsgCenter
}

// New builds the service. msgCenter may be nil, in which case no events are sent.
func New(nodeStore repo.NodeRepo, msgCenter notify.MsgCenter) blastdb.Service {
	return &blastDBImpl{
		nodeStore: nodeStore,
		msgCenter: msgCenter,
	}
}

func (b *blastDBImpl) Prepare(ctx context.Context, node *model.Node) {
	node.Type = model.BlastDBNodeType
	node.Status = true
	node.Promote = false
	node.Comment = false
	if node.Language == "" {
		node.Language = model.LanguageNone
	}
	if user := auth.GetCurrentUser(ctx); node.UID == 0 && user != nil {
		node.UID = user.ID
	}
}

func (b *blastDBImpl) Submit(ctx context.Context, node *model.Node) error {
	node.Title = strings.TrimSpace(node.Title)
	if node.Title == "" {
		return code.ParamErr.WithMsg("title is required")
	}
	if node.Type != model.BlastDBNodeType {
		return code.ParamErr.WithMsg("node type must be " + string(model.BlastDBNodeType))
	}
	db := node.BlastDB
	if db == nil {
		return code.ParamErr.WithMsg("blast database fields are required")
	}

	db.Name = strings.TrimSpace(db.Name)
	if db.Name == "" {
		db.Name = node.Title
	}
	db.Path = strings.TrimSpace(db.Path)
	if db.Path == "" {
		return code.ParamErr.WithMsg("db_path is required")
	}
	if !db.DBType.Valid() {
		return code.UnknownDBTypeErr.WithMsg(string(db.DBType))
	}
	if db.LinkoutType == "" {
		db.LinkoutType = model.LinkoutNone
	}
	if !db.LinkoutType.Valid() {
		return code.UnknownLinkoutTypeErr.WithMsg(string(db.LinkoutType))
	}
	if db.LinkoutRegex != "" {
		if _, err := regexp.Compile(db.LinkoutRegex); err != nil {
			return code.LinkoutRegexErr.WithErr(err)
		}
	}

	if node.Language == "" {
		node.Language = model.LanguageNone
	}
	if user := auth.GetCurrentUser(ctx); node.UID == 0 && user != nil {
		node.UID = user.ID
	}
	return nil
}

func (b *blastDBImpl) Save(ctx context.Context, node *model.Node) error {
	user := auth.GetCurrentUser(ctx)
	if !user.Can(common.Create) {
		return code.NoPermission
	}
	if err := b.nodeStore.CreateNode(ctx, node); err != nil {
		return err
	}
	logger.Infof(ctx, "blastdb node %d saved by user %d", node.ID, user.ID)
	b.broadcast(ctx, notify.BlastDBCreated, node, user)
	return nil
}

func (b *blastDBImpl) Create(ctx context.Context, req *blastdb.CreateReq) (*model.Node, error) {
	node := &model.Node{}
	b.Prepare(ctx, node)
	node.Title = req.Title
	node.Promote = req.Promote
	node.Status = !req.Unpublished
	node.BlastDB = &model.BlastDB{
		Name:          req.DBName,
		Path:          req.DBPath,
		DBType:        req.DBType,
		LinkoutType:   req.LinkoutType,
		LinkoutRegex:  req.LinkoutRegex,
		LinkoutDBID:   req.LinkoutDBID,
		CvitjsEnabled: req.CvitjsEnabled,
	}
	if err := b.Submit(ctx, node); err != nil {
		return nil, err
	}
	if err := b.Save(ctx, node); err != nil {
		return nil, err
	}
	return node, nil
}

func (b *blastDBImpl) Get(ctx context.Context, nid int64) (*model.Node, error) {
	node, err := b.nodeStore.GetNode(ctx, nid)
	if err != nil {
		return nil, err
	}
	if node.Type != model.BlastDBNodeType {
		return nil, code.RecordNotFound
	}
	return node, nil
}

func (b *blastDBImpl) List(ctx context.Context, req *blastdb.ListReq) (*common.PageResp[[]*model.Node], error) {
	req.Normalize()
	q := repo.NodeQuery{
		Type:   model.BlastDBNodeType,
		Offset: req.Offset(),
		Limit:  req.PageSize,
	}
	if req.DBType != "" {
		if !req.DBType.Valid() {
			return nil, code.UnknownDBTypeErr.WithMsg(string(req.DBType))
		}
		q.DBType = &req.DBType
	}
	nodes, total, err := b.nodeStore.ListNodes(ctx, q)
	if err != nil {
		return nil, err
	}
	return &common.PageResp[[]*model.Node]{
		Data:     nodes,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

func (b *blastDBImpl) Delete(ctx context.Context, nid int64) error {
	user := auth.GetCurrentUser(ctx)
	if user.IsAnonymous() {
		return code.UnLogin
	}
	node, err := b.Get(ctx, nid)
	if err != nil {
		return err
	}
	if !user.Can(common.Delete) && !(node.UID == user.ID && user.Can(common.Create)) {
		return code.NoPermission
	}
	if err := b.nodeStore.DeleteNode(ctx, nid); err != nil {
		return err
	}
	b.broadcast(ctx, notify.BlastDBDeleted, node, user)
	return nil
}

func (b *blastDBImpl) broadcast(ctx context.Context, action notify.Action, node *model.Node, user *model.User) {
	if b.msgCenter == nil {
		return
	}
	if err := b.msgCenter.Broadcast(ctx, &notify.SendMsg{
		Action:   action,
		NodeID:   node.ID,
		NodeUUID: node.UUID,
		UserID:   user.ID,
	}); err != nil {
		logger.Warnf(ctx, "broadcast %s for node %d err: %+v", action, node.ID, err)
	}
}
