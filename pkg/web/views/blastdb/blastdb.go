package blastdb

import (
	"github.com/gin-gonic/gin"
	"github.com/tripal/tripal-blast/pkg/common"
	"github.com/tripal/tripal-blast/pkg/common/code"
	"github.com/tripal/tripal-blast/pkg/core/blastdb"
	impl "github.com/tripal/tripal-blast/pkg/core/blastdb/blastdb"
	"github.com/tripal/tripal-blast/pkg/core/notify"
	"github.com/tripal/tripal-blast/pkg/middleware/db"
	"github.com/tripal/tripal-blast/pkg/middleware/logger"
	nodeStore "github.com/tripal/tripal-blast/pkg/repo/node"
)

type Handle struct {
	bService blastdb.Service
}

func NewBlastDBHandle(ds *db.Datastore, msgCenter notify.MsgCenter) *Handle {
	return &Handle{
		bService: impl.New(nodeStore.New(ds), msgCenter),
	}
}

func (h *Handle) List(ctx *gin.Context) {
	req := &blastdb.ListReq{}
	if err := ctx.ShouldBindQuery(req); err != nil {
		logger.Errorf(ctx, "parse List param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := h.bService.List(ctx, req)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Get(ctx *gin.Context) {
	req := &blastdb.NodeReq{}
	if err := ctx.ShouldBindUri(req); err != nil {
		logger.Errorf(ctx, "parse Get param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := h.bService.Get(ctx, req.NID)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Create(ctx *gin.Context) {
	req := &blastdb.CreateReq{}
	if err := ctx.ShouldBindJSON(req); err != nil {
		logger.Errorf(ctx, "parse Create param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	resp, err := h.bService.Create(ctx, req)
	if err != nil {
		logger.Errorf(ctx, "Create blastdb err: %+v", err)
	}
	common.Reply(ctx, err, resp)
}

func (h *Handle) Delete(ctx *gin.Context) {
	req := &blastdb.NodeReq{}
	if err := ctx.ShouldBindUri(req); err != nil {
		logger.Errorf(ctx, "parse Delete param err: %+v", err.Error())
		common.ReplyErr(ctx, code.ParamErr, err.Error())
		return
	}
	common.Reply(ctx, h.bService.Delete(ctx, req.NID))
}
