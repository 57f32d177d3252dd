package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripal/tripal-blast/pkg/common/code"
)

type Error struct {
	Msg string `json:"msg"`
}

type Resp struct {
	Code  code.ErrCode `json:"code"`
	Data  any          `json:"data,omitempty"`
	Error *Error       `json:"error,omitempty"`
}

type PageReq struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"page_size" form:"page_size"`
}

func (p *PageReq) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *PageReq) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type PageResp[T any] struct {
	Data     T     `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

func Reply(ctx *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	ReplyOk(ctx, data...)
}

func ReplyOk(ctx *gin.Context, data ...any) {
	resp := &Resp{Code: code.Success}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	ctx.JSON(http.StatusOK, resp)
}

func ReplyErr(ctx *gin.Context, err error, msgs ...string) {
	c := code.Of(err)
	msg := err.Error()
	if len(msgs) > 0 && msgs[0] != "" {
		msg = msgs[0]
	}
	ctx.JSON(httpStatus(err), &Resp{
		Code:  c,
		Error: &Error{Msg: msg},
	})
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, code.UnLogin), errors.Is(err, code.InvalidToken), errors.Is(err, code.LoginFormatErr):
		return http.StatusUnauthorized
	case errors.Is(err, code.NoPermission):
		return http.StatusForbidden
	case errors.Is(err, code.RecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, code.ParamErr), errors.Is(err, code.UnknownDBTypeErr),
		errors.Is(err, code.UnknownLinkoutTypeErr), errors.Is(err, code.LinkoutRegexErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
