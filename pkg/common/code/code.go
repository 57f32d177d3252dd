package code

import (
	"errors"
	"fmt"
)

type ErrCode int

const (
	Success ErrCode = iota
	UnDefineErr
	ParamErr
	UnLogin
	LoginFormatErr
	InvalidToken
	NoPermission
	RecordNotFound
	CreateDataErr
	QueryRecordErr
	DeleteDataErr
	UserNotFound
	UnknownDBTypeErr
	UnknownLinkoutTypeErr
	LinkoutRegexErr
	NotifySendMsgErr
	SignTokenErr
)

var msgs = map[ErrCode]string{
	Success:               "success",
	UnDefineErr:           "undefined error",
	ParamErr:              "parameter error",
	UnLogin:               "not logged in",
	LoginFormatErr:        "authorization format error",
	InvalidToken:          "invalid token",
	NoPermission:          "no permission",
	RecordNotFound:        "record not found",
	CreateDataErr:         "create data error",
	QueryRecordErr:        "query record error",
	DeleteDataErr:         "delete data error",
	UserNotFound:          "user not found",
	UnknownDBTypeErr:      "unknown blast database type",
	UnknownLinkoutTypeErr: "unknown linkout type",
	LinkoutRegexErr:       "invalid linkout regular expression",
	NotifySendMsgErr:      "send notify message error",
	SignTokenErr:          "sign token error",
}

func (c ErrCode) String() string {
	if msg, ok := msgs[c]; ok {
		return msg
	}
	return msgs[UnDefineErr]
}

func (c ErrCode) Error() string {
	return c.String()
}

// WithErr attaches the underlying cause while keeping the code comparable with errors.Is.
func (c ErrCode) WithErr(err error) error {
	return &Error{Code: c, Err: err}
}

func (c ErrCode) WithMsg(msg string) error {
	return &Error{Code: c, Msg: msg}
}

type Error struct {
	Code ErrCode
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	default:
		return e.Code.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	c, ok := target.(ErrCode)
	return ok && c == e.Code
}

// Of extracts the error code carried by err, UnDefineErr when there is none.
func Of(err error) ErrCode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c ErrCode
	if errors.As(err, &c) {
		return c
	}
	return UnDefineErr
}
