package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode        = 0
	ServiceErrCode     = 10001
	ParamErrCode       = 10002
	UserNotExistCode   = 10003
	AuthorizationCode  = 10004
	RequestErrCode     = 10005
	NotFoundCode       = 10006
	TokenInvailedCode  = 10007
	PermissionErrCode  = 10008
	UserInactiveCode   = 10009
	UserBannedCode     = 10010
	DuplicateErrCode   = 10011
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success          = NewErrNo(SuccessCode, "Success")
	ServiceErr       = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr         = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	RequestErr       = NewErrNo(RequestErrCode, "Invalid request")
	UserNotExistErr  = NewErrNo(UserNotExistCode, "User does not exist")
	AuthorizationErr = NewErrNo(AuthorizationCode, "Authorization failed")
	NotFoundErr      = NewErrNo(NotFoundCode, "Target not found")
	TokenInvailedErr = NewErrNo(TokenInvailedCode, "Token is invalid")
	PermissionErr    = NewErrNo(PermissionErrCode, "No permission for this operation")
	UserInactiveErr  = NewErrNo(UserInactiveCode, "Account is not activated")
	UserBannedErr    = NewErrNo(UserBannedCode, "Account is suspended")
	DuplicateErr     = NewErrNo(DuplicateErrCode, "Duplicate record")
)

// ConvertErr convert error to ErrNo
// 服务层返回的任意error在API边界统一转换
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
