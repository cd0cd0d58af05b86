package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 外部身份服务签发 Token 中携带的业务信息
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
