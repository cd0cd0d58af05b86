package security

import (
	"Pulseboard/internal/api/config"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ValidateToken 验证外部身份服务签发的 Token 并解析出 Claims。
// 本服务不签发 Token，登录会话由外部身份服务负责
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非预期的签名方法: %v", token.Header["alg"])
		}
		return []byte(config.Cfg.Auth.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("token 解析失败: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token 无效或已过期")
	}

	if issuer := config.Cfg.Auth.Issuer; issuer != "" {
		tokenIssuer, err := claims.GetIssuer()
		if err != nil || tokenIssuer != issuer {
			return nil, errors.New("token 签发方不匹配")
		}
	}

	return claims, nil
}
