package auth

import (
	"errors"
	"time"

	"parade/config"
	"parade/utils"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCoordinator Role = "coordinator"
	RoleJudge       Role = "judge"
)

const tokenLifetime = time.Hour * 24 * 3

type Claims struct {
	Role    Role  `json:"role"`
	JudgeId int   `json:"judge_id"`
	EventId int   `json:"event_id"`
	Exp     int64 `json:"exp"`
}

// Allows reports whether the claims satisfy one of the required roles. Admins pass
// every check and an empty requirement only needs a valid token.
func (claims *Claims) Allows(roles []Role) bool {
	if len(roles) == 0 || claims.Role == RoleAdmin {
		return true
	}
	return utils.Contains(roles, claims.Role)
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) error {
	mapClaims, ok := jwtClaims.(jwt.MapClaims)
	if !ok {
		return errors.New("unexpected claims type")
	}
	role, _ := mapClaims["role"].(string)
	claims.Role = Role(role)
	if judgeId, ok := mapClaims["judge_id"].(float64); ok {
		claims.JudgeId = int(judgeId)
	}
	if eventId, ok := mapClaims["event_id"].(float64); ok {
		claims.EventId = int(eventId)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.Exp = int64(exp)
	}
	return claims.Valid()
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	switch claims.Role {
	case RoleAdmin, RoleCoordinator:
		return nil
	case RoleJudge:
		if claims.JudgeId == 0 || claims.EventId == 0 {
			return errors.New("judge token without judge")
		}
		return nil
	}
	return errors.New("unknown role")
}

func CreateToken(claims *Claims) (string, error) {
	if claims.Exp == 0 {
		claims.Exp = time.Now().Add(tokenLifetime).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"role":     string(claims.Role),
			"judge_id": claims.JudgeId,
			"event_id": claims.EventId,
			"exp":      claims.Exp,
		})

	tokenString, err := token.SignedString([]byte(config.Env().JWTSecret))
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Env().JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	claims := &Claims{}
	if err := claims.FromJWTClaims(token.Claims); err != nil {
		return nil, err
	}
	return claims, nil
}
