package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	accessSecret  []byte
	refreshSecret []byte
)

// AccessSecret читает секрет лениво: переменные окружения могут
// подгружаться из .env уже после инициализации пакета.
func AccessSecret() []byte {
	if len(accessSecret) == 0 {
		accessSecret = []byte(os.Getenv("JWT_ACCESS_SECRET"))
	}
	return accessSecret
}

func RefreshSecret() []byte {
	if len(refreshSecret) == 0 {
		refreshSecret = []byte(os.Getenv("JWT_REFRESH_SECRET"))
	}
	return refreshSecret
}

// GenerateToken создаёт JWT с идентичностью сессии: пользователь, его группа
// и флаг администратора.
func GenerateToken(userID, groupID uint, isAdmin bool, duration time.Duration, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"group_id": groupID,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
