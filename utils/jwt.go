package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenValidity = time.Hour * 72

func GenerateJWT(userID uint, email string, isKitchenAdmin bool) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":  userID,
		"email":   email,
		"isAdmin": isKitchenAdmin,
		"exp":     time.Now().Add(TokenValidity).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
