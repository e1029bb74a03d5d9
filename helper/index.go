package helper

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"
	"time"

	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GetUserByUsername(u string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Username: u}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["userId"] = tokenClaim.UserId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["userId"] = tokenClaim.UserId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoUserFromToken loads the authenticated user behind the parsed token.
// The role always comes from the database row, never from the claim.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, *model.User, error) {
	u := c.Locals("user")
	if u == nil {
		return model.TokenClaim{}, nil, errors.New("missing token")
	}

	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		return model.TokenClaim{}, nil, errors.New("invalid token")
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, nil, errors.New("invalid token claims")
	}

	userIdFloat, ok := claims["userId"].(float64)
	if !ok || userIdFloat == 0 {
		return model.TokenClaim{}, nil, errors.New("invalid token claims")
	}
	username, _ := claims["username"].(string)

	var user model.User
	db := database.DB
	if err := db.Preload("Profile").First(&user, uint(userIdFloat)).Error; err != nil {
		log.Printf("user not found: id=%d, error=%v", uint(userIdFloat), err)
		return model.TokenClaim{}, nil, err
	}
	if !user.Active {
		return model.TokenClaim{}, nil, errors.New("account disabled")
	}

	tokenClaim := model.TokenClaim{
		UserId:   user.ID,
		Username: username,
		Role:     user.Role,
	}
	c.Locals("currentUser", &user)

	return tokenClaim, &user, nil
}
