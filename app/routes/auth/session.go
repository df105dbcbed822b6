package auth

import (
	"os"
	"time"

	"github.com/Eahtasham/Parent-Teacher-DBMS/app/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// The cookie is the whole session: there is no server-side session table.
// The identity tuple rides in signed JWT claims so a client cannot edit
// its own role, but it is never re-checked against the database during
// the session's 24 hour lifetime.

const sessionCookie = "user"

const sessionTTL = 24 * time.Hour

type SessionClaims struct {
	UserID   int         `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

func getSessionSecret() []byte {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "parent-teacher-portal-secret" // Default for development
	}
	return []byte(secret)
}

// CreateSession signs the identity tuple and sets it as the session
// cookie on the response.
func CreateSession(c *fiber.Ctx, user *models.Identity) error {
	claims := SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "parent-teacher-portal",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getSessionSecret())
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		MaxAge:   int(sessionTTL.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
	})
	return nil
}

// ClearSession expires the session cookie immediately.
func ClearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
	})
}

// ReadSession returns the identity carried by the request's session
// cookie. A missing, malformed, expired or tampered cookie reads as "no
// session"; callers never see an error.
func ReadSession(c *fiber.Ctx) (*models.Identity, bool) {
	tokenString := c.Cookies(sessionCookie)
	if tokenString == "" {
		return nil, false
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return getSessionSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !claims.Role.Valid() {
		return nil, false
	}

	return &models.Identity{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, true
}
