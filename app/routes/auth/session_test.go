package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Eahtasham/Parent-Teacher-DBMS/app/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// issueSessionCookie runs CreateSession through a real fiber handler and
// returns the cookie it set.
func issueSessionCookie(t *testing.T, user *models.Identity) *http.Cookie {
	t.Helper()

	app := fiber.New()
	app.Post("/session", func(c *fiber.Ctx) error {
		return CreateSession(c, user)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/session", nil))
	if err != nil {
		t.Fatalf("session request failed: %v", err)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "user" {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func readSessionFrom(t *testing.T, cookie *http.Cookie) (*models.Identity, bool) {
	t.Helper()

	var got *models.Identity
	var ok bool
	app := fiber.New()
	app.Get("/read", func(c *fiber.Ctx) error {
		got, ok = ReadSession(c)
		return c.SendStatus(200)
	})

	req := httptest.NewRequest("GET", "/read", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	if _, err := app.Test(req); err != nil {
		t.Fatalf("read request failed: %v", err)
	}
	return got, ok
}

func TestSessionRoundTrip(t *testing.T) {
	cookie := issueSessionCookie(t, &models.Identity{ID: 7, Username: "teacher1", Role: models.TeacherRole})

	if !cookie.HttpOnly {
		t.Error("session cookie must be http-only")
	}
	if !cookie.Secure {
		t.Error("session cookie must be secure")
	}

	user, ok := readSessionFrom(t, cookie)
	if !ok {
		t.Fatal("expected a valid session")
	}
	if user.ID != 7 || user.Username != "teacher1" || user.Role != models.TeacherRole {
		t.Errorf("unexpected identity: %+v", user)
	}
}

func TestReadSessionMissingCookie(t *testing.T) {
	if _, ok := readSessionFrom(t, nil); ok {
		t.Error("no cookie must read as no session")
	}
}

func TestReadSessionMalformedCookie(t *testing.T) {
	cookie := &http.Cookie{Name: "user", Value: "not-a-token"}
	if _, ok := readSessionFrom(t, cookie); ok {
		t.Error("malformed cookie must read as no session")
	}
}

func TestReadSessionTamperedSignature(t *testing.T) {
	claims := SessionClaims{
		UserID:   1,
		Username: "parent1",
		Role:     models.ParentRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := readSessionFrom(t, &http.Cookie{Name: "user", Value: token}); ok {
		t.Error("token signed with the wrong secret must read as no session")
	}
}

func TestReadSessionExpiredToken(t *testing.T) {
	claims := SessionClaims{
		UserID:   1,
		Username: "parent1",
		Role:     models.ParentRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getSessionSecret())
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := readSessionFrom(t, &http.Cookie{Name: "user", Value: token}); ok {
		t.Error("expired token must read as no session")
	}
}

func TestReadSessionUnknownRole(t *testing.T) {
	claims := SessionClaims{
		UserID:   1,
		Username: "x",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getSessionSecret())
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := readSessionFrom(t, &http.Cookie{Name: "user", Value: token}); ok {
		t.Error("a role outside parent/teacher must read as no session")
	}
}

func TestClearSessionExpiresCookie(t *testing.T) {
	app := fiber.New()
	app.Post("/logout", func(c *fiber.Ctx) error {
		ClearSession(c)
		return c.SendStatus(200)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/logout", nil))
	if err != nil {
		t.Fatal(err)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "user" {
			if cookie.Value != "" {
				t.Errorf("cleared cookie still has value %q", cookie.Value)
			}
			if cookie.Expires.After(time.Now()) {
				t.Error("cleared cookie must be expired")
			}
			return
		}
	}
	t.Fatal("logout did not touch the session cookie")
}
