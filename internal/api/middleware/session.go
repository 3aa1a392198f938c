package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/coopnet/meeting-insights/internal/utils"
)

const sessionCookie = "mi_session"

type apiError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

type sessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// SessionCookies signs and verifies the pipeline session cookie. The
// cookie carries only the session id; the session body lives in the
// store. HS256 with the configured secret.
type SessionCookies struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionCookies(secret string, ttl time.Duration) *SessionCookies {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &SessionCookies{secret: []byte(secret), ttl: ttl}
}

// Issue sets the signed cookie binding the client to sessionID.
func (s *SessionCookies) Issue(c *gin.Context, sessionID string) error {
	now := time.Now()
	claims := &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		SessionID: sessionID,
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return err
	}
	c.SetCookie(sessionCookie, tok, int(s.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Clear expires the cookie; used when a run is abandoned or finished.
func (s *SessionCookies) Clear(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

// Require aborts with 401 unless a valid session cookie is present,
// and stores the session id under "session_id" for handlers.
func (s *SessionCookies) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(sessionCookie)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "no active pipeline session",
			})
			return
		}

		claims := &sessionClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || tok == nil || !tok.Valid || claims.SessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{
				Code:    utils.CodeUnauthorized,
				Message: "invalid session cookie",
			})
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Next()
	}
}
