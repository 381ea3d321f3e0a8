package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"pehlione.com/storefront/internal/shared/apperr"
)

const CtxKeyAdminUser = "admin_user"

type AdminAuthCfg struct {
	User         string
	PasswordHash []byte // bcrypt; empty disables the check
	Realm        string
}

// RequireAdmin guards the admin panel with HTTP basic auth checked against a
// bcrypt hash.
//   - no hash configured: open (local development only, config enforces it in prod)
//   - missing/wrong credentials: 401 with a WWW-Authenticate challenge
func RequireAdmin(cfg AdminAuthCfg) gin.HandlerFunc {
	realm := cfg.Realm
	if realm == "" {
		realm = "admin"
	}
	challenge := `Basic realm="` + realm + `", charset="UTF-8"`

	return func(c *gin.Context) {
		if len(cfg.PasswordHash) == 0 {
			c.Set(CtxKeyAdminUser, cfg.User)
			c.Next()
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.User)) == 1
		if !ok || !userOK || bcrypt.CompareHashAndPassword(cfg.PasswordHash, []byte(pass)) != nil {
			c.Header("WWW-Authenticate", challenge)
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":      "authentication required",
					"request_id": GetRequestID(c),
				})
				return
			}
			Fail(c, apperr.UnauthorizedErr("Admin sign-in required."))
			return
		}

		c.Set(CtxKeyAdminUser, user)
		c.Next()
	}
}

// AdminUser is the name the admin signed in with.
func AdminUser(c *gin.Context) string {
	return c.GetString(CtxKeyAdminUser)
}
