package middleware

import (
	"net/http"
	"os"

	"gameblob/db"
	"gameblob/models"
	"gameblob/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

const (
	sessionName = "gameblob_session"

	// session keys
	KeyUserID = "user_id"
	KeyReturn = "return"
	KeyGameID = "gameid"

	// flash categories
	FlashSuccess = "success"
	FlashError   = "error"

	sessionMaxAge = 7 * 24 * 60 * 60 // sliding 7-day cookie
)

// NewSessionStore picks the Redis-backed store when REDIS_URL is set and
// falls back to the cookie store otherwise.
func NewSessionStore(secret string) sessions.Store {
	var store sessions.Store
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisStore, err := redis.NewStore(10, "tcp", redisURL, os.Getenv("REDIS_PASSWORD"), []byte(secret))
		if err != nil {
			utils.Log.Warn("Redis session store unavailable, falling back to cookie store: ", err)
		} else {
			store = redisStore
		}
	}
	if store == nil {
		store = cookie.NewStore([]byte(secret))
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
	})
	return store
}

// Session wraps every request with the persisted session.
func Session(store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(sessionName, store)
}

// CurrentUser resolves the session's user id to a full user record, drains
// one-time flash messages into the render context, and defaults the return
// path. Saving the session re-issues the sliding cookie on every response.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)

		if uid, ok := s.Get(KeyUserID).(uint); ok && uid != 0 {
			var user models.User
			if err := db.DB.First(&user, uid).Error; err == nil {
				c.Set("user", user)
			} else {
				// stale session, drop the reference
				s.Delete(KeyUserID)
			}
		}

		c.Set("flashSuccess", drainFlashes(s, FlashSuccess))
		c.Set("flashError", drainFlashes(s, FlashError))

		if s.Get(KeyReturn) == nil {
			s.Set(KeyReturn, "/home")
		}

		if err := s.Save(); err != nil {
			utils.Log.Warn("failed to save session: ", err)
		}

		c.Next()
	}
}

// LoginRequired redirects unauthenticated requests to the login entry point.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get("user"); !ok {
			Flash(c, FlashError, "You must be logged in first")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Flash queues a one-time message under the given category.
func Flash(c *gin.Context, category, message string) {
	s := sessions.Default(c)
	s.AddFlash(message, category)
	if err := s.Save(); err != nil {
		utils.Log.Warn("failed to save flash: ", err)
	}
}

// ReturnPath reads the session's remembered redirect target.
func ReturnPath(c *gin.Context) string {
	s := sessions.Default(c)
	if path, ok := s.Get(KeyReturn).(string); ok && path != "" {
		return path
	}
	return "/home"
}

// RememberReturn records the current URL as the post-action redirect target.
func RememberReturn(c *gin.Context) {
	s := sessions.Default(c)
	s.Set(KeyReturn, c.Request.URL.RequestURI())
	if err := s.Save(); err != nil {
		utils.Log.Warn("failed to save session: ", err)
	}
}

func drainFlashes(s sessions.Session, category string) []string {
	raw := s.Flashes(category)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
