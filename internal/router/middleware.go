package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Inphy521/Home-Economics/internal/repository"
)

const sessionIDKey = "recordID"

// SessionLoader binds every request to its questionnaire session. A request
// without a session cookie gets a fresh session whose ID is written back to
// the cookie, so the student's record survives page reloads.
func SessionLoader(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie := sessions.Default(c)

		id, _ := cookie.Get(sessionIDKey).(string)
		session := store.GetOrCreate(id)

		if session.ID != id {
			cookie.Set(sessionIDKey, session.ID)
			if err := cookie.Save(); err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
		}

		c.Set("session", session)
		c.Next()
	}
}
