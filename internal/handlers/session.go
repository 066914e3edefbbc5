package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/repository"
	"github.com/Inphy521/Home-Economics/internal/wizard"
)

// SessionFromContext pulls the session the loader middleware attached.
func SessionFromContext(c *gin.Context) *repository.Session {
	return c.MustGet("session").(*repository.Session)
}

type SessionHandler struct {
	log   *zap.Logger
	store *repository.Store
}

func NewSessionHandler(log *zap.Logger, store *repository.Store) *SessionHandler {
	return &SessionHandler{log: log, store: store}
}

// State returns the active step, the record and the quiz board so a client
// can re-render after a reload.
func (h *SessionHandler) State(c *gin.Context) {
	session := SessionFromContext(c)
	session.WithWizard(func(w *wizard.Wizard) {
		resp := gin.H{
			"step":   w.Current().String(),
			"record": w.Record(),
		}
		if quiz := w.Quiz(); quiz != nil {
			correct, attempts := quiz.Counts()
			resp["quiz"] = gin.H{
				"functionOrder": quiz.FunctionOrder(),
				"correctCount":  correct,
				"attemptCount":  attempts,
				"completed":     quiz.Completed(),
			}
		}
		if token, ok := c.Get("csrf_token"); ok {
			resp["csrfToken"] = token
		}
		c.JSON(http.StatusOK, resp)
	})
}

// Reset discards everything and starts the session over.
func (h *SessionHandler) Reset(c *gin.Context) {
	session := SessionFromContext(c)
	fresh := h.store.Reset(session.ID)
	c.Set("session", fresh)
	fresh.WithWizard(func(w *wizard.Wizard) {
		c.JSON(http.StatusOK, gin.H{"step": w.Current().String()})
	})
}

// PreviousReport summarizes the two-week-old basics and the five actions
// after a saved report was loaded back in.
func (h *SessionHandler) PreviousReport(c *gin.Context) {
	session := SessionFromContext(c)
	session.WithWizard(func(w *wizard.Wizard) {
		record := w.Record()

		if !record.ActionPlan.Complete() {
			c.JSON(http.StatusNotFound, gin.H{"error": "尚未載入先前的報告"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"className":   record.BasicInfo.ClassName,
			"seatNumber":  record.BasicInfo.SeatNumber,
			"studentName": record.BasicInfo.StudentName,
			"actions":     record.ActionPlan.Actions,
		})
	})
}
