package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/payload"
	"github.com/Inphy521/Home-Economics/internal/services"
	"github.com/Inphy521/Home-Economics/internal/wizard"
)

type SubmitHandler struct {
	log      *zap.Logger
	uploader *services.Uploader
}

func NewSubmitHandler(log *zap.Logger, uploader *services.Uploader) *SubmitHandler {
	return &SubmitHandler{log: log, uploader: uploader}
}

// Initial projects and uploads the first-submission payload. The upload runs
// asynchronously; the client polls Status for the outcome. Nothing prevents
// a re-click while an upload is pending, matching the questionnaire's
// original behavior.
func (h *SubmitHandler) Initial(c *gin.Context) {
	session := SessionFromContext(c)

	// Project under the session lock; Dispatch takes the same lock for the
	// status update, so it runs after.
	var flat payload.Flat
	ready := false
	session.WithWizard(func(w *wizard.Wizard) {
		record := w.Record()
		if !record.ActionPlan.Complete() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "請先完成行動計畫再上傳。"})
			return
		}
		flat = payload.ProjectInitial(record, time.Now())
		ready = true
	})
	if !ready {
		return
	}

	h.uploader.Dispatch(session, flat, false)
	c.JSON(http.StatusAccepted, gin.H{"state": "pending"})
}

// Final projects and uploads the follow-up payload.
func (h *SubmitHandler) Final(c *gin.Context) {
	session := SessionFromContext(c)

	var flat payload.Flat
	ready := false
	session.WithWizard(func(w *wizard.Wizard) {
		record := w.Record()
		if !record.TwoWeekReview.Complete() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "請完成所有兩週後成果檢視的問題！"})
			return
		}
		flat = payload.ProjectFinal(record, time.Now())
		ready = true
	})
	if !ready {
		return
	}

	h.uploader.Dispatch(session, flat, true)
	c.JSON(http.StatusAccepted, gin.H{"state": "pending"})
}

// Status reports the latest upload outcome for the status indicator.
func (h *SubmitHandler) Status(c *gin.Context) {
	session := SessionFromContext(c)
	c.JSON(http.StatusOK, session.Submission())
}
