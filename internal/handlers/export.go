package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/export"
	"github.com/Inphy521/Home-Economics/internal/report"
	"github.com/Inphy521/Home-Economics/internal/wizard"
)

// importBodyLimit caps an uploaded record file. Real records are a few KB.
const importBodyLimit = 1 << 20

type ExportHandler struct {
	log *zap.Logger
}

func NewExportHandler(log *zap.Logger) *ExportHandler {
	return &ExportHandler{log: log}
}

// JSON serves the full record as a downloadable file named after the
// student.
func (h *ExportHandler) JSON(c *gin.Context) {
	session := SessionFromContext(c)
	session.WithWizard(func(w *wizard.Wizard) {
		record := w.Record()

		data, err := export.MarshalRecord(record)
		if err != nil {
			h.log.Error("Failed to export record", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "匯出失敗，請再試一次。"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", export.JSONFileName(record)))
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	})
}

// Report serves the self-contained HTML report for the requested phase.
func (h *ExportHandler) Report(c *gin.Context) {
	session := SessionFromContext(c)

	phase, err := report.ParsePhase(c.Query("phase"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session.WithWizard(func(w *wizard.Wizard) {
		record := w.Record()

		if phase == report.PhaseFinal && !record.TwoWeekReview.Complete() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "請完成所有兩週後成果檢視的問題！"})
			return
		}

		html, err := report.Render(record, phase)
		if err != nil {
			h.log.Error("Failed to render report", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "報告產生失敗，請再試一次。"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", export.ReportFileName(record, phase == report.PhaseFinal)))
		c.Data(http.StatusOK, "text/html; charset=utf-8", html)
	})
}

// Import replaces the session record with an uploaded JSON file and resumes
// at the follow-up step. A malformed file leaves the current record alone.
func (h *ExportHandler) Import(c *gin.Context) {
	session := SessionFromContext(c)

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, importBodyLimit))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	record, err := export.ImportRecord(data)
	if err != nil {
		if errors.Is(err, export.ErrBadFormat) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("Failed to import record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "匯入失敗，請再試一次。"})
		return
	}

	session.WithWizard(func(w *wizard.Wizard) {
		w.ReplaceRecord(record)
		c.JSON(http.StatusOK, gin.H{"step": w.Current().String()})
	})
	h.log.Info("Record imported",
		zap.String("sessionID", session.ID),
		zap.String("student", record.BasicInfo.StudentName),
	)
}
