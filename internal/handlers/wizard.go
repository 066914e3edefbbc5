package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/models"
	"github.com/Inphy521/Home-Economics/internal/wizard"
)

type WizardHandler struct {
	log    *zap.Logger
	points []models.PressurePoint
}

func NewWizardHandler(log *zap.Logger, points []models.PressurePoint) *WizardHandler {
	return &WizardHandler{log: log, points: points}
}

// Next runs the current step's gate over the posted input and advances on
// success. The body shape depends on the active step; an optional ?step=
// query guards against a stale client posting for the wrong step.
func (h *WizardHandler) Next(c *gin.Context) {
	session := SessionFromContext(c)
	session.WithWizard(func(w *wizard.Wizard) {
		if want := c.Query("step"); want != "" && want != w.Current().String() {
			c.JSON(http.StatusConflict, gin.H{
				"error": "步驟不同步，請重新整理頁面。",
				"step":  w.Current().String(),
			})
			return
		}

		in, err := h.bindStepInput(c, w.Current())
		if err != nil {
			h.log.Error("Failed to bind step input",
				zap.String("step", w.Current().String()),
				zap.Error(err),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
			return
		}

		if err := w.Advance(in); err != nil {
			var vErr *wizard.ValidationError
			if errors.As(err, &vErr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":    vErr.Message,
					"category": vErr.Category,
					"step":     w.Current().String(),
				})
				return
			}
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"step": w.Current().String()})
	})
}

// bindStepInput decodes the request body into the input type the active
// step's gate expects. Steps without a gated form take an empty body.
func (h *WizardHandler) bindStepInput(c *gin.Context, step wizard.StepID) (any, error) {
	switch step {
	case wizard.StepIntake:
		var in wizard.IntakeInput
		return in, c.ShouldBindJSON(&in)
	case wizard.StepAssessment:
		var in wizard.AssessmentInput
		return in, c.ShouldBindJSON(&in)
	case wizard.StepActionPlan:
		var in wizard.ActionPlanInput
		return in, c.ShouldBindJSON(&in)
	case wizard.StepFollowUp:
		var in wizard.FollowUpInput
		return in, c.ShouldBindJSON(&in)
	default:
		return nil, nil
	}
}

type prevRequest struct {
	Step string `json:"step" binding:"required"`
}

// Prev retreats to an earlier step. No validation, no persistence.
func (h *WizardHandler) Prev(c *gin.Context) {
	session := SessionFromContext(c)

	var req prevRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	target, ok := wizard.ParseStepID(req.Step)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown step"})
		return
	}

	session.WithWizard(func(w *wizard.Wizard) {
		if err := w.Retreat(target); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": w.Current().String()})
	})
}

// Results returns the derived analysis block plus the pressure-point panel
// for the results step render.
func (h *WizardHandler) Results(c *gin.Context) {
	session := SessionFromContext(c)
	session.WithWizard(func(w *wizard.Wizard) {
		record := w.Record()

		if record.AnalysisResult.SkinAnalysis == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "尚未完成膚質評估"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"studentName":    record.BasicInfo.StudentName,
			"analysisResult": record.AnalysisResult,
			"pressurePoints": h.points,
		})
	})
}

// ResultsChart serves the ECharts option set for the score overview drawn
// under the skin-type card on the results page.
func (h *WizardHandler) ResultsChart(c *gin.Context) {
	session := SessionFromContext(c)
	session.WithWizard(func(w *wizard.Wizard) {
		result := w.Record().AnalysisResult

		if result.SkinAnalysis == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "尚未完成膚質評估"})
			return
		}

		bar := generateScoreChart(result)
		optionsJSON, err := json.Marshal(bar.JSON())
		if err != nil {
			h.log.Error("Failed to render results chart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "圖表產生失敗，請再試一次。"})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", optionsJSON)
	})
}

func generateScoreChart(result models.AnalysisResult) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "膚質評分總覽",
			Subtitle: "出油與乾燥指數滿分為 4，生活習慣為警示項目數",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)

	issueCount := 0
	if result.LifestyleImpact != nil {
		issueCount = len(result.LifestyleImpact.Issues)
	}
	skin := result.SkinAnalysis

	bar.SetXAxis([]string{"出油指數", "乾燥指數", "生活習慣警示"})
	bar.AddSeries("評分", []opts.BarData{
		{Value: skin.OilyScore},
		{Value: skin.DryScore},
		{Value: issueCount},
	})
	return bar
}

// PressurePoints serves the static advisory panel dataset.
func (h *WizardHandler) PressurePoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"points": h.points})
}
