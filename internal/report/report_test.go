package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Inphy521/Home-Economics/internal/models"
)

func reportRecord() *models.Record {
	return &models.Record{
		BasicInfo: models.BasicInfo{
			ClassName: "101", SeatNumber: "5", StudentName: "王小明", Age: "teen",
		},
		SelfReflection: models.SelfReflection{
			SelfImage: "偏油", IdealSkin: "毛孔小", Impression: "清爽", CurrentCare: "早晚洗臉",
		},
		AnalysisResult: models.AnalysisResult{
			SkinAnalysis: &models.SkinAnalysis{
				SkinType: models.SkinOily, SkinTypeDesc: "全臉容易出油", SkinIcon: "💧", OilyScore: 3,
			},
		},
		ActionPlan: models.ActionPlan{
			CognitionChange: "原來是油肌", HabitImpact: "熬夜", Improvements: "出油",
			Actions:     []string{"喝水", "溫水洗臉", "少糖", "早睡", "運動"},
			Expectation: "變好",
		},
		TwoWeekReview: models.TwoWeekReview{
			ActionResults: "有做到", SkinChange: "變好", HelpfulActions: "喝水",
			Difficulties: "早睡難", FutureHabits: "繼續", Learning: "有關聯",
		},
	}
}

func TestParsePhase(t *testing.T) {
	phase, err := ParsePhase("")
	require.NoError(t, err)
	assert.Equal(t, PhaseInitial, phase)

	phase, err = ParsePhase("final")
	require.NoError(t, err)
	assert.Equal(t, PhaseFinal, phase)

	_, err = ParsePhase("midterm")
	assert.Error(t, err)
}

func TestRenderInitial(t *testing.T) {
	html, err := Render(reportRecord(), PhaseInitial)
	require.NoError(t, err)
	doc := string(html)

	assert.Contains(t, doc, "個人膚質分析報告")
	assert.Contains(t, doc, "王小明")
	assert.Contains(t, doc, "全臉容易出油")
	assert.Contains(t, doc, "<li>溫水洗臉</li>")

	// Final-only sections stay out of the initial report.
	assert.NotContains(t, doc, "兩週後成果檢視")
	assert.NotContains(t, doc, "教師評分表")
}

func TestRenderFinal(t *testing.T) {
	html, err := Render(reportRecord(), PhaseFinal)
	require.NoError(t, err)
	doc := string(html)

	assert.Contains(t, doc, "最終學習報告")
	assert.Contains(t, doc, "兩週後成果檢視")
	assert.Contains(t, doc, "有做到")
	assert.Contains(t, doc, "教師評分表")
	assert.Contains(t, doc, "行動計畫")
}

func TestRenderEscapesUserText(t *testing.T) {
	record := reportRecord()
	record.SelfReflection.SelfImage = `<script>alert("x")</script>`
	html, err := Render(record, PhaseInitial)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(html), `<script>alert`))
}

func TestRenderWithoutAnalysis(t *testing.T) {
	record := reportRecord()
	record.AnalysisResult.SkinAnalysis = nil
	html, err := Render(record, PhaseInitial)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "膚質分析結果")
}
