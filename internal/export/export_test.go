package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Inphy521/Home-Economics/internal/models"
)

func sampleRecord() *models.Record {
	return &models.Record{
		Metadata: models.Metadata{CreatedAt: "2026-03-10T08:30:00Z"},
		BasicInfo: models.BasicInfo{
			ClassName: "101", SeatNumber: "5", StudentName: "王小明", Age: "teen",
		},
		SelfReflection: models.SelfReflection{
			SelfImage: "偏油", IdealSkin: "毛孔小", Impression: "清爽", CurrentCare: "早晚洗臉",
		},
		AnalysisResult: models.AnalysisResult{
			SkinAnalysis: &models.SkinAnalysis{
				SkinType: models.SkinOily, SkinTypeDesc: "偏油", SkinIcon: "💧", OilyScore: 3,
			},
			LifestyleImpact: &models.LifestyleImpact{
				Issues:      []string{"油炸偏多"},
				Suggestions: []string{"少吃炸物"},
			},
		},
		QuizResult: &models.QuizResult{Attempts: 4, Completed: true},
		ActionPlan: models.ActionPlan{
			CognitionChange: "a", HabitImpact: "b", Improvements: "c",
			Actions: []string{"一", "二", "三", "四", "五"}, Difficulty: models.DifficultyEasy,
		},
	}
}

func TestSnapshot(t *testing.T) {
	record := sampleRecord()
	snapshot, err := Snapshot(record)
	require.NoError(t, err)
	require.Equal(t, record, snapshot)

	// The copy must not alias the original's nested state.
	snapshot.AnalysisResult.SkinAnalysis.OilyScore = 99
	snapshot.ActionPlan.Actions[0] = "改掉"
	assert.Equal(t, 3, record.AnalysisResult.SkinAnalysis.OilyScore)
	assert.Equal(t, "一", record.ActionPlan.Actions[0])
}

func TestMarshalAndImportRoundTrip(t *testing.T) {
	record := sampleRecord()
	data, err := MarshalRecord(record)
	require.NoError(t, err)

	restored, err := ImportRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record, restored)
}

func TestImportRecord(t *testing.T) {
	t.Run("malformed JSON is a format error", func(t *testing.T) {
		_, err := ImportRecord([]byte("{not json"))
		assert.ErrorIs(t, err, ErrBadFormat)
	})

	t.Run("JSON without a student name is a format error", func(t *testing.T) {
		_, err := ImportRecord([]byte(`{"metadata":{}}`))
		assert.ErrorIs(t, err, ErrBadFormat)
	})

	t.Run("missing class and seat are backfilled with sentinels", func(t *testing.T) {
		record := sampleRecord()
		record.BasicInfo.ClassName = ""
		record.BasicInfo.SeatNumber = ""
		data, err := json.Marshal(record)
		require.NoError(t, err)

		restored, err := ImportRecord(data)
		require.NoError(t, err)
		assert.Equal(t, UnknownClass, restored.BasicInfo.ClassName)
		assert.Equal(t, UnknownSeat, restored.BasicInfo.SeatNumber)
		// Nothing else is repaired or altered.
		assert.Equal(t, record.ActionPlan, restored.ActionPlan)
	})

	t.Run("present class and seat stay untouched", func(t *testing.T) {
		data, err := MarshalRecord(sampleRecord())
		require.NoError(t, err)
		restored, err := ImportRecord(data)
		require.NoError(t, err)
		assert.Equal(t, "101", restored.BasicInfo.ClassName)
		assert.Equal(t, "5", restored.BasicInfo.SeatNumber)
	})
}

func TestFileNames(t *testing.T) {
	record := sampleRecord()
	assert.Equal(t, "膚質分析報告_王小明.json", JSONFileName(record))
	assert.Equal(t, "膚質分析報告_王小明.html", ReportFileName(record, false))
	assert.Equal(t, "最終學習報告_王小明.html", ReportFileName(record, true))
}
