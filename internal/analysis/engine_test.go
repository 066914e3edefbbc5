package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Inphy521/Home-Economics/internal/models"
)

func TestClassifySkinType(t *testing.T) {
	t.Run("missing zone returns nil", func(t *testing.T) {
		assert.Nil(t, ClassifySkinType("", models.ZoneOily, models.ZoneOily, models.ZoneOily))
		assert.Nil(t, ClassifySkinType(models.ZoneOily, models.ZoneOily, models.ZoneOily, ""))
	})

	t.Run("three or more oily zones is oily regardless of placement", func(t *testing.T) {
		cases := [][4]models.ZoneReading{
			{models.ZoneOily, models.ZoneOily, models.ZoneOily, models.ZoneNormal},
			{models.ZoneOily, models.ZoneOily, models.ZoneNormal, models.ZoneOily},
			{models.ZoneDry, models.ZoneOily, models.ZoneOily, models.ZoneOily},
			{models.ZoneOily, models.ZoneOily, models.ZoneOily, models.ZoneOily},
		}
		for _, zones := range cases {
			result := ClassifySkinType(zones[0], zones[1], zones[2], zones[3])
			require.NotNil(t, result)
			assert.Equal(t, models.SkinOily, result.SkinType)
			assert.GreaterOrEqual(t, result.OilyScore, 3)
		}
	})

	t.Run("three dry zones is dry", func(t *testing.T) {
		result := ClassifySkinType(models.ZoneDry, models.ZoneDry, models.ZoneDry, models.ZoneNormal)
		require.NotNil(t, result)
		assert.Equal(t, models.SkinDry, result.SkinType)
		assert.Equal(t, 3, result.DryScore)
	})

	t.Run("t-zone rule beats the balanced rule", func(t *testing.T) {
		// oilyScore=1, dryScore=0: the T-zone rule must fire before the
		// balanced catch-all even though only one zone is oily.
		result := ClassifySkinType(models.ZoneOily, models.ZoneNormal, models.ZoneNormal, models.ZoneNormal)
		require.NotNil(t, result)
		assert.Equal(t, models.SkinCombination, result.SkinType)
		assert.Equal(t, 1, result.OilyScore)
		assert.Equal(t, 0, result.DryScore)
	})

	t.Run("all normal is balanced", func(t *testing.T) {
		result := ClassifySkinType(models.ZoneNormal, models.ZoneNormal, models.ZoneNormal, models.ZoneNormal)
		require.NotNil(t, result)
		assert.Equal(t, models.SkinNormal, result.SkinType)
		assert.Equal(t, 0, result.OilyScore)
		assert.Equal(t, 0, result.DryScore)
	})

	t.Run("mixed zones without a dominant reading is combination", func(t *testing.T) {
		// tzone dry, cheeks oily: rule 3 does not apply, scores are 1/1.
		result := ClassifySkinType(models.ZoneDry, models.ZoneOily, models.ZoneNormal, models.ZoneNormal)
		require.NotNil(t, result)
		assert.Equal(t, models.SkinCombination, result.SkinType)
	})

	t.Run("every result carries description and icon", func(t *testing.T) {
		for _, zones := range [][4]models.ZoneReading{
			{models.ZoneOily, models.ZoneOily, models.ZoneOily, models.ZoneOily},
			{models.ZoneDry, models.ZoneDry, models.ZoneDry, models.ZoneDry},
			{models.ZoneOily, models.ZoneDry, models.ZoneNormal, models.ZoneNormal},
			{models.ZoneNormal, models.ZoneNormal, models.ZoneNormal, models.ZoneNormal},
		} {
			result := ClassifySkinType(zones[0], zones[1], zones[2], zones[3])
			require.NotNil(t, result)
			assert.NotEmpty(t, result.SkinTypeDesc)
			assert.NotEmpty(t, result.SkinIcon)
		}
	})
}

func cleanLifestyle() models.Lifestyle {
	return models.Lifestyle{
		DietContent: "三餐均衡",
		FriedFood:   models.FreqRare,
		Sugar:       models.FreqRare,
		Vegetables:  models.FreqDaily,
		WaterIntake: models.BracketHigh,
		WaterType:   "yes",
		SleepHours:  models.BracketHigh,
		SleepTime:   models.SleepEarly,
		Exercise:    models.FreqOften,
	}
}

func TestAnalyzeLifestyleImpact(t *testing.T) {
	t.Run("clean lifestyle yields empty containers", func(t *testing.T) {
		impact := AnalyzeLifestyleImpact(cleanLifestyle())
		assert.Empty(t, impact.Issues)
		assert.Empty(t, impact.Suggestions)
		assert.NotNil(t, impact.Issues)
		assert.NotNil(t, impact.Suggestions)
	})

	t.Run("each trigger adds exactly one issue and one suggestion", func(t *testing.T) {
		triggers := []func(*models.Lifestyle){
			func(l *models.Lifestyle) { l.FriedFood = models.FreqDaily },
			func(l *models.Lifestyle) { l.Sugar = models.FreqOften },
			func(l *models.Lifestyle) { l.Vegetables = models.FreqRare },
			func(l *models.Lifestyle) { l.WaterIntake = models.BracketLow },
			func(l *models.Lifestyle) { l.WaterType = "no" },
			func(l *models.Lifestyle) { l.SleepHours = models.BracketLow },
			func(l *models.Lifestyle) { l.SleepTime = models.SleepVeryLate },
			func(l *models.Lifestyle) { l.Exercise = models.FreqRare },
		}

		for i, trigger := range triggers {
			lifestyle := cleanLifestyle()
			trigger(&lifestyle)
			impact := AnalyzeLifestyleImpact(lifestyle)
			assert.Len(t, impact.Issues, 1, "trigger %d", i)
			assert.Len(t, impact.Suggestions, 1, "trigger %d", i)
		}
	})

	t.Run("triggers are monotonic and preserve earlier findings", func(t *testing.T) {
		lifestyle := cleanLifestyle()
		lifestyle.FriedFood = models.FreqDaily
		base := AnalyzeLifestyleImpact(lifestyle)
		require.Len(t, base.Issues, 1)

		lifestyle.SleepTime = models.SleepLate
		more := AnalyzeLifestyleImpact(lifestyle)
		assert.Len(t, more.Issues, 2)
		assert.Len(t, more.Suggestions, 2)
		assert.Equal(t, base.Issues[0], more.Issues[0])
		assert.Equal(t, base.Suggestions[0], more.Suggestions[0])
	})

	t.Run("all triggers fire together in check order", func(t *testing.T) {
		lifestyle := models.Lifestyle{
			FriedFood:   models.FreqDaily,
			Sugar:       models.FreqDaily,
			Vegetables:  models.FreqSometimes,
			WaterIntake: models.BracketLow,
			WaterType:   "no",
			SleepHours:  models.BracketLow,
			SleepTime:   models.SleepLate,
			Exercise:    models.FreqRare,
		}
		impact := AnalyzeLifestyleImpact(lifestyle)
		assert.Len(t, impact.Issues, 8)
		assert.Len(t, impact.Suggestions, 8)
	})
}

func TestAnalyzeAcne(t *testing.T) {
	t.Run("known levels return guidance", func(t *testing.T) {
		for _, level := range []models.AcneLevel{models.AcneSevere, models.AcneOccasional, models.AcneRare} {
			result := AnalyzeAcne(level)
			assert.NotEmpty(t, result.Description)
			assert.GreaterOrEqual(t, len(result.Advice), 3)
			assert.LessOrEqual(t, len(result.Advice), 4)
			assert.LessOrEqual(t, len(result.Causes), 4)
		}
	})

	t.Run("unknown level falls back to no-data guidance", func(t *testing.T) {
		result := AnalyzeAcne("")
		assert.Contains(t, result.Description, "尚未填寫")
		require.Len(t, result.Advice, 1)
	})
}

func TestAnalyzeWaterTemperature(t *testing.T) {
	t.Run("hot and cold yield advisories", func(t *testing.T) {
		for _, pref := range []models.WaterTemp{models.WaterHot, models.WaterCold} {
			advice := AnalyzeWaterTemperature(pref)
			assert.NotEmpty(t, advice.Warning)
			assert.NotEmpty(t, advice.Impact)
			assert.NotEmpty(t, advice.Suggestion)
		}
	})

	t.Run("warm and unknown values yield no advisory", func(t *testing.T) {
		for _, pref := range []models.WaterTemp{models.WaterWarm, "", "lukewarm"} {
			advice := AnalyzeWaterTemperature(pref)
			assert.Equal(t, models.WaterAdvice{}, advice)
		}
	})
}

func TestCleansingAdviceFor(t *testing.T) {
	t.Run("every classifier label has a routine", func(t *testing.T) {
		for _, st := range []models.SkinType{models.SkinOily, models.SkinDry, models.SkinCombination, models.SkinNormal} {
			advice := CleansingAdviceFor(st)
			assert.NotEmpty(t, advice.Cleanser)
			assert.NotEmpty(t, advice.Frequency)
			assert.NotEmpty(t, advice.Water)
			assert.NotEmpty(t, advice.Method)
			assert.NotEmpty(t, advice.Aftercare)
			assert.NotEqual(t, "資料不足", advice.Cleanser)
		}
	})

	t.Run("unrecognized label returns placeholders", func(t *testing.T) {
		advice := CleansingAdviceFor("sensitive")
		assert.Equal(t, "資料不足", advice.Cleanser)
		assert.Equal(t, "資料不足", advice.Aftercare)
	})
}

func TestAnalyze(t *testing.T) {
	assessment := models.SkinAssessment{
		TZone:     models.ZoneOily,
		Cheeks:    models.ZoneOily,
		Forehead:  models.ZoneOily,
		Nose:      models.ZoneNormal,
		Acne:      models.AcneOccasional,
		Water:     models.WaterHot,
		AfterWash: "tight",
	}
	result := Analyze(assessment, cleanLifestyle())

	require.NotNil(t, result.SkinAnalysis)
	assert.Equal(t, models.SkinOily, result.SkinAnalysis.SkinType)
	assert.Equal(t, 3, result.SkinAnalysis.OilyScore)

	require.NotNil(t, result.CleansingAdvice)
	assert.NotEqual(t, "資料不足", result.CleansingAdvice.Cleanser)

	require.NotNil(t, result.AcneAnalysis)
	require.NotNil(t, result.WaterAdvice)
	assert.NotEmpty(t, result.WaterAdvice.Warning)
	require.NotNil(t, result.LifestyleImpact)
	assert.Empty(t, result.LifestyleImpact.Issues)
}
