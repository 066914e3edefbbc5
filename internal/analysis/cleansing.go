package analysis

import (
	"fmt"

	"github.com/Inphy521/Home-Economics/internal/models"
)

// cleansingTable maps every classifier label to a cleansing routine. The
// table is checked at init so a label added to the classifier without a
// matching routine fails at startup instead of silently falling back.
var cleansingTable = map[models.SkinType]models.CleansingAdvice{
	models.SkinOily: {
		Cleanser:  "控油型洗面乳，質地清爽的凝膠或泡沫",
		Frequency: "早晚各一次，流汗多時可再加一次清水沖洗",
		Water:     "溫水",
		Method:    "以指腹畫圓按摩 T 字部位，約 30 秒後沖淨",
		Aftercare: "使用清爽型化妝水與無油保濕凝膠",
	},
	models.SkinDry: {
		Cleanser:  "溫和不起泡或低泡的保濕型洗面乳",
		Frequency: "晚上一次即可，早上用清水洗臉",
		Water:     "溫水",
		Method:    "輕柔帶過全臉，避免搓揉與長時間停留",
		Aftercare: "洗後三分鐘內擦上保濕乳液鎖水",
	},
	models.SkinCombination: {
		Cleanser:  "中性溫和洗面乳",
		Frequency: "早晚各一次",
		Water:     "溫水",
		Method:    "T 字部位加強畫圓，兩頰快速帶過",
		Aftercare: "出油部位用清爽型產品，乾燥部位加強保濕",
	},
	models.SkinNormal: {
		Cleanser:  "一般溫和洗面乳即可",
		Frequency: "早晚各一次",
		Water:     "溫水",
		Method:    "全臉輕柔按摩後沖淨",
		Aftercare: "基礎保濕即可，注意防曬",
	},
}

func init() {
	for _, t := range []models.SkinType{models.SkinOily, models.SkinDry, models.SkinCombination, models.SkinNormal} {
		if _, ok := cleansingTable[t]; !ok {
			panic(fmt.Sprintf("cleansing table missing entry for skin type %q", t))
		}
	}
}

// cleansingNoData is the fallback for an unrecognized or legacy label.
var cleansingNoData = models.CleansingAdvice{
	Cleanser:  "資料不足",
	Frequency: "資料不足",
	Water:     "資料不足",
	Method:    "資料不足",
	Aftercare: "資料不足",
}

// CleansingAdviceFor returns the cleansing routine for a skin-type label.
func CleansingAdviceFor(skinType models.SkinType) models.CleansingAdvice {
	if advice, ok := cleansingTable[skinType]; ok {
		return advice
	}
	return cleansingNoData
}

// Analyze runs the whole engine over a completed assessment and lifestyle
// section and returns the derived result block.
func Analyze(assessment models.SkinAssessment, lifestyle models.Lifestyle) models.AnalysisResult {
	skin := ClassifySkinType(assessment.TZone, assessment.Cheeks, assessment.Forehead, assessment.Nose)

	result := models.AnalysisResult{SkinAnalysis: skin}

	impact := AnalyzeLifestyleImpact(lifestyle)
	result.LifestyleImpact = &impact

	acne := AnalyzeAcne(assessment.Acne)
	result.AcneAnalysis = &acne

	water := AnalyzeWaterTemperature(assessment.Water)
	result.WaterAdvice = &water

	if skin != nil {
		advice := CleansingAdviceFor(skin.SkinType)
		result.CleansingAdvice = &advice
	}

	return result
}
