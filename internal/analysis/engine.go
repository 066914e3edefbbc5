// Package analysis holds the rule-based engine that turns raw questionnaire
// answers into the structured skin report. Everything here is pure and
// deterministic so it can be tested without the wizard or any HTTP harness.
package analysis

import (
	"github.com/Inphy521/Home-Economics/internal/models"
)

// ClassifySkinType derives the overall skin type from the four zone readings.
// It returns nil when any zone is unanswered.
//
// The rules are ordered by priority and the first match wins. Rule 3 (the
// T-zone rule) runs before the balanced catch-all on purpose: tzone=oily with
// three normal zones counts as combination skin, not normal skin.
func ClassifySkinType(tzone, cheeks, forehead, nose models.ZoneReading) *models.SkinAnalysis {
	if tzone == "" || cheeks == "" || forehead == "" || nose == "" {
		return nil
	}

	zones := []models.ZoneReading{tzone, cheeks, forehead, nose}
	oilyScore, dryScore := 0, 0
	for _, z := range zones {
		switch z {
		case models.ZoneOily:
			oilyScore++
		case models.ZoneDry:
			dryScore++
		}
	}

	result := &models.SkinAnalysis{OilyScore: oilyScore, DryScore: dryScore}

	switch {
	case oilyScore >= 3:
		result.SkinType = models.SkinOily
		result.SkinTypeDesc = "您的肌膚偏油性，全臉容易出油、毛孔較明顯，需要加強清潔與控油。"
		result.SkinIcon = "💧"
	case dryScore >= 3:
		result.SkinType = models.SkinDry
		result.SkinTypeDesc = "您的肌膚偏乾性，容易緊繃、脫屑，重點是溫和清潔與充分保濕。"
		result.SkinIcon = "🏜️"
	case tzone == models.ZoneOily && (cheeks == models.ZoneDry || cheeks == models.ZoneNormal):
		result.SkinType = models.SkinCombination
		result.SkinTypeDesc = "您的肌膚是混合性：T字部位容易出油，兩頰偏乾或正常，需要分區照顧。"
		result.SkinIcon = "🌓"
	case oilyScore == 0 && dryScore == 0:
		result.SkinType = models.SkinNormal
		result.SkinTypeDesc = "您的肌膚屬於中性，油水平衡良好，維持目前的清潔與作息即可。"
		result.SkinIcon = "✨"
	default:
		result.SkinType = models.SkinCombination
		result.SkinTypeDesc = "您的肌膚偏混合性，不同部位狀況不一，建議針對出油與乾燥部位分別保養。"
		result.SkinIcon = "🌓"
	}

	return result
}

// lifestyleCheck is one threshold rule over the lifestyle answers.
type lifestyleCheck struct {
	triggered  func(models.Lifestyle) bool
	issue      string
	suggestion string
}

// The checks fire independently and in this fixed order, so the issue and
// suggestion lists always line up pairwise.
var lifestyleChecks = []lifestyleCheck{
	{
		triggered: func(l models.Lifestyle) bool {
			return l.FriedFood == models.FreqDaily || l.FriedFood == models.FreqOften
		},
		issue:      "油炸食物攝取頻率偏高，容易刺激皮脂分泌。",
		suggestion: "試著把油炸食物減少到每週一到兩次，改以蒸煮料理取代。",
	},
	{
		triggered: func(l models.Lifestyle) bool {
			return l.Sugar == models.FreqDaily || l.Sugar == models.FreqOften
		},
		issue:      "甜食與含糖飲料攝取偏多，高糖飲食與痘痘生成有關。",
		suggestion: "以水果或無糖飲品取代甜食，一週設定幾天「無糖日」。",
	},
	{
		triggered: func(l models.Lifestyle) bool {
			return l.Vegetables == models.FreqSometimes || l.Vegetables == models.FreqRare
		},
		issue:      "蔬菜攝取不足，缺乏維生素與纖維不利於皮膚修復。",
		suggestion: "每餐至少安排一份蔬菜，顏色越多樣越好。",
	},
	{
		triggered:  func(l models.Lifestyle) bool { return l.WaterIntake == models.BracketLow },
		issue:      "每日飲水量偏低，肌膚容易缺水乾燥。",
		suggestion: "隨身帶水壺，目標一天至少 1500ml 的白開水。",
	},
	{
		triggered:  func(l models.Lifestyle) bool { return l.WaterType == "no" },
		issue:      "平常以含糖或調味飲料代替白開水。",
		suggestion: "逐步把飲料換成白開水或無糖茶，減少額外糖分。",
	},
	{
		triggered:  func(l models.Lifestyle) bool { return l.SleepHours == models.BracketLow },
		issue:      "睡眠時數不足，皮膚夜間修復時間不夠。",
		suggestion: "調整作息讓每天睡足 7 到 8 小時。",
	},
	{
		triggered: func(l models.Lifestyle) bool {
			return l.SleepTime == models.SleepLate || l.SleepTime == models.SleepVeryLate
		},
		issue:      "就寢時間偏晚，熬夜會影響荷爾蒙平衡與膚況。",
		suggestion: "提早半小時上床，睡前減少使用手機。",
	},
	{
		triggered:  func(l models.Lifestyle) bool { return l.Exercise == models.FreqRare },
		issue:      "運動頻率偏低，血液循環與新陳代謝較差。",
		suggestion: "每週安排兩到三次 30 分鐘的運動，快走也可以。",
	},
}

// AnalyzeLifestyleImpact runs the fixed battery of habit checks. Each
// triggered check appends exactly one issue and one paired suggestion.
func AnalyzeLifestyleImpact(lifestyle models.Lifestyle) models.LifestyleImpact {
	impact := models.LifestyleImpact{
		Issues:      []string{},
		Suggestions: []string{},
	}
	for _, check := range lifestyleChecks {
		if check.triggered(lifestyle) {
			impact.Issues = append(impact.Issues, check.issue)
			impact.Suggestions = append(impact.Suggestions, check.suggestion)
		}
	}
	return impact
}

var acneTable = map[models.AcneLevel]models.AcneAnalysis{
	models.AcneSevere: {
		Description: "痘痘狀況較明顯，常常同時有多顆發炎中的痘痘。",
		Causes: []string{
			"皮脂分泌旺盛，毛孔容易阻塞",
			"清潔不當或過度清潔",
			"飲食偏油、偏甜",
			"睡眠不足與壓力",
		},
		Advice: []string{
			"早晚各一次溫和洗臉，不要用力搓揉",
			"避免用手擠壓痘痘，以免留下痘疤",
			"減少油炸與甜食，多喝水",
			"若持續惡化，建議就診皮膚科",
		},
	},
	models.AcneOccasional: {
		Description: "偶爾冒痘，多半與作息、飲食或生理期等因素有關。",
		Causes: []string{
			"階段性的皮脂分泌變化",
			"考試壓力或睡眠不規律",
			"安全帽、瀏海等悶住皮膚",
		},
		Advice: []string{
			"維持規律清潔，觀察冒痘前的生活變化",
			"流汗後盡快洗臉或擦乾",
			"枕頭套與毛巾定期更換清洗",
		},
	},
	models.AcneRare: {
		Description: "幾乎不長痘痘，皮脂分泌與清潔習慣維持得不錯。",
		Causes:      []string{},
		Advice: []string{
			"維持目前的清潔與生活習慣",
			"注意防曬與保濕，預防勝於治療",
			"膚況改變時再調整保養方式",
		},
	},
}

// acneNoData is returned for an unknown or missing level.
var acneNoData = models.AcneAnalysis{
	Description: "尚未填寫痘痘狀況，無法提供分析。",
	Causes:      []string{},
	Advice:      []string{"請回到膚質評估完成痘痘相關的問題。"},
}

// AnalyzeAcne returns the canned guidance for the given breakout level.
func AnalyzeAcne(level models.AcneLevel) models.AcneAnalysis {
	if result, ok := acneTable[level]; ok {
		return result
	}
	return acneNoData
}

var waterTable = map[models.WaterTemp]models.WaterAdvice{
	models.WaterHot: {
		Warning:    "您習慣用偏熱的水洗臉。",
		Impact:     "熱水會帶走過多皮脂，讓皮膚乾燥敏感，反而刺激出油。",
		Suggestion: "改用接近體溫的溫水洗臉，洗完不緊繃才是剛好。",
	},
	models.WaterCold: {
		Warning:    "您習慣用冷水洗臉。",
		Impact:     "冷水無法充分溶解皮脂與髒污，清潔效果有限。",
		Suggestion: "建議改用溫水，清潔力足夠又不傷皮膚。",
	},
	// warm needs no advisory; the zero value says exactly that.
}

// AnalyzeWaterTemperature returns an advisory for hot or cold washing water.
// Warm (and any unanswered value) yields an all-empty advice.
func AnalyzeWaterTemperature(preference models.WaterTemp) models.WaterAdvice {
	return waterTable[preference]
}
