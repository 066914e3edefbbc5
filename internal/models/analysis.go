package models

// SkinType is the classifier's label for the overall skin type.
type SkinType string

const (
	SkinOily        SkinType = "oily"
	SkinDry         SkinType = "dry"
	SkinCombination SkinType = "combination"
	SkinNormal      SkinType = "normal"
)

// SkinAnalysis is the classifier output. JSON keys follow the worksheet
// export format so downstream spreadsheets keep their column names.
type SkinAnalysis struct {
	SkinType     SkinType `json:"skinType"`
	SkinTypeDesc string   `json:"skinTypeDesc"`
	SkinIcon     string   `json:"skinIcon"`
	OilyScore    int      `json:"oilyScore"`
	DryScore     int      `json:"dryScore"`
}

// LifestyleImpact pairs each flagged habit with one suggestion.
type LifestyleImpact struct {
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// AcneAnalysis is the canned guidance for one breakout-frequency level.
type AcneAnalysis struct {
	Description string   `json:"description"`
	Causes      []string `json:"causes"`
	Advice      []string `json:"advice"`
}

// CleansingAdvice is the per-skin-type cleansing routine.
type CleansingAdvice struct {
	Cleanser  string `json:"cleanser"`
	Frequency string `json:"frequency"`
	Water     string `json:"water"`
	Method    string `json:"method"`
	Aftercare string `json:"aftercare"`
}

// WaterAdvice warns about hot or cold washing water. All three fields are
// empty when no advisory is needed.
type WaterAdvice struct {
	Warning    string `json:"warning"`
	Impact     string `json:"impact"`
	Suggestion string `json:"suggestion"`
}
