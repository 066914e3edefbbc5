package models

// ZoneReading is a student's oiliness rating for one facial zone.
type ZoneReading string

const (
	ZoneOily   ZoneReading = "oily"
	ZoneDry    ZoneReading = "dry"
	ZoneNormal ZoneReading = "normal"
)

// AcneLevel is the self-reported breakout frequency.
type AcneLevel string

const (
	AcneSevere     AcneLevel = "severe"
	AcneOccasional AcneLevel = "occasional"
	AcneRare       AcneLevel = "rare"
)

// WaterTemp is the preferred face-washing water temperature.
type WaterTemp string

const (
	WaterHot  WaterTemp = "hot"
	WaterCold WaterTemp = "cold"
	WaterWarm WaterTemp = "warm"
)

// Difficulty is the student's self-rating of how hard the action plan feels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Frequency brackets shared by the lifestyle questions.
const (
	FreqDaily     = "daily"
	FreqOften     = "often"
	FreqSometimes = "sometimes"
	FreqRare      = "rare"
)

// Brackets for water intake and sleep hours.
const (
	BracketLow    = "low"
	BracketMedium = "medium"
	BracketHigh   = "high"
)

// Bedtime brackets.
const (
	SleepEarly    = "early"
	SleepNormal   = "normal"
	SleepLate     = "late"
	SleepVeryLate = "veryLate"
)

// Metadata carries the three lifecycle timestamps as ISO-8601 strings,
// each empty until the corresponding wizard step completes. The ordering
// createdAt <= completedAt <= twoWeekCheckAt holds on the happy path but
// is not validated anywhere.
type Metadata struct {
	CreatedAt      string `json:"createdAt"`
	CompletedAt    string `json:"completedAt"`
	TwoWeekCheckAt string `json:"twoWeekCheckAt"`
}

// BasicInfo identifies the student. StudentID is the only optional field.
type BasicInfo struct {
	ClassName   string `json:"className"`
	SeatNumber  string `json:"seatNumber"`
	StudentName string `json:"studentName"`
	StudentID   string `json:"studentId"`
	Age         string `json:"age"`
}

func (b BasicInfo) Complete() bool {
	return b.ClassName != "" && b.SeatNumber != "" && b.StudentName != "" && b.Age != ""
}

// SelfReflection holds the four free-text answers from the intake step.
type SelfReflection struct {
	SelfImage   string `json:"selfImage"`
	IdealSkin   string `json:"idealSkin"`
	Impression  string `json:"impression"`
	CurrentCare string `json:"currentCare"`
}

func (s SelfReflection) Complete() bool {
	return s.SelfImage != "" && s.IdealSkin != "" && s.Impression != "" && s.CurrentCare != ""
}

// SkinAssessment holds the seven categorical skin answers.
type SkinAssessment struct {
	TZone     ZoneReading `json:"tzone"`
	Cheeks    ZoneReading `json:"cheeks"`
	Forehead  ZoneReading `json:"forehead"`
	Nose      ZoneReading `json:"nose"`
	Acne      AcneLevel   `json:"acne"`
	Water     WaterTemp   `json:"water"`
	AfterWash string      `json:"afterWash"`
}

func (s SkinAssessment) Complete() bool {
	return s.TZone != "" && s.Cheeks != "" && s.Forehead != "" && s.Nose != "" &&
		s.Acne != "" && s.Water != "" && s.AfterWash != ""
}

// Lifestyle holds the ten lifestyle-habit answers. DietContent, WaterIntake,
// SleepHours and SleepTime are the required ones; the rest may stay blank.
type Lifestyle struct {
	DietContent  string `json:"dietContent"`
	FriedFood    string `json:"friedFood"`
	Sugar        string `json:"sugar"`
	Vegetables   string `json:"vegetables"`
	WaterIntake  string `json:"waterIntake"`
	WaterType    string `json:"waterType"`
	SleepHours   string `json:"sleepHours"`
	SleepTime    string `json:"sleepTime"`
	SleepQuality string `json:"sleepQuality"`
	Exercise     string `json:"exercise"`
}

func (l Lifestyle) Complete() bool {
	return l.DietContent != "" && l.WaterIntake != "" && l.SleepHours != "" && l.SleepTime != ""
}

// AnalysisResult is derived by the analysis engine, never edited by the user.
type AnalysisResult struct {
	SkinAnalysis    *SkinAnalysis    `json:"skinAnalysis,omitempty"`
	LifestyleImpact *LifestyleImpact `json:"lifestyleImpact,omitempty"`
	AcneAnalysis    *AcneAnalysis    `json:"acneAnalysis,omitempty"`
	CleansingAdvice *CleansingAdvice `json:"cleansingAdvice,omitempty"`
	WaterAdvice     *WaterAdvice     `json:"waterAdvice,omitempty"`
}

// QuizResult records the outcome of the pressure-point matching quiz.
type QuizResult struct {
	Attempts  int  `json:"attempts"`
	Completed bool `json:"completed"`
}

// ActionPlan holds the reflection answers and the five committed actions.
type ActionPlan struct {
	CognitionChange string     `json:"cognitionChange"`
	HabitImpact     string     `json:"habitImpact"`
	Improvements    string     `json:"improvements"`
	Actions         []string   `json:"actions"`
	Expectation     string     `json:"expectation"`
	Difficulty      Difficulty `json:"difficulty"`
}

func (a ActionPlan) Complete() bool {
	if a.CognitionChange == "" || a.HabitImpact == "" || a.Improvements == "" {
		return false
	}
	if len(a.Actions) != 5 {
		return false
	}
	for _, action := range a.Actions {
		if action == "" {
			return false
		}
	}
	return true
}

// TwoWeekReview holds the six follow-up answers collected two weeks later.
type TwoWeekReview struct {
	ActionResults  string `json:"actionResults"`
	SkinChange     string `json:"skinChange"`
	HelpfulActions string `json:"helpfulActions"`
	Difficulties   string `json:"difficulties"`
	FutureHabits   string `json:"futureHabits"`
	Learning       string `json:"learning"`
}

func (t TwoWeekReview) Complete() bool {
	return t.ActionResults != "" && t.SkinChange != "" && t.HelpfulActions != "" &&
		t.Difficulties != "" && t.FutureHabits != "" && t.Learning != ""
}

// Record is the full aggregate for one student session. It is owned by the
// session that created it; all mutation goes through the wizard gates so a
// sub-section is always either fully populated or fully empty.
type Record struct {
	Metadata       Metadata       `json:"metadata"`
	BasicInfo      BasicInfo      `json:"basicInfo"`
	SelfReflection SelfReflection `json:"selfReflection"`
	SkinAssessment SkinAssessment `json:"skinAssessment"`
	Lifestyle      Lifestyle      `json:"lifestyle"`
	AnalysisResult AnalysisResult `json:"analysisResult"`
	QuizResult     *QuizResult    `json:"quizResult,omitempty"`
	ActionPlan     ActionPlan     `json:"actionPlan"`
	TwoWeekReview  TwoWeekReview  `json:"twoWeekReview"`
}

// NewRecord returns an empty record ready for the intake step.
func NewRecord() *Record {
	return &Record{}
}
