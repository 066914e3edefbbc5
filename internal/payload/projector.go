// Package payload flattens the nested session record into the wire shape
// the spreadsheet backend expects: one flat object whose key set is
// identical for the initial and the final submission.
package payload

import (
	"time"

	"github.com/Inphy521/Home-Economics/internal/models"
)

// Flat is the denormalized projection of a record. Every leaf field is
// always present, defaulted to its zero value, so the receiving sheet sees
// a stable column set across both submissions.
type Flat struct {
	ClassName   string `json:"className"`
	SeatNumber  string `json:"seatNumber"`
	StudentName string `json:"studentName"`
	StudentID   string `json:"studentId"`
	Age         string `json:"age"`

	SelfImage   string `json:"selfImage"`
	IdealSkin   string `json:"idealSkin"`
	Impression  string `json:"impression"`
	CurrentCare string `json:"currentCare"`

	TZone     string `json:"tzone"`
	Cheeks    string `json:"cheeks"`
	Forehead  string `json:"forehead"`
	Nose      string `json:"nose"`
	Acne      string `json:"acne"`
	Water     string `json:"water"`
	AfterWash string `json:"afterWash"`

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

	SkinType  string `json:"skinType"`
	OilyScore int    `json:"oilyScore"`
	DryScore  int    `json:"dryScore"`

	QuizAttempts int `json:"quizAttempts"`

	CognitionChange string `json:"cognitionChange"`
	HabitImpact     string `json:"habitImpact"`
	Improvements    string `json:"improvements"`
	Action1         string `json:"action1"`
	Action2         string `json:"action2"`
	Action3         string `json:"action3"`
	Action4         string `json:"action4"`
	Action5         string `json:"action5"`
	Expectation     string `json:"expectation"`
	Difficulty      string `json:"difficulty"`

	ActionResults  string `json:"actionResults"`
	SkinChange     string `json:"skinChange"`
	HelpfulActions string `json:"helpfulActions"`
	Difficulties   string `json:"difficulties"`
	FutureHabits   string `json:"futureHabits"`
	Learning       string `json:"learning"`

	IsFinalSubmission   bool   `json:"isFinalSubmission"`
	SubmissionTimestamp string `json:"submissionTimestamp"`
}

// ProjectInitial builds the first-submission payload. The six follow-up
// fields ride along as empty strings to keep the shape stable.
func ProjectInitial(record *models.Record, now time.Time) Flat {
	flat := Flat{
		ClassName:   record.BasicInfo.ClassName,
		SeatNumber:  record.BasicInfo.SeatNumber,
		StudentName: record.BasicInfo.StudentName,
		StudentID:   record.BasicInfo.StudentID,
		Age:         record.BasicInfo.Age,

		SelfImage:   record.SelfReflection.SelfImage,
		IdealSkin:   record.SelfReflection.IdealSkin,
		Impression:  record.SelfReflection.Impression,
		CurrentCare: record.SelfReflection.CurrentCare,

		TZone:     string(record.SkinAssessment.TZone),
		Cheeks:    string(record.SkinAssessment.Cheeks),
		Forehead:  string(record.SkinAssessment.Forehead),
		Nose:      string(record.SkinAssessment.Nose),
		Acne:      string(record.SkinAssessment.Acne),
		Water:     string(record.SkinAssessment.Water),
		AfterWash: record.SkinAssessment.AfterWash,

		DietContent:  record.Lifestyle.DietContent,
		FriedFood:    record.Lifestyle.FriedFood,
		Sugar:        record.Lifestyle.Sugar,
		Vegetables:   record.Lifestyle.Vegetables,
		WaterIntake:  record.Lifestyle.WaterIntake,
		WaterType:    record.Lifestyle.WaterType,
		SleepHours:   record.Lifestyle.SleepHours,
		SleepTime:    record.Lifestyle.SleepTime,
		SleepQuality: record.Lifestyle.SleepQuality,
		Exercise:     record.Lifestyle.Exercise,

		CognitionChange: record.ActionPlan.CognitionChange,
		HabitImpact:     record.ActionPlan.HabitImpact,
		Improvements:    record.ActionPlan.Improvements,
		Expectation:     record.ActionPlan.Expectation,
		Difficulty:      string(record.ActionPlan.Difficulty),

		IsFinalSubmission:   false,
		SubmissionTimestamp: now.UTC().Format(time.RFC3339),
	}

	if skin := record.AnalysisResult.SkinAnalysis; skin != nil {
		flat.SkinType = string(skin.SkinType)
		flat.OilyScore = skin.OilyScore
		flat.DryScore = skin.DryScore
	}
	if record.QuizResult != nil {
		flat.QuizAttempts = record.QuizResult.Attempts
	}

	slots := []*string{&flat.Action1, &flat.Action2, &flat.Action3, &flat.Action4, &flat.Action5}
	for i, slot := range slots {
		if i < len(record.ActionPlan.Actions) {
			*slot = record.ActionPlan.Actions[i]
		}
	}

	return flat
}

// ProjectFinal builds the follow-up payload. It re-derives the initial
// projection rather than caching it, so any record fields the student
// changed between the two submissions come through.
func ProjectFinal(record *models.Record, now time.Time) Flat {
	flat := ProjectInitial(record, now)

	flat.ActionResults = record.TwoWeekReview.ActionResults
	flat.SkinChange = record.TwoWeekReview.SkinChange
	flat.HelpfulActions = record.TwoWeekReview.HelpfulActions
	flat.Difficulties = record.TwoWeekReview.Difficulties
	flat.FutureHabits = record.TwoWeekReview.FutureHabits
	flat.Learning = record.TwoWeekReview.Learning

	flat.IsFinalSubmission = true
	flat.SubmissionTimestamp = now.UTC().Format(time.RFC3339)
	return flat
}
