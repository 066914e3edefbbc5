// Package wizard owns the ordered, gate-guarded questionnaire flow and the
// session record it fills in. Each gate validates one step's input, and only
// on success copies the whole sub-section into the record, so a section is
// never half written.
package wizard

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/analysis"
	"github.com/Inphy521/Home-Economics/internal/models"
)

// Wizard drives one student session through the step pipeline.
type Wizard struct {
	log     *zap.Logger
	record  *models.Record
	steps   []step
	current int
	quiz    *Quiz
	points  []models.PressurePoint

	// now is swappable for tests.
	now func() time.Time
}

// New builds a wizard at the intake step with an empty record. The pressure
// points become the matching-quiz dataset when that step is reached.
func New(log *zap.Logger, points []models.PressurePoint) *Wizard {
	w := &Wizard{
		log:    log,
		record: models.NewRecord(),
		points: points,
		now:    time.Now,
	}
	w.steps = []step{
		{id: StepIntake, gate: w.gateIntake},
		{id: StepAssessment, gate: w.gateAssessment},
		{id: StepResults, gate: nil},
		{id: StepQuiz, gate: w.gateQuiz},
		{id: StepActionPlan, gate: w.gateActionPlan},
		{id: StepExport, gate: nil},
		{id: StepFollowUp, gate: w.gateFollowUp},
		{id: StepFinalExport, gate: nil},
	}
	return w
}

// Current returns the active step.
func (w *Wizard) Current() StepID {
	return w.steps[w.current].id
}

// Record returns the session record. Callers must treat it as read-only;
// mutation happens through the gates.
func (w *Wizard) Record() *models.Record {
	return w.record
}

// Quiz returns the matching-quiz state, nil before the quiz step is entered.
func (w *Wizard) Quiz() *Quiz {
	return w.quiz
}

// Advance runs the current step's gate over in and, on success, activates
// the next step. A gate failure leaves both the record and the active step
// untouched.
func (w *Wizard) Advance(in any) error {
	if w.current == len(w.steps)-1 {
		return ErrLastStep
	}

	current := w.steps[w.current]
	if current.gate != nil {
		if err := current.gate(in); err != nil {
			w.log.Warn("Step gate refused transition",
				zap.String("step", current.id.String()),
				zap.Error(err),
			)
			return err
		}
	}

	w.current++
	w.enter(w.steps[w.current].id)

	w.log.Info("Step transition",
		zap.String("from", current.id.String()),
		zap.String("to", w.Current().String()),
	)
	return nil
}

// Retreat unconditionally re-activates an earlier step. No validation runs
// and nothing is persisted.
func (w *Wizard) Retreat(to StepID) error {
	for i, s := range w.steps {
		if s.id == to {
			if i > w.current {
				return ErrForwardRetreat
			}
			w.current = i
			return nil
		}
	}
	return ErrForwardRetreat
}

// ReplaceRecord swaps in an imported record wholesale and resumes at the
// follow-up step, mirroring the load-saved-report flow.
func (w *Wizard) ReplaceRecord(record *models.Record) {
	w.record = record
	for i, s := range w.steps {
		if s.id == StepFollowUp {
			w.current = i
			return
		}
	}
}

// enter runs a step's side effect on activation. Only the quiz step has
// one: it (re)initializes the quiz unless a finished quiz would be reset.
func (w *Wizard) enter(id StepID) {
	if id != StepQuiz {
		return
	}
	if w.record.QuizResult != nil && w.record.QuizResult.Completed {
		return
	}
	w.quiz = NewQuiz(w.points)
}

// SelectQuizItem forwards a click to the quiz and stamps the record when the
// final pair is matched.
func (w *Wizard) SelectQuizItem(side QuizSide, pointID string) (SelectResult, error) {
	if w.quiz == nil {
		return SelectResult{}, ErrNoQuiz
	}
	result, err := w.quiz.Select(side, pointID)
	if err != nil {
		return SelectResult{}, err
	}
	if result.Outcome == OutcomeCompleted {
		w.record.QuizResult = &models.QuizResult{
			Attempts:  result.AttemptCount,
			Completed: true,
		}
	}
	return result, nil
}

func (w *Wizard) gateIntake(in any) error {
	input, ok := in.(IntakeInput)
	if !ok {
		return ErrWrongInput
	}

	info := models.BasicInfo{
		ClassName:   strings.TrimSpace(input.ClassName),
		SeatNumber:  strings.TrimSpace(input.SeatNumber),
		StudentName: strings.TrimSpace(input.StudentName),
		StudentID:   strings.TrimSpace(input.StudentID),
		Age:         strings.TrimSpace(input.Age),
	}
	reflection := models.SelfReflection{
		SelfImage:   strings.TrimSpace(input.SelfImage),
		IdealSkin:   strings.TrimSpace(input.IdealSkin),
		Impression:  strings.TrimSpace(input.Impression),
		CurrentCare: strings.TrimSpace(input.CurrentCare),
	}

	if !info.Complete() || !reflection.Complete() {
		return &ValidationError{
			Category: "intake",
			Message:  "請完成所有必填欄位！",
		}
	}

	w.record.BasicInfo = info
	w.record.SelfReflection = reflection
	w.record.Metadata.CreatedAt = w.now().UTC().Format(time.RFC3339)
	return nil
}

func (w *Wizard) gateAssessment(in any) error {
	input, ok := in.(AssessmentInput)
	if !ok {
		return ErrWrongInput
	}

	assessment := models.SkinAssessment{
		TZone:     models.ZoneReading(input.TZone),
		Cheeks:    models.ZoneReading(input.Cheeks),
		Forehead:  models.ZoneReading(input.Forehead),
		Nose:      models.ZoneReading(input.Nose),
		Acne:      models.AcneLevel(input.Acne),
		Water:     models.WaterTemp(input.Water),
		AfterWash: strings.TrimSpace(input.AfterWash),
	}
	if !assessment.Complete() {
		return &ValidationError{
			Category: "skinAssessment",
			Message:  "請完成所有膚質評估的選項",
		}
	}

	lifestyle := models.Lifestyle{
		DietContent:  strings.TrimSpace(input.DietContent),
		FriedFood:    input.FriedFood,
		Sugar:        input.Sugar,
		Vegetables:   input.Vegetables,
		WaterIntake:  input.WaterIntake,
		WaterType:    input.WaterType,
		SleepHours:   input.SleepHours,
		SleepTime:    input.SleepTime,
		SleepQuality: input.SleepQuality,
		Exercise:     input.Exercise,
	}
	if !lifestyle.Complete() {
		return &ValidationError{
			Category: "lifestyle",
			Message:  "請完成所有生活習慣的必填項目",
		}
	}

	w.record.SkinAssessment = assessment
	w.record.Lifestyle = lifestyle
	w.record.AnalysisResult = analysis.Analyze(assessment, lifestyle)
	return nil
}

func (w *Wizard) gateQuiz(any) error {
	if w.record.QuizResult == nil || !w.record.QuizResult.Completed {
		return &ValidationError{
			Category: "quiz",
			Message:  "請先完成穴道配對小遊戲！",
		}
	}
	return nil
}

func (w *Wizard) gateActionPlan(in any) error {
	input, ok := in.(ActionPlanInput)
	if !ok {
		return ErrWrongInput
	}

	actions := make([]string, len(input.Actions))
	for i, a := range input.Actions {
		actions[i] = strings.TrimSpace(a)
	}

	plan := models.ActionPlan{
		CognitionChange: strings.TrimSpace(input.CognitionChange),
		HabitImpact:     strings.TrimSpace(input.HabitImpact),
		Improvements:    strings.TrimSpace(input.Improvements),
		Actions:         actions,
		Expectation:     strings.TrimSpace(input.Expectation),
		Difficulty:      models.Difficulty(input.Difficulty),
	}
	if !plan.Complete() {
		return &ValidationError{
			Category: "actionPlan",
			Message:  "請完成所有反思問題與行動計畫！",
		}
	}

	w.record.ActionPlan = plan
	w.record.Metadata.CompletedAt = w.now().UTC().Format(time.RFC3339)
	return nil
}

func (w *Wizard) gateFollowUp(in any) error {
	input, ok := in.(FollowUpInput)
	if !ok {
		return ErrWrongInput
	}

	review := models.TwoWeekReview{
		ActionResults:  strings.TrimSpace(input.ActionResults),
		SkinChange:     strings.TrimSpace(input.SkinChange),
		HelpfulActions: strings.TrimSpace(input.HelpfulActions),
		Difficulties:   strings.TrimSpace(input.Difficulties),
		FutureHabits:   strings.TrimSpace(input.FutureHabits),
		Learning:       strings.TrimSpace(input.Learning),
	}
	if !review.Complete() {
		return &ValidationError{
			Category: "twoWeekReview",
			Message:  "請完成所有兩週後成果檢視的問題！",
		}
	}

	w.record.TwoWeekReview = review
	w.record.Metadata.TwoWeekCheckAt = w.now().UTC().Format(time.RFC3339)
	return nil
}
