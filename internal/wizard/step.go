package wizard

// StepID identifies one step of the questionnaire pipeline. Steps are held
// as an ordered list of descriptors, so inserting a step (the quiz was added
// this way) renumbers everything after it without touching transition code.
type StepID int

const (
	StepIntake StepID = iota
	StepAssessment
	StepResults
	StepQuiz
	StepActionPlan
	StepExport
	StepFollowUp
	StepFinalExport
)

var stepNames = map[StepID]string{
	StepIntake:      "intake",
	StepAssessment:  "assessment",
	StepResults:     "results",
	StepQuiz:        "quiz",
	StepActionPlan:  "actionPlan",
	StepExport:      "export",
	StepFollowUp:    "followUp",
	StepFinalExport: "finalExport",
}

func (s StepID) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStepID maps an API step name back to its ID.
func ParseStepID(name string) (StepID, bool) {
	for id, n := range stepNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// step couples a step ID with the gate guarding its forward transition.
// A nil gate means the step advances freely.
type step struct {
	id   StepID
	gate func(in any) error
}

// IntakeInput carries the identity and self-reflection answers for the
// intake gate. JSON tags match the form field names.
type IntakeInput struct {
	ClassName   string `json:"className"`
	SeatNumber  string `json:"seatNumber"`
	StudentName string `json:"studentName"`
	StudentID   string `json:"studentId"`
	Age         string `json:"age"`
	SelfImage   string `json:"selfImage"`
	IdealSkin   string `json:"idealSkin"`
	Impression  string `json:"impression"`
	CurrentCare string `json:"currentCare"`
}

// AssessmentInput carries the seven skin answers plus the lifestyle block.
type AssessmentInput struct {
	TZone        string `json:"tzone"`
	Cheeks       string `json:"cheeks"`
	Forehead     string `json:"forehead"`
	Nose         string `json:"nose"`
	Acne         string `json:"acne"`
	Water        string `json:"water"`
	AfterWash    string `json:"afterWash"`
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

// ActionPlanInput carries the three reflections, the five action slots and
// the optional expectation and difficulty answers.
type ActionPlanInput struct {
	CognitionChange string   `json:"cognitionChange"`
	HabitImpact     string   `json:"habitImpact"`
	Improvements    string   `json:"improvements"`
	Actions         []string `json:"actions"`
	Expectation     string   `json:"expectation"`
	Difficulty      string   `json:"difficulty"`
}

// FollowUpInput carries the six two-week review answers.
type FollowUpInput struct {
	ActionResults  string `json:"actionResults"`
	SkinChange     string `json:"skinChange"`
	HelpfulActions string `json:"helpfulActions"`
	Difficulties   string `json:"difficulties"`
	FutureHabits   string `json:"futureHabits"`
	Learning       string `json:"learning"`
}
