// Package report renders the downloadable, self-contained HTML report.
// One template serves both phases: the final phase adds the teacher-facing
// grading rubric and the two-week review section.
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Inphy521/Home-Economics/internal/models"
)

// Phase selects which report variant to render.
type Phase string

const (
	PhaseInitial Phase = "initial"
	PhaseFinal   Phase = "final"
)

// ParsePhase maps the query value to a phase, defaulting to initial.
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "", string(PhaseInitial):
		return PhaseInitial, nil
	case string(PhaseFinal):
		return PhaseFinal, nil
	}
	return "", fmt.Errorf("unknown report phase %q", s)
}

// rubricRow is one line of the teacher grading table on the final report.
type rubricRow struct {
	Item     string
	Criteria string
	Points   string
}

var rubric = []rubricRow{
	{"基本資料與自我認知", "完整填寫並能描述自己的膚況", "20"},
	{"膚質評估與分析", "確實完成評估並理解分析結果", "20"},
	{"行動計畫", "五項行動具體可行", "20"},
	{"兩週執行成果", "如實記錄執行情形與困難", "25"},
	{"學習反思", "能說出新的認識與未來習慣", "15"},
}

type reportData struct {
	Record *models.Record
	Final  bool
	Rubric []rubricRow
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="zh-Hant">
<head>
<meta charset="utf-8">
<title>{{.Record.BasicInfo.StudentName}}的{{if .Final}}最終學習報告{{else}}膚質分析報告{{end}}</title>
<style>
body { font-family: "Noto Sans TC", sans-serif; margin: 2rem auto; max-width: 48rem; line-height: 1.7; }
h1 { border-bottom: 2px solid #0ea5e9; padding-bottom: .3rem; }
section { margin-bottom: 1.5rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #cbd5e1; padding: .4rem .6rem; text-align: left; }
</style>
</head>
<body>
<h1>{{if .Final}}最終學習報告{{else}}個人膚質分析報告{{end}}</h1>
<section>
<h2>基本資料</h2>
<p>班級：{{.Record.BasicInfo.ClassName}}　座號：{{.Record.BasicInfo.SeatNumber}}　姓名：{{.Record.BasicInfo.StudentName}}</p>
</section>
<section>
<h2>自我認知</h2>
<p><strong>我眼中的自己：</strong>{{.Record.SelfReflection.SelfImage}}</p>
<p><strong>理想的膚況：</strong>{{.Record.SelfReflection.IdealSkin}}</p>
<p><strong>希望給人的印象：</strong>{{.Record.SelfReflection.Impression}}</p>
<p><strong>目前的保養方式：</strong>{{.Record.SelfReflection.CurrentCare}}</p>
</section>
{{with .Record.AnalysisResult.SkinAnalysis}}
<section>
<h2>膚質分析結果</h2>
<p>{{.SkinIcon}} <strong>{{.SkinType}}</strong></p>
<p>{{.SkinTypeDesc}}</p>
<p>出油指數：{{.OilyScore}} / 4　乾燥指數：{{.DryScore}} / 4</p>
</section>
{{end}}
<section>
<h2>我的行動計畫</h2>
<p><strong>認知的改變：</strong>{{.Record.ActionPlan.CognitionChange}}</p>
<p><strong>習慣的影響：</strong>{{.Record.ActionPlan.HabitImpact}}</p>
<p><strong>想改善的地方：</strong>{{.Record.ActionPlan.Improvements}}</p>
<ol>
{{range .Record.ActionPlan.Actions}}<li>{{.}}</li>
{{end}}</ol>
{{if .Record.ActionPlan.Expectation}}<p><strong>期待：</strong>{{.Record.ActionPlan.Expectation}}</p>{{end}}
</section>
{{if .Final}}
<section>
<h2>兩週後成果檢視</h2>
<p><strong>執行成果：</strong>{{.Record.TwoWeekReview.ActionResults}}</p>
<p><strong>膚質改變：</strong>{{.Record.TwoWeekReview.SkinChange}}</p>
<p><strong>最有幫助的行動：</strong>{{.Record.TwoWeekReview.HelpfulActions}}</p>
<p><strong>遇到的困難：</strong>{{.Record.TwoWeekReview.Difficulties}}</p>
<p><strong>未來會繼續的習慣：</strong>{{.Record.TwoWeekReview.FutureHabits}}</p>
<p><strong>新的認識：</strong>{{.Record.TwoWeekReview.Learning}}</p>
</section>
<section>
<h2>教師評分表</h2>
<table>
<tr><th>項目</th><th>評分標準</th><th>配分</th></tr>
{{range .Rubric}}<tr><td>{{.Item}}</td><td>{{.Criteria}}</td><td>{{.Points}}</td></tr>
{{end}}</table>
</section>
{{end}}
</body>
</html>
`))

// Render produces the self-contained HTML document for the given phase.
func Render(record *models.Record, phase Phase) ([]byte, error) {
	var buf bytes.Buffer
	data := reportData{
		Record: record,
		Final:  phase == PhaseFinal,
		Rubric: rubric,
	}
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", phase, err)
	}
	return buf.Bytes(), nil
}
