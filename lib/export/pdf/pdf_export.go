package pdfexport

import (
	"bytes"
	"fmt"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateDecisionReport - итоговый отчет по кандидату после решения
func GenerateDecisionReport(candidate dbmodels.Candidate) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateDecisionReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	fio := ""
	if candidate.Person != nil {
		fio = candidate.Person.GetFIO()
	}
	jobName := ""
	if candidate.JobPosting != nil {
		jobName = candidate.JobPosting.Name
	}
	pdf.CellFormat(0, 10, "Отчет по кандидату", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	htmlStr := fmt.Sprintf("<b>Кандидат:</b> %v<br>", fio) +
		fmt.Sprintf("<b>Вакансия:</b> %v<br>", jobName) +
		fmt.Sprintf("<b>Оценка алгоритма:</b> %v<br>", scoreText(candidate.AlgoScore)) +
		fmt.Sprintf("<b>Оценка AI:</b> %v<br>", scoreText(candidate.AiScore)) +
		fmt.Sprintf("<b>Итоговая оценка:</b> %v<br>", scoreText(candidate.CombinedScore))
	if candidate.Tier != nil {
		htmlStr += fmt.Sprintf("<b>Уровень:</b> %v<br>", string(*candidate.Tier))
	}
	if candidate.FinalDecision != nil {
		htmlStr += fmt.Sprintf("<b>Решение:</b> %v<br>", string(*candidate.FinalDecision))
		htmlStr += fmt.Sprintf("<b>Комментарий:</b> %v<br>", candidate.DecisionNotes)
	}
	if candidate.DecidedAt != nil {
		htmlStr += fmt.Sprintf("<b>Дата решения:</b> %v<br>", candidate.DecidedAt.Format("02.01.2006"))
	}
	if candidate.AiSummary != "" {
		htmlStr += fmt.Sprintf("<br><b>Заключение AI:</b><br>%v<br>", candidate.AiSummary)
	}
	html.Write(lineHt, htmlStr)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scoreText(score *int) string {
	if score == nil {
		return "не оценен"
	}
	return fmt.Sprintf("%d", *score)
}
