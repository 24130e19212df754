package xlsexport

import (
	"bytes"
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"ФИО", "Контакты", "Вакансия", "Оценка алгоритма", "Оценка AI", "Итоговая оценка", "Уровень", "Позиция в воронке", "Решение"}

func (i impl) ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Кандидаты")
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		fio := ""
		contacts := ""
		if item.Person != nil {
			fio = item.Person.GetFIO()
			contacts = item.Person.Phone + "\r" + item.Person.Email
		}
		if err := writeColumn(f, sheet, col, row, fio); err != nil {
			return row, err
		}

		// "Контакты"
		col++
		if err := writeColumn(f, sheet, col, row, contacts); err != nil {
			return row, err
		}

		// "Вакансия"
		col++
		if item.JobPosting != nil {
			if err := writeColumn(f, sheet, col, row, item.JobPosting.Name); err != nil {
				return row, err
			}
		}

		// "Оценка алгоритма"
		col++
		if item.AlgoScore != nil {
			if err := writeColumn(f, sheet, col, row, *item.AlgoScore); err != nil {
				return row, err
			}
		}

		// "Оценка AI"
		col++
		if item.AiScore != nil {
			if err := writeColumn(f, sheet, col, row, *item.AiScore); err != nil {
				return row, err
			}
		}

		// "Итоговая оценка" - пусто пока оценка не завершена
		col++
		if item.CombinedScore != nil {
			if err := writeColumn(f, sheet, col, row, *item.CombinedScore); err != nil {
				return row, err
			}
		}

		// "Уровень"
		col++
		if item.Tier != nil {
			if err := writeColumn(f, sheet, col, row, string(*item.Tier)); err != nil {
				return row, err
			}
		}

		// "Позиция в воронке"
		col++
		if err := writeColumn(f, sheet, col, row, item.PipelineStatus.String()); err != nil {
			return row, err
		}

		// "Решение"
		col++
		if item.FinalDecision != nil {
			if err := writeColumn(f, sheet, col, row, string(*item.FinalDecision)); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
