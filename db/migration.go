package db

import (
	dbmodels "recruit-flow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Space{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Space")
	}
	if err := DB.AutoMigrate(&dbmodels.Person{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Person")
	}
	if err := DB.AutoMigrate(&dbmodels.JobPosting{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры JobPosting")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	// один человек - один отклик на вакансию
	if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_person_per_space ON people (space_id, email);").Error; err != nil {
		return errors.Wrap(err, "ошибка создания индекса уникальности персоны")
	}
	// не более одного неотмененного собеседования на этап,
	// отмена освобождает слот для повторного назначения
	if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_interview_stage_slot ON interviews (candidate_id, job_posting_id, stage_index) WHERE status <> 'cancelled';").Error; err != nil {
		return errors.Wrap(err, "ошибка создания индекса уникальности этапа собеседования")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
