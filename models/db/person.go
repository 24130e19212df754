package dbmodels

import "fmt"

// Person - человек, на одного человека может приходиться несколько
// откликов (по одному на вакансию). Оценки хранятся на отклике.
// Уникальность (space_id, email) обеспечивается индексом в миграции.
type Person struct {
	BaseSpaceModel
	FirstName  string `gorm:"type:varchar(255)"`
	LastName   string `gorm:"type:varchar(255)"`
	MiddleName string `gorm:"type:varchar(255)"`
	Email      string `gorm:"type:varchar(255);index"`
	Phone      string `gorm:"type:varchar(255)"`
	ResumeKey  string `gorm:"type:varchar(500)"` // ключ файла резюме в s3
}

func (p Person) GetFIO() string {
	if p.MiddleName == "" {
		return fmt.Sprintf("%s %s", p.LastName, p.FirstName)
	}
	return fmt.Sprintf("%s %s %s", p.LastName, p.FirstName, p.MiddleName)
}
