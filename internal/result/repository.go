package result

import (
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(res *Result) error
	ListByTestCreator(teacherID string) ([]ResultRow, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(res *Result) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(res).Error
	})
}

func (r *resultRepository) ListByTestCreator(teacherID string) ([]ResultRow, error) {
	var rows []ResultRow
	if err := r.db.Model(&Result{}).
		Select("results.id, results.test_id, tests.title AS test_title, results.user_id, users.email AS student_email, results.score, results.created_at").
		Joins("JOIN tests ON tests.id = results.test_id").
		Joins("JOIN users ON users.id = results.user_id").
		Where("tests.created_by = ?", teacherID).
		Order("results.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
