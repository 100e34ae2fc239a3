package test

import (
	"errors"

	"gorm.io/gorm"
)

type TestRepository interface {
	Create(t *Test) error
	GetByID(id string) (*Test, error)
	ListByCreator(userID string) ([]*Test, error)
	ListAll() ([]*Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(t *Test) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(t).Error
	})
}

func (r *testRepository) GetByID(id string) (*Test, error) {
	var t Test
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *testRepository) ListByCreator(userID string) ([]*Test, error) {
	var tests []*Test
	if err := r.db.
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *testRepository) ListAll() ([]*Test, error) {
	var tests []*Test
	if err := r.db.Order("created_at DESC").Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}
