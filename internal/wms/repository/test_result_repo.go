package repository

import (
	"context"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"gorm.io/gorm"
)

// TestResultRepository is the narrow test result contract used by the order engines.
type TestResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) *TestResultRepository {
	return &TestResultRepository{db: db}
}

// FindByRFIDs returns the results of the given units, oldest first.
func (r *TestResultRepository) FindByRFIDs(ctx context.Context, rfids []string) ([]entity.TestResult, error) {
	var results []entity.TestResult
	if len(rfids) == 0 {
		return results, nil
	}
	err := r.db.WithContext(ctx).
		Where("rfid IN ?", rfids).
		Order("date ASC, id ASC").
		Find(&results).Error
	return results, err
}
