package repository

import (
	"context"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"gorm.io/gorm"
)

// UserRepository is the narrow user contract used by the order engines.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByIDAndType looks a user up by id, restricted to one role.
func (r *UserRepository) FindByIDAndType(ctx context.Context, id uint, userType string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND type = ?", id, userType).
		First(&user).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}
