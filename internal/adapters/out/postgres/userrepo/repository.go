package userrepo

import (
	"context"
	"errors"

	"burgershop/internal/core/domain/model/user"
	"burgershop/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker records aggregates modified during a unit of work.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate interface{})
}

// GormUserRepository implements the user repository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormUserRepository creates a repository bound to the given connection,
// which may be a transaction owned by a unit of work.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{db: db, tracker: tracker}
}

// Add persists a new user.
func (r *GormUserRepository) Add(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.ID, u)
	return nil
}

// Update persists changes to an existing user.
func (r *GormUserRepository) Update(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("userId", dto.ID, gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(dto.ID, u)
	return nil
}

// Get retrieves a user by identifier.
func (r *GormUserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("userId", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user by email, matched case-insensitively.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "email = LOWER(?)", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("email", email, err)
		}
		return nil, err
	}

	return toDomain(dto)
}
