package menurepo

import (
	"context"
	"errors"

	"burgershop/internal/core/domain/model/menu"
	"burgershop/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker records aggregates modified during a unit of work.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate interface{})
}

// GormMenuItemRepository implements the menu item repository using GORM.
type GormMenuItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormMenuItemRepository creates a repository bound to the given connection,
// which may be a transaction owned by a unit of work.
func NewGormMenuItemRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db, tracker: tracker}
}

// Add persists a new menu item.
func (r *GormMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(item)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.ID, item)
	return nil
}

// Update persists changes to an existing menu item.
func (r *GormMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(item)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("menuItemId", dto.ID, gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(dto.ID, item)
	return nil
}

// Get retrieves a menu item by its identifier.
func (r *GormMenuItemRepository) Get(ctx context.Context, id string) (*menu.MenuItem, error) {
	var dto MenuItemDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("menuItemId", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full menu ordered by category, then name.
func (r *GormMenuItemRepository) GetAll(ctx context.Context) ([]*menu.MenuItem, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("category, name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Delete removes a menu item.
func (r *GormMenuItemRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("menuItemId", id, gorm.ErrRecordNotFound)
	}
	return nil
}
