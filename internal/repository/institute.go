// Package repository holds one thin lookup/mutate wrapper per entity.
// Relationship fields are resolved by follow-up single-record lookups
// keyed on the foreign key already present on the parent; callers that
// need eager loading say so explicitly.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"acadrec/internal/gqlerr"
	"acadrec/internal/models"
)

type InstituteRepository struct {
	db *gorm.DB
}

func NewInstituteRepository(db *gorm.DB) *InstituteRepository {
	return &InstituteRepository{db: db}
}

func (r *InstituteRepository) GetByID(ctx context.Context, id string) (*models.Institute, error) {
	var inst models.Institute
	err := r.db.WithContext(ctx).First(&inst, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gqlerr.NotFound("institute not found")
	} else if err != nil {
		return nil, err
	}
	return &inst, nil
}

// List returns one window of institutes ordered by name, with the total
// matching count. Search filters case-insensitively over name/location.
func (r *InstituteRepository) List(ctx context.Context, search string, limit, offset int) ([]models.Institute, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Institute{})
	if search != "" {
		pat := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", pat, pat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var institutes []models.Institute
	if err := q.Order("name ASC, id ASC").Limit(limit).Offset(offset).Find(&institutes).Error; err != nil {
		return nil, 0, err
	}
	return institutes, total, nil
}

type CreateInstituteInput struct {
	Name     string
	Location string
}

func (r *InstituteRepository) Create(ctx context.Context, input CreateInstituteInput) (*models.Institute, error) {
	if input.Name == "" || input.Location == "" {
		return nil, gqlerr.BadInput("name and location are required")
	}
	inst := models.Institute{Name: input.Name, Location: input.Location}
	if err := r.db.WithContext(ctx).Create(&inst).Error; err != nil {
		return nil, err
	}
	return &inst, nil
}

type UpdateInstituteInput struct {
	Name     *string
	Location *string
}

// Update applies only the supplied fields.
func (r *InstituteRepository) Update(ctx context.Context, id string, input UpdateInstituteInput) (*models.Institute, error) {
	inst, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, gqlerr.BadInput("name cannot be empty")
		}
		updates["name"] = *input.Name
	}
	if input.Location != nil {
		if *input.Location == "" {
			return nil, gqlerr.BadInput("location cannot be empty")
		}
		updates["location"] = *input.Location
	}
	if len(updates) == 0 {
		return inst, nil
	}
	if err := r.db.WithContext(ctx).Model(inst).Updates(updates).Error; err != nil {
		return nil, err
	}
	return inst, nil
}

// Delete removes the institute; its students and their results go with
// it via the storage-level cascade.
func (r *InstituteRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Institute{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, gqlerr.NotFound("institute not found")
	}
	return true, nil
}
