package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"acadrec/internal/gqlerr"
	"acadrec/internal/models"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gqlerr.NotFound("student not found")
	} else if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByUserID resolves the 1:1 user->student side.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).First(&student, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gqlerr.NotFound("student not found")
	} else if err != nil {
		return nil, err
	}
	return &student, nil
}

// ListByInstitute returns every student of one institute, by name.
func (r *StudentRepository) ListByInstitute(ctx context.Context, instituteID string) ([]models.Student, error) {
	var students []models.Student
	err := r.db.WithContext(ctx).Where("institute_id = ?", instituteID).Order("name ASC, id ASC").Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// List returns one window of students ordered by name. Search filters
// case-insensitively over name/email.
func (r *StudentRepository) List(ctx context.Context, search string, limit, offset int) ([]models.Student, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Student{})
	if search != "" {
		pat := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pat, pat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var students []models.Student
	if err := q.Order("name ASC, id ASC").Limit(limit).Offset(offset).Find(&students).Error; err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

type CreateStudentInput struct {
	Name        string
	Email       string
	InstituteID string
	UserID      string
}

// Create validates that the referenced institute and user exist before
// inserting; a dangling reference is a caller mistake, not a storage
// fault.
func (r *StudentRepository) Create(ctx context.Context, input CreateStudentInput) (*models.Student, error) {
	if input.Name == "" {
		return nil, gqlerr.BadInput("name is required")
	}
	if !models.ValidEmail(input.Email) {
		return nil, gqlerr.BadInput("invalid email address")
	}
	if err := r.checkInstituteExists(ctx, input.InstituteID); err != nil {
		return nil, err
	}
	var userCount int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", input.UserID).Count(&userCount).Error; err != nil {
		return nil, err
	}
	if userCount == 0 {
		return nil, gqlerr.BadInput("user does not exist")
	}
	var linked int64
	if err := r.db.WithContext(ctx).Model(&models.Student{}).Where("user_id = ?", input.UserID).Count(&linked).Error; err != nil {
		return nil, err
	}
	if linked > 0 {
		return nil, gqlerr.BadInput("user already has a student profile")
	}

	student := models.Student{
		Name:        input.Name,
		Email:       input.Email,
		InstituteID: input.InstituteID,
		UserID:      input.UserID,
	}
	if err := r.db.WithContext(ctx).Create(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

type UpdateStudentInput struct {
	Name        *string
	Email       *string
	InstituteID *string
}

func (r *StudentRepository) Update(ctx context.Context, id string, input UpdateStudentInput) (*models.Student, error) {
	student, err := r.GetByID(ctx, id)
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
	if input.Email != nil {
		if !models.ValidEmail(*input.Email) {
			return nil, gqlerr.BadInput("invalid email address")
		}
		updates["email"] = *input.Email
	}
	if input.InstituteID != nil {
		if err := r.checkInstituteExists(ctx, *input.InstituteID); err != nil {
			return nil, err
		}
		updates["institute_id"] = *input.InstituteID
	}
	if len(updates) == 0 {
		return student, nil
	}
	if err := r.db.WithContext(ctx).Model(student).Updates(updates).Error; err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes the student and, via cascade, its results. The linked
// user account survives.
func (r *StudentRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Student{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, gqlerr.NotFound("student not found")
	}
	return true, nil
}

func (r *StudentRepository) checkInstituteExists(ctx context.Context, instituteID string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Institute{}).Where("id = ?", instituteID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gqlerr.BadInput("institute does not exist")
	}
	return nil
}
