package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"acadrec/internal/gqlerr"
	"acadrec/internal/models"
)

type ResultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) GetByID(ctx context.Context, id string) (*models.Result, error) {
	var result models.Result
	err := r.db.WithContext(ctx).First(&result, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gqlerr.NotFound("result not found")
	} else if err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns one window of results, newest year first then by id for
// a stable order. Optional filters narrow by student or course.
func (r *ResultRepository) List(ctx context.Context, studentID, courseID string, limit, offset int) ([]models.Result, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Result{})
	if studentID != "" {
		q = q.Where("student_id = ?", studentID)
	}
	if courseID != "" {
		q = q.Where("course_id = ?", courseID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var results []models.Result
	if err := q.Order("year DESC, id ASC").Limit(limit).Offset(offset).Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// ListByStudent returns every result a student holds, newest year first.
func (r *ResultRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Result, error) {
	var results []models.Result
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Order("year DESC, id ASC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

type CreateResultInput struct {
	StudentID string
	CourseID  string
	Score     float64
	Grade     string
	Year      int
}

func (r *ResultRepository) Create(ctx context.Context, input CreateResultInput) (*models.Result, error) {
	if err := validateResultDomains(input.Score, input.Grade, input.Year); err != nil {
		return nil, err
	}
	var studentCount int64
	if err := r.db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", input.StudentID).Count(&studentCount).Error; err != nil {
		return nil, err
	}
	if studentCount == 0 {
		return nil, gqlerr.BadInput("student does not exist")
	}
	var courseCount int64
	if err := r.db.WithContext(ctx).Model(&models.Course{}).Where("id = ?", input.CourseID).Count(&courseCount).Error; err != nil {
		return nil, err
	}
	if courseCount == 0 {
		return nil, gqlerr.BadInput("course does not exist")
	}

	result := models.Result{
		StudentID: input.StudentID,
		CourseID:  input.CourseID,
		Score:     input.Score,
		Grade:     input.Grade,
		Year:      input.Year,
	}
	if err := r.db.WithContext(ctx).Create(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

type UpdateResultInput struct {
	Score *float64
	Grade *string
	Year  *int
}

func (r *ResultRepository) Update(ctx context.Context, id string, input UpdateResultInput) (*models.Result, error) {
	result, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Score != nil {
		if *input.Score < models.MinScore || *input.Score > models.MaxScore {
			return nil, gqlerr.BadInput("score must be between 0 and 100")
		}
		updates["score"] = *input.Score
	}
	if input.Grade != nil {
		if !models.ValidGrade(*input.Grade) {
			return nil, gqlerr.BadInput("unknown grade")
		}
		updates["grade"] = *input.Grade
	}
	if input.Year != nil {
		if *input.Year < models.MinYear || *input.Year > models.MaxYear {
			return nil, gqlerr.BadInput("year must be between 2000 and 2100")
		}
		updates["year"] = *input.Year
	}
	if len(updates) == 0 {
		return result, nil
	}
	if err := r.db.WithContext(ctx).Model(result).Updates(updates).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ResultRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Result{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, gqlerr.NotFound("result not found")
	}
	return true, nil
}

func validateResultDomains(score float64, grade string, year int) error {
	if score < models.MinScore || score > models.MaxScore {
		return gqlerr.BadInput("score must be between 0 and 100")
	}
	if !models.ValidGrade(grade) {
		return gqlerr.BadInput("unknown grade")
	}
	if year < models.MinYear || year > models.MaxYear {
		return gqlerr.BadInput("year must be between 2000 and 2100")
	}
	return nil
}
