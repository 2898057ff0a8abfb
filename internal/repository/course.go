package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"acadrec/internal/gqlerr"
	"acadrec/internal/models"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gqlerr.NotFound("course not found")
	} else if err != nil {
		return nil, err
	}
	return &course, nil
}

// List returns one window of courses ordered by code. Search filters
// case-insensitively over title/code.
func (r *CourseRepository) List(ctx context.Context, search string, limit, offset int) ([]models.Course, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Course{})
	if search != "" {
		pat := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(code) LIKE ?", pat, pat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var courses []models.Course
	if err := q.Order("code ASC, id ASC").Limit(limit).Offset(offset).Find(&courses).Error; err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

type CreateCourseInput struct {
	Title   string
	Code    string
	Credits int
}

func (r *CourseRepository) Create(ctx context.Context, input CreateCourseInput) (*models.Course, error) {
	if input.Title == "" || input.Code == "" {
		return nil, gqlerr.BadInput("title and code are required")
	}
	if input.Credits < models.MinCredits || input.Credits > models.MaxCredits {
		return nil, gqlerr.BadInput("credits must be between 1 and 6")
	}
	taken, err := r.codeTaken(ctx, input.Code, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, gqlerr.BadInput("course code already exists")
	}

	course := models.Course{Title: input.Title, Code: input.Code, Credits: input.Credits}
	if err := r.db.WithContext(ctx).Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

type UpdateCourseInput struct {
	Title   *string
	Code    *string
	Credits *int
}

// Update applies only the supplied fields. The code uniqueness check
// runs only when the code actually changes, so writing a course's own
// code back is a no-op.
func (r *CourseRepository) Update(ctx context.Context, id string, input UpdateCourseInput) (*models.Course, error) {
	course, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		if *input.Title == "" {
			return nil, gqlerr.BadInput("title cannot be empty")
		}
		updates["title"] = *input.Title
	}
	if input.Code != nil && *input.Code != course.Code {
		if *input.Code == "" {
			return nil, gqlerr.BadInput("code cannot be empty")
		}
		taken, err := r.codeTaken(ctx, *input.Code, course.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, gqlerr.BadInput("course code already exists")
		}
		updates["code"] = *input.Code
	}
	if input.Credits != nil {
		if *input.Credits < models.MinCredits || *input.Credits > models.MaxCredits {
			return nil, gqlerr.BadInput("credits must be between 1 and 6")
		}
		updates["credits"] = *input.Credits
	}
	if len(updates) == 0 {
		return course, nil
	}
	if err := r.db.WithContext(ctx).Model(course).Updates(updates).Error; err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes the course and, via cascade, its results.
func (r *CourseRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Course{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, gqlerr.NotFound("course not found")
	}
	return true, nil
}

func (r *CourseRepository) codeTaken(ctx context.Context, code, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Course{}).Where("code = ?", code)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
