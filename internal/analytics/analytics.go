// Package analytics implements the read-only aggregation queries. The
// grouping and ordering run in SQL; only resultsPerInstitute pulls full
// nested rows, because it reports per-result detail and is capped at
// ten institutes to bound that cost.
package analytics

import (
	"context"

	"github.com/montanaflynn/stats"
	"gorm.io/gorm"

	"acadrec/internal/gqlerr"
	"acadrec/internal/models"
	"acadrec/internal/pagination"
)

// Service runs the aggregation queries over the shared handle.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// FlatResult is one result row annotated with its student and course,
// denormalized for the institute rollup.
type FlatResult struct {
	Result      models.Result
	StudentID   string
	StudentName string
}

// InstituteReport is the per-institute rollup.
type InstituteReport struct {
	Institute     models.Institute
	TotalStudents int
	AverageScore  float64
	Results       []FlatResult
}

// ResultsPerInstitute computes the rollup for one institute, or for the
// first ten by name when no id is given. The ten-institute cap bounds
// the nested materialization; it is not a pagination knob.
func (s *Service) ResultsPerInstitute(ctx context.Context, instituteID *string) ([]InstituteReport, error) {
	q := s.db.WithContext(ctx).
		Preload("Students.Results.Course").
		Order("name ASC")
	if instituteID != nil {
		q = q.Where("id = ?", *instituteID)
	} else {
		q = q.Limit(10)
	}

	var institutes []models.Institute
	if err := q.Find(&institutes).Error; err != nil {
		return nil, err
	}
	if instituteID != nil && len(institutes) == 0 {
		return nil, gqlerr.NotFound("institute not found")
	}

	reports := make([]InstituteReport, 0, len(institutes))
	for _, inst := range institutes {
		report := InstituteReport{Institute: inst, TotalStudents: len(inst.Students)}
		var scores []float64
		for _, st := range inst.Students {
			for _, res := range st.Results {
				report.Results = append(report.Results, FlatResult{
					Result:      res,
					StudentID:   st.ID,
					StudentName: st.Name,
				})
				scores = append(scores, res.Score)
			}
		}
		if len(scores) > 0 {
			mean, err := stats.Mean(scores)
			if err != nil {
				return nil, err
			}
			report.AverageScore = mean
		}
		// Students preloaded for the rollup are not re-serialized.
		report.Institute.Students = nil
		reports = append(reports, report)
	}
	return reports, nil
}

// CourseEnrollment pairs a course with how many results it produced in
// the queried year.
type CourseEnrollment struct {
	Course          models.Course
	EnrollmentCount int64
}

type courseCountRow struct {
	CourseID        string
	EnrollmentCount int64
}

// TopCourses groups the year's results by course and returns the most
// enrolled, descending by count. Ties break on course id ascending so
// the order is reproducible.
func (s *Service) TopCourses(ctx context.Context, year, limit int) ([]CourseEnrollment, error) {
	if year < models.MinYear || year > models.MaxYear {
		return nil, gqlerr.BadInput("year must be between 2000 and 2100")
	}
	limit, _ = pagination.Normalize(limit, 0)

	var rows []courseCountRow
	err := s.db.WithContext(ctx).
		Model(&models.Result{}).
		Select("course_id, COUNT(*) AS enrollment_count").
		Where("year = ?", year).
		Group("course_id").
		Order("enrollment_count DESC, course_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []CourseEnrollment{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.CourseID
	}
	var courses []models.Course
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&courses).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	out := make([]CourseEnrollment, 0, len(rows))
	for _, row := range rows {
		course, ok := byID[row.CourseID]
		if !ok {
			// Course deleted between the two queries; skip the stale group.
			continue
		}
		out = append(out, CourseEnrollment{Course: course, EnrollmentCount: row.EnrollmentCount})
	}
	return out, nil
}

// StudentStanding is one student's cumulative aggregate across all years.
type StudentStanding struct {
	Student      models.Student
	TotalScore   float64
	AverageScore float64
	ResultCount  int64
}

type studentScoreRow struct {
	StudentID    string
	TotalScore   float64
	AverageScore float64
	ResultCount  int64
}

// TopStudents ranks students by cumulative score across all years,
// descending. Ties break on student id ascending.
func (s *Service) TopStudents(ctx context.Context, limit int) ([]StudentStanding, error) {
	limit, _ = pagination.Normalize(limit, 0)

	var rows []studentScoreRow
	err := s.db.WithContext(ctx).
		Model(&models.Result{}).
		Select("student_id, SUM(score) AS total_score, AVG(score) AS average_score, COUNT(*) AS result_count").
		Group("student_id").
		Order("total_score DESC, student_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []StudentStanding{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.StudentID
	}
	var students []models.Student
	if err := s.db.WithContext(ctx).Preload("Institute").Where("id IN ?", ids).Find(&students).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.Student, len(students))
	for _, st := range students {
		byID[st.ID] = st
	}

	out := make([]StudentStanding, 0, len(rows))
	for _, row := range rows {
		student, ok := byID[row.StudentID]
		if !ok {
			continue
		}
		out = append(out, StudentStanding{
			Student:      student,
			TotalScore:   row.TotalScore,
			AverageScore: row.AverageScore,
			ResultCount:  row.ResultCount,
		})
	}
	return out, nil
}
