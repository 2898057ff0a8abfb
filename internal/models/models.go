package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a login account. Role decides what the account may mutate.
// A student-role user owns at most one Student profile.
type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:16;not null;default:student" json:"role"`
	Student   *Student  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"student,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Institute groups students by campus.
type Institute struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	Location  string    `gorm:"size:255;not null" json:"location"`
	Students  []Student `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"students,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Institute) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Student belongs to exactly one Institute and one User. Deleting the
// student removes its results but never the login account.
type Student struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null;index" json:"name"`
	Email       string     `gorm:"size:255;not null" json:"email"`
	InstituteID string     `gorm:"type:uuid;not null;index" json:"institute_id"`
	UserID      string     `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Institute   *Institute `json:"institute,omitempty"`
	Results     []Result   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"results,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Course is an offered unit worth 1-6 credits. Code is the unique
// short identifier students enrol under (e.g. CS-101).
type Course struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null;index" json:"title"`
	Code      string    `gorm:"size:64;uniqueIndex;not null" json:"code"`
	Credits   int       `gorm:"not null;check:credits >= 1 AND credits <= 6" json:"credits"`
	Results   []Result  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"results,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Result records one student's outcome in one course for a given year.
type Result struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID string    `gorm:"type:uuid;not null;index" json:"student_id"`
	CourseID  string    `gorm:"type:uuid;not null;index" json:"course_id"`
	Score     float64   `gorm:"not null;check:score >= 0 AND score <= 100" json:"score"`
	Grade     string    `gorm:"size:4;not null" json:"grade"`
	Year      int       `gorm:"not null;index;check:year >= 2000 AND year <= 2100" json:"year"`
	Student   *Student  `json:"student,omitempty"`
	Course    *Course   `json:"course,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Result) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
