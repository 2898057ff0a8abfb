package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acadrec/internal/db"
	"acadrec/internal/models"
)

// newTestDB opens an in-memory SQLite database with foreign keys
// enforced so cascade behavior matches production constraints.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// A second pooled connection would see an empty :memory: schema.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedInstitute(t *testing.T, gdb *gorm.DB, name, location string) models.Institute {
	t.Helper()
	inst := models.Institute{Name: name, Location: location}
	require.NoError(t, gdb.Create(&inst).Error)
	return inst
}

func seedUser(t *testing.T, gdb *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "x", Role: models.RoleStudent}
	require.NoError(t, gdb.Create(&user).Error)
	return user
}

func seedStudent(t *testing.T, gdb *gorm.DB, name string, inst models.Institute, user models.User) models.Student {
	t.Helper()
	student := models.Student{Name: name, Email: user.Email, InstituteID: inst.ID, UserID: user.ID}
	require.NoError(t, gdb.Create(&student).Error)
	return student
}

func seedCourse(t *testing.T, gdb *gorm.DB, title, code string, credits int) models.Course {
	t.Helper()
	course := models.Course{Title: title, Code: code, Credits: credits}
	require.NoError(t, gdb.Create(&course).Error)
	return course
}

func seedResult(t *testing.T, gdb *gorm.DB, student models.Student, course models.Course, score float64, grade string, year int) models.Result {
	t.Helper()
	result := models.Result{StudentID: student.ID, CourseID: course.ID, Score: score, Grade: grade, Year: year}
	require.NoError(t, gdb.Create(&result).Error)
	return result
}

func ctx() context.Context {
	return context.Background()
}
