package analytics

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"acadrec/internal/db"
	"acadrec/internal/gqlerr"
	"acadrec/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

type fixture struct {
	inst     models.Institute
	students map[string]models.Student
	courses  map[string]models.Course
}

func seed(t *testing.T, gdb *gorm.DB) *fixture {
	t.Helper()

	f := &fixture{
		students: map[string]models.Student{},
		courses:  map[string]models.Course{},
	}
	f.inst = models.Institute{Name: "Northfield", Location: "North City"}
	require.NoError(t, gdb.Create(&f.inst).Error)

	for _, name := range []string{"S1", "S2", "S3"} {
		user := models.User{Email: name + "@example.com", Password: "x", Role: models.RoleStudent}
		require.NoError(t, gdb.Create(&user).Error)
		student := models.Student{Name: name, Email: user.Email, InstituteID: f.inst.ID, UserID: user.ID}
		require.NoError(t, gdb.Create(&student).Error)
		f.students[name] = student
	}
	for _, c := range []struct {
		title, code string
	}{{"Course 1", "C1"}, {"Course 2", "C2"}, {"Course 3", "C3"}} {
		course := models.Course{Title: c.title, Code: c.code, Credits: 3}
		require.NoError(t, gdb.Create(&course).Error)
		f.courses[c.code] = course
	}
	return f
}

func addResult(t *testing.T, gdb *gorm.DB, student models.Student, course models.Course, score float64, year int) {
	t.Helper()
	r := models.Result{StudentID: student.ID, CourseID: course.ID, Score: score, Grade: "B", Year: year}
	require.NoError(t, gdb.Create(&r).Error)
}

func TestTopStudents_OrderByTotalScore(t *testing.T) {
	gdb := newTestDB(t)
	f := seed(t, gdb)
	svc := NewService(gdb)

	// S1: 90+80=170, S2: 100, S3: 50.
	addResult(t, gdb, f.students["S1"], f.courses["C1"], 90, 2024)
	addResult(t, gdb, f.students["S1"], f.courses["C2"], 80, 2024)
	addResult(t, gdb, f.students["S2"], f.courses["C1"], 100, 2024)
	addResult(t, gdb, f.students["S3"], f.courses["C1"], 50, 2023)

	standings, err := svc.TopStudents(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, standings, 3)

	assert.Equal(t, "S1", standings[0].Student.Name)
	assert.Equal(t, 170.0, standings[0].TotalScore)
	assert.Equal(t, 85.0, standings[0].AverageScore)
	assert.Equal(t, int64(2), standings[0].ResultCount)

	assert.Equal(t, "S2", standings[1].Student.Name)
	assert.Equal(t, 100.0, standings[1].TotalScore)

	assert.Equal(t, "S3", standings[2].Student.Name)
	assert.Equal(t, 50.0, standings[2].TotalScore)

	// Institute is eagerly attached for the winners.
	require.NotNil(t, standings[0].Student.Institute)
	assert.Equal(t, "Northfield", standings[0].Student.Institute.Name)
}

func TestTopStudents_Limit(t *testing.T) {
	gdb := newTestDB(t)
	f := seed(t, gdb)
	svc := NewService(gdb)

	addResult(t, gdb, f.students["S1"], f.courses["C1"], 90, 2024)
	addResult(t, gdb, f.students["S2"], f.courses["C1"], 80, 2024)
	addResult(t, gdb, f.students["S3"], f.courses["C1"], 70, 2024)

	standings, err := svc.TopStudents(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, standings, 2)
}

func TestTopCourses_YearScopedCounts(t *testing.T) {
	gdb := newTestDB(t)
	f := seed(t, gdb)
	svc := NewService(gdb)

	// 2024 enrollments: C1 x3, C2 x3, C3 x1. One 2023 row on C3 must
	// never leak into the 2024 ranking.
	for _, s := range []string{"S1", "S2", "S3"} {
		addResult(t, gdb, f.students[s], f.courses["C1"], 70, 2024)
		addResult(t, gdb, f.students[s], f.courses["C2"], 70, 2024)
	}
	addResult(t, gdb, f.students["S1"], f.courses["C3"], 70, 2024)
	addResult(t, gdb, f.students["S2"], f.courses["C3"], 70, 2023)

	top, err := svc.TopCourses(context.Background(), 2024, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)

	// C1 and C2 tie at 3; both outrank C3.
	got := map[string]int64{}
	for _, ce := range top {
		got[ce.Course.Code] = ce.EnrollmentCount
	}
	assert.Equal(t, int64(3), got["C1"])
	assert.Equal(t, int64(3), got["C2"])
	assert.NotContains(t, got, "C3")
}

func TestTopCourses_LimitClamped(t *testing.T) {
	gdb := newTestDB(t)
	f := seed(t, gdb)
	svc := NewService(gdb)

	// 101 distinct courses, one 2024 result each.
	for i := 0; i < 101; i++ {
		course := models.Course{Title: fmt.Sprintf("Elective %d", i), Code: fmt.Sprintf("EL-%03d", i), Credits: 3}
		require.NoError(t, gdb.Create(&course).Error)
		addResult(t, gdb, f.students["S1"], course, 70, 2024)
	}

	top, err := svc.TopCourses(context.Background(), 2024, 100000)
	require.NoError(t, err)
	assert.Len(t, top, 100, "limit clamps like every other list window")
}

func TestTopCourses_InvalidYear(t *testing.T) {
	gdb := newTestDB(t)
	seed(t, gdb)
	svc := NewService(gdb)

	_, err := svc.TopCourses(context.Background(), 1990, 10)
	assert.Equal(t, gqlerr.CodeBadUserInput, gqlerr.CodeOf(err))
}

func TestResultsPerInstitute_SingleInstitute(t *testing.T) {
	gdb := newTestDB(t)
	f := seed(t, gdb)
	svc := NewService(gdb)

	addResult(t, gdb, f.students["S1"], f.courses["C1"], 90, 2024)
	addResult(t, gdb, f.students["S2"], f.courses["C2"], 70, 2024)

	reports, err := svc.ResultsPerInstitute(context.Background(), &f.inst.ID)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, 3, report.TotalStudents)
	assert.Equal(t, 80.0, report.AverageScore)
	require.Len(t, report.Results, 2)
	for _, fr := range report.Results {
		assert.NotEmpty(t, fr.StudentName)
		require.NotNil(t, fr.Result.Course, "course detail attached to each flattened result")
	}
}

func TestResultsPerInstitute_EmptyInstitute(t *testing.T) {
	gdb := newTestDB(t)
	f := seed(t, gdb)
	svc := NewService(gdb)

	reports, err := svc.ResultsPerInstitute(context.Background(), &f.inst.ID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Zero(t, reports[0].AverageScore, "no results means average 0, not NaN")
	assert.Empty(t, reports[0].Results)
}

func TestResultsPerInstitute_UnknownID(t *testing.T) {
	gdb := newTestDB(t)
	seed(t, gdb)
	svc := NewService(gdb)

	missing := "00000000-0000-0000-0000-000000000000"
	_, err := svc.ResultsPerInstitute(context.Background(), &missing)
	assert.Equal(t, gqlerr.CodeNotFound, gqlerr.CodeOf(err))
}

func TestResultsPerInstitute_CapAtTen(t *testing.T) {
	gdb := newTestDB(t)
	seed(t, gdb)
	svc := NewService(gdb)

	// 11 extra institutes beyond the fixture one.
	for i := 0; i < 11; i++ {
		inst := models.Institute{Name: string(rune('A'+i)) + " Institute", Location: "Town"}
		require.NoError(t, gdb.Create(&inst).Error)
	}

	reports, err := svc.ResultsPerInstitute(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, reports, 10, "uncapped rollups would materialize every institute")
}
