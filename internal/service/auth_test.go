package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"acadrec/internal/auth"
	"acadrec/internal/db"
	"acadrec/internal/gqlerr"
	"acadrec/internal/models"
	"acadrec/internal/repository"
)

func newTestService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.Migrate(gdb))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := repository.NewUserRepository(gdb)
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	// Minimum bcrypt cost keeps the suite fast.
	return NewAuthService(gdb, users, jwtService, 4, logger), gdb
}

func seedInstitute(t *testing.T, gdb *gorm.DB) models.Institute {
	t.Helper()
	inst := models.Institute{Name: "Northfield", Location: "North City"}
	require.NoError(t, gdb.Create(&inst).Error)
	return inst
}

func TestSignUp_CreatesUserAndStudent(t *testing.T) {
	svc, gdb := newTestService(t)
	inst := seedInstitute(t, gdb)

	payload, err := svc.SignUp(context.Background(), SignUpInput{
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Password:    "correct-horse",
		InstituteID: inst.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payload.Token)
	assert.Equal(t, models.RoleStudent, payload.User.Role)

	var student models.Student
	require.NoError(t, gdb.First(&student, "user_id = ?", payload.User.ID).Error)
	assert.Equal(t, "Ada Lovelace", student.Name)
	assert.Equal(t, inst.ID, student.InstituteID)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc, gdb := newTestService(t)
	inst := seedInstitute(t, gdb)

	input := SignUpInput{Name: "Ada", Email: "ada@example.com", Password: "correct-horse", InstituteID: inst.ID}
	_, err := svc.SignUp(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), input)
	assert.Equal(t, gqlerr.CodeBadUserInput, gqlerr.CodeOf(err))
}

func TestSignUp_UnknownInstitute(t *testing.T) {
	svc, gdb := newTestService(t)

	_, err := svc.SignUp(context.Background(), SignUpInput{
		Name:        "Ada",
		Email:       "ada@example.com",
		Password:    "correct-horse",
		InstituteID: "no-such-institute",
	})
	assert.Equal(t, gqlerr.CodeBadUserInput, gqlerr.CodeOf(err))

	// The rejected sign-up must leave no partial rows.
	var userCount int64
	require.NoError(t, gdb.Model(&models.User{}).Count(&userCount).Error)
	assert.Zero(t, userCount)
}

func TestSignUp_WeakPassword(t *testing.T) {
	svc, gdb := newTestService(t)
	inst := seedInstitute(t, gdb)

	_, err := svc.SignUp(context.Background(), SignUpInput{
		Name:        "Ada",
		Email:       "ada@example.com",
		Password:    "short",
		InstituteID: inst.ID,
	})
	assert.Equal(t, gqlerr.CodeBadUserInput, gqlerr.CodeOf(err))
}

func TestSignIn_GenericFailureMessage(t *testing.T) {
	svc, gdb := newTestService(t)
	inst := seedInstitute(t, gdb)

	_, err := svc.SignUp(context.Background(), SignUpInput{
		Name:        "Ada",
		Email:       "ada@example.com",
		Password:    "correct-horse",
		InstituteID: inst.ID,
	})
	require.NoError(t, err)

	_, wrongPass := svc.SignIn(context.Background(), SignInInput{Email: "ada@example.com", Password: "wrong"})
	_, noUser := svc.SignIn(context.Background(), SignInInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, wrongPass)
	require.Error(t, noUser)
	assert.Equal(t, gqlerr.CodeUnauthenticated, gqlerr.CodeOf(wrongPass))
	assert.Equal(t, gqlerr.CodeUnauthenticated, gqlerr.CodeOf(noUser))
	// Identical message so callers cannot enumerate accounts.
	assert.Equal(t, wrongPass.Error(), noUser.Error())
}

func TestSignIn_Success(t *testing.T) {
	svc, gdb := newTestService(t)
	inst := seedInstitute(t, gdb)

	_, err := svc.SignUp(context.Background(), SignUpInput{
		Name:        "Ada",
		Email:       "ada@example.com",
		Password:    "correct-horse",
		InstituteID: inst.ID,
	})
	require.NoError(t, err)

	payload, err := svc.SignIn(context.Background(), SignInInput{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, payload.Token)
	assert.Equal(t, "ada@example.com", payload.User.Email)
}

func TestMe(t *testing.T) {
	svc, gdb := newTestService(t)
	inst := seedInstitute(t, gdb)

	payload, err := svc.SignUp(context.Background(), SignUpInput{
		Name:        "Ada",
		Email:       "ada@example.com",
		Password:    "correct-horse",
		InstituteID: inst.ID,
	})
	require.NoError(t, err)

	_, err = svc.Me(context.Background())
	assert.Equal(t, gqlerr.CodeUnauthenticated, gqlerr.CodeOf(err))

	ctx := auth.WithPrincipal(context.Background(), &auth.Principal{
		ID: payload.User.ID, Email: payload.User.Email, Role: payload.User.Role,
	})
	user, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload.User.ID, user.ID)
}
