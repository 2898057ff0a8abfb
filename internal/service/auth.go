// Package service holds the authentication flow: sign-up creates the
// User+Student pair atomically, sign-in trades credentials for a token.
package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"acadrec/internal/auth"
	"acadrec/internal/gqlerr"
	"acadrec/internal/models"
	"acadrec/internal/repository"
)

// signInMessage is shared by both failure causes so callers cannot
// probe which emails have accounts.
const signInMessage = "invalid email or password"

type AuthService struct {
	db         *gorm.DB
	users      *repository.UserRepository
	jwt        *auth.JWTService
	bcryptCost int
	logger     *logrus.Logger
}

func NewAuthService(db *gorm.DB, users *repository.UserRepository, jwt *auth.JWTService, bcryptCost int, logger *logrus.Logger) *AuthService {
	return &AuthService{db: db, users: users, jwt: jwt, bcryptCost: bcryptCost, logger: logger}
}

type SignUpInput struct {
	Name        string
	Email       string
	Password    string
	InstituteID string
}

// AuthPayload is returned by both signUp and signIn.
type AuthPayload struct {
	Token string
	User  *models.User
}

// SignUp registers an account and its student profile. Both inserts run
// in one transaction: a failure after the user insert must not leave an
// orphaned account behind.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*AuthPayload, error) {
	if input.Name == "" {
		return nil, gqlerr.BadInput("name is required")
	}
	if !models.ValidEmail(input.Email) {
		return nil, gqlerr.BadInput("invalid email address")
	}
	if len(input.Password) < 8 {
		return nil, gqlerr.BadInput("password must be at least 8 characters")
	}

	taken, err := s.users.EmailTaken(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, gqlerr.BadInput("email already registered")
	}

	var instCount int64
	if err := s.db.WithContext(ctx).Model(&models.Institute{}).Where("id = ?", input.InstituteID).Count(&instCount).Error; err != nil {
		return nil, err
	}
	if instCount == 0 {
		return nil, gqlerr.BadInput("institute does not exist")
	}

	hashed, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{Email: input.Email, Password: hashed, Role: models.RoleStudent}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student := models.Student{
			Name:        input.Name,
			Email:       input.Email,
			InstituteID: input.InstituteID,
			UserID:      user.ID,
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	s.logger.WithField("user_id", user.ID).Info("user signed up")
	return &AuthPayload{Token: token, User: &user}, nil
}

type SignInInput struct {
	Email    string
	Password string
}

// SignIn verifies credentials and issues a token. Unknown email and
// wrong password are indistinguishable in the response.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*AuthPayload, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if gqlerr.IsNotFound(err) {
			return nil, gqlerr.Unauthenticated(signInMessage)
		}
		return nil, err
	}
	if !auth.CheckPassword(input.Password, user.Password) {
		return nil, gqlerr.Unauthenticated(signInMessage)
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	s.logger.WithField("user_id", user.ID).Info("user signed in")
	return &AuthPayload{Token: token, User: user}, nil
}

// Me returns the account behind the current principal.
func (s *AuthService) Me(ctx context.Context) (*models.User, error) {
	principal, err := auth.RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, principal.ID)
}
