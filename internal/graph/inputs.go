package graph

import (
	"acadrec/internal/repository"
	"acadrec/internal/service"
)

// Argument decoding. graphql-go hands resolvers a map of coerced
// values; these helpers move them into typed inputs at the boundary so
// nothing downstream touches an untyped bag.

func argString(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func argStringPtr(args map[string]interface{}, key string) *string {
	if v, ok := args[key].(string); ok {
		return &v
	}
	return nil
}

func argInt(args map[string]interface{}, key string, def int) int {
	if v, ok := args[key].(int); ok {
		return v
	}
	return def
}

func argIntPtr(args map[string]interface{}, key string) *int {
	if v, ok := args[key].(int); ok {
		return &v
	}
	return nil
}

func argFloat(args map[string]interface{}, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func argFloatPtr(args map[string]interface{}, key string) *float64 {
	switch v := args[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func decodeSignUpInput(args map[string]interface{}) service.SignUpInput {
	return service.SignUpInput{
		Name:        argString(args, "name"),
		Email:       argString(args, "email"),
		Password:    argString(args, "password"),
		InstituteID: argString(args, "instituteId"),
	}
}

func decodeSignInInput(args map[string]interface{}) service.SignInInput {
	return service.SignInInput{
		Email:    argString(args, "email"),
		Password: argString(args, "password"),
	}
}

func decodeCreateInstituteInput(args map[string]interface{}) repository.CreateInstituteInput {
	return repository.CreateInstituteInput{
		Name:     argString(args, "name"),
		Location: argString(args, "location"),
	}
}

func decodeUpdateInstituteInput(args map[string]interface{}) repository.UpdateInstituteInput {
	return repository.UpdateInstituteInput{
		Name:     argStringPtr(args, "name"),
		Location: argStringPtr(args, "location"),
	}
}

func decodeCreateStudentInput(args map[string]interface{}) repository.CreateStudentInput {
	return repository.CreateStudentInput{
		Name:        argString(args, "name"),
		Email:       argString(args, "email"),
		InstituteID: argString(args, "instituteId"),
		UserID:      argString(args, "userId"),
	}
}

func decodeUpdateStudentInput(args map[string]interface{}) repository.UpdateStudentInput {
	return repository.UpdateStudentInput{
		Name:        argStringPtr(args, "name"),
		Email:       argStringPtr(args, "email"),
		InstituteID: argStringPtr(args, "instituteId"),
	}
}

func decodeCreateCourseInput(args map[string]interface{}) repository.CreateCourseInput {
	return repository.CreateCourseInput{
		Title:   argString(args, "title"),
		Code:    argString(args, "code"),
		Credits: argInt(args, "credits", 0),
	}
}

func decodeUpdateCourseInput(args map[string]interface{}) repository.UpdateCourseInput {
	return repository.UpdateCourseInput{
		Title:   argStringPtr(args, "title"),
		Code:    argStringPtr(args, "code"),
		Credits: argIntPtr(args, "credits"),
	}
}

func decodeCreateResultInput(args map[string]interface{}) repository.CreateResultInput {
	return repository.CreateResultInput{
		StudentID: argString(args, "studentId"),
		CourseID:  argString(args, "courseId"),
		Score:     argFloat(args, "score"),
		Grade:     argString(args, "grade"),
		Year:      argInt(args, "year", 0),
	}
}

func decodeUpdateResultInput(args map[string]interface{}) repository.UpdateResultInput {
	return repository.UpdateResultInput{
		Score: argFloatPtr(args, "score"),
		Grade: argStringPtr(args, "grade"),
		Year:  argIntPtr(args, "year"),
	}
}
