package graph

import (
	"github.com/graphql-go/graphql"

	"acadrec/internal/auth"
)

func (s *Schema) defineMutationType() *graphql.Object {
	authPayloadType := s.defineAuthPayloadType()

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signUp": &graphql.Field{
				Type:        authPayloadType,
				Description: "Register an account and its student profile",
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"instituteId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return s.auth.SignUp(p.Context, decodeSignUpInput(p.Args))
				},
			},
			"signIn": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return s.auth.SignIn(p.Context, decodeSignInInput(p.Args))
				},
			},

			"createInstitute": &graphql.Field{
				Type: s.instituteType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"location": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return s.institutes.Create(p.Context, decodeCreateInstituteInput(p.Args))
				},
			},
			"updateInstitute": &graphql.Field{
				Type: s.instituteType,
				Args: graphql.FieldConfigArgument{
					"id":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":     &graphql.ArgumentConfig{Type: graphql.String},
					"location": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return s.institutes.Update(p.Context, argString(p.Args, "id"), decodeUpdateInstituteInput(p.Args))
				},
			},
			"deleteInstitute": &graphql.Field{
				Type: graphql.Boolean,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return s.institutes.Delete(p.Context, argString(p.Args, "id"))
				},
			},

			"createStudent": &graphql.Field{
				Type: s.studentType,
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"instituteId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"userId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return s.students.Create(p.Context, decodeCreateStudentInput(p.Args))
				},
			},
			"updateStudent": &graphql.Field{
				Type: s.studentType,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":        &graphql.ArgumentConfig{Type: graphql.String},
					"email":       &graphql.ArgumentConfig{Type: graphql.String},
					"instituteId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return s.students.Update(p.Context, argString(p.Args, "id"), decodeUpdateStudentInput(p.Args))
				},
			},
			"deleteStudent": &graphql.Field{
				Type: graphql.Boolean,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return s.students.Delete(p.Context, argString(p.Args, "id"))
				},
			},

			"createCourse": &graphql.Field{
				Type: s.courseType,
				Args: graphql.FieldConfigArgument{
					"title":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"code":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"credits": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return s.courses.Create(p.Context, decodeCreateCourseInput(p.Args))
				},
			},
			"updateCourse": &graphql.Field{
				Type: s.courseType,
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":   &graphql.ArgumentConfig{Type: graphql.String},
					"code":    &graphql.ArgumentConfig{Type: graphql.String},
					"credits": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return s.courses.Update(p.Context, argString(p.Args, "id"), decodeUpdateCourseInput(p.Args))
				},
			},
			"deleteCourse": &graphql.Field{
				Type: graphql.Boolean,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return s.courses.Delete(p.Context, argString(p.Args, "id"))
				},
			},

			"createResult": &graphql.Field{
				Type: s.resultType,
				Args: graphql.FieldConfigArgument{
					"studentId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"courseId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"score":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"grade":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"year":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return s.results.Create(p.Context, decodeCreateResultInput(p.Args))
				},
			},
			"updateResult": &graphql.Field{
				Type: s.resultType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"score": &graphql.ArgumentConfig{Type: graphql.Float},
					"grade": &graphql.ArgumentConfig{Type: graphql.String},
					"year":  &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return s.results.Update(p.Context, argString(p.Args, "id"), decodeUpdateResultInput(p.Args))
				},
			},
			"deleteResult": &graphql.Field{
				Type: graphql.Boolean,
				Args: idArg(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return s.results.Delete(p.Context, argString(p.Args, "id"))
				},
			},
		},
	})
}
