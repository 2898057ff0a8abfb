// Package graph wires the GraphQL schema: one object type per entity,
// paginated list wrappers, the analytics payloads and the auth flow.
// Every resolver decodes its arguments into a typed input before any
// business logic runs.
package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/sirupsen/logrus"

	"acadrec/internal/analytics"
	"acadrec/internal/repository"
	"acadrec/internal/service"
)

// Schema owns the compiled GraphQL schema and the collaborators the
// resolvers call into.
type Schema struct {
	schema graphql.Schema

	institutes *repository.InstituteRepository
	students   *repository.StudentRepository
	courses    *repository.CourseRepository
	results    *repository.ResultRepository
	users      *repository.UserRepository
	analytics  *analytics.Service
	auth       *service.AuthService
	logger     *logrus.Logger

	instituteType *graphql.Object
	studentType   *graphql.Object
	courseType    *graphql.Object
	resultType    *graphql.Object
	userType      *graphql.Object
}

// Deps collects everything the schema needs.
type Deps struct {
	Institutes *repository.InstituteRepository
	Students   *repository.StudentRepository
	Courses    *repository.CourseRepository
	Results    *repository.ResultRepository
	Users      *repository.UserRepository
	Analytics  *analytics.Service
	Auth       *service.AuthService
	Logger     *logrus.Logger
}

// New builds the schema. Entity types are created first, then the
// cyclic relationship fields are attached, then the roots.
func New(deps Deps) (*Schema, error) {
	s := &Schema{
		institutes: deps.Institutes,
		students:   deps.Students,
		courses:    deps.Courses,
		results:    deps.Results,
		users:      deps.Users,
		analytics:  deps.Analytics,
		auth:       deps.Auth,
		logger:     deps.Logger,
	}

	s.instituteType = s.defineInstituteType()
	s.courseType = s.defineCourseType()
	s.studentType = s.defineStudentType()
	s.resultType = s.defineResultType()
	s.userType = s.defineUserType()
	s.wireRelationships()

	schemaConfig := graphql.SchemaConfig{
		Query:    s.defineQueryType(),
		Mutation: s.defineMutationType(),
	}
	schema, err := graphql.NewSchema(schemaConfig)
	if err != nil {
		return nil, err
	}
	s.schema = schema
	return s, nil
}

// GetSchema returns the compiled GraphQL schema.
func (s *Schema) GetSchema() graphql.Schema {
	return s.schema
}
