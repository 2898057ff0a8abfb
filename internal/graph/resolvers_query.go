package graph

import (
	"github.com/graphql-go/graphql"

	"acadrec/internal/pagination"
)

// pageArgs is the shared argument set of every list query.
func pageArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"search": &graphql.ArgumentConfig{
			Type:        graphql.String,
			Description: "Case-insensitive substring filter",
		},
		"limit": &graphql.ArgumentConfig{
			Type:         graphql.Int,
			DefaultValue: pagination.DefaultLimit,
			Description:  "Number of items per page (default: 10, max: 100)",
		},
		"offset": &graphql.ArgumentConfig{
			Type:         graphql.Int,
			DefaultValue: 0,
			Description:  "Number of items to skip",
		},
	}
}

func idArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
}

func (s *Schema) defineQueryType() *graphql.Object {
	institutePage := s.definePageType("InstitutePage", s.instituteType)
	studentPage := s.definePageType("StudentPage", s.studentType)
	coursePage := s.definePageType("CoursePage", s.courseType)
	resultPage := s.definePageType("ResultPage", s.resultType)

	fields := graphql.Fields{
		"institute": &graphql.Field{
			Type: s.instituteType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return s.institutes.GetByID(p.Context, argString(p.Args, "id"))
			},
		},
		"institutes": &graphql.Field{
			Type: institutePage,
			Args: pageArgs(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				limit, offset := pagination.Normalize(argInt(p.Args, "limit", 0), argInt(p.Args, "offset", 0))
				items, total, err := s.institutes.List(p.Context, argString(p.Args, "search"), limit, offset)
				if err != nil {
					return nil, err
				}
				return pagination.NewPage(items, total, limit, offset), nil
			},
		},
		"student": &graphql.Field{
			Type: s.studentType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return s.students.GetByID(p.Context, argString(p.Args, "id"))
			},
		},
		"students": &graphql.Field{
			Type: studentPage,
			Args: pageArgs(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				limit, offset := pagination.Normalize(argInt(p.Args, "limit", 0), argInt(p.Args, "offset", 0))
				items, total, err := s.students.List(p.Context, argString(p.Args, "search"), limit, offset)
				if err != nil {
					return nil, err
				}
				return pagination.NewPage(items, total, limit, offset), nil
			},
		},
		"course": &graphql.Field{
			Type: s.courseType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return s.courses.GetByID(p.Context, argString(p.Args, "id"))
			},
		},
		"courses": &graphql.Field{
			Type: coursePage,
			Args: pageArgs(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				limit, offset := pagination.Normalize(argInt(p.Args, "limit", 0), argInt(p.Args, "offset", 0))
				items, total, err := s.courses.List(p.Context, argString(p.Args, "search"), limit, offset)
				if err != nil {
					return nil, err
				}
				return pagination.NewPage(items, total, limit, offset), nil
			},
		},
		"result": &graphql.Field{
			Type: s.resultType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return s.results.GetByID(p.Context, argString(p.Args, "id"))
			},
		},
		"results": &graphql.Field{
			Type: resultPage,
			Args: graphql.FieldConfigArgument{
				"studentId": &graphql.ArgumentConfig{Type: graphql.ID},
				"courseId":  &graphql.ArgumentConfig{Type: graphql.ID},
				"limit": &graphql.ArgumentConfig{
					Type:         graphql.Int,
					DefaultValue: pagination.DefaultLimit,
				},
				"offset": &graphql.ArgumentConfig{
					Type:         graphql.Int,
					DefaultValue: 0,
				},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				limit, offset := pagination.Normalize(argInt(p.Args, "limit", 0), argInt(p.Args, "offset", 0))
				items, total, err := s.results.List(p.Context, argString(p.Args, "studentId"), argString(p.Args, "courseId"), limit, offset)
				if err != nil {
					return nil, err
				}
				return pagination.NewPage(items, total, limit, offset), nil
			},
		},
		"me": &graphql.Field{
			Type:        s.userType,
			Description: "The account behind the current token",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return s.auth.Me(p.Context)
			},
		},
	}
	for name, f := range s.analyticsFields() {
		fields[name] = f
	}

	return graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: fields})
}
