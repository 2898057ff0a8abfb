package graph

import (
	"github.com/graphql-go/graphql"

	"acadrec/internal/analytics"
	"acadrec/internal/auth"
)

// analyticsFields defines the three aggregation queries. All require an
// authenticated principal; any role is enough to read aggregates.
func (s *Schema) analyticsFields() graphql.Fields {
	flatResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "InstituteResult",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.FlatResult).Result.ID, nil
				},
			},
			"score": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.FlatResult).Result.Score, nil
				},
			},
			"grade": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.FlatResult).Result.Grade, nil
				},
			},
			"year": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.FlatResult).Result.Year, nil
				},
			},
			"studentId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.FlatResult).StudentID, nil
				},
			},
			"studentName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.FlatResult).StudentName, nil
				},
			},
			"course": &graphql.Field{
				Type: s.courseType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.FlatResult).Result.Course, nil
				},
			},
		},
	})

	instituteReportType := graphql.NewObject(graphql.ObjectConfig{
		Name: "InstituteReport",
		Fields: graphql.Fields{
			"institute": &graphql.Field{
				Type: s.instituteType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.InstituteReport).Institute, nil
				},
			},
			"totalStudents": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.InstituteReport).TotalStudents, nil
				},
			},
			"averageScore": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.InstituteReport).AverageScore, nil
				},
			},
			"results": &graphql.Field{
				Type: graphql.NewList(flatResultType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.InstituteReport).Results, nil
				},
			},
		},
	})

	courseEnrollmentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CourseEnrollment",
		Fields: graphql.Fields{
			"course": &graphql.Field{
				Type: s.courseType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.CourseEnrollment).Course, nil
				},
			},
			"enrollmentCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.CourseEnrollment).EnrollmentCount, nil
				},
			},
		},
	})

	studentStandingType := graphql.NewObject(graphql.ObjectConfig{
		Name: "StudentStanding",
		Fields: graphql.Fields{
			"student": &graphql.Field{
				Type: s.studentType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.StudentStanding).Student, nil
				},
			},
			"totalScore": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.StudentStanding).TotalScore, nil
				},
			},
			"averageScore": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.StudentStanding).AverageScore, nil
				},
			},
			"resultCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(analytics.StudentStanding).ResultCount, nil
				},
			},
		},
	})

	return graphql.Fields{
		"resultsPerInstitute": &graphql.Field{
			Type:        graphql.NewList(instituteReportType),
			Description: "Per-institute rollup; without an id, the first 10 institutes by name",
			Args: graphql.FieldConfigArgument{
				"instituteId": &graphql.ArgumentConfig{Type: graphql.ID},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := auth.RequireAuthenticated(p.Context); err != nil {
					return nil, err
				}
				return s.analytics.ResultsPerInstitute(p.Context, argStringPtr(p.Args, "instituteId"))
			},
		},
		"topCourses": &graphql.Field{
			Type:        graphql.NewList(courseEnrollmentType),
			Description: "Courses with the most results in a year, descending",
			Args: graphql.FieldConfigArgument{
				"year": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"limit": &graphql.ArgumentConfig{
					Type:         graphql.Int,
					DefaultValue: 10,
				},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := auth.RequireAuthenticated(p.Context); err != nil {
					return nil, err
				}
				return s.analytics.TopCourses(p.Context, argInt(p.Args, "year", 0), argInt(p.Args, "limit", 10))
			},
		},
		"topStudents": &graphql.Field{
			Type:        graphql.NewList(studentStandingType),
			Description: "Students ranked by cumulative score across all years",
			Args: graphql.FieldConfigArgument{
				"limit": &graphql.ArgumentConfig{
					Type:         graphql.Int,
					DefaultValue: 10,
				},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := auth.RequireAuthenticated(p.Context); err != nil {
					return nil, err
				}
				return s.analytics.TopStudents(p.Context, argInt(p.Args, "limit", 10))
			},
		},
	}
}
