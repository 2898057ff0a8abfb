package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"acadrec/internal/gqlerr"
	"acadrec/internal/models"
	"acadrec/internal/service"
)

func instituteFrom(src interface{}) (*models.Institute, bool) {
	switch v := src.(type) {
	case *models.Institute:
		return v, true
	case models.Institute:
		return &v, true
	}
	return nil, false
}

func studentFrom(src interface{}) (*models.Student, bool) {
	switch v := src.(type) {
	case *models.Student:
		return v, true
	case models.Student:
		return &v, true
	}
	return nil, false
}

func courseFrom(src interface{}) (*models.Course, bool) {
	switch v := src.(type) {
	case *models.Course:
		return v, true
	case models.Course:
		return &v, true
	}
	return nil, false
}

func resultFrom(src interface{}) (*models.Result, bool) {
	switch v := src.(type) {
	case *models.Result:
		return v, true
	case models.Result:
		return &v, true
	}
	return nil, false
}

func userFrom(src interface{}) (*models.User, bool) {
	switch v := src.(type) {
	case *models.User:
		return v, true
	case models.User:
		return &v, true
	}
	return nil, false
}

func timestampFields[T any](get func(T) (time.Time, time.Time), from func(interface{}) (T, bool)) (graphql.FieldResolveFn, graphql.FieldResolveFn) {
	created := func(p graphql.ResolveParams) (interface{}, error) {
		v, ok := from(p.Source)
		if !ok {
			return nil, nil
		}
		c, _ := get(v)
		return c.Format(time.RFC3339), nil
	}
	updated := func(p graphql.ResolveParams) (interface{}, error) {
		v, ok := from(p.Source)
		if !ok {
			return nil, nil
		}
		_, u := get(v)
		return u.Format(time.RFC3339), nil
	}
	return created, updated
}

func (s *Schema) defineInstituteType() *graphql.Object {
	createdAt, updatedAt := timestampFields(func(i *models.Institute) (time.Time, time.Time) {
		return i.CreatedAt, i.UpdatedAt
	}, instituteFrom)

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Institute",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					inst, _ := instituteFrom(p.Source)
					return inst.ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					inst, _ := instituteFrom(p.Source)
					return inst.Name, nil
				},
			},
			"location": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					inst, _ := instituteFrom(p.Source)
					return inst.Location, nil
				},
			},
			"createdAt": &graphql.Field{Type: graphql.String, Resolve: createdAt},
			"updatedAt": &graphql.Field{Type: graphql.String, Resolve: updatedAt},
		},
	})
}

func (s *Schema) defineCourseType() *graphql.Object {
	createdAt, updatedAt := timestampFields(func(c *models.Course) (time.Time, time.Time) {
		return c.CreatedAt, c.UpdatedAt
	}, courseFrom)

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Course",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, _ := courseFrom(p.Source)
					return c.ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, _ := courseFrom(p.Source)
					return c.Title, nil
				},
			},
			"code": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, _ := courseFrom(p.Source)
					return c.Code, nil
				},
			},
			"credits": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, _ := courseFrom(p.Source)
					return c.Credits, nil
				},
			},
			"createdAt": &graphql.Field{Type: graphql.String, Resolve: createdAt},
			"updatedAt": &graphql.Field{Type: graphql.String, Resolve: updatedAt},
		},
	})
}

func (s *Schema) defineStudentType() *graphql.Object {
	createdAt, updatedAt := timestampFields(func(st *models.Student) (time.Time, time.Time) {
		return st.CreatedAt, st.UpdatedAt
	}, studentFrom)

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Student",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					st, _ := studentFrom(p.Source)
					return st.ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					st, _ := studentFrom(p.Source)
					return st.Name, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					st, _ := studentFrom(p.Source)
					return st.Email, nil
				},
			},
			"instituteId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					st, _ := studentFrom(p.Source)
					return st.InstituteID, nil
				},
			},
			"userId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					st, _ := studentFrom(p.Source)
					return st.UserID, nil
				},
			},
			"createdAt": &graphql.Field{Type: graphql.String, Resolve: createdAt},
			"updatedAt": &graphql.Field{Type: graphql.String, Resolve: updatedAt},
		},
	})
}

func (s *Schema) defineResultType() *graphql.Object {
	createdAt, updatedAt := timestampFields(func(r *models.Result) (time.Time, time.Time) {
		return r.CreatedAt, r.UpdatedAt
	}, resultFrom)

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Result",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					r, _ := resultFrom(p.Source)
					return r.ID, nil
				},
			},
			"studentId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					r, _ := resultFrom(p.Source)
					return r.StudentID, nil
				},
			},
			"courseId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					r, _ := resultFrom(p.Source)
					return r.CourseID, nil
				},
			},
			"score": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					r, _ := resultFrom(p.Source)
					return r.Score, nil
				},
			},
			"grade": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					r, _ := resultFrom(p.Source)
					return r.Grade, nil
				},
			},
			"year": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					r, _ := resultFrom(p.Source)
					return r.Year, nil
				},
			},
			"createdAt": &graphql.Field{Type: graphql.String, Resolve: createdAt},
			"updatedAt": &graphql.Field{Type: graphql.String, Resolve: updatedAt},
		},
	})
}

// defineUserType never exposes the password hash.
func (s *Schema) defineUserType() *graphql.Object {
	createdAt, updatedAt := timestampFields(func(u *models.User) (time.Time, time.Time) {
		return u.CreatedAt, u.UpdatedAt
	}, userFrom)

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, _ := userFrom(p.Source)
					return u.ID, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, _ := userFrom(p.Source)
					return u.Email, nil
				},
			},
			"role": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, _ := userFrom(p.Source)
					return u.Role, nil
				},
			},
			"createdAt": &graphql.Field{Type: graphql.String, Resolve: createdAt},
			"updatedAt": &graphql.Field{Type: graphql.String, Resolve: updatedAt},
		},
	})
}

// wireRelationships attaches the lazily resolved relationship fields
// after all entity types exist, breaking the type cycles. Each resolver
// is a single-record (or single-owner list) follow-up lookup keyed on
// the foreign key already present on the parent.
func (s *Schema) wireRelationships() {
	s.studentType.AddFieldConfig("institute", &graphql.Field{
		Type: s.instituteType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			st, ok := studentFrom(p.Source)
			if !ok {
				return nil, nil
			}
			if st.Institute != nil {
				return st.Institute, nil
			}
			return s.institutes.GetByID(p.Context, st.InstituteID)
		},
	})
	s.studentType.AddFieldConfig("user", &graphql.Field{
		Type: s.userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			st, ok := studentFrom(p.Source)
			if !ok {
				return nil, nil
			}
			return s.users.GetByID(p.Context, st.UserID)
		},
	})
	s.studentType.AddFieldConfig("results", &graphql.Field{
		Type: graphql.NewList(s.resultType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			st, ok := studentFrom(p.Source)
			if !ok {
				return nil, nil
			}
			return s.results.ListByStudent(p.Context, st.ID)
		},
	})

	s.instituteType.AddFieldConfig("students", &graphql.Field{
		Type: graphql.NewList(s.studentType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			inst, ok := instituteFrom(p.Source)
			if !ok {
				return nil, nil
			}
			return s.students.ListByInstitute(p.Context, inst.ID)
		},
	})

	s.resultType.AddFieldConfig("student", &graphql.Field{
		Type: s.studentType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			r, ok := resultFrom(p.Source)
			if !ok {
				return nil, nil
			}
			if r.Student != nil {
				return r.Student, nil
			}
			return s.students.GetByID(p.Context, r.StudentID)
		},
	})
	s.resultType.AddFieldConfig("course", &graphql.Field{
		Type: s.courseType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			r, ok := resultFrom(p.Source)
			if !ok {
				return nil, nil
			}
			if r.Course != nil {
				return r.Course, nil
			}
			return s.courses.GetByID(p.Context, r.CourseID)
		},
	})

	s.userType.AddFieldConfig("student", &graphql.Field{
		Type: s.studentType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u, ok := userFrom(p.Source)
			if !ok {
				return nil, nil
			}
			student, err := s.students.GetByUserID(p.Context, u.ID)
			if gqlerr.IsNotFound(err) {
				// Admin accounts legitimately have no profile.
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			return student, nil
		},
	})
}

func (s *Schema) definePageType(name string, itemType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			"items":      &graphql.Field{Type: graphql.NewList(itemType)},
			"totalCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"hasMore":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"limit":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"offset":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
}

func (s *Schema) defineAuthPayloadType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					payload := p.Source.(*service.AuthPayload)
					return payload.Token, nil
				},
			},
			"user": &graphql.Field{
				Type: s.userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					payload := p.Source.(*service.AuthPayload)
					return payload.User, nil
				},
			},
		},
	})
}
