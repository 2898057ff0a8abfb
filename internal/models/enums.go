package models

import "regexp"

const (
	// RoleAdmin may create, update and delete any record.
	RoleAdmin = "admin"
	// RoleStudent is the default role issued at sign-up.
	RoleStudent = "student"
)

// Grades is the fixed letter-grade set accepted on results.
var Grades = []string{"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "F"}

var gradeSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Grades))
	for _, g := range Grades {
		m[g] = struct{}{}
	}
	return m
}()

// ValidGrade reports whether g is one of the accepted letter grades.
func ValidGrade(g string) bool {
	_, ok := gradeSet[g]
	return ok
}

// ValidRole reports whether r is a known account role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleStudent
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

const (
	// MinScore and MaxScore bound Result.Score.
	MinScore = 0
	MaxScore = 100
	// MinYear and MaxYear bound Result.Year.
	MinYear = 2000
	MaxYear = 2100
	// MinCredits and MaxCredits bound Course.Credits.
	MinCredits = 1
	MaxCredits = 6
)
