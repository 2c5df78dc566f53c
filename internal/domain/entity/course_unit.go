package entity

import (
	"strings"
	"time"
)

// evaluationDateLayouts are the ISO-8601 shapes accepted for an evaluation
// date. Only the calendar date is kept.
var evaluationDateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateTime,
}

// CourseUnit is a course unit (UC) as served by the evaluations API.
type CourseUnit struct {
	Slug        string       `json:"slug"`
	Sigla       string       `json:"sigla"`
	Name        string       `json:"nome"`
	Profile     *string      `json:"perfil"`
	Criteria    *string      `json:"criterios"`
	Teachers    []string     `json:"docentes"`
	Evaluations []Evaluation `json:"avaliacoes"`
}

// Matches reports whether key names this unit by slug or sigla, ignoring case.
func (u *CourseUnit) Matches(key string) bool {
	return strings.EqualFold(u.Slug, key) || strings.EqualFold(u.Sigla, key)
}

// Evaluation is a single evaluation event of a course unit.
type Evaluation struct {
	Date        string `json:"data"`
	Description string `json:"descricao"`
}

// Day parses Date and returns its calendar day at midnight UTC.
// ok is false when Date is not an ISO-8601 date.
func (e Evaluation) Day() (day time.Time, ok bool) {
	raw := strings.TrimSpace(e.Date)
	for _, layout := range evaluationDateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// UpcomingEvaluation is an evaluation matched inside a window, labelled
// with the sigla of its course unit.
type UpcomingEvaluation struct {
	Sigla       string
	Date        string
	Description string
}
