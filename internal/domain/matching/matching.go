// Package matching selects course units and the evaluations that fall
// inside a window of days.
package matching

import (
	"time"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
)

// FindByKey returns the first unit whose slug or sigla equals key, ignoring case.
func FindByKey(units []entity.CourseUnit, key string) (*entity.CourseUnit, bool) {
	for i := range units {
		if units[i].Matches(key) {
			return &units[i], true
		}
	}
	return nil, false
}

// Upcoming returns the evaluations of unit dated within [today, today+days],
// where today is the UTC calendar date of now. Source order is kept and
// evaluations with an invalid date are left out.
func Upcoming(unit *entity.CourseUnit, days int, now time.Time) []entity.Evaluation {
	start, end := window(days, now)

	var out []entity.Evaluation
	for _, e := range unit.Evaluations {
		day, ok := e.Day()
		if !ok {
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// UpcomingAll applies Upcoming to every unit, in source order.
func UpcomingAll(units []entity.CourseUnit, days int, now time.Time) []entity.UpcomingEvaluation {
	var out []entity.UpcomingEvaluation
	for i := range units {
		sigla := units[i].Sigla
		if sigla == "" {
			sigla = domain.UnknownSigla
		}
		for _, e := range Upcoming(&units[i], days, now) {
			out = append(out, entity.UpcomingEvaluation{
				Sigla:       sigla,
				Date:        e.Date,
				Description: e.Description,
			})
		}
	}
	return out
}

func window(days int, now time.Time) (start, end time.Time) {
	y, m, d := now.UTC().Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, days)
}
