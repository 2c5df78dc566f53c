package service

import (
	"context"
	"time"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/matching"
)

type evaluationService struct {
	ucClient contract.UCClient
	now      func() time.Time
}

func newEvaluation(ucClient contract.UCClient, now func() time.Time) *evaluationService {
	return &evaluationService{
		ucClient: ucClient,
		now:      now,
	}
}

// Upcoming lists the evaluations of every course unit within the next days.
func (s *evaluationService) Upcoming(ctx context.Context, days int) []entity.UpcomingEvaluation {
	units := s.ucClient.FetchAll(ctx)
	return matching.UpcomingAll(units, days, s.now())
}

func (s *evaluationService) FindUnit(ctx context.Context, key string) (*entity.CourseUnit, bool) {
	units := s.ucClient.FetchAll(ctx)
	return matching.FindByKey(units, key)
}

func (s *evaluationService) UnitEvaluations(unit *entity.CourseUnit, days int) []entity.Evaluation {
	return matching.Upcoming(unit, days, s.now())
}
