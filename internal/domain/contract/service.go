package contract

import (
	"context"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
)

type EvaluationService interface {
	Upcoming(ctx context.Context, days int) []entity.UpcomingEvaluation
	FindUnit(ctx context.Context, key string) (*entity.CourseUnit, bool)
	UnitEvaluations(unit *entity.CourseUnit, days int) []entity.Evaluation
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, scope entity.Scope, slug string, daysBefore int) (created bool, err error)
	Unsubscribe(ctx context.Context, scope entity.Scope, slug string) error
	List(ctx context.Context, scope entity.Scope) ([]*entity.Subscription, error)
}

type NotifierService interface {
	CheckUpcoming(ctx context.Context) int
}
