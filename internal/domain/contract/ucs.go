package contract

import (
	"context"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
)

// UCClient fetches the course units published by the evaluations API.
// An empty result means no data is available right now.
type UCClient interface {
	FetchAll(ctx context.Context) []entity.CourseUnit
}
