package update_visit

import (
	"context"

	updateVisit "github.com/m04kA/SMC-SalonService/internal/usecase/update_visit"
)

type UpdateVisitUseCase interface {
	Execute(ctx context.Context, req *updateVisit.Request) (*updateVisit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
