package manage_halls

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

type HallService interface {
	CreateHall(ctx context.Context, actor domain.Actor, req *models.HallRequest) (*models.HallResponse, error)
	UpdateHall(ctx context.Context, actor domain.Actor, id int64, req *models.HallRequest) (*models.HallResponse, error)
	GetHall(ctx context.Context, id int64) (*models.HallResponse, error)
	ListHalls(ctx context.Context) (*models.HallListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
