package manage_services

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

type ServiceCatalog interface {
	CreateService(ctx context.Context, actor domain.Actor, req *models.ServiceRequest) (*models.ServiceResponse, error)
	UpdateService(ctx context.Context, actor domain.Actor, id int64, req *models.ServiceRequest) (*models.ServiceResponse, error)
	GetService(ctx context.Context, id int64) (*models.ServiceResponse, error)
	ListServices(ctx context.Context) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
