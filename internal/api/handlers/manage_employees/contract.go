package manage_employees

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/employees/models"
)

type EmployeeService interface {
	Create(ctx context.Context, actor domain.Actor, req *models.EmployeeRequest) (*models.EmployeeResponse, error)
	Update(ctx context.Context, actor domain.Actor, id int64, req *models.EmployeeRequest) (*models.EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (*models.EmployeeResponse, error)
	List(ctx context.Context) (*models.EmployeeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
