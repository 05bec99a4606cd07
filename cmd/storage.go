package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/employee"
	hallRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/hall"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	visitRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/visit"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type hallStore interface {
	Create(ctx context.Context, h *domain.Hall) (*domain.Hall, error)
	Update(ctx context.Context, h *domain.Hall) (*domain.Hall, error)
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
	List(ctx context.Context) ([]*domain.Hall, error)
}

type serviceStore interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}

type employeeStore interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	ListLinks(ctx context.Context, employeeID int64, serviceID *int64) ([]*domain.ServiceHall, error)
	CreateLink(ctx context.Context, link *domain.ServiceHall) (bool, error)
}

type visitStore interface {
	LockDay(ctx context.Context, hallID int64, date time.Time) error
	Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	Update(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
	List(ctx context.Context, filter domain.VisitFilter) ([]*domain.Visit, error)
	Count(ctx context.Context, filter domain.VisitFilter) (int, error)
	Delete(ctx context.Context, id int64) error
	CompletePast(ctx context.Context, today time.Time, nowTime types.TimeString) (int64, error)
}

type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage репозитории выбранного драйвера
type storage struct {
	halls     hallStore
	services  serviceStore
	employees employeeStore
	visits    visitStore
	tx        txManager

	close func() error
}

func openStorage(cfg *config.Config, m *metrics.Metrics, stopCh <-chan struct{}, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn("Using in-memory storage, data will be lost on restart")
		store := memory.NewStore()
		return &storage{
			halls:     store.Halls(),
			services:  store.Services(),
			employees: store.Employees(),
			visits:    store.Visits(),
			tx:        store.TxManager(),
			close:     func() error { return nil },
		}, nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Connected to database %s@%s:%d", cfg.Database.DBName, cfg.Database.Host, cfg.Database.Port)

	wrapped := dbmetrics.Wrap(db, m, stopCh)

	return &storage{
		halls:     hallRepo.NewRepository(wrapped),
		services:  serviceRepo.NewRepository(wrapped),
		employees: employeeRepo.NewRepository(wrapped),
		visits:    visitRepo.NewRepository(wrapped),
		tx:        txmanager.NewTransactionManager(wrapped),
		close:     db.Close,
	}, nil
}
