package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Store хранилище в памяти процесса: для локального запуска и тестов
//
// Транзакции сериализуются одной блокировкой txMu, данные защищены mu
// При ошибке внутри транзакции состояние откатывается к снимку на её начало
// Запись вне транзакции тоже берёт txMu, иначе откат затёр бы её результат
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data state
	now  func() time.Time
}

type state struct {
	nextID    int64
	halls     map[int64]domain.Hall
	services  map[int64]domain.Service
	employees map[int64]domain.Employee
	links     map[int64]domain.ServiceHall
	visits    map[int64]domain.Visit
}

func NewStore() *Store {
	return &Store{
		data: state{
			halls:     make(map[int64]domain.Hall),
			services:  make(map[int64]domain.Service),
			employees: make(map[int64]domain.Employee),
			links:     make(map[int64]domain.ServiceHall),
			visits:    make(map[int64]domain.Visit),
		},
		now: time.Now,
	}
}

func (s *Store) Halls() *HallRepository {
	return &HallRepository{s: s}
}

func (s *Store) Services() *ServiceRepository {
	return &ServiceRepository{s: s}
}

func (s *Store) Employees() *EmployeeRepository {
	return &EmployeeRepository{s: s}
}

func (s *Store) Visits() *VisitRepository {
	return &VisitRepository{s: s}
}

func (s *Store) TxManager() *TxManager {
	return &TxManager{s: s}
}

// id выдаёт следующий идентификатор, вызывается под s.mu
func (s *Store) id() int64 {
	s.data.nextID++
	return s.data.nextID
}

func (st state) clone() state {
	c := state{
		nextID:    st.nextID,
		halls:     make(map[int64]domain.Hall, len(st.halls)),
		services:  make(map[int64]domain.Service, len(st.services)),
		employees: make(map[int64]domain.Employee, len(st.employees)),
		links:     make(map[int64]domain.ServiceHall, len(st.links)),
		visits:    make(map[int64]domain.Visit, len(st.visits)),
	}
	for k, v := range st.halls {
		c.halls[k] = v
	}
	for k, v := range st.services {
		c.services[k] = v
	}
	for k, v := range st.employees {
		c.employees[k] = copyEmployee(v)
	}
	for k, v := range st.links {
		c.links[k] = v
	}
	for k, v := range st.visits {
		c.visits[k] = v
	}
	return c
}

type txKey struct{}

// writeLock занимает txMu для записи вне транзакции
// Внутри транзакции txMu уже удерживается её владельцем
func (s *Store) writeLock(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

// TxManager транзакции поверх Store
type TxManager struct {
	s *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	m.s.mu.RLock()
	snapshot := m.s.data.clone()
	m.s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		m.s.mu.Lock()
		m.s.data = snapshot
		m.s.mu.Unlock()
		return err
	}

	return nil
}
