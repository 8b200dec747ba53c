package repository

import (
	"context"

	"github.com/personnel-roster/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс таблицы сотрудников,
// из которой загружается начальный набор записей
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, emps []domain.Employee) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// List возвращает записи в порядке вставки
func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Order("seq ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Count(&count).Error
	return count, err
}

func (r *employeeRepository) CreateBatch(ctx context.Context, emps []domain.Employee) error {
	if len(emps) == 0 {
		return nil
	}
	rows := make([]domain.Employee, len(emps))
	for i, e := range emps {
		rows[i] = e.Clone()
		rows[i].Seq = 0
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

// SeedIfEmpty записывает набор в пустую таблицу и возвращает содержимое таблицы
func SeedIfEmpty(ctx context.Context, repo EmployeeRepository, emps []domain.Employee) ([]domain.Employee, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if err := repo.CreateBatch(ctx, emps); err != nil {
			return nil, err
		}
	}
	return repo.List(ctx)
}
