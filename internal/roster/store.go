// Package roster хранит упорядоченный список сотрудников в памяти.
// Store не потокобезопасен: синхронизацию обеспечивает вызывающая сторона.
package roster

import (
	"fmt"
	"strings"

	"github.com/personnel-roster/internal/domain"
)

// Store владеет упорядоченной коллекцией записей. Порядок = порядок вставки.
type Store struct {
	employees []domain.Employee
}

// NewStore создаёт хранилище из начального набора записей
func NewStore(seed []domain.Employee) *Store {
	s := &Store{employees: make([]domain.Employee, 0, len(seed))}
	for _, emp := range seed {
		s.employees = append(s.employees, emp.Clone())
	}
	return s
}

// Len возвращает количество записей
func (s *Store) Len() int {
	return len(s.employees)
}

// All возвращает копию всех записей в порядке хранения
func (s *Store) All() []domain.Employee {
	out := make([]domain.Employee, len(s.employees))
	for i, emp := range s.employees {
		out[i] = emp.Clone()
	}
	return out
}

// FindByID ищет первую запись с совпадающим ID без учёта регистра
func (s *Store) FindByID(id string) (domain.Employee, error) {
	if i := s.indexByID(id); i >= 0 {
		return s.employees[i].Clone(), nil
	}
	return domain.Employee{}, fmt.Errorf("id %q: %w", id, domain.ErrNotFound)
}

// FindByName ищет первую запись с совпадающим именем без учёта регистра.
// Имена не уникальны, поэтому выигрывает первая запись в порядке хранения.
func (s *Store) FindByName(name string) (domain.Employee, error) {
	if i := s.IndexByName(name); i >= 0 {
		return s.employees[i].Clone(), nil
	}
	return domain.Employee{}, fmt.Errorf("name %q: %w", name, domain.ErrNotFound)
}

// IndexByName возвращает позицию первой записи с таким именем или -1
func (s *Store) IndexByName(name string) int {
	for i := range s.employees {
		if strings.EqualFold(s.employees[i].Name, name) {
			return i
		}
	}
	return -1
}

// At возвращает копию записи по позиции
func (s *Store) At(i int) domain.Employee {
	return s.employees[i].Clone()
}

// Remove удаляет запись по ID и переназначает её прямых подчинённых
// на её руководителя (или делает их корнями, если руководителя не было).
// Возвращает удалённую запись и число переназначенных подчинённых.
func (s *Store) Remove(id string) (domain.Employee, int, error) {
	idx := s.indexByID(id)
	if idx < 0 {
		return domain.Employee{}, 0, fmt.Errorf("id %q: %w", id, domain.ErrNotFound)
	}

	removed := s.employees[idx]
	reassigned := 0
	for i := range s.employees {
		emp := &s.employees[i]
		// Сама удаляемая запись тоже попадает под правило, но удаляется ниже.
		if emp.Manager != nil && strings.EqualFold(*emp.Manager, removed.Name) {
			if removed.Manager == nil {
				emp.Manager = nil
			} else {
				emp.Manager = domain.StringPtr(*removed.Manager)
			}
			if i != idx {
				reassigned++
			}
		}
	}

	s.employees = append(s.employees[:idx:idx], s.employees[idx+1:]...)
	return removed.Clone(), reassigned, nil
}

func (s *Store) indexByID(id string) int {
	for i := range s.employees {
		if strings.EqualFold(s.employees[i].ID, id) {
			return i
		}
	}
	return -1
}
