// Package hierarchy разрешает связи "подчиняется" по именам руководителей.
package hierarchy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/personnel-roster/internal/domain"
	"github.com/personnel-roster/internal/roster"
)

// NoManagerKey - ключ группы для записей без руководителя
const NoManagerKey = "none"

// ReportGroup - руководитель и имена его прямых подчинённых в порядке хранения
type ReportGroup struct {
	Manager string   `json:"manager"`
	Reports []string `json:"reports"`
}

// Resolver вычисляет иерархию поверх хранилища
type Resolver struct {
	store *roster.Store
}

// NewResolver создаёт новый экземпляр
func NewResolver(store *roster.Store) *Resolver {
	return &Resolver{store: store}
}

// DirectReports группирует имена сотрудников по имени руководителя.
// Ключи сравниваются без учёта регистра, сохраняется первое встреченное написание.
func (r *Resolver) DirectReports() []ReportGroup {
	var groups []ReportGroup
	index := make(map[string]int)

	for _, emp := range r.store.All() {
		key := NoManagerKey
		if emp.Manager != nil {
			key = *emp.Manager
		}
		folded := strings.ToLower(key)
		i, ok := index[folded]
		if !ok {
			i = len(groups)
			index[folded] = i
			groups = append(groups, ReportGroup{Manager: key})
		}
		groups[i].Reports = append(groups[i].Reports, emp.Name)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Manager) < strings.ToLower(groups[j].Manager)
	})
	return groups
}

// ChainToRoot возвращает цепочку имён от сотрудника до вершины иерархии.
// Висячая ссылка на руководителя завершает цепочку (имя включается).
// Повторное посещение записи возвращает ErrCycleDetected.
func (r *Resolver) ChainToRoot(name string) ([]string, error) {
	cur := r.store.IndexByName(name)
	if cur < 0 {
		return nil, fmt.Errorf("name %q: %w", name, domain.ErrNotFound)
	}

	emp := r.store.At(cur)
	chain := []string{emp.Name}
	seen := map[int]bool{cur: true}

	for emp.Manager != nil {
		mgrName := *emp.Manager
		chain = append(chain, mgrName)

		next := r.store.IndexByName(mgrName)
		if next < 0 {
			break
		}
		if seen[next] {
			return chain, fmt.Errorf("chain from %q revisits %q: %w", name, mgrName, domain.ErrCycleDetected)
		}
		seen[next] = true
		emp = r.store.At(next)
	}

	return chain, nil
}
