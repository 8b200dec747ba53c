// Package summary считает сводные показатели по хранилищу.
package summary

import (
	"sort"
	"strings"

	"github.com/personnel-roster/internal/domain"
	"github.com/personnel-roster/internal/roster"
)

// NoDepartmentKey - ключ для записей без отдела
const NoDepartmentKey = "N/A"

// DefaultTopN - размер рейтинга по зарплате по умолчанию
const DefaultTopN = 3

// GroupCount - количество записей в группе
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// SalaryRange - максимум и минимум зарплаты
type SalaryRange struct {
	Max float64 `json:"max"`
	Min float64 `json:"min"`
}

// Report - сводка по хранилищу
type Report struct {
	Total         int               `json:"total"`
	ByDepartment  []GroupCount      `json:"by_department"`
	AverageSalary float64           `json:"average_salary"`
	SalaryRange   *SalaryRange      `json:"salary_range,omitempty"`
	DirectReports []GroupCount      `json:"direct_reports"`
	TopEarners    []domain.Employee `json:"top_earners"`
}

// Aggregator строит сводку поверх хранилища
type Aggregator struct {
	store *roster.Store
	topN  int
}

// NewAggregator создаёт новый экземпляр. topN задаёт размер рейтинга.
func NewAggregator(store *roster.Store, topN int) *Aggregator {
	return &Aggregator{store: store, topN: topN}
}

// Summarize считает все показатели за один проход по копии записей
func (a *Aggregator) Summarize() Report {
	employees := a.store.All()

	report := Report{
		Total:         len(employees),
		ByDepartment:  CountBy(employees, departmentKey),
		AverageSalary: AverageSalary(employees),
		SalaryRange:   Range(employees),
		DirectReports: DirectReportCounts(employees),
		TopEarners:    TopEarners(employees, a.topN),
	}
	return report
}

func departmentKey(e *domain.Employee) (string, bool) {
	if e.Department == "" {
		return NoDepartmentKey, true
	}
	return e.Department, true
}

// CountBy считает записи по ключу с точным совпадением регистра.
// Группы упорядочены без учёта регистра. key=false исключает запись.
func CountBy(employees []domain.Employee, key func(*domain.Employee) (string, bool)) []GroupCount {
	counts := make(map[string]int)
	for i := range employees {
		if k, ok := key(&employees[i]); ok {
			counts[k]++
		}
	}

	out := make([]GroupCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, GroupCount{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i].Key), strings.ToLower(out[j].Key)
		if li != lj {
			return li < lj
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// DirectReportCounts считает прямых подчинённых по имени руководителя.
// Записи без руководителя не учитываются.
func DirectReportCounts(employees []domain.Employee) []GroupCount {
	return CountBy(employees, func(e *domain.Employee) (string, bool) {
		if e.Manager == nil {
			return "", false
		}
		return *e.Manager, true
	})
}

// AverageSalary возвращает среднюю зарплату или 0 для пустого набора
func AverageSalary(employees []domain.Employee) float64 {
	if len(employees) == 0 {
		return 0
	}
	var sum float64
	for _, e := range employees {
		sum += e.Salary
	}
	return sum / float64(len(employees))
}

// Range возвращает максимум и минимум зарплаты или nil для пустого набора
func Range(employees []domain.Employee) *SalaryRange {
	if len(employees) == 0 {
		return nil
	}
	r := &SalaryRange{Max: employees[0].Salary, Min: employees[0].Salary}
	for _, e := range employees[1:] {
		r.Max = max(r.Max, e.Salary)
		r.Min = min(r.Min, e.Salary)
	}
	return r
}

// TopEarners возвращает n записей с наибольшей зарплатой.
// При равенстве сохраняется порядок хранения.
func TopEarners(employees []domain.Employee, n int) []domain.Employee {
	if n <= 0 {
		return []domain.Employee{}
	}
	sorted := make([]domain.Employee, len(employees))
	copy(sorted, employees)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Salary > sorted[j].Salary
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
