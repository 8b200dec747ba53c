// Package query компилирует тройку (поле, оператор, значение) в предикат над записью.
package query

import (
	"fmt"
	"strings"

	"github.com/personnel-roster/internal/domain"
)

// Kind задаёт тип значения поля
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Field описывает поле записи: тип, функцию доступа и допустимые операторы.
// Заполнена ровно одна функция доступа, соответствующая Kind.
type Field struct {
	Name  string
	Kind  Kind
	Text  func(*domain.Employee) string
	Int   func(*domain.Employee) int64
	Float func(*domain.Employee) float64
}

var (
	textOperators    = []Operator{OpEqual, OpNotEqual, OpContains, OpNotContains, OpStartsWith, OpEndsWith}
	numericOperators = []Operator{OpEqual, OpNotEqual, OpGreater, OpLess, OpGreaterEqual, OpLessEqual}
)

// fields - закрытый набор полей, доступных для фильтрации
var fields = map[string]Field{
	"id":          {Name: "id", Kind: KindText, Text: func(e *domain.Employee) string { return e.ID }},
	"name":        {Name: "name", Kind: KindText, Text: func(e *domain.Employee) string { return e.Name }},
	"designation": {Name: "designation", Kind: KindText, Text: func(e *domain.Employee) string { return e.Designation }},
	"department":  {Name: "department", Kind: KindText, Text: func(e *domain.Employee) string { return e.Department }},
	"manager":     {Name: "manager", Kind: KindText, Text: (*domain.Employee).ManagerName},
	"age":         {Name: "age", Kind: KindInteger, Int: func(e *domain.Employee) int64 { return int64(e.Age) }},
	"salary":      {Name: "salary", Kind: KindFloat, Float: func(e *domain.Employee) float64 { return e.Salary }},
}

// FieldNames возвращает имена полей в порядке отображения
func FieldNames() []string {
	return []string{"id", "name", "age", "designation", "department", "salary", "manager"}
}

// LookupField находит описание поля по имени (без учёта регистра и пробелов)
func LookupField(name string) (Field, error) {
	f, ok := fields[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Field{}, fmt.Errorf("%q: %w", name, domain.ErrInvalidField)
	}
	return f, nil
}

// Operators возвращает операторы, допустимые для поля
func (f Field) Operators() []Operator {
	if f.Kind == KindText {
		return textOperators
	}
	return numericOperators
}

// Supports сообщает, допустим ли оператор для поля
func (f Field) Supports(op Operator) bool {
	for _, o := range f.Operators() {
		if o == op {
			return true
		}
	}
	return false
}
