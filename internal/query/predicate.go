package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/personnel-roster/internal/domain"
)

// Predicate - скомпилированная проверка записи. Не зависит от хранилища.
type Predicate func(*domain.Employee) bool

// Compile превращает тройку (поле, оператор, значение) в предикат.
// Ошибки: ErrInvalidField, ErrInvalidOperator, ErrInvalidValue.
func Compile(fieldName, operator, value string) (Predicate, error) {
	field, err := LookupField(fieldName)
	if err != nil {
		return nil, err
	}

	op, ok := ParseOperator(field.Kind, operator)
	if !ok || !field.Supports(op) {
		return nil, fmt.Errorf("%q for %s field %q: %w", operator, field.Kind, field.Name, domain.ErrInvalidOperator)
	}

	value = strings.TrimSpace(value)
	switch field.Kind {
	case KindText:
		return textPredicate(field.Text, op, value), nil
	case KindInteger:
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%q for integer field %q: %w", value, field.Name, domain.ErrInvalidValue)
		}
		return ordered(field.Int, op, v, func(a, b int64) bool { return a == b }), nil
	case KindFloat:
		v, err := parseFloat(value)
		if err != nil {
			return nil, fmt.Errorf("%q for float field %q: %w", value, field.Name, domain.ErrInvalidValue)
		}
		return ordered(field.Float, op, v, sameFloat), nil
	default:
		return nil, fmt.Errorf("%q: %w", fieldName, domain.ErrInvalidField)
	}
}

func textPredicate(get func(*domain.Employee) string, op Operator, value string) Predicate {
	needle := strings.ToLower(value)
	switch op {
	case OpEqual:
		return func(e *domain.Employee) bool { return strings.EqualFold(get(e), value) }
	case OpNotEqual:
		return func(e *domain.Employee) bool { return !strings.EqualFold(get(e), value) }
	case OpContains:
		return func(e *domain.Employee) bool { return strings.Contains(strings.ToLower(get(e)), needle) }
	case OpNotContains:
		return func(e *domain.Employee) bool { return !strings.Contains(strings.ToLower(get(e)), needle) }
	case OpStartsWith:
		return func(e *domain.Employee) bool { return strings.HasPrefix(strings.ToLower(get(e)), needle) }
	case OpEndsWith:
		return func(e *domain.Employee) bool { return strings.HasSuffix(strings.ToLower(get(e)), needle) }
	}
	return nil
}

// ordered строит предикат сравнения для числовых полей.
// eq задаёт равенство для = и !=, порядок сравнивается обычными операторами.
func ordered[T int64 | float64](get func(*domain.Employee) T, op Operator, v T, eq func(a, b T) bool) Predicate {
	switch op {
	case OpEqual:
		return func(e *domain.Employee) bool { return eq(get(e), v) }
	case OpNotEqual:
		return func(e *domain.Employee) bool { return !eq(get(e), v) }
	case OpGreater:
		return func(e *domain.Employee) bool { return get(e) > v }
	case OpLess:
		return func(e *domain.Employee) bool { return get(e) < v }
	case OpGreaterEqual:
		return func(e *domain.Employee) bool { return get(e) >= v }
	case OpLessEqual:
		return func(e *domain.Employee) bool { return get(e) <= v }
	}
	return nil
}

// sameFloat - точное равенство по значению: -0 и 0 различаются, NaN равен NaN
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Float64bits(a) == math.Float64bits(b)
}

// parseFloat принимает десятичную или шестнадцатеричную запись с необязательным
// суффиксом d/f, а также Infinity и NaN в точном написании.
// Подчёркивания и прочие написания бесконечности отвергаются.
func parseFloat(value string) (float64, error) {
	if strings.Contains(value, "_") {
		return 0, strconv.ErrSyntax
	}

	unsigned := strings.TrimLeft(value, "+-")
	if len(value)-len(unsigned) > 1 {
		return 0, strconv.ErrSyntax
	}
	switch unsigned {
	case "Infinity":
		return strconv.ParseFloat(value, 64)
	case "NaN":
		return math.NaN(), nil
	}

	lower := strings.ToLower(unsigned)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return 0, strconv.ErrSyntax
	}

	// В шестнадцатеричной записи d и f - цифры, суффикс возможен только после экспоненты p
	n := len(value)
	if n > 1 && strings.ContainsRune("dDfF", rune(value[n-1])) {
		if !strings.HasPrefix(lower, "0x") || strings.LastIndex(lower, "p") < len(lower)-1 {
			value = value[:n-1]
		}
	}
	return strconv.ParseFloat(value, 64)
}

// Apply применяет предикат ко всем записям, сохраняя их порядок.
// Пустой результат - не ошибка.
func Apply(records []domain.Employee, pred Predicate) []domain.Employee {
	out := make([]domain.Employee, 0)
	for i := range records {
		if pred(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

// Filter компилирует предикат один раз и применяет его к записям
func Filter(records []domain.Employee, fieldName, operator, value string) ([]domain.Employee, error) {
	pred, err := Compile(fieldName, operator, value)
	if err != nil {
		return nil, err
	}
	return Apply(records, pred), nil
}
