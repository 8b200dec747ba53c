package query

import "strings"

// Operator - тег оператора сравнения
type Operator string

const (
	OpEqual        Operator = "equals"
	OpNotEqual     Operator = "not_equals"
	OpContains     Operator = "contains"
	OpNotContains  Operator = "not_contains"
	OpStartsWith   Operator = "starts_with"
	OpEndsWith     Operator = "ends_with"
	OpGreater      Operator = "greater"
	OpLess         Operator = "less"
	OpGreaterEqual Operator = "greater_equal"
	OpLessEqual    Operator = "less_equal"
)

// textSpellings - написания операторов для текстовых полей
var textSpellings = map[string]Operator{
	"=":            OpEqual,
	"equals":       OpEqual,
	"!=":           OpNotEqual,
	"not equals":   OpNotEqual,
	"contains":     OpContains,
	"!contains":    OpNotContains,
	"not contains": OpNotContains,
	"starts":       OpStartsWith,
	"starts with":  OpStartsWith,
	"ends":         OpEndsWith,
	"ends with":    OpEndsWith,
}

// numericSpellings - для числовых полей принимаются только символьные формы
var numericSpellings = map[string]Operator{
	"=":  OpEqual,
	"!=": OpNotEqual,
	">":  OpGreater,
	"<":  OpLess,
	">=": OpGreaterEqual,
	"<=": OpLessEqual,
}

// ParseOperator переводит токен оператора в тег с учётом типа поля
func ParseOperator(kind Kind, token string) (Operator, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if kind == KindText {
		op, ok := textSpellings[token]
		return op, ok
	}
	op, ok := numericSpellings[token]
	return op, ok
}
