package dto

// SearchQuery - параметры фильтрации (поле, оператор, значение)
type SearchQuery struct {
	Field    string `validate:"required,max=50"`
	Operator string `validate:"required,max=20"`
	Value    string `validate:"max=200"`
}

// RemoveRequest - параметры удаления сотрудника
type RemoveRequest struct {
	ID string `validate:"required,max=50"`
}

// IDQuery - параметры поиска по ID
type IDQuery struct {
	ID string `validate:"required,max=50"`
}

// NameQuery - параметры поиска по имени
type NameQuery struct {
	Name string `validate:"required,max=200"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Age         int     `json:"age"`
	Designation string  `json:"designation"`
	Department  string  `json:"department"`
	Salary      float64 `json:"salary"`
	Manager     *string `json:"manager"`
}

// ListResponse - список сотрудников с количеством
type ListResponse struct {
	Count     int                `json:"count"`
	Employees []EmployeeResponse `json:"employees"`
}

// RemoveResponse - результат удаления
type RemoveResponse struct {
	Removed    EmployeeResponse `json:"removed"`
	Reassigned int              `json:"reassigned"`
}

// ReportGroupResponse - руководитель и его прямые подчинённые
type ReportGroupResponse struct {
	Manager string   `json:"manager"`
	Reports []string `json:"reports"`
}

// ChainResponse - цепочка подчинения до вершины
type ChainResponse struct {
	Name  string   `json:"name"`
	Chain []string `json:"chain"`
}

// GroupCountResponse - количество в группе
type GroupCountResponse struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// SummaryResponse - сводные показатели
type SummaryResponse struct {
	Total         int                  `json:"total"`
	ByDepartment  []GroupCountResponse `json:"by_department"`
	AverageSalary float64              `json:"average_salary"`
	MaxSalary     *float64             `json:"max_salary,omitempty"`
	MinSalary     *float64             `json:"min_salary,omitempty"`
	DirectReports []GroupCountResponse `json:"direct_reports"`
	TopEarners    []EmployeeResponse   `json:"top_earners"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
