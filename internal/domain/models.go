package domain

// Employee представляет запись о сотруднике.
// Связь "подчиняется" хранится по имени руководителя, а не по ID.
type Employee struct {
	Seq         int64   `json:"-" yaml:"-" gorm:"primaryKey;autoIncrement"`
	ID          string  `json:"id" yaml:"id" gorm:"type:varchar(50);not null"`
	Name        string  `json:"name" yaml:"name" gorm:"type:varchar(200);not null"`
	Age         int     `json:"age" yaml:"age" gorm:"not null"`
	Designation string  `json:"designation" yaml:"designation" gorm:"type:varchar(200)"`
	Department  string  `json:"department" yaml:"department" gorm:"type:varchar(200)"`
	Salary      float64 `json:"salary" yaml:"salary" gorm:"not null"`
	Manager     *string `json:"manager" yaml:"manager" gorm:"type:varchar(200)"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// ManagerName возвращает имя руководителя или пустую строку для корня
func (e *Employee) ManagerName() string {
	if e.Manager == nil {
		return ""
	}
	return *e.Manager
}

// HasManager сообщает, указан ли руководитель
func (e *Employee) HasManager() bool {
	return e.Manager != nil
}

// Clone возвращает копию записи, не разделяющую указатель на руководителя
func (e Employee) Clone() Employee {
	if e.Manager != nil {
		m := *e.Manager
		e.Manager = &m
	}
	return e
}

// StringPtr возвращает указатель на строку
func StringPtr(s string) *string {
	return &s
}
