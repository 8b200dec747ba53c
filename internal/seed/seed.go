// Package seed поставляет начальный набор сотрудников.
package seed

import (
	"fmt"
	"os"

	"github.com/personnel-roster/internal/domain"
	"gopkg.in/yaml.v3"
)

// Default возвращает встроенный набор из девяти записей
func Default() []domain.Employee {
	mgr := domain.StringPtr
	return []domain.Employee{
		{ID: "E001", Name: "Ramesh", Age: 50, Designation: "CEO", Department: "Management", Salary: 300000},
		{ID: "E002", Name: "Suresh", Age: 42, Designation: "CTO", Department: "IT", Salary: 200000, Manager: mgr("Ramesh")},
		{ID: "E003", Name: "Anita", Age: 38, Designation: "HR Manager", Department: "HR", Salary: 150000, Manager: mgr("Ramesh")},
		{ID: "E004", Name: "Karthi", Age: 30, Designation: "Software Eng", Department: "IT", Salary: 80000, Manager: mgr("Suresh")},
		{ID: "E005", Name: "Priya", Age: 27, Designation: "Software Eng", Department: "IT", Salary: 75000, Manager: mgr("Suresh")},
		{ID: "E006", Name: "Deepa", Age: 29, Designation: "QA Eng", Department: "IT", Salary: 70000, Manager: mgr("Suresh")},
		{ID: "E007", Name: "Vignesh", Age: 32, Designation: "Recruiter", Department: "HR", Salary: 60000, Manager: mgr("Anita")},
		{ID: "E008", Name: "Maya", Age: 24, Designation: "Intern", Department: "IT", Salary: 20000, Manager: mgr("Karthi")},
		{ID: "E009", Name: "Arun", Age: 35, Designation: "Accountant", Department: "Finance", Salary: 90000, Manager: mgr("Ramesh")},
	}
}

type file struct {
	Employees []domain.Employee `yaml:"employees"`
}

// Parse разбирает YAML-документ со списком employees
func Parse(data []byte) ([]domain.Employee, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return f.Employees, nil
}

// LoadFile читает набор записей из YAML-файла
func LoadFile(path string) ([]domain.Employee, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}
