// Package employee implements the employee CRUD use cases, their stores and their HTTP surface.
package employee

import "strings"

// Employee is the persisted record. ID is assigned by the store and never changes.
type Employee struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// EmployeeForm is the request body accepted by create and update.
type EmployeeForm struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
}

// Normalize trims surrounding whitespace from every field.
func (f EmployeeForm) Normalize() EmployeeForm {
	return EmployeeForm{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.TrimSpace(f.Email),
	}
}

// Employee converts the form into an unsaved record.
func (f EmployeeForm) Employee() Employee {
	return Employee{FirstName: f.FirstName, LastName: f.LastName, Email: f.Email}
}
