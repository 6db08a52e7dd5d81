// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrapi

import (
	"context"
	"net/http"
	"net/url"
)

// Stats returns the admin dashboard's headline counters.
func (client *Client) Stats(ctx context.Context) (*DashboardStats, error) {
	data, err := call[*DashboardStats](client, ctx, "dashboard stats", http.MethodGet, "/admin/dashboard/stats", nil, true)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SalaryByDepartment returns the salary-per-department chart series.
func (client *Client) SalaryByDepartment(ctx context.Context) ([]ChartData, error) {
	return call[[]ChartData](client, ctx, "salary by department", http.MethodGet, "/admin/dashboard/salary-by-department", nil, true)
}

// EmployeesByDepartment returns the headcount-per-department chart series.
func (client *Client) EmployeesByDepartment(ctx context.Context) ([]ChartData, error) {
	return call[[]ChartData](client, ctx, "employees by department", http.MethodGet, "/admin/dashboard/employees-by-department", nil, true)
}

// MonthlyPayroll returns the total-payroll-per-month chart series.
func (client *Client) MonthlyPayroll(ctx context.Context) ([]ChartData, error) {
	return call[[]ChartData](client, ctx, "monthly payroll", http.MethodGet, "/admin/dashboard/monthly-payroll", nil, true)
}

// DepartmentRequest is the mutable subset of Department sent on create
// and update. ID, EmployeeCount, and CreatedDate are backend-owned.
type DepartmentRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Manager     string `json:"manager"`
	Description string `json:"description,omitempty"`
}

// Validate checks the required department fields.
func (request DepartmentRequest) Validate() error {
	if request.Code == "" {
		return Validationf("department code is required")
	}
	if request.Name == "" {
		return Validationf("department name is required")
	}
	if request.Manager == "" {
		return Validationf("department manager is required")
	}
	return nil
}

// Departments lists all departments.
func (client *Client) Departments(ctx context.Context) ([]Department, error) {
	return call[[]Department](client, ctx, "departments", http.MethodGet, "/admin/departments", nil, true)
}

// Department returns a single department by ID.
func (client *Client) Department(ctx context.Context, id string) (*Department, error) {
	if id == "" {
		return nil, Validationf("department: id is required")
	}
	data, err := call[*Department](client, ctx, "department", http.MethodGet, "/admin/departments/"+url.PathEscape(id), nil, true)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// CreateDepartment creates a department and returns the stored record.
func (client *Client) CreateDepartment(ctx context.Context, request DepartmentRequest) (*Department, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	data, err := call[*Department](client, ctx, "create department", http.MethodPost, "/admin/departments", request, true)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// UpdateDepartment updates a department and returns the stored record.
func (client *Client) UpdateDepartment(ctx context.Context, id string, request DepartmentRequest) (*Department, error) {
	if id == "" {
		return nil, Validationf("update department: id is required")
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	data, err := call[*Department](client, ctx, "update department", http.MethodPut, "/admin/departments/"+url.PathEscape(id), request, true)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// DeleteDepartment deletes a department.
func (client *Client) DeleteDepartment(ctx context.Context, id string) error {
	if id == "" {
		return Validationf("delete department: id is required")
	}
	return callNoResult(client, ctx, "delete department", http.MethodDelete, "/admin/departments/"+url.PathEscape(id), nil)
}

// EmployeeRequest is the mutable subset of AdminEmployee sent on create
// and update. ID and EmployeeCode are assigned by the backend.
type EmployeeRequest struct {
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	DateOfBirth  string         `json:"dateOfBirth"`
	Address      string         `json:"address"`
	Position     string         `json:"position"`
	Department   string         `json:"department"`
	DepartmentID string         `json:"departmentId"`
	StartDate    string         `json:"startDate"`
	Salary       float64        `json:"salary"`
	Status       EmployeeStatus `json:"status"`
}

// Validate checks the required employee fields.
func (request EmployeeRequest) Validate() error {
	if request.Name == "" {
		return Validationf("employee name is required")
	}
	if request.Email == "" {
		return Validationf("employee email is required")
	}
	switch request.Status {
	case EmployeeActive, EmployeeInactive, EmployeeOnLeave:
	default:
		return Validationf("employee status must be active, inactive, or onleave")
	}
	return nil
}

// Employees lists all employees with their admin fields.
func (client *Client) Employees(ctx context.Context) ([]AdminEmployee, error) {
	return call[[]AdminEmployee](client, ctx, "employees", http.MethodGet, "/admin/employees", nil, true)
}

// EmployeeByID returns a single employee.
func (client *Client) EmployeeByID(ctx context.Context, id string) (*AdminEmployee, error) {
	if id == "" {
		return nil, Validationf("employee: id is required")
	}
	data, err := call[*AdminEmployee](client, ctx, "employee", http.MethodGet, "/admin/employees/"+url.PathEscape(id), nil, true)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// CreateEmployee creates an employee and returns the stored record
// (including the backend-assigned employee code).
func (client *Client) CreateEmployee(ctx context.Context, request EmployeeRequest) (*AdminEmployee, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	data, err := call[*AdminEmployee](client, ctx, "create employee", http.MethodPost, "/admin/employees", request, true)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// UpdateEmployee updates an employee and returns the stored record.
func (client *Client) UpdateEmployee(ctx context.Context, id string, request EmployeeRequest) (*AdminEmployee, error) {
	if id == "" {
		return nil, Validationf("update employee: id is required")
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	data, err := call[*AdminEmployee](client, ctx, "update employee", http.MethodPut, "/admin/employees/"+url.PathEscape(id), request, true)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// DeleteEmployee deletes an employee.
func (client *Client) DeleteEmployee(ctx context.Context, id string) error {
	if id == "" {
		return Validationf("delete employee: id is required")
	}
	return callNoResult(client, ctx, "delete employee", http.MethodDelete, "/admin/employees/"+url.PathEscape(id), nil)
}

// PayrollRequest is the mutable subset of PayrollEntry sent on create
// and update. The employee name/code/department fields are the snapshot
// taken at creation time. NetSalary is computed client-side from the
// components immediately before submission.
type PayrollRequest struct {
	EmployeeID   string        `json:"employeeId"`
	EmployeeName string        `json:"employeeName"`
	EmployeeCode string        `json:"employeeCode"`
	Department   string        `json:"department"`
	Month        string        `json:"month"`
	Year         int           `json:"year"`
	BaseSalary   float64       `json:"baseSalary"`
	Allowances   float64       `json:"allowances"`
	Bonus        float64       `json:"bonus"`
	Deductions   float64       `json:"deductions"`
	NetSalary    float64       `json:"netSalary"`
	Status       PayrollStatus `json:"status"`
}

// Net computes the net pay from the request's components.
func (request PayrollRequest) Net() float64 {
	return request.BaseSalary + request.Allowances + request.Bonus - request.Deductions
}

// Validate checks the required payroll fields.
func (request PayrollRequest) Validate() error {
	if request.EmployeeID == "" {
		return Validationf("payroll employee id is required")
	}
	if request.Month == "" {
		return Validationf("payroll month is required")
	}
	if request.Year == 0 {
		return Validationf("payroll year is required")
	}
	switch request.Status {
	case PayrollDraft, PayrollApproved, PayrollPaid:
	default:
		return Validationf("payroll status must be draft, approved, or paid")
	}
	return nil
}

// Payroll lists all payroll entries.
func (client *Client) Payroll(ctx context.Context) ([]PayrollEntry, error) {
	return call[[]PayrollEntry](client, ctx, "payroll", http.MethodGet, "/admin/payroll", nil, true)
}

// PayrollEntryByID returns a single payroll entry.
func (client *Client) PayrollEntryByID(ctx context.Context, id string) (*PayrollEntry, error) {
	if id == "" {
		return nil, Validationf("payroll entry: id is required")
	}
	data, err := call[*PayrollEntry](client, ctx, "payroll entry", http.MethodGet, "/admin/payroll/"+url.PathEscape(id), nil, true)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// CreatePayrollEntry creates a payroll entry. The net salary is
// recomputed from the components before submission regardless of what
// the caller set.
func (client *Client) CreatePayrollEntry(ctx context.Context, request PayrollRequest) (*PayrollEntry, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	request.NetSalary = request.Net()
	data, err := call[*PayrollEntry](client, ctx, "create payroll", http.MethodPost, "/admin/payroll", request, true)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// UpdatePayrollEntry updates a payroll entry, recomputing the net salary
// from the components before submission. The employee snapshot fields
// are sent as-is; they are never re-derived from the employee record.
func (client *Client) UpdatePayrollEntry(ctx context.Context, id string, request PayrollRequest) (*PayrollEntry, error) {
	if id == "" {
		return nil, Validationf("update payroll: id is required")
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	request.NetSalary = request.Net()
	data, err := call[*PayrollEntry](client, ctx, "update payroll", http.MethodPut, "/admin/payroll/"+url.PathEscape(id), request, true)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// DeletePayrollEntry deletes a payroll entry.
func (client *Client) DeletePayrollEntry(ctx context.Context, id string) error {
	if id == "" {
		return Validationf("delete payroll: id is required")
	}
	return callNoResult(client, ctx, "delete payroll", http.MethodDelete, "/admin/payroll/"+url.PathEscape(id), nil)
}
