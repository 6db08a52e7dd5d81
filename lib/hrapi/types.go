// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrapi

// Envelope is the uniform response wrapper every backend endpoint uses.
// Exactly one of Data or the message fields is meaningful: on success the
// payload is in Data; on failure Message (preferred) or Error carries the
// human-readable reason.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// FailureMessage returns the backend's failure text, preferring Message
// over Error, with a generic fallback so the caller never shows an empty
// reason.
func (envelope *Envelope[T]) FailureMessage() string {
	if envelope.Message != "" {
		return envelope.Message
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	return "request failed"
}

// Employee is the self-service profile record.
type Employee struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employeeCode"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	DateOfBirth  string `json:"dateOfBirth"`
	Address      string `json:"address"`
	Position     string `json:"position"`
	Department   string `json:"department"`
	StartDate    string `json:"startDate"`
	Avatar       string `json:"avatar,omitempty"`
}

// Salary is the current salary breakdown for the logged-in employee.
type Salary struct {
	BaseSalary float64 `json:"baseSalary"`
	Allowances float64 `json:"allowances"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	NetSalary  float64 `json:"netSalary"`
}

// Net computes the net salary from its components. Displays always use
// this rather than trusting the server-provided NetSalary field.
func (salary Salary) Net() float64 {
	return salary.BaseSalary + salary.Allowances + salary.Bonus - salary.Deductions
}

// PaymentStatus is the state of a historical payment.
type PaymentStatus string

const (
	PaymentPaid       PaymentStatus = "paid"
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
)

// PaymentRecord is one immutable row of payment history.
type PaymentRecord struct {
	ID         string        `json:"id"`
	Month      string        `json:"month"`
	Year       int           `json:"year"`
	BaseSalary float64       `json:"baseSalary"`
	Allowances float64       `json:"allowances"`
	Bonus      float64       `json:"bonus"`
	Deductions float64       `json:"deductions"`
	NetSalary  float64       `json:"netSalary"`
	PaidDate   string        `json:"paidDate"`
	Status     PaymentStatus `json:"status"`
}

// Net computes the record's net pay from its components.
func (record PaymentRecord) Net() float64 {
	return record.BaseSalary + record.Allowances + record.Bonus - record.Deductions
}

// NotificationType classifies a notification for display.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// Notification is a message delivered to the employee. Ordering is
// whatever the backend delivered; the client does not re-sort.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Date    string           `json:"date"`
	IsRead  bool             `json:"isRead"`
}

// UnreadCount returns the number of notifications with IsRead == false.
func UnreadCount(notifications []Notification) int {
	count := 0
	for _, notification := range notifications {
		if !notification.IsRead {
			count++
		}
	}
	return count
}

// Department is an organizational unit. EmployeeCount is computed by the
// backend and is display-only.
type Department struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Manager       string `json:"manager"`
	EmployeeCount int    `json:"employeeCount"`
	Description   string `json:"description,omitempty"`
	CreatedDate   string `json:"createdDate"`
}

// EmployeeStatus is the employment state of an admin-managed employee.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
	EmployeeOnLeave  EmployeeStatus = "onleave"
)

// AdminEmployee extends Employee with the fields the admin console
// manages.
type AdminEmployee struct {
	Employee
	DepartmentID string         `json:"departmentId"`
	Salary       float64        `json:"salary"`
	Status       EmployeeStatus `json:"status"`
}

// PayrollStatus is the workflow state of a payroll entry.
type PayrollStatus string

const (
	PayrollDraft    PayrollStatus = "draft"
	PayrollApproved PayrollStatus = "approved"
	PayrollPaid     PayrollStatus = "paid"
)

// PayrollEntry is one month's pay for one employee. The employee name,
// code, and department are snapshots taken when the entry was created;
// they intentionally do not track later edits to the employee record.
type PayrollEntry struct {
	ID           string        `json:"id"`
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
	CreatedDate  string        `json:"createdDate"`
	PaidDate     string        `json:"paidDate,omitempty"`
}

// Net computes the entry's net pay from its components.
func (entry PayrollEntry) Net() float64 {
	return entry.BaseSalary + entry.Allowances + entry.Bonus - entry.Deductions
}

// DashboardStats is the admin dashboard's headline numbers.
type DashboardStats struct {
	TotalEmployees   int           `json:"totalEmployees"`
	TotalDepartments int           `json:"totalDepartments"`
	TotalPayroll     float64       `json:"totalPayroll"`
	AverageSalary    float64       `json:"averageSalary"`
	MonthlyChange    MonthlyChange `json:"monthlyChange"`
}

// MonthlyChange is the month-over-month delta shown next to the
// dashboard counters.
type MonthlyChange struct {
	Employees float64 `json:"employees"`
	Payroll   float64 `json:"payroll"`
}

// ChartData is one name/value point in a dashboard series.
type ChartData struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
