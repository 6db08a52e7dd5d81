// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/session"
)

// departmentHandler is an in-memory department store behind the admin
// endpoints, enough to exercise the create/list/delete cycle.
type departmentHandler struct {
	mutex       sync.Mutex
	nextID      int
	departments map[string]Department
}

func newDepartmentHandler() *departmentHandler {
	return &departmentHandler{nextID: 1, departments: make(map[string]Department)}
}

func (handler *departmentHandler) register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/admin/departments", func(writer http.ResponseWriter, request *http.Request) {
		handler.mutex.Lock()
		defer handler.mutex.Unlock()
		list := make([]Department, 0, len(handler.departments))
		for _, department := range handler.departments {
			list = append(list, department)
		}
		writeEnvelope(writer, list)
	})
	mux.HandleFunc("POST /api/admin/departments", func(writer http.ResponseWriter, request *http.Request) {
		var body DepartmentRequest
		json.NewDecoder(request.Body).Decode(&body)
		handler.mutex.Lock()
		defer handler.mutex.Unlock()
		department := Department{
			ID:      "d" + strconv.Itoa(handler.nextID),
			Code:    body.Code,
			Name:    body.Name,
			Manager: body.Manager,
		}
		handler.nextID++
		handler.departments[department.ID] = department
		writeEnvelope(writer, department)
	})
	mux.HandleFunc("DELETE /api/admin/departments/{id}", func(writer http.ResponseWriter, request *http.Request) {
		handler.mutex.Lock()
		defer handler.mutex.Unlock()
		id := request.PathValue("id")
		if _, ok := handler.departments[id]; !ok {
			writeFailure(writer, http.StatusNotFound, "department not found")
			return
		}
		delete(handler.departments, id)
		writeEnvelope(writer, nil)
	})
}

func TestDepartmentCreateListDelete(t *testing.T) {
	t.Parallel()

	handler := newDepartmentHandler()
	mux := http.NewServeMux()
	handler.register(mux)

	client := testClient(t, mux, loggedInStore(t, session.RoleAdmin))
	ctx := context.Background()

	created, err := client.CreateDepartment(ctx, DepartmentRequest{
		Code:    "IT",
		Name:    "Information Technology",
		Manager: "Tran Thi B",
	})
	if err != nil {
		t.Fatalf("CreateDepartment: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created department has no ID")
	}

	departments, err := client.Departments(ctx)
	if err != nil {
		t.Fatalf("Departments: %v", err)
	}
	if len(departments) != 1 || departments[0].Code != "IT" {
		t.Errorf("departments = %+v, want the one created department", departments)
	}

	if err := client.DeleteDepartment(ctx, created.ID); err != nil {
		t.Fatalf("DeleteDepartment: %v", err)
	}

	departments, err = client.Departments(ctx)
	if err != nil {
		t.Fatalf("Departments after delete: %v", err)
	}
	if len(departments) != 0 {
		t.Errorf("departments after delete = %+v, want empty", departments)
	}

	// Deleting again surfaces the backend's rejection.
	if err := client.DeleteDepartment(ctx, created.ID); !IsServer(err) {
		t.Errorf("second delete error = %v, want ServerError", err)
	}
}

func TestDepartmentRequestValidate(t *testing.T) {
	t.Parallel()

	valid := DepartmentRequest{Code: "HR", Name: "Human Resources", Manager: "Le Van C"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v for a valid request", err)
	}
	for name, mutate := range map[string]func(*DepartmentRequest){
		"code":    func(request *DepartmentRequest) { request.Code = "" },
		"name":    func(request *DepartmentRequest) { request.Name = "" },
		"manager": func(request *DepartmentRequest) { request.Manager = "" },
	} {
		request := valid
		mutate(&request)
		if err := request.Validate(); !IsValidation(err) {
			t.Errorf("missing %s: error = %v, want ValidationError", name, err)
		}
	}
}

func TestEmployeeRequestValidate(t *testing.T) {
	t.Parallel()

	valid := EmployeeRequest{Name: "Nguyen Van A", Email: "nva@example.com", Status: EmployeeActive}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v for a valid request", err)
	}

	noName := valid
	noName.Name = ""
	if err := noName.Validate(); !IsValidation(err) {
		t.Errorf("missing name: error = %v, want ValidationError", err)
	}

	badStatus := valid
	badStatus.Status = "retired"
	if err := badStatus.Validate(); !IsValidation(err) {
		t.Errorf("bad status: error = %v, want ValidationError", err)
	}
}

func TestCreatePayrollRecomputesNet(t *testing.T) {
	t.Parallel()

	var gotNet float64
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/payroll", func(writer http.ResponseWriter, request *http.Request) {
		var body PayrollRequest
		json.NewDecoder(request.Body).Decode(&body)
		gotNet = body.NetSalary
		writeEnvelope(writer, PayrollEntry{ID: "pr1", NetSalary: body.NetSalary})
	})

	client := testClient(t, mux, loggedInStore(t, session.RoleAdmin))
	_, err := client.CreatePayrollEntry(context.Background(), PayrollRequest{
		EmployeeID: "e1",
		Month:      "03",
		Year:       2026,
		BaseSalary: 10_000_000,
		Allowances: 500_000,
		Bonus:      1_000_000,
		Deductions: 800_000,
		NetSalary:  999, // stale caller value, must be overwritten
		Status:     PayrollDraft,
	})
	if err != nil {
		t.Fatalf("CreatePayrollEntry: %v", err)
	}
	if want := 10_700_000.0; gotNet != want {
		t.Errorf("submitted netSalary = %v, want %v", gotNet, want)
	}
}

func TestUpdatePayrollKeepsEmployeeSnapshot(t *testing.T) {
	t.Parallel()

	var gotBody PayrollRequest
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/admin/payroll/{id}", func(writer http.ResponseWriter, request *http.Request) {
		json.NewDecoder(request.Body).Decode(&gotBody)
		writeEnvelope(writer, PayrollEntry{ID: request.PathValue("id")})
	})

	client := testClient(t, mux, loggedInStore(t, session.RoleAdmin))
	_, err := client.UpdatePayrollEntry(context.Background(), "pr1", PayrollRequest{
		EmployeeID:   "e1",
		EmployeeName: "Nguyen Van A",
		EmployeeCode: "NV001",
		Department:   "IT",
		Month:        "03",
		Year:         2026,
		BaseSalary:   12_000_000,
		Status:       PayrollApproved,
	})
	if err != nil {
		t.Fatalf("UpdatePayrollEntry: %v", err)
	}
	// The snapshot fields pass through untouched.
	if gotBody.EmployeeName != "Nguyen Van A" || gotBody.EmployeeCode != "NV001" || gotBody.Department != "IT" {
		t.Errorf("snapshot fields = %q/%q/%q", gotBody.EmployeeName, gotBody.EmployeeCode, gotBody.Department)
	}
	if gotBody.NetSalary != 12_000_000 {
		t.Errorf("netSalary = %v, want 12000000", gotBody.NetSalary)
	}
}

func TestPayrollRequestValidate(t *testing.T) {
	t.Parallel()

	valid := PayrollRequest{EmployeeID: "e1", Month: "01", Year: 2026, Status: PayrollDraft}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v for a valid request", err)
	}

	badStatus := valid
	badStatus.Status = "cancelled"
	if err := badStatus.Validate(); !IsValidation(err) {
		t.Errorf("bad status: error = %v, want ValidationError", err)
	}

	noEmployee := valid
	noEmployee.EmployeeID = ""
	if err := noEmployee.Validate(); !IsValidation(err) {
		t.Errorf("missing employee: error = %v, want ValidationError", err)
	}
}

func TestDashboardCharts(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/dashboard/stats", func(writer http.ResponseWriter, request *http.Request) {
		writeEnvelope(writer, DashboardStats{TotalEmployees: 42, TotalDepartments: 5})
	})
	mux.HandleFunc("GET /api/admin/dashboard/salary-by-department", func(writer http.ResponseWriter, request *http.Request) {
		writeEnvelope(writer, []ChartData{{Name: "IT", Value: 120_000_000}, {Name: "HR", Value: 60_000_000}})
	})

	client := testClient(t, mux, loggedInStore(t, session.RoleAdmin))
	ctx := context.Background()

	stats, err := client.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalEmployees != 42 {
		t.Errorf("TotalEmployees = %d, want 42", stats.TotalEmployees)
	}

	chart, err := client.SalaryByDepartment(ctx)
	if err != nil {
		t.Fatalf("SalaryByDepartment: %v", err)
	}
	if len(chart) != 2 || chart[0].Name != "IT" {
		t.Errorf("chart = %+v", chart)
	}
}
