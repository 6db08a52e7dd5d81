// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/session"
)

func TestSalaryNet(t *testing.T) {
	t.Parallel()

	salary := Salary{
		BaseSalary: 10_000_000,
		Allowances: 1_500_000,
		Bonus:      2_000_000,
		Deductions: 1_050_000,
	}
	if got, want := salary.Net(), 12_450_000.0; got != want {
		t.Errorf("Net() = %v, want %v", got, want)
	}
}

func TestPaymentsPreserveBackendOrder(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/employee/payments", func(writer http.ResponseWriter, request *http.Request) {
		writeEnvelope(writer, []PaymentRecord{
			{ID: "p3", Month: "03", Year: 2026, Status: PaymentPending},
			{ID: "p2", Month: "02", Year: 2026, Status: PaymentPaid},
			{ID: "p1", Month: "01", Year: 2026, Status: PaymentPaid},
		})
	})

	client := testClient(t, mux, loggedInStore(t, session.RoleUser))
	payments, err := client.Payments(context.Background())
	if err != nil {
		t.Fatalf("Payments: %v", err)
	}
	if len(payments) != 3 {
		t.Fatalf("len(payments) = %d, want 3", len(payments))
	}
	// The backend already sorts newest-first; the client must not reorder.
	for index, wantID := range []string{"p3", "p2", "p1"} {
		if payments[index].ID != wantID {
			t.Errorf("payments[%d].ID = %q, want %q", index, payments[index].ID, wantID)
		}
	}
}

func TestMarkNotificationRead(t *testing.T) {
	t.Parallel()

	var gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/employee/notifications/{id}/read", func(writer http.ResponseWriter, request *http.Request) {
		gotPath = request.URL.Path
		writeEnvelope(writer, nil)
	})

	client := testClient(t, mux, loggedInStore(t, session.RoleUser))
	if err := client.MarkNotificationRead(context.Background(), "n42"); err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}
	if gotPath != "/api/employee/notifications/n42/read" {
		t.Errorf("path = %q", gotPath)
	}

	if err := client.MarkNotificationRead(context.Background(), ""); !IsValidation(err) {
		t.Errorf("empty id error = %v, want ValidationError", err)
	}
}

func TestMarkAllNotificationsRead(t *testing.T) {
	t.Parallel()

	var called bool
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/employee/notifications/read-all", func(writer http.ResponseWriter, request *http.Request) {
		called = true
		writeEnvelope(writer, nil)
	})

	client := testClient(t, mux, loggedInStore(t, session.RoleUser))
	if err := client.MarkAllNotificationsRead(context.Background()); err != nil {
		t.Fatalf("MarkAllNotificationsRead: %v", err)
	}
	if !called {
		t.Error("server never saw the read-all call")
	}
}

func TestUnreadCount(t *testing.T) {
	t.Parallel()

	notifications := []Notification{
		{ID: "n1", IsRead: true},
		{ID: "n2", IsRead: false},
		{ID: "n3", IsRead: false},
	}
	if got := UnreadCount(notifications); got != 2 {
		t.Errorf("UnreadCount = %d, want 2", got)
	}
	if got := UnreadCount(nil); got != 0 {
		t.Errorf("UnreadCount(nil) = %d, want 0", got)
	}
}
