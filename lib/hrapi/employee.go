// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrapi

import (
	"context"
	"net/http"
	"net/url"
)

// Profile returns the logged-in employee's own profile.
func (client *Client) Profile(ctx context.Context) (*Employee, error) {
	data, err := call[*Employee](client, ctx, "profile", http.MethodGet, "/employee/profile", nil, true)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SalaryInfo returns the logged-in employee's current salary breakdown.
func (client *Client) SalaryInfo(ctx context.Context) (*Salary, error) {
	data, err := call[*Salary](client, ctx, "salary", http.MethodGet, "/employee/salary", nil, true)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Payments returns the payment history, in the order the backend
// delivered it.
func (client *Client) Payments(ctx context.Context) ([]PaymentRecord, error) {
	return call[[]PaymentRecord](client, ctx, "payments", http.MethodGet, "/employee/payments", nil, true)
}

// Notifications returns the employee's notifications, in delivery order.
func (client *Client) Notifications(ctx context.Context) ([]Notification, error) {
	return call[[]Notification](client, ctx, "notifications", http.MethodGet, "/employee/notifications", nil, true)
}

// MarkNotificationRead marks a single notification as read.
func (client *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	if notificationID == "" {
		return Validationf("mark read: notification id is required")
	}
	path := "/employee/notifications/" + url.PathEscape(notificationID) + "/read"
	return callNoResult(client, ctx, "mark read", http.MethodPut, path, nil)
}

// MarkAllNotificationsRead marks every notification as read.
func (client *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return callNoResult(client, ctx, "mark all read", http.MethodPut, "/employee/notifications/read-all", nil)
}
