// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/session"
)

// testStore returns a session store backed by a throwaway directory.
func testStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

// loggedInStore returns a store already holding a session.
func loggedInStore(t *testing.T, role session.Role) *session.Store {
	t.Helper()
	store := testStore(t)
	if err := store.Set("test-token", role); err != nil {
		t.Fatal(err)
	}
	return store
}

// testClient creates a Client whose requests are redirected to a test
// HTTP server. The server is cleaned up when the test completes.
func testClient(t *testing.T, handler http.Handler, store *session.Store) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewForTesting(&testServerTransport{
		server:    server,
		transport: http.DefaultTransport,
	}, store)
}

// testServerTransport rewrites requests to target the test server.
type testServerTransport struct {
	server    *httptest.Server
	transport http.RoundTripper
}

func (transport *testServerTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	request.URL.Scheme = "http"
	request.URL.Host = transport.server.Listener.Addr().String()
	return transport.transport.RoundTrip(request)
}

// writeEnvelope writes a success envelope with the given payload.
func writeEnvelope(writer http.ResponseWriter, data any) {
	writer.Header().Set("Content-Type", "application/json")
	json.NewEncoder(writer).Encode(map[string]any{"success": true, "data": data})
}

// writeFailure writes a success:false envelope with the given message.
func writeFailure(writer http.ResponseWriter, status int, message string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	json.NewEncoder(writer).Encode(map[string]any{"success": false, "message": message})
}

func TestBearerTokenAttached(t *testing.T) {
	t.Parallel()

	var gotAuthorization atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/employee/profile", func(writer http.ResponseWriter, request *http.Request) {
		gotAuthorization.Store(request.Header.Get("Authorization"))
		writeEnvelope(writer, Employee{ID: "e1", Name: "Nguyen Van A"})
	})

	client := testClient(t, mux, loggedInStore(t, session.RoleUser))
	if _, err := client.Profile(context.Background()); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if got := gotAuthorization.Load(); got != "Bearer test-token" {
		t.Errorf("Authorization = %q, want Bearer test-token", got)
	}
}

func TestMissingTokenFailsWithoutNetwork(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		requests.Add(1)
		writeEnvelope(writer, nil)
	})

	client := testClient(t, mux, testStore(t))
	_, err := client.Profile(context.Background())
	if err == nil {
		t.Fatal("expected error without a session")
	}
	if !IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
	if requests.Load() != 0 {
		t.Errorf("server saw %d requests, want 0", requests.Load())
	}
}

func TestServerRejectionSurfacesMessage(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/employee/salary", func(writer http.ResponseWriter, request *http.Request) {
		writeFailure(writer, http.StatusForbidden, "salary record not available")
	})

	client := testClient(t, mux, loggedInStore(t, session.RoleUser))
	_, err := client.SalaryInfo(context.Background())
	if err == nil {
		t.Fatal("expected error for success:false envelope")
	}
	if !IsServer(err) {
		t.Fatalf("error = %T, want ServerError", err)
	}
	var serverError *ServerError
	if !errors.As(err, &serverError) {
		t.Fatalf("error does not unwrap to ServerError: %v", err)
	}
	if serverError.Message != "salary record not available" {
		t.Errorf("Message = %q, want the backend message verbatim", serverError.Message)
	}
	if serverError.Status != http.StatusForbidden {
		t.Errorf("Status = %d, want 403", serverError.Status)
	}
}

func TestNonEnvelopeResponseBecomesServerError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
		writer.Write([]byte("<html>bad gateway</html>"))
	})

	client := testClient(t, mux, loggedInStore(t, session.RoleUser))
	_, err := client.Payments(context.Background())
	if err == nil {
		t.Fatal("expected error for non-JSON response")
	}
	if !IsServer(err) {
		t.Errorf("error = %v, want ServerError", err)
	}
}

func TestExcerptKeepsRunesWhole(t *testing.T) {
	t.Parallel()

	// A long Vietnamese error body whose 200-byte mark lands inside a
	// multi-byte character must be cut back to the previous boundary.
	fragment := "Lỗi hệ thống: không thể truy cập dữ liệu lương nhân viên. "
	long := strings.Repeat(fragment, 10)

	got := excerpt([]byte(long))
	if !utf8.ValidString(got) {
		t.Errorf("excerpt produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("long body was not truncated: %q", got)
	}
	if len(got) > 200+len("…") {
		t.Errorf("excerpt length = %d bytes, want at most %d", len(got), 200+len("…"))
	}

	if got := excerpt([]byte("  short message  ")); got != "short message" {
		t.Errorf("excerpt(short) = %q, want trimmed text", got)
	}
	if got := excerpt(nil); got != "empty response body" {
		t.Errorf("excerpt(nil) = %q, want placeholder", got)
	}
}

func TestTransportFailure(t *testing.T) {
	t.Parallel()

	// A server that is immediately closed produces connection-refused.
	server := httptest.NewServer(http.NewServeMux())
	server.Close()

	client := NewForTesting(&testServerTransport{
		server:    server,
		transport: http.DefaultTransport,
	}, loggedInStore(t, session.RoleUser))

	_, err := client.Notifications(context.Background())
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}
	if !IsTransport(err) {
		t.Errorf("error = %v, want TransportError", err)
	}
}
