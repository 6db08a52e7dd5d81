// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

// Package hrapi is the typed HTTP client for the HR backend's REST API.
//
// The client mirrors the backend's wire format with its own response
// types; every endpoint returns the uniform {success, data, message,
// error} envelope, which the client unwraps into typed results or one of
// three error kinds: TransportError (network), ServerError (backend said
// no), ValidationError (client-side precondition, no network call made).
//
// All state lives in the backend. The client holds only the base URL,
// an http.Client, and a reference to the session store it reads the
// bearer token from on each request.
package hrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/netutil"
	"github.com/tuananhletrong12-max/QLLNV-code-git/lib/session"
)

// Client is a typed HTTP client for the HR backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	store      *session.Store
}

// New creates a Client for the backend at baseURL (including any path
// prefix, e.g. "http://localhost:8080/api"). The store supplies the
// bearer token for authenticated requests; the timeout applies to every
// request that does not carry its own earlier context deadline.
func New(baseURL string, timeout time.Duration, store *session.Store) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		store:      store,
	}
}

// NewForTesting creates a Client with a custom transport. Tests use this
// to redirect requests to an httptest.Server.
func NewForTesting(transport http.RoundTripper, store *session.Store) *Client {
	return &Client{
		httpClient: &http.Client{Transport: transport},
		baseURL:    "http://backend/api",
		store:      store,
	}
}

// Store returns the session store this client reads credentials from.
func (client *Client) Store() *session.Store {
	return client.store
}

// do issues one request. For authenticated requests the bearer token is
// read from the session store at call time; a missing token fails
// locally without touching the network (the backend never sees an
// unauthenticated call that was doomed from the start).
func (client *Client) do(ctx context.Context, operation, method, path string, body any, authenticated bool) (*http.Response, error) {
	var token string
	if authenticated {
		token = client.store.Token()
		if token == "" {
			return nil, Validationf("%s: not logged in (run \"qllnv login\")", operation)
		}
	}

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encoding request body: %w", operation, err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", operation, err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, &TransportError{Op: operation, Err: err}
	}
	return response, nil
}

// call issues a request and unwraps the response envelope into T.
// A success:false envelope or a non-2xx status without a decodable
// envelope becomes a ServerError carrying the backend's message.
func call[T any](client *Client, ctx context.Context, operation, method, path string, body any, authenticated bool) (T, error) {
	var zero T

	response, err := client.do(ctx, operation, method, path, body, authenticated)
	if err != nil {
		return zero, err
	}
	defer response.Body.Close()

	data, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return zero, &TransportError{Op: operation, Err: err}
	}

	var envelope Envelope[T]
	if err := json.Unmarshal(data, &envelope); err != nil {
		// Not a valid envelope, likely a gateway error page.
		// Fold the status and a body excerpt into the message.
		return zero, &ServerError{
			Op:      operation,
			Status:  response.StatusCode,
			Message: fmt.Sprintf("HTTP %d: %s", response.StatusCode, excerpt(data)),
		}
	}

	if !envelope.Success {
		return zero, &ServerError{
			Op:      operation,
			Status:  response.StatusCode,
			Message: envelope.FailureMessage(),
		}
	}

	return envelope.Data, nil
}

// callNoResult is call for endpoints whose envelope carries no payload.
func callNoResult(client *Client, ctx context.Context, operation, method, path string, body any) error {
	_, err := call[json.RawMessage](client, ctx, operation, method, path, body, true)
	return err
}

// excerpt trims a raw error body to a length fit for an error message.
// The cut backs up to a rune boundary so multi-byte text is never split
// mid-character.
func excerpt(data []byte) string {
	const limit = 200
	text := strings.TrimSpace(string(data))
	if len(text) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		return text[:cut] + "…"
	}
	if text == "" {
		return "empty response body"
	}
	return text
}
