// chargebot - nearby EV chargers over SMS
// Copyright (C) 2026  nexus contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

package chargers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// StatusError is returned when Open Charge Map answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s for url: %s", e.Status, e.URL)
}

// DecodeError is returned when the response body is not a JSON array of POIs.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decode response: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// FailureKind classifies a lookup error.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureTransport
	FailureStatus
	FailureDecode
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureTransport:
		return "transport"
	case FailureStatus:
		return "status"
	case FailureDecode:
		return "decode"
	}
	return "unknown"
}

// Classify reports which stage of the lookup produced err.
func Classify(err error) FailureKind {
	var statusErr *StatusError
	var decodeErr *DecodeError
	switch {
	case err == nil:
		return FailureNone
	case errors.As(err, &statusErr):
		return FailureStatus
	case errors.As(err, &decodeErr):
		return FailureDecode
	default:
		return FailureTransport
	}
}

// Client talks to the Open Charge Map POI endpoint. It is safe for
// concurrent use; the API key is fixed at construction.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. timeout of zero leaves the HTTP client without a
// deadline; the caller's context still applies.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Nearby fetches the chargers within q. A nil or empty slice with a nil error
// means the API found nothing.
func (c *Client) Nearby(ctx context.Context, q GeoQuery) ([]POI, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	params := url.Values{}
	params.Set("output", "json")
	params.Set("latitude", strconv.FormatFloat(q.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	params.Set("distance", strconv.FormatFloat(q.RadiusKM, 'f', -1, 64))
	params.Set("distanceunit", "KM")
	params.Set("maxresults", strconv.Itoa(q.MaxResults))
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: u.String()}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var pois []POI
	if err := json.Unmarshal(body, &pois); err != nil {
		if isEmptyValue(body) {
			return nil, nil
		}
		return nil, &DecodeError{Err: err}
	}
	return pois, nil
}

// isEmptyValue reports whether body is a JSON value with no content ({}, "",
// 0, false). The API occasionally answers an empty area that way instead of
// with [].
func isEmptyValue(body []byte) bool {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return true
	case map[string]interface{}:
		return len(t) == 0
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	}
	return false
}
