// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ibkrflexquery provides an API client for the IBKR Flex Query Web Service.
//
// The Flex Query Web Service is a two-step REST API:
//  1. SendRequest: Submits a query and returns a reference code.
//  2. GetStatement: Polls with the reference code until the XML statement is ready.
//
// Both endpoints require a Flex Web Service token for authentication and
// a "Java" User-Agent header. Both endpoints may return transient errors
// (e.g., 1001 server busy, 1019 statement generating) which are retried
// with exponential backoff. Requests are paced by a rate limiter, as IBKR
// rejects tokens that poll too quickly.
//
// The client returns the raw statement bytes. Decoding is done by the
// ibkrflex package.
package ibkrflexquery

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/bufdev/ibflex/internal/pkg/backoff"
	"github.com/bufdev/ibflex/internal/standard/xtime"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the IBKR Flex Web Service base URL.
	DefaultBaseURL = "https://ndcdyn.interactivebrokers.com/AccountManagement/FlexWebService"
	// DefaultRequestsPerMinute is the default request rate.
	DefaultRequestsPerMinute = 10
	// userAgent is the required User-Agent header for IBKR (IBKR expects "Java").
	userAgent = "Java"
	// apiVersion is the Flex Web Service API version.
	apiVersion = "3"
)

// DefaultRetryPolicy is the default retry policy for each API call.
var DefaultRetryPolicy = backoff.Policy{
	MaxAttempts:  10,
	InitialDelay: 2 * time.Second,
	MaxDelay:     30 * time.Second,
}

// StatusError is an error reported by the Flex Web Service in a
// FlexStatementResponse envelope.
type StatusError struct {
	// Code is the IBKR error code, e.g. "1019".
	Code string
	// Message is the IBKR error message.
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.Message, e.Code)
}

// Retryable returns true if IBKR documents the code as transient.
func (e *StatusError) Retryable() bool {
	return retryableErrorCodes[e.Code]
}

// Client is the interface for downloading Flex Query statements from IBKR.
type Client interface {
	// Download fetches a Flex Query statement and returns the raw XML.
	//
	// The token is the Flex Web Service token generated in the IBKR portal.
	// The queryID identifies which Flex Query to execute.
	// The fromDate and toDate optionally override the query's configured period.
	// Pass zero-value dates to use the query's default period.
	// If one is set, both must be set. Each request is limited to 365 days.
	Download(ctx context.Context, token string, queryID string, fromDate xtime.Date, toDate xtime.Date) ([]byte, error)
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*client)

// ClientWithHTTPClient sets the HTTP client to use for requests.
func ClientWithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// ClientWithLogger sets the logger for the client.
//
// The default discards all output.
func ClientWithLogger(logger *slog.Logger) ClientOption {
	return func(c *client) {
		c.logger = logger
	}
}

// ClientWithBaseURL sets the base URL of the Flex Web Service.
//
// The default is DefaultBaseURL.
func ClientWithBaseURL(baseURL string) ClientOption {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// ClientWithRetryPolicy sets the retry policy for each API call.
//
// The default is DefaultRetryPolicy.
func ClientWithRetryPolicy(policy backoff.Policy) ClientOption {
	return func(c *client) {
		c.retryPolicy = policy
	}
}

// ClientWithRateLimiter sets the limiter that every HTTP request waits on.
//
// The default allows DefaultRequestsPerMinute requests per minute.
func ClientWithRateLimiter(limiter *rate.Limiter) ClientOption {
	return func(c *client) {
		c.limiter = limiter
	}
}

// NewClient creates a new Flex Query API client with the given options.
func NewClient(options ...ClientOption) Client {
	c := &client{
		httpClient:  http.DefaultClient,
		logger:      slog.New(slog.DiscardHandler),
		baseURL:     DefaultBaseURL,
		retryPolicy: DefaultRetryPolicy,
		limiter:     NewRateLimiter(DefaultRequestsPerMinute),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// NewRateLimiter returns a limiter that allows requestsPerMinute requests per
// minute with no burst.
func NewRateLimiter(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1)
}

// *** PRIVATE ***

type client struct {
	httpClient  *http.Client
	logger      *slog.Logger
	baseURL     string
	retryPolicy backoff.Policy
	limiter     *rate.Limiter
}

// statusResponse is the XML envelope returned by SendRequest, and by
// GetStatement when the statement is not available.
type statusResponse struct {
	XMLName       xml.Name `xml:"FlexStatementResponse"`
	Status        string   `xml:"Status"`
	ReferenceCode string   `xml:"ReferenceCode"`
	URL           string   `xml:"Url"`
	ErrorCode     string   `xml:"ErrorCode"`
	ErrorMessage  string   `xml:"ErrorMessage"`
}

// retryableErrorCodes are IBKR error codes that indicate a transient failure.
var retryableErrorCodes = map[string]bool{
	"1001": true, // Statement could not be generated at this time.
	"1018": true, // Too many requests have been made from this token.
	"1019": true, // Statement generation in progress.
	"1021": true, // Statement could not be retrieved at this time.
}

var statusResponsePrefix = []byte("<FlexStatementResponse")

func (c *client) Download(ctx context.Context, token string, queryID string, fromDate xtime.Date, toDate xtime.Date) ([]byte, error) {
	if token == "" {
		return nil, errors.New("token is required")
	}
	if queryID == "" {
		return nil, errors.New("query ID is required")
	}
	if fromDate.IsZero() != toDate.IsZero() {
		return nil, errors.New("fromDate and toDate must both be set or both be zero")
	}
	if !fromDate.IsZero() && toDate.Before(fromDate) {
		return nil, fmt.Errorf("toDate %s is before fromDate %s", toDate, fromDate)
	}
	referenceCode, err := c.sendRequest(ctx, token, queryID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("sending flex query request: %w", err)
	}
	c.logger.Info("flex query request sent", "query_id", queryID, "reference_code", referenceCode)
	data, err := c.getStatement(ctx, token, referenceCode)
	if err != nil {
		return nil, fmt.Errorf("getting flex query statement: %w", err)
	}
	c.logger.Info("flex query statement received", "query_id", queryID, "bytes", len(data))
	return data, nil
}

// sendRequest initiates a Flex Query and returns the reference code.
func (c *client) sendRequest(ctx context.Context, token string, queryID string, fromDate xtime.Date, toDate xtime.Date) (string, error) {
	// Parameter order matches IBKR docs: t, q, [fd, td], v.
	reqURL := fmt.Sprintf("%s/SendRequest?t=%s&q=%s", c.baseURL, url.QueryEscape(token), url.QueryEscape(queryID))
	if !fromDate.IsZero() {
		reqURL += fmt.Sprintf("&fd=%s&td=%s", fromDate.CompactString(), toDate.CompactString())
	}
	reqURL += "&v=" + apiVersion
	return backoff.Retry(ctx, c.retryPolicy,
		func(ctx context.Context, attempt int) (string, bool, error) {
			if attempt > 0 {
				c.logger.Info("retrying send request", "attempt", attempt+1)
			}
			c.logger.Debug("send request", "query_id", queryID, "has_dates", !fromDate.IsZero())
			body, err := c.get(ctx, reqURL)
			if err != nil {
				return "", false, err
			}
			var response statusResponse
			if err := xml.Unmarshal(body, &response); err != nil {
				return "", false, fmt.Errorf("parsing send response: %w", err)
			}
			if response.Status != "Success" {
				return "", c.checkRetryable(response), &StatusError{Code: response.ErrorCode, Message: response.ErrorMessage}
			}
			if response.ReferenceCode == "" {
				return "", false, errors.New("send response has no reference code")
			}
			return response.ReferenceCode, false, nil
		},
	)
}

// getStatement polls the GetStatement endpoint until the data is ready.
func (c *client) getStatement(ctx context.Context, token string, referenceCode string) ([]byte, error) {
	// Parameter order matches IBKR docs: t, q, v.
	reqURL := fmt.Sprintf("%s/GetStatement?t=%s&q=%s&v=%s", c.baseURL, url.QueryEscape(token), url.QueryEscape(referenceCode), apiVersion)
	return backoff.Retry(ctx, c.retryPolicy,
		func(ctx context.Context, attempt int) ([]byte, bool, error) {
			if attempt > 0 {
				c.logger.Info("waiting for flex query statement", "attempt", attempt+1)
			}
			body, err := c.get(ctx, reqURL)
			if err != nil {
				return nil, false, err
			}
			// A status envelope in place of a statement means the statement is not ready or failed.
			if bytes.HasPrefix(bytes.TrimSpace(body), statusResponsePrefix) {
				var response statusResponse
				if err := xml.Unmarshal(body, &response); err != nil {
					return nil, false, fmt.Errorf("parsing get response: %w", err)
				}
				return nil, c.checkRetryable(response), &StatusError{Code: response.ErrorCode, Message: response.ErrorMessage}
			}
			return body, false, nil
		},
	)
}

// get performs one rate-limited GET and returns the body of a 200 response.
func (c *client) get(ctx context.Context, reqURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	// IBKR requires the "Java" User-Agent header.
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func (c *client) checkRetryable(response statusResponse) bool {
	retryable := retryableErrorCodes[response.ErrorCode]
	if retryable {
		c.logger.Warn("transient IBKR error, will retry", "code", response.ErrorCode, "message", response.ErrorMessage)
	}
	return retryable
}
