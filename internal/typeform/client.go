// Package typeform is a minimal client for the Typeform responses API,
// covering the single authenticated read this service needs.
package typeform

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNoAPIKey is returned before any request is made when the client
	// was constructed without a credential.
	ErrNoAPIKey = errors.New("typeform API key is not configured")

	// ErrRequestFailed marks transport failures and non-success statuses
	// from the provider.
	ErrRequestFailed = errors.New("typeform request failed")
)

// Field identifies the form question an answer belongs to.
type Field struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Ref  string `json:"ref"`
}

// Choice is a selected option of a choice question.
type Choice struct {
	Label string `json:"label"`
}

// Choices is the multi-select variant of Choice.
type Choices struct {
	Labels []string `json:"labels"`
}

// Answer is one typed answer within a response. Exactly one of the value
// fields is populated, matching the Type.
type Answer struct {
	Field       Field    `json:"field"`
	Type        string   `json:"type"`
	Text        string   `json:"text,omitempty"`
	Number      *float64 `json:"number,omitempty"`
	Email       string   `json:"email,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	Choice      *Choice  `json:"choice,omitempty"`
	Choices     *Choices `json:"choices,omitempty"`
}

// Variable is one computed form variable, referenced by key.
type Variable struct {
	Key    string   `json:"key"`
	Type   string   `json:"type,omitempty"`
	Number *float64 `json:"number,omitempty"`
}

// Response is one submitted form response.
type Response struct {
	LandingID   string     `json:"landing_id"`
	Token       string     `json:"token"`
	ResponseID  string     `json:"response_id"`
	LandedAt    string     `json:"landed_at"`
	SubmittedAt string     `json:"submitted_at"`
	Answers     []Answer   `json:"answers"`
	Variables   []Variable `json:"variables"`
}

// ResponsePage is one page of the response listing.
type ResponsePage struct {
	Items      []Response `json:"items"`
	TotalItems int        `json:"total_items"`
	PageCount  int        `json:"page_count"`
}

// Client issues authenticated reads against the Typeform API. The base URL
// and credential are fixed at construction, never read from ambient
// environment.
type Client struct {
	http   *resty.Client
	apiKey string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http:   resty.New().SetBaseURL(baseURL),
		apiKey: apiKey,
	}
}

// FetchResponses fetches the first page of responses for the given form.
// Pagination beyond one page is not implemented. Any transport failure or
// non-success status is returned as an error.
func (c *Client) FetchResponses(ctx context.Context, formID string) (*ResponsePage, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	var page ResponsePage

	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetPathParam("formID", formID).
		SetResult(&page).
		Get("/forms/{formID}/responses")

	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, err.Error())
	}

	if res.IsError() {
		return nil, fmt.Errorf("%w: %d - %s", ErrRequestFailed, res.StatusCode(), res.Status())
	}

	return &page, nil
}
