package labelapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"kgeyst.com/dataprep/pkg/common"
	"kgeyst.com/dataprep/pkg/dataprep/domain"
)

const labelField = "classname"

type Resolver struct {
	client                 *http.Client
	serverErrorsAsFailures bool
}

type Option func(*Resolver)

// WithHTTPClient replaces the default client (useful for tests and custom transports).
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		r.client = client
	}
}

// WithServerErrorsAsFailures makes 5xx responses a failure instead of "label unknown".
func WithServerErrorsAsFailures(enabled bool) Option {
	return func(r *Resolver) {
		r.serverErrorsAsFailures = enabled
	}
}

func NewResolver(timeout time.Duration, options ...Option) *Resolver {
	r := &Resolver{
		client: &http.Client{Timeout: timeout},
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// URL is where the label of `key` is looked up. The key is appended as is.
func URL(apiBaseURL, key string) string {
	return apiBaseURL + "/" + key
}

func (r *Resolver) Resolve(ctx context.Context, apiBaseURL, key string) (domain.LabelResult, error) {
	url := URL(apiBaseURL, key)
	response, err := common.ReadAllFromURL(ctx, r.client, url)
	if errors.Is(err, common.ErrResponseTooLarge) {
		return domain.LabelResult{}, fmt.Errorf("%w: %s: %v", domain.ErrMalformedResponse, url, err)
	}
	if err != nil {
		return domain.LabelResult{}, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	if response.StatusCode != http.StatusOK {
		if r.serverErrorsAsFailures && response.StatusCode >= http.StatusInternalServerError {
			return domain.LabelResult{}, fmt.Errorf("%w: %s returned %d", domain.ErrServerStatus, url, response.StatusCode)
		}
		return domain.NotFound(response.StatusCode), nil
	}
	label, err := parseLabel(response.Body)
	if err != nil {
		return domain.LabelResult{}, fmt.Errorf("%w: %s: %v", domain.ErrMalformedResponse, url, err)
	}
	return domain.Found(label, response.StatusCode), nil
}

func parseLabel(body []byte) (string, error) {
	var fields map[string]json.RawMessage
	err := json.Unmarshal(body, &fields)
	if err != nil {
		return "", err
	}
	rawLabel, ok := fields[labelField]
	if !ok {
		return "", fmt.Errorf("no %q field", labelField)
	}
	var label string
	err = json.Unmarshal(rawLabel, &label)
	if err != nil {
		return "", fmt.Errorf("%q is not a string: %s", labelField, rawLabel)
	}
	if !domain.IsValidLabel(label) {
		return "", fmt.Errorf("%q cannot be used as a directory name", label)
	}
	return label, nil
}
