package common

import (
	"context"
	"errors"
	"io"
	"net/http"
)

// MaxResponseSize caps how much of a response body ReadAllFromURL keeps in memory.
const MaxResponseSize = 1 << 20

var ErrResponseTooLarge = errors.New("response body too large")

type HTTPResponse struct {
	StatusCode int
	Body       []byte
}

// ReadAllFromURL issues a GET request and reads the whole body of a 2xx response, up to MaxResponseSize bytes.
// A non-2xx status is not an error: the caller decides what the status means, and the body is dropped
// unread whatever its size.
func ReadAllFromURL(ctx context.Context, client *http.Client, url string) (*HTTPResponse, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Accept", "application/json")
	res, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &HTTPResponse{StatusCode: res.StatusCode}, nil
	}
	content, err := io.ReadAll(io.LimitReader(res.Body, MaxResponseSize+1))
	if err != nil {
		return nil, err
	}
	if len(content) > MaxResponseSize {
		return nil, ErrResponseTooLarge
	}
	return &HTTPResponse{
		StatusCode: res.StatusCode,
		Body:       content,
	}, nil
}
