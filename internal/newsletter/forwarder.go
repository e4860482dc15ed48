package newsletter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// FormForwarder posts the signup to a third-party form-collection
// endpoint. The response body is not part of any contract.
type FormForwarder struct {
	endpoint string
	client   *http.Client
}

func NewFormForwarder(endpoint string) *FormForwarder {
	return &FormForwarder{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *FormForwarder) Forward(ctx context.Context, s Subscription) error {
	form := url.Values{}
	form.Set("name", s.Name)
	form.Set("email", s.Email)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("form endpoint returned %d", resp.StatusCode)
	}
	return nil
}
