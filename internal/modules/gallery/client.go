package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"schooldirectory/internal/domain"
	"schooldirectory/internal/modules/school"
	"schooldirectory/internal/pkg/validator"
)

// Client talks to the school API the way the browser gallery does: fetch
// everything, filter locally. There is deliberately no Update call — the
// edit affordance in the UI has no backing endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FormError reports which fields of a submission failed the shared schema.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, tag := range e.Fields {
		parts = append(parts, field+": "+tag)
	}
	return "invalid submission: " + strings.Join(parts, ", ")
}

// APIError carries the server's flat {"error": ...} body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// ListSchools fetches every record, newest first.
func (c *Client) ListSchools(ctx context.Context) ([]domain.School, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/schools", nil)
	if err != nil {
		return nil, err
	}

	var schools []domain.School
	if err := c.do(req, &schools); err != nil {
		return nil, err
	}
	return schools, nil
}

// GetSchool fetches one record by id.
func (c *Client) GetSchool(ctx context.Context, id int64) (*domain.School, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/schools/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}

	var s domain.School
	if err := c.do(req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSchool runs the full shared schema (required fields plus contact and
// email format) before sending anything, then posts the multipart form. The
// image is optional; pass a nil reader to submit without one.
func (c *Client) CreateSchool(ctx context.Context, sub school.SchoolSubmission, imageName string, image io.Reader) (*school.CreateResponse, error) {
	if fields := validator.Form(sub); fields != nil {
		return nil, &FormError{Fields: fields}
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	fields := map[string]string{
		"name":    sub.Name,
		"address": sub.Address,
		"city":    sub.City,
		"state":   sub.State,
		"contact": sub.Contact,
		"email":   sub.Email,
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, err
		}
	}

	if image != nil {
		part, err := w.CreateFormFile("image", imageName)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, image); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/schools", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var created school.CreateResponse
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteSchool removes one record (and, server-side, its image file).
func (c *Client) DeleteSchool(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/api/schools/%d", c.baseURL, id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "request failed"}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
			apiErr.Message = body.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
