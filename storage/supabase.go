// Package storage talks to the Supabase Storage HTTP API, which holds
// the site's photo bucket.
package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
)

// Object is one entry in a bucket listing.
type Object struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Client struct {
	http    *resty.Client
	baseURL string
	bucket  string
}

func NewClient(baseURL, serviceKey, bucket string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("apikey", serviceKey).
		SetAuthToken(serviceKey)

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		bucket:  bucket,
	}
}

type listRequest struct {
	Prefix string   `json:"prefix"`
	SortBy listSort `json:"sortBy"`
}

type listSort struct {
	Column string `json:"column"`
	Order  string `json:"order"`
}

type apiError struct {
	Message string `json:"message"`
}

// List returns the objects under prefix, sorted by name.
func (c *Client) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object
	var apiErr apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(listRequest{
			Prefix: prefix,
			SortBy: listSort{Column: "name", Order: "asc"},
		}).
		SetResult(&objects).
		SetError(&apiErr).
		Post("/storage/v1/object/list/" + c.bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: list request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("storage: list failed: %s", errMessage(resp, apiErr))
	}

	sort.Slice(objects, func(i, j int) bool { return objects[i].Name < objects[j].Name })
	return objects, nil
}

type uploadResponse struct {
	ID  string `json:"Id"`
	Key string `json:"Key"`
}

// Upload stores data under path and returns the object id the service
// assigned, which may be empty on older storage versions.
func (c *Client) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	var uploaded uploadResponse
	var apiErr apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		SetResult(&uploaded).
		SetError(&apiErr).
		Post("/storage/v1/object/" + c.bucket + "/" + path)
	if err != nil {
		return "", fmt.Errorf("storage: upload request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("storage: upload failed: %s", errMessage(resp, apiErr))
	}

	return uploaded.ID, nil
}

type removeRequest struct {
	Prefixes []string `json:"prefixes"`
}

// Remove deletes the object at path.
func (c *Client) Remove(ctx context.Context, path string) error {
	var apiErr apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(removeRequest{Prefixes: []string{path}}).
		SetError(&apiErr).
		Delete("/storage/v1/object/" + c.bucket)
	if err != nil {
		return fmt.Errorf("storage: remove request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("storage: remove failed: %s", errMessage(resp, apiErr))
	}
	return nil
}

// PublicURL derives the public download URL for an object. The bucket
// must be public for the URL to work.
func (c *Client) PublicURL(path string) string {
	return c.baseURL + "/storage/v1/object/public/" + c.bucket + "/" + path
}

func errMessage(resp *resty.Response, apiErr apiError) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return resp.Status()
}
