package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"foodiefind-client/models"
)

// SortField orders a listing by one record field.
type SortField struct {
	Field string
	Desc  bool
}

// NewestFirst is the ordering every dashboard listing uses.
var NewestFirst = []SortField{{Field: "createdAt", Desc: true}}

// ListOptions mirror the backend's collection query surface: equality
// filters, relation includes and sort order.
type ListOptions struct {
	Filter  map[string]string
	Include []string
	Sort    []SortField
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	for key, value := range o.Filter {
		q.Set("filter["+key+"]", value)
	}
	for _, rel := range o.Include {
		q.Add("include", rel)
	}
	for _, s := range o.Sort {
		dir := "asc"
		if s.Desc {
			dir = "desc"
		}
		q.Add("sort", s.Field+":"+dir)
	}
	return q
}

type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

type recordEnvelope[T any] struct {
	Data T `json:"data"`
}

// list is the generic collection read. Typed wrappers below are what the
// rest of the client consumes.
func list[T any](ctx context.Context, c *Client, entity string, opts ListOptions) ([]T, error) {
	var resp listEnvelope[T]
	if err := c.do(ctx, http.MethodGet, "/api/collections/"+entity, opts.query(), nil, &resp); err != nil {
		return nil, fmt.Errorf("list %s: %w", entity, err)
	}
	return resp.Data, nil
}

func (c *Client) ListRestaurants(ctx context.Context, opts ListOptions) ([]models.Restaurant, error) {
	return list[models.Restaurant](ctx, c, "restaurants", opts)
}

func (c *Client) ListOrders(ctx context.Context, opts ListOptions) ([]models.Order, error) {
	return list[models.Order](ctx, c, "orders", opts)
}

// RestaurantFields is the creation payload. The backend fills in the owner
// from the session and the derived image sizes.
type RestaurantFields struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address"`
	Phone       string `json:"phone,omitempty"`
}

// CreateRestaurant submits a new listing and returns the created record.
func (c *Client) CreateRestaurant(ctx context.Context, fields RestaurantFields) (*models.Restaurant, error) {
	var resp recordEnvelope[models.Restaurant]
	if err := c.do(ctx, http.MethodPost, "/api/collections/restaurants", nil, fields, &resp); err != nil {
		return nil, fmt.Errorf("create restaurant: %w", err)
	}
	return &resp.Data, nil
}
