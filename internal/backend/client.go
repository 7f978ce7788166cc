package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"order-viewer/internal/config"
	"order-viewer/internal/entities"

	"github.com/go-playground/validator/v10"
)

// Client fetches single orders from the order service read API.
type Client struct {
	logger   *slog.Logger
	client   *http.Client
	baseURL  string
	validate *validator.Validate
}

func NewClient(logger *slog.Logger, cfg config.Backend) *Client {
	return &Client{
		logger:   logger.With(slog.String("component", "backend")),
		client:   &http.Client{Timeout: cfg.Timeout},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		validate: validator.New(),
	}
}

// FetchOrder performs GET /order/{orderUID}. The identifier is passed
// through verbatim aside from URL escaping. Non-2xx responses yield an
// entities.StatusError without reading the body; decode and validation
// failures are reported as entities.ErrMalformedOrder.
func (c *Client) FetchOrder(ctx context.Context, orderUID string) (entities.Order, error) {
	endpoint := c.baseURL + "/order/" + url.PathEscape(orderUID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to build request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to fetch order: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, res.Body)
		return entities.Order{}, &entities.StatusError{Code: res.StatusCode}
	}

	var doc Order
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return entities.Order{}, fmt.Errorf("%w: %v", entities.ErrMalformedOrder, err)
	}

	if err := c.validate.Struct(doc); err != nil {
		return entities.Order{}, fmt.Errorf("%w: %v", entities.ErrMalformedOrder, err)
	}

	c.logger.DebugContext(ctx, "order fetched", slog.String("order_uid", doc.OrderUID))
	return OrderToEntity(doc), nil
}
