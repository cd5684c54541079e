package fmc

import (
	"context"
	"fmt"
)

type objectList struct {
	Items []Object `json:"items"`
}

// ListNetworkObjects fetches up to limit network objects in one call.
// Listings are requested expanded so the value field is populated.
func (c *Client) ListNetworkObjects(ctx context.Context, limit int) ([]Object, error) {
	return c.listObjects(ctx, "networks", limit)
}

// ListHostObjects fetches up to limit host objects in one call.
func (c *Client) ListHostObjects(ctx context.Context, limit int) ([]Object, error) {
	return c.listObjects(ctx, "hosts", limit)
}

func (c *Client) listObjects(ctx context.Context, kind string, limit int) ([]Object, error) {
	var list objectList
	path := fmt.Sprintf("%s/domain/%s/object/%s?limit=%d&expanded=true", configBase, c.domain, kind, limit)
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}
