package fmc

import "context"

// CreateStaticRoute appends one IPv4 static route to the device. The
// endpoint accepts a single route per call; there is no batch mode.
func (c *Client) CreateStaticRoute(ctx context.Context, deviceID string, route StaticRoute) error {
	path := configBase + "/domain/" + c.domain + "/devices/devicerecords/" + deviceID + "/routing/ipv4staticroutes"
	return c.postJSON(ctx, path, route)
}
