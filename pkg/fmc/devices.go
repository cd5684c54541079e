package fmc

import (
	"context"
	"fmt"

	"github.com/fmc-tools/fmcroute/pkg/util"
)

type deviceList struct {
	Items []Device `json:"items"`
}

// ListDevices returns all FTD device records registered with the FMC.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	var list deviceList
	path := configBase + "/domain/" + c.domain + "/devices/devicerecords"
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// FindDevice returns the device record whose name matches exactly.
func (c *Client) FindDevice(ctx context.Context, name string) (Device, error) {
	devices, err := c.ListDevices(ctx)
	if err != nil {
		return Device{}, err
	}
	for _, d := range devices {
		if d.Name == name {
			return d, nil
		}
	}
	return Device{}, fmt.Errorf("device %q: %w", name, util.ErrDeviceNotFound)
}
