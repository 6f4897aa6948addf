// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Every Build failure matches ErrConfiguration via errors.Is.
//   • The specific cause is joined alongside it: one of the sentinels below,
//     or a core sentinel (core.ErrNodeNotFound, core.ErrNegativeDistance, ...).
//   • Option constructors panic on meaningless values; Build never panics.

package builder

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks a malformed network definition. It is fatal: the
// caller must abort startup, never repair or drop the offending data.
var ErrConfiguration = errors.New("builder: configuration error")

// ErrNoRegions indicates an empty region list.
var ErrNoRegions = errors.New("builder: no regions defined")

// ErrEmptyRegion indicates a region without nodes.
var ErrEmptyRegion = errors.New("builder: region has no nodes")

// ErrBadRateRange indicates a congestion range outside [MinRate, MaxRate] or with min > max.
var ErrBadRateRange = errors.New("builder: invalid congestion range")

// ErrHubNotInRegion indicates a hub that is not one of its region's own nodes.
var ErrHubNotInRegion = errors.New("builder: hub is not a node of its region")

// ErrForeignEndpoint indicates an intra-region edge touching a node of another region.
var ErrForeignEndpoint = errors.New("builder: edge endpoint belongs to another region")

// ErrNotHub indicates an inter-region link whose endpoint is not a region hub.
var ErrNotHub = errors.New("builder: inter-region endpoint is not a hub")

// ErrSameRegionLink indicates an inter-region link joining a region to itself.
var ErrSameRegionLink = errors.New("builder: inter-region link within one region")

// ErrDisconnected indicates more than one connected component when
// WithRequireConnected is set.
var ErrDisconnected = errors.New("builder: network is disconnected")

// configErrorf wraps cause with ErrConfiguration and a formatted context:
// "builder: configuration error: <context>: <cause>".
func configErrorf(cause error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %w", ErrConfiguration, fmt.Sprintf(format, args...), cause)
}
