// SPDX-License-Identifier: MIT
// Package: builder
//
// validators.go - precondition checks used by Build. Each returns an error
// wrapping ErrConfiguration and the specific sentinel.

package builder

import (
	"fmt"

	"github.com/Neha3-ai/final-ip-project/core"
)

// validateRateRange enforces core.MinRate ≤ min ≤ max ≤ core.MaxRate.
// Complexity: O(1)
func validateRateRange(region string, r [2]int) error {
	if r[0] < core.MinRate || r[1] > core.MaxRate || r[0] > r[1] {
		return configErrorf(ErrBadRateRange, "region %q range [%d,%d] not within [%d,%d]",
			region, r[0], r[1], core.MinRate, core.MaxRate)
	}

	return nil
}

// validateHub checks that the hub of r is one of r's own nodes.
// Complexity: O(1)
func validateHub(g *core.Graph, r *RegionDef) error {
	n, err := g.Node(r.Hub)
	if err != nil || n.Region != r.Name {
		return configErrorf(ErrHubNotInRegion, "region %q hub %q", r.Name, r.Hub)
	}

	return nil
}

// validateEndpointsInRegion checks that both endpoints of an intra-region
// edge exist and belong to region. Unknown IDs surface as core.ErrNodeNotFound.
// Complexity: O(1)
func validateEndpointsInRegion(g *core.Graph, region string, i int, e EdgeDef) error {
	for _, id := range []string{e.From, e.To} {
		n, err := g.Node(id)
		if err != nil {
			return configErrorf(err, "region %q edge #%d %s–%s", region, i, e.From, e.To)
		}
		if n.Region != region {
			return configErrorf(ErrForeignEndpoint, "region %q edge #%d endpoint %q is in %q",
				region, i, id, n.Region)
		}
	}

	return nil
}

// validateLink checks that both link endpoints are hubs of distinct regions.
// Complexity: O(1)
func validateLink(g *core.Graph, i int, l LinkDef) error {
	ctx := fmt.Sprintf("inter-region link #%d %s–%s", i, l.FromHub, l.ToHub)
	var regions [2]string
	for k, id := range []string{l.FromHub, l.ToHub} {
		r, err := g.RegionOf(id)
		if err != nil {
			return configErrorf(err, "%s", ctx)
		}
		if r.Hub != id {
			return configErrorf(ErrNotHub, "%s: %q is not the hub of %q", ctx, id, r.Name)
		}
		regions[k] = r.Name
	}
	if regions[0] == regions[1] {
		return configErrorf(ErrSameRegionLink, "%s", ctx)
	}

	return nil
}
