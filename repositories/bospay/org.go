package bospay

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"net/http"

	// Local Packages
	errors "bospay-gateway/errors"
)

const opResolveOrg = "resolve-organization"

// ResolveOrganization maps the authenticated principal to its
// organization id. A merchant without an organization is a valid state
// and resolves to an empty string, not an error.
func (c *Client) ResolveOrganization(ctx context.Context, token string) (string, error) {
	raw, err := c.do(ctx, opResolveOrg, http.MethodGet, "/api/get-org", nil, token, nil)
	if errors.Is(errors.NotFound, err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var env orgEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", errors.E(errors.Remote, "malformed organization response", err)
	}
	if env.OrgID == "" {
		c.logger.Warn("organization response did not contain orgId")
	}
	return string(env.OrgID), nil
}
