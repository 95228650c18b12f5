package bospay

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"net/http"

	// Local Packages
	errors "bospay-gateway/errors"
	models "bospay-gateway/models"
)

const (
	opListStaff   = "list-staff"
	opInviteStaff = "invite-staff"
)

// ListStaff fetches the staff members of the caller's organization.
// The upstream route is a POST despite being a read; the bearer header
// alone identifies the caller.
func (c *Client) ListStaff(ctx context.Context, token string) ([]models.StaffMember, error) {
	raw, err := c.do(ctx, opListStaff, http.MethodPost, "/api/staff", nil, token, nil)
	if err != nil {
		return nil, err
	}

	var env staffListEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.E(errors.Remote, "malformed staff list response", err)
	}
	if env.Staff == nil {
		return []models.StaffMember{}, nil
	}
	return env.Staff, nil
}

// InviteStaff creates a staff invitation. Input validation happens in
// the staff service before this call; this method only does the wire work.
func (c *Client) InviteStaff(ctx context.Context, token string, invite models.StaffInvite) (*models.StaffMember, error) {
	raw, err := c.do(ctx, opInviteStaff, http.MethodPost, "/api/staff/inviteStaff", nil, token, invite)
	if err != nil {
		return nil, err
	}

	var member models.StaffMember
	if err := json.Unmarshal(raw, &member); err != nil {
		return nil, errors.E(errors.Remote, "malformed staff invite response", err)
	}
	return &member, nil
}
