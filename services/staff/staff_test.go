package staff_test

import (
	// Go Internal Packages
	"context"
	"testing"

	// Local Packages
	errors "bospay-gateway/errors"
	models "bospay-gateway/models"
	staff "bospay-gateway/services/staff"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBackend struct {
	staff     []models.StaffMember
	invited   *models.StaffMember
	err       error
	inviteLog []models.StaffInvite
}

func (s *stubBackend) ListStaff(context.Context, string) ([]models.StaffMember, error) {
	return s.staff, s.err
}

func (s *stubBackend) InviteStaff(_ context.Context, _ string, invite models.StaffInvite) (*models.StaffMember, error) {
	s.inviteLog = append(s.inviteLog, invite)
	return s.invited, s.err
}

func validInvite() models.StaffInvite {
	return models.StaffInvite{
		Email:     "new.hire@example.com",
		Role:      "cashier",
		FirstName: "Nora",
		LastName:  "Hale",
	}
}

func TestList(t *testing.T) {
	backend := &stubBackend{staff: []models.StaffMember{{StaffID: "s1", Email: "a@b.co"}}}
	svc := staff.NewService(zap.NewNop(), backend)

	members, err := svc.List(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "s1", members[0].StaffID)
}

func TestList_RequiresToken(t *testing.T) {
	svc := staff.NewService(zap.NewNop(), &stubBackend{})
	_, err := svc.List(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Invalid, err))
}

func TestInvite(t *testing.T) {
	backend := &stubBackend{invited: &models.StaffMember{StaffID: "s2", Email: "new.hire@example.com"}}
	svc := staff.NewService(zap.NewNop(), backend)

	member, err := svc.Invite(context.Background(), "tok", validInvite())
	require.NoError(t, err)
	assert.Equal(t, "s2", member.StaffID)
	require.Len(t, backend.inviteLog, 1)
}

func TestInvite_RejectsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.StaffInvite)
		field  string
	}{
		{name: "missing email", mutate: func(i *models.StaffInvite) { i.Email = "" }, field: "Email"},
		{name: "malformed email", mutate: func(i *models.StaffInvite) { i.Email = "not-an-email" }, field: "Email"},
		{name: "missing role", mutate: func(i *models.StaffInvite) { i.Role = "" }, field: "Role"},
		{name: "missing first name", mutate: func(i *models.StaffInvite) { i.FirstName = "" }, field: "FirstName"},
		{name: "missing last name", mutate: func(i *models.StaffInvite) { i.LastName = "" }, field: "LastName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &stubBackend{}
			svc := staff.NewService(zap.NewNop(), backend)

			invite := validInvite()
			tt.mutate(&invite)

			_, err := svc.Invite(context.Background(), "tok", invite)
			require.Error(t, err)
			assert.True(t, errors.Is(errors.Invalid, err))
			assert.Contains(t, err.Error(), tt.field)
			assert.Empty(t, backend.inviteLog)
		})
	}
}

func TestInvite_PropagatesBackendFailure(t *testing.T) {
	backend := &stubBackend{err: errors.AuthFailedErr()}
	svc := staff.NewService(zap.NewNop(), backend)

	_, err := svc.Invite(context.Background(), "tok", validInvite())
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Unauthorized, err))
}
