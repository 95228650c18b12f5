package staff

import (
	// Go Internal Packages
	"context"

	// Local Packages
	errors "bospay-gateway/errors"
	models "bospay-gateway/models"

	// External Packages
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Backend is the slice of the upstream client this service consumes.
type Backend interface {
	ListStaff(ctx context.Context, token string) ([]models.StaffMember, error)
	InviteStaff(ctx context.Context, token string, invite models.StaffInvite) (*models.StaffMember, error)
}

type Service struct {
	logger   *zap.Logger
	backend  Backend
	validate *validator.Validate
}

func NewService(logger *zap.Logger, backend Backend) *Service {
	return &Service{logger: logger, backend: backend, validate: validator.New()}
}

// List fetches the staff members of the caller's organization.
func (s *Service) List(ctx context.Context, token string) ([]models.StaffMember, error) {
	if token == "" {
		return nil, errors.EmptyParamErr("token")
	}
	return s.backend.ListStaff(ctx, token)
}

// Invite validates the invitation locally and rejects it before any
// network call when a required field is missing or the email is
// malformed.
func (s *Service) Invite(ctx context.Context, token string, invite models.StaffInvite) (*models.StaffMember, error) {
	if token == "" {
		return nil, errors.EmptyParamErr("token")
	}
	if err := s.validate.Struct(invite); err != nil {
		return nil, errors.ValidationFailedErr(fieldErrors(err))
	}

	member, err := s.backend.InviteStaff(ctx, token, invite)
	if err != nil {
		return nil, err
	}
	s.logger.Info("staff invitation sent",
		zap.String("email", invite.Email), zap.String("role", invite.Role))
	return member, nil
}

func fieldErrors(err error) error {
	ferrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	ve := errors.ValidationErrs()
	for _, fe := range ferrs {
		ve.Add(fe.Field(), "failed "+fe.Tag()+" check")
	}
	return ve.Err()
}
