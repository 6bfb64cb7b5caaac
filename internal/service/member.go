package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dukerupert/kestrel/internal/auth"
	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/repository"
	"github.com/dukerupert/kestrel/internal/telemetry"
)

const membersEmailKey = "members_email_key"

type memberService struct {
	repo       repository.Querier
	bcryptCost int
	logger     *slog.Logger
}

// NewMemberService creates a MemberService. A zero bcryptCost uses
// auth.DefaultCost.
func NewMemberService(repo repository.Querier, bcryptCost int, logger *slog.Logger) domain.MemberService {
	if bcryptCost == 0 {
		bcryptCost = auth.DefaultCost
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &memberService{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

// Register creates a member with a role looked up from the role_domains
// table and links the organization using the same email domain.
func (s *memberService) Register(ctx context.Context, params domain.RegisterParams) (*domain.Member, error) {
	const op = "member.register"

	params.Email = strings.ToLower(strings.TrimSpace(params.Email))
	params.Name = strings.TrimSpace(params.Name)
	if err := domain.Validate(op, params); err != nil {
		return nil, err
	}

	emailDomain := domain.EmailDomain(params.Email)

	role, err := s.repo.GetRoleForDomain(ctx, emailDomain)
	switch {
	case repository.IsNotFound(err):
		role = domain.DefaultRole
	case err != nil:
		return nil, domain.Internal(err, op, "failed to look up role")
	}
	// admin is only ever granted by bootstrap
	if role == domain.RoleAdmin || !role.Valid() {
		role = domain.DefaultRole
	}

	var orgID *uuid.UUID
	org, err := s.repo.GetOrganizationByDomain(ctx, emailDomain)
	switch {
	case err == nil:
		orgID = &org.ID
	case !repository.IsNotFound(err):
		return nil, domain.Internal(err, op, "failed to look up organization")
	}

	hash, err := auth.HashPasswordWithCost(params.Password, s.bcryptCost)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, domain.NewValidationError(op, "password", "must be at most 72 bytes")
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to hash password")
	}

	member, err := s.repo.CreateMember(ctx, repository.CreateMemberParams{
		Email:          params.Email,
		Name:           params.Name,
		Role:           role,
		OrganizationID: orgID,
		PasswordHash:   hash,
	})
	if repository.IsUniqueViolation(err, membersEmailKey) {
		return nil, domain.ErrEmailTaken
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create member")
	}

	telemetry.Business.RecordSignup(string(member.Role))
	s.logger.Info("member registered", "member_id", member.ID, "role", member.Role, "organization_linked", orgID != nil)

	return &member, nil
}

// Authenticate verifies email and password. Unknown emails and wrong
// passwords return the same error.
func (s *memberService) Authenticate(ctx context.Context, email, password string) (*domain.Member, error) {
	const op = "member.authenticate"

	member, err := s.repo.GetMemberByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if repository.IsNotFound(err) {
			telemetry.Business.RecordLogin(false)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.Internal(err, op, "failed to look up member")
	}

	if err := auth.VerifyPassword(password, member.PasswordHash); err != nil {
		telemetry.Business.RecordLogin(false)
		return nil, domain.ErrInvalidCredentials
	}

	telemetry.Business.RecordLogin(true)
	return &member, nil
}

// GetMember returns a member by ID.
func (s *memberService) GetMember(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	member, err := s.repo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, domain.ErrMemberNotFound, "member.get", "failed to load member")
	}
	return &member, nil
}
