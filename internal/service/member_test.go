package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/dukerupert/kestrel/internal/auth"
	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/repository"
)

func newMemberFixture(t *testing.T) (*repository.MockQuerier, domain.MemberService) {
	t.Helper()
	repo := repository.NewMockQuerier(gomock.NewController(t))
	return repo, NewMemberService(repo, bcrypt.MinCost, nil)
}

// echoMember returns CreateMember input as the stored member.
func echoMember(ctx context.Context, arg repository.CreateMemberParams) (domain.Member, error) {
	return domain.Member{
		ID:             uuid.New(),
		Email:          arg.Email,
		Name:           arg.Name,
		Role:           arg.Role,
		OrganizationID: arg.OrganizationID,
		PasswordHash:   arg.PasswordHash,
	}, nil
}

func TestMemberService_Register(t *testing.T) {
	orgID := uuid.New()

	tests := []struct {
		name     string
		email    string
		role     domain.Role
		roleErr  error
		org      *domain.Organization
		wantRole domain.Role
		wantOrg  bool
	}{
		{
			name:     "role domain and organization",
			email:    "Asha@TCS.com",
			role:     domain.RoleSEPP,
			org:      &domain.Organization{ID: orgID, Domain: "tcs.com"},
			wantRole: domain.RoleSEPP,
			wantOrg:  true,
		},
		{
			name:     "unknown domain gets default role",
			email:    "ravi@example.org",
			roleErr:  pgx.ErrNoRows,
			wantRole: domain.DefaultRole,
		},
		{
			name:     "admin is never derived from a domain",
			email:    "eve@kestrel.shop",
			role:     domain.RoleAdmin,
			wantRole: domain.DefaultRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newMemberFixture(t)
			emailDomain := domain.EmailDomain(tt.email)

			repo.EXPECT().GetRoleForDomain(gomock.Any(), emailDomain).Return(tt.role, tt.roleErr)
			if tt.org != nil {
				repo.EXPECT().GetOrganizationByDomain(gomock.Any(), emailDomain).Return(*tt.org, nil)
			} else {
				repo.EXPECT().GetOrganizationByDomain(gomock.Any(), emailDomain).Return(domain.Organization{}, pgx.ErrNoRows)
			}
			repo.EXPECT().CreateMember(gomock.Any(), gomock.Any()).DoAndReturn(echoMember)

			member, err := svc.Register(context.Background(), domain.RegisterParams{
				Email:    tt.email,
				Password: "correct horse battery",
				Name:     " Asha ",
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantRole, member.Role)
			assert.Equal(t, "Asha", member.Name)
			assert.Equal(t, strings.ToLower(tt.email), member.Email)
			if tt.wantOrg {
				require.NotNil(t, member.OrganizationID)
				assert.Equal(t, orgID, *member.OrganizationID)
			} else {
				assert.Nil(t, member.OrganizationID)
			}
			assert.NoError(t, auth.VerifyPassword("correct horse battery", member.PasswordHash))
		})
	}
}

func TestMemberService_Register_EmailTaken(t *testing.T) {
	repo, svc := newMemberFixture(t)
	repo.EXPECT().GetRoleForDomain(gomock.Any(), "tcs.com").Return(domain.RoleEPP, nil)
	repo.EXPECT().GetOrganizationByDomain(gomock.Any(), "tcs.com").Return(domain.Organization{}, pgx.ErrNoRows)
	repo.EXPECT().CreateMember(gomock.Any(), gomock.Any()).Return(domain.Member{}, uniqueViolation(membersEmailKey))

	_, err := svc.Register(context.Background(), domain.RegisterParams{
		Email:    "asha@tcs.com",
		Password: "correct horse battery",
		Name:     "Asha",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestMemberService_Register_Validation(t *testing.T) {
	_, svc := newMemberFixture(t)

	_, err := svc.Register(context.Background(), domain.RegisterParams{
		Email:    "not-an-email",
		Password: "short",
	})
	fields := domain.GetValidationFields(err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "name")
}

func TestMemberService_Authenticate(t *testing.T) {
	repo, svc := newMemberFixture(t)

	hash, err := auth.HashPasswordWithCost("correct horse battery", bcrypt.MinCost)
	require.NoError(t, err)
	stored := domain.Member{ID: uuid.New(), Email: "asha@tcs.com", Role: domain.RoleEPP, PasswordHash: hash}

	repo.EXPECT().GetMemberByEmail(gomock.Any(), "asha@tcs.com").Return(stored, nil).Times(2)
	repo.EXPECT().GetMemberByEmail(gomock.Any(), "nobody@tcs.com").Return(domain.Member{}, pgx.ErrNoRows)

	member, err := svc.Authenticate(context.Background(), " ASHA@tcs.com ", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, member.ID)

	_, err = svc.Authenticate(context.Background(), "asha@tcs.com", "wrong password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@tcs.com", "correct horse battery")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMemberService_GetMember_NotFound(t *testing.T) {
	repo, svc := newMemberFixture(t)
	repo.EXPECT().GetMemberByID(gomock.Any(), gomock.Any()).Return(domain.Member{}, pgx.ErrNoRows)

	_, err := svc.GetMember(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}
