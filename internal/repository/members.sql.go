package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukerupert/kestrel/internal/domain"
)

const memberColumns = `id, email, name, role, organization_id, password_hash, created_at`

func scanMember(row rowScanner) (domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.ID,
		&m.Email,
		&m.Name,
		&m.Role,
		&m.OrganizationID,
		&m.PasswordHash,
		&m.CreatedAt,
	)
	return m, err
}

const createMember = `-- name: CreateMember :one
INSERT INTO members (email, name, role, organization_id, password_hash)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + memberColumns

type CreateMemberParams struct {
	Email          string
	Name           string
	Role           domain.Role
	OrganizationID *uuid.UUID
	PasswordHash   string
}

func (q *Queries) CreateMember(ctx context.Context, arg CreateMemberParams) (domain.Member, error) {
	row := q.db.QueryRow(ctx, createMember,
		arg.Email,
		arg.Name,
		string(arg.Role),
		arg.OrganizationID,
		arg.PasswordHash,
	)
	return scanMember(row)
}

const getMemberByID = `-- name: GetMemberByID :one
SELECT ` + memberColumns + ` FROM members WHERE id = $1`

func (q *Queries) GetMemberByID(ctx context.Context, id uuid.UUID) (domain.Member, error) {
	return scanMember(q.db.QueryRow(ctx, getMemberByID, id))
}

const getMemberByEmail = `-- name: GetMemberByEmail :one
SELECT ` + memberColumns + ` FROM members WHERE email = lower($1)`

func (q *Queries) GetMemberByEmail(ctx context.Context, email string) (domain.Member, error) {
	return scanMember(q.db.QueryRow(ctx, getMemberByEmail, email))
}

const listMembers = `-- name: ListMembers :many
SELECT ` + memberColumns + ` FROM members ORDER BY created_at DESC`

func (q *Queries) ListMembers(ctx context.Context) ([]domain.Member, error) {
	rows, err := q.db.Query(ctx, listMembers)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanMember)
}

const getRoleForDomain = `-- name: GetRoleForDomain :one
SELECT role FROM role_domains WHERE domain = $1`

func (q *Queries) GetRoleForDomain(ctx context.Context, emailDomain string) (domain.Role, error) {
	var role string
	err := q.db.QueryRow(ctx, getRoleForDomain, emailDomain).Scan(&role)
	return domain.Role(role), err
}

const upsertRoleDomain = `-- name: UpsertRoleDomain :exec
INSERT INTO role_domains (domain, role) VALUES ($1, $2)
ON CONFLICT (domain) DO UPDATE SET role = EXCLUDED.role`

func (q *Queries) UpsertRoleDomain(ctx context.Context, arg domain.RoleDomain) error {
	_, err := q.db.Exec(ctx, upsertRoleDomain, arg.Domain, string(arg.Role))
	return err
}
