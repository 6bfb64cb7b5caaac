package api

import (
	"net/http"
	"time"

	"github.com/dukerupert/kestrel/internal/domain"
	"github.com/dukerupert/kestrel/internal/handler"
)

// TokenIssuer signs bearer tokens for authenticated members.
type TokenIssuer interface {
	Issue(identity *domain.Identity) (string, time.Time, error)
}

// MemberHandler handles registration, sessions and the caller's profile.
type MemberHandler struct {
	members domain.MemberService
	tokens  TokenIssuer
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(members domain.MemberService, tokens TokenIssuer) *MemberHandler {
	return &MemberHandler{members: members, tokens: tokens}
}

type sessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token     string         `json:"token"`
	TokenType string         `json:"token_type"`
	ExpiresAt time.Time      `json:"expires_at"`
	Member    *domain.Member `json:"member"`
}

// Register handles POST /members
func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var params domain.RegisterParams
	if err := handler.DecodeJSON(r, &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	member, err := h.members.Register(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	h.writeSession(w, r, http.StatusCreated, member)
}

// CreateSession handles POST /sessions
func (h *MemberHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	member, err := h.members.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	h.writeSession(w, r, http.StatusCreated, member)
}

// Me handles GET /members/me
func (h *MemberHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := domain.IdentityFromContext(r.Context())
	if identity == nil {
		handler.UnauthorizedResponse(w, r)
		return
	}

	member, err := h.members.GetMember(r.Context(), identity.MemberID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) writeSession(w http.ResponseWriter, r *http.Request, status int, member *domain.Member) {
	token, expires, err := h.tokens.Issue(member.Identity())
	if err != nil {
		handler.InternalErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, status, sessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expires,
		Member:    member,
	})
}
