package http

import (
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/uuice/lumos-comments/internal/auth"
	"github.com/uuice/lumos-comments/internal/comment/model"
	"github.com/uuice/lumos-comments/internal/comment/service"
)

type Handler struct {
	svc        service.CommentService
	sessions   auth.Sessions
	adminToken string
}

func New(svc service.CommentService, sessions auth.Sessions, adminToken string) *Handler {
	return &Handler{svc: svc, sessions: sessions, adminToken: adminToken}
}

type createCommentRequest struct {
	PageID   *string `json:"page_id,omitempty"`
	PageURL  string  `json:"page_url"`
	Author   string  `json:"author"`
	Content  string  `json:"content"`
	ParentID *int64  `json:"parent_id,omitempty"`
}

func (h *Handler) CreateComment(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, stdhttp.StatusBadRequest, map[string]any{"error": "bad json"})
		return
	}

	c, err := h.svc.Create(r.Context(), model.CommentInput{
		PageID:   req.PageID,
		PageURL:  req.PageURL,
		Author:   req.Author,
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, stdhttp.StatusCreated, c)
}

func (h *Handler) GetComments(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	q := r.URL.Query()

	var pageID, pageURL *string
	if v := q.Get("pageId"); v != "" {
		pageID = &v
	}
	if v := q.Get("pageUrl"); v != "" {
		pageURL = &v
	}

	nodes, err := h.svc.ListForPage(r.Context(), pageID, pageURL)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, stdhttp.StatusOK, nodes)
}

func (h *Handler) GetAllComments(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	isAdmin, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	nodes, err := h.svc.ListAllForAdmin(r.Context(), isAdmin)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, stdhttp.StatusOK, nodes)
}

type setApprovalRequest struct {
	Approved bool `json:"approved"`
}

func (h *Handler) SetApproval(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	isAdmin, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	id, err := parseInt64(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeJSON(w, stdhttp.StatusBadRequest, map[string]any{"error": "invalid id"})
		return
	}

	var req setApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, stdhttp.StatusBadRequest, map[string]any{"error": "bad json"})
		return
	}

	c, err := h.svc.SetApproval(r.Context(), id, req.Approved, isAdmin)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, stdhttp.StatusOK, c)
}

func (h *Handler) DeleteComment(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	isAdmin, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	id, err := parseInt64(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeJSON(w, stdhttp.StatusBadRequest, map[string]any{"error": "invalid id"})
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id, isAdmin)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		writeJSON(w, stdhttp.StatusNotFound, map[string]any{"error": "not found"})
		return
	}

	writeJSON(w, stdhttp.StatusOK, map[string]any{"deleted": true})
}

type adminLoginRequest struct {
	Token string `json:"token"`
}

// AdminLogin exchanges the configured admin credential for a session token.
func (h *Handler) AdminLogin(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, stdhttp.StatusBadRequest, map[string]any{"error": "bad json"})
		return
	}

	if h.adminToken == "" || req.Token != h.adminToken {
		writeJSON(w, stdhttp.StatusUnauthorized, map[string]any{"error": "unauthorized"})
		return
	}

	token, err := h.sessions.Grant(r.Context())
	if err != nil {
		zap.L().Error("grant admin session", zap.Error(err))
		writeJSON(w, stdhttp.StatusInternalServerError, map[string]any{"error": "internal error"})
		return
	}

	writeJSON(w, stdhttp.StatusOK, map[string]any{"token": token})
}

// requireAdmin resolves the bearer token to an is-admin capability. The
// permission check runs before any record lookup, so unauthorized callers
// never learn whether an id exists.
func (h *Handler) requireAdmin(w stdhttp.ResponseWriter, r *stdhttp.Request) (bool, bool) {
	token := bearerToken(r)
	if token == "" {
		writeJSON(w, stdhttp.StatusUnauthorized, map[string]any{"error": "unauthorized"})
		return false, false
	}

	isAdmin, err := h.sessions.IsAdmin(r.Context(), token)
	if err != nil {
		zap.L().Error("verify admin session", zap.Error(err))
		writeJSON(w, stdhttp.StatusInternalServerError, map[string]any{"error": "internal error"})
		return false, false
	}
	if !isAdmin {
		writeJSON(w, stdhttp.StatusForbidden, map[string]any{"error": "forbidden"})
		return false, false
	}

	return true, true
}

func bearerToken(r *stdhttp.Request) string {
	v := r.Header.Get("Authorization")
	if v == "" {
		return ""
	}
	parts := strings.SplitN(v, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeServiceError(w stdhttp.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeJSON(w, stdhttp.StatusBadRequest, map[string]any{"error": "invalid input"})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, stdhttp.StatusNotFound, map[string]any{"error": "not found"})
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, stdhttp.StatusForbidden, map[string]any{"error": "forbidden"})
	default:
		zap.L().Error("handler returned server error", zap.Error(err))
		writeJSON(w, stdhttp.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
}

func writeJSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return n, nil
}
