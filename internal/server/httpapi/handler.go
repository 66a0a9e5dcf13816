// Package httpapi exposes the message and lookup services over HTTP/JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/avdeluna/whispernote/internal/common"
	"github.com/avdeluna/whispernote/internal/logging"
	"github.com/avdeluna/whispernote/internal/server/models"
	"github.com/avdeluna/whispernote/internal/server/services"
)

// MessageAPI is the slice of MessageService the handlers need.
type MessageAPI interface {
	Create(ctx context.Context, req *services.CreateMessageRequest) (string, error)
	Get(ctx context.Context, id string, unlockToken string) (*models.MessageView, error)
	Verify(ctx context.Context, id string, passphrase string) (*services.VerifyResult, error)
	SweepExpired(ctx context.Context, token string) (int64, error)
}

// LookupAPI is the slice of LookupService the handlers need.
type LookupAPI interface {
	ResolveMessageForName(ctx context.Context, name string) (*services.Resolution, error)
	CheckNameExists(ctx context.Context, name string) bool
}

type Handler struct {
	messages MessageAPI
	lookup   LookupAPI
	logger   logging.Logger
}

func NewHandler(m MessageAPI, l LookupAPI, log logging.Logger) *Handler {
	return &Handler{messages: m, lookup: l, logger: log.With("module", "httpapi")}
}

type createMessageRequest struct {
	SenderName    string `json:"senderName"`
	RecipientName string `json:"recipientName"`
	Salutation    string `json:"salutation"`
	Message       string `json:"message"`
	Closing       string `json:"closing"`
	Passphrase    string `json:"passphrase"`
}

type verifyRequest struct {
	Passphrase string `json:"passphrase"`
}

type verifyResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	UnlockToken string `json:"unlockToken,omitempty"`
}

type lookupResponse struct {
	Message string `json:"message"`
	Prompt  string `json:"prompt"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

// CreateMessage handles POST /api/messages.
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.messages.Create(r.Context(), &services.CreateMessageRequest{
		SenderName:    req.SenderName,
		RecipientName: req.RecipientName,
		Salutation:    req.Salutation,
		Message:       req.Message,
		Closing:       req.Closing,
		Passphrase:    req.Passphrase,
	})
	if err != nil {
		if errors.Is(err, common.ErrorContentRejected) {
			writeError(w, http.StatusUnprocessableEntity, "message contains prohibited content")
			return
		}
		h.logger.Error(r.Context(), "create failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetMessage handles GET /api/messages/{id}. A valid unlock token in
// X-Unlock-Token returns the plaintext of a locked message.
func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	token := r.Header.Get(common.UnlockTokenHeaderName)

	view, err := h.messages.Get(r.Context(), id, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "message not found")
			return
		}
		h.logger.Error(r.Context(), "get failed", "id", id, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// VerifyMessage handles POST /api/messages/{id}/verify. A wrong passphrase
// is a successful request with success=false, not an error.
func (h *Handler) VerifyMessage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.messages.Verify(r.Context(), id, req.Passphrase)
	if err != nil {
		h.logger.Error(r.Context(), "verify failed", "id", id, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{
		Success:     res.Success,
		Message:     res.Message,
		UnlockToken: res.UnlockToken,
	})
}

// Lookup handles GET /api/lookup/{name}.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	res, err := h.lookup.ResolveMessageForName(r.Context(), name)
	if err != nil {
		if errors.Is(err, common.ErrorGenerationFailed) {
			writeError(w, http.StatusBadGateway, "message generation failed")
			return
		}
		h.logger.Error(r.Context(), "lookup failed", "name", name, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse{Message: res.Message, Prompt: res.Prompt})
}

// LookupExists handles GET /api/lookup/{name}/exists.
func (h *Handler) LookupExists(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	writeJSON(w, http.StatusOK, map[string]bool{"exists": h.lookup.CheckNameExists(r.Context(), name)})
}

// Cleanup handles GET /api/cleanup. The caller authenticates with a bearer
// token matched against the configured sweep secret.
func (h *Handler) Cleanup(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	deleted, err := h.messages.SweepExpired(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorMisconfigured):
			writeError(w, http.StatusInternalServerError, "sweep secret is not configured")
		case errors.Is(err, common.ErrorUnauthorized):
			writeError(w, http.StatusUnauthorized, "unauthorized")
		default:
			h.logger.Error(r.Context(), "cleanup failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted})
}
