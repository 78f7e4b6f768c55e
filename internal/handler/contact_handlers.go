package handler

import (
	"net/http"
	"strings"

	"github.com/interactkolhapur/clubsite/internal/domain"
	"github.com/interactkolhapur/clubsite/internal/handler/dto"
)

// handleSubmitContact accepts a public contact form submission.
func (h *Handler) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireFields(w, map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
	}) {
		return
	}
	if !strings.Contains(req.Email, "@") {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "email is invalid")
		return
	}

	message, err := h.contactRepo.Create(r.Context(), &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToContactMessageResponse(message))
}

// handleListContactMessages lists submissions, newest first.
func (h *Handler) handleListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactRepo.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	responses := make([]dto.ContactMessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = dto.ToContactMessageResponse(message)
	}
	respondJSON(w, http.StatusOK, responses)
}

// handleDeleteContactMessage removes a submission.
func (h *Handler) handleDeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := extractID(w, r)
	if !ok {
		return
	}

	if err := h.contactRepo.Delete(r.Context(), messageID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
