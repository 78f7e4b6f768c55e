package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/interactkolhapur/clubsite/internal/domain"
	"github.com/interactkolhapur/clubsite/internal/handler/dto"
)

// decodeBody decodes a JSON body, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return false
	}
	return true
}

// requireFields checks that the named values are non-empty after trimming.
func requireFields(w http.ResponseWriter, fields map[string]string) bool {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", name+" is required")
			return false
		}
	}
	return true
}

// handleListBoardMembers lists board member profiles in display order.
func (h *Handler) handleListBoardMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.boardMemberRepo.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	responses := make([]dto.BoardMemberResponse, len(members))
	for i, member := range members {
		responses[i] = dto.ToBoardMemberResponse(member)
	}
	respondJSON(w, http.StatusOK, responses)
}

func (h *Handler) handleCreateBoardMember(w http.ResponseWriter, r *http.Request) {
	var req dto.BoardMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireFields(w, map[string]string{"name": req.Name, "position": req.Position}) {
		return
	}

	member, err := h.boardMemberRepo.Create(r.Context(), &domain.BoardMember{
		Name:         req.Name,
		Position:     req.Position,
		Bio:          req.Bio,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToBoardMemberResponse(member))
}

func (h *Handler) handleUpdateBoardMember(w http.ResponseWriter, r *http.Request) {
	memberID, ok := extractID(w, r)
	if !ok {
		return
	}

	var req dto.BoardMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireFields(w, map[string]string{"name": req.Name, "position": req.Position}) {
		return
	}

	member, err := h.boardMemberRepo.Update(r.Context(), &domain.BoardMember{
		ID:           memberID,
		Name:         req.Name,
		Position:     req.Position,
		Bio:          req.Bio,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToBoardMemberResponse(member))
}

func (h *Handler) handleDeleteBoardMember(w http.ResponseWriter, r *http.Request) {
	memberID, ok := extractID(w, r)
	if !ok {
		return
	}

	if err := h.boardMemberRepo.Delete(r.Context(), memberID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListEvents lists all events, newest first.
func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventRepo.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	h.respondEvents(w, events)
}

// handleListUpcomingEvents lists events dated today or later.
func (h *Handler) handleListUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventRepo.ListUpcoming(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	h.respondEvents(w, events)
}

func (h *Handler) respondEvents(w http.ResponseWriter, events []*domain.Event) {
	responses := make([]dto.EventResponse, len(events))
	for i, event := range events {
		responses[i] = dto.ToEventResponse(event)
	}
	respondJSON(w, http.StatusOK, responses)
}

func (h *Handler) decodeEvent(w http.ResponseWriter, r *http.Request) (*domain.Event, bool) {
	var req dto.EventRequest
	if !decodeBody(w, r, &req) {
		return nil, false
	}
	if !requireFields(w, map[string]string{"title": req.Title, "date": req.Date}) {
		return nil, false
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		respondDomainError(w, err)
		return nil, false
	}

	return &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        *date,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	}, true
}

func (h *Handler) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	event, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}

	created, err := h.eventRepo.Create(r.Context(), event)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToEventResponse(created))
}

func (h *Handler) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := extractID(w, r)
	if !ok {
		return
	}

	event, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}
	event.ID = eventID

	updated, err := h.eventRepo.Update(r.Context(), event)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToEventResponse(updated))
}

func (h *Handler) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := extractID(w, r)
	if !ok {
		return
	}

	if err := h.eventRepo.Delete(r.Context(), eventID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListNews lists news posts, newest first.
func (h *Handler) handleListNews(w http.ResponseWriter, r *http.Request) {
	posts, err := h.newsRepo.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	responses := make([]dto.NewsPostResponse, len(posts))
	for i, post := range posts {
		responses[i] = dto.ToNewsPostResponse(post)
	}
	respondJSON(w, http.StatusOK, responses)
}

func (h *Handler) decodeNewsPost(w http.ResponseWriter, r *http.Request) (*domain.NewsPost, bool) {
	var req dto.NewsPostRequest
	if !decodeBody(w, r, &req) {
		return nil, false
	}
	if !requireFields(w, map[string]string{"title": req.Title, "content": req.Content}) {
		return nil, false
	}

	publishedAt := time.Now()
	if req.PublishedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.PublishedAt)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "published_at must be RFC 3339")
			return nil, false
		}
		publishedAt = parsed
	}

	return &domain.NewsPost{
		Title:       req.Title,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		PublishedAt: publishedAt,
	}, true
}

func (h *Handler) handleCreateNews(w http.ResponseWriter, r *http.Request) {
	post, ok := h.decodeNewsPost(w, r)
	if !ok {
		return
	}

	created, err := h.newsRepo.Create(r.Context(), post)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToNewsPostResponse(created))
}

func (h *Handler) handleUpdateNews(w http.ResponseWriter, r *http.Request) {
	postID, ok := extractID(w, r)
	if !ok {
		return
	}

	post, ok := h.decodeNewsPost(w, r)
	if !ok {
		return
	}
	post.ID = postID

	updated, err := h.newsRepo.Update(r.Context(), post)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToNewsPostResponse(updated))
}

func (h *Handler) handleDeleteNews(w http.ResponseWriter, r *http.Request) {
	postID, ok := extractID(w, r)
	if !ok {
		return
	}

	if err := h.newsRepo.Delete(r.Context(), postID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListGallery lists gallery images, newest first.
func (h *Handler) handleListGallery(w http.ResponseWriter, r *http.Request) {
	images, err := h.galleryRepo.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	responses := make([]dto.GalleryImageResponse, len(images))
	for i, image := range images {
		responses[i] = dto.ToGalleryImageResponse(image)
	}
	respondJSON(w, http.StatusOK, responses)
}

func (h *Handler) handleCreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req dto.GalleryImageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireFields(w, map[string]string{"title": req.Title, "image_url": req.ImageURL}) {
		return
	}

	image, err := h.galleryRepo.Create(r.Context(), &domain.GalleryImage{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Category: req.Category,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToGalleryImageResponse(image))
}

func (h *Handler) handleDeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	imageID, ok := extractID(w, r)
	if !ok {
		return
	}

	if err := h.galleryRepo.Delete(r.Context(), imageID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
