package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/interactkolhapur/clubsite/docs" // Import generated docs
	"github.com/interactkolhapur/clubsite/internal/domain"
	"github.com/interactkolhapur/clubsite/internal/handler/dto"
	"github.com/interactkolhapur/clubsite/internal/middleware"
	"github.com/interactkolhapur/clubsite/internal/repository"
	"github.com/interactkolhapur/clubsite/internal/service"
	"github.com/interactkolhapur/clubsite/internal/static"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool            *pgxpool.Pool
	taskService     *service.TaskService
	userRepo        *repository.UserRepository
	boardMemberRepo *repository.BoardMemberRepository
	eventRepo       *repository.EventRepository
	newsRepo        *repository.NewsRepository
	galleryRepo     *repository.GalleryRepository
	contactRepo     *repository.ContactRepository
	settingsRepo    *repository.SettingsRepository
	dashboardRepo   *repository.DashboardRepository
	authMiddleware  *middleware.AuthMiddleware
	maintenance     *middleware.MaintenanceMiddleware
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool) *Handler {
	// Create repositories
	taskRepo := repository.NewTaskRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	boardMemberRepo := repository.NewBoardMemberRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	newsRepo := repository.NewNewsRepository(pool)
	galleryRepo := repository.NewGalleryRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool, taskRepo)

	// Create services
	taskService := service.NewTaskService(pool, taskRepo, commentRepo, userRepo)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(userRepo)
	maintenance := middleware.NewMaintenanceMiddleware(settingsRepo)

	return &Handler{
		pool:            pool,
		taskService:     taskService,
		userRepo:        userRepo,
		boardMemberRepo: boardMemberRepo,
		eventRepo:       eventRepo,
		newsRepo:        newsRepo,
		galleryRepo:     galleryRepo,
		contactRepo:     contactRepo,
		settingsRepo:    settingsRepo,
		dashboardRepo:   dashboardRepo,
		authMiddleware:  authMiddleware,
		maintenance:     maintenance,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Static pages
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /maintenance", h.handleMaintenancePage)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// Public routes; content routes are gated by the maintenance kill switch,
	// the flag endpoint itself is not.
	mux.HandleFunc("GET /api/v1/maintenance", h.handleGetMaintenance)
	mux.Handle("GET /api/v1/settings", h.public(h.handleGetSettings))
	mux.Handle("GET /api/v1/board-members", h.public(h.handleListBoardMembers))
	mux.Handle("GET /api/v1/events", h.public(h.handleListEvents))
	mux.Handle("GET /api/v1/events/upcoming", h.public(h.handleListUpcomingEvents))
	mux.Handle("GET /api/v1/news", h.public(h.handleListNews))
	mux.Handle("GET /api/v1/gallery", h.public(h.handleListGallery))
	mux.Handle("POST /api/v1/contact", h.public(h.handleSubmitContact))

	// Task API
	mux.Handle("GET /api/v1/tasks", h.auth(h.handleListTasks))
	mux.Handle("POST /api/v1/tasks", h.auth(h.handleCreateTask))
	mux.Handle("GET /api/v1/tasks/{id}", h.auth(h.handleGetTask))
	mux.Handle("PATCH /api/v1/tasks/{id}", h.auth(h.handleUpdateTask))
	mux.Handle("PATCH /api/v1/tasks/{id}/status", h.auth(h.handleSetStatus))
	mux.Handle("DELETE /api/v1/tasks/{id}", h.auth(h.handleDeleteTask))
	mux.Handle("POST /api/v1/tasks/{id}/forward", h.auth(h.handleForwardTask))
	mux.Handle("GET /api/v1/tasks/{id}/comments", h.auth(h.handleGetComments))
	mux.Handle("POST /api/v1/tasks/{id}/comments", h.auth(h.handleAddComment))

	// Directory
	mux.Handle("GET /api/v1/users", h.auth(h.handleListUsers))

	// Admin content management
	mux.Handle("POST /api/v1/board-members", h.auth(h.handleCreateBoardMember))
	mux.Handle("PUT /api/v1/board-members/{id}", h.auth(h.handleUpdateBoardMember))
	mux.Handle("DELETE /api/v1/board-members/{id}", h.auth(h.handleDeleteBoardMember))
	mux.Handle("POST /api/v1/events", h.auth(h.handleCreateEvent))
	mux.Handle("PUT /api/v1/events/{id}", h.auth(h.handleUpdateEvent))
	mux.Handle("DELETE /api/v1/events/{id}", h.auth(h.handleDeleteEvent))
	mux.Handle("POST /api/v1/news", h.auth(h.handleCreateNews))
	mux.Handle("PUT /api/v1/news/{id}", h.auth(h.handleUpdateNews))
	mux.Handle("DELETE /api/v1/news/{id}", h.auth(h.handleDeleteNews))
	mux.Handle("POST /api/v1/gallery", h.auth(h.handleCreateGalleryImage))
	mux.Handle("DELETE /api/v1/gallery/{id}", h.auth(h.handleDeleteGalleryImage))
	mux.Handle("GET /api/v1/contact/submissions", h.auth(h.handleListContactMessages))
	mux.Handle("DELETE /api/v1/contact/submissions/{id}", h.auth(h.handleDeleteContactMessage))
	mux.Handle("PUT /api/v1/settings", h.auth(h.handleUpdateSettings))
	mux.Handle("GET /api/v1/dashboard", h.auth(h.handleGetDashboard))
}

func (h *Handler) auth(fn http.HandlerFunc) http.Handler {
	return h.authMiddleware.Authenticate(fn)
}

func (h *Handler) public(fn http.HandlerFunc) http.Handler {
	return h.maintenance.Guard(fn)
}

// handleHealthz returns 200 OK if the database is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.pool.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		respondDomainError(w, domain.ErrStoreUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// handleIndex serves the embedded landing page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(static.IndexHTML))
}

// handleMaintenancePage serves the embedded maintenance notice page.
func (h *Handler) handleMaintenancePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(static.MaintenanceHTML))
}

// Ping checks if the database is reachable (used for testing).
func (h *Handler) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps a domain error and writes the error response.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// extractID extracts and validates an ID path parameter.
// Returns (id, true) if valid, ("", false) if invalid (error already sent to client).
func extractID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "id is required")
		return "", false
	}

	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "id must be a valid UUID")
		return "", false
	}

	return id, true
}
