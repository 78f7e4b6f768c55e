package middleware

import (
	"log/slog"
	"net/http"

	"github.com/interactkolhapur/clubsite/internal/repository"
)

// MaintenanceMiddleware gates public content routes behind the site kill
// switch. Admin routes and the flag endpoint itself are never gated.
type MaintenanceMiddleware struct {
	settingsRepo *repository.SettingsRepository
}

// NewMaintenanceMiddleware creates a new MaintenanceMiddleware.
func NewMaintenanceMiddleware(settingsRepo *repository.SettingsRepository) *MaintenanceMiddleware {
	return &MaintenanceMiddleware{
		settingsRepo: settingsRepo,
	}
}

// Guard returns 503 with a MAINTENANCE error code while the flag is set.
// A flag read failure fails open: taking the site down because the flag is
// unreadable would turn every store hiccup into an outage.
func (m *MaintenanceMiddleware) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		enabled, err := m.settingsRepo.MaintenanceMode(r.Context())
		if err != nil {
			slog.Error("failed to read maintenance flag", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		if enabled {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":{"code":"MAINTENANCE","message":"site is under maintenance"}}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}
