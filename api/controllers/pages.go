package controllers

import (
	"net/http"

	"github.com/carebridge/eldercare-backend/api/middleware"
	"github.com/carebridge/eldercare-backend/api/views"
	"github.com/carebridge/eldercare-backend/internal/users"
	"github.com/carebridge/eldercare-backend/pkg/enums"
	"github.com/carebridge/eldercare-backend/pkg/logger"
)

// Landing renders the public landing page.
func Landing(renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, r, http.StatusOK, "landing", nil)
	}
}

// ElderDashboard renders the elder home page with the session holder's name.
func ElderDashboard(renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, r, http.StatusOK, "elder_dashboard", map[string]any{
			"Name": middleware.NameFromContext(r.Context()),
		})
	}
}

// GuardianDashboard renders the guardian home page.
func GuardianDashboard(renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, r, http.StatusOK, "guardian_dashboard", map[string]any{
			"Name": middleware.NameFromContext(r.Context()),
		})
	}
}

// ViewElders lists the elders registered under the signed-in guardian.
func ViewElders(svc users.Service, renderer *views.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		elders, err := svc.EldersOf(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "elders.list", err)
			}
			renderer.RenderError(w, r)
			return
		}
		renderer.Render(w, r, http.StatusOK, "view_elders", map[string]any{
			"Elders": elders,
		})
	}
}

// Profile renders the signed-in user's own record. The back link targets the
// dashboard matching the session role.
func Profile(svc users.Service, renderer *views.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.Profile(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "profile.load", err)
			}
			renderer.RenderError(w, r)
			return
		}

		dashboard := "/elder_dashboard"
		if middleware.RoleFromContext(r.Context()) == enums.RoleGuardian {
			dashboard = "/guardian_dashboard"
		}

		renderer.Render(w, r, http.StatusOK, "profile", map[string]any{
			"Profile":       profile,
			"DashboardPath": dashboard,
		})
	}
}
