package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carebridge/eldercare-backend/api/controllers"
	"github.com/carebridge/eldercare-backend/api/forms"
	"github.com/carebridge/eldercare-backend/api/middleware"
	"github.com/carebridge/eldercare-backend/api/views"
	"github.com/carebridge/eldercare-backend/internal/accounts"
	"github.com/carebridge/eldercare-backend/internal/users"
	"github.com/carebridge/eldercare-backend/pkg/auth/session"
	"github.com/carebridge/eldercare-backend/pkg/config"
	"github.com/carebridge/eldercare-backend/pkg/enums"
	"github.com/carebridge/eldercare-backend/pkg/logger"
	"github.com/carebridge/eldercare-backend/pkg/metrics"
	"github.com/carebridge/eldercare-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	Renderer    *views.Renderer
	Sessions    *session.Manager
	Accounts    accounts.Service
	Users       users.Service
	Redis       *redis.Client
	HTTPMetrics *metrics.HTTPMetrics
	Health      controllers.HealthDeps
}

// NewRouter wires the full page and operational surface.
func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(p.Logger, p.Renderer),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.Metrics(p.HTTPMetrics),
	)

	authPolicy := middleware.NewAuthRateLimitPolicy(
		"auth",
		p.Config.AuthRateLimit.Window,
		p.Config.AuthRateLimit.IPLimit,
		p.Config.AuthRateLimit.UsernameLimit,
	)
	limited := func(page string, form any) func(http.Handler) http.Handler {
		return rateLimit(authPolicy, p.Redis, controllers.RateLimited(p.Renderer, page, form), p.Logger)
	}

	// Public pages.
	r.Get("/", controllers.Landing(p.Renderer))
	r.Get("/signup", controllers.SignupPage(p.Renderer))
	r.With(limited("signup", &forms.Signup{})).
		Post("/signup", controllers.Signup(p.Accounts, p.Renderer, p.Logger))
	r.Get("/login", controllers.LoginPage(p.Renderer))
	r.With(limited("login", &forms.Login{})).
		Post("/login", controllers.Login(p.Accounts, p.Sessions, p.Renderer, p.Logger))
	r.Get("/logout", controllers.Logout(p.Sessions))
	r.Get("/bmi", controllers.BMIPage(p.Renderer))
	r.Post("/bmi", controllers.BMICalculate(p.Renderer))
	r.Get("/forgot_password", controllers.ForgotPasswordPage(p.Renderer))
	r.With(limited("forgot_password", &forms.ForgotPassword{})).
		Post("/forgot_password", controllers.ForgotPassword(p.Accounts, p.Renderer, p.Logger))

	// Signed-in pages.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(p.Sessions, p.Logger))

		r.With(middleware.RequireRole(enums.RoleElder, p.Logger)).
			Get("/elder_dashboard", controllers.ElderDashboard(p.Renderer))
		r.With(middleware.RequireRole(enums.RoleGuardian, p.Logger)).
			Get("/guardian_dashboard", controllers.GuardianDashboard(p.Renderer))
		r.With(middleware.RequireRole(enums.RoleGuardian, p.Logger)).
			Get("/view_elders", controllers.ViewElders(p.Users, p.Renderer, p.Logger))
		r.Get("/profile", controllers.Profile(p.Users, p.Renderer, p.Logger))
	})

	// Operational surface.
	r.Get("/healthz", controllers.Health(p.Health, p.Logger))
	r.Method(http.MethodGet, "/metrics", p.HTTPMetrics.Handler())

	return r
}

func rateLimit(policy middleware.AuthRateLimitPolicy, store *redis.Client, blocked http.Handler, logg *logger.Logger) func(http.Handler) http.Handler {
	if store == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.AuthRateLimit(policy, store, blocked, logg)
}
