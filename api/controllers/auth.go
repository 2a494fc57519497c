package controllers

import (
	"net/http"

	"github.com/carebridge/eldercare-backend/api/forms"
	"github.com/carebridge/eldercare-backend/api/views"
	"github.com/carebridge/eldercare-backend/internal/accounts"
	"github.com/carebridge/eldercare-backend/pkg/auth"
	"github.com/carebridge/eldercare-backend/pkg/auth/session"
	"github.com/carebridge/eldercare-backend/pkg/enums"
	pkgerrors "github.com/carebridge/eldercare-backend/pkg/errors"
	"github.com/carebridge/eldercare-backend/pkg/logger"
)

// SignupPage renders the empty signup form.
func SignupPage(renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, r, http.StatusOK, "signup", map[string]any{
			"Form": &forms.Signup{},
		})
	}
}

// Signup handles the signup form post. Expected failures re-render the form
// with the submitted values and an inline message; success redirects to the
// login page.
func Signup(svc accounts.Service, renderer *views.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := forms.ParseSignup(r)
		if err != nil {
			renderSignup(w, r, renderer, form, err)
			return
		}

		req, err := form.ToRequest()
		if err != nil {
			renderSignup(w, r, renderer, form, err)
			return
		}

		if err := svc.Signup(r.Context(), req); err != nil {
			if pkgerrors.CodeOf(err) == pkgerrors.CodeInternal {
				if logg != nil {
					logg.Error(r.Context(), "signup.failed", err)
				}
				renderer.RenderError(w, r)
				return
			}
			renderSignup(w, r, renderer, form, err)
			return
		}

		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

func renderSignup(w http.ResponseWriter, r *http.Request, renderer *views.Renderer, form *forms.Signup, err error) {
	renderer.Render(w, r, pkgerrors.MetadataFor(pkgerrors.CodeOf(err)).HTTPStatus, "signup", map[string]any{
		"Form":  form,
		"Error": pkgerrors.UserMessage(err),
	})
}

// LoginPage renders the empty login form.
func LoginPage(renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, r, http.StatusOK, "login", map[string]any{
			"Form": &forms.Login{},
		})
	}
}

// Login authenticates the form triple, establishes the session cookie and
// redirects to the role's dashboard. Failed credentials re-render the form.
func Login(svc accounts.Service, sessions *session.Manager, renderer *views.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := forms.ParseLogin(r)
		if err != nil {
			renderLogin(w, r, renderer, form, err)
			return
		}

		req, err := form.ToRequest()
		if err != nil {
			renderLogin(w, r, renderer, form, err)
			return
		}

		user, err := svc.Login(r.Context(), req)
		if err != nil {
			if pkgerrors.CodeOf(err) == pkgerrors.CodeInternal {
				if logg != nil {
					logg.Error(r.Context(), "login.failed", err)
				}
				renderer.RenderError(w, r)
				return
			}
			renderLogin(w, r, renderer, form, err)
			return
		}

		if err := sessions.Establish(w, auth.SessionPayload{
			UserID: user.ID,
			Role:   user.Role,
			Name:   user.FullName,
		}); err != nil {
			if logg != nil {
				logg.Error(r.Context(), "session.establish", err)
			}
			renderer.RenderError(w, r)
			return
		}

		target := "/elder_dashboard"
		if user.Role == enums.RoleGuardian {
			target = "/guardian_dashboard"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

func renderLogin(w http.ResponseWriter, r *http.Request, renderer *views.Renderer, form *forms.Login, err error) {
	status := pkgerrors.MetadataFor(pkgerrors.CodeOf(err)).HTTPStatus
	if status == http.StatusSeeOther {
		// Rejected credentials re-render the login form inline rather than
		// bouncing through a redirect.
		status = http.StatusOK
	}
	renderer.Render(w, r, status, "login", map[string]any{
		"Form":  form,
		"Error": pkgerrors.UserMessage(err),
	})
}

// Logout clears the session cookie and returns to the landing page.
func Logout(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Clear(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// ForgotPasswordPage renders the recovery form.
func ForgotPasswordPage(renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, r, http.StatusOK, "forgot_password", map[string]any{
			"Form": &forms.ForgotPassword{},
		})
	}
}

// ForgotPassword overwrites the password for an existing username and
// confirms inline on the same page.
func ForgotPassword(svc accounts.Service, renderer *views.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := forms.ParseForgotPassword(r)
		if err != nil {
			renderForgotPassword(w, r, renderer, form, pkgerrors.UserMessage(err), http.StatusOK)
			return
		}

		if err := svc.ResetPassword(r.Context(), accounts.ResetPasswordRequest{
			Username:    form.Username,
			NewPassword: form.NewPassword,
		}); err != nil {
			if pkgerrors.CodeOf(err) == pkgerrors.CodeInternal {
				if logg != nil {
					logg.Error(r.Context(), "password.reset", err)
				}
				renderer.RenderError(w, r)
				return
			}
			renderForgotPassword(w, r, renderer, form, pkgerrors.UserMessage(err), http.StatusOK)
			return
		}

		renderForgotPassword(w, r, renderer, &forms.ForgotPassword{}, "Password Updated Successfully!", http.StatusOK)
	}
}

func renderForgotPassword(w http.ResponseWriter, r *http.Request, renderer *views.Renderer, form *forms.ForgotPassword, message string, status int) {
	renderer.Render(w, r, status, "forgot_password", map[string]any{
		"Form":    form,
		"Message": message,
	})
}
