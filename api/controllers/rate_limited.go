package controllers

import (
	"net/http"

	"github.com/carebridge/eldercare-backend/api/views"
	pkgerrors "github.com/carebridge/eldercare-backend/pkg/errors"
)

// RateLimited re-renders the originating form with an inline throttle
// message. Wired as the blocked handler of the auth rate limiter, so the
// visitor keeps the form instead of a bare error response.
func RateLimited(renderer *views.Renderer, page string, form any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := pkgerrors.New(pkgerrors.CodeRateLimit, "Too many attempts. Please try again later.")
		renderer.Render(w, r, pkgerrors.MetadataFor(pkgerrors.CodeRateLimit).HTTPStatus, page, map[string]any{
			"Form":  form,
			"Error": pkgerrors.UserMessage(err),
		})
	}
}
