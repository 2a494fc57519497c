package controllers

import (
	"net/http"

	"github.com/carebridge/eldercare-backend/api/forms"
	"github.com/carebridge/eldercare-backend/api/views"
	"github.com/carebridge/eldercare-backend/internal/bmi"
	pkgerrors "github.com/carebridge/eldercare-backend/pkg/errors"
)

// BMIPage renders the empty calculator form.
func BMIPage(renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, r, http.StatusOK, "bmi", map[string]any{
			"Form": &forms.BMI{},
		})
	}
}

// BMICalculate computes the index from the submitted weight and height and
// renders the value with its advisory on the same page. The calculator is
// stateless and never persists anything.
func BMICalculate(renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := forms.ParseBMI(r)
		if err != nil {
			renderBMIError(w, r, renderer, form, err)
			return
		}

		weight, height, err := form.Values()
		if err != nil {
			renderBMIError(w, r, renderer, form, err)
			return
		}

		value, err := bmi.Compute(weight, height)
		if err != nil {
			renderBMIError(w, r, renderer, form,
				pkgerrors.New(pkgerrors.CodeValidation, "weight and height must be positive"))
			return
		}

		renderer.Render(w, r, http.StatusOK, "bmi", map[string]any{
			"Form":      form,
			"HasResult": true,
			"Result":    value,
			"Message":   bmi.Classify(value).Message(),
		})
	}
}

func renderBMIError(w http.ResponseWriter, r *http.Request, renderer *views.Renderer, form *forms.BMI, err error) {
	renderer.Render(w, r, http.StatusOK, "bmi", map[string]any{
		"Form":  form,
		"Error": pkgerrors.UserMessage(err),
	})
}
