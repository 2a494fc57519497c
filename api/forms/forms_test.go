package forms

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/carebridge/eldercare-backend/pkg/enums"
	pkgerrors "github.com/carebridge/eldercare-backend/pkg/errors"
	"github.com/stretchr/testify/require"
)

func buildRequest(values url.Values) *strings.Reader {
	return strings.NewReader(values.Encode())
}

func TestParseSignup(t *testing.T) {
	values := url.Values{
		"fullname": {"Gwen Guardian"},
		"age":      {"52"},
		"username": {"gwen"},
		"phone":    {"555-0101"},
		"password": {"secret"},
		"role":     {"guardian"},
	}
	req := httptest.NewRequest("POST", "/signup", buildRequest(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := ParseSignup(req)
	require.NoError(t, err)
	require.Equal(t, "Gwen Guardian", form.FullName)
	require.Equal(t, "gwen", form.Username)

	svcReq, err := form.ToRequest()
	require.NoError(t, err)
	require.Equal(t, enums.RoleGuardian, svcReq.Role)
	require.NotNil(t, svcReq.Age)
	require.Equal(t, 52, *svcReq.Age)
	require.NotNil(t, svcReq.Phone)
	require.Equal(t, "555-0101", *svcReq.Phone)
}

func TestParseSignupElderRequiresGuardian(t *testing.T) {
	values := url.Values{
		"fullname": {"Edna Elder"},
		"username": {"edna"},
		"password": {"secret"},
		"role":     {"elder"},
	}
	req := httptest.NewRequest("POST", "/signup", buildRequest(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := ParseSignup(req)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
	require.Contains(t, err.Error(), "guardian_username")
}

func TestParseSignupOptionalFieldsOmitted(t *testing.T) {
	values := url.Values{
		"fullname": {"Gwen Guardian"},
		"username": {"gwen"},
		"password": {"secret"},
		"role":     {"guardian"},
	}
	req := httptest.NewRequest("POST", "/signup", buildRequest(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := ParseSignup(req)
	require.NoError(t, err)

	svcReq, err := form.ToRequest()
	require.NoError(t, err)
	require.Nil(t, svcReq.Age)
	require.Nil(t, svcReq.Phone)
}

func TestParseSignupRejectsBadAge(t *testing.T) {
	values := url.Values{
		"fullname": {"Gwen Guardian"},
		"age":      {"young"},
		"username": {"gwen"},
		"password": {"secret"},
		"role":     {"guardian"},
	}
	req := httptest.NewRequest("POST", "/signup", buildRequest(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := ParseSignup(req)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
}

func TestParseSignupRejectsUnknownRole(t *testing.T) {
	values := url.Values{
		"fullname": {"Gwen Guardian"},
		"username": {"gwen"},
		"password": {"secret"},
		"role":     {"admin"},
	}
	req := httptest.NewRequest("POST", "/signup", buildRequest(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := ParseSignup(req)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
}

func TestParseLogin(t *testing.T) {
	values := url.Values{
		"username": {"edna"},
		"password": {"secret"},
		"role":     {"elder"},
	}
	req := httptest.NewRequest("POST", "/login", buildRequest(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := ParseLogin(req)
	require.NoError(t, err)

	svcReq, err := form.ToRequest()
	require.NoError(t, err)
	require.Equal(t, enums.RoleElder, svcReq.Role)
	require.Equal(t, "edna", svcReq.Username)
}

func TestParseLoginMissingFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/login", buildRequest(url.Values{}))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := ParseLogin(req)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
}

func TestParseBMIValues(t *testing.T) {
	values := url.Values{
		"weight": {"50"},
		"height": {"160"},
	}
	req := httptest.NewRequest("POST", "/bmi", buildRequest(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := ParseBMI(req)
	require.NoError(t, err)

	weight, height, err := form.Values()
	require.NoError(t, err)
	require.Equal(t, 50.0, weight)
	require.Equal(t, 160.0, height)
}

func TestParseBMIRejectsNonNumeric(t *testing.T) {
	values := url.Values{
		"weight": {"heavy"},
		"height": {"160"},
	}
	req := httptest.NewRequest("POST", "/bmi", buildRequest(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := ParseBMI(req)
	require.NoError(t, err)

	_, _, err = form.Values()
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
}

func TestParseForgotPassword(t *testing.T) {
	values := url.Values{
		"username":     {"edna"},
		"new_password": {"newsecret"},
	}
	req := httptest.NewRequest("POST", "/forgot_password", buildRequest(values))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := ParseForgotPassword(req)
	require.NoError(t, err)
	require.Equal(t, "edna", form.Username)
	require.Equal(t, "newsecret", form.NewPassword)
}
