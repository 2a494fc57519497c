package forms

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/carebridge/eldercare-backend/internal/accounts"
	"github.com/carebridge/eldercare-backend/pkg/enums"
	pkgerrors "github.com/carebridge/eldercare-backend/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

func decode(r *http.Request, dest any) error {
	if err := r.ParseForm(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form submission")
	}

	value := reflect.ValueOf(dest).Elem()
	structType := value.Type()
	for i := 0; i < structType.NumField(); i++ {
		tag := strings.SplitN(structType.Field(i).Tag.Get("form"), ",", 2)[0]
		if tag == "" {
			continue
		}
		value.Field(i).SetString(strings.TrimSpace(r.PostFormValue(tag)))
	}

	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s %s", first.Field(), validationMessage(first)))
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "number", "numeric":
		return "must be a number"
	case "oneof":
		return "is invalid"
	}
	return "is invalid"
}

// Signup mirrors the signup form fields. Raw strings are kept so rejected
// submissions re-render with the visitor's values intact.
type Signup struct {
	FullName         string `form:"fullname" validate:"required"`
	Age              string `form:"age" validate:"omitempty,number"`
	Username         string `form:"username" validate:"required"`
	Phone            string `form:"phone"`
	Password         string `form:"password" validate:"required"`
	Role             string `form:"role" validate:"required,oneof=guardian elder"`
	GuardianUsername string `form:"guardian_username" validate:"required_if=Role elder"`
}

// ParseSignup decodes and validates the signup form.
func ParseSignup(r *http.Request) (*Signup, error) {
	var form Signup
	if err := decode(r, &form); err != nil {
		return &form, err
	}
	return &form, nil
}

// ToRequest converts the validated form into a service request.
func (f *Signup) ToRequest() (accounts.SignupRequest, error) {
	req := accounts.SignupRequest{
		FullName:         f.FullName,
		Username:         f.Username,
		Password:         f.Password,
		GuardianUsername: f.GuardianUsername,
	}

	role, err := enums.ParseRole(f.Role)
	if err != nil {
		return req, pkgerrors.New(pkgerrors.CodeValidation, "role is invalid")
	}
	req.Role = role

	if f.Age != "" {
		age, err := strconv.Atoi(f.Age)
		if err != nil || age < 0 {
			return req, pkgerrors.New(pkgerrors.CodeValidation, "age must be a whole number")
		}
		req.Age = &age
	}
	if f.Phone != "" {
		phone := f.Phone
		req.Phone = &phone
	}
	return req, nil
}

// Login mirrors the login form triple.
type Login struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Role     string `form:"role" validate:"required,oneof=guardian elder"`
}

// ParseLogin decodes and validates the login form.
func ParseLogin(r *http.Request) (*Login, error) {
	var form Login
	if err := decode(r, &form); err != nil {
		return &form, err
	}
	return &form, nil
}

// ToRequest converts the validated form into a service request.
func (f *Login) ToRequest() (accounts.LoginRequest, error) {
	role, err := enums.ParseRole(f.Role)
	if err != nil {
		return accounts.LoginRequest{}, pkgerrors.New(pkgerrors.CodeValidation, "role is invalid")
	}
	return accounts.LoginRequest{
		Username: f.Username,
		Password: f.Password,
		Role:     role,
	}, nil
}

// ForgotPassword mirrors the password recovery form.
type ForgotPassword struct {
	Username    string `form:"username" validate:"required"`
	NewPassword string `form:"new_password" validate:"required"`
}

// ParseForgotPassword decodes and validates the recovery form.
func ParseForgotPassword(r *http.Request) (*ForgotPassword, error) {
	var form ForgotPassword
	if err := decode(r, &form); err != nil {
		return &form, err
	}
	return &form, nil
}

// BMI mirrors the calculator form. Values stay raw for re-rendering;
// malformed numbers are validation errors, not faults.
type BMI struct {
	Weight string `form:"weight" validate:"required"`
	Height string `form:"height" validate:"required"`
}

// ParseBMI decodes and validates the calculator form.
func ParseBMI(r *http.Request) (*BMI, error) {
	var form BMI
	if err := decode(r, &form); err != nil {
		return &form, err
	}
	return &form, nil
}

// Values parses the raw weight/height fields into numbers.
func (f *BMI) Values() (weightKg, heightCm float64, err error) {
	weightKg, convErr := strconv.ParseFloat(f.Weight, 64)
	if convErr != nil {
		return 0, 0, pkgerrors.New(pkgerrors.CodeValidation, "weight must be a number")
	}
	heightCm, convErr = strconv.ParseFloat(f.Height, 64)
	if convErr != nil {
		return 0, 0, pkgerrors.New(pkgerrors.CodeValidation, "height must be a number")
	}
	return weightKg, heightCm, nil
}
