package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 16 << 10

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// CredentialsRequest is the body of /auth/signup and /auth/login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=1024"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// InvalidRequest is the 400 body for malformed or invalid input.
type InvalidRequest struct {
	Text   string       `json:"text"`
	Fields []FieldError `json:"fields,omitempty"`
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (*CredentialsRequest, *InvalidRequest) {
	var req CredentialsRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &InvalidRequest{Text: "Invalid request body"}
	}

	err := getValidator().Struct(&req)
	if err == nil {
		return &req, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, &InvalidRequest{Text: "Invalid request"}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, FieldError{Field: e.Field(), Message: describe(e)})
	}
	return nil, &InvalidRequest{Text: "Invalid request", Fields: fields}
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	default:
		return "is invalid"
	}
}
