// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/NiharGandhi/pent/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the Go field names of the validated structs.
const (
	// FieldUsername targets the login name of a credentials request.
	FieldUsername = "Username"

	// FieldEmail targets the contact address of a registration request.
	FieldEmail = "Email"

	// FieldPassword targets the plaintext password of a credentials request.
	FieldPassword = "Password"

	// FieldUserID targets the identifier of a lookup request.
	FieldUserID = "UserID"
)

// Limits enforced through struct tags on the models package.
const (
	MaxUsernameLength = 64
	MaxEmailLength    = 254
	MaxPasswordBytes  = 1024
)

var knownFields = map[string]struct{}{
	FieldUsername: {},
	FieldEmail:    {},
	FieldPassword: {},
	FieldUserID:   {},
}

// errorsByRule maps a failed "<Field>.<tag>" rule to its sentinel error.
var errorsByRule = map[string]error{
	FieldUsername + ".required": ErrEmptyUsername,
	FieldUsername + ".max":      ErrUsernameTooLong,
	FieldEmail + ".required":    ErrEmptyEmail,
	FieldEmail + ".max":         ErrEmailTooLong,
	FieldPassword + ".required": ErrEmptyPassword,
	FieldPassword + ".maxbytes": ErrPasswordTooLong,
	FieldUserID + ".required":   ErrEmptyUserID,
}

// CredentialsValidator validates credential requests using the
// `validate` struct tags declared on [models.Credentials] and
// [models.LookupRequest]. Username and email are checked after trimming
// surrounding whitespace.
type CredentialsValidator struct {
	validate *validator.Validate
}

// NewCredentialsValidator constructs a [Validator] for credential requests.
func NewCredentialsValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// "maxbytes" limits the encoded length of a string, unlike "max" which
	// counts runes.
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(fmt.Sprintf("register maxbytes validation: %v", err))
	}

	return &CredentialsValidator{validate: v}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	for _, field := range fields {
		if _, ok := knownFields[field]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.LookupRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.LookupRequest:
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(ctx context.Context, c models.Credentials, fields ...string) error {
	c.Username = strings.TrimSpace(c.Username)
	c.Email = strings.TrimSpace(c.Email)

	return v.validateStruct(ctx, &c, fields...)
}

func (v *CredentialsValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	return toSentinel(err)
}

// toSentinel converts the first validation failure into a sentinel error.
func toSentinel(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	fe := validationErrs[0]
	if sentinel, ok := errorsByRule[fe.Field()+"."+fe.Tag()]; ok {
		return sentinel
	}

	return fmt.Errorf("%s failed on %q rule", fe.Field(), fe.Tag())
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
