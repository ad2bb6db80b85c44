package validation

import (
	"strings"

	"github.com/kbukum/seqfns/errors"
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

// Checker collects failures from rules that Validate cannot express as tags.
type Checker struct {
	fields []FieldError
}

// New returns an empty Checker.
func New() *Checker {
	return &Checker{}
}

// Check records message against field unless ok holds.
func (c *Checker) Check(ok bool, field, message string) *Checker {
	if !ok {
		c.fields = append(c.fields, FieldError{Field: field, Message: message})
	}
	return c
}

// Merge folds the field errors of err into c. Errors that are not validation
// AppErrors are recorded under the empty field.
func (c *Checker) Merge(err error) *Checker {
	if err == nil {
		return c
	}
	if appErr, ok := errors.AsAppError(err); ok {
		if fields, ok := appErr.Details["fields"].([]FieldError); ok {
			c.fields = append(c.fields, fields...)
			return c
		}
		c.fields = append(c.fields, FieldError{Message: appErr.Message})
		return c
	}
	c.fields = append(c.fields, FieldError{Message: err.Error()})
	return c
}

// Fields returns the recorded failures.
func (c *Checker) Fields() []FieldError {
	return c.fields
}

// Err returns nil when nothing failed.
func (c *Checker) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return fieldsError(c.fields)
}

func fieldsError(fields []FieldError) *errors.AppError {
	msgs := make([]string, len(fields))
	for i, f := range fields {
		if f.Field == "" {
			msgs[i] = f.Message
			continue
		}
		msgs[i] = f.String()
	}
	return errors.Validation(strings.Join(msgs, "; ")).WithDetail("fields", fields)
}
