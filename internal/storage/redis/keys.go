package redis

import (
	"fmt"

	"github.com/jpmiranda/regform/internal/model"
)

// Key prefix for all registration data
const keyPrefix = "regform"

// formKey returns the Redis key for a form session
func formKey(id model.FormID) string {
	return fmt.Sprintf("%s:form:%s", keyPrefix, id)
}

// recordKey returns the Redis key for a registration record. The trailing
// segment is the canonical "student_<studentNumber>" record key.
func recordKey(studentNumber string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, model.RecordKey(studentNumber))
}
