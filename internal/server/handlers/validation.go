package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Report validation failures under the wire field names, which for empenhos
// are the portal's display spellings rather than the Go field names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindErrorBody shapes a body-decoding failure into a response payload.
// Validation failures list the offending fields; other decode errors carry
// the raw error detail.
func bindErrorBody(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return gin.H{"error": "invalid empenho payload", "fields": fieldErrors(verrs)}
	}
	return gin.H{"error": "invalid empenho payload", "detail": err.Error()}
}

func fieldErrors(verrs validator.ValidationErrors) []gin.H {
	fields := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, gin.H{"field": fe.Field(), "error": messageFor(fe)})
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return "is invalid"
	}
}
