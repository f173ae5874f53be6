package controller

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/money-manager/backend/internal/integration/entrypoint/dto"
)

var jsonFieldNames sync.Once

// bindRules says which error code a rejected request body reports. Malformed
// JSON and absent required fields report missing; any other tag failure reports
// the code registered for the offending JSON field.
type bindRules[C ~string] struct {
	missing        C
	missingMessage string
	fields         map[string]C
}

// bindJSON decodes and validates the body into req, writing a 400 on failure.
func bindJSON[C ~string](ctx *gin.Context, req any, rules bindRules[C]) bool {
	useJSONFieldNames()

	err := ctx.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	code, message := rules.missing, rules.missingMessage
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		if fieldCode, ok := rules.fields[first.Field()]; ok && first.Tag() != "required" {
			code = fieldCode
			message = fmt.Sprintf("Invalid %s", first.Field())
		}
	}

	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: message, Code: string(code)})
	return false
}

// useJSONFieldNames makes validation errors name fields as clients send them.
func useJSONFieldNames() {
	jsonFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
}
