package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// presentTag помечает поле, ключ которого обязан быть в теле запроса.
// Пустая строка допустима, отсутствующий ключ или null нет.
const presentTag = "present"

// maxBodyBytes ограничивает размер JSON тела.
const maxBodyBytes = 1 << 20

// newValidator создаёт валидатор, который называет поля по json-тегам.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return jsonName(f)
	})
	// Присутствие ключа проверяет checkPresence, по значению поле не ограничено
	if err := v.RegisterValidation(presentTag, func(validator.FieldLevel) bool { return true }); err != nil {
		panic(err)
	}
	return v
}

// decodeBody читает JSON тело в T и валидирует его.
// При ошибке отправляет 413 или 422 и возвращает ok=false.
func decodeBody[T any](h *Handler, w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			Error(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return req, false
		}
		ValidationFailed(w, []ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "json_invalid"}})
		return req, false
	}

	if len(bytes.TrimSpace(body)) == 0 {
		ValidationFailed(w, []ValidationIssue{{Loc: []string{"body"}, Msg: "Field required", Type: "missing"}})
		return req, false
	}

	// json.Unmarshal, в отличие от Decoder, отвергает данные после значения
	if err := json.Unmarshal(body, &req); err != nil {
		ValidationFailed(w, []ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "json_invalid"}})
		return req, false
	}

	issues := checkPresence(reflect.TypeOf(req), body, []string{"body"})
	if err := h.validate.Struct(req); err != nil {
		issues = append(issues, validationIssues(err)...)
	}
	if len(issues) > 0 {
		ValidationFailed(w, issues)
		return req, false
	}

	if n, ok := any(&req).(interface{ Normalize() }); ok {
		n.Normalize()
	}
	return req, true
}

// checkPresence ищет поля с тегом present, ключей которых нет в raw.
// Во вложенные объекты спускается рекурсивно.
func checkPresence(t reflect.Type, raw json.RawMessage, loc []string) []ValidationIssue {
	if t.Kind() != reflect.Struct {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		// не объект: если тип это допустил, проверять нечего
		return nil
	}

	var issues []ValidationIssue
	for i := range t.NumField() {
		f := t.Field(i)
		name := jsonName(f)
		if name == "" || !f.IsExported() {
			continue
		}
		fieldLoc := slices.Concat(loc, []string{name})

		value, ok := fields[name]
		if !ok || string(value) == "null" {
			if hasTag(f, presentTag) {
				issues = append(issues, ValidationIssue{Loc: fieldLoc, Msg: "Field required", Type: "missing"})
			}
			continue
		}
		issues = append(issues, checkPresence(f.Type, value, fieldLoc)...)
	}
	return issues
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func hasTag(f reflect.StructField, tag string) bool {
	return slices.Contains(strings.Split(f.Tag.Get("validate"), ","), tag)
}

// validationIssues переводит ошибки validator в список ValidationIssue.
func validationIssues(err error) []ValidationIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}

	issues := make([]ValidationIssue, 0, len(verrs))
	for _, fe := range verrs {
		loc := []string{"body"}
		// Namespace: "ProjectCreate.clientId" — первый сегмент имя типа
		if _, path, ok := strings.Cut(fe.Namespace(), "."); ok {
			loc = append(loc, strings.Split(path, ".")...)
		}
		issues = append(issues, ValidationIssue{
			Loc:  loc,
			Msg:  issueMessage(fe),
			Type: issueType(fe.Tag()),
		})
	}
	return issues
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	default:
		return "Field failed " + fe.Tag() + " validation"
	}
}

func issueType(tag string) string {
	if tag == "required" {
		return "missing"
	}
	return tag
}
