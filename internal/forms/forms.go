// Package forms описывает формы запросов: привязку значений, правила полей
// и перекрёстные проверки. Ошибки возвращаются списком Errors.
package forms

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// NonFieldErrors — поле для ошибок уровня формы.
const NonFieldErrors = "__all__"

const maxMultipartMemory = 10 << 20

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Errors — результат неуспешной валидации формы.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "form is invalid: " + strings.Join(parts, "; ")
}

// Has сообщает, есть ли ошибка с данным кодом.
func (e Errors) Has(code string) bool {
	for _, fe := range e {
		if fe.Code == code {
			return true
		}
	}
	return false
}

// For возвращает ошибки конкретного поля.
func (e Errors) For(field string) []FieldError {
	var out []FieldError
	for _, fe := range e {
		if fe.Field == field {
			out = append(out, fe)
		}
	}
	return out
}

func (e Errors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check прогоняет правила полей (теги validate) и переводит их в Errors.
func check(s any) Errors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: NonFieldErrors, Code: "invalid", Message: err.Error()}}
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, toFieldError(fe))
	}
	return out
}

func toFieldError(fe validator.FieldError) FieldError {
	switch fe.Tag() {
	case "required":
		return FieldError{Field: fe.Field(), Code: "required", Message: "This field is required."}
	case "max":
		n := utf8.RuneCountInString(fmt.Sprint(fe.Value()))
		return FieldError{
			Field:   fe.Field(),
			Code:    "max_length",
			Message: fmt.Sprintf("Ensure this value has at most %s characters (it has %d).", fe.Param(), n),
		}
	default:
		return FieldError{Field: fe.Field(), Code: fe.Tag(), Message: fe.Error()}
	}
}

// Values собирает значения формы из запроса: query для GET/HEAD,
// JSON-объект для application/json, иначе urlencoded/multipart тело.
func Values(r *http.Request) (url.Values, error) {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return r.URL.Query(), nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		return jsonValues(r)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
	}
	return r.Form, nil
}

func jsonValues(r *http.Request) (url.Values, error) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	out := url.Values{}
	for k, v := range raw {
		if err := addJSONValue(out, k, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func addJSONValue(out url.Values, key string, v any) error {
	switch x := v.(type) {
	case nil:
	case string:
		out.Add(key, x)
	case bool:
		out.Add(key, strconv.FormatBool(x))
	case float64:
		out.Add(key, strconv.FormatFloat(x, 'f', -1, 64))
	case []any:
		for _, item := range x {
			if _, nested := item.([]any); nested {
				return fmt.Errorf("field %q: nested arrays are not supported", key)
			}
			if err := addJSONValue(out, key, item); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("field %q: unsupported value type %T", key, v)
	}
	return nil
}

func stringField(v url.Values, name string) string {
	return strings.TrimSpace(v.Get(name))
}

// boolField: отсутствующее поле получает значение по умолчанию.
func boolField(v url.Values, name string, def bool) bool {
	if _, ok := v[name]; !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v.Get(name))) {
	case "", "false", "0", "off", "no":
		return false
	}
	return true
}
