package lead

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries the single, user-facing reason a submission was
// rejected. Checks are fail-fast: one submit, one reason.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

// Letters of the two supported alphabets, plus whitespace and hyphen.
var nameChars = regexp.MustCompile(`^[а-яёА-ЯЁa-zA-Z\s-]+$`)

// Validator checks a Submission against the structural rules. The form side
// and the receiving boundary run separate instances: the boundary never
// trusts the form, and it alone enforces the country-code rule.
type Validator struct {
	validate    *validator.Validate
	messages    map[string]string
	countryCode string
}

// NewFormValidator checks what the site form checks before any network call.
func NewFormValidator() *Validator {
	return &Validator{validate: newValidate(), messages: formMessages}
}

// NewBoundaryValidator re-checks everything on the receiving side and
// additionally requires the 375 dialing prefix.
func NewBoundaryValidator() *Validator {
	return &Validator{
		validate:    newValidate(),
		messages:    boundaryMessages,
		countryCode: CountryCode,
	}
}

func newValidate() *validator.Validate {
	v := validator.New()
	// Registration only fails for a blank tag or nil func.
	_ = v.RegisterValidation("name_chars", func(fl validator.FieldLevel) bool {
		return nameChars.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone_digits", func(fl validator.FieldLevel) bool {
		return len(Digits(fl.Field().String())) == PhoneDigits
	})
	return v
}

var formMessages = map[string]string{
	"Name.required":      "Имя обязательно",
	"Name.name_chars":    "Имя может содержать только буквы, пробелы и дефисы",
	"Name.max":           "Имя слишком длинное",
	"Phone.required":     "Телефон обязателен",
	"Phone.phone_digits": "Номер должен содержать 12 цифр",
	"Direction.max":      "Направление слишком длинное",
}

var boundaryMessages = map[string]string{
	"Name.required":      "Имя обязательно",
	"Name.name_chars":    "Имя содержит недопустимые символы",
	"Name.max":           "Имя содержит недопустимые символы",
	"Phone.required":     "Телефон обязателен",
	"Phone.phone_digits": "Неверный формат телефона",
	"Phone.country_code": "Неверный формат телефона",
	"Direction.max":      "Направление слишком длинное",
}

// Validate returns nil or a *ValidationError with the first failed rule.
// The name is trimmed before checking so an all-whitespace name reads as
// missing, not as invalid characters.
func (vd *Validator) Validate(s Submission) error {
	s.Name = strings.TrimSpace(s.Name)

	if err := vd.validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return vd.translate(verrs[0])
		}
		return err
	}

	if vd.countryCode != "" && !strings.HasPrefix(Digits(s.Phone), vd.countryCode) {
		return &ValidationError{Field: "phone", Message: vd.messages["Phone.country_code"]}
	}
	return nil
}

func (vd *Validator) translate(fe validator.FieldError) error {
	msg, ok := vd.messages[fe.StructField()+"."+fe.Tag()]
	if !ok {
		msg = "Неверные данные"
	}
	return &ValidationError{Field: strings.ToLower(fe.StructField()), Message: msg}
}
