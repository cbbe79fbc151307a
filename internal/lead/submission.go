package lead

// Submission is one trial-class request taken from the contact form.
// It is transient: validated, forwarded once, then discarded. Nothing in
// this pipeline persists it.
type Submission struct {
	Name      string `json:"name" validate:"required,name_chars,max=100"`
	Phone     string `json:"phone" validate:"required,phone_digits"`
	Direction string `json:"direction" validate:"max=100"`
}
