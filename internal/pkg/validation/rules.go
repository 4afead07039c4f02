package validation

import (
	"regexp"
	"unicode/utf8"
)

// Limits mirror the column sizes of the hostel schema.
var (
	PhonePattern      = `^\+?[0-9]{7,15}$`
	RoomNumberPattern = `^[A-Za-z0-9\-]{1,20}$`

	NameMaxLength     = 100
	EmailMaxLength    = 100
	CourseMaxLength   = 50
	TitleMaxLength    = 100
	LocationMaxLength = 100

	// bcrypt only accepts up to 72 bytes
	PasswordMaxBytes = 72

	YearMin = 1
	YearMax = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Phone      *regexp.Regexp
	RoomNumber *regexp.Regexp
}{
	Phone:      regexp.MustCompile(PhonePattern),
	RoomNumber: regexp.MustCompile(RoomNumberPattern),
}

// StringValidation checks a single string field
type StringValidation struct {
	Value    string
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation for a required value
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}

	if v.MaxLen > 0 && utf8.RuneCountInString(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// NumericValidation checks an inclusive integer range
type NumericValidation struct {
	Value int
	Min   int
	Max   int
}

func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	return v
}

func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	return v
}

// Validate performs validation; a zero bound is not enforced
func (v *NumericValidation) Validate() bool {
	if v.Min != 0 && v.Value < v.Min {
		return false
	}

	if v.Max != 0 && v.Value > v.Max {
		return false
	}

	return true
}
