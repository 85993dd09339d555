// Package entity contains the core business objects of the project.
package entity

// Gender represents a user's optional self-reported gender.
type Gender string

const (
	// GenderUnspecified means the user did not provide a gender.
	GenderUnspecified Gender = ""
	// GenderMale indicates a male user.
	GenderMale Gender = "M"
	// GenderFemale indicates a female user.
	GenderFemale Gender = "F"
	// GenderNonBinary indicates a non-binary user.
	GenderNonBinary Gender = "N"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value. The empty value is valid.
func (g Gender) IsValid() bool {
	switch g {
	case GenderUnspecified, GenderMale, GenderFemale, GenderNonBinary:
		return true
	default:
		return false
	}
}
