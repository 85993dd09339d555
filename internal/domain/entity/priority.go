// Package entity contains the core business objects of the project.
package entity

// Priority represents how much the owner wants a product. It is optional;
// the empty value means no priority was assigned.
type Priority string

const (
	// PriorityUnset means no priority was assigned to the product.
	PriorityUnset Priority = ""
	// PriorityHigh marks a must-have product.
	PriorityHigh Priority = "HIGH"
	// PriorityMedium marks a nice-to-have product.
	PriorityMedium Priority = "MEDIUM"
	// PriorityLow marks a product of least importance.
	PriorityLow Priority = "LOW"
)

// String returns the string representation of the Priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid checks if the Priority is a valid value. The empty value is valid.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityUnset, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}
