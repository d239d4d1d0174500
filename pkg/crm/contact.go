package crm

// Compile-time interface check for Contact
var _ Record = (*Contact)(nil)

// Contact represents a person, optionally linked to an account through
// AccountID.
type Contact struct {
	SystemFields `yaml:",inline"`

	FirstName string `json:"first_name,omitempty" yaml:"first_name,omitempty"`                   // Given name
	LastName  string `json:"last_name" yaml:"last_name" validate:"required,max=255"`             // Family name (required by the platform)
	Email     string `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`  // Email address
	Phone     string `json:"phone,omitempty" yaml:"phone,omitempty"`                             // Phone number
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`                             // Job title
	AccountID string `json:"account_id,omitempty" yaml:"account_id,omitempty"`                   // Parent account identifier
}

// ObjectType returns the contact object type.
func (c *Contact) ObjectType() ObjectType {
	return ObjectContact
}

// Field returns the canonical string value of a filterable contact field.
func (c *Contact) Field(name string) (string, bool) {
	switch name {
	case FieldID:
		return c.ID, true
	case FieldFirstName:
		return c.FirstName, true
	case FieldLastName:
		return c.LastName, true
	case FieldEmail:
		return c.Email, true
	case FieldAccountID:
		return c.AccountID, true
	default:
		return "", false
	}
}

// Clone returns an independent copy of the contact.
func (c *Contact) Clone() Record {
	clone := *c
	return &clone
}

// FullName returns "First Last" with missing parts dropped.
func (c *Contact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}
