package crm

// Compile-time interface check for Account
var _ Record = (*Account)(nil)

// Account represents an organization tracked in the CRM. The account name is
// the natural key operations reconcile against.
type Account struct {
	SystemFields `yaml:",inline"`

	Name        string `json:"name" yaml:"name" validate:"required,max=255"`        // Display name (natural key)
	Industry    string `json:"industry,omitempty" yaml:"industry,omitempty"`        // Industry segment
	Description string `json:"description,omitempty" yaml:"description,omitempty"` // Free-form notes
	Website     string `json:"website,omitempty" yaml:"website,omitempty"`          // Company website
	Phone       string `json:"phone,omitempty" yaml:"phone,omitempty"`              // Main phone number
}

// ObjectType returns the account object type.
func (a *Account) ObjectType() ObjectType {
	return ObjectAccount
}

// Field returns the canonical string value of a filterable account field.
func (a *Account) Field(name string) (string, bool) {
	switch name {
	case FieldID:
		return a.ID, true
	case FieldName:
		return a.Name, true
	case FieldIndustry:
		return a.Industry, true
	case FieldDescription:
		return a.Description, true
	default:
		return "", false
	}
}

// Clone returns an independent copy of the account.
func (a *Account) Clone() Record {
	c := *a
	return &c
}
