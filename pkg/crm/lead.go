package crm

// Compile-time interface check for Lead
var _ Record = (*Lead)(nil)

// Lead represents an unqualified prospect. The platform requires a last name
// and a company before a lead can be persisted.
type Lead struct {
	SystemFields `yaml:",inline"`

	FirstName string `json:"first_name,omitempty" yaml:"first_name,omitempty"`                  // Given name
	LastName  string `json:"last_name" yaml:"last_name" validate:"required,max=255"`            // Family name
	Company   string `json:"company" yaml:"company" validate:"required,max=255"`                // Company name
	Email     string `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"` // Email address
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`                          // Where the lead came from
}

// ObjectType returns the lead object type.
func (l *Lead) ObjectType() ObjectType {
	return ObjectLead
}

// Field returns the canonical string value of a filterable lead field.
func (l *Lead) Field(name string) (string, bool) {
	switch name {
	case FieldID:
		return l.ID, true
	case FieldFirstName:
		return l.FirstName, true
	case FieldLastName:
		return l.LastName, true
	case FieldCompany:
		return l.Company, true
	case FieldEmail:
		return l.Email, true
	case FieldSource:
		return l.Source, true
	default:
		return "", false
	}
}

// Clone returns an independent copy of the lead.
func (l *Lead) Clone() Record {
	c := *l
	return &c
}
