package crm

// Compile-time interface check for Case
var _ Record = (*Case)(nil)

// Case status values.
const (
	CaseStatusNew       = "New"
	CaseStatusWorking   = "Working"
	CaseStatusEscalated = "Escalated"
	CaseStatusClosed    = "Closed"
)

// Case origin values.
const (
	CaseOriginPhone = "Phone"
	CaseOriginEmail = "Email"
	CaseOriginWeb   = "Web"
)

// Case represents a support case, optionally linked to an account.
type Case struct {
	SystemFields `yaml:",inline"`

	Subject   string `json:"subject" yaml:"subject" validate:"required,max=255"` // Short summary
	AccountID string `json:"account_id,omitempty" yaml:"account_id,omitempty"`   // Parent account identifier
	Status    string `json:"status,omitempty" yaml:"status,omitempty"`           // New, Working, Escalated, Closed
	Origin    string `json:"origin,omitempty" yaml:"origin,omitempty"`           // Phone, Email, Web
}

// ObjectType returns the case object type.
func (c *Case) ObjectType() ObjectType {
	return ObjectCase
}

// Field returns the canonical string value of a filterable case field.
func (c *Case) Field(name string) (string, bool) {
	switch name {
	case FieldID:
		return c.ID, true
	case FieldSubject:
		return c.Subject, true
	case FieldAccountID:
		return c.AccountID, true
	case FieldStatus:
		return c.Status, true
	case FieldOrigin:
		return c.Origin, true
	default:
		return "", false
	}
}

// Clone returns an independent copy of the case.
func (c *Case) Clone() Record {
	clone := *c
	return &clone
}
