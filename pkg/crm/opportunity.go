package crm

import "strconv"

// Compile-time interface check for Opportunity
var _ Record = (*Opportunity)(nil)

// Stage represents an opportunity's position in the sales pipeline.
type Stage string

// Pipeline stages in order.
const (
	StageProspecting   Stage = "Prospecting"
	StageQualification Stage = "Qualification"
	StageNeedsAnalysis Stage = "Needs Analysis"
	StageProposal      Stage = "Proposal"
	StageNegotiation   Stage = "Negotiation"
	StageClosedWon     Stage = "Closed Won"
	StageClosedLost    Stage = "Closed Lost"
)

// String returns the string representation of a Stage.
func (s Stage) String() string {
	return string(s)
}

// Closed reports whether the stage is terminal.
func (s Stage) Closed() bool {
	return s == StageClosedWon || s == StageClosedLost
}

// Opportunity represents a deal in the pipeline, keyed within its parent
// account by name.
type Opportunity struct {
	SystemFields `yaml:",inline"`

	Name      string  `json:"name" yaml:"name" validate:"required,max=255"`              // Deal name (natural key within the account)
	AccountID string  `json:"account_id,omitempty" yaml:"account_id,omitempty"`          // Parent account identifier
	Stage     Stage   `json:"stage" yaml:"stage" validate:"required"`                    // Pipeline stage
	CloseDate Date    `json:"close_date" yaml:"close_date" validate:"required"`          // Expected close date
	Amount    float64 `json:"amount,omitempty" yaml:"amount,omitempty" validate:"gte=0"` // Deal value
}

// ObjectType returns the opportunity object type.
func (o *Opportunity) ObjectType() ObjectType {
	return ObjectOpportunity
}

// Field returns the canonical string value of a filterable opportunity field.
func (o *Opportunity) Field(name string) (string, bool) {
	switch name {
	case FieldID:
		return o.ID, true
	case FieldName:
		return o.Name, true
	case FieldAccountID:
		return o.AccountID, true
	case FieldStage:
		return string(o.Stage), true
	case FieldCloseDate:
		return o.CloseDate.String(), true
	case FieldAmount:
		return strconv.FormatFloat(o.Amount, 'f', -1, 64), true
	default:
		return "", false
	}
}

// Clone returns an independent copy of the opportunity.
func (o *Opportunity) Clone() Record {
	c := *o
	return &c
}
