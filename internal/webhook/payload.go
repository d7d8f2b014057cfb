package webhook

import (
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/guidepost-labs/guidepost/internal/budget"
	"github.com/guidepost-labs/guidepost/internal/lead"
)

// Payload is the submission body: a derived, immutable snapshot built only
// at submit time. Key names are stable snake_case; the downstream automation
// templates against them, so renaming any of these is a breaking change.
type Payload struct {
	BrokerageID  string `json:"brokerage_id"`
	IntakeSecret string `json:"intake_secret"`
	Source       string `json:"source"`
	SubmittedAt  string `json:"submitted_at"`

	AgentEmail        string   `json:"agent_email"`
	BuyerName         string   `json:"buyer_name"`
	Situation         string   `json:"situation"`
	BuyerNotes        string   `json:"buyer_notes"`
	Area              string   `json:"area"`
	BudgetMin         int64    `json:"budget_min"`
	BudgetMax         int64    `json:"budget_max"`
	BudgetLabel       string   `json:"budget_label"`
	Timeline          string   `json:"timeline"`
	Bedrooms          string   `json:"bedrooms"`
	Bathrooms         string   `json:"bathrooms"`
	PropertyTypes     []string `json:"property_types"`
	TopPriority       string   `json:"top_priority"`
	SecondaryPriority string   `json:"secondary_priority"`
	PreApproved       bool     `json:"pre_approved"`
	AgentInsights     string   `json:"agent_insights"`
}

// payloadSource identifies this client to the automation pipeline.
const payloadSource = "guidepost_cli"

// textPolicy strips all markup from free-text fields. The webhook feeds the
// values into an email template, so they must arrive as plain text.
var textPolicy = bluemonday.StrictPolicy()

// BuildPayload assembles the submission body from a validated draft and its
// resolved budget values.
func BuildPayload(d lead.Draft, budgetMin, budgetMax int64, brokerageID, intakeSecret string) Payload {
	return Payload{
		BrokerageID:  brokerageID,
		IntakeSecret: intakeSecret,
		Source:       payloadSource,
		SubmittedAt:  time.Now().UTC().Format(time.RFC3339),

		AgentEmail:        strings.TrimSpace(d.AgentEmail),
		BuyerName:         cleanText(d.BuyerName),
		Situation:         d.Situation,
		BuyerNotes:        cleanText(d.BuyerNotes),
		Area:              d.Area,
		BudgetMin:         budgetMin,
		BudgetMax:         budgetMax,
		BudgetLabel:       budget.Format(budgetMin) + " – " + budget.Format(budgetMax),
		Timeline:          d.Timeline,
		Bedrooms:          d.Bedrooms,
		Bathrooms:         d.Bathrooms,
		PropertyTypes:     d.PropertyTypes,
		TopPriority:       d.TopPriority,
		SecondaryPriority: d.SecondaryPriority,
		PreApproved:       d.PreApproved,
		AgentInsights:     cleanText(d.AgentInsights),
	}
}

func cleanText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}
