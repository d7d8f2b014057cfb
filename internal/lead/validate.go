package lead

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/guidepost-labs/guidepost/internal/budget"
)

// FieldErrors maps a draft field name to a human-readable message for every
// violated rule. It implements error so a failed validation can travel up
// through the submit path.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	return fmt.Sprintf("%d invalid field(s): %s", len(e), strings.Join(fields, ", "))
}

// emailRe is a shape check, not an RFC 5322 parser. The webhook service
// bounces anything undeliverable anyway.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the shape of the agent email field. Shared between
// the form's inline validation and the full draft validation.
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("Agent email is required")
	}
	if !emailRe.MatchString(s) {
		return errors.New("Enter a valid email address")
	}
	return nil
}

// Validate checks every field of the draft against the intake rules and
// collects all violations. It never short-circuits: the caller gets one
// message per violated field so the form can surface them inline together.
func Validate(d Draft, table budget.Table) FieldErrors {
	errs := make(FieldErrors)

	if err := ValidateEmail(d.AgentEmail); err != nil {
		errs["agent_email"] = err.Error()
	}

	name := strings.TrimSpace(d.BuyerName)
	if name == "" {
		errs["buyer_name"] = "Buyer name is required"
	} else if utf8.RuneCountInString(name) > MaxBuyerNameLen {
		errs["buyer_name"] = fmt.Sprintf("Buyer name must be %d characters or fewer", MaxBuyerNameLen)
	}

	if !inSet(d.Situation, Situations) {
		errs["situation"] = "Select the buyer's situation"
	}

	if utf8.RuneCountInString(d.BuyerNotes) > MaxBuyerNotesLen {
		errs["buyer_notes"] = fmt.Sprintf("Notes must be %d characters or fewer", MaxBuyerNotesLen)
	}

	if !inSet(d.Area, Areas) {
		errs["area"] = "Select an area"
	}

	lo, hi := d.BudgetRange[0], d.BudgetRange[1]
	if lo < 0 || hi > table.MaxIndex() || lo > hi {
		errs["budget_range"] = "Select a valid budget range"
	}

	if !inSet(d.Timeline, Timelines) {
		errs["timeline"] = "Select a purchase timeline"
	}
	if !inSet(d.Bedrooms, BedroomOptions) {
		errs["bedrooms"] = "Select a bedroom count"
	}
	if !inSet(d.Bathrooms, BathroomOptions) {
		errs["bathrooms"] = "Select a bathroom count"
	}

	if len(d.PropertyTypes) == 0 {
		errs["property_types"] = "Select at least one property type"
	} else {
		set := optionSet(PropertyTypeOptions)
		for _, pt := range d.PropertyTypes {
			if _, ok := set[pt]; !ok {
				errs["property_types"] = fmt.Sprintf("Unknown property type %q", pt)
				break
			}
		}
	}

	if !inSet(d.TopPriority, Priorities) {
		errs["top_priority"] = "Select the buyer's top priority"
	}
	// Secondary priority is optional but must be a known value when set.
	if d.SecondaryPriority != "" && !inSet(d.SecondaryPriority, Priorities) {
		errs["secondary_priority"] = "Select a valid secondary priority"
	}

	insights := utf8.RuneCountInString(d.AgentInsights)
	switch {
	case insights < MinInsightsLen:
		errs["agent_insights"] = fmt.Sprintf("Agent insights needs at least %d characters (%d so far)", MinInsightsLen, insights)
	case insights > MaxInsightsLen:
		errs["agent_insights"] = fmt.Sprintf("Agent insights must be %d characters or fewer", MaxInsightsLen)
	}

	return errs
}

func inSet(v string, opts []Option) bool {
	_, ok := optionSet(opts)[v]
	return ok
}
