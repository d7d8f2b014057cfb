// Package lead holds the intake form draft, its validation rules, and the
// manager that owns the submit lifecycle and debounced draft persistence.
package lead

import (
	"encoding/json"
	"log"
)

// Field length limits. Lengths are counted in runes, not bytes.
const (
	MaxBuyerNameLen  = 120
	MaxBuyerNotesLen = 600
	MinInsightsLen   = 200
	MaxInsightsLen   = 1200
)

// legacyInsightsKey is the pre-rename persisted key for agent insights.
// Drafts written before the rename carry it; it is ignored on rehydration
// rather than overlaid onto the wrong field.
const legacyInsightsKey = "client_notes"

// Draft is the mutable record of all intake form field values. It is
// snapshotted to local storage on a debounce timer and rehydrated at startup.
type Draft struct {
	AgentEmail        string   `json:"agent_email"`
	BuyerName         string   `json:"buyer_name"`
	Situation         string   `json:"situation"`
	BuyerNotes        string   `json:"buyer_notes"`
	Area              string   `json:"area"`
	BudgetRange       [2]int   `json:"budget_range"`
	Timeline          string   `json:"timeline"`
	Bedrooms          string   `json:"bedrooms"`
	Bathrooms         string   `json:"bathrooms"`
	PropertyTypes     []string `json:"property_types"`
	TopPriority       string   `json:"top_priority"`
	SecondaryPriority string   `json:"secondary_priority"`
	PreApproved       bool     `json:"pre_approved"`
	AgentInsights     string   `json:"agent_insights"`
}

// Defaults returns the hard-coded initial draft.
// The default budget range spans $500K to $1M in the standard step table.
func Defaults() Draft {
	return Draft{
		BudgetRange:   [2]int{6, 16},
		PropertyTypes: []string{"single_family"},
	}
}

// Option is a selectable enum value with its display label.
type Option struct {
	Value string
	Label string
}

// Situations are the buyer situation choices.
var Situations = []Option{
	{"first_time_buyer", "First-time buyer"},
	{"upsizing", "Upsizing"},
	{"downsizing", "Downsizing"},
	{"relocating", "Relocating"},
	{"investor", "Investor"},
}

// Areas are the neighborhoods the brokerage covers.
var Areas = []Option{
	{"downtown_waterfront", "Downtown / Waterfront"},
	{"north_shore", "North Shore"},
	{"east_village", "East Village"},
	{"westbrook", "Westbrook"},
	{"maple_heights", "Maple Heights"},
	{"harbor_hills", "Harbor Hills"},
	{"outer_suburbs", "Outer Suburbs"},
}

// Timelines are the purchase timeline choices.
var Timelines = []Option{
	{"asap", "ASAP"},
	{"one_to_three_months", "1-3 months"},
	{"three_to_six_months", "3-6 months"},
	{"six_plus_months", "6+ months"},
	{"just_browsing", "Just browsing"},
}

// BedroomOptions are the minimum bedroom count choices.
var BedroomOptions = []Option{
	{"any", "Any"},
	{"1", "1+"},
	{"2", "2+"},
	{"3", "3+"},
	{"4", "4+"},
	{"5", "5+"},
}

// BathroomOptions are the minimum bathroom count choices.
var BathroomOptions = []Option{
	{"any", "Any"},
	{"1", "1+"},
	{"2", "2+"},
	{"3", "3+"},
}

// PropertyTypeOptions are the property type choices (multi-select).
var PropertyTypeOptions = []Option{
	{"single_family", "Single-family home"},
	{"condo", "Condo"},
	{"townhouse", "Townhouse"},
	{"multi_family", "Multi-family"},
	{"land", "Land / Lot"},
}

// Priorities are the buyer priority choices.
var Priorities = []Option{
	{"schools", "School district"},
	{"commute", "Commute"},
	{"space", "Space / Square footage"},
	{"walkability", "Walkability"},
	{"investment_value", "Investment value"},
	{"move_in_ready", "Move-in ready"},
}

func optionSet(opts []Option) map[string]struct{} {
	set := make(map[string]struct{}, len(opts))
	for _, o := range opts {
		set[o.Value] = struct{}{}
	}
	return set
}

// Overlay applies a persisted draft snapshot on top of the defaults,
// field by field. A malformed value leaves that field at its default rather
// than aborting the whole rehydration. The budget range must decode to an
// ordered two-element pair within [0, maxIndex] or the default pair is kept.
// The legacy client_notes key is skipped entirely.
func Overlay(def Draft, raw []byte, maxIndex int) Draft {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		log.Printf("lead: discarding corrupted draft snapshot: %v", err)
		return def
	}

	// The renamed legacy field must not be overlaid onto anything.
	delete(fields, legacyInsightsKey)

	d := def
	overlayString := func(key string, dst *string) {
		if v, ok := fields[key]; ok {
			var s string
			if err := json.Unmarshal(v, &s); err == nil {
				*dst = s
			}
		}
	}

	overlayString("agent_email", &d.AgentEmail)
	overlayString("buyer_name", &d.BuyerName)
	overlayString("situation", &d.Situation)
	overlayString("buyer_notes", &d.BuyerNotes)
	overlayString("area", &d.Area)
	overlayString("timeline", &d.Timeline)
	overlayString("bedrooms", &d.Bedrooms)
	overlayString("bathrooms", &d.Bathrooms)
	overlayString("top_priority", &d.TopPriority)
	overlayString("secondary_priority", &d.SecondaryPriority)
	overlayString("agent_insights", &d.AgentInsights)

	if v, ok := fields["pre_approved"]; ok {
		var b bool
		if err := json.Unmarshal(v, &b); err == nil {
			d.PreApproved = b
		}
	}

	if v, ok := fields["property_types"]; ok {
		var types []string
		if err := json.Unmarshal(v, &types); err == nil && len(types) > 0 {
			d.PropertyTypes = types
		}
	}

	if v, ok := fields["budget_range"]; ok {
		// Decode into a slice first: a [2]int would silently accept a
		// single-element array by zero-filling the second slot.
		var pair []int
		if err := json.Unmarshal(v, &pair); err == nil &&
			len(pair) == 2 &&
			pair[0] >= 0 && pair[1] <= maxIndex && pair[0] <= pair[1] {
			d.BudgetRange = [2]int{pair[0], pair[1]}
		}
	}

	return d
}
