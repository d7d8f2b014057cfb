package lead

import (
	"strings"
	"testing"

	"github.com/guidepost-labs/guidepost/internal/budget"
)

// validDraft returns a draft that passes every rule.
func validDraft() Draft {
	return Draft{
		AgentEmail:    "agent@harborline.com",
		BuyerName:     "Jordan Reyes",
		Situation:     "first_time_buyer",
		BuyerNotes:    "Prefers quiet streets.",
		Area:          "north_shore",
		BudgetRange:   [2]int{6, 16},
		Timeline:      "one_to_three_months",
		Bedrooms:      "3",
		Bathrooms:     "2",
		PropertyTypes: []string{"single_family", "townhouse"},
		TopPriority:   "schools",
		PreApproved:   true,
		AgentInsights: strings.Repeat("a", MinInsightsLen),
	}
}

func TestValidate_CleanDraft(t *testing.T) {
	errs := Validate(validDraft(), budget.Standard())
	if len(errs) != 0 {
		t.Fatalf("valid draft produced errors: %v", errs)
	}
}

func TestValidate_InsightsLengthBoundaries(t *testing.T) {
	table := budget.Standard()
	cases := []struct {
		length  int
		wantErr bool
	}{
		{199, true},
		{200, false},
		{1200, false},
		{1201, true},
	}
	for _, tc := range cases {
		d := validDraft()
		d.AgentInsights = strings.Repeat("x", tc.length)
		errs := Validate(d, table)
		if got := errs["agent_insights"] != ""; got != tc.wantErr {
			t.Errorf("insights length %d: error = %v, want %v (msg %q)",
				tc.length, got, tc.wantErr, errs["agent_insights"])
		}
	}
}

func TestValidate_PropertyTypes(t *testing.T) {
	table := budget.Standard()

	d := validDraft()
	d.PropertyTypes = nil
	if errs := Validate(d, table); errs["property_types"] == "" {
		t.Error("empty property types accepted")
	}

	d.PropertyTypes = []string{"condo"}
	if errs := Validate(d, table); errs["property_types"] != "" {
		t.Errorf("single-element selection rejected: %s", errs["property_types"])
	}

	d.PropertyTypes = []string{"castle"}
	if errs := Validate(d, table); errs["property_types"] == "" {
		t.Error("unknown property type accepted")
	}
}

func TestValidate_EmailShape(t *testing.T) {
	table := budget.Standard()
	for _, bad := range []string{"", "plainaddress", "no@tld", "two @spaces.com"} {
		d := validDraft()
		d.AgentEmail = bad
		if errs := Validate(d, table); errs["agent_email"] == "" {
			t.Errorf("email %q accepted", bad)
		}
	}

	d := validDraft()
	d.AgentEmail = "  agent@harborline.com  "
	if errs := Validate(d, table); errs["agent_email"] != "" {
		t.Errorf("email with surrounding whitespace rejected: %s", errs["agent_email"])
	}
}

func TestValidate_BudgetRange(t *testing.T) {
	table := budget.Standard()

	d := validDraft()
	d.BudgetRange = [2]int{10, 3}
	if errs := Validate(d, table); errs["budget_range"] == "" {
		t.Error("inverted budget range accepted")
	}

	d.BudgetRange = [2]int{0, table.MaxIndex() + 1}
	if errs := Validate(d, table); errs["budget_range"] == "" {
		t.Error("out-of-bounds budget range accepted")
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	// Defaults are deliberately incomplete: everything required should be
	// reported at once, not just the first failure.
	errs := Validate(Defaults(), budget.Standard())

	for _, field := range []string{
		"agent_email", "buyer_name", "situation", "area",
		"timeline", "bedrooms", "bathrooms", "top_priority", "agent_insights",
	} {
		if errs[field] == "" {
			t.Errorf("expected a violation for %s", field)
		}
	}
	if errs["property_types"] != "" {
		t.Errorf("default property types flagged: %s", errs["property_types"])
	}
	if errs["budget_range"] != "" {
		t.Errorf("default budget range flagged: %s", errs["budget_range"])
	}
}

func TestValidate_NotesTooLong(t *testing.T) {
	d := validDraft()
	d.BuyerNotes = strings.Repeat("n", MaxBuyerNotesLen+1)
	if errs := Validate(d, budget.Standard()); errs["buyer_notes"] == "" {
		t.Error("over-length notes accepted")
	}
}

func TestValidate_SecondaryPriorityOptional(t *testing.T) {
	table := budget.Standard()

	d := validDraft()
	d.SecondaryPriority = ""
	if errs := Validate(d, table); errs["secondary_priority"] != "" {
		t.Errorf("empty secondary priority rejected: %s", errs["secondary_priority"])
	}

	d.SecondaryPriority = "helipad"
	if errs := Validate(d, table); errs["secondary_priority"] == "" {
		t.Error("unknown secondary priority accepted")
	}
}
