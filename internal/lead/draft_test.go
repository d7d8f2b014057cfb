package lead

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testMaxIndex = 36 // matches budget.Standard()

func TestOverlay_RoundTrip(t *testing.T) {
	orig := validDraft()

	raw, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}

	got := Overlay(Defaults(), raw, testMaxIndex)
	if diff := cmp.Diff(orig, got); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestOverlay_MalformedBudgetRange(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"single element", `{"budget_range":[4]}`},
		{"three elements", `{"budget_range":[1,2,3]}`},
		{"inverted", `{"budget_range":[20,5]}`},
		{"out of bounds", `{"budget_range":[0,999]}`},
		{"negative", `{"budget_range":[-2,5]}`},
		{"wrong type", `{"budget_range":"500K-1M"}`},
	}
	want := Defaults().BudgetRange

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlay(Defaults(), []byte(tc.raw), testMaxIndex)
			if got.BudgetRange != want {
				t.Errorf("budget range = %v, want default %v", got.BudgetRange, want)
			}
		})
	}
}

func TestOverlay_ValidBudgetRange(t *testing.T) {
	got := Overlay(Defaults(), []byte(`{"budget_range":[2,9]}`), testMaxIndex)
	if got.BudgetRange != [2]int{2, 9} {
		t.Errorf("budget range = %v, want [2 9]", got.BudgetRange)
	}
}

func TestOverlay_LegacyKeyIgnored(t *testing.T) {
	raw := `{"client_notes":"old insights text","buyer_name":"Sam"}`

	got := Overlay(Defaults(), []byte(raw), testMaxIndex)
	if got.AgentInsights != "" {
		t.Errorf("legacy client_notes leaked into agent insights: %q", got.AgentInsights)
	}
	if got.BuyerName != "Sam" {
		t.Errorf("buyer name = %q, want Sam", got.BuyerName)
	}
}

func TestOverlay_CorruptedSnapshot(t *testing.T) {
	got := Overlay(Defaults(), []byte(`{not json`), testMaxIndex)
	if diff := cmp.Diff(Defaults(), got); diff != "" {
		t.Errorf("corrupted snapshot did not fall back to defaults (-want +got):\n%s", diff)
	}
}

func TestOverlay_PerFieldTolerance(t *testing.T) {
	// One bad field must not poison the rest.
	raw := `{"buyer_name":42,"agent_email":"agent@harborline.com","pre_approved":true}`

	got := Overlay(Defaults(), []byte(raw), testMaxIndex)
	if got.BuyerName != "" {
		t.Errorf("mistyped buyer name applied: %q", got.BuyerName)
	}
	if got.AgentEmail != "agent@harborline.com" {
		t.Errorf("agent email = %q, want overlay applied", got.AgentEmail)
	}
	if !got.PreApproved {
		t.Error("pre_approved not applied")
	}
}

func TestOverlay_EmptyPropertyTypesKeepsDefault(t *testing.T) {
	got := Overlay(Defaults(), []byte(`{"property_types":[]}`), testMaxIndex)
	if len(got.PropertyTypes) == 0 {
		t.Error("empty persisted selection wiped the non-empty default")
	}
}
