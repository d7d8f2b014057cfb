package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/guidepost-labs/guidepost/internal/lead"
)

func sampleDraft() lead.Draft {
	return lead.Draft{
		AgentEmail:    "agent@harborline.com",
		BuyerName:     "Jordan Reyes",
		Situation:     "relocating",
		BuyerNotes:    "Moving for work.",
		Area:          "east_village",
		BudgetRange:   [2]int{6, 16},
		Timeline:      "asap",
		Bedrooms:      "2",
		Bathrooms:     "1",
		PropertyTypes: []string{"condo"},
		TopPriority:   "commute",
		PreApproved:   false,
		AgentInsights: strings.Repeat("i", 200),
	}
}

func TestClient_Submit(t *testing.T) {
	var (
		requests int
		method   string
		ctype    string
		body     map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		method = r.Method
		ctype = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "harborline-realty", "s3cret")
	if err := c.Submit(context.Background(), sampleDraft(), 500_000, 1_000_000); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if requests != 1 {
		t.Fatalf("requests = %d, want exactly 1", requests)
	}
	if method != http.MethodPost {
		t.Errorf("method = %s, want POST", method)
	}
	if ctype != "application/json" {
		t.Errorf("Content-Type = %q", ctype)
	}

	checks := map[string]any{
		"brokerage_id":  "harborline-realty",
		"intake_secret": "s3cret",
		"source":        "guidepost_cli",
		"agent_email":   "agent@harborline.com",
		"buyer_name":    "Jordan Reyes",
		"situation":     "relocating",
		"area":          "east_village",
		"budget_min":    float64(500_000),
		"budget_max":    float64(1_000_000),
		"budget_label":  "$500K – $1M",
		"timeline":      "asap",
		"bedrooms":      "2",
		"bathrooms":     "1",
		"top_priority":  "commute",
		"pre_approved":  false,
	}
	for key, want := range checks {
		if got := body[key]; got != want {
			t.Errorf("payload[%q] = %v, want %v", key, got, want)
		}
	}
	if s, _ := body["submitted_at"].(string); s == "" {
		t.Error("payload missing submitted_at")
	}
}

func TestClient_SubmitNon2xx(t *testing.T) {
	statuses := []int{http.StatusBadRequest, http.StatusForbidden, http.StatusInternalServerError}
	for _, status := range statuses {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "rejected", status)
		}))

		c := NewClient(srv.URL, "b", "s")
		err := c.Submit(context.Background(), sampleDraft(), 500_000, 1_000_000)
		srv.Close()

		if err == nil {
			t.Errorf("status %d: Submit succeeded, want failure", status)
		}
	}
}

func TestClient_SubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, "b", "s")
	if err := c.Submit(context.Background(), sampleDraft(), 500_000, 1_000_000); err == nil {
		t.Error("Submit against a dead endpoint succeeded")
	}
}

func TestBuildPayload_StripsMarkup(t *testing.T) {
	d := sampleDraft()
	d.BuyerNotes = "<script>alert(1)</script>needs <b>two</b> parking spots"
	d.AgentInsights = "<p>" + strings.Repeat("i", 200) + "</p>"

	p := BuildPayload(d, 500_000, 1_000_000, "b", "s")

	if p.BuyerNotes != "needs two parking spots" {
		t.Errorf("buyer notes = %q, markup not stripped", p.BuyerNotes)
	}
	if strings.ContainsAny(p.AgentInsights, "<>") {
		t.Errorf("agent insights still contains markup: %q", p.AgentInsights)
	}
}

func TestBuildPayload_TrimsEmail(t *testing.T) {
	d := sampleDraft()
	d.AgentEmail = "  agent@harborline.com "

	p := BuildPayload(d, 500_000, 1_000_000, "b", "s")
	if p.AgentEmail != "agent@harborline.com" {
		t.Errorf("agent email = %q", p.AgentEmail)
	}
}
