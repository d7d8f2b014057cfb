package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"

	"github.com/guidepost-labs/guidepost/internal/budget"
	"github.com/guidepost-labs/guidepost/internal/lead"
)

// formValues holds the huh field bindings. The form mutates these; the app
// mirrors changes into the managed draft after every update.
type formValues struct {
	agentEmail        string
	buyerName         string
	situation         string
	buyerNotes        string
	area              string
	budgetLo          int
	budgetHi          int
	timeline          string
	bedrooms          string
	bathrooms         string
	propertyTypes     []string
	topPriority       string
	secondaryPriority string
	preApproved       bool
	agentInsights     string
}

func valuesFromDraft(d lead.Draft) formValues {
	return formValues{
		agentEmail:        d.AgentEmail,
		buyerName:         d.BuyerName,
		situation:         d.Situation,
		buyerNotes:        d.BuyerNotes,
		area:              d.Area,
		budgetLo:          d.BudgetRange[0],
		budgetHi:          d.BudgetRange[1],
		timeline:          d.Timeline,
		bedrooms:          d.Bedrooms,
		bathrooms:         d.Bathrooms,
		propertyTypes:     slices.Clone(d.PropertyTypes),
		topPriority:       d.TopPriority,
		secondaryPriority: d.SecondaryPriority,
		preApproved:       d.PreApproved,
		agentInsights:     d.AgentInsights,
	}
}

func (v formValues) apply(d *lead.Draft) {
	d.AgentEmail = v.agentEmail
	d.BuyerName = v.buyerName
	d.Situation = v.situation
	d.BuyerNotes = v.buyerNotes
	d.Area = v.area
	d.BudgetRange = [2]int{v.budgetLo, v.budgetHi}
	d.Timeline = v.timeline
	d.Bedrooms = v.bedrooms
	d.Bathrooms = v.bathrooms
	d.PropertyTypes = slices.Clone(v.propertyTypes)
	d.TopPriority = v.topPriority
	d.SecondaryPriority = v.secondaryPriority
	d.PreApproved = v.preApproved
	d.AgentInsights = v.agentInsights
}

func (v formValues) equal(o formValues) bool {
	return v.agentEmail == o.agentEmail &&
		v.buyerName == o.buyerName &&
		v.situation == o.situation &&
		v.buyerNotes == o.buyerNotes &&
		v.area == o.area &&
		v.budgetLo == o.budgetLo &&
		v.budgetHi == o.budgetHi &&
		v.timeline == o.timeline &&
		v.bedrooms == o.bedrooms &&
		v.bathrooms == o.bathrooms &&
		slices.Equal(v.propertyTypes, o.propertyTypes) &&
		v.topPriority == o.topPriority &&
		v.secondaryPriority == o.secondaryPriority &&
		v.preApproved == o.preApproved &&
		v.agentInsights == o.agentInsights
}

func selectOptions(opts []lead.Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, o := range opts {
		out[i] = huh.NewOption(o.Label, o.Value)
	}
	return out
}

func budgetOptions(table budget.Table) []huh.Option[int] {
	out := make([]huh.Option[int], len(table))
	for i, v := range table {
		out[i] = huh.NewOption(budget.Format(v), i)
	}
	return out
}

func requireChoice(msg string) func(string) error {
	return func(v string) error {
		if v == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// buildForm constructs the huh intake form bound to a.vals. Per-field
// Validate funcs mirror lead.Validate so problems surface inline while the
// agent is still on the field; lead.Validate remains the authority before
// submit.
func (a *App) buildForm() *huh.Form {
	v := &a.vals

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your email").
				Placeholder("agent@harborline.com").
				Value(&v.agentEmail).
				Validate(lead.ValidateEmail),
			huh.NewInput().
				Title("Buyer name").
				CharLimit(lead.MaxBuyerNameLen).
				Value(&v.buyerName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("buyer name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Buyer's situation").
				Options(selectOptions(lead.Situations)...).
				Value(&v.situation).
				Validate(requireChoice("select the buyer's situation")),
		).Title("Agent & Buyer"),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Area").
				Options(selectOptions(lead.Areas)...).
				Value(&v.area).
				Validate(requireChoice("select an area")),
			huh.NewMultiSelect[string]().
				Title("Property types").
				Options(selectOptions(lead.PropertyTypeOptions)...).
				Value(&v.propertyTypes).
				Validate(func(sel []string) error {
					if len(sel) == 0 {
						return errors.New("select at least one property type")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Bedrooms").
				Options(selectOptions(lead.BedroomOptions)...).
				Value(&v.bedrooms).
				Validate(requireChoice("select a bedroom count")),
			huh.NewSelect[string]().
				Title("Bathrooms").
				Options(selectOptions(lead.BathroomOptions)...).
				Value(&v.bathrooms).
				Validate(requireChoice("select a bathroom count")),
		).Title("Property"),

		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Budget floor").
				Options(budgetOptions(a.table)...).
				Value(&v.budgetLo),
			huh.NewSelect[int]().
				Title("Budget ceiling").
				Options(budgetOptions(a.table)...).
				Value(&v.budgetHi).
				Validate(func(hi int) error {
					if hi < v.budgetLo {
						return errors.New("ceiling must be at or above the floor")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Purchase timeline").
				Options(selectOptions(lead.Timelines)...).
				Value(&v.timeline).
				Validate(requireChoice("select a timeline")),
			huh.NewConfirm().
				Title("Pre-approved for financing?").
				Affirmative("Yes").
				Negative("Not yet").
				Value(&v.preApproved),
		).Title("Budget & Timeline"),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Top priority").
				Options(selectOptions(lead.Priorities)...).
				Value(&v.topPriority).
				Validate(requireChoice("select the buyer's top priority")),
			huh.NewSelect[string]().
				Title("Secondary priority (optional)").
				Options(append([]huh.Option[string]{huh.NewOption("None", "")},
					selectOptions(lead.Priorities)...)...).
				Value(&v.secondaryPriority),
			huh.NewText().
				Title("Buyer notes").
				Description(fmt.Sprintf("Anything worth knowing, up to %d characters.", lead.MaxBuyerNotesLen)).
				CharLimit(lead.MaxBuyerNotesLen).
				Lines(3).
				Value(&v.buyerNotes),
			huh.NewText().
				Title("Agent insights").
				Description(fmt.Sprintf("The heart of the guide. %d-%d characters.", lead.MinInsightsLen, lead.MaxInsightsLen)).
				CharLimit(lead.MaxInsightsLen).
				Lines(6).
				Value(&v.agentInsights).
				Validate(func(s string) error {
					n := utf8.RuneCountInString(s)
					if n < lead.MinInsightsLen {
						return fmt.Errorf("needs at least %d characters (%d so far)", lead.MinInsightsLen, n)
					}
					return nil
				}),
		).Title("Priorities & Notes"),
	).WithShowHelp(true)
}
