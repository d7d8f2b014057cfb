// Package tui provides the interactive Bubble Tea intake form.
package tui

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/guidepost-labs/guidepost/internal/budget"
	"github.com/guidepost-labs/guidepost/internal/lead"
	"github.com/guidepost-labs/guidepost/internal/tui/theme"
)

const (
	minTerminalWidth = 60
	maxFormWidth     = 96
	chromeHeight     = 6 // header + footer lines around the form
)

// submitDoneMsg is sent when the webhook call finishes.
type submitDoneMsg struct {
	email string
	err   error
}

// App is the root Bubble Tea model: a huh form wrapped in the submit
// lifecycle views (submitting spinner, success, error).
type App struct {
	mgr       *lead.Manager
	submitter lead.Submitter
	table     budget.Table

	form *huh.Form
	vals formValues
	last formValues

	valErrs lead.FieldErrors

	spinner spinner.Model
	width   int
	height  int
}

// NewApp creates the intake form app around an initialized manager.
func NewApp(mgr *lead.Manager, submitter lead.Submitter) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := &App{
		mgr:       mgr,
		submitter: submitter,
		table:     mgr.Table(),
		spinner:   sp,
	}
	a.vals = valuesFromDraft(mgr.Draft())
	a.last = a.vals
	a.form = a.buildForm()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.form.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form = a.form.WithWidth(a.formWidth()).WithHeight(msg.Height - chromeHeight)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if a.mgr.Status() == lead.StatusIdle {
				a.mgr.FlushNow()
			}
			return a, tea.Quit
		}

		switch a.mgr.Status() {
		case lead.StatusSubmitting:
			// Submission is in flight; nothing to interact with.
			return a, nil

		case lead.StatusSuccess:
			switch msg.String() {
			case "n", "enter":
				a.mgr.Reset()
				a.resetForm()
				return a, a.form.Init()
			case "q", "esc":
				return a, tea.Quit
			}
			return a, nil

		case lead.StatusError:
			switch msg.String() {
			case "r", "enter":
				return a.startSubmit()
			case "e":
				// Back to the form; the draft is untouched after a failure.
				a.mgr.Reset()
				a.resetForm()
				return a, a.form.Init()
			case "q", "esc":
				a.mgr.FlushNow()
				return a, tea.Quit
			}
			return a, nil
		}

	case spinner.TickMsg:
		if a.mgr.Status() == lead.StatusSubmitting {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case submitDoneMsg:
		a.mgr.FinishSubmit(msg.email, msg.err)
		if a.mgr.Status() == lead.StatusSuccess {
			// Next form starts from defaults.
			a.resetForm()
		}
		return a, nil
	}

	if a.mgr.Status() != lead.StatusIdle {
		return a, nil
	}

	// Forward everything else to the form, then mirror its bound values
	// into the managed draft (which schedules the debounced snapshot).
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}
	a.syncDraft()

	switch a.form.State {
	case huh.StateCompleted:
		return a.startSubmit()
	case huh.StateAborted:
		a.mgr.FlushNow()
		return a, tea.Quit
	}

	return a, cmd
}

// syncDraft copies changed form values into the manager.
func (a *App) syncDraft() {
	if a.vals.equal(a.last) {
		return
	}
	v := a.vals
	a.mgr.Mutate(func(d *lead.Draft) {
		v.apply(d)
	})
	a.last = a.vals
}

// startSubmit validates and, if clean, kicks off the single webhook call in
// a command so the event loop stays responsive.
func (a *App) startSubmit() (tea.Model, tea.Cmd) {
	a.syncDraft()

	if errs := a.mgr.Validate(); len(errs) > 0 {
		// huh's per-field validation should have caught these; rebuild the
		// form and surface whatever slipped through in the footer.
		a.valErrs = errs
		a.resetForm()
		return a, a.form.Init()
	}
	a.valErrs = nil

	d, minV, maxV, err := a.mgr.BeginSubmit()
	if err != nil {
		a.mgr.FinishSubmit("", err)
		return a, nil
	}

	return a, tea.Batch(a.spinner.Tick, submitCmd(a.submitter, d, minV, maxV))
}

// resetForm rebuilds the huh form from the manager's current draft.
func (a *App) resetForm() {
	a.vals = valuesFromDraft(a.mgr.Draft())
	a.last = a.vals
	a.form = a.buildForm()
	if a.width > 0 {
		a.form = a.form.WithWidth(a.formWidth()).WithHeight(a.height - chromeHeight)
	}
}

func (a *App) formWidth() int {
	w := a.width
	if w > maxFormWidth {
		w = maxFormWidth
	}
	return w
}

// submitCmd runs the webhook call off the event loop.
func submitCmd(s lead.Submitter, d lead.Draft, budgetMin, budgetMax int64) tea.Cmd {
	return func() tea.Msg {
		err := s.Submit(context.Background(), d, budgetMin, budgetMax)
		return submitDoneMsg{email: d.AgentEmail, err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d)\n", a.width, minTerminalWidth)
	}

	switch a.mgr.Status() {
	case lead.StatusSubmitting:
		return a.viewSubmitting()
	case lead.StatusSuccess:
		return a.viewSuccess()
	case lead.StatusError:
		return a.viewError()
	}

	return a.viewForm()
}

func (a *App) viewForm() string {
	t := theme.Active

	title := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).
		Render("◈ guidepost") +
		lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(" · Buyer Guide Intake")

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(a.form.View())
	b.WriteString("\n")
	b.WriteString(a.viewFooter())
	return b.String()
}

// viewFooter renders display-only feedback: the live insights character
// counter and any validation messages that survived the form pass.
func (a *App) viewFooter() string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	count := utf8.RuneCountInString(a.vals.agentInsights)
	counterStyle := lipgloss.NewStyle().Foreground(t.Orange)
	if count >= lead.MinInsightsLen && count <= lead.MaxInsightsLen {
		counterStyle = lipgloss.NewStyle().Foreground(t.Green)
	}
	counter := counterStyle.Render(
		fmt.Sprintf("insights %d/%d (min %d)", count, lead.MaxInsightsLen, lead.MinInsightsLen))

	line := counter + dim.Render("  ·  drafts save after 5s of inactivity  ·  ctrl+c to quit")

	if len(a.valErrs) == 0 {
		return line
	}

	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	var b strings.Builder
	b.WriteString(line)
	for field, msg := range a.valErrs {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(fmt.Sprintf("  %s: %s", field, msg)))
	}
	return b.String()
}

func (a *App) viewSubmitting() string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	msg := a.spinner.View() +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Render(" Sending to the guide generator...")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card.Render(msg))
}

func (a *App) viewSuccess() string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Green).
		Padding(1, 3)

	head := lipgloss.NewStyle().Foreground(t.Green).Bold(true).
		Render("Market guide on its way!")
	body := lipgloss.NewStyle().Foreground(t.TextMuted).
		Render(fmt.Sprintf("Confirmation will arrive at %s", a.mgr.SubmittedTo()))
	hint := lipgloss.NewStyle().Foreground(t.TextDim).
		Render("n: start a new guide  ·  q: quit")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		card.Render(head+"\n\n"+body+"\n\n"+hint))
}

func (a *App) viewError() string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Padding(1, 3)

	head := lipgloss.NewStyle().Foreground(t.Red).Bold(true).
		Render("Submission failed")
	reason := ""
	if err := a.mgr.Err(); err != nil {
		reason = lipgloss.NewStyle().Foreground(t.TextMuted).Render(err.Error())
	}
	body := lipgloss.NewStyle().Foreground(t.TextMuted).
		Render("Your draft is saved; nothing needs re-entering.")
	hint := lipgloss.NewStyle().Foreground(t.TextDim).
		Render("r: retry  ·  e: edit form  ·  q: quit")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		card.Render(head+"\n\n"+reason+"\n"+body+"\n\n"+hint))
}
