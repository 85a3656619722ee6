// Package setup implements the interactive form behind `seedling setup`.
package setup

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/seedlinghq/seedling/internal/config"
	"github.com/seedlinghq/seedling/internal/tui/theme"
)

// Result holds the values collected by the setup form.
type Result struct {
	Name      string
	Precision int
}

// Model is the BubbleTea model for the setup form. It collects the
// default greeting name and the sum precision, prefilled from the
// currently effective config.
type Model struct {
	nameInput      textinput.Model
	precisionInput textinput.Model
	focusIndex     int // 0=name, 1=precision
	precisionError string
	width          int
	height         int
	isProject      bool
	cancelled      bool
	done           bool
	result         Result
}

// New creates the setup form prefilled from cfg.
func New(cfg *config.Config, isProject bool) *Model {
	styles := inputStyles(theme.Current())

	nameInput := textinput.New()
	nameInput.Placeholder = "World"
	nameInput.Prompt = ""
	nameInput.SetStyles(styles)
	nameInput.SetWidth(40)
	nameInput.SetValue(cfg.Name)

	precisionInput := textinput.New()
	precisionInput.Placeholder = "1"
	precisionInput.Prompt = ""
	precisionInput.SetStyles(styles)
	precisionInput.SetWidth(40)
	precisionInput.SetValue(strconv.Itoa(cfg.Precision))

	return &Model{
		nameInput:      nameInput,
		precisionInput: precisionInput,
		width:          80,
		height:         24,
		isProject:      isProject,
	}
}

// Run shows the setup form and returns the collected values.
// A nil result with nil error means the user cancelled.
func Run(cfg *config.Config, isProject bool) (*Result, error) {
	m := New(cfg, isProject)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("setup form failed: %w", err)
	}

	final, ok := finalModel.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if final.cancelled {
		return nil, nil
	}

	r := final.result
	return &r, nil
}

// Init focuses the name input.
func (m *Model) Init() tea.Cmd {
	m.focusIndex = 0
	return m.nameInput.Focus()
}

// Update handles messages for the setup form.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "down":
			m.cycleFocus(1)
			return m, nil

		case "shift+tab", "up":
			m.cycleFocus(-1)
			return m, nil

		case "enter":
			// Validate and finish. Inputs are prefilled, so enter on
			// an untouched form accepts the effective defaults.
			if m.validate() {
				m.result = Result{
					Name:      m.nameInput.Value(),
					Precision: m.precision(),
				}
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	// Forward remaining messages to the focused input.
	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.precisionInput, cmd = m.precisionInput.Update(msg)
		if _, ok := msg.(tea.KeyPressMsg); ok {
			m.precisionError = ""
		}
	}
	return m, cmd
}

// cycleFocus moves focus between the two inputs, wrapping around.
func (m *Model) cycleFocus(delta int) {
	m.focusIndex = (m.focusIndex + delta + 2) % 2
	if m.focusIndex == 0 {
		m.precisionInput.Blur()
		m.nameInput.Focus()
	} else {
		m.nameInput.Blur()
		m.precisionInput.Focus()
	}
}

func (m *Model) resizeInputs() {
	w := m.modalWidth() - 6
	if w < 20 {
		w = 20
	}
	m.nameInput.SetWidth(w)
	m.precisionInput.SetWidth(w)
}

func (m *Model) modalWidth() int {
	w := m.width - 10
	if w < 40 {
		w = 40
	}
	if w > 70 {
		w = 70
	}
	return w
}

// validate checks the precision input and sets the error message.
// The name input accepts anything, including an empty string.
func (m *Model) validate() bool {
	raw := strings.TrimSpace(m.precisionInput.Value())
	if raw == "" {
		m.precisionError = "Enter a number of decimal places"
		return false
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		m.precisionError = "Must be a whole number"
		return false
	}
	if n < 0 || n > 10 {
		m.precisionError = "Must be between 0 and 10"
		return false
	}

	m.precisionError = ""
	return true
}

// precision returns the parsed precision input.
func (m *Model) precision() int {
	n, err := strconv.Atoi(strings.TrimSpace(m.precisionInput.Value()))
	if err != nil {
		return 1
	}
	return n
}

// View renders the form centered in the terminal.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	modal := theme.Current().S().Box.Width(m.modalWidth()).Render(m.renderForm())
	placed := lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		modal,
	)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(placed).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderForm renders the form contents inside the modal.
func (m *Model) renderForm() string {
	s := theme.Current().S()
	var b strings.Builder

	target := config.GlobalPath()
	if m.isProject {
		target = config.ProjectPath()
	}

	b.WriteString(s.Title.Render("seedling setup"))
	b.WriteString("\n")
	b.WriteString(s.Label.Render("Writing " + target))
	b.WriteString("\n\n")

	b.WriteString(s.Label.Render("Default name for greetings"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")

	b.WriteString(s.Label.Render("Decimal places for sums (0-10)"))
	b.WriteString("\n")
	b.WriteString(m.precisionInput.View())
	b.WriteString("\n")

	if m.precisionError != "" {
		b.WriteString(s.Error.Render("✗ " + m.precisionError))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar(
		"tab", "next field",
		"enter", "confirm",
		"esc", "cancel",
	))

	return b.String()
}
