package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weatherwidget/backend/internal/domain"
	"github.com/weatherwidget/backend/internal/widget"
)

type searchDoneMsg struct {
	state domain.ViewState
}

// App is the terminal rendering of a widget
type App struct {
	ctx    context.Context
	widget *widget.Widget
	input  textinput.Model
	width  int
	height int
}

func NewApp(ctx context.Context, w *widget.Widget) *App {
	ti := textinput.New()
	ti.Placeholder = "Enter city name..."
	ti.CharLimit = 100
	ti.Width = 30
	ti.Focus()

	return &App{
		ctx:    ctx,
		widget: w,
		input:  ti,
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			return a, a.search()
		}
		// input is disabled while a lookup is running
		if a.widget.State().Loading {
			return a, nil
		}

	case searchDoneMsg:
		return a, a.input.Focus()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.widget.SetQuery(a.input.Value())
	return a, cmd
}

// search starts a lookup unless one is already running
func (a *App) search() tea.Cmd {
	if a.widget.State().Loading {
		return nil
	}
	a.widget.SetQuery(a.input.Value())
	city, err := a.widget.Begin()
	if err != nil {
		return nil
	}
	a.input.Blur()

	w, ctx := a.widget, a.ctx
	return func() tea.Msg {
		return searchDoneMsg{state: w.Resolve(ctx, city)}
	}
}

func (a *App) View() string {
	state := a.widget.State()

	button := "[ Search ]"
	if state.Loading {
		button = "[ Loading... ]"
	}

	sections := []string{
		TitleStyle.Render("Weather Forecast"),
		lipgloss.JoinHorizontal(lipgloss.Center, a.input.View(), "  ", button),
	}
	if state.Error != "" {
		sections = append(sections, "", ErrorStyle.Render(state.Error))
	}
	sections = append(sections, "", PanelStyle(state.Background()).Render(renderDetails(state.Weather)))
	sections = append(sections, "", HelpStyle.Render("Enter to search, Esc to quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func renderDetails(v domain.WeatherView) string {
	if v.IsEmpty() {
		return HelpStyle.Render("No city selected")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", LabelStyle.Render(v.City))
	fmt.Fprintf(&b, "%d°C\n", v.Temp)
	fmt.Fprintf(&b, "%s\n\n", v.Description)
	fmt.Fprintf(&b, "%s %d%%\n", LabelStyle.Render("Humidity:"), v.Humidity)
	fmt.Fprintf(&b, "%s %g m/s\n", LabelStyle.Render("Wind:"), v.WindSpeed)
	fmt.Fprintf(&b, "%s %d°C\n", LabelStyle.Render("Feels Like:"), v.FeelsLike)
	fmt.Fprintf(&b, "%s %d hPa", LabelStyle.Render("Pressure:"), v.Pressure)
	if v.IsMock {
		fmt.Fprintf(&b, "\n\n%s", HelpStyle.Render("demo data"))
	}
	return b.String()
}
