package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sankalan/internal/content"
	"github.com/abhisek/sankalan/internal/events"
	"github.com/abhisek/sankalan/internal/export"
	"github.com/abhisek/sankalan/internal/navigator"
	"github.com/abhisek/sankalan/internal/router"
	"github.com/abhisek/sankalan/internal/screen"
	"github.com/abhisek/sankalan/internal/screens/category"
	"github.com/abhisek/sankalan/internal/screens/landing"
	"github.com/abhisek/sankalan/internal/screens/roadmap"
	"github.com/abhisek/sankalan/internal/ui/layout"
	"github.com/abhisek/sankalan/internal/ui/theme"
)

const eventsTimeout = 15 * time.Second

// Options configures the application.
type Options struct {
	Tree          *content.Tree
	ExportOptions []export.Option
	Events        *events.Client // nil disables the events panel
	Logger        *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	nav    *navigator.Navigator
	router *router.Router
	events *events.Client
	logger *slog.Logger

	width  int
	height int

	status    string
	statusErr bool
}

// newAppModel wires the navigator, router and screens over opts.Tree.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Tree == nil {
		return AppModel{}, errors.New("app: content tree is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var r *router.Router
	nav := navigator.New(opts.Tree,
		navigator.WithLogger(logger),
		navigator.WithScrollReset(func() { r.RequestScrollReset() }),
	)

	exportOpts := append([]export.Option{export.WithLogger(logger)}, opts.ExportOptions...)
	exporter := export.New(nav, exportOpts...)

	r = router.New(func(mode navigator.Mode, v navigator.View) screen.Screen {
		switch mode {
		case navigator.ModeCategoryView:
			return category.New(nav, v.Category)
		case navigator.ModeVisualization:
			return roadmap.New(nav, exporter, v.Roadmap)
		default:
			return landing.New(nav)
		}
	}, nav.View())

	return AppModel{
		nav:    nav,
		router: r,
		events: opts.Events,
		logger: logger,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	if m.events == nil {
		return nil
	}
	client := m.events
	logger := m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), eventsTimeout)
		defer cancel()
		evs, err := client.Fetch(ctx)
		if err != nil {
			logger.Warn("fetch events failed", "error", err)
		}
		return router.BroadcastMsg{Msg: landing.EventsLoadedMsg{Events: evs, Err: err}}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.NavigatedMsg:
		// Commands finish in any order, so the snapshot in msg may be
		// older than the navigator.
		m.status = ""
		return m, m.router.Sync(m.nav.View())

	case router.StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.Err
		if msg.Err {
			m.logger.Warn("status", "message", msg.Text)
		}
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// handleKey processes the global keys. Screens that capture input get
// everything except ctrl+c.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit, true
	}
	if ic, ok := m.router.Active().(screen.InputCapturer); ok && ic.CapturesInput() {
		return nil, false
	}

	switch key {
	case "q":
		if m.nav.Mode() == navigator.ModeLanding {
			return tea.Quit, true
		}
	case "esc":
		if m.nav.Mode() == navigator.ModeLanding {
			return nil, true
		}
		return router.Transition(m.nav, m.nav.Back()), true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		cats := m.nav.Tree().Categories()
		if idx >= len(cats) {
			return nil, true
		}
		return router.Transition(m.nav, m.nav.SelectCategory(cats[idx])), true
	}
	return nil, false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.nav.View().Breadcrumb(), m.width)

	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = theme.StatusErr.Render(m.status)
		} else {
			status = theme.StatusOK.Render(m.status)
		}
	}
	footer := layout.RenderFooter(hints, status, m.width)

	contentHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
