package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"arcade/internal/router"
	"arcade/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// chromeHeight is the number of lines the shell draws around the screen
// (address bar with its border, status line, footer).
const chromeHeight = 4

// addressBarChrome is the width taken by the arrows, spacing and padding.
const addressBarChrome = 8

// Link is a leader binding that follows a route: SPC <Key> goes to Path.
type Link struct {
	Key   string
	Path  string
	Title string
}

// ActivatedMsg is delivered to a screen right before its Init each time its
// route becomes active.
type ActivatedMsg struct {
	Path     string
	Location string
	Matched  bool
}

// AppModel is the root model. It owns the router and the keybind system and
// delegates everything else to the active screen.
type AppModel struct {
	Router     *router.Router[Screen]
	KeyHandler *KeyHandler
	Log        *logrus.Entry

	Width     int
	Height    int
	Status    string
	StatusErr bool
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. Each link becomes a
// "SPC <key>" binding.
func NewAppModel(r *router.Router[Screen], links []Link, log *logrus.Entry) *AppModel {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("alt+left", Back(), "Back")
	reg.Bind("alt+right", Forward(), "Forward")
	for _, l := range links {
		reg.Bind("SPC "+l.Key, Navigate(l.Path), l.Title)
	}
	reg.Group("SPC n", "History")
	reg.Bind("SPC n b", Back(), "Back")
	reg.Bind("SPC n f", Forward(), "Forward")
	reg.Bind("SPC q", tea.Quit, "Quit")
	return &AppModel{
		Router:     r,
		KeyHandler: NewKeyHandler(reg),
		Log:        log,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cur := a.Router.Current()
	if cur.View == nil {
		return nil
	}
	return a.activate(cur)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case NavigateMsg:
		cmd := a.navigate(func(ctx context.Context) error {
			if msg.Replace {
				return a.Router.Replace(ctx, msg.Path)
			}
			return a.Router.Navigate(ctx, msg.Path)
		})
		if msg.Status != "" && !a.StatusErr {
			a.Status = msg.Status
		}
		return a, cmd
	case BackMsg:
		return a, a.navigate(a.Router.Back)
	case ForwardMsg:
		return a, a.navigate(a.Router.Forward)
	case StatusMsg:
		a.Status, a.StatusErr = msg.Text, msg.Err
		return a, nil
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		if cur := a.Router.Current(); cur.View != nil {
			return a, cur.View.Update(a.screenSize())
		}
		return a, nil
	case tea.KeyMsg:
		if consumed, cmd := a.handleKey(msg); consumed {
			return a, cmd
		}
	}

	cur := a.Router.Current()
	if cur.View == nil {
		return a, nil
	}
	return a, cur.View.Update(msg)
}

// handleKey runs the keybind system. While the screen captures text input
// only modifier chords (ctrl+, alt+) are looked up.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if a.KeyHandler == nil {
		return false, nil
	}
	s := msg.String()
	if cur := a.Router.Current(); cur.View != nil && capturing(cur.View) {
		if a.KeyHandler.LeaderWaiting {
			a.KeyHandler.Cancel()
		}
		if strings.HasPrefix(s, "ctrl+") || strings.HasPrefix(s, "alt+") {
			if cmd := a.KeyHandler.Registry.Lookup(s); cmd != nil {
				return true, cmd
			}
		}
		return false, nil
	}
	return a.KeyHandler.Handle(msg)
}

// navigate runs a router operation and, when the active route changed,
// activates the new screen.
func (a *appModelAdapter) navigate(op func(context.Context) error) tea.Cmd {
	before := a.Router.Current()
	if err := op(context.Background()); err != nil {
		a.Status, a.StatusErr = navErrorText(err), true
		a.Log.WithError(err).Debug("navigation refused")
		return nil
	}
	after := a.Router.Current()
	if after.Path == before.Path && after.View == before.View {
		return nil
	}
	a.Status, a.StatusErr = "", false
	return a.activate(after)
}

func (a *appModelAdapter) activate(cur router.Active[Screen]) tea.Cmd {
	cmds := []tea.Cmd{
		cur.View.Update(ActivatedMsg{Path: cur.Path, Location: cur.Location, Matched: cur.Matched}),
	}
	if a.Width > 0 {
		cmds = append(cmds, cur.View.Update(a.screenSize()))
	}
	cmds = append(cmds, cur.View.Init(), tea.SetWindowTitle("arcade "+cur.Location))
	return tea.Batch(cmds...)
}

func (a *appModelAdapter) screenSize() tea.WindowSizeMsg {
	h := a.Height - chromeHeight
	if h < 1 {
		h = 1
	}
	return tea.WindowSizeMsg{Width: a.Width, Height: h}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	cur := a.Router.Current()

	var b strings.Builder
	b.WriteString(a.addressBar(cur))
	b.WriteString("\n")
	if cur.View != nil {
		b.WriteString(cur.View.Render())
	}
	b.WriteString("\n")
	if a.Status != "" {
		style := Styles.Status
		if a.StatusErr {
			style = Styles.Error
		}
		b.WriteString(style.Render(a.Status) + "\n")
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString(RenderKeybindHelp(a.KeyHandler))
	} else {
		b.WriteString(Styles.Hint.Render("[SPC] commands · alt+←/→ back/forward · ctrl+c quit"))
	}
	return b.String()
}

// addressBar renders the back/forward arrows and the current location.
func (a *appModelAdapter) addressBar(cur router.Active[Screen]) string {
	back, fwd := Styles.NavOff.Render("◀"), Styles.NavOff.Render("▶")
	if a.Router.CanBack() {
		back = Styles.NavOn.Render("◀")
	}
	if a.Router.CanForward() {
		fwd = Styles.NavOn.Render("▶")
	}
	loc := cur.Location
	if loc == "" {
		loc = a.Router.Location()
	}
	style := Styles.AddressBar
	if a.Width > 0 {
		style = style.Width(a.Width)
		loc = textutil.TruncateLeft(loc, a.Width-addressBarChrome)
	}
	return style.Render(back + " " + fwd + "  " + loc)
}

func navErrorText(err error) string {
	var rerr *router.RouteError
	switch {
	case router.IsNotFound(err) && errors.As(err, &rerr):
		return fmt.Sprintf("no page at %s", rerr.Path)
	case errors.Is(err, router.ErrNoHistory) && errors.As(err, &rerr) && rerr.Op == "forward":
		return "nothing to go forward to"
	case errors.Is(err, router.ErrNoHistory):
		return "nothing to go back to"
	default:
		return err.Error()
	}
}
