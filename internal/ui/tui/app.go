package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/firmware"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/clock"
	"github.com/Mohammed-Abdelhafiez/Arduino-dice-roller/internal/infra/simboard"
)

const refreshInterval = 50 * time.Millisecond

type screen int

const (
	screenHome screen = iota
	screenPlay
	screenPins
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	board  *simboard.Board
	cancel context.CancelFunc
	snap   simboard.Snapshot
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{"Play", "Power up the board: 1 and 2 press the player buttons"},
		menuItem{"Pin map", "Show the effective wiring"},
		menuItem{"Quit", "Exit the simulator"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Dice Roller"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tickMsg:
		if m.scr != screenPlay || m.board == nil {
			return m, nil
		}
		m.snap = m.board.Snapshot(m.deps.Config.Pins)
		return m, tickCmd()
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.stopBoard()
		return m, tea.Quit

	case "q":
		if m.scr == screenHome {
			return m, tea.Quit
		}
		m.stopBoard()
		m.scr = screenHome
		return m, nil

	case "esc", "b":
		if m.scr != screenHome {
			m.stopBoard()
			m.scr = screenHome
		}
		return m, nil

	case "1":
		if m.scr == screenPlay && m.board != nil {
			m.board.Press(m.deps.Config.Pins.Button1)
		}
		return m, nil

	case "2":
		if m.scr == screenPlay && m.board != nil {
			m.board.Press(m.deps.Config.Pins.Button2)
		}
		return m, nil

	case "enter":
		if m.scr != screenHome {
			return m, nil
		}
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		switch it.title {
		case "Play":
			return m.startBoard()
		case "Pin map":
			m.scr = screenPins
			return m, nil
		case "Quit":
			return m, tea.Quit
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

// startBoard powers up a fresh simulated board and runs the firmware against
// it on the host clock, so the animation plays in real time.
func (m model) startBoard() (tea.Model, tea.Cmd) {
	board := simboard.New()
	ctrl := firmware.New(m.deps.Config, firmware.Deps{
		Pins:   board,
		Tone:   board,
		Clock:  clock.Host{},
		Noise:  board,
		Logger: m.deps.Logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = ctrl.Run(ctx) }()

	m.board = board
	m.cancel = cancel
	m.snap = board.Snapshot(m.deps.Config.Pins)
	m.scr = screenPlay
	return m, tickCmd()
}

func (m *model) stopBoard() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.board = nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) View() string {
	switch m.scr {
	case screenPlay:
		return m.viewPlay()
	case screenPins:
		return m.viewPins()
	default:
		return m.viewHome()
	}
}

func (m model) viewHome() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Dice Roller"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Two-player electronic dice on a simulated board"))
	b.WriteString("\n\n")
	b.WriteString(m.menu.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("enter: select • q: quit"))
	return b.String()
}

func (m model) viewPlay() string {
	die1 := m.theme.Die.Render(renderDigit(m.snap.Die1))
	die2 := m.theme.Die.Render(renderDigit(m.snap.Die2))
	dice := lipgloss.JoinHorizontal(lipgloss.Top, die1, "   ", die2)

	buzzer := "buzzer: silent"
	if m.snap.ToneOn {
		buzzer = fmt.Sprintf("buzzer: ♪ %d Hz", m.snap.ToneFreq)
	}

	buttons := fmt.Sprintf("player 1 [%s]   player 2 [%s]",
		pressedMark(m.snap.Button1Held), pressedMark(m.snap.Button2Held))

	body := lipgloss.JoinVertical(lipgloss.Left,
		dice,
		"",
		m.theme.Buzzer.Render(buzzer),
		m.theme.Subtitle.Render(buttons),
	)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Board"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Card.Render(body))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("1/2: press a player button • esc: back • ctrl+c: quit"))
	return b.String()
}

func (m model) viewPins() string {
	p := m.deps.Config.Pins
	lines := []string{
		fmt.Sprintf("Die 1 BCD (A,B,C): %d, %d, %d", p.Die1[0], p.Die1[1], p.Die1[2]),
		fmt.Sprintf("Die 2 BCD (A,B,C): %d, %d, %d", p.Die2[0], p.Die2[1], p.Die2[2]),
		fmt.Sprintf("Buzzer:            %d", p.Buzzer),
		fmt.Sprintf("Player 1 button:   %d (active low)", p.Button1),
		fmt.Sprintf("Player 2 button:   %d (active low)", p.Button2),
		fmt.Sprintf("Noise channel:     A%d", p.Noise),
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Pin map"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Card.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("esc: back • q: home"))
	return b.String()
}

func pressedMark(held bool) string {
	if held {
		return "●"
	}
	return " "
}
