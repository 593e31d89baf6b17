package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vhernadi/dalek/internal/core"
	"github.com/vhernadi/dalek/internal/worldmap"
)

// MapSelection holds the user's map choice from the menu.
type MapSelection struct {
	Name    string
	MapText string // Empty means the bundled default map
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuItemStyle   = lipgloss.NewStyle()
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// MapMenuModel is the map picker shown before a session starts.
// Besides the bundled maps it offers a free-form path prompt; a map
// that fails validation is reported with the exact loader error and
// the player stays in the menu.
type MapMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper

	entries []menuEntry
	input   textinput.Model
	typing  bool
	loadErr string

	selection MapSelection
	choosing  bool
	quitting  bool
}

type menuEntry struct {
	label string
	path  string // Empty for the bundled default, "-" for the custom prompt
}

const customEntryPath = "-"

// NewMapMenuModel creates the map selection model, listing every *.map
// file found under mapsDir alongside the bundled default.
func NewMapMenuModel(width, height int, mapsDir string) MapMenuModel {
	entries := []menuEntry{{label: "Bundled default map"}}
	for _, path := range discoverMaps(mapsDir) {
		entries = append(entries, menuEntry{
			label: strings.TrimSuffix(filepath.Base(path), ".map"),
			path:  path,
		})
	}
	entries = append(entries, menuEntry{label: "Custom map file...", path: customEntryPath})

	input := textinput.New()
	input.Placeholder = "path/to/map.map"
	input.CharLimit = 256
	input.Width = 48

	return MapMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		entries:   entries,
		input:     input,
		choosing:  true,
	}
}

// discoverMaps returns the *.map files under dir, sorted by name.
func discoverMaps(dir string) []string {
	if dir == "" {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.map"))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// Init initializes the model.
func (m MapMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MapMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.typing {
			return m.handleTypingKey(msg)
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MapMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m.selectEntry()
	}
	return m, nil
}

func (m MapMenuModel) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.typing = false
		m.input.Blur()
		return m, nil
	case "enter":
		return m.loadPath(strings.TrimSpace(m.input.Value()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m MapMenuModel) selectEntry() (tea.Model, tea.Cmd) {
	entry := m.entries[m.cursor]
	switch entry.path {
	case "":
		m.selection = MapSelection{Name: entry.label}
		m.choosing = false
		return m, tea.Quit
	case customEntryPath:
		m.typing = true
		m.loadErr = ""
		m.input.Focus()
		return m, textinput.Blink
	default:
		return m.loadPath(entry.path)
	}
}

// loadPath reads and validates a map file. Validation failures keep the
// player in the menu with the loader's error message on display.
func (m MapMenuModel) loadPath(path string) (tea.Model, tea.Cmd) {
	if path == "" {
		m.loadErr = "enter a map file path"
		return m, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		m.loadErr = fmt.Sprintf("cannot read %s: %v", path, err)
		return m, nil
	}
	if _, err := worldmap.Parse(string(data)); err != nil {
		m.loadErr = err.Error()
		return m, nil
	}

	m.selection = MapSelection{
		Name:    strings.TrimSuffix(filepath.Base(path), ".map"),
		MapText: string(data),
	}
	m.choosing = false
	return m, tea.Quit
}

// View renders the map selection.
func (m MapMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("D A L E K"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Select a map:"), m.width))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		cursor := "  "
		style := menuItemStyle
		if i == m.cursor {
			cursor = "> "
			style = menuActiveStyle
		}
		b.WriteString(centerText(style.Render(cursor+entry.label), m.width))
		b.WriteString("\n")
	}

	if m.typing {
		b.WriteString("\n")
		b.WriteString(centerText(m.input.View(), m.width))
		b.WriteString("\n")
	}

	if m.loadErr != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuErrorStyle.Render(m.loadErr), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	if m.typing {
		controls = "Enter: Load  |  Esc: Cancel"
	}
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MapMenuModel) Selected() *MapSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m MapMenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers a rendered line within the given width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + text
}

// RunMapSelector runs the map selection menu and returns the choice,
// or nil when the player quit instead of choosing.
func RunMapSelector(cfg core.RuntimeConfig, mapsDir string) (*MapSelection, error) {
	model := NewMapMenuModel(cfg.ScreenW, cfg.ScreenH, mapsDir)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MapMenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}

	return m.Selected(), nil
}
