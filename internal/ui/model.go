package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"countryexplorer/internal/config"
	"countryexplorer/internal/ui/coordinator"
	"countryexplorer/internal/ui/handlers"
	"countryexplorer/internal/ui/input"
	inputtypes "countryexplorer/internal/ui/input/types"
	"countryexplorer/internal/ui/services/detail"
	"countryexplorer/internal/ui/services/navigation"
	"countryexplorer/internal/ui/services/query"
	"countryexplorer/internal/ui/services/search"
	"countryexplorer/internal/ui/viewmodels"
	"countryexplorer/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	config    *config.Config
	configSvc config.ConfigService // nil disables saving
	coord     *coordinator.Coordinator

	// UI-specific state not owned by the services
	width       int
	height      int
	help        help.Model
	keys        keyMap
	spinner     spinner.Model
	showHelp    bool
	helpScroll  int
	regionIndex int  // highlighted region while selecting
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(coord *coordinator.Coordinator, cfg *config.Config, configSvc config.ConfigService) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		config:       cfg,
		configSvc:    configSvc,
		coord:        coord,
		help:         help.New(),
		keys:         newKeyMap(),
		spinner:      sp,
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(),
		viewModel:    viewmodels.NewViewModel(coord),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		pager:        NewPager(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init loads the initial country list
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.coord.Init(m.config.UISettings.Region), m.spinner.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.coord.Navigation.SetViewportHeight(msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			return m, m.handleHelpKey(msg)
		}

		ctx := &input.ModelContext{Coordinator: m.coord}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case query.ResultMsg:
		m.coord.HandleQueryResult(msg)
		return m, nil

	case detail.ResultMsg:
		m.coord.HandleDetailResult(msg)
		return m, nil

	case search.CommittedMsg:
		return m, m.coord.HandleCommitted(msg)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	mode := m.inputHandler.CurrentMode()
	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(mode)
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
	m.viewModel.SetRegionIndex(m.regionIndex)
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetHelpLine(m.help.ShortHelpView(m.keys.shortHelp(mode, m.coord.SearchText() != "")))
	m.viewModel.SetHelp(m.showHelp, m.helpRenderer.Render(), m.helpScroll)
	m.viewModel.SetStatusMessage(m.eventHandler.Status())

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.coord.Navigation.Navigate(navigation.Direction(a.Direction))

	case inputtypes.UpdateTextAction:
		m.coord.Type(a.Text)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.coord.SubmitSearch()
		}

	case inputtypes.ClearSearchAction:
		m.inputHandler.SetText("")
		return m.coord.ClearSearch()

	case inputtypes.RetryAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeDetail {
			return m.coord.Detail.Retry()
		}
		return m.coord.Query.Retry()

	case inputtypes.SelectRegionAction:
		return m.coord.SelectRegion(a.Region)

	case inputtypes.UpdateRegionIndexAction:
		m.regionIndex = a.Index

	case inputtypes.CycleSortAction:
		m.coord.CycleSort()

	case inputtypes.OpenDetailAction:
		return m.coord.OpenSelected()

	case inputtypes.CloseDetailAction:
		m.coord.CloseDetail()

	case inputtypes.SelectBorderAction:
		m.coord.MoveBorder(a.Delta)

	case inputtypes.OpenBorderAction:
		return m.coord.OpenSelectedBorder()

	case inputtypes.OpenPagerAction:
		st := m.coord.Detail.State()
		if st.Status != detail.StatusReady || st.Detail == nil {
			return nil
		}
		return m.showInPager(views.PlainText(st.Detail), func(err error) tea.Msg { return pagerMsg{err: err} })

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp
		m.helpScroll = 0

	case inputtypes.HelpPagerAction:
		return m.showInPager(m.helpRenderer.Render(), func(err error) tea.Msg { return helpPagerMsg{err: err} })

	case inputtypes.QuitAction:
		// ctrl+c leaves without touching the config file
		save := !a.Force
		return func() tea.Msg { return quitMsg{saveConfig: save} }
	}
	return nil
}

// handleHelpKey handles keys while the help popup is open
func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return func() tea.Msg { return quitMsg{} }
	case "esc", "?", "q":
		m.showHelp = false
		m.helpScroll = 0
	case "down", "j":
		m.helpScroll++
	case "up", "k":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "H":
		m.showHelp = false
		return m.showInPager(m.helpRenderer.Render(), func(err error) tea.Msg { return helpPagerMsg{err: err} })
	}
	return nil
}

// showInPager returns a command that shows content using the ov pager
func (m *Model) showInPager(content string, done func(error) tea.Msg) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return done(err)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case spinner.TickMsg:
		// Don't continue the tick loop while the pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			slog.Warn("detail pager failed", "error", msg.err)
			return m, m.eventHandler.SetStatus("Pager failed")
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			slog.Warn("help pager failed", "error", msg.err)
			m.showHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	case handlers.ClearStatusMsg:
		m.eventHandler.Clear(msg)
		return m, nil

	case quitMsg:
		if msg.saveConfig {
			m.saveConfig()
		}
		m.coord.Dispose()
		return m, tea.Quit

	default:
		return m, nil
	}
}

// saveConfig persists the selected region when the user asked for it
func (m *Model) saveConfig() {
	if m.configSvc == nil || !m.config.UISettings.RememberRegion {
		return
	}
	m.config.UISettings.Region = m.coord.Region()
	m.config.UISettings.Sort = string(m.coord.Sorting.GetCurrentMode())
	if err := m.configSvc.Save(m.config); err != nil {
		slog.Error("failed to save config", "error", err)
	}
}
