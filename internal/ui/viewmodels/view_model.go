package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"countryexplorer/internal/domain"
	"countryexplorer/internal/ui/coordinator"
	inputtypes "countryexplorer/internal/ui/input/types"
	"countryexplorer/internal/ui/services/sorting"
	"countryexplorer/internal/ui/views"
)

// ViewModel transforms coordinator and UI state into view-ready data
type ViewModel struct {
	coord         *coordinator.Coordinator
	width         int
	height        int
	mode          inputtypes.Mode
	textInput     textinput.Model
	regionIndex   int
	spinner       string
	helpLine      string
	showHelp      bool
	helpContent   string
	helpScroll    int
	statusMessage string
}

// NewViewModel creates a new view model
func NewViewModel(coord *coordinator.Coordinator) *ViewModel {
	return &ViewModel{
		coord:     coord,
		textInput: textinput.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode inputtypes.Mode) {
	vm.mode = mode
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.textInput = textInput
}

// SetRegionIndex sets the highlighted region while selecting one
func (vm *ViewModel) SetRegionIndex(index int) {
	vm.regionIndex = index
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetHelpLine sets the footer key hints
func (vm *ViewModel) SetHelpLine(line string) {
	vm.helpLine = line
}

// SetHelp sets the help popup state
func (vm *ViewModel) SetHelp(show bool, content string, scroll int) {
	vm.showHelp = show
	vm.helpContent = content
	vm.helpScroll = scroll
}

// SetStatusMessage sets the transient status message
func (vm *ViewModel) SetStatusMessage(msg string) {
	vm.statusMessage = msg
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	c := vm.coord

	sortLabel := ""
	if c.Sorting.GetCurrentMode() != sorting.ModeAPI {
		sortLabel = c.Sorting.GetModeString()
	}

	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Countries:      c.Rows(),
		SelectedIndex:  c.Navigation.GetCursor(),
		ViewportOffset: c.Navigation.GetViewportOffset(),
		ViewportHeight: c.Navigation.GetViewportHeight(),
		Query:          c.Query.State(),
		RegionIndex:    vm.activeRegionIndex(),
		SearchText:     c.SearchText(),
		SortLabel:      sortLabel,
		Spinner:        vm.spinner,
		InputMode:      vm.inputModeString(),
		TextInput:      vm.inputText(),
		ShowDetail:     vm.mode == inputtypes.ModeDetail,
		Detail:         c.Detail.State(),
		BorderIndex:    c.BorderIndex(),
		ShowHelp:       vm.showHelp,
		HelpContent:    vm.helpContent,
		HelpScroll:     vm.helpScroll,
		HelpLine:       vm.helpLine,
		StatusMessage:  vm.statusMessage,
	}
}

func (vm *ViewModel) activeRegionIndex() int {
	if vm.mode == inputtypes.ModeRegionSelect {
		return vm.regionIndex
	}
	return domain.RegionIndex(vm.coord.Region())
}

func (vm *ViewModel) inputModeString() string {
	switch vm.mode {
	case inputtypes.ModeSearch:
		return "search"
	case inputtypes.ModeRegionSelect:
		return "region"
	default:
		return ""
	}
}

func (vm *ViewModel) inputText() string {
	if vm.mode != inputtypes.ModeSearch {
		return ""
	}
	return vm.textInput.View()
}
