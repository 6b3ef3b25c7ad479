package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Query actions
type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

type SelectRegionAction struct {
	Region string // region key, "" for all regions
}

func (a SelectRegionAction) Type() string { return "select_region" }

type UpdateRegionIndexAction struct {
	Index int
}

func (a UpdateRegionIndexAction) Type() string { return "update_region_index" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

// Detail actions
type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

type SelectBorderAction struct {
	Delta int
}

func (a SelectBorderAction) Type() string { return "select_border" }

type OpenBorderAction struct{}

func (a OpenBorderAction) Type() string { return "open_border" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type HelpPagerAction struct{}

func (a HelpPagerAction) Type() string { return "help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, which skips saving the config
}

func (a QuitAction) Type() string { return "quit" }
