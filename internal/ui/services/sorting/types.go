package sorting

// Mode is a display ordering of the committed results
type Mode string

const (
	ModeAPI        Mode = "api" // order returned by the API
	ModeName       Mode = "name"
	ModePopulation Mode = "population"
	ModeRegion     Mode = "region"
)

// Modes lists the sort modes in cycle order
var Modes = []Mode{ModeAPI, ModeName, ModePopulation, ModeRegion}

// State holds sorting state
type State struct {
	CurrentMode Mode
}
