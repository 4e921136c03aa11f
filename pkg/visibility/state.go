package visibility

// State is a canonical visibility value. The set is open: hosts may report
// values beyond the constants below and the tracker passes them through.
type State string

const (
	// StateVisible means the host is in the foreground.
	StateVisible State = "visible"
	// StateHidden means the host is in the background.
	StateHidden State = "hidden"
	// StatePrerender means the host is being prepared but not yet shown.
	StatePrerender State = "prerender"

	// DefaultState is reported when the host offers nothing better.
	DefaultState = StateVisible
)

// ErrorCode identifies why a tracker cannot run. It implements error.
type ErrorCode string

// ErrInvalidGlobals is recorded when the window or document capability is missing.
const ErrInvalidGlobals ErrorCode = "INVALID_GLOBALS"

func (c ErrorCode) Error() string {
	return "visibility: " + string(c)
}

// Strategy is the native wiring scheme chosen at construction.
type Strategy int

const (
	// StrategyNone is reported by trackers that failed construction.
	StrategyNone Strategy = iota
	// StrategyModern listens for visibilitychange on the document.
	StrategyModern
	// StrategyFocusBlur listens for focus and blur on the window.
	StrategyFocusBlur
	// StrategyFocusBlurLegacy attaches onfocusin and onfocusout on the document.
	StrategyFocusBlurLegacy
)

func (s Strategy) String() string {
	switch s {
	case StrategyModern:
		return "modern"
	case StrategyFocusBlur:
		return "focus-blur"
	case StrategyFocusBlurLegacy:
		return "focus-blur-ie"
	default:
		return "none"
	}
}
