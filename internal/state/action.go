package state

import "github.com/desertthunder/mpx/internal/models"

// ActionKind enumerates the user intents the screen understands.
type ActionKind int

const (
	ActionSelect ActionKind = iota
	ActionDismiss
	ActionToggle
	ActionPrevious
	ActionNext
	ActionScrollTop
)

// String returns the action name used in logs.
func (k ActionKind) String() string {
	switch k {
	case ActionSelect:
		return "select"
	case ActionDismiss:
		return "dismiss"
	case ActionToggle:
		return "toggle"
	case ActionPrevious:
		return "previous"
	case ActionNext:
		return "next"
	case ActionScrollTop:
		return "scroll-top"
	default:
		return "unknown"
	}
}

// Action is a tagged union of user intents. Entry is only set for [ActionSelect].
type Action struct {
	Kind  ActionKind
	Entry models.Entry
}

// SelectAction is the constructor for [ActionSelect]
func SelectAction(e models.Entry) Action { return Action{Kind: ActionSelect, Entry: e} }

// DismissAction is the constructor for [ActionDismiss]
func DismissAction() Action { return Action{Kind: ActionDismiss} }

// ToggleAction is the constructor for [ActionToggle]
func ToggleAction() Action { return Action{Kind: ActionToggle} }

// PreviousAction is the constructor for [ActionPrevious]
func PreviousAction() Action { return Action{Kind: ActionPrevious} }

// NextAction is the constructor for [ActionNext]
func NextAction() Action { return Action{Kind: ActionNext} }

// ScrollTopAction is the constructor for [ActionScrollTop]
func ScrollTopAction() Action { return Action{Kind: ActionScrollTop} }
