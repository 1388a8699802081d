package confirm

import (
	"github.com/llehouerou/carousel/internal/ui/action"
)

// Result is sent when the popup closes.
type Result struct {
	Confirmed bool
	Context   any
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "confirm.result" }

// ActionMsg creates an action.Msg for a confirm action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "confirm", Action: a}
}
