package gotoprompt

import (
	"github.com/llehouerou/carousel/internal/ui/action"
)

// Result is sent when the prompt closes. Index is zero-based.
type Result struct {
	Index    int
	Canceled bool
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "gotoprompt.result" }

// ActionMsg creates an action.Msg for a prompt action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "gotoprompt", Action: a}
}
