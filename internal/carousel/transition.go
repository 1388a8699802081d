package carousel

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Easing names an easing curve for settle transitions.
type Easing string

const (
	EaseLinear      Easing = "linear"
	EaseOutQuad     Easing = "out-quad"
	EaseInOutQuad   Easing = "in-out-quad"
	EaseOutCubic    Easing = "out-cubic"
	EaseInOutCubic  Easing = "in-out-cubic"
	EaseOutSine     Easing = "out-sine"
	EaseInOutSine   Easing = "in-out-sine"
	EaseOutExpo     Easing = "out-expo"
	EaseOutBack     Easing = "out-back"
	EaseOutBounce   Easing = "out-bounce"
	EaseOutQuart    Easing = "out-quart"
	EaseInOutQuart  Easing = "in-out-quart"
	EaseOutCirc     Easing = "out-circ"
	EaseOutElastic  Easing = "out-elastic"
	EaseInOutExpo   Easing = "in-out-expo"
	EaseInOutBack   Easing = "in-out-back"
	EaseInOutCirc   Easing = "in-out-circ"
	EaseInOutBounce Easing = "in-out-bounce"
)

var easings = map[Easing]ease.TweenFunc{
	EaseLinear:      ease.Linear,
	EaseOutQuad:     ease.OutQuad,
	EaseInOutQuad:   ease.InOutQuad,
	EaseOutCubic:    ease.OutCubic,
	EaseInOutCubic:  ease.InOutCubic,
	EaseOutSine:     ease.OutSine,
	EaseInOutSine:   ease.InOutSine,
	EaseOutExpo:     ease.OutExpo,
	EaseOutBack:     ease.OutBack,
	EaseOutBounce:   ease.OutBounce,
	EaseOutQuart:    ease.OutQuart,
	EaseInOutQuart:  ease.InOutQuart,
	EaseOutCirc:     ease.OutCirc,
	EaseOutElastic:  ease.OutElastic,
	EaseInOutExpo:   ease.InOutExpo,
	EaseInOutBack:   ease.InOutBack,
	EaseInOutCirc:   ease.InOutCirc,
	EaseInOutBounce: ease.InOutBounce,
}

// Easings returns the known easing names.
func Easings() []Easing {
	names := make([]Easing, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	return names
}

// Transition is an animation request: progress moves from From to To over
// Duration.
type Transition struct {
	From     float64
	To       float64
	Duration time.Duration
	Easing   Easing
}

// transition is the in-flight task owned by the engine.
type transition struct {
	Transition
	elapsed time.Duration
	fn      ease.TweenFunc
}

func newTransition(t Transition) *transition {
	fn, ok := easings[t.Easing]
	if !ok {
		fn = ease.OutQuad
	}
	return &transition{Transition: t, fn: fn}
}

// advance moves the task forward by dt and returns the progress for this
// frame. The final frame returns To exactly.
func (t *transition) advance(dt time.Duration) (float64, bool) {
	t.elapsed += dt
	if t.elapsed >= t.Duration || t.Duration <= 0 {
		return t.To, true
	}
	frac := float64(t.fn(float32(t.elapsed.Seconds()), 0, 1, float32(t.Duration.Seconds())))
	return t.From + (t.To-t.From)*frac, false
}
