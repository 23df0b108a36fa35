package properties

// The animation engine owns and updates the values defined here;
// the computed values only reference them.

type TweenType uint8

const (
	TweenLinear TweenType = iota
	TweenBack
	TweenBounce
	TweenCircular
	TweenCubic
	TweenElastic
	TweenExponential
	TweenQuadratic
	TweenQuartic
	TweenQuintic
	TweenSine
)

type TweenDirection uint8

const (
	TweenIn TweenDirection = iota
	TweenOut
	TweenInOut
)

var (
	tweenTypeKeywords = [...]string{
		TweenLinear: "linear", TweenBack: "back", TweenBounce: "bounce", TweenCircular: "circular",
		TweenCubic: "cubic", TweenElastic: "elastic", TweenExponential: "exponential",
		TweenQuadratic: "quadratic", TweenQuartic: "quartic", TweenQuintic: "quintic", TweenSine: "sine",
	}
	tweenDirectionKeywords = [...]string{TweenIn: "in", TweenOut: "out", TweenInOut: "in-out"}
)

// Tween describes an easing function, like 'cubic-in-out'.
// Its evaluation is left to the animation engine.
type Tween struct {
	Type      TweenType
	Direction TweenDirection
}

func (t Tween) String() string {
	if t.Type == TweenLinear {
		return "linear"
	}
	return keywordString(t.Type, tweenTypeKeywords[:]) + "-" + keywordString(t.Direction, tweenDirectionKeywords[:])
}

// Transition is one entry of the transition property.
// Durations are in seconds.
type Transition struct {
	Property                string
	Tween                   Tween
	Duration, Delay         Fl
	ReverseAdjustmentFactor Fl
}

// TransitionList is the value of the transition property.
// A nil *TransitionList is equivalent to 'none'.
type TransitionList struct {
	None        bool
	All         bool // if true, Transitions has one item, used for every property
	Transitions []Transition
}

// NewTransitionList returns a list for the given transitions, or 'none' if empty.
func NewTransitionList(transitions ...Transition) *TransitionList {
	return &TransitionList{None: len(transitions) == 0, Transitions: transitions}
}

// NewTransitionAll returns 'all', using the same transition for every property.
func NewTransitionAll(tr Transition) *TransitionList {
	tr.Property = ""
	return &TransitionList{All: true, Transitions: []Transition{tr}}
}

// IsNone returns true for a nil list or 'none'.
func (tl *TransitionList) IsNone() bool { return tl == nil || tl.None }

// Lookup returns the transition to use for [property], if any.
func (tl *TransitionList) Lookup(property string) (Transition, bool) {
	if tl.IsNone() || len(tl.Transitions) == 0 {
		return Transition{}, false
	}
	if tl.All {
		out := tl.Transitions[0]
		out.Property = property
		return out, true
	}
	for _, tr := range tl.Transitions {
		if tr.Property == property {
			return tr, true
		}
	}
	return Transition{}, false
}

// InfiniteIterations is the NumIterations of an endless animation.
const InfiniteIterations = -1

// Animation is one entry of the animation property.
// Durations are in seconds.
type Animation struct {
	Name            string
	Tween           Tween
	Duration, Delay Fl
	NumIterations   int
	Alternate       bool
	Paused          bool
}

// IsInfinite returns true if the animation repeats forever.
func (a Animation) IsInfinite() bool { return a.NumIterations == InfiniteIterations }

// AnimationList is the value of the animation property.
type AnimationList struct {
	Animations []Animation
}

func NewAnimationList(animations ...Animation) *AnimationList {
	return &AnimationList{Animations: animations}
}

// Len returns 0 for a nil list.
func (al *AnimationList) Len() int {
	if al == nil {
		return 0
	}
	return len(al.Animations)
}
