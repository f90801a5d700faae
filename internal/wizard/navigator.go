package wizard

// Navigator tracks the current step. Out-of-range requests are clamped, never rejected.
type Navigator struct {
	current int
	max     int
}

func NewNavigator(max int) *Navigator {
	if max < 1 {
		max = 1
	}
	return &Navigator{current: 1, max: max}
}

func (n *Navigator) Current() int { return n.current }

func (n *Navigator) Max() int { return n.max }

func (n *Navigator) Next() int {
	n.current = min(n.current+1, n.max)
	return n.current
}

func (n *Navigator) Previous() int {
	n.current = max(n.current-1, 1)
	return n.current
}

func (n *Navigator) GoTo(step int) int {
	n.current = n.Clamp(step)
	return n.current
}

// Clamp bounds step to [1, Max] without moving.
func (n *Navigator) Clamp(step int) int {
	return min(max(step, 1), n.max)
}
