package contour

import "fmt"

// Order selects how a region's boundary cells are sequenced into strokes.
type Order int

const (
	// Discovery keeps the flood fill pop order.
	Discovery Order = iota
	// Walk reorders boundary cells into 4-connected strokes.
	Walk
)

func (o Order) String() string {
	switch o {
	case Discovery:
		return "discovery"
	case Walk:
		return "walk"
	}
	return fmt.Sprintf("order(%d)", int(o))
}

// ParseOrder maps "discovery" or "walk" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "discovery":
		return Discovery, nil
	case "walk":
		return Walk, nil
	}
	return 0, fmt.Errorf("contour: unknown order %q", s)
}

// Option configures Extract.
type Option func(*config)

type config struct {
	order Order
}

func newConfig(opts ...Option) config {
	cfg := config{order: Discovery}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOrder sets the stroke order. The default is Discovery.
func WithOrder(o Order) Option {
	return func(c *config) {
		c.order = o
	}
}
