package layout

import "github.com/tablemap/tablemap/pkg/errors"

// Direction selects the layering direction of the layout.
type Direction string

const (
	// DirectionLeftRight places rank 0 at the left edge and later ranks to
	// the right. This is the direction the dashboard renders.
	DirectionLeftRight Direction = "left-right"

	// DirectionTopBottom places rank 0 at the top edge and later ranks
	// below. The algorithm is direction-agnostic; only coordinate
	// assignment consults this.
	DirectionTopBottom Direction = "top-bottom"
)

// Default spacing constants, in abstract layout units.
const (
	DefaultRankSep = 120.0
	DefaultNodeSep = 40.0
	DefaultMarginX = 40.0
	DefaultMarginY = 40.0

	// DefaultOrderingPasses caps the barycenter sweeps. The cap is a
	// structural guarantee of bounded run time, not a tunable that should
	// normally change: four alternating sweeps settle all but pathological
	// graphs, and pathological graphs are exactly the ones the cap exists for.
	DefaultOrderingPasses = 4
)

// Config holds the spacing and direction parameters of one layout call.
type Config struct {
	// RankSep is the gap between adjacent ranks along the layering direction.
	RankSep float64 `json:"rank_sep" toml:"rank_sep"`
	// NodeSep is the gap between adjacent nodes within a rank.
	NodeSep float64 `json:"node_sep" toml:"node_sep"`
	// MarginX is the left (or cross-axis) margin before the first node.
	MarginX float64 `json:"margin_x" toml:"margin_x"`
	// MarginY is the top margin before the first node.
	MarginY float64 `json:"margin_y" toml:"margin_y"`
	// Direction selects left-to-right or top-to-bottom layering.
	Direction Direction `json:"direction" toml:"direction"`
	// OrderingPasses caps the crossing-minimization sweeps. Zero means
	// DefaultOrderingPasses.
	OrderingPasses int `json:"ordering_passes,omitempty" toml:"ordering_passes"`
}

// DefaultConfig returns the spacing defaults with left-to-right direction.
func DefaultConfig() Config {
	return Config{
		RankSep:        DefaultRankSep,
		NodeSep:        DefaultNodeSep,
		MarginX:        DefaultMarginX,
		MarginY:        DefaultMarginY,
		Direction:      DirectionLeftRight,
		OrderingPasses: DefaultOrderingPasses,
	}
}

// Validate checks the config for values the engine cannot work with.
func (c Config) Validate() error {
	if c.RankSep < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "rank separation cannot be negative: %v", c.RankSep)
	}
	if c.NodeSep < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "node separation cannot be negative: %v", c.NodeSep)
	}
	if c.MarginX < 0 || c.MarginY < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margins cannot be negative: (%v, %v)", c.MarginX, c.MarginY)
	}
	if c.OrderingPasses < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "ordering passes cannot be negative: %d", c.OrderingPasses)
	}
	switch c.Direction {
	case DirectionLeftRight, DirectionTopBottom, "":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown direction: %q", c.Direction)
	}
	return nil
}

// withDefaults fills zero-valued fields that have non-zero defaults.
func (c Config) withDefaults() Config {
	if c.Direction == "" {
		c.Direction = DirectionLeftRight
	}
	if c.OrderingPasses == 0 {
		c.OrderingPasses = DefaultOrderingPasses
	}
	return c
}
