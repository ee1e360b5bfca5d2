package filters

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/adamluzsi/fleet"
	"github.com/adamluzsi/fleet/consterror"
	"github.com/adamluzsi/fleet/iterators"
)

const ErrInvalidStep consterror.Error = "filters: invalid chain step"

// Step is a single filter in a Chain.
// Exactly one of its fields must be set.
type Step struct {
	Speed    *fleet.Speed `yaml:"speed,omitempty"`
	Electric *bool        `yaml:"electric,omitempty"`
}

func (s Step) Validate() error {
	switch {
	case s.Speed == nil && s.Electric == nil:
		return errors.Wrap(ErrInvalidStep, "neither speed nor electric is set")
	case s.Speed != nil && s.Electric != nil:
		return errors.Wrap(ErrInvalidStep, "both speed and electric are set")
	case s.Speed != nil && *s.Speed == fleet.Unknown:
		return errors.Wrap(ErrInvalidStep, "unknown speed can't be filtered")
	}
	return nil
}

// Chain is a declarative decorator chain.
// The first step wraps the source cursor, and every later step wraps the previous one.
//
//	- speed: fast
//	- electric: true
type Chain []Step

// ParseChain decodes a YAML sequence of steps.
func ParseChain(data []byte) (Chain, error) {
	var chain Chain
	if err := yaml.Unmarshal(data, &chain); err != nil {
		return nil, errors.Wrap(err, "filters: decoding chain")
	}
	if err := chain.Validate(); err != nil {
		return nil, err
	}
	return chain, nil
}

func (c Chain) Validate() error {
	for i, step := range c {
		if err := step.Validate(); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
	}
	return nil
}

// Apply wraps src with every step of the chain, and returns the outermost cursor.
// The returned cursor owns src, even when Apply fails, src is closed.
func Apply[V fleet.Vehicle](c Chain, src iterators.Cursor[V]) (iterators.Cursor[V], error) {
	if err := c.Validate(); err != nil {
		if cerr := src.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}
		return nil, err
	}
	cur := src
	for _, step := range c {
		switch {
		case step.Speed != nil:
			cur = BySpeed(cur, *step.Speed)
		case step.Electric != nil:
			cur = ByElectric(cur, *step.Electric)
		}
	}
	return cur, nil
}
