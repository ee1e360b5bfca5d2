package fleet

import (
	"strings"

	"github.com/pkg/errors"
)

// Speed is the speed class of a vehicle.
type Speed int

const (
	Fast Speed = iota
	Medium
	Slow
	Unknown
)

var speedNames = map[Speed]string{
	Fast:    "fast",
	Medium:  "medium",
	Slow:    "slow",
	Unknown: "unknown",
}

func (s Speed) String() string {
	if name, ok := speedNames[s]; ok {
		return name
	}
	return speedNames[Unknown]
}

// ParseSpeed parses the textual form of a speed class, case insensitively.
func ParseSpeed(text string) (Speed, error) {
	for speed, name := range speedNames {
		if strings.EqualFold(name, strings.TrimSpace(text)) {
			return speed, nil
		}
	}
	return Unknown, errors.Wrapf(ErrUnknownSpeed, "%q", text)
}

func (s Speed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Speed) UnmarshalText(text []byte) error {
	speed, err := ParseSpeed(string(text))
	if err != nil {
		return err
	}
	*s = speed
	return nil
}
