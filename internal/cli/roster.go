package cli

import (
	"os"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"gopkg.in/yaml.v3"

	"github.com/adamluzsi/fleet"
)

// Roster is the YAML file format listing the vehicles of a fleet.
//
//	vehicles:
//	  - kind: car
//	    electric: true
//	  - kind: bicycle
type Roster struct {
	Vehicles []RosterEntry `yaml:"vehicles"`
}

type RosterEntry struct {
	Kind     fleet.Kind `yaml:"kind"`
	Electric bool       `yaml:"electric"`
	Weight   float64    `yaml:"weight,omitempty"`
}

func LoadRoster(path string) ([]fleet.Vehicle, error) {
	if path == "" {
		return nil, errors.New("roster file is not given")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading roster")
	}
	return ParseRoster(data)
}

// ParseRoster makes a vehicle with a fresh ID for every roster entry, in the listed order.
func ParseRoster(data []byte) ([]fleet.Vehicle, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(err, "decoding roster")
	}

	vs := make([]fleet.Vehicle, 0, len(r.Vehicles))
	for i, e := range r.Vehicles {
		v, err := fleet.Make(e.Kind, fleet.Transport{
			ID:       uuid.NewV4().String(),
			Electric: e.Electric,
			Weight:   e.Weight,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "roster entry %d", i)
		}
		vs = append(vs, v)
	}
	return vs, nil
}
