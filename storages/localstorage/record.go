package localstorage

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"

	"github.com/adamluzsi/fleet"
	"github.com/adamluzsi/fleet/consterror"
)

const ErrUnsupportedVehicle consterror.Error = "localstorage: vehicle type can't be stored"

// Record is the stored form of a vehicle.
type Record struct {
	Kind     fleet.Kind `msgpack:"kind"`
	ID       string     `msgpack:"id"`
	Electric bool       `msgpack:"electric"`
	Weight   float64    `msgpack:"weight"`
}

func NewRecord(v fleet.Vehicle) (Record, error) {
	kind, t, ok := fleet.Decompose(v)
	if !ok {
		return Record{}, errors.Wrapf(ErrUnsupportedVehicle, "%T", v)
	}
	return Record{
		Kind:     kind,
		ID:       t.ID,
		Electric: t.Electric,
		Weight:   t.Weight,
	}, nil
}

func (r Record) Vehicle() (fleet.Vehicle, error) {
	return fleet.Make(r.Kind, fleet.Transport{
		ID:       r.ID,
		Electric: r.Electric,
		Weight:   r.Weight,
	})
}

func (r Record) encode() ([]byte, error) {
	data, err := msgpack.Marshal(r)
	return data, errors.Wrap(err, "localstorage: encoding record")
}

func decodeRecord(data []byte) (Record, error) {
	var r Record
	err := msgpack.Unmarshal(data, &r)
	return r, errors.Wrap(err, "localstorage: decoding record")
}
