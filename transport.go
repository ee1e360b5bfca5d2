package fleet

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// Kind names a concrete vehicle type.
type Kind string

const (
	CarKind        Kind = "car"
	TrolleybusKind Kind = "trolleybus"
	BicycleKind    Kind = "bicycle"
)

// Kinds lists every known vehicle kind.
var Kinds = []Kind{CarKind, TrolleybusKind, BicycleKind}

// New makes a vehicle of the given kind with a fresh ID.
func New(kind Kind, electric bool) (Vehicle, error) {
	return Make(kind, Transport{ID: uuid.NewV4().String(), Electric: electric})
}

// Make builds a vehicle of the given kind around existing attributes.
func Make(kind Kind, t Transport) (Vehicle, error) {
	switch Kind(strings.ToLower(string(kind))) {
	case CarKind:
		return &Car{Transport: t}, nil
	case TrolleybusKind:
		return &Trolleybus{Transport: t}, nil
	case BicycleKind:
		return &Bicycle{Transport: t}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
}

// Decompose is the inverse of Make.
func Decompose(v Vehicle) (Kind, Transport, bool) {
	switch v := v.(type) {
	case *Car:
		return CarKind, v.Transport, true
	case *Trolleybus:
		return TrolleybusKind, v.Transport, true
	case *Bicycle:
		return BicycleKind, v.Transport, true
	default:
		return "", Transport{}, false
	}
}

// Transport holds the attributes shared by every vehicle.
// The speed class belongs to the concrete vehicle type.
type Transport struct {
	ID       string
	Electric bool
	Weight   float64
}

func (t *Transport) IsElectric() bool { return t.Electric }

func (t *Transport) service(w io.Writer, what string) error {
	prefix := "Servicing not electric transport..."
	if t.IsElectric() {
		prefix = "Servicing electric transport..."
	}
	_, err := fmt.Fprintf(w, "%s %s is servicing...\n", prefix, what)
	return err
}

type Car struct{ Transport }

func (*Car) Speed() Speed { return Fast }

func (c *Car) Service(w io.Writer) error { return c.service(w, "Car") }

type Trolleybus struct{ Transport }

func (*Trolleybus) Speed() Speed { return Medium }

func (t *Trolleybus) Service(w io.Writer) error { return t.service(w, "Trolleybus") }

type Bicycle struct{ Transport }

func (*Bicycle) Speed() Speed { return Slow }

func (b *Bicycle) Service(w io.Writer) error { return b.service(w, "Bicycle") }
