package scoring

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownInstrument = errors.New("unknown instrument")

var registry = map[string]*Instrument{}

// register wires an instrument table into the package registry. Specs are
// validated at init so a malformed table fails fast rather than at scoring
// time.
func register(ins *Instrument) *Instrument {
	if err := ins.Validate(); err != nil {
		panic(err)
	}
	if _, dup := registry[ins.Key]; dup {
		panic(fmt.Sprintf("scoring: duplicate instrument key %q", ins.Key))
	}
	registry[ins.Key] = ins
	return ins
}

// Lookup returns the instrument spec for a test type key.
func Lookup(key string) (*Instrument, error) {
	ins, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstrument, key)
	}
	return ins, nil
}

// Keys lists all registered instrument keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
