// Package op defines the closed set of trap operation kinds understood by the
// shadow proxy dispatcher.
package op

// Trap identifies one of the structural or behavioral operations that a proxy
// handler may intercept. The set is closed: every operation a proxy supports
// maps to exactly one Trap value.
type Trap uint8

const (
	GetPrototypeOf Trap = iota
	SetPrototypeOf
	IsExtensible
	PreventExtensions
	GetOwnPropertyDescriptor
	DefineProperty
	Has
	Get
	Set
	DeleteProperty
	OwnKeys
	Apply
	Construct

	// NumTraps is the number of trap kinds. Valid Trap values are in
	// [0, NumTraps).
	NumTraps = iota
)

var trapNames = [NumTraps]string{
	GetPrototypeOf:           "getPrototypeOf",
	SetPrototypeOf:           "setPrototypeOf",
	IsExtensible:             "isExtensible",
	PreventExtensions:        "preventExtensions",
	GetOwnPropertyDescriptor: "getOwnPropertyDescriptor",
	DefineProperty:           "defineProperty",
	Has:                      "has",
	Get:                      "get",
	Set:                      "set",
	DeleteProperty:           "deleteProperty",
	OwnKeys:                  "ownKeys",
	Apply:                    "apply",
	Construct:                "construct",
}

// Name returns the handler property name that supplies the trap for this
// operation, e.g. "getOwnPropertyDescriptor".
func (t Trap) Name() string {
	if int(t) >= len(trapNames) {
		return "invalid"
	}
	return trapNames[t]
}

func (t Trap) String() string {
	return t.Name()
}

// Traps returns all trap kinds in dispatch order.
func Traps() []Trap {
	traps := make([]Trap, NumTraps)
	for i := range traps {
		traps[i] = Trap(i)
	}
	return traps
}

// Lookup returns the Trap whose handler property name matches the given
// string. The second return value is false if no trap has that name.
func Lookup(name string) (Trap, bool) {
	for i, n := range trapNames {
		if n == name {
			return Trap(i), true
		}
	}
	return 0, false
}
