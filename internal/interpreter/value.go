package interpreter

import "strings"

type valueType uint8

const (
	typeBool valueType = iota
	typeNum
)

var typeNames = map[valueType]string{
	typeBool: "bool",
	typeNum:  "number",
}

func (t valueType) String() string {
	return typeNames[t]
}

// An generic value (these are passed around by value)
type value struct {
	typ valueType // Type of value
	b   bool      // Bool value
	n   float64   // Numeric value (for typeNum)
}

// Create a new number value
func num(n float64) value {
	return value{typ: typeNum, n: n}
}

// Create a numeric value from a Go bool
func boolean(b bool) value {
	return value{typ: typeBool, b: b}
}

// units maps a unit suffix (lower case) to its multiplier.
var units = map[string]float64{
	"%":   1,
	"kb":  1e3,
	"mb":  1e6,
	"gb":  1e9,
	"kib": 1 << 10,
	"mib": 1 << 20,
	"gib": 1 << 30,
}

func unitMultiplier(unit string) (float64, bool) {
	if unit == "" {
		return 1, true
	}

	m, ok := units[strings.ToLower(unit)]
	return m, ok
}
