// Package matrix implements dense matrices and lazily evaluated matrix expressions.
package matrix

// Numeric is a constraint for matrix element types.
// Every member supports +, - and * and has a zero value that acts as the
// additive identity.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// DataType represents runtime type information for matrix elements.
type DataType int

// Supported element types. Named types built on top of these report Unknown.
const (
	Unknown DataType = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
)

var dataTypeNames = [...]string{
	Unknown:    "unknown",
	Int:        "int",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Uint:       "uint",
	Uint8:      "uint8",
	Uint16:     "uint16",
	Uint32:     "uint32",
	Uint64:     "uint64",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	if dt < 0 || int(dt) >= len(dataTypeNames) {
		return "unknown"
	}
	return dataTypeNames[dt]
}

// ParseDataType maps a type name such as "float64" back to its DataType.
// It returns Unknown and false for unsupported names.
func ParseDataType(name string) (DataType, bool) {
	for dt, n := range dataTypeNames {
		if dt != int(Unknown) && n == name {
			return DataType(dt), true
		}
	}
	return Unknown, false
}

// DataTypeOf reports the DataType of T.
func DataTypeOf[T Numeric]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint:
		return Uint
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		return Unknown
	}
}
