package field

// ScalarKind is the runtime's internal value category for a field.
// Values are one-based to match the ordinals the schema system hands out;
// zero is reserved as an invalid sentinel.
type ScalarKind uint8

const (
	ScalarBool ScalarKind = iota + 1
	ScalarFloat
	ScalarInt32
	ScalarUInt32
	ScalarEnum
	ScalarMessage
	ScalarDouble
	ScalarInt64
	ScalarUInt64
	ScalarString
	ScalarBytes
)

var scalarNames = [...]string{
	ScalarBool:    "bool",
	ScalarFloat:   "float",
	ScalarInt32:   "int32",
	ScalarUInt32:  "uint32",
	ScalarEnum:    "enum",
	ScalarMessage: "message",
	ScalarDouble:  "double",
	ScalarInt64:   "int64",
	ScalarUInt64:  "uint64",
	ScalarString:  "string",
	ScalarBytes:   "bytes",
}

func (k ScalarKind) String() string {
	if k >= ScalarBool && int(k) < len(scalarNames) {
		return scalarNames[k]
	}
	return "unknown"
}

// IsValid reports whether k is a declared member of the enumeration.
func (k ScalarKind) IsValid() bool {
	return k >= ScalarBool && k <= ScalarBytes
}

// IsReference reports whether k is stored as a pointer or view whose
// size depends on the address width.
func (k ScalarKind) IsReference() bool {
	switch k {
	case ScalarMessage, ScalarString, ScalarBytes:
		return true
	default:
		return false
	}
}

// WireKind is a field's declared type in the schema language's wire-format
// type system. Values are one-based and follow the schema language's own
// declaration order, which differs from ScalarKind's.
type WireKind uint8

const (
	WireDouble WireKind = iota + 1
	WireFloat
	WireInt64
	WireUInt64
	WireInt32
	WireFixed64
	WireFixed32
	WireBool
	WireString
	WireGroup
	WireMessage
	WireBytes
	WireUInt32
	WireEnum
	WireSFixed32
	WireSFixed64
	WireSInt32
	WireSInt64
)

var wireNames = [...]string{
	WireDouble:   "double",
	WireFloat:    "float",
	WireInt64:    "int64",
	WireUInt64:   "uint64",
	WireInt32:    "int32",
	WireFixed64:  "fixed64",
	WireFixed32:  "fixed32",
	WireBool:     "bool",
	WireString:   "string",
	WireGroup:    "group",
	WireMessage:  "message",
	WireBytes:    "bytes",
	WireUInt32:   "uint32",
	WireEnum:     "enum",
	WireSFixed32: "sfixed32",
	WireSFixed64: "sfixed64",
	WireSInt32:   "sint32",
	WireSInt64:   "sint64",
}

func (k WireKind) String() string {
	if k >= WireDouble && int(k) < len(wireNames) {
		return wireNames[k]
	}
	return "unknown"
}

// IsValid reports whether k is a declared member of the enumeration.
func (k WireKind) IsValid() bool {
	return k >= WireDouble && k <= WireSInt64
}

// IsReference reports whether k is stored as a pointer or view whose
// size depends on the address width.
func (k WireKind) IsReference() bool {
	switch k {
	case WireString, WireGroup, WireMessage, WireBytes:
		return true
	default:
		return false
	}
}

// ParseScalarKind resolves a kind name as produced by ScalarKind.String.
func ParseScalarKind(name string) (ScalarKind, bool) {
	for k := ScalarBool; k <= ScalarBytes; k++ {
		if scalarNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

// ParseWireKind resolves a kind name as produced by WireKind.String.
func ParseWireKind(name string) (WireKind, bool) {
	for k := WireDouble; k <= WireSInt64; k++ {
		if wireNames[k] == name {
			return k, true
		}
	}
	return 0, false
}
