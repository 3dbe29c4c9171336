package btf

import "slices"

// TypeID is a 32-bit ordinal. A type's id is its 1-based position in the
// Catalog; id 0 is reserved for void and is never stored.
type TypeID uint32

// Type is implemented by every decoded entry variant.
type Type interface {
	Kind() Kind
}

// Void is the sentinel returned for TypeID 0. It is never produced by the
// decoder and never appears in a Catalog.
type Void struct{}

func (Void) Kind() Kind { return KindVoid }

// IntEncoding flags of an Int entry. At most one may be set.
type IntEncoding uint8

const (
	IntEncodingNone   IntEncoding = 0
	IntEncodingSigned IntEncoding = 1 << 0
	IntEncodingChar   IntEncoding = 1 << 1
	IntEncodingBool   IntEncoding = 1 << 2
)

// Int is a base integer type: a name, a byte width, and a signed/char/bool
// bit-layout carried in the trailing integer_info word.
type Int struct {
	Name     string
	Size     uint32 // byte width: 1, 2, 4, 8, or 16
	Bits     uint8  // significant bits, <= 128 and <= 8*Size
	Offset   uint8  // bit offset of the value within Size bytes
	IsSigned bool
	IsChar   bool
	IsBool   bool
}

func (Int) Kind() Kind { return KindInt }

// Ptr is a pointer to ReferencedType.
type Ptr struct {
	ReferencedType TypeID
}

func (Ptr) Kind() Kind { return KindPtr }

// Const qualifies ReferencedType as const.
type Const struct {
	ReferencedType TypeID
}

func (Const) Kind() Kind { return KindConst }

// Volatile qualifies ReferencedType as volatile.
type Volatile struct {
	ReferencedType TypeID
}

func (Volatile) Kind() Kind { return KindVolatile }

// Array is ElementType[NumElements], indexed by IndexType.
type Array struct {
	ElementType TypeID
	IndexType   TypeID
	NumElements uint32
}

func (Array) Kind() Kind { return KindArray }

// Typedef names ReferencedType.
type Typedef struct {
	Name           string
	ReferencedType TypeID
}

func (Typedef) Kind() Kind { return KindTypedef }

// EnumValue is one (name, value) pair of an Enum.
type EnumValue struct {
	Name  string
	Value int32
}

// Enum is an optionally-named integer enumeration with an ordered,
// nonempty list of named values.
type Enum struct {
	Name   string
	Size   uint8 // byte width: 1, 2, 4, or 8
	Values []EnumValue
}

func (Enum) Kind() Kind { return KindEnum }

// FwdKind names whether a Fwd forward-declares a struct or a union.
type FwdKind uint8

const (
	FwdStruct FwdKind = iota
	FwdUnion
)

// Fwd is a forward declaration of a struct or union by name.
type Fwd struct {
	Name string
	Fwd  FwdKind
}

func (Fwd) Kind() Kind { return KindFwd }

// Func names a function symbol whose signature is ReferencedType, a
// FuncProto entry.
type Func struct {
	Name           string
	ReferencedType TypeID
}

func (Func) Kind() Kind { return KindFunc }

// FuncParam is one (optional name, type) parameter of a FuncProto.
type FuncParam struct {
	Name string
	Type TypeID
}

// FuncProto is a function prototype: an ordered parameter list and a
// Variadic flag extracted from a trailing (anonymous, void) sentinel
// parameter.
type FuncProto struct {
	ReturnType TypeID
	Params     []FuncParam
	Variadic   bool
}

func (FuncProto) Kind() Kind { return KindFuncProto }

// Member is one field of a Struct or Union.
//
// When the owning composite's kind_flag is clear, BitOffset is a plain
// byte*8 offset and BitSize is 0. When kind_flag is set, the raw 32-bit
// offset word is a packed (bit_size<<24 | bit_offset) pair and is split
// accordingly — the kernel's bitfield encoding.
type Member struct {
	Name      string
	Type      TypeID
	BitOffset uint32
	BitSize   uint32
}

// Struct is a named-or-anonymous composite type with an ordered member
// list and a total byte size.
type Struct struct {
	Name    string
	Size    uint32
	Members []Member
}

func (Struct) Kind() Kind { return KindStruct }

// Union is structurally identical to Struct; kept as a distinct Go type
// so Kind() and type switches tell them apart.
type Union struct {
	Name    string
	Size    uint32
	Members []Member
}

func (Union) Kind() Kind { return KindUnion }

// Catalog is the ordered, 1-indexed collection of typed entries produced
// by Load. It is built once and is immutable thereafter.
type Catalog struct {
	types []Type
}

// Len reports the number of decoded entries (not counting the implicit
// void at id 0).
func (c *Catalog) Len() int {
	return len(c.types)
}

// ByID returns the entry with the given id. Id 0 always returns the Void
// sentinel; the core does not validate that reference fields elsewhere in
// the catalog actually name an id ByID would succeed for.
func (c *Catalog) ByID(id TypeID) (Type, bool) {
	if id == 0 {
		return Void{}, true
	}
	idx := int(id) - 1
	if idx < 0 || idx >= len(c.types) {
		return nil, false
	}
	return c.types[idx], true
}

// All returns every decoded entry in catalog order.
func (c *Catalog) All() []Type {
	return c.types
}

// ByKind returns every entry of the given kind, in catalog order.
func (c *Catalog) ByKind(kind Kind) []Type {
	var out []Type
	for _, t := range c.types {
		if t.Kind() == kind {
			out = append(out, t)
		}
	}
	return out
}

// nameOf extracts the name of an entry variant that carries one, or ""
// for variants that don't (Ptr, Const, Volatile, Array).
func nameOf(t Type) string {
	switch v := t.(type) {
	case Int:
		return v.Name
	case Typedef:
		return v.Name
	case Enum:
		return v.Name
	case Fwd:
		return v.Name
	case Func:
		return v.Name
	case Struct:
		return v.Name
	case Union:
		return v.Name
	default:
		return ""
	}
}

// ByName returns the ids of every entry whose name matches exactly,
// sorted ascending. Anonymous entries (Ptr, Const, Volatile, Array, and
// optionally-named composites with no name) never match.
func (c *Catalog) ByName(name string) []TypeID {
	if name == "" {
		return nil
	}

	var ids []TypeID
	for i, t := range c.types {
		if nameOf(t) == name {
			ids = append(ids, TypeID(i+1))
		}
	}

	slices.SortFunc(ids, func(a, b TypeID) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})

	return ids
}
