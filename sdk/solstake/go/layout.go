package solstake

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// FieldType is the wire type of an account field. Integers are little-endian.
type FieldType uint8

const (
	FieldPubkey FieldType = iota + 1
	FieldU64
	FieldI64
	FieldU8
)

func (t FieldType) Width() int {
	switch t {
	case FieldPubkey:
		return solana.PublicKeyLength
	case FieldU64, FieldI64:
		return 8
	case FieldU8:
		return 1
	default:
		return 0
	}
}

func (t FieldType) String() string {
	switch t {
	case FieldPubkey:
		return "pubkey"
	case FieldU64:
		return "u64"
	case FieldI64:
		return "i64"
	case FieldU8:
		return "u8"
	default:
		return fmt.Sprintf("FieldType(%d)", uint8(t))
	}
}

// Field is one entry of an account's binary contract. Offset counts from the
// start of the account data, discriminator included.
type Field struct {
	Name   string
	Type   FieldType
	Offset int
	Width  int
}

// Layout describes a fixed-size account: an 8-byte discriminator followed by
// fields packed contiguously in declaration order.
type Layout struct {
	Name   string
	Fields []Field
	Size   int

	index map[string]int
}

type fieldDef struct {
	name string
	typ  FieldType
}

// Offsets are assigned here and nowhere else.
func mustLayout(name string, defs ...fieldDef) *Layout {
	l := &Layout{
		Name:   name,
		Fields: make([]Field, 0, len(defs)),
		index:  make(map[string]int, len(defs)),
	}
	offset := discriminatorSize
	for _, def := range defs {
		width := def.typ.Width()
		if width == 0 {
			panic(fmt.Sprintf("solstake: layout %s field %q has unknown type %s", name, def.name, def.typ))
		}
		if _, dup := l.index[def.name]; dup {
			panic(fmt.Sprintf("solstake: layout %s declares field %q twice", name, def.name))
		}
		l.index[def.name] = len(l.Fields)
		l.Fields = append(l.Fields, Field{Name: def.name, Type: def.typ, Offset: offset, Width: width})
		offset += width
	}
	l.Size = offset
	return l
}

// Field returns the named field.
func (l *Layout) Field(name string) (Field, bool) {
	i, ok := l.index[name]
	if !ok {
		return Field{}, false
	}
	return l.Fields[i], true
}

func (l *Layout) view(data []byte) (accountView, error) {
	if len(data) < l.Size {
		return accountView{}, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrMalformedAccount, l.Name, l.Size, len(data))
	}
	return accountView{layout: l, data: data}, nil
}

// accountView reads fields by name from data already checked against its layout.
// A bad name or type is a programming error and panics.
type accountView struct {
	layout *Layout
	data   []byte
}

func (v accountView) bytes(name string, typ FieldType) []byte {
	f, ok := v.layout.Field(name)
	if !ok {
		panic(fmt.Sprintf("solstake: layout %s has no field %q", v.layout.Name, name))
	}
	if f.Type != typ {
		panic(fmt.Sprintf("solstake: layout %s field %q is %s, read as %s", v.layout.Name, name, f.Type, typ))
	}
	return v.data[f.Offset : f.Offset+f.Width]
}

func (v accountView) pubkey(name string) solana.PublicKey {
	return solana.PublicKeyFromBytes(v.bytes(name, FieldPubkey))
}

func (v accountView) u64(name string) uint64 {
	return binary.LittleEndian.Uint64(v.bytes(name, FieldU64))
}

func (v accountView) i64(name string) int64 {
	return int64(binary.LittleEndian.Uint64(v.bytes(name, FieldI64)))
}

func (v accountView) u8(name string) uint8 {
	return v.bytes(name, FieldU8)[0]
}
