package samples

import (
	"github.com/ValentinKolb/dSER/lib/archive"
	"github.com/ValentinKolb/dSER/lib/ext"
	"github.com/ValentinKolb/dSER/lib/traits"
)

// --------------------------------------------------------------------------
// Primitives
// --------------------------------------------------------------------------

// Primitives holds one field of every fixed width and a bit packed block
// with a 2 byte value at an unaligned position
type Primitives struct {
	ID     uint64
	Count  int32
	Ratio  float64
	Temp   float32
	Port   uint16
	Sign   int8
	Active bool
	Mode   uint8  // 3 bits
	Level  uint16 // 12 bits
	Delta  int16  // -1000..1000
}

func (p *Primitives) Describe(a archive.Archive) {
	archive.Value8b(a, &p.ID)
	archive.Value4b(a, &p.Count)
	archive.Value8b(a, &p.Ratio)
	archive.Value4b(a, &p.Temp)
	archive.Value1b(a, &p.Sign)
	archive.EnableBitPacking(a, func(a archive.Archive) {
		archive.Bool(a, &p.Active)
		archive.Bits(a, &p.Mode, 3)
		archive.Value2b(a, &p.Port)
		archive.Bits(a, &p.Level, 12)
		archive.BitsRange(a, &p.Delta, -1000, 1000)
	})
}

// --------------------------------------------------------------------------
// Containers
// --------------------------------------------------------------------------

// Item is an element of Inventory
type Item struct {
	SKU  uint32
	Qty  uint16
	Name string
}

func (i *Item) Describe(a archive.Archive) {
	archive.Value4b(a, &i.SKU)
	archive.Value2b(a, &i.Qty)
	archive.String(a, &i.Name, 64)
}

// Inventory holds resizable containers and a fixed one
type Inventory struct {
	Owner   string
	Items   []Item
	Scores  []float32
	Payload []byte
	Slots   [4]uint32
}

// MaxItems bounds the number of items of an Inventory
const MaxItems = 1024

func (inv *Inventory) Describe(a archive.Archive) {
	archive.String(a, &inv.Owner, 128)
	archive.Container(a, traits.Slice[Item]{}, &inv.Items, MaxItems, archive.Element[Item])
	archive.Container4b[[]float32, float32](a, traits.Slice[float32]{}, &inv.Scores, 0)
	archive.Bytes(a, &inv.Payload, 0)
	slots := inv.Slots[:]
	archive.Container4b[[]uint32, uint32](a, traits.Fixed[uint32]{}, &slots, 0)
}

// --------------------------------------------------------------------------
// Text
// --------------------------------------------------------------------------

// Note holds text in a Go string and in a fixed NUL terminated buffer
type Note struct {
	Subject string
	Lines   []string
	Code    []byte // fixed size, NUL terminated
}

// NoteCodeSize is the storage size of Note.Code
const NoteCodeSize = 16

// NewNote creates a note with allocated code storage
func NewNote() *Note {
	return &Note{Code: make([]byte, NoteCodeSize)}
}

func (n *Note) Describe(a archive.Archive) {
	archive.String(a, &n.Subject, 256)
	archive.Container(a, traits.Slice[string]{}, &n.Lines, 64, func(a archive.Archive, s *string) {
		archive.String(a, s, 0)
	})
	archive.Text(a, traits.CString{}, &n.Code, 0)
}

// --------------------------------------------------------------------------
// Plain multiple inheritance
// --------------------------------------------------------------------------

// Header is a plain base of Record
type Header struct {
	Version uint8
	Kind    uint16
}

func (h *Header) Describe(a archive.Archive) {
	archive.Value1b(a, &h.Version)
	archive.Value2b(a, &h.Kind)
}

// Stamp is a plain base of Record
type Stamp struct {
	Created int64
}

func (s *Stamp) Describe(a archive.Archive) {
	archive.Value8b(a, &s.Created)
}

// Record derives from Header and Stamp. Both bases are written every time,
// Header first.
type Record struct {
	Header
	Stamp
	Body string
}

func (r *Record) Describe(a archive.Archive) {
	archive.Ext(a, &r.Header, ext.BaseClass[*Header]{})
	archive.Ext(a, &r.Stamp, ext.BaseClass[*Stamp]{})
	archive.String(a, &r.Body, 0)
}

// --------------------------------------------------------------------------
// Diamond
// --------------------------------------------------------------------------

// Base is the shared virtual base of the diamond
type Base struct {
	X uint8
}

func (b *Base) Describe(a archive.Archive) {
	archive.Value1b(a, &b.X)
}

// Derive1 derives virtually from Base
type Derive1 struct {
	Base *Base
	Y1   uint8
}

func (d *Derive1) DescribeContext(a archive.ContextArchive) {
	archive.ExtContext(a, d.Base, ext.VirtualBaseClass[*Base]{})
	archive.Value1b(a, &d.Y1)
}

// Derive2 derives virtually from Base
type Derive2 struct {
	Base *Base
	Y2   uint8
}

func (d *Derive2) DescribeContext(a archive.ContextArchive) {
	archive.ExtContext(a, d.Base, ext.VirtualBaseClass[*Base]{})
	archive.Value1b(a, &d.Y2)
}

// MultipleInheritance derives from Derive1 and Derive2, which share one Base
type MultipleInheritance struct {
	Derive1 Derive1
	Derive2 Derive2
	Z       uint8
}

// NewMultipleInheritance creates the diamond with one shared Base
func NewMultipleInheritance(x, y1, y2, z uint8) *MultipleInheritance {
	b := &Base{X: x}
	return &MultipleInheritance{
		Derive1: Derive1{Base: b, Y1: y1},
		Derive2: Derive2{Base: b, Y2: y2},
		Z:       z,
	}
}

func (m *MultipleInheritance) DescribeContext(a archive.ContextArchive) {
	archive.ExtContext(a, &m.Derive1, ext.ContextBaseClass[*Derive1]{})
	archive.ExtContext(a, &m.Derive2, ext.ContextBaseClass[*Derive2]{})
	archive.Value1b(a, &m.Z)
}
