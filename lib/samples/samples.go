package samples

// Sample is a named sample object
type Sample struct {
	Name string
	// Value returns a populated object
	Value func() any
	// Empty returns an object ready to be decoded into
	Empty func() any
}

// All returns all sample shapes
func All() []Sample {
	return []Sample{
		{
			Name: "primitives",
			Value: func() any {
				return &Primitives{
					ID: 1 << 50, Count: -42, Ratio: 0.125, Temp: 21.5, Port: 8080, Sign: -1,
					Active: true, Mode: 5, Level: 3000, Delta: -999,
				}
			},
			Empty: func() any { return &Primitives{} },
		},
		{
			Name: "inventory",
			Value: func() any {
				return &Inventory{
					Owner: "warehouse-7",
					Items: []Item{
						{SKU: 1001, Qty: 3, Name: "bolt"},
						{SKU: 1002, Qty: 12, Name: "nut"},
						{SKU: 2001, Qty: 1, Name: "gear"},
					},
					Scores:  []float32{0.5, 1.25, -3},
					Payload: []byte("payload"),
					Slots:   [4]uint32{1, 2, 3, 4},
				}
			},
			Empty: func() any { return &Inventory{} },
		},
		{
			Name: "note",
			Value: func() any {
				n := NewNote()
				n.Subject = "meeting"
				n.Lines = []string{"first line", "second line"}
				copy(n.Code, "A-17")
				return n
			},
			Empty: func() any { return NewNote() },
		},
		{
			Name: "record",
			Value: func() any {
				return &Record{Header: Header{Version: 2, Kind: 513}, Stamp: Stamp{Created: 1700000000}, Body: "body"}
			},
			Empty: func() any { return &Record{} },
		},
		{
			Name:  "diamond",
			Value: func() any { return NewMultipleInheritance(3, 78, 11, 55) },
			Empty: func() any { return NewMultipleInheritance(0, 0, 0, 0) },
		},
	}
}

// Lookup returns the sample with the given name
func Lookup(name string) (Sample, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}
