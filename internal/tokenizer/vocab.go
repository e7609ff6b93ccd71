package tokenizer

// vocab is a bijective symbol-to-id mapping. Learned symbols receive
// monotonically increasing ids starting strictly above the special-token
// range; ids are never reused and the reverse map is kept consistent with
// the forward map on every mutation.
type vocab struct {
	ids     map[string]int32
	symbols map[int32]string
	nextID  int32
}

// newVocab returns a vocabulary seeded with the special tokens at their
// fixed ids. The first learned id is one above the maximum special id.
func newVocab() *vocab {
	v := &vocab{
		ids:     make(map[string]int32),
		symbols: make(map[int32]string),
	}
	v.addFixed(EndOfText, EndOfTextID)
	v.addFixed(Padding, PaddingID)
	v.addFixed(StartOfText, StartOfTextID)
	v.addFixed(Unknown, UnknownID)
	v.addFixed(Mask, MaskID)
	return v
}

// emptyVocab returns a vocabulary with no entries, for loaders that bring
// their own id assignments.
func emptyVocab() *vocab {
	return &vocab{
		ids:     make(map[string]int32),
		symbols: make(map[int32]string),
	}
}

// add inserts sym at the next free id if absent and returns its id.
func (v *vocab) add(sym string) int32 {
	if id, ok := v.ids[sym]; ok {
		return id
	}
	id := v.nextID
	v.ids[sym] = id
	v.symbols[id] = sym
	v.nextID++
	return id
}

// addFixed inserts sym at a caller-assigned id and bumps the next free id
// past it.
func (v *vocab) addFixed(sym string, id int32) {
	v.ids[sym] = id
	v.symbols[id] = sym
	if id >= v.nextID {
		v.nextID = id + 1
	}
}

// id looks up the id for a symbol.
func (v *vocab) id(sym string) (int32, bool) {
	id, ok := v.ids[sym]
	return id, ok
}

// symbol looks up the symbol for an id.
func (v *vocab) symbol(id int32) (string, bool) {
	sym, ok := v.symbols[id]
	return sym, ok
}

func (v *vocab) size() int {
	return len(v.ids)
}
