package ids

// Dictionary looks up the canonical Han character for a decomposition
// string, and vice versa, so the trainer's merge-list rendering (§6.4 of
// the training contract) can substitute a recognizable character for a
// merge that happens to reconstruct a known decomposition.
type Dictionary interface {
	// CharacterForIDS returns the canonical character for the given IDS
	// string, and whether one was found.
	CharacterForIDS(ids string) (string, bool)

	// IDSForCharacter returns the IDS string for the given character, and
	// whether one was found.
	IDSForCharacter(char string) (string, bool)
}

// MapDictionary is an in-memory Dictionary backed by a character->IDS map,
// the same shape as the original's dictionary.json.
type MapDictionary struct {
	byChar map[string]string
	byIDS  map[string]string
}

// NewMapDictionary builds a MapDictionary from a character->IDS mapping,
// indexing it in both directions.
func NewMapDictionary(characterToIDS map[string]string) *MapDictionary {
	d := &MapDictionary{
		byChar: make(map[string]string, len(characterToIDS)),
		byIDS:  make(map[string]string, len(characterToIDS)),
	}
	for char, seq := range characterToIDS {
		d.byChar[char] = seq
		// A decomposition shared by more than one character keeps whichever
		// character is inserted first into this map.
		if _, exists := d.byIDS[seq]; !exists {
			d.byIDS[seq] = char
		}
	}
	return d
}

func (d *MapDictionary) CharacterForIDS(ids string) (string, bool) {
	char, ok := d.byIDS[ids]
	return char, ok
}

func (d *MapDictionary) IDSForCharacter(char string) (string, bool) {
	seq, ok := d.byChar[char]
	return seq, ok
}
