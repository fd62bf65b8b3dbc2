package assets

// Catalog holds the fixed outfit asset tables the synthesizer cycles
// through. It is built once at startup and never mutated afterwards;
// every consumer receives the same pointer.
type Catalog struct {
	Female SlotCatalog
	Male   SlotCatalog
}

// SlotCatalog lists the available asset filenames per garment slot for
// one gender folder. Dresses is empty for the male catalog.
type SlotCatalog struct {
	Folder  string
	Jackets []string
	Tops    []string
	Bottoms []string
	Dresses []string
	Bags    []string
	Shoes   []string
}

func DefaultCatalog() *Catalog {
	return &Catalog{
		Female: SlotCatalog{
			Folder:  "Female",
			Jackets: []string{"jacket_01.jpeg", "jacket_02.jpeg", "jacket_03.jpeg", "jacket_04.jpeg"},
			Tops:    []string{"top_01.jpeg", "top_02.jpeg", "top_03.jpeg", "top_04.jpeg"},
			Bottoms: []string{"bot_01.jpeg", "bot_02.jpeg", "bot_03.jpeg", "bot_04.jpeg"},
			Dresses: []string{"dress_01.jpeg", "dress_02.jpeg", "dress_03.jpeg"},
			Bags:    []string{"bag_01.jpeg", "bag_02.jpeg", "bag_03.jpeg"},
			Shoes:   []string{"shoe_01.jpeg", "shoe_02.jpeg", "shoe_03.jpeg"},
		},
		Male: SlotCatalog{
			Folder:  "Male",
			Jackets: []string{"jacket_01.jpeg", "jacket_02.jpeg", "jacket_03.jpeg"},
			Tops:    []string{"top_01.jpeg", "top_02.jpeg", "top_03.jpeg", "top_04.jpeg"},
			Bottoms: []string{"bot_01.jpeg", "bot_02.jpeg", "bot_03.jpeg"},
			Bags:    []string{"bag_01.jpeg", "bag_02.jpeg"},
			Shoes:   []string{"shoe_01.jpeg", "shoe_02.jpeg", "shoe_03.jpeg"},
		},
	}
}

// ForGender resolves a normalized gender value ("male"/"female") to its
// slot catalog. Anything that is not "male" falls back to the female
// catalog, matching the request defaulting rules.
func (c *Catalog) ForGender(gender string) *SlotCatalog {
	if gender == "male" {
		return &c.Male
	}
	return &c.Female
}

// Pick returns the entry at offset modulo the list length. Selection is
// deterministic and cycles when the trip is longer than the list.
func Pick(list []string, offset int) string {
	if len(list) == 0 {
		return ""
	}
	return list[offset%len(list)]
}

// Contains reports whether name is one of the listed filenames.
func Contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
