package entity

// Doa is one supplication as served by the equran.id doa API. The field
// names follow that API so cached payloads round-trip unchanged.
type Doa struct {
	ID              string `json:"id"`
	Name            string `json:"nama"`
	Arabic          string `json:"ar"`
	Transliteration string `json:"tr"`
	Translation     string `json:"idn"`
	About           string `json:"tentang"`
	Source          string `json:"source"`
}

// TahlilItem is one reading in the tahlil sequence.
type TahlilItem struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
}

// KisahNabi is one prophet story.
type KisahNabi struct {
	Name      string `json:"name"`
	BirthYear string `json:"birthYear,omitempty"`
	Age       string `json:"age,omitempty"`
	Place     string `json:"place,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Story     string `json:"story"`
}
