package entity

// Surah is one chapter of the Quran as served by the equran.id v2 API.
type Surah struct {
	Number      int               `json:"nomor"`
	Name        string            `json:"nama"`
	NameLatin   string            `json:"namaLatin"`
	AyahCount   int               `json:"jumlahAyat"`
	Revelation  string            `json:"tempatTurun"`
	Translation string            `json:"arti"`
	Description string            `json:"deskripsi"`
	AudioFull   map[string]string `json:"audioFull,omitempty"`
}

// Ayah is a single verse with its translations and per-reciter audio links.
type Ayah struct {
	Number     int               `json:"nomorAyat"`
	Arabic     string            `json:"teksArab"`
	Latin      string            `json:"teksLatin"`
	Indonesian string            `json:"teksIndonesia"`
	Audio      map[string]string `json:"audio,omitempty"`
}

// SurahDetail is a surah together with all of its verses.
type SurahDetail struct {
	Surah
	Ayat []Ayah `json:"ayat"`
}

// RandomAyah pairs a verse with the surah it was drawn from.
type RandomAyah struct {
	Surah Surah `json:"surah"`
	Ayah  Ayah  `json:"ayah"`
}
