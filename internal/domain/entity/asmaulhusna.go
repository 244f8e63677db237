package entity

// AsmaulHusnaName is one of the 99 names of Allah with translations.
type AsmaulHusnaName struct {
	ID              int    `json:"id"`
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration"`
	TranslationEN   string `json:"translation_en"`
	TranslationID   string `json:"translation_id"`
	MeaningEN       string `json:"meaning_en,omitempty"`
	MeaningID       string `json:"meaning_id,omitempty"`
	AudioURL        string `json:"audio_url,omitempty"`
}
