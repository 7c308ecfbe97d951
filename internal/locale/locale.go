package locale

// Language is a UI language tag selected by the user.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Marathi Language = "mr"
	Tamil   Language = "ta"
)

// Supported lists the tags offered by the language selector.
var Supported = []Language{English, Hindi, Marathi, Tamil}

// Parse normalizes a raw tag. Unknown or empty tags become English,
// which is also the content fallback for mr/ta.
func Parse(tag string) Language {
	switch Language(tag) {
	case English, Hindi, Marathi, Tamil:
		return Language(tag)
	}
	return English
}

// Text is one piece of user-facing content in its two authored variants.
// Most content only exists in English and Hindi; Marathi and Tamil users
// get the English text.
type Text struct {
	EN string `json:"en"`
	HI string `json:"hi"`
}

// In returns the variant for lang. Any tag other than hi resolves to EN.
func (t Text) In(lang Language) string {
	if lang == Hindi {
		return t.HI
	}
	return t.EN
}
