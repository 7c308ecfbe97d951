package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, English, Parse("en"))
	assert.Equal(t, Hindi, Parse("hi"))
	assert.Equal(t, Marathi, Parse("mr"))
	assert.Equal(t, Tamil, Parse("ta"))

	// Unknown and empty tags fall back to English.
	assert.Equal(t, English, Parse(""))
	assert.Equal(t, English, Parse("fr"))
	assert.Equal(t, English, Parse("hindi"))
}

func TestTextFallback(t *testing.T) {
	text := Text{EN: "Sell now", HI: "अभी बेचें"}

	assert.Equal(t, "Sell now", text.In(English))
	assert.Equal(t, "अभी बेचें", text.In(Hindi))

	// Marathi and Tamil only have display-level support; content
	// resolves to the English variant.
	assert.Equal(t, text.In(English), text.In(Marathi))
	assert.Equal(t, text.In(English), text.In(Tamil))
}
