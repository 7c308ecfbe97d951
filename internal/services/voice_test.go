package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neharmenon05/buildathon/internal/locale"
)

func TestTranscribePerLanguage(t *testing.T) {
	s := NewVoiceService(0, zap.NewNop())

	tests := []struct {
		lang     locale.Language
		contains string
	}{
		{locale.Hindi, "टमाटर"},
		{locale.English, "tomatoes"},
		{locale.Marathi, "टोमॅटो"},
		{locale.Tamil, "தக்காளி"},
	}

	for _, tt := range tests {
		result, err := s.Transcribe(context.Background(), tt.lang)
		require.NoError(t, err)
		assert.Contains(t, result.Transcript, tt.contains)
		assert.Equal(t, string(tt.lang), result.Language)
	}
}

func TestTranscribeReplyFallback(t *testing.T) {
	s := NewVoiceService(0, zap.NewNop())

	hindi, err := s.Transcribe(context.Background(), locale.Hindi)
	require.NoError(t, err)
	english, err := s.Transcribe(context.Background(), locale.English)
	require.NoError(t, err)
	marathi, err := s.Transcribe(context.Background(), locale.Marathi)
	require.NoError(t, err)

	// The reply only exists in English and Hindi; Marathi users get
	// the English text.
	assert.NotEqual(t, english.Reply, hindi.Reply)
	assert.Equal(t, english.Reply, marathi.Reply)

	// But the transcript table does know Marathi.
	assert.NotEqual(t, english.Transcript, marathi.Transcript)
}
