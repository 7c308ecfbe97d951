package services

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/neharmenon05/buildathon/internal/locale"
	"github.com/neharmenon05/buildathon/internal/models"
)

// transcripts is the canned "speech recognition" table. The captured
// audio is never inspected; each language maps to one fixed question.
var transcripts = map[locale.Language]string{
	locale.Hindi:   "मेरे पास 10 किलो टमाटर है, मैं कितने में बेचूं?",
	locale.English: "I have 10 kg tomatoes, what price should I sell?",
	locale.Marathi: "माझ्याकडे 10 किलो टोमॅटो आहेत, किती भावाने विकावे?",
	locale.Tamil:   "என்னிடம் 10 கிலோ தக்காளி உள்ளது, எவ்வளவு விலைக்கு விற்க வேண்டும்?",
}

var voiceReply = locale.Text{
	EN: "I understand your question. Current tomato rate is ₹42/kg. Demand is good, so this is the right time to sell.",
	HI: "आपका सवाल समझ गया। टमाटर की वर्तमान दर ₹42/किग्रा है। मांग अच्छी है, इसलिए यह बेचने का सही समय है।",
}

// VoiceService simulates voice-query transcription and the assistant's
// spoken reply.
type VoiceService struct {
	delay    time.Duration
	inFlight atomic.Bool
	logger   *zap.Logger
}

func NewVoiceService(delay time.Duration, logger *zap.Logger) *VoiceService {
	return &VoiceService{delay: delay, logger: logger}
}

// Transcribe returns the canned transcript for lang. Unknown tags fall
// back to English; the reply only exists in English and Hindi.
func (s *VoiceService) Transcribe(ctx context.Context, lang locale.Language) (models.VoiceResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return models.VoiceResult{}, ErrGenerationInFlight
	}
	defer s.inFlight.Store(false)

	if err := simulateLatency(ctx, s.delay); err != nil {
		return models.VoiceResult{}, err
	}

	transcript, ok := transcripts[lang]
	if !ok {
		transcript = transcripts[locale.English]
	}
	result := models.VoiceResult{
		Transcript: transcript,
		Reply:      voiceReply.In(lang),
		Language:   string(lang),
	}
	s.logger.Debug("voice query transcribed", zap.String("language", string(lang)))
	return result, nil
}
