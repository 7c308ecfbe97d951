package services

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/neharmenon05/buildathon/internal/metrics"
	"github.com/neharmenon05/buildathon/internal/models"
)

// festivals feed the caption templates; one is picked per generation.
var festivals = []string{"दिवाली", "होली", "नवरात्रि", "करवा चौथ"}

type captionTemplate func(p models.Product, festival string) string

var hindiCaptions = []captionTemplate{
	func(p models.Product, festival string) string {
		return fmt.Sprintf("🌟 ताज़े %s 🥗\n₹%s/%s\n%s के लिए विशेष! 🎉\nआज ही ऑर्डर करें! 📞\n#ताजी_सब्जी #%s_स्पेशल",
			p.NameHindi, formatPrice(p.Price), p.Unit, festival, festival)
	},
	func(p models.Product, festival string) string {
		return fmt.Sprintf("🔥 फ्रेश %s 🌱\n💰 केवल ₹%s/%s\n🎊 %s ऑफर!\n📲 अभी संपर्क करें!\n#गुणवत्ता #फ्रेश_मंडी",
			p.NameHindi, formatPrice(p.Price), p.Unit, festival)
	},
	func(p models.Product, festival string) string {
		return fmt.Sprintf("⭐ प्रीमियम %s ⭐\n🏷️ ₹%s/%s\n🎁 %s धमाका ऑफर!\n✅ होम डिलीवरी उपलब्ध\n#सब्जी_मंडी #ऑर्गेनिक",
			p.NameHindi, formatPrice(p.Price), p.Unit, festival)
	},
}

var englishCaptions = []captionTemplate{
	func(p models.Product, festival string) string {
		return fmt.Sprintf("🌟 Fresh %s 🥗\n₹%s/%s\nSpecial for %s! 🎉\nOrder now! 📞\n#FreshVeggies #Festival_Special",
			p.Name, formatPrice(p.Price), p.Unit, festival)
	},
	func(p models.Product, _ string) string {
		return fmt.Sprintf("🔥 Premium %s 🌱\n💰 Only ₹%s/%s\n🎊 Festival Offer!\n📲 Call now!\n#Quality #FreshMarket",
			p.Name, formatPrice(p.Price), p.Unit)
	},
	func(p models.Product, _ string) string {
		return fmt.Sprintf("⭐ Organic %s ⭐\n🏷️ ₹%s/%s\n🎁 Special Festival Price!\n✅ Home delivery available\n#Organic #VeggieMarket",
			p.Name, formatPrice(p.Price), p.Unit)
	},
}

// MarketingService generates WhatsApp promotion captions for a product.
type MarketingService struct {
	rand     *randSource
	delay    time.Duration
	inFlight atomic.Bool
	logger   *zap.Logger
}

// NewMarketingService creates the caption generator. delay is the
// simulated generation time; seed 0 uses a time-based seed.
func NewMarketingService(delay time.Duration, seed int64, logger *zap.Logger) *MarketingService {
	return &MarketingService{
		rand:   newRandSource(seed),
		delay:  delay,
		logger: logger,
	}
}

// Generate produces one caption pair for the product. The Hindi and
// English templates are picked independently; both variants share the
// same festival. Suggested price is a 5% markup on the market price.
func (s *MarketingService) Generate(ctx context.Context, p models.Product) (models.MarketingContent, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return models.MarketingContent{}, ErrGenerationInFlight
	}
	defer s.inFlight.Store(false)

	if err := simulateLatency(ctx, s.delay); err != nil {
		return models.MarketingContent{}, err
	}

	festival := festivals[s.rand.Intn(len(festivals))]
	hindi := hindiCaptions[s.rand.Intn(len(hindiCaptions))](p, festival)
	english := englishCaptions[s.rand.Intn(len(englishCaptions))](p, festival)

	content := models.MarketingContent{
		WhatsappCaption:      english,
		WhatsappCaptionHindi: hindi,
		SuggestedPrice:       int(math.Round(p.Price * 1.05)),
		MarketDemand:         metrics.DemandTier(p.Price),
	}
	s.logger.Debug("marketing content generated",
		zap.String("product_id", p.ID),
		zap.String("festival", festival),
		zap.String("demand", content.MarketDemand))
	return content, nil
}
