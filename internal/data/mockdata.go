// Package data holds the fixed reference datasets: seasonal market info,
// government schemes, trending products, action cards and the common
// product name table. All of it is immutable, read-only content.
package data

import (
	"strings"

	"github.com/neharmenon05/buildathon/internal/locale"
	"github.com/neharmenon05/buildathon/internal/models"
)

// SeasonalInfo is the current market snapshot for a well-known product.
type SeasonalInfo struct {
	CurrentPrice float64     `json:"currentPrice"`
	Demand       string      `json:"demand"`
	Season       string      `json:"season"`
	Tips         locale.Text `json:"tips"`
}

// Seasonal is keyed by the lowercase product key used in quick-select.
var Seasonal = map[string]SeasonalInfo{
	"tomato": {
		CurrentPrice: 42,
		Demand:       "high",
		Season:       "peak",
		Tips: locale.Text{
			EN: "Tomato prices are high this week. Best time to sell!",
			HI: "इस सप्ताह टमाटर की कीमतें ऊंची हैं। बेचने का सबसे अच्छा समय!",
		},
	},
	"onion": {
		CurrentPrice: 35,
		Demand:       "medium",
		Season:       "regular",
		Tips: locale.Text{
			EN: "Stable onion demand. Consider storing for better prices next month.",
			HI: "प्याज की मांग स्थिर है। अगले महीने बेहतर कीमत के लिए भंडारण करें।",
		},
	},
	"potato": {
		CurrentPrice: 28,
		Demand:       "medium",
		Season:       "regular",
		Tips: locale.Text{
			EN: "Potato prices steady. Good for bulk sales.",
			HI: "आलू की कीमतें स्थिर हैं। थोक बिक्री के लिए अच्छी हैं।",
		},
	},
	"rice": {
		CurrentPrice: 45,
		Demand:       "high",
		Season:       "peak",
		Tips: locale.Text{
			EN: "Rice demand is high due to festival season.",
			HI: "त्योहारी सीजन के कारण चावल की मांग ज्यादा है।",
		},
	},
	"wheat": {
		CurrentPrice: 25,
		Demand:       "medium",
		Season:       "regular",
		Tips: locale.Text{
			EN: "Wheat prices are stable. Good time for regular sales.",
			HI: "गेहूं की कीमतें स्थिर हैं। नियमित बिक्री के लिए अच्छा समय।",
		},
	},
}

// GovernmentSchemes are the support schemes the advisor can recommend.
var GovernmentSchemes = []models.GovernmentScheme{
	{
		Name:             "PM-KISAN",
		NameHindi:        "पीएम-किसान",
		Description:      "Direct income support of ₹6,000 per year",
		DescriptionHindi: "सालाना ₹6,000 की प्रत्यक्ष आय सहायता",
		Eligibility:      "All farmer families",
		EligibilityHindi: "सभी किसान परिवार",
	},
	{
		Name:             "Crop Insurance",
		NameHindi:        "फसल बीमा",
		Description:      "Insurance against crop loss",
		DescriptionHindi: "फसल नुकसान के खिलाफ बीमा",
		Eligibility:      "All farmers",
		EligibilityHindi: "सभी किसान",
	},
	{
		Name:             "KCC Loan",
		NameHindi:        "किसान क्रेडिट कार्ड",
		Description:      "Low interest agricultural loans",
		DescriptionHindi: "कम ब्याज पर कृषि ऋण",
		Eligibility:      "Farmers with land records",
		EligibilityHindi: "भूमि रिकॉर्ड वाले किसान",
	},
}

// TrendingProducts is the weekly trend dashboard dataset.
var TrendingProducts = []models.TrendData{
	{Product: "Tomato", Demand: "high", PriceRange: models.PriceRange{Min: 38, Max: 45}, Season: "Peak demand"},
	{Product: "Onion", Demand: "medium", PriceRange: models.PriceRange{Min: 32, Max: 38}, Season: "Stable"},
	{Product: "Green Chili", Demand: "high", PriceRange: models.PriceRange{Min: 55, Max: 65}, Season: "High demand"},
	{Product: "Potato", Demand: "medium", PriceRange: models.PriceRange{Min: 25, Max: 30}, Season: "Stable"},
}

// ActionCards are the fixed dashboard recommendations.
var ActionCards = []models.ActionCard{
	{
		ID:               "1",
		Title:            "Sell Tomatoes Now",
		TitleHindi:       "अभी टमाटर बेचें",
		Description:      "Tomato prices are at peak. Demand is high in your area.",
		DescriptionHindi: "टमाटर की कीमतें चरम पर हैं। आपके क्षेत्र में मांग अधिक है।",
		Action:           "Sell at ₹42/kg this week",
		ActionHindi:      "इस सप्ताह ₹42/किग्रा पर बेचें",
		Priority:         "high",
		Category:         "pricing",
	},
	{
		ID:               "2",
		Title:            "Store Onions",
		TitleHindi:       "प्याज स्टोर करें",
		Description:      "Onion prices expected to rise next month.",
		DescriptionHindi: "अगले महीने प्याज की कीमतों में वृद्धि की उम्मीद है।",
		Action:           "Store in cool, dry place for 4 weeks",
		ActionHindi:      "ठंडी, सूखी जगह पर 4 सप्ताह के लिए स्टोर करें",
		Priority:         "medium",
		Category:         "storage",
	},
	{
		ID:               "3",
		Title:            "Apply for PM-KISAN",
		TitleHindi:       "पीएम-किसान के लिए आवेदन करें",
		Description:      "Get ₹6,000 annual support from government.",
		DescriptionHindi: "सरकार से ₹6,000 वार्षिक सहायता प्राप्त करें।",
		Action:           "Visit nearest CSC center",
		ActionHindi:      "निकटतम सीएससी केंद्र पर जाएं",
		Priority:         "high",
		Category:         "schemes",
	},
}

// CommonProduct is a quick-select entry on the add-product form.
type CommonProduct struct {
	EN  string `json:"en"`
	HI  string `json:"hi"`
	Key string `json:"key"`
}

// CommonProducts lists the popular products with their Hindi names.
var CommonProducts = []CommonProduct{
	{EN: "Tomato", HI: "टमाटर", Key: "tomato"},
	{EN: "Onion", HI: "प्याज", Key: "onion"},
	{EN: "Potato", HI: "आलू", Key: "potato"},
	{EN: "Rice", HI: "चावल", Key: "rice"},
	{EN: "Wheat", HI: "गेहूं", Key: "wheat"},
	{EN: "Green Chili", HI: "हरी मिर्च", Key: "greenchili"},
}

// HindiName resolves the Hindi display name for a product entered in
// English. Unknown products keep the entered name.
func HindiName(name string) string {
	lower := strings.ToLower(name)
	for _, p := range CommonProducts {
		if strings.ToLower(p.EN) == lower || p.Key == lower {
			return p.HI
		}
	}
	return name
}

// WeeklyInsights are the trend dashboard's highlight lines.
var WeeklyInsights = []locale.Text{
	{EN: "Tomato prices increased by 15% this week", HI: "इस सप्ताह टमाटर की कीमतें 15% बढ़ीं"},
	{EN: "Green chili demand high due to festival season", HI: "त्योहारी सीजन के कारण हरी मिर्च की मांग ज्यादा"},
	{EN: "Best time to sell stored onions", HI: "भंडारित प्याज बेचने का सबसे अच्छा समय"},
}

// MarketUpdate is the trend dashboard's area summary line.
var MarketUpdate = locale.Text{
	EN: "Good activity in the market today. Vegetable demand has increased.",
	HI: "आज मंडी में अच्छी गतिविधि है। सब्जियों की मांग बढ़ी है।",
}

// MarketAlert is the dashboard banner line.
var MarketAlert = locale.Text{
	EN: "Tomato prices increased by 15% today. Good time to sell!",
	HI: "आज टमाटर की कीमत 15% बढ़ी है। बेचने का अच्छा समय है!",
}
