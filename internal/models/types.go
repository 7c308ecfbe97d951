package models

import "time"

// Product is one tracked inventory item. JSON field names match the
// persisted snapshot record, so the stored array round-trips unchanged.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	NameHindi     string    `json:"nameHindi"`
	Type          string    `json:"type"`
	Quantity      float64   `json:"quantity"`
	Unit          string    `json:"unit"`
	Price         float64   `json:"price"`
	SupplierPrice *float64  `json:"supplierPrice,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ActionCard is a fixed dashboard recommendation.
type ActionCard struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	TitleHindi       string `json:"titleHindi"`
	Description      string `json:"description"`
	DescriptionHindi string `json:"descriptionHindi"`
	Action           string `json:"action"`
	ActionHindi      string `json:"actionHindi"`
	Priority         string `json:"priority"` // high / medium / low
	Category         string `json:"category"` // pricing / storage / schemes
}

// PriceRange is the observed market price band for a trending product.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// TrendData is a fixed market-trend entry.
type TrendData struct {
	Product    string     `json:"product"`
	Demand     string     `json:"demand"` // high / medium / low
	PriceRange PriceRange `json:"priceRange"`
	Season     string     `json:"season"`
}

// MarketingContent is one generated WhatsApp promotion. Both language
// variants are returned together; the caller picks which to display.
type MarketingContent struct {
	WhatsappCaption      string `json:"whatsappCaption"`
	WhatsappCaptionHindi string `json:"whatsappCaptionHindi"`
	SuggestedPrice       int    `json:"suggestedPrice"`
	MarketDemand         string `json:"marketDemand"` // high / medium / low
}

// BusinessAdvice is one generated analysis for a product.
type BusinessAdvice struct {
	CostSavings            []string `json:"costSavings"`
	CostSavingsHindi       []string `json:"costSavingsHindi"`
	SupplierTips           []string `json:"supplierTips"`
	SupplierTipsHindi      []string `json:"supplierTipsHindi"`
	GovernmentSchemes      []string `json:"governmentSchemes"`
	GovernmentSchemesHindi []string `json:"governmentSchemesHindi"`
}

// GovernmentScheme is a fixed support-scheme entry.
type GovernmentScheme struct {
	Name             string `json:"name"`
	NameHindi        string `json:"nameHindi"`
	Description      string `json:"description"`
	DescriptionHindi string `json:"descriptionHindi"`
	Eligibility      string `json:"eligibility"`
	EligibilityHindi string `json:"eligibilityHindi"`
}

// VoiceResult is the simulated transcription of a voice query plus the
// canned assistant reply. No real speech recognition happens anywhere;
// the transcript is a fixed sentence per language.
type VoiceResult struct {
	Transcript string `json:"transcript"`
	Reply      string `json:"reply"`
	Language   string `json:"language"`
}

// DashboardStats are the catalog aggregates shown on the dashboard.
type DashboardStats struct {
	TotalValue    float64 `json:"totalValue"`
	TotalProducts int     `json:"totalProducts"`
	AvgPrice      int     `json:"avgPrice"`
}
