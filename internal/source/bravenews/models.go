package bravenews

// APIResponse is the aggregated feed document.
type APIResponse struct {
	Hash         string    `json:"hash"`
	FeaturedItem *APIItem  `json:"featured_item"`
	Pages        []APIPage `json:"pages"`
}

type APIPage struct {
	Items []APIPageItem `json:"items"`
}

type APIPageItem struct {
	CardType string    `json:"card_type"`
	Items    []APIItem `json:"items"`
}

// APIItem is a tagged union; Type selects which optional fields apply.
type APIItem struct {
	Type               string       `json:"type"`
	Data               *APIMetadata `json:"data"`
	CreativeInstanceID string       `json:"creative_instance_id"`
	OffersCategory     string       `json:"offers_category"`

	// display_ad only
	UUID        string `json:"uuid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	TargetURL   string `json:"target_url"`
	CTAText     string `json:"cta_text"`
	Dimensions  string `json:"dimensions"`
}

type APIMetadata struct {
	Title                   string  `json:"title"`
	Description             string  `json:"description"`
	URL                     string  `json:"url"`
	ImageURL                string  `json:"image_url"`
	PublisherID             string  `json:"publisher_id"`
	PublisherName           string  `json:"publisher_name"`
	CategoryName            string  `json:"category_name"`
	PublishTime             string  `json:"publish_time"`
	RelativeTimeDescription string  `json:"relative_time_description"`
	Score                   float64 `json:"score"`
}

const (
	itemArticle         = "article"
	itemPromotedArticle = "promoted_article"
	itemDeal            = "deal"
	itemDisplayAd       = "display_ad"
)
