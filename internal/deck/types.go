// Package deck holds the pitch deck content: the section registry and the static
// records every render surface draws from.
package deck

// Founder is one member of the founding team.
type Founder struct {
	Name         string   `yaml:"name" json:"name"`
	Role         string   `yaml:"role" json:"role"`
	Description  string   `yaml:"description" json:"description"`
	Image        string   `yaml:"image" json:"image"`
	Achievements []string `yaml:"achievements" json:"achievements"`
}

// FinancialMetric is one year of revenue projections in 万元.
type FinancialMetric struct {
	Year         string  `yaml:"year" json:"year"`
	Conservative float64 `yaml:"conservative" json:"conservative"`
	Base         float64 `yaml:"base" json:"base"`
	Optimistic   float64 `yaml:"optimistic" json:"optimistic"`
}

// SpaceInfo is a descriptive venue metric.
type SpaceInfo struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Sub   string `yaml:"sub" json:"sub"`
}

// TrendPoint is one point of the industry market-size series, in 亿元.
type TrendPoint struct {
	Year  string  `yaml:"year" json:"year"`
	Value float64 `yaml:"value" json:"val"`
}

// Share is a named percentage slice of a whole.
type Share struct {
	Name    string  `yaml:"name" json:"name"`
	Percent float64 `yaml:"percent" json:"value"`
}

// Highlight is a headline figure card.
type Highlight struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// SWOTEntry is one quadrant of the SWOT analysis.
type SWOTEntry struct {
	Letter string `yaml:"letter" json:"letter"`
	Text   string `yaml:"text" json:"text"`
}

// Offering is one of the venue's core spaces.
type Offering struct {
	Title  string   `yaml:"title" json:"title"`
	Badge  string   `yaml:"badge" json:"badge"`
	Image  string   `yaml:"image" json:"image"`
	Points []string `yaml:"points" json:"points"`
}

// Stat is a footer figure.
type Stat struct {
	Value   string `yaml:"value" json:"value"`
	Caption string `yaml:"caption" json:"caption"`
}

// Hero is the banner copy.
type Hero struct {
	Kicker   string `yaml:"kicker"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Tagline  string `yaml:"tagline"`
	Action   string `yaml:"action"`
	Location string `yaml:"location"`
}

// Summary is the copy of the summary section.
type Summary struct {
	Title     string      `yaml:"title"`
	Vision    string      `yaml:"vision"`
	Image     string      `yaml:"image"`
	NoteTitle string      `yaml:"note_title"`
	Note      string      `yaml:"note"`
	Space     []SpaceInfo `yaml:"space"`
}

// Market is the copy and chart data of the market section.
type Market struct {
	Title         string       `yaml:"title"`
	TrendTitle    string       `yaml:"trend_title"`
	TrendCaption  string       `yaml:"trend_caption"`
	TrendUnit     string       `yaml:"trend_unit"`
	Trend         []TrendPoint `yaml:"trend"`
	SWOT          []SWOTEntry  `yaml:"swot"`
	AudienceTitle string       `yaml:"audience_title"`
	Audience      []Share      `yaml:"audience"`
}

// Products is the copy of the space and service section.
type Products struct {
	Title     string     `yaml:"title"`
	Offerings []Offering `yaml:"offerings"`
}

// Finance is the copy and chart data of the finance section.
type Finance struct {
	Title        string            `yaml:"title"`
	Highlights   []Highlight       `yaml:"highlights"`
	MixTitle     string            `yaml:"mix_title"`
	RevenueMix   []Share           `yaml:"revenue_mix"`
	RevenueTitle string            `yaml:"revenue_title"`
	Revenue      []FinancialMetric `yaml:"revenue"`
}

// Team is the founder roster.
type Team struct {
	Title    string    `yaml:"title"`
	Intro    string    `yaml:"intro"`
	Founders []Founder `yaml:"founders"`
}

// Footer is the closing call to action.
type Footer struct {
	Title     string   `yaml:"title"`
	Body      string   `yaml:"body"`
	Stats     []Stat   `yaml:"stats"`
	Copyright string   `yaml:"copyright"`
	Links     []string `yaml:"links"`
}

// Deck aggregates all content of the page.
type Deck struct {
	Brand    string   `yaml:"brand"`
	Hero     Hero     `yaml:"hero"`
	Summary  Summary  `yaml:"summary"`
	Market   Market   `yaml:"market"`
	Products Products `yaml:"products"`
	Finance  Finance  `yaml:"finance"`
	Team     Team     `yaml:"team"`
	Footer   Footer   `yaml:"footer"`
}

// SeriesNames are the captions of the three revenue scenarios, in column order.
var SeriesNames = [3]string{"保守", "基准", "乐观"}
