package content

// LandingPage aggregates everything the frontend needs to render one
// language of the single-page site: the hero banner plus the services,
// sectors and stats sections, each already ordered for display.
type LandingPage struct {
	Locale   string     `json:"locale"`
	Hero     Hero       `json:"hero"`
	Services []Offering `json:"services"`
	Sectors  []Sector   `json:"sectors"`
	Stats    []Stat     `json:"stats"`
}

// Hero is the top banner: headline, supporting line and the call to
// action label.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTALabel string `json:"ctaLabel"`
}

// Offering is one service card. Icon is the frontend icon identifier
// (e.g. "calculator"), not an asset path.
type Offering struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Sector is one industry the firm serves.
type Sector struct {
	Icon string `json:"icon"`
	Name string `json:"name"`
}

// Stat is one animated counter: the numeric target, an optional suffix
// ("+", "%") and its caption.
type Stat struct {
	Value  int    `json:"value"`
	Suffix string `json:"suffix"`
	Label  string `json:"label"`
}
