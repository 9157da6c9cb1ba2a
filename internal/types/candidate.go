package types

// Candidate is a structured-data object for one of the supported archetypes.
// Candidates are produced either deterministically by the extractors (lean)
// or by the generative collaborator (rich); both go through the same
// validation path.
type Candidate interface {
	SchemaType() Archetype
}

// Article is a Schema.org Article candidate.
type Article struct {
	Context          string   `json:"@context"`
	Type             string   `json:"@type"`
	Headline         string   `json:"headline"`
	ArticleBody      string   `json:"articleBody"`
	DatePublished    string   `json:"datePublished,omitempty"`
	MainEntityOfPage string   `json:"mainEntityOfPage,omitempty"`
	About            []Thing  `json:"about,omitempty"`
	Author           *Person  `json:"author,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
}

// SchemaType returns the archetype for an Article candidate.
func (a *Article) SchemaType() Archetype { return ArchetypeArticle }

// Thing is a minimal Schema.org Thing reference, used for Article "about"
// entries built from accepted entities.
type Thing struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Person is a minimal Schema.org Person.
type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// FAQPage is a Schema.org FAQPage candidate. MainEntity may legitimately be
// empty when Q/A detection finds nothing; the validator flags that as
// invalid, which in turn drives escalation.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// SchemaType returns the archetype for a FAQPage candidate.
func (f *FAQPage) SchemaType() Archetype { return ArchetypeFAQPage }

// Question is one detected Q/A pair.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is the accepted answer of a Question.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// Product is a Schema.org Product candidate.
type Product struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Brand       *Brand `json:"brand,omitempty"`
}

// SchemaType returns the archetype for a Product candidate.
func (p *Product) SchemaType() Archetype { return ArchetypeProduct }

// Brand is a Schema.org Brand reference.
type Brand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// HowTo is a Schema.org HowTo candidate.
type HowTo struct {
	Context string      `json:"@context"`
	Type    string      `json:"@type"`
	Name    string      `json:"name"`
	Step    []HowToStep `json:"step"`
}

// SchemaType returns the archetype for a HowTo candidate.
func (h *HowTo) SchemaType() Archetype { return ArchetypeHowTo }

// HowToStep is one step of a HowTo.
type HowToStep struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}
