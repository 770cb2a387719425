package extraction

import "strings"

// industryEntry pairs an industry tag with its trigger keywords. Order
// matters: the first entry with a matching keyword wins.
type industryEntry struct {
	industry string
	keywords []string
}

var industryTable = []industryEntry{
	{"tech", []string{"software", "app", "platform", "cloud", "saas", "api", "developer"}},
	{"finance", []string{"bank", "payment", "finance", "invest", "trading", "crypto"}},
	{"healthcare", []string{"health", "medical", "doctor", "patient", "clinic", "hospital"}},
	{"ecommerce", []string{"shop", "store", "buy", "product", "marketplace", "retail"}},
	{"education", []string{"learn", "course", "education", "student", "training", "teach"}},
	{"marketing", []string{"marketing", "advertising", "campaign", "brand", "social media"}},
	{"gaming", []string{"game", "play", "gaming", "esports", "player"}},
}

// InferIndustry tags the site by keyword matching over its title and
// description. Returns "general" when nothing matches.
func InferIndustry(title, description string) string {
	text := strings.ToLower(title + " " + description)

	for _, entry := range industryTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.industry
			}
		}
	}
	return "general"
}
