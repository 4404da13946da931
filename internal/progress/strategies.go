package progress

// domainStrategies maps subject domains to study techniques known to
// work for them.
var domainStrategies = map[string][]string{
	"economics": {
		"Focus on real-world examples and current events",
		"Practice with economic calculators and models",
		"Review graphical representations of economic concepts",
	},
	"computer_science": {
		"Code along with examples in your preferred language",
		"Build small projects to apply concepts",
		"Use visualization tools for algorithms and data structures",
	},
	"mathematics": {
		"Work through problems step-by-step",
		"Use visual aids and geometric interpretations",
		"Practice regularly with spaced repetition",
	},
	"business": {
		"Analyze real company case studies",
		"Connect theories to current business news",
		"Practice with business simulation tools",
	},
}

var genericStrategies = []string{
	"Review difficult concepts multiple times",
	"Take breaks between study sessions",
	"Ask questions when concepts are unclear",
	"Use active recall techniques",
}

// StrategiesFor returns study strategies for the top struggle domains,
// falling back to general techniques when no domain matches.
func StrategiesFor(struggleDomains []string) []string {
	recommended := make([]string, 0)
	for _, domain := range firstN(struggleDomains, 3) {
		recommended = append(recommended, domainStrategies[domain]...)
	}
	if len(recommended) == 0 {
		return genericStrategies
	}
	return recommended
}
