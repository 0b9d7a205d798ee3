// Package keywords holds a fixed lookup table of popular search keywords by
// statistical category, in French and English. The table is static; it never
// touches the catalog service.
package keywords

// Category groups example keywords for one statistical theme.
type Category struct {
	Name    string
	French  []string
	English []string
}

var popular = []Category{
	{
		Name:    "Prices and inflation",
		French:  []string{"prix", "inflation", "indice des prix", "IPC"},
		English: []string{"price", "inflation", "consumer price index", "CPI"},
	},
	{
		Name:    "Employment and unemployment",
		French:  []string{"emploi", "chômage", "salaire", "population active"},
		English: []string{"employment", "unemployment", "wages", "labour force"},
	},
	{
		Name:    "Population and demography",
		French:  []string{"population", "naissances", "décès", "espérance de vie"},
		English: []string{"population", "births", "deaths", "life expectancy"},
	},
	{
		Name:    "National accounts",
		French:  []string{"PIB", "consommation", "investissement", "comptes nationaux"},
		English: []string{"GDP", "consumption", "investment", "national accounts"},
	},
	{
		Name:    "Housing and construction",
		French:  []string{"logement", "construction", "permis de construire", "loyers"},
		English: []string{"housing", "construction", "building permits", "rents"},
	},
	{
		Name:    "Business and industry",
		French:  []string{"entreprises", "production industrielle", "conjoncture", "chiffre d'affaires"},
		English: []string{"business", "industrial production", "business climate", "turnover"},
	},
}

// Popular returns the fixed category table. The returned slice must not be
// mutated.
func Popular() []Category {
	return popular
}
