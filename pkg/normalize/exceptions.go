package normalize

// nounExceptions lists irregular plurals from WordNet's noun exception file
// that the suffix rules cannot derive.
var nounExceptions = map[string]string{
	"alumni":      "alumnus",
	"analyses":    "analysis",
	"appendices":  "appendix",
	"bacteria":    "bacterium",
	"buses":       "bus",
	"calves":      "calf",
	"children":    "child",
	"crises":      "crisis",
	"criteria":    "criterion",
	"curricula":   "curriculum",
	"diagnoses":   "diagnosis",
	"emphases":    "emphasis",
	"feet":        "foot",
	"foci":        "focus",
	"geese":       "goose",
	"halves":      "half",
	"hypotheses":  "hypothesis",
	"indices":     "index",
	"knives":      "knife",
	"leaves":      "leaf",
	"lives":       "life",
	"loaves":      "loaf",
	"matrices":    "matrix",
	"mice":        "mouse",
	"nuclei":      "nucleus",
	"oxen":        "ox",
	"parentheses": "parenthesis",
	"phenomena":   "phenomenon",
	"quizzes":     "quiz",
	"radii":       "radius",
	"selves":      "self",
	"shelves":     "shelf",
	"stimuli":     "stimulus",
	"strata":      "stratum",
	"syllabi":     "syllabus",
	"syntheses":   "synthesis",
	"teeth":       "tooth",
	"theses":      "thesis",
	"thieves":     "thief",
	"wives":       "wife",
	"wolves":      "wolf",
}

// invariantNouns end in "s" but are already their own base form.
var invariantNouns = map[string]bool{
	"alias":        true,
	"atlas":        true,
	"bias":         true,
	"canvas":       true,
	"chaos":        true,
	"economics":    true,
	"ethics":       true,
	"ethos":        true,
	"headquarters": true,
	"kudos":        true,
	"lens":         true,
	"mathematics":  true,
	"news":         true,
	"pathos":       true,
	"physics":      true,
	"politics":     true,
	"series":       true,
	"species":      true,
}

// menSingulars end in "men" without being plurals of "-man".
var menSingulars = map[string]bool{
	"abdomen":  true,
	"acumen":   true,
	"albumen":  true,
	"amen":     true,
	"bitumen":  true,
	"hymen":    true,
	"lumen":    true,
	"omen":     true,
	"regimen":  true,
	"semen":    true,
	"specimen": true,
	"stamen":   true,
}

// plainSPlurals end in "-ies" or "-ches" but only drop their final "s".
var plainSPlurals = map[string]bool{
	"aches":     true,
	"caches":    true,
	"calories":  true,
	"cookies":   true,
	"dies":      true,
	"genies":    true,
	"headaches": true,
	"lies":      true,
	"movies":    true,
	"niches":    true,
	"pies":      true,
	"prairies":  true,
	"psyches":   true,
	"rookies":   true,
	"ties":      true,
	"zombies":   true,
}
