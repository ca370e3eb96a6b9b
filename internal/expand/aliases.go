package expand

// stopWords is the closed set of tokens dropped from queries before
// matching: articles, connective particles in English and Roman Urdu,
// and the word "dua" itself in its common spellings, since nearly
// every query contains it.
var stopWords = map[string]struct{}{
	"a":            {},
	"an":           {},
	"the":          {},
	"for":          {},
	"of":           {},
	"to":           {},
	"and":          {},
	"aur":          {},
	"ki":           {},
	"ka":           {},
	"ke":           {},
	"ko":           {},
	"ek":           {},
	"mein":         {},
	"me":           {},
	"liye":         {},
	"wali":         {},
	"dua":          {},
	"duaa":         {},
	"duain":        {},
	"duaen":        {},
	"supplication": {},
	"دعا":          {},
}

// aliases maps a normalized query token to its known synonym and
// transliteration equivalents across the corpus languages. The table
// is deliberately static; matching behaviour depends on these exact
// entries staying stable.
var aliases = map[string][]string{
	// Travel
	"safar":   {"travel", "journey", "musafir"},
	"travel":  {"safar", "journey"},
	"journey": {"safar", "travel"},
	"سفر":     {"safar", "travel"},

	// Morning / evening
	"subah":   {"morning", "fajr", "subh"},
	"subh":    {"morning", "subah"},
	"morning": {"subah", "fajr"},
	"shaam":   {"evening", "sham", "maghrib"},
	"sham":    {"evening", "shaam"},
	"evening": {"shaam", "maghrib"},
	"صبح":     {"subah", "morning"},
	"شام":     {"shaam", "evening"},

	// Sleep / waking
	"neend":  {"sleep", "sleeping", "sona"},
	"sona":   {"sleep", "neend"},
	"sleep":  {"neend", "sona"},
	"jagna":  {"waking", "wake"},
	"waking": {"jagna", "wake"},

	// Food / drink
	"khana":  {"food", "eating", "meal"},
	"food":   {"khana", "eating"},
	"eating": {"khana", "food"},
	"pani":   {"water", "drinking"},
	"water":  {"pani", "drinking"},

	// Sustenance / wealth
	"rizq":       {"rizk", "sustenance", "provision", "rozi", "wealth"},
	"rizk":       {"rizq", "sustenance", "rozi"},
	"rozi":       {"rizq", "sustenance"},
	"sustenance": {"rizq", "rozi", "provision"},
	"رزق":        {"rizq", "sustenance"},

	// Health / illness
	"bimari":   {"sickness", "illness", "disease"},
	"bimar":    {"sick", "ill", "bimari"},
	"sickness": {"bimari", "illness"},
	"shifa":    {"healing", "cure", "health"},
	"healing":  {"shifa", "cure"},
	"شفا":      {"shifa", "healing"},

	// Forgiveness / mercy
	"maghfirat":   {"forgiveness", "istighfar"},
	"forgiveness": {"maghfirat", "istighfar"},
	"istighfar":   {"forgiveness", "maghfirat"},
	"reham":       {"mercy", "rahmat"},
	"rahmat":      {"mercy", "reham"},
	"mercy":       {"rahmat", "reham"},

	// Protection / safety
	"hifazat":    {"protection", "safety"},
	"protection": {"hifazat", "safety"},
	"safety":     {"hifazat", "protection"},
	"panah":      {"refuge", "protection"},

	// Home / entering and leaving
	"ghar": {"home", "house"},
	"home": {"ghar", "house"},
	"گھر":  {"ghar", "home"},

	// Knowledge / study
	"ilm":       {"knowledge", "study"},
	"knowledge": {"ilm", "study"},
	"imtihan":   {"exam", "test", "study"},
	"exam":      {"imtihan", "test"},

	// Marriage / family
	"nikah":    {"marriage", "wedding"},
	"marriage": {"nikah", "shadi"},
	"shadi":    {"nikah", "marriage"},
	"aulad":    {"children", "offspring"},
	"children": {"aulad", "offspring"},

	// Rain / weather
	"barish": {"rain"},
	"rain":   {"barish"},

	// Distress / anxiety
	"pareshani": {"distress", "worry", "anxiety"},
	"distress":  {"pareshani", "worry"},
	"ghum":      {"grief", "sorrow", "sadness"},
	"grief":     {"ghum", "sorrow"},

	// Mosque / prayer
	"masjid": {"mosque"},
	"mosque": {"masjid"},
	"namaz":  {"salah", "salat", "prayer"},
	"salah":  {"namaz", "prayer"},
	"prayer": {"namaz", "salah"},
}
