package lexicon

// Group is a named set of markers. Groups are evaluated in declaration order.
type Group struct {
	Name    string   `yaml:"name"`
	Markers []string `yaml:"markers"`
}

// FormationRule assigns a word-formation type when the word starts with one
// of Prefixes, contains one of Contains, or ends with one of Suffixes.
type FormationRule struct {
	Type     string   `yaml:"type"`
	Prefixes []string `yaml:"prefixes"`
	Contains []string `yaml:"contains"`
	Suffixes []string `yaml:"suffixes"`
}

// Tables is the raw heuristic data behind a Lexicon. It doubles as the YAML
// schema of a lexicon override file; absent keys keep their defaults.
type Tables struct {
	CaseMarkers       []string        `yaml:"case_markers"`
	Honorifics        []string        `yaml:"honorifics"`
	CompoundRoots     []string        `yaml:"compound_roots"`
	SandhiTriggers    []string        `yaml:"sandhi_triggers"`
	LoanOrigins       []Group         `yaml:"loan_origins"`
	Prefixes          []string        `yaml:"prefixes"`
	Suffixes          []string        `yaml:"suffixes"`
	Derivations       []Group         `yaml:"derivations"`
	ForbiddenClusters []string        `yaml:"forbidden_clusters"`
	CommonClusters    []string        `yaml:"common_clusters"`
	WordClasses       []Group         `yaml:"word_classes"`
	SemanticFields    []Group         `yaml:"semantic_fields"`
	MorphemePrefixes  []string        `yaml:"morpheme_prefixes"`
	MorphemeSuffixes  []string        `yaml:"morpheme_suffixes"`
	FormationRules    []FormationRule `yaml:"formation_rules"`
	PunctuationMarks  string          `yaml:"punctuation_marks"`
}

// DefaultTables returns a fresh copy of the built-in tables.
func DefaultTables() Tables {
	return Tables{
		CaseMarkers: []string{
			"కు", "తో", "లో", "న", "కి", "చే", "వల్ల", "కోసం",
			"ని", "ను", "నుండి", "నుంచి", "వరకు", "దాకా",
			"గా", "లా", "మాత్రం", "మాత్రమే", "కాదు",
		},
		Honorifics:     []string{"గారు", "వారు", "గార్లు", "అయ్య", "అమ్మ", "బాబు"},
		CompoundRoots:  []string{"గృహ", "లోక", "దేవ", "రాజ", "భూ", "జల", "అగ్ని", "వాయు"},
		SandhiTriggers: []string{"్య", "్వ", "్మ"},
		LoanOrigins: []Group{
			{Name: "sanskrit", Markers: []string{"క్ష", "జ్ఞ", "శ్రీ", "స్వ", "ప్ర", "సం", "వి", "అభి", "ప్రతి"}},
			{Name: "arabic", Markers: []string{"ఫ", "జ", "ఖ", "ఘ", "ఝ", "ఢ", "ధ", "భ", "ష"}},
			{Name: "english", Markers: []string{"‌", "్", "స్టేషన్", "స్కూల్", "కాలేజ్"}},
		},
		Prefixes: []string{
			"అ", "అన", "ఉప", "ప్ర", "పర", "సు", "దు", "వి", "సం", "నిర",
			"అధి", "అభి", "ప్రతి", "పరా", "అవ", "అను", "ఉత", "అంతర",
		},
		Suffixes: []string{
			"ము", "డు", "లు", "చు", "ను", "తి", "కు", "వు", "రు", "ది",
			"యము", "తము", "నము", "కము", "లము", "పు", "ిక", "ీయ", "త్వ",
		},
		Derivations: []Group{
			{Name: "ADJ", Markers: []string{"ిక", "ీయ", "వంత", "మంత"}},
			{Name: "NOUN", Markers: []string{"త్వ", "మై", "తనం"}},
			{Name: "VERB", Markers: []string{"చు", "ించు", "పించు", "కొను"}},
		},
		ForbiddenClusters: []string{"ణ్క", "ఱ్ప", "ళ్చ"},
		CommonClusters:    []string{"క్క", "ట్ట", "ప్ప", "చ్చ", "న్న", "మ్మ"},
		WordClasses: []Group{
			{Name: "noun", Markers: []string{"ము", "డు", "లు", "మ్మ", "న్న"}},
			{Name: "verb", Markers: []string{"చు", "ను", "దు", "ంచు", "ించు"}},
			{Name: "adjective", Markers: []string{"ిక", "ైన", "ంత", "త"}},
			{Name: "adverb", Markers: []string{"గా", "లా", "రా", "కూడా"}},
		},
		SemanticFields: []Group{
			{Name: "family", Markers: []string{"అమ్మ", "నాన్న", "అన్న", "అక్క", "తమ్మ", "చెల్లి"}},
			{Name: "body", Markers: []string{"తల", "కళ్లు", "చేయి", "కాలు", "ముఖం", "వేలు"}},
			{Name: "nature", Markers: []string{"చెట్టు", "పువ్వు", "నది", "కొండ", "సముద్రం", "ఆకాశం"}},
			{Name: "food", Markers: []string{"అన్నం", "రోటీ", "కూర", "పాలు", "పండు", "నీరు"}},
			{Name: "time", Markers: []string{"రోజు", "నెల", "సంవత్సర", "గంట", "నిమిషం", "ఉదయం"}},
			{Name: "action", Markers: []string{"వెళ్లు", "వచ్చు", "చేయు", "చూడు", "విను", "మాట్లాడు"}},
		},
		MorphemePrefixes: []string{"అ", "అన", "ఉప", "ప్ర", "పర", "సు", "వి", "సం"},
		MorphemeSuffixes: []string{"ము", "డు", "లు", "చు", "కు", "తి", "య", "న"},
		FormationRules: []FormationRule{
			{Type: "negation", Prefixes: []string{"అ", "అన"}},
			{Type: "sanskrit_compound", Prefixes: []string{"ప్ర", "సం"}},
			{Type: "honorific", Contains: []string{"గారు", "వారు"}},
			{Type: "causative", Suffixes: []string{"ించు", "పించు"}},
			{Type: "conjunct_formation", Contains: []string{"్"}},
		},
		PunctuationMarks: "।॥,.!?;",
	}
}

func (t Tables) clone() Tables {
	c := t
	c.CaseMarkers = cloneStrings(t.CaseMarkers)
	c.Honorifics = cloneStrings(t.Honorifics)
	c.CompoundRoots = cloneStrings(t.CompoundRoots)
	c.SandhiTriggers = cloneStrings(t.SandhiTriggers)
	c.LoanOrigins = cloneGroups(t.LoanOrigins)
	c.Prefixes = cloneStrings(t.Prefixes)
	c.Suffixes = cloneStrings(t.Suffixes)
	c.Derivations = cloneGroups(t.Derivations)
	c.ForbiddenClusters = cloneStrings(t.ForbiddenClusters)
	c.CommonClusters = cloneStrings(t.CommonClusters)
	c.WordClasses = cloneGroups(t.WordClasses)
	c.SemanticFields = cloneGroups(t.SemanticFields)
	c.MorphemePrefixes = cloneStrings(t.MorphemePrefixes)
	c.MorphemeSuffixes = cloneStrings(t.MorphemeSuffixes)
	c.FormationRules = make([]FormationRule, len(t.FormationRules))
	for i, r := range t.FormationRules {
		c.FormationRules[i] = FormationRule{
			Type:     r.Type,
			Prefixes: cloneStrings(r.Prefixes),
			Contains: cloneStrings(r.Contains),
			Suffixes: cloneStrings(r.Suffixes),
		}
	}
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneGroups(gs []Group) []Group {
	if gs == nil {
		return nil
	}
	out := make([]Group, len(gs))
	for i, g := range gs {
		out[i] = Group{Name: g.Name, Markers: cloneStrings(g.Markers)}
	}
	return out
}
