package pattern

// exampleWords is the fallback candidate set used when no corpus is loaded.
var exampleWords = []string{
	"అమ్మ", "అప్పా", "అక్క", "అన్న", "తమ్ముడు", "చెల్లెలు",
	"రాము", "కృష్ణ", "సీతా", "లక్ష్మీ", "శ్రీనివాస్", "పద్మావతి",
	"వేంకట్", "గోపాల్", "రాధిక", "భారతి", "అనిల్", "సుజాత",
	"మధుర్", "చంద్ర", "సుర్య", "చంద్రశేఖర్", "వివేక్", "ప్రీతి",
	"నర్సింహ", "గణేష్", "సరస్వతి", "దుర్గా", "శివ", "విష్ణు",
	"బ్రహ్మ", "ఇంద్ర", "వరుణ", "వాయు", "అగ్ని", "పృథ్వీ",
	"కమల", "చందన", "మల్లిక", "జాస్మిన్", "రోజా", "సుందరి",
	"రమణ", "మోహన్", "సుధాకర్", "ప్రసాద్", "శేఖర్", "రవీంద్ర",
	"ఆకాశం", "భూమి", "నీరు", "గాలి", "చంద్రుడు", "సూర్యుడు",
	"గురువు", "శిష్యుడు", "మిత్రుడు", "శత్రువు", "బంధువు", "పొరుగు",
	"పుస్తకం", "కలం", "కాగితం", "పాఠశాల", "ఉపాధ్యాయుడు", "విద్యార్థి",
	"ప్రేమ", "శాంతి", "ఆనందం", "దుఃఖం", "కోపం", "భయం", "ఆశ", "నమ్మకం",
	"వసంతం", "వేసవి", "వర్షాకాలం", "శరత్కాలం", "శీతాకాలం", "హేమంతం",
	"సోమవారం", "మంగళవారం", "బుధవారం", "గురువారం", "శుక్రవారం", "శనివారం", "ఆదివారం",
	"జనవరి", "ఫిబ్రవరి", "మార్చి", "ఏప్రిల్", "మే", "జూన్", "జులై", "ఆగస్టు",
	"సెప్టెంబర్", "అక్టోబర్", "నవంబర్", "డిసెంబర్",
	"బంగారం", "వెండి", "రాగి", "ఇనుము", "అల్యూమినియం", "జింక్",
	"ఎర్రటి", "తెల్లని", "నలుపు", "పసుపు", "ఆకుపచ్చ", "నీలం", "గులాబి",
	"పెద్ద", "చిన్న", "పొడవు", "పొట్టి", "మందం", "సన్నని",
	"తీయటి", "పులుపు", "చేదు", "కారం", "ఉప్పు", "చల్లని", "వేడుకగా",
	"పిల్లలు", "తల్లిదండ్రులు", "దాతలు", "అతిథులు", "స్నేహితులు", "బంధువులు",
}

// ExampleWords returns a copy of the built-in candidate words.
func ExampleWords() []string {
	return append([]string(nil), exampleWords...)
}
