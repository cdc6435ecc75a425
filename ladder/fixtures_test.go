package ladder_test

import (
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/lexicon"
	"github.com/katalvlaran/wordladder/wordindex"
)

// Expected ladder sets taken from a full English word list. A dictionary made of
// exactly the words on these ladders has the same shortest ladders: removing words
// can only lengthen paths, and these ladders all survive.
var (
	workToPlay = []ladder.Path{
		{"work", "fork", "form", "foam", "flam", "flay", "play"},
		{"work", "pork", "perk", "peak", "pean", "plan", "play"},
		{"work", "pork", "perk", "peak", "peat", "plat", "play"},
		{"work", "pork", "perk", "pert", "peat", "plat", "play"},
		{"work", "pork", "porn", "pirn", "pian", "plan", "play"},
		{"work", "pork", "port", "pert", "peat", "plat", "play"},
		{"work", "word", "wood", "pood", "plod", "ploy", "play"},
		{"work", "worm", "form", "foam", "flam", "flay", "play"},
		{"work", "worn", "porn", "pirn", "pian", "plan", "play"},
		{"work", "wort", "bort", "boat", "blat", "plat", "play"},
		{"work", "wort", "port", "pert", "peat", "plat", "play"},
		{"work", "wort", "wert", "pert", "peat", "plat", "play"},
	}

	blisteringToBlithering = []ladder.Path{
		{"blistering", "blustering", "clustering", "cluttering", "clattering", "blattering", "blathering", "blithering"},
		{"blistering", "blustering", "flustering", "fluttering", "flattering", "blattering", "blathering", "blithering"},
		{"blistering", "glistering", "glittering", "flittering", "flattering", "blattering", "blathering", "blithering"},
	}

	awakeToSleep = []ladder.Path{
		{"awake", "aware", "sware", "share", "sharn", "shawn", "shewn", "sheen", "sheep", "sleep"},
		{"awake", "aware", "sware", "share", "shire", "shirr", "shier", "sheer", "sheep", "sleep"},
	}

	decantingToDerailing = []ladder.Path{
		{"decanting", "recanting", "recasting", "retasting", "retesting", "revesting", "revetting", "reletting", "relenting", "relending", "remending", "remanding", "remanning", "remaining", "remailing", "retailing", "detailing", "derailing"},
		{"decanting", "recanting", "recasting", "retasting", "retesting", "revesting", "revetting", "reletting", "relenting", "relending", "remending", "remanding", "remanning", "remaining", "retaining", "detaining", "detailing", "derailing"},
		{"decanting", "recanting", "recasting", "retasting", "retesting", "revesting", "revetting", "reletting", "relenting", "relending", "remending", "remanding", "remanning", "remaining", "retaining", "retailing", "detailing", "derailing"},
		{"decanting", "recanting", "recasting", "retasting", "retesting", "revesting", "revetting", "resetting", "resenting", "resending", "remending", "remanding", "remanning", "remaining", "remailing", "retailing", "detailing", "derailing"},
		{"decanting", "recanting", "recasting", "retasting", "retesting", "revesting", "revetting", "resetting", "resenting", "resending", "remending", "remanding", "remanning", "remaining", "retaining", "detaining", "detailing", "derailing"},
		{"decanting", "recanting", "recasting", "retasting", "retesting", "revesting", "revetting", "resetting", "resenting", "resending", "remending", "remanding", "remanning", "remaining", "retaining", "retailing", "detailing", "derailing"},
	}
)

// wordsOf flattens ladders into their word list, plus any extras.
func wordsOf(ladders []ladder.Path, extra ...string) []string {
	var out []string
	for _, p := range ladders {
		out = append(out, p...)
	}
	return append(out, extra...)
}

// indexOf builds an index over words of length n.
func indexOf(n int, words ...string) *wordindex.Index {
	return wordindex.Build(lexicon.NewDictionary(n, words...))
}
