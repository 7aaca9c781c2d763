package stats

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/kesava/telugu-word-analysis/internal/akshara"
)

// maxWordLength is the longest entry still treated as a single word.
const maxWordLength = 30

// corpus is the segmented view of a word list shared by all sections.
type corpus struct {
	words     []string
	runes     [][]rune
	syllables [][]string
	// valid holds indexes of entries that look like single words.
	valid []int
}

func (c *corpus) total() int { return len(c.words) }

// buildCorpus segments words on a bounded worker pool. Results are written
// by index so order matches the input.
func (a *Analyzer) buildCorpus(ctx context.Context, words []string) (*corpus, error) {
	n := len(words)
	c := &corpus{
		words:     words,
		runes:     make([][]rune, n),
		syllables: make([][]string, n),
	}

	workers := a.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := max((n+workers-1)/workers, 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				c.runes[i] = []rune(words[i])
				c.syllables[i] = akshara.Segment(words[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, rs := range c.runes {
		if a.isValidWord(words[i], rs) {
			c.valid = append(c.valid, i)
		}
	}
	return c, nil
}

// isValidWord filters out phrases and verse lines: entries longer than
// maxWordLength runes, entries with a space, or more than one punctuation mark.
func (a *Analyzer) isValidWord(word string, runes []rune) bool {
	if len(runes) > maxWordLength {
		return false
	}
	for _, r := range runes {
		if r == ' ' {
			return false
		}
	}
	return a.lex.PunctuationCount(word) <= 1
}
