package pattern

import "github.com/kesava/telugu-word-analysis/internal/domain"

// Score thresholds a candidate must exceed to be reported.
const (
	similarThreshold  = 0.3
	syllableThreshold = 0.2
	shapeThreshold    = 0.4
)

// exactMatch reports whether a and b carry the same vowel signs and
// conjuncts at the same positions.
func exactMatch(a, b domain.WordPattern) bool {
	if len(a.Gunintam) != len(b.Gunintam) || len(a.Othu) != len(b.Othu) {
		return false
	}
	for i := range a.Gunintam {
		if a.Gunintam[i].Position != b.Gunintam[i].Position ||
			a.Gunintam[i].Modifier != b.Gunintam[i].Modifier {
			return false
		}
	}
	for i := range a.Othu {
		if a.Othu[i].Position != b.Othu[i].Position ||
			a.Othu[i].BaseConsonant != b.Othu[i].BaseConsonant ||
			a.Othu[i].ConjunctConsonant != b.Othu[i].ConjunctConsonant {
			return false
		}
	}
	return true
}

// positionSimilarity is the share of sign and conjunct positions, over the
// union of both words, where the two words agree.
func positionSimilarity(a, b domain.WordPattern) float64 {
	ga, gb := gunintamByPosition(a), gunintamByPosition(b)
	oa, ob := othuByPosition(a), othuByPosition(b)

	score, total := overlap(ga, gb)
	s, t := overlap(oa, ob)
	score += s
	total += t

	if total == 0 {
		return 0
	}
	return float64(score) / float64(total)
}

func overlap(a, b map[int]string) (score, total int) {
	for pos, v := range a {
		total++
		if w, ok := b[pos]; ok && w == v {
			score++
		}
	}
	for pos := range b {
		if _, ok := a[pos]; !ok {
			total++
		}
	}
	return score, total
}

func gunintamByPosition(p domain.WordPattern) map[int]string {
	m := make(map[int]string, len(p.Gunintam))
	for _, g := range p.Gunintam {
		m[g.Position] = g.Modifier
	}
	return m
}

func othuByPosition(p domain.WordPattern) map[int]string {
	m := make(map[int]string, len(p.Othu))
	for _, o := range p.Othu {
		m[o.Position] = o.Conjunct
	}
	return m
}

// syllableSimilarity averages four factors: equal akshara count, shared sign
// types, shared conjunct types and closeness of structural complexity.
func syllableSimilarity(a, b domain.WordPattern) float64 {
	var score float64
	if a.Shape.SyllableCount == b.Shape.SyllableCount {
		score++
	}
	score += sharedRatio(gunintamTypes(a), gunintamTypes(b))
	score += sharedRatio(othuTypes(a), othuTypes(b))

	ca := a.Shape.ConjunctCount + a.Shape.VowelModifierCount
	cb := b.Shape.ConjunctCount + b.Shape.VowelModifierCount
	maxC := max(ca, cb, 1)
	score += 1 - float64(abs(ca-cb))/float64(maxC)

	return score / 4
}

// sharedRatio is the number of entries of a also present in b over the
// longer list length. Two empty lists score 0.5.
func sharedRatio(a, b []string) float64 {
	m := max(len(a), len(b))
	if m == 0 {
		return 0.5
	}
	return float64(len(shared(a, b))) / float64(m)
}

// shared returns entries of a (duplicates included) present in b.
func shared(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}
	var out []string
	for _, s := range a {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

func gunintamTypes(p domain.WordPattern) []string {
	out := make([]string, len(p.Gunintam))
	for i, g := range p.Gunintam {
		out[i] = g.Modifier
	}
	return out
}

func othuTypes(p domain.WordPattern) []string {
	out := make([]string, len(p.Othu))
	for i, o := range p.Othu {
		out[i] = o.BaseConsonant + o.ConjunctConsonant
	}
	return out
}

// shapeSimilarity averages akshara count, structure, conjunct count and
// modifier count agreement. Near misses earn half a point.
func shapeSimilarity(a, b domain.WordShape) float64 {
	var score float64
	if a.SyllableCount == b.SyllableCount {
		score++
	}
	switch {
	case a.Structure == b.Structure:
		score++
	case a.CVPattern == b.CVPattern:
		score += 0.5
	}
	score += closeness(a.ConjunctCount, b.ConjunctCount)
	score += closeness(a.VowelModifierCount, b.VowelModifierCount)
	return score / 4
}

func closeness(a, b int) float64 {
	switch abs(a - b) {
	case 0:
		return 1
	case 1:
		return 0.5
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
