package parser

import (
	"fmt"
	"io"

	"github.com/habeanf/yap-ccg/catcombination"
	"github.com/habeanf/yap-ccg/sentence"
)

// DumpFeatures walks the best root derivation and, for every node, emits
// one line per combination of (word-set x POS-set) across up to seven
// category families: the node itself, its two children, and its four
// grandchildren. This is the Cartesian-product diagnostic path described
// in spec.md §9 ("up to 14 nested loops"); it is expensive and must only
// run when d.Config.Diagnostics is set.
func (d *Driver) DumpFeatures(w io.Writer, sent *sentence.Sentence) error {
	if !d.Config.Diagnostics {
		return nil
	}

	root := d.chart.Root()
	var best *catcombination.SuperCategory
	bestScore := 0.0
	for i, sc := range root.SuperCategories() {
		if i == 0 || sc.Score > bestScore {
			best = sc
			bestScore = sc.Score
		}
	}
	if best == nil {
		return nil
	}
	return dumpFeaturesNode(w, best, sent)
}

func dumpFeaturesNode(w io.Writer, sc *catcombination.SuperCategory, sent *sentence.Sentence) error {
	families := catFamilies(sc)
	for _, top := range families {
		for _, left := range families {
			for _, right := range families {
				line := fmt.Sprintf("%s|%s|%s", top.label, left.label, right.label)
				for _, word := range top.words(sent) {
					for _, pos := range top.poss(sent) {
						if _, err := fmt.Fprintf(w, "%s %s %s\n", line, word, pos); err != nil {
							return err
						}
					}
				}
			}
		}
	}

	if sc.Left != nil {
		if err := dumpFeaturesNode(w, sc.Left, sent); err != nil {
			return err
		}
		if sc.Right != nil {
			return dumpFeaturesNode(w, sc.Right, sent)
		}
	}
	return nil
}

type catFamily struct {
	label string
	sc    *catcombination.SuperCategory
}

func (f catFamily) words(sent *sentence.Sentence) []string {
	if f.sc == nil {
		return nil
	}
	v := f.sc.Variable()
	if v == nil {
		return nil
	}
	var out []string
	for _, idx := range v.Words() {
		w, _ := wordAndPOS(sent, idx)
		out = append(out, w)
	}
	return out
}

func (f catFamily) poss(sent *sentence.Sentence) []string {
	if f.sc == nil {
		return nil
	}
	v := f.sc.Variable()
	if v == nil {
		return nil
	}
	var out []string
	for _, idx := range v.Words() {
		_, p := wordAndPOS(sent, idx)
		out = append(out, p)
	}
	return out
}

// catFamilies returns the (up to seven) category families the diagnostic
// enumerates over: the node, its children, and its grandchildren.
func catFamilies(sc *catcombination.SuperCategory) []catFamily {
	families := []catFamily{{"top", sc}}
	if sc.Left != nil {
		families = append(families, catFamily{"left", sc.Left})
		if sc.Left.Left != nil {
			families = append(families, catFamily{"leftLeft", sc.Left.Left})
		}
		if sc.Left.Right != nil {
			families = append(families, catFamily{"leftRight", sc.Left.Right})
		}
	}
	if sc.Right != nil {
		families = append(families, catFamily{"right", sc.Right})
		if sc.Right.Left != nil {
			families = append(families, catFamily{"rightLeft", sc.Right.Left})
		}
		if sc.Right.Right != nil {
			families = append(families, catFamily{"rightRight", sc.Right.Right})
		}
	}
	return families
}
