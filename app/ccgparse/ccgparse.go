package ccgparse

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/fatih/color"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/habeanf/yap-ccg/model"
	"github.com/habeanf/yap-ccg/parser"
	"github.com/habeanf/yap-ccg/rules"
)

var (
	manifestFile   string
	supertagFile   string
	outFile        string
	labelsFile     string
	cubePruning    bool
	beamSize       int
	beta           float64
	leafBeta       float64
	maxWords       int
	maxSuperCats   int
	colorDiag      bool
	diagnosticsOut bool
)

var okColor = color.New(color.FgGreen)
var failColor = color.New(color.FgRed)

// Parse runs the batch supertag-file-in, dependency-file-out pipeline:
// load a weights manifest, load supertagged sentences, parse each with
// parser.Driver, falling back to the skimmer on Exhausted, and write
// dependencies for the winning derivation.
func Parse(cmd *commander.Command, args []string) error {
	if len(supertagFile) == 0 || len(manifestFile) == 0 || len(outFile) == 0 {
		return fmt.Errorf("ccgparse: -supertags, -manifest and -out are all required")
	}

	manifest, err := model.LoadManifest(manifestFile)
	if err != nil {
		return err
	}
	weights, err := model.LoadWeights(manifest.WeightsFile, manifest.NumFeatures)
	if err != nil {
		return err
	}

	var ignore model.IgnorePolicy = model.NoIgnore{}
	if len(labelsFile) > 0 && len(manifest.IgnoredRelNames) > 0 {
		labels, err := model.LoadRelationLabels(labelsFile)
		if err != nil {
			return err
		}
		ignore = model.NewRelationIgnorePolicy(model.ResolveIgnoredRelIDs(labels, manifest.IgnoredRelNames))
	}

	lexicon := model.NewEnumLexicon()
	loader := &FileLoader{Path: supertagFile, Lexicon: lexicon}
	sents, err := loader.Load()
	if err != nil {
		return err
	}
	log.Printf("loaded %d sentences from %s", len(sents), supertagFile)

	cfg := parser.Config{
		CubePruning:  cubePruning,
		BeamSize:     beamSize,
		Beta:         beta,
		MaxWords:     maxWords,
		MaxSuperCats: maxSuperCats,
		Diagnostics:  diagnosticsOut,
	}
	driver := parser.NewDriver(cfg, rules.Null{}, model.NoFeatures{}, weights)
	driver.Ignore = ignore

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("ccgparse: creating output file: %w", err)
	}
	defer out.Close()

	effectiveLeafBeta := leafBeta
	if effectiveLeafBeta == 0 {
		effectiveLeafBeta = math.Inf(-1)
	}

	for i, sent := range sents {
		outcome, err := driver.ParseSentence(sent, effectiveLeafBeta)
		if err != nil {
			return fmt.Errorf("ccgparse: sentence %d: %w", i, err)
		}

		label := fmt.Sprintf("sentence %d: %v", i, outcome)
		if colorDiag {
			if outcome == parser.Parsed {
				label = okColor.Sprint(label)
			} else {
				label = failColor.Sprint(label)
			}
		}
		log.Println(label)

		if outcome == parser.Parsed {
			root := driver.Chart().Root().SuperCategories()[0]
			if err := parser.WriteDeps(out, root, sent); err != nil {
				return err
			}
		} else if outcome == parser.Exhausted {
			for _, sc := range driver.Skim() {
				if err := parser.WriteDeps(out, sc, sent); err != nil {
					return err
				}
			}
		}

		if diagnosticsOut {
			if err := driver.DumpFeatures(out, sent); err != nil {
				return err
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}

// ParseCmd builds the "parse" subcommand, wired into main.go's
// commander.Commander alongside the teacher's other app commands.
func ParseCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Parse,
		UsageLine: "parse <file options> [arguments]",
		Short:     "parse a supertagged file through the CCG chart parser",
		Long: `
parse a supertagged file through the CCG chart parser

	$ ./ccgparse parse -manifest model.yaml -supertags in.tags -out out.deps [options]

`,
		Flag: *flag.NewFlagSet("parse", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&manifestFile, "manifest", "", "Weights/grammar manifest (YAML)")
	cmd.Flag.StringVar(&supertagFile, "supertags", "", "Input supertagged sentences file")
	cmd.Flag.StringVar(&outFile, "out", "", "Output dependency file")
	cmd.Flag.StringVar(&labelsFile, "labels", "", "Optional relation label list (util/conf format)")
	cmd.Flag.BoolVar(&cubePruning, "cube", false, "Use cube-pruning k-best combination")
	cmd.Flag.IntVar(&beamSize, "beam", 0, "Beam size cap per cell (0 = unbounded)")
	cmd.Flag.Float64Var(&beta, "beta", 0, "Chart beta (0 = keep max only; negative = log-space)")
	cmd.Flag.Float64Var(&leafBeta, "leafbeta", 0, "Supertagger's own leaf beta (0 = unbounded)")
	cmd.Flag.IntVar(&maxWords, "maxwords", 0, "MAX_WORDS tripwire (0 = unbounded)")
	cmd.Flag.IntVar(&maxSuperCats, "maxsupercats", 0, "MAX_SUPERCATS tripwire (0 = unbounded)")
	cmd.Flag.BoolVar(&colorDiag, "color", false, "Colorize per-sentence outcome diagnostics")
	cmd.Flag.BoolVar(&diagnosticsOut, "diagnostics", false, "Dump recursive feature enumeration alongside dependencies")
	return cmd
}
