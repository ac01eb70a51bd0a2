// Command ccgparsectl is a second, cobra-based entrypoint over the same
// parser package the gonuts/commander-driven ccgparse binary wraps; neither
// duplicates chart-filling logic, they differ only in CLI idiom and in
// ccgparsectl's addition of a long-running metrics server.
package main

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/habeanf/yap-ccg/app/ccgparse"
	"github.com/habeanf/yap-ccg/model"
	"github.com/habeanf/yap-ccg/parser"
	"github.com/habeanf/yap-ccg/rules"
	"github.com/habeanf/yap-ccg/sentence"
)

var (
	manifestFile string
	supertagFile string
	outFile      string
	cubePruning  bool
	beamSize     int
	beta         float64
	leafBeta     float64
	listenAddr   string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ccgparsectl",
		Short: "batch parsing, feature dumping and metrics serving over a CCG chart parser",
	}
	root.AddCommand(newParseCmd(), newFeaturesCmd(), newServeCmd())
	return root
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "batch-parse a supertagged file",
		RunE: func(cmd *cobra.Command, args []string) error {
			driver, sents, err := buildDriver()
			if err != nil {
				return err
			}
			out, err := os.Create(outFile)
			if err != nil {
				return fmt.Errorf("ccgparsectl: creating output file: %w", err)
			}
			defer out.Close()

			for i, sent := range sents {
				outcome, err := driver.ParseSentence(sent, effectiveLeafBeta())
				if err != nil {
					return fmt.Errorf("ccgparsectl: sentence %d: %w", i, err)
				}
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
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	addCommonFlags(cmd)
	cmd.Flags().StringVar(&outFile, "out", "", "output dependency file")
	return cmd
}

func newFeaturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "features",
		Short: "parse a supertagged file and dump the recursive feature enumeration for each sentence",
		RunE: func(cmd *cobra.Command, args []string) error {
			driver, sents, err := buildDriver()
			if err != nil {
				return err
			}
			driver.Config.Diagnostics = true

			for i, sent := range sents {
				if _, err := driver.ParseSentence(sent, effectiveLeafBeta()); err != nil {
					return fmt.Errorf("ccgparsectl: sentence %d: %w", i, err)
				}
				if err := driver.DumpFeatures(os.Stdout, sent); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addCommonFlags(cmd)
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "batch-parse a supertagged file once, then serve /metrics for scraping",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			metrics := parser.NewMetrics(reg)

			driver, sents, err := buildDriver()
			if err != nil {
				return err
			}
			driver.Metrics = metrics
			for i, sent := range sents {
				if _, err := driver.ParseSentence(sent, effectiveLeafBeta()); err != nil {
					return fmt.Errorf("ccgparsectl: sentence %d: %w", i, err)
				}
			}

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			log.Printf("ccgparsectl serve: parsed %d sentences, listening on %s", len(sents), listenAddr)
			return http.ListenAndServe(listenAddr, mux)
		},
	}
	addCommonFlags(cmd)
	cmd.Flags().StringVar(&listenAddr, "listen", ":9091", "address to serve /metrics on")
	return cmd
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&manifestFile, "manifest", "", "weights/grammar manifest (YAML)")
	cmd.Flags().StringVar(&supertagFile, "supertags", "", "input supertagged sentences file")
	cmd.Flags().BoolVar(&cubePruning, "cube", false, "use cube-pruning k-best combination")
	cmd.Flags().IntVar(&beamSize, "beam", 0, "beam size cap per cell (0 = unbounded)")
	cmd.Flags().Float64Var(&beta, "beta", 0, "chart beta (0 = keep max only; negative = log-space)")
	cmd.Flags().Float64Var(&leafBeta, "leafbeta", 0, "supertagger's own leaf beta (0 = unbounded)")
}

func effectiveLeafBeta() float64 {
	if leafBeta == 0 {
		return math.Inf(-1)
	}
	return leafBeta
}

func buildDriver() (*parser.Driver, []*sentence.Sentence, error) {
	if manifestFile == "" || supertagFile == "" {
		return nil, nil, fmt.Errorf("ccgparsectl: --manifest and --supertags are both required")
	}

	manifest, err := model.LoadManifest(manifestFile)
	if err != nil {
		return nil, nil, err
	}
	weights, err := model.LoadWeights(manifest.WeightsFile, manifest.NumFeatures)
	if err != nil {
		return nil, nil, err
	}

	lexicon := model.NewEnumLexicon()
	loader := &ccgparse.FileLoader{Path: supertagFile, Lexicon: lexicon}
	sents, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}

	cfg := parser.Config{
		CubePruning:  cubePruning,
		BeamSize:     beamSize,
		Beta:         beta,
		MaxWords:     manifest.MaxWords,
		MaxSuperCats: manifest.MaxSuperCats,
	}
	driver := parser.NewDriver(cfg, rules.Null{}, model.NoFeatures{}, weights)
	return driver, sents, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalln(err)
	}
}
