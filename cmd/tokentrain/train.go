package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sign-language-processing/complex-tokenization-go/construct"
	"github.com/sign-language-processing/complex-tokenization-go/corpus"
	"github.com/sign-language-processing/complex-tokenization-go/pretokenize"
	"github.com/sign-language-processing/complex-tokenization-go/trainer"
	"github.com/sign-language-processing/complex-tokenization-go/vertex"
)

var (
	trainCorpusPath string
	trainConfigPath string
	trainMerges     int
	trainOutPath    string
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Run K training iterations over a corpus and write the merge list",
		RunE:  runTrain,
	}
	cmd.Flags().StringVar(&trainCorpusPath, "corpus", "", "path to a newline-delimited text corpus (required)")
	cmd.Flags().StringVar(&trainConfigPath, "config", "", "path to a YAML training config")
	cmd.Flags().IntVar(&trainMerges, "merges", 10, "number of merges to train (K)")
	cmd.Flags().StringVar(&trainOutPath, "out", "merges.json", "path to write the merge list as JSON")
	_ = cmd.MarkFlagRequired("corpus")
	return cmd
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, err := loadTrainConfig(trainConfigPath)
	if err != nil {
		return err
	}

	f, err := os.Open(trainCorpusPath)
	if err != nil {
		return fmt.Errorf("opening corpus %s: %w", trainCorpusPath, err)
	}
	defer f.Close()

	graph, err := buildCorpusGraph(corpus.NewLineReader(f), cfg.Unit)
	if err != nil {
		return err
	}

	opts, err := cfg.trainerOptions()
	if err != nil {
		return fmt.Errorf("building trainer options: %w", err)
	}

	tr := trainer.New(graph, opts)
	merges, err := tr.Train(context.Background(), trainMerges)
	if err != nil {
		return fmt.Errorf("training: %w", err)
	}

	rendered := trainer.RenderMerges(merges, nil)
	out, err := json.MarshalIndent(rendered, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling merges: %w", err)
	}
	if err := os.WriteFile(trainOutPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", trainOutPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d merges to %s\n", len(merges), trainOutPath)
	return nil
}

// buildCorpusGraph reads every sample from r, builds each with the unit
// named by unitName, and wraps multiple samples in a Forest so that no
// candidate ever spans two documents.
func buildCorpusGraph(r corpus.Reader, unitName string) (vertex.Vertex, error) {
	build, err := unitBuilder(unitName)
	if err != nil {
		return nil, err
	}

	var samples []vertex.Vertex
	for {
		line, ok, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("reading corpus: %w", err)
		}
		if !ok {
			break
		}
		samples = append(samples, build(line))
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	return vertex.WrapForest(samples), nil
}

func unitBuilder(name string) (func(string) vertex.Vertex, error) {
	switch name {
	case "", "bytes":
		return func(s string) vertex.Vertex { return construct.ByteLeaves([]byte(s)) }, nil
	case "graphemes":
		return func(s string) vertex.Vertex { return construct.GraphemeClusters(s, nil) }, nil
	case "words":
		return func(s string) vertex.Vertex {
			return construct.Words(s, pretokenize.Default, true, nil)
		}, nil
	default:
		return nil, fmt.Errorf("unknown unit %q: want bytes, graphemes, or words", name)
	}
}
