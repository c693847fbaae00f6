package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path"

	"github.com/consensys/go-subcount/pkg/batch"
	util "github.com/consensys/go-subcount/pkg/cmd"
	"github.com/consensys/go-subcount/pkg/subarray"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("count", 10, "Number of batches to generate")
	rootCmd.Flags().Uint("min-len", 1, "Minimum array length")
	rootCmd.Flags().Uint("max-len", 12, "Maximum array length")
	rootCmd.Flags().Uint("queries", 20, "Number of queries per batch")
	rootCmd.Flags().Int64("min-elem", 0, "Minimum element")
	rootCmd.Flags().Int64("max-elem", 3, "Maximum element")
	rootCmd.Flags().Int64("seed", 1, "Random seed")
	rootCmd.Flags().String("dir", "testdata", "Output directory")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen [flags] name",
	Short: "Test generation utility for subcount.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var cfg TestGenConfig
		//
		cfg.name = args[0]
		cfg.dir = util.GetString(cmd, "dir")
		cfg.count = util.GetUint(cmd, "count")
		cfg.min_len = util.GetUint(cmd, "min-len")
		cfg.max_len = util.GetUint(cmd, "max-len")
		cfg.queries = util.GetUint(cmd, "queries")
		cfg.min_elem = util.GetInt(cmd, "min-elem")
		cfg.max_elem = util.GetInt(cmd, "max-elem")
		cfg.seed = util.GetInt(cmd, "seed")
		//
		if cfg.min_len > cfg.max_len || cfg.min_elem > cfg.max_elem {
			fmt.Println("invalid length or element range")
			os.Exit(1)
		}
		//
		rng := rand.New(rand.NewSource(cfg.seed))
		//
		for i := uint(1); i <= cfg.count; i++ {
			writeTestBatch(cfg, i, generateTestBatch(cfg, rng))
		}
		//
		os.Exit(0)
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	name     string
	dir      string
	count    uint
	min_len  uint
	max_len  uint
	queries  uint
	min_elem int64
	max_elem int64
	seed     int64
}

// Generate a random batch within the configured bounds.
func generateTestBatch(cfg TestGenConfig, rng *rand.Rand) *batch.Batch {
	length := cfg.min_len + uint(rng.Int63n(int64(cfg.max_len-cfg.min_len+1)))
	//
	return batch.Random(rng, batch.RandomConfig{
		Length:  length,
		Queries: cfg.queries,
		MinElem: cfg.min_elem,
		MaxElem: cfg.max_elem,
	})
}

// Write a batch along with its expected answers, as determined by enumeration
// rather than by the index.
func writeTestBatch(cfg TestGenConfig, nth uint, b *batch.Batch) {
	var (
		input    bytes.Buffer
		output   bytes.Buffer
		name     = fmt.Sprintf("%s_%02d", cfg.name, nth)
		bounds   = subarray.NaiveBounds(b.Values)
		expected = make([]uint64, len(b.Queries))
	)
	//
	for i, q := range b.Queries {
		expected[i] = subarray.CountBrute(bounds, q.Left, q.Right)
	}
	//
	if err := batch.WriteText(&input, b); err != nil {
		panic(err)
	}
	//
	if err := batch.WriteAnswers(&output, expected); err != nil {
		panic(err)
	}
	//
	writeFile(path.Join(cfg.dir, name+".in"), input.Bytes())
	writeFile(path.Join(cfg.dir, name+".out"), output.Bytes())
	// Log what happened
	log.Infof("Wrote %s (length %d, %d queries)\n", name, len(b.Values), len(b.Queries))
}

func writeFile(filename string, bytes []byte) {
	if err := os.WriteFile(filename, bytes, 0644); err != nil {
		panic(err)
	}
}
