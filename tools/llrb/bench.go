package main

import "io"
import "os"
import "fmt"
import "time"
import "math/rand"

import "github.com/bnclabs/llrbtree/api"
import "github.com/bnclabs/llrbtree/bst"
import "github.com/bnclabs/llrbtree/dict"
import "github.com/bnclabs/llrbtree/lib"
import "github.com/bnclabs/llrbtree/llrb"
import "github.com/schollz/progressbar/v3"
import "github.com/spf13/cobra"

var benchopts struct {
	records    int
	iterations int
	progress   bool
}

type record struct {
	id   int64
	data string
}

type benchresult struct {
	linear lib.AverageInt64
	simple lib.AverageInt64
	llrb   lib.AverageInt64
}

func benchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare lookup latency of linear search, bst and llrb",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rnd := rand.New(rand.NewSource(seed()))
			var out io.Writer = io.Discard
			if benchopts.progress {
				out = os.Stderr
			}
			bar := progressbar.NewOptions(benchopts.iterations,
				progressbar.OptionSetWriter(out),
				progressbar.OptionSetDescription("benchmarking lookups"),
				progressbar.OptionSetWidth(50),
				progressbar.OptionShowCount(),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "=",
					SaucerHead:    ">",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
			)
			res, err := benchmark(
				makerecords(benchopts.records), benchopts.iterations, rnd,
				func() { bar.Add(1) })
			bar.Finish()
			if err != nil {
				return err
			}
			res.print(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().IntVar(&benchopts.records, "records", 10000,
		"number of records to load")
	cmd.Flags().IntVar(&benchopts.iterations, "iterations", 500,
		"number of rounds, each round build fresh trees")
	cmd.Flags().BoolVar(&benchopts.progress, "progress", true,
		"show progress bar on stderr")
	return cmd
}

// makerecords return records with id 1..n-1.
func makerecords(n int) []*record {
	records := make([]*record, 0, n)
	for id := int64(1); id < int64(n); id++ {
		records = append(records, &record{id: id, data: fmt.Sprintf("DATA %v", id)})
	}
	return records
}

func benchmark(
	records []*record, iterations int, rnd *rand.Rand,
	tick func()) (*benchresult, error) {

	if len(records) == 0 {
		return nil, fmt.Errorf("no records to benchmark")
	}
	res := &benchresult{}
	buff := make([]*record, len(records))
	for i := 0; i < iterations; i++ {
		copy(buff, records)
		rnd.Shuffle(len(buff), func(i, j int) { buff[i], buff[j] = buff[j], buff[i] })

		linear := dict.NewDict[int64, *record]("linear", api.Int64cmp)
		hooks := bst.Defaulthooks[int64, *record](api.Int64cmp)
		simple := bst.NewBST[int64, *record]("simple", hooks, nil)
		tree := llrb.NewLLRB[int64, *record]("llrb", api.Int64cmp, nil)
		for _, rec := range buff {
			linear.Load(rec.id, rec) // record ids are unique
			simple.Insert(rec.id, rec)
			tree.Insert(rec.id, rec)
		}

		target := buff[rnd.Intn(len(buff))].id
		for _, x := range []struct {
			index api.Index[int64, *record]
			avg   *lib.AverageInt64
		}{
			{linear, &res.linear}, {simple, &res.simple}, {tree, &res.llrb},
		} {
			elapsed, err := timelookup(x.index, target)
			if err != nil {
				return nil, err
			}
			x.avg.Add(elapsed)
		}
		if tick != nil {
			tick()
		}
	}
	return res, nil
}

func timelookup(index api.Index[int64, *record], target int64) (int64, error) {
	now := time.Now()
	rec, ok := index.Lookup(target)
	elapsed := time.Since(now).Nanoseconds()
	if !ok || rec.id != target {
		return 0, fmt.Errorf("%v: lookup failed for %v", index.ID(), target)
	}
	return elapsed, nil
}

func (res *benchresult) print(w io.Writer) {
	linear := res.linear.Mean()
	simple, tree := res.simple.Mean(), res.llrb.Mean()
	fmt.Fprintln(w, "average")
	fmt.Fprintf(w, "Linear search %v\n", linear)
	fmt.Fprintf(w, "BST search %v %v%%\n", simple, lib.Percent(simple, linear))
	fmt.Fprintf(w, "LLRB search %v %v%%\n", tree, lib.Percent(tree, linear))
}

func seed() int64 {
	if options.seed == 0 {
		return time.Now().UnixNano()
	}
	return options.seed
}
