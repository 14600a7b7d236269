package main

import "os"
import "fmt"
import "strconv"
import "math/rand"

import "github.com/bnclabs/golog"
import "github.com/bnclabs/llrbtree/api"
import "github.com/bnclabs/llrbtree/lib"
import "github.com/bnclabs/llrbtree/llrb"
import "github.com/cloudfoundry/gosigar"
import humanize "github.com/dustin/go-humanize"
import "github.com/spf13/cobra"

var loadopts struct {
	n       int
	klen    [2]int // min-klen, max-klen
	dotfile string
}

func loadCmd() *cobra.Command {
	var klen string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load random keys into llrb tree and log its statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parseklen(klen); err != nil {
				return err
			}
			llrb.LogComponents("all")

			_, used, _ := getsysmem()
			rnd := rand.New(rand.NewSource(seed()))
			tree, err := loadtree(loadopts.n, loadopts.klen, rnd)
			if err != nil {
				return err
			}
			tree.Validate()
			tree.Log(true)

			total, usedafter, free := getsysmem()
			fmsg := "sysmem total %v, used %v -> %v, free %v\n"
			log.Infof(fmsg, humanize.Bytes(total), humanize.Bytes(used),
				humanize.Bytes(usedafter), humanize.Bytes(free))
			fmsg = "loaded %v entries, depth %v\n"
			fmt.Fprintf(cmd.OutOrStdout(), fmsg,
				humanize.Comma(tree.Count()), tree.Depth())

			if loadopts.dotfile != "" {
				fd, err := os.Create(loadopts.dotfile)
				if err != nil {
					return err
				}
				defer fd.Close()
				tree.Dotdump(fd)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&loadopts.n, "n", 1000,
		"number of items to generate and insert")
	cmd.Flags().StringVar(&klen, "klen", "",
		"minklen, maxklen - generate keys between [minklen,maxklen)")
	cmd.Flags().StringVar(&loadopts.dotfile, "dot", "",
		"dump tree as graphviz dot script into file")
	return cmd
}

func parseklen(klen string) error {
	loadopts.klen = [2]int{16, 32}
	for i, s := range lib.Parsecsv(klen) {
		if i > 1 {
			return fmt.Errorf("invalid klen %q", klen)
		}
		ln, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		loadopts.klen[i] = ln
	}
	if loadopts.klen[0] < 1 || loadopts.klen[1] <= loadopts.klen[0] {
		return fmt.Errorf("invalid klen %v", loadopts.klen)
	}
	return nil
}

func loadtree(n int, klen [2]int, rnd *rand.Rand) (*llrb.LLRB[[]byte, []byte], error) {
	tree := llrb.NewLLRB[[]byte, []byte]("load", api.Binarycmp, nil)
	for i := 0; i < n; i++ {
		key := randkey(klen, rnd)
		value := strconv.AppendInt(nil, int64(i), 10)
		if _, err := tree.Insert(key, value); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func randkey(klen [2]int, rnd *rand.Rand) []byte {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	key := make([]byte, klen[0]+rnd.Intn(klen[1]-klen[0]))
	for i := range key {
		key[i] = letters[rnd.Intn(len(letters))]
	}
	return key
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
