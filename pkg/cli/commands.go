package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/khalid-nowaf/seqtrie"
	"github.com/khalid-nowaf/seqtrie/pkg/trietree"
	"github.com/sirupsen/logrus"
)

// Source is the list of input files every command loads.
type Source struct {
	Files []string `arg:"" type:"existingfile" help:"Input files: .csv, .tsv, .json, .yaml, .yml or one sequence per line"`
}

type QueryCmd struct {
	Source `embed:""`
	Seq    []string `required:"" sep:"none" help:"Sequence to look up, repeatable"`
}

func (cmd *QueryCmd) Run(ctx *Context) error {
	tree, err := ctx.load(cmd.Files)
	if err != nil {
		return err
	}
	for _, raw := range cmd.Seq {
		match := tree.QueryPrefix(ctx.split(raw))
		fmt.Fprintf(ctx.Out, "%s\t%s\n", raw, match)
	}
	return nil
}

type CompleteCmd struct {
	Source `embed:""`
	Prefix string `help:"Prefix to complete, empty for every sequence"`
	Limit  int    `default:"0" help:"Maximum number of completions, 0 for no limit"`
}

func (cmd *CompleteCmd) Run(ctx *Context) error {
	tree, err := ctx.load(cmd.Files)
	if err != nil {
		return err
	}
	prefix := ctx.split(cmd.Prefix)
	it, ok := tree.QueryIter(prefix)
	if !ok {
		ctx.Log.WithField("prefix", cmd.Prefix).Info("no stored sequence starts with prefix")
		return nil
	}

	var completions []string
	for cmd.Limit <= 0 || len(completions) < cmd.Limit {
		rest, ok := it.Next()
		if !ok {
			break
		}
		completions = append(completions, ctx.join(slices.Concat(prefix, rest)))
	}
	slices.Sort(completions)
	for _, completion := range completions {
		fmt.Fprintln(ctx.Out, completion)
	}
	return nil
}

type DumpCmd struct {
	Source `embed:""`
	Pretty bool `help:"Indented multi-line output"`
}

func (cmd *DumpCmd) Run(ctx *Context) error {
	tree, err := ctx.load(cmd.Files)
	if err != nil {
		return err
	}
	if cmd.Pretty {
		fmt.Fprintf(ctx.Out, "%+q\n", tree)
	} else {
		fmt.Fprintf(ctx.Out, "%q\n", tree)
	}
	return nil
}

type ExportCmd struct {
	Source  `embed:""`
	Exclude []string `type:"existingfile" help:"Files whose sequences are removed before writing"`
	Format  string   `default:"text" enum:"text,csv,tsv,json,yaml" help:"Output format (text,csv,tsv,json,yaml)"`
	Output  string   `short:"o" default:"-" help:"Output file, - for stdout"`
}

func (cmd *ExportCmd) Run(ctx *Context) error {
	writer, err := newWriter(cmd.Format, ctx.Key, ctx.Stats)
	if err != nil {
		return err
	}
	tree, err := ctx.load(cmd.Files)
	if err != nil {
		return err
	}
	for _, path := range cmd.Exclude {
		err := parseFile(path, ctx.Key, func(raw string) error {
			if tree.Remove(ctx.split(raw)) {
				ctx.Stats.Removed++
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	tree.ShrinkToFit()

	seqs := make([]string, 0, tree.Count())
	for seq := range tree.All() {
		seqs = append(seqs, ctx.join(seq))
	}
	slices.Sort(seqs)

	err = writeTo(cmd.Output, ctx.Out, func(out io.Writer) error {
		return writer.Write(out, seqs)
	})
	if err != nil {
		return fmt.Errorf("writing %s output: %w", cmd.Format, err)
	}
	ctx.Log.WithFields(logrus.Fields{
		"removed": ctx.Stats.Removed,
		"output":  ctx.Stats.Output,
	}).Info("export complete")
	return nil
}

type StatsCmd struct {
	Source `embed:""`
}

func (cmd *StatsCmd) Run(ctx *Context) error {
	tree, err := ctx.load(cmd.Files)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "files:      %d\n", ctx.Stats.Files)
	fmt.Fprintf(ctx.Out, "read:       %d\n", ctx.Stats.Read)
	fmt.Fprintf(ctx.Out, "inserted:   %d\n", ctx.Stats.Inserted)
	fmt.Fprintf(ctx.Out, "duplicates: %d\n", ctx.Stats.Duplicates)
	fmt.Fprintf(ctx.Out, "sequences:  %d\n", tree.Count())
	fmt.Fprintf(ctx.Out, "nodes:      %d\n", tree.NodeCount())
	return nil
}

// writeTo calls write with stdout for "-", otherwise with a new file at path.
// The file is closed before returning and its close error is reported.
func writeTo(path string, stdout io.Writer, write func(out io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

// load inserts the sequences of every file into a new tree.
func (ctx *Context) load(files []string) (*trietree.Tree[string], error) {
	tree := ctx.newTree()
	for _, path := range files {
		read := 0
		err := parseFile(path, ctx.Key, func(raw string) error {
			read++
			if tree.Insert(ctx.split(raw)) {
				ctx.Stats.Inserted++
			} else {
				ctx.Stats.Duplicates++
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		ctx.Stats.Files++
		ctx.Stats.Read += read
		ctx.Log.WithFields(logrus.Fields{"file": path, "read": read}).Debug("loaded sequences")
	}
	ctx.Log.WithFields(logrus.Fields{
		"files":      ctx.Stats.Files,
		"inserted":   ctx.Stats.Inserted,
		"duplicates": ctx.Stats.Duplicates,
	}).Info("trie loaded")
	return tree, nil
}

func (ctx *Context) split(raw string) []string {
	return seqtrie.Split(raw, ctx.Sep)
}

func (ctx *Context) join(seq []string) string {
	return strings.Join(seq, ctx.Sep)
}
