package cli

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/seqtrie/pkg/trietree"
	"github.com/sirupsen/logrus"
)

// CLI is the kong grammar of the seqtrie command.
type CLI struct {
	Globals

	Query    QueryCmd    `cmd:"" help:"Report whether sequences are stored, prefixes of stored ones, or unknown"`
	Complete CompleteCmd `cmd:"" help:"List stored sequences starting with a prefix"`
	Dump     DumpCmd     `cmd:"" help:"Print the trie structure"`
	Export   ExportCmd   `cmd:"" help:"Write the stored sequences to a text, csv, json or yaml file"`
	Stats    StatsCmd    `cmd:"" help:"Print load statistics and the size of the trie"`
}

// Globals are the flags shared by every command.
type Globals struct {
	Config   kong.ConfigFlag `help:"YAML file with default flag values"`
	LogLevel string          `help:"Log level" default:"info" enum:"panic,fatal,error,warn,info,debug,trace" env:"SEQTRIE_LOG_LEVEL"`
	Key      string          `help:"Record field holding the sequence in csv, tsv, json and yaml files" default:"sequence"`
	Sep      string          `help:"Element separator, empty for one element per character"`
}

// Context is bound to every command's Run method.
type Context struct {
	*Globals
	Out   io.Writer
	Log   logrus.FieldLogger
	Stats *Stats
}

// New builds the kong parser for cli.
func New(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("seqtrie"),
		kong.Description("Load sequences into a prefix tree and query them."),
		kong.UsageOnError(),
		kong.Configuration(YAML),
	}, options...)
	return kong.New(cli, options...)
}

// Run parses args and executes the selected command. Results go to stdout,
// logs to stderr.
func Run(args []string, stdout io.Writer, stderr io.Writer) error {
	var cli CLI
	parser, err := New(&cli, kong.Writers(stdout, stderr))
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return cli.Execute(ctx, stdout, stderr)
}

// Execute runs the command selected in ctx.
func (cli *CLI) Execute(ctx *kong.Context, stdout io.Writer, stderr io.Writer) error {
	return ctx.Run(&Context{
		Globals: &cli.Globals,
		Out:     stdout,
		Log:     NewLogger(cli.LogLevel, stderr),
		Stats:   &Stats{},
	})
}

// NewLogger returns a logrus logger writing to out at the given level,
// falling back to info for unknown levels.
func NewLogger(level string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		ll = logrus.InfoLevel
	}
	log.SetLevel(ll)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true, PadLevelText: true, DisableQuote: true})
	return log
}

func (ctx *Context) newTree() *trietree.Tree[string] {
	return trietree.New[string](trietree.WithLogger(ctx.Log.WithField("component", "trietree")))
}
