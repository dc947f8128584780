package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/storozhukBM/ringgen"
	generator "github.com/storozhukBM/ringgen/generator/internal"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ringgen: ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	preset    string
	dim       int
	base      int
	ref       int
	count     int
	name      string
	elemType  string
	markEvery int
	dir       string
	pkg       string
	list      bool
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	var opts options
	var envFile string
	fs := flag.NewFlagSet("ringgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.preset, "preset", ringgen.DefaultPreset, "named geometry and convention; see -list")
	fs.IntVar(&opts.dim, "dim", 0, "target display dimension in pixels; 0 keeps the preset value")
	fs.IntVar(&opts.base, "base", 0, "radius at the reference dimension; 0 keeps the preset value")
	fs.IntVar(&opts.ref, "ref", 0, "reference dimension the base radius is given for; 0 keeps the preset value")
	fs.IntVar(&opts.count, "n", -1, "number of points; -1 keeps the preset value")
	fs.StringVar(&opts.name, "name", generator.DefaultName, "variable name of the table")
	fs.StringVar(&opts.elemType, "type", generator.DefaultElemType, "integer type of the coordinates")
	fs.IntVar(&opts.markEvery, "mark", 0, "append an index comment to every N-th point; 0 disables")
	fs.StringVar(&opts.dir, "dir", "", "write a generated Go file into this directory instead of printing the literal")
	fs.StringVar(&opts.pkg, "pkg", generator.DefaultPackage, "package clause of the generated file; used with -dir")
	fs.StringVar(&envFile, "env", "", "load RINGGEN_* defaults from this env file")
	fs.BoolVar(&opts.list, "list", false, "list available presets and exit")
	if parseErr := fs.Parse(args); parseErr != nil {
		if parseErr == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "ringgen: unexpected arguments: %v\n", fs.Args())
		return 2
	}

	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	cfg, cfgErr := generator.LoadConfig(envFiles...)
	if cfgErr != nil {
		fmt.Fprintf(stderr, "ringgen: %v\n", cfgErr)
		return 1
	}
	applyConfig(fs, &opts, cfg, stderr)

	if opts.list {
		for _, name := range ringgen.PresetNames() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	if err := generate(opts, stdout); err != nil {
		fmt.Fprintf(stderr, "ringgen: %v\n", err)
		return 1
	}
	return 0
}

// applyConfig takes environment defaults for every flag left unset and
// reports each one on stderr, so the table never changes silently.
func applyConfig(fs *flag.FlagSet, opts *options, cfg generator.Config, stderr io.Writer) {
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})
	defaults := []struct {
		flagName string
		key      string
		apply    func()
	}{
		{"preset", generator.EnvPreset, func() { opts.preset = cfg.Preset }},
		{"name", generator.EnvName, func() { opts.name = cfg.Name }},
		{"type", generator.EnvType, func() { opts.elemType = cfg.ElemType }},
		{"pkg", generator.EnvPackage, func() { opts.pkg = cfg.Package }},
		{"mark", generator.EnvMark, func() { opts.markEvery = cfg.MarkEvery }},
	}
	for _, d := range defaults {
		value, fromEnv := cfg.Env[d.key]
		if !fromEnv || explicit[d.flagName] {
			continue
		}
		d.apply()
		fmt.Fprintf(stderr, "ringgen: -%v=%v from %v\n", d.flagName, value, d.key)
	}
}

func generate(opts options, stdout io.Writer) error {
	preset, lookupErr := ringgen.LookupPreset(opts.preset)
	if lookupErr != nil {
		return lookupErr
	}
	geometry := preset.Geometry
	if opts.dim != 0 {
		geometry.Dim = opts.dim
	}
	if opts.base != 0 {
		geometry.BaseRadius = opts.base
	}
	if opts.ref != 0 {
		geometry.RefDim = opts.ref
	}
	if opts.count >= 0 {
		geometry.Count = opts.count
	}

	params, paramsErr := geometry.Params()
	if paramsErr != nil {
		return fmt.Errorf("can't derive circle params: %w", paramsErr)
	}
	points, sampleErr := ringgen.Sample(params, preset.Convention)
	if sampleErr != nil {
		return fmt.Errorf("can't sample circle: %w", sampleErr)
	}

	def := generator.RingDefinition{
		Name:      opts.name,
		ElemType:  opts.elemType,
		Package:   opts.pkg,
		MarkEvery: opts.markEvery,
		Source: fmt.Sprintf(
			"%v: radius %v around %v, %v",
			preset.Name, params.Radius, params.Origin.X, params.Origin.Y,
		),
		Points: points,
	}
	g := generator.NewGenerator()
	if opts.dir == "" {
		return g.EmitLiteral(stdout, def)
	}
	outputs, generationErr := g.RunGeneratorForRings(opts.dir, []generator.RingDefinition{def})
	if generationErr != nil {
		return generationErr
	}
	for _, output := range outputs {
		log.Printf("wrote %v", output)
	}
	return nil
}
