package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"io/ioutil"
	"math"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/storozhukBM/ringgen"
)

const (
	DefaultName     = "circles"
	DefaultElemType = "int16"
	DefaultPackage  = "main"
)

type valueRange struct {
	min int64
	max int64
}

var elemTypes = map[string]valueRange{
	"int8":   {math.MinInt8, math.MaxInt8},
	"int16":  {math.MinInt16, math.MaxInt16},
	"int32":  {math.MinInt32, math.MaxInt32},
	"int64":  {math.MinInt64, math.MaxInt64},
	"int":    {math.MinInt64, math.MaxInt64},
	"uint8":  {0, math.MaxUint8},
	"uint16": {0, math.MaxUint16},
	"uint32": {0, math.MaxUint32},
}

// RingDefinition is everything needed to render one table of points.
type RingDefinition struct {
	Name     string
	ElemType string
	// Package is only used for generated files.
	Package string
	// Source is mentioned in the doc comment of generated files.
	Source string
	// MarkEvery appends an index comment to every MarkEvery-th element.
	MarkEvery int
	Points    []ringgen.Point
}

type ringView struct {
	RingDefinition
}

func (v ringView) Marked(idx int) bool {
	return v.MarkEvery > 0 && idx%v.MarkEvery == 0
}

// Generator renders point tables as Go source.
type Generator struct {
	literal *template.Template
	file    *template.Template
}

// NewGenerator parses the literal and file templates.
func NewGenerator() *Generator {
	return &Generator{
		literal: template.Must(template.New("literal").Parse(literalTemplate)),
		file:    template.Must(template.New("file").Parse(fileTemplate)),
	}
}

// EmitLiteral writes the short variable declaration of def.Points to w,
// one element per line, in the order they are stored.
func (g *Generator) EmitLiteral(w io.Writer, def RingDefinition) error {
	view, checkErr := g.prepare(def)
	if checkErr != nil {
		return checkErr
	}
	templateErr := g.literal.Execute(w, view)
	if templateErr != nil {
		return fmt.Errorf("can't render literal template: %v", templateErr)
	}
	return nil
}

// RunGeneratorForRings renders a gofmt'ed Go file for every definition into dirName.
func (g *Generator) RunGeneratorForRings(dirName string, defs []RingDefinition) ([]string, error) {
	absPath, pathErr := filepath.Abs(dirName)
	if pathErr != nil {
		return nil, fmt.Errorf("can't calculate abs path for %v: %v", dirName, pathErr)
	}
	outputs := make([]string, 0, len(defs))
	for _, def := range defs {
		outputPath, generationErr := g.generateFromTemplateAndWriteToFile(absPath, def)
		if generationErr != nil {
			return outputs, fmt.Errorf("can't generate table `%v`: \n%v", def.Name, generationErr)
		}
		outputs = append(outputs, outputPath)
	}
	return outputs, nil
}

// RenderFile returns the formatted source of the file generated for def.
func (g *Generator) RenderFile(def RingDefinition) ([]byte, error) {
	if def.Package == "" {
		def.Package = DefaultPackage
	}
	if !token.IsIdentifier(def.Package) {
		return nil, fmt.Errorf("package name `%v` isn't a valid identifier", def.Package)
	}
	view, checkErr := g.prepare(def)
	if checkErr != nil {
		return nil, checkErr
	}
	var b bytes.Buffer
	templateErr := g.file.Execute(&b, view)
	if templateErr != nil {
		return nil, fmt.Errorf("can't render file template: %v", templateErr)
	}
	src, formatErr := format.Source(b.Bytes())
	if formatErr != nil {
		return nil, fmt.Errorf("can't format generated file: %v", formatErr)
	}
	return src, nil
}

// OutputFileName is the name of the file generated for a table called name.
func OutputFileName(name string) string {
	return strings.ToLower(name + ".circles.go")
}

func (g *Generator) generateFromTemplateAndWriteToFile(absPath string, def RingDefinition) (string, error) {
	src, renderErr := g.RenderFile(def)
	if renderErr != nil {
		return "", renderErr
	}
	if def.Name == "" {
		def.Name = DefaultName
	}
	outputPath := filepath.Join(absPath, OutputFileName(def.Name))
	writeErr := ioutil.WriteFile(outputPath, src, 0664)
	if writeErr != nil {
		return "", fmt.Errorf("can't write file to disk: %v", writeErr)
	}
	return outputPath, nil
}

func (g *Generator) prepare(def RingDefinition) (ringView, error) {
	if def.Name == "" {
		def.Name = DefaultName
	}
	if def.ElemType == "" {
		def.ElemType = DefaultElemType
	}
	if !token.IsIdentifier(def.Name) {
		return ringView{}, fmt.Errorf("table name `%v` isn't a valid identifier", def.Name)
	}
	if def.MarkEvery < 0 {
		return ringView{}, fmt.Errorf("mark interval can't be negative: %v", def.MarkEvery)
	}
	bounds, ok := elemTypes[def.ElemType]
	if !ok {
		return ringView{}, fmt.Errorf("unsupported element type `%v`", def.ElemType)
	}
	for i, p := range def.Points {
		if !bounds.contains(p.X) || !bounds.contains(p.Y) {
			return ringView{}, fmt.Errorf(
				"point %d %v doesn't fit into %v [%d, %d]",
				i, p, def.ElemType, bounds.min, bounds.max,
			)
		}
	}
	return ringView{RingDefinition: def}, nil
}

func (r valueRange) contains(v int) bool {
	return int64(v) >= r.min && int64(v) <= r.max
}
