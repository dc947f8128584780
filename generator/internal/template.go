package generator

const literalTemplate = `{{.Name}} := [{{len .Points}}][2]{{.ElemType}} {
{{range $i, $p := .Points}}{{$p}},{{if $.Marked $i}} // {{$i}}{{end}}
{{end}}}
`

const fileTemplate = `// Code generated by ringgen; DO NOT EDIT.

package {{.Package}}

// {{.Name}} holds {{len .Points}} points on a circle{{with .Source}} ({{.}}){{end}}.
var {{.Name}} = [{{len .Points}}][2]{{.ElemType}}{
{{range $i, $p := .Points}}{{$p}},{{if $.Marked $i}} // {{$i}}{{end}}
{{end}}}
`
