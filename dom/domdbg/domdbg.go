/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/domino/dom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump returns an indented tree representation of the element nodes
// below n (including n).
func Dump(n *html.Node) string {
	if n == nil {
		return "<nil>\n"
	}
	root := tp.NewWithRoot(dom.Label(n))
	dumpChildren(n, root)
	return root.String()
}

func dumpChildren(n *html.Node, t tp.Tree) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if !dom.IsElement(ch) {
			continue
		}
		if ch.FirstChild == nil {
			t.AddNode(dom.Label(ch))
		} else {
			dumpChildren(ch, t.AddBranch(dom.Label(ch)))
		}
	}
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the DOM and a Writer. Nodes given as marked are highlighted, e.g. nodes
// which have been re-arranged.
func ToGraphViz(doc *html.Node, w io.Writer, marked ...*html.Node) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{
		w:      w,
		params: &gparams,
		dict:   make(map[*html.Node]string, 4096),
		marked: make(map[*html.Node]bool, len(marked)),
	}
	for _, m := range marked {
		g.marked[m] = true
	}
	if err = g.nodes(doc); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type graph struct {
	w      io.Writer
	params *graphParamsType
	dict   map[*html.Node]string
	marked map[*html.Node]bool
}

type node struct {
	N      *html.Node
	Name   string
	Label  string
	Marked bool
}

func (g *graph) nodes(n *html.Node) error {
	if err := g.domNode(n); err != nil {
		return err
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode && strings.TrimSpace(ch.Data) == "" {
			continue
		}
		if err := g.nodes(ch); err != nil {
			return err
		}
		if err := g.domEdge(n, ch); err != nil {
			return err
		}
	}
	return nil
}

func (g *graph) name(n *html.Node) string {
	name := g.dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.dict)+1)
		g.dict[n] = name
	}
	return name
}

func (g *graph) domNode(n *html.Node) error {
	return g.params.NodeTmpl.Execute(g.w, &node{
		N:      n,
		Name:   g.name(n),
		Label:  dom.Label(n),
		Marked: g.marked[n],
	})
}

type edge struct {
	N1, N2 string
}

func (g *graph) domEdge(n1 *html.Node, n2 *html.Node) error {
	return g.params.EdgeTmpl.Execute(g.w, edge{g.name(n1), g.name(n2)})
}

func shortText(n *html.Node) string {
	s := "\"\\\""
	if len(n.Data) > 10 {
		s += n.Data[:10] + "...\\\"\""
	} else {
		s += n.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .Label "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if .Marked }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=orange ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
