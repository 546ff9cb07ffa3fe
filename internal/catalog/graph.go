package catalog

import (
	"github.com/hasbyte1/go-utilkit/arr"
	"github.com/hasbyte1/go-utilkit/collections"
)

// Node kinds.
const (
	KindConstant = "constant"
	KindGroup    = "group"
)

// Link kinds.
const (
	LinkGroup   = "group"
	LinkRelated = "related"
)

// Node is a vertex of the constants graph.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
	Group string `json:"group,omitempty"`
	Value any    `json:"value,omitempty"`
	Title string `json:"title,omitempty"`
}

// Link is an edge of the constants graph.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
}

// GraphData is the node/link payload consumed by force-directed layouts.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Graph builds node/link data for constants. Each constant links to its
// group node and to every related constant. Related names that are not in
// constants are dropped, as are self references and repeated names.
//
// Constant nodes come first in input order, followed by group nodes sorted
// by name.
func Graph(constants []Constant) GraphData {
	constants = arr.UniqBy(constants, func(c Constant) string { return c.Name })
	known := collections.KeyBy(constants, func(c Constant) string { return c.Name })

	g := GraphData{Nodes: []Node{}, Links: []Link{}}
	for _, c := range constants {
		g.Nodes = append(g.Nodes, Node{
			ID:    constantID(c.Name),
			Label: c.Name,
			Kind:  KindConstant,
			Group: c.Group,
			Value: c.Value,
			Title: c.Description,
		})
	}

	groups := arr.Compact(collections.Map(constants, func(c Constant, _ int) string { return c.Group }))
	for _, group := range arr.SortedUniq(collections.SortBy(groups, func(s string) string { return s })) {
		g.Nodes = append(g.Nodes, Node{ID: groupID(group), Label: group, Kind: KindGroup})
	}

	for _, c := range constants {
		if c.Group != "" {
			g.Links = append(g.Links, Link{Source: constantID(c.Name), Target: groupID(c.Group), Kind: LinkGroup})
		}
		for _, rel := range arr.Uniq(c.Related) {
			if _, ok := known[rel]; !ok || rel == c.Name {
				continue
			}
			g.Links = append(g.Links, Link{Source: constantID(c.Name), Target: constantID(rel), Kind: LinkRelated})
		}
	}
	return g
}

func constantID(name string) string { return "const:" + name }
func groupID(name string) string    { return "group:" + name }
