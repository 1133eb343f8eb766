package models

import "strconv"

// Overlay is the graph fragment the analysis endpoints return for
// front-end rendering: one node per cluster/bucket and one link per
// interlinkage membership.
type Overlay struct {
	Nodes []OverlayNode `json:"nodes"`
	Links []OverlayLink `json:"links"`
}

type OverlayNode struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	SizeHint int    `json:"size_hint"`
}

type OverlayLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

func NewOverlay() Overlay {
	return Overlay{Nodes: []OverlayNode{}, Links: []OverlayLink{}}
}

func ilNodeID(id int) string {
	return "il:" + strconv.Itoa(id)
}

// node size grows with membership, capped for display
func overlaySizeHint(count int) int {
	size := 40 + 6*count
	if size > 120 {
		size = 120
	}
	return size
}
