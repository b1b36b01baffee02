// Package sgf holds a minimal SGF game-record model, enough to keep a
// readable record of one game against the bot.
package sgf

import (
	"fmt"
	"strings"
)

// GameTree is one tree in an SGF file: a node sequence plus variations.
type GameTree struct {
	Nodes    []Node
	Children []*GameTree
}

// Node is one SGF node, a property set such as B[pd] or KM[6.5]. Properties
// may repeat.
type Node struct {
	Properties map[string][]string
}

type SGF struct {
	Root *GameTree
}

// propertyOrder keeps root properties in the conventional SGF order.
var propertyOrder = []string{"FF", "GM", "SZ", "PB", "PW", "DT", "RE", "KM", "RU", "C", "B", "W"}

func Serialize(s *SGF) string {
	var builder strings.Builder
	builder.WriteString("(")
	serializeGameTree(&builder, s.Root)
	builder.WriteString(")")
	return builder.String()
}

func serializeGameTree(builder *strings.Builder, tree *GameTree) {
	for _, node := range tree.Nodes {
		builder.WriteString(";")

		used := make(map[string]bool)
		for _, key := range propertyOrder {
			if values, ok := node.Properties[key]; ok {
				used[key] = true
				for _, v := range values {
					builder.WriteString(fmt.Sprintf("%s[%s]", key, v))
				}
			}
		}

		for key, values := range node.Properties {
			if !used[key] {
				for _, v := range values {
					builder.WriteString(fmt.Sprintf("%s[%s]", key, v))
				}
			}
		}
	}

	for _, child := range tree.Children {
		builder.WriteString("(")
		serializeGameTree(builder, child)
		builder.WriteString(")")
	}
}

// AppendMove appends one move property to serialized SGF text without
// re-parsing it.
func AppendMove(sgfText, colorKey, coords string) string {
	if strings.HasSuffix(sgfText, ")") {
		sgfText = sgfText[:len(sgfText)-1]
	}
	return sgfText + fmt.Sprintf(";%s[%s])", colorKey, coords)
}
