package firestore

import (
	"fmt"
	"strings"
)

func treeElement(name string, indent int, last bool) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", indent))
	if last {
		sb.WriteRune('└')
	} else {
		sb.WriteRune('├')
	}
	sb.WriteString(fmt.Sprintf(" %s", name))
	return sb.String()
}

func treeString(name string, indent int, last bool, value string) string {
	var sb strings.Builder
	sb.WriteString(treeElement(name, indent, last))
	sb.WriteString(": ")
	sb.WriteString(value)
	return sb.String()
}

func treeBool(name string, indent int, last bool, value bool) string {
	var sb strings.Builder
	sb.WriteString(treeElement(name, indent, last))
	sb.WriteString(fmt.Sprintf(": %t", value))
	return sb.String()
}

func treeInt(name string, indent int, last bool, value int) string {
	var sb strings.Builder
	sb.WriteString(treeElement(name, indent, last))
	sb.WriteString(fmt.Sprintf(": %d", value))
	return sb.String()
}

func treeStringSlice(name string, indent int, last bool, value []string) string {
	var sb strings.Builder
	sb.WriteString(treeElement(name, indent, last))
	sb.WriteString(fmt.Sprintf(": slice[%d] ↓↓↓", len(value)))
	ss := make([]string, len(value))
	for i, s := range value {
		ss[i] = fmt.Sprintf("│%*d: %s", indent+3, i, s)
	}
	if len(ss) > 0 {
		sb.WriteRune('\n')
		sb.WriteString(strings.Join(ss, "\n"))
	}
	return sb.String()
}
