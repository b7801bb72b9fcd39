package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDocHeader = `---
layout: default
title: %s
nav_order: %d
has_children: %t
permalink: /
---
`

// child command without children
const childDocHeader = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// newDocsCmd is for writing Markdown docs for every command, with the YAML
// headers the just-the-docs theme needs.
func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "docs [dir]",
		Short:  "Write Markdown documentation for findoverlaps",
		Hidden: true,
		Args:   cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "docs"
			if len(args) > 0 {
				dir = args[0]
			}
			return makeDocs(cmd.Root(), dir)
		},
	}
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create docs dir %s: %w", dir, err)
	}

	root.DisableAutoGenTag = true
	prepender := func(filename string) string {
		return filePrepender(root, filename)
	}
	if err := doc.GenMarkdownTreeCustom(root, dir, prepender, linkHandler(root)); err != nil {
		return fmt.Errorf("failed to write docs to %s: %w", dir, err)
	}
	return nil
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(root *cobra.Command, filename string) string {
	base := docBase(filename)
	if base == root.Name() {
		return fmt.Sprintf(rootDocHeader, root.Name(), 0, hasDocChildren(root))
	}

	order := 0
	for i, c := range root.Commands() {
		if base == root.Name()+"_"+c.Name() {
			order = i
			break
		}
	}
	return fmt.Sprintf(childDocHeader, strings.TrimPrefix(base, root.Name()+"_"), root.Name(), order)
}

// linkHandler returns the URL to a documentation page
func linkHandler(root *cobra.Command) func(string) string {
	return func(filename string) string {
		base := docBase(filename)
		if base == root.Name() {
			return "/"
		}
		return base
	}
}

func docBase(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}

func hasDocChildren(root *cobra.Command) bool {
	for _, c := range root.Commands() {
		if c.IsAvailableCommand() && !c.IsAdditionalHelpTopicCommand() {
			return true
		}
	}
	return false
}
