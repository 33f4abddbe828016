/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"newsfeed/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

// Space between the name and url columns
const columnGap = 2

func sourcesCmd() *cli.Command {
	return &cli.Command{
		Name:  "sources",
		Usage: "List the configured news sources",
		Description: `Prints the name and feed URL of every news source in the order
they are offered in the menu.`,
		Action: func(ctx *cli.Context) error {
			registry, err := loadRegistry(ctx)
			if err != nil {
				return err
			}

			entries := registry.Entries()
			width := lo.Max(lo.Map(entries, func(s models.Source, _ int) int {
				return lipgloss.Width(s.Name)
			}))
			name := lipgloss.NewRenderer(ctx.App.Writer).NewStyle().Width(width + columnGap)

			for _, source := range entries {
				if _, err := fmt.Fprintln(ctx.App.Writer, name.Render(source.Name)+source.URL); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
