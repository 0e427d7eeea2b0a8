package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rogersnm/shotdoc/internal/editor"
	"github.com/rogersnm/shotdoc/internal/markdown"
	"github.com/rogersnm/shotdoc/internal/model"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the project folders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCreator(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Project %s initialized at %s\n", c.Store().Project, c.OutputDir())
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a page, replacing any page with the same id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rawLinks, _ := cmd.Flags().GetString("links")
		links, err := parseLinks(rawLinks)
		if err != nil {
			return err
		}

		pageID, _ := cmd.Flags().GetString("page_id")
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		screenshot, _ := cmd.Flags().GetString("screenshot")

		c, err := openCreator(cmd)
		if err != nil {
			return err
		}
		page := model.Page{
			Title:       title,
			Description: description,
			Screenshot:  screenshot,
			Links:       links,
		}
		if err := c.AddPage(pageID, page); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Page %s added.\n", pageID)
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write README.md from the recorded pages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCreator(cmd)
		if err != nil {
			return err
		}
		path, err := c.Generate()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Markdown generated at %s\n", path)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Preview the README in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCreator(cmd)
		if err != nil {
			return err
		}
		out, err := markdown.RenderTerminal(c.Document(), env.Config.Preview.Style)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded pages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCreator(cmd)
		if err != nil {
			return err
		}
		s := c.Store()
		fmt.Fprint(cmd.OutOrStdout(), markdown.RenderHeader(s.Project, []string{
			markdown.RenderField("Data", s.DataFile()),
			markdown.RenderField("Load", s.State().String()),
			markdown.RenderField("Pages", strconv.Itoa(s.Pages().Len())),
		}))
		fmt.Fprintln(cmd.OutOrStdout(), markdown.PageTable(s.Pages()))
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the project's data.json in $EDITOR",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCreator(cmd)
		if err != nil {
			return err
		}
		return editor.Open(c.Store().DataFile())
	},
}

// parseLinks decodes the --links JSON array. An empty value means no links.
func parseLinks(raw string) ([]model.Link, error) {
	if raw == "" {
		return nil, nil
	}
	var links []model.Link
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, fmt.Errorf("invalid --links JSON: %w", err)
	}
	return links, nil
}

func init() {
	addCmd.Flags().String("page_id", "", "unique page id, such as its URL or title")
	addCmd.Flags().String("title", "", "page title")
	addCmd.Flags().String("description", "", "page description")
	addCmd.Flags().String("screenshot", "", "screenshot path as it should appear in the README")
	addCmd.Flags().String("links", "", `JSON array of {"text","uid","target_id","description"} objects`)
	addCmd.MarkFlagRequired("page_id")

	for _, c := range []*cobra.Command{initCmd, addCmd, generateCmd, showCmd, listCmd, editCmd} {
		addProjectFlag(c)
		rootCmd.AddCommand(c)
	}
}
