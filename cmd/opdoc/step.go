package main

import (
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

var addStepCmd = &cobra.Command{
	Use:   "add_step",
	Short: "Highlight an element on a screenshot and record the step",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		screenshot, _ := cmd.Flags().GetString("screenshot")
		caption, _ := cmd.Flags().GetString("caption")
		x, _ := cmd.Flags().GetInt("x")
		y, _ := cmd.Flags().GetInt("y")
		w, _ := cmd.Flags().GetInt("w")
		h, _ := cmd.Flags().GetInt("h")

		c, err := openCreator(cmd)
		if err != nil {
			return err
		}
		path, err := c.AddStep(screenshot, model.Rect{X: x, Y: y, W: w, H: h}, caption)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Step added. Processed image at %s\n", path)
		return nil
	},
}

var generateMDCmd = &cobra.Command{
	Use:   "generate_md",
	Short: "Write OPERATIONS.md from the recorded steps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		c, err := openCreator(cmd)
		if err != nil {
			return err
		}
		path, err := c.Generate(title)
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No steps to generate document.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Document generated at %s\n", path)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Preview the operations guide in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		c, err := openCreator(cmd)
		if err != nil {
			return err
		}
		if c.Store().Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No steps to generate document.")
			return nil
		}
		out, err := markdown.RenderTerminal(c.Document(title), env.Config.Preview.Style)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded steps",
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
			markdown.RenderField("Steps", strconv.Itoa(s.Len())),
		}))
		fmt.Fprintln(cmd.OutOrStdout(), markdown.StepTable(s.Steps()))
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

func init() {
	addStepCmd.Flags().String("screenshot", "", "original screenshot path")
	addStepCmd.Flags().Int("x", 0, "element x")
	addStepCmd.Flags().Int("y", 0, "element y")
	addStepCmd.Flags().Int("w", 0, "element width")
	addStepCmd.Flags().Int("h", 0, "element height")
	addStepCmd.Flags().String("caption", "", "caption text")
	addStepCmd.MarkFlagRequired("screenshot")

	generateMDCmd.Flags().String("title", "", "document title (default: \"<project> 操作流程文档\")")
	showCmd.Flags().String("title", "", "document title")

	for _, c := range []*cobra.Command{initCmd, addStepCmd, generateMDCmd, showCmd, listCmd, editCmd} {
		addProjectFlag(c)
		rootCmd.AddCommand(c)
	}
}
