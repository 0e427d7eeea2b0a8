package main

import (
	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/shotdoc/internal/cli"
	"github.com/rogersnm/shotdoc/internal/webdoc"
	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	baseDir  string
	logLevel string
	env      *cli.Env
)

var rootCmd = &cobra.Command{
	Use:     "webdoc",
	Short:   "Record explored web pages and render them as a README",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		env, err = cli.Setup(baseDir, logLevel, cmd.ErrOrStderr())
		return err
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "directory that holds project folders (default: working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	mtp.WithDescribe(rootCmd, &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"init": {
				Examples: []mtp.Example{
					{Description: "Create the project folders", Command: "webdoc init --project shop"},
				},
			},
			"add": {
				Examples: []mtp.Example{
					{
						Description: "Record a page with one link",
						Command:     `webdoc add --project shop --page_id home --title "Home" --description "Landing page" --screenshot screenshots/home.png --links '[{"text":"Login","uid":"1","target_id":"login"}]'`,
					},
				},
			},
			"generate": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Path of the generated README.md",
				},
				Examples: []mtp.Example{
					{Description: "Write README.md for a project", Command: "webdoc generate --project shop"},
				},
			},
			"show": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "README content rendered for the terminal",
				},
			},
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of recorded pages with id, title, screenshot and link count",
				},
			},
		},
	})
}

// addProjectFlag registers the required --project flag on cmd.
func addProjectFlag(cmd *cobra.Command) {
	cmd.Flags().String("project", "", "project name")
	cmd.MarkFlagRequired("project")
}

func openCreator(cmd *cobra.Command) (*webdoc.Creator, error) {
	project, _ := cmd.Flags().GetString("project")
	return webdoc.New(env.BaseDir, project, env.Logger)
}
