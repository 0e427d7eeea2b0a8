package main

import (
	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/shotdoc/internal/cli"
	"github.com/rogersnm/shotdoc/internal/opdoc"
	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	baseDir  string
	logLevel string
	env      *cli.Env
)

var rootCmd = &cobra.Command{
	Use:     "opdoc",
	Short:   "Record UI operation steps with highlighted screenshots",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		env, err = cli.Setup(baseDir, logLevel, cmd.ErrOrStderr())
		return err
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "directory that holds .temp/<project> (default: working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	mtp.WithDescribe(rootCmd, &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"init": {
				Examples: []mtp.Example{
					{Description: "Create the project folders", Command: "opdoc init --project login-flow"},
				},
			},
			"add_step": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Path of the annotated screenshot",
				},
				Examples: []mtp.Example{
					{Description: "Record a click on the login button", Command: `opdoc add_step --project login-flow --screenshot shot.png --x 120 --y 40 --w 80 --h 32 --caption "Click Login"`},
					{Description: "Record a step without a highlight", Command: `opdoc add_step --project login-flow --screenshot shot.png --caption "Page loads"`},
				},
			},
			"generate_md": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Path of the generated OPERATIONS.md, or a notice when there are no steps",
				},
				Examples: []mtp.Example{
					{Description: "Write OPERATIONS.md with a custom title", Command: `opdoc generate_md --project login-flow --title "Logging in"`},
				},
			},
			"show": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Operations guide rendered for the terminal",
				},
			},
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of steps with caption, rectangle, image and image size",
				},
			},
		},
	})
}

func addProjectFlag(cmd *cobra.Command) {
	cmd.Flags().String("project", "", "project name")
	cmd.MarkFlagRequired("project")
}

func openCreator(cmd *cobra.Command) (*opdoc.Creator, error) {
	project, _ := cmd.Flags().GetString("project")
	opts, err := env.AnnotateOptions()
	if err != nil {
		return nil, err
	}
	return opdoc.New(env.BaseDir, project, env.Logger, opts...)
}
