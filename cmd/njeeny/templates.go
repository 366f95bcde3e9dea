package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"njeeny/internal/app"
	"njeeny/internal/exitcodes"
	"njeeny/internal/util/hashx"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage the template database",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates stored in templates.sqlite_path",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		list, err := app.ListTemplates(e.paths)
		if err != nil {
			return exitcodes.WrapError(exitcodes.TemplateError, "templates list", err)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tCHECKSUM\tUPDATED")
		for _, t := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, hashx.Short([]byte(t.Body)), t.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		return tw.Flush()
	},
}

var templatesImportCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Copy <name>.tpl files from dir (default: builtin set) into the template database",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return exitcodes.InvalidArgsErrorf("import takes at most one directory, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}

		changed, err := app.ImportTemplates(e.paths, dir)
		if err != nil {
			return exitcodes.WrapError(exitcodes.TemplateError, "templates import", err)
		}
		if len(changed) == 0 {
			e.out.Success("templates already up to date")
			return nil
		}
		e.out.Success(fmt.Sprintf("imported %d: %s", len(changed), strings.Join(changed, ", ")))
		return nil
	},
}

func init() {
	templatesCmd.AddCommand(templatesListCmd, templatesImportCmd)
}
