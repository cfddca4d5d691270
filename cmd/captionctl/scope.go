package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scopeCmd = &cobra.Command{
	Use:   "scope",
	Short: "Manage the user's active store",
	Long: "While a store is active for a user, renders read and write that " +
		"store's durable counters instead of the user's local ones.",
}

var scopeUseCmd = &cobra.Command{
	Use:   "use NAME",
	Short: "Activate a named store for the user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()

		exists, err := e.files.Exists(args[0])
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("store %q does not exist; create it first", args[0])
		}
		e.resolver.Use(flagUser, args[0])
		if err := e.resolver.Save(e.scopePath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "user %d now renders into store %q\n", flagUser, args[0])
		return nil
	},
}

var scopeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Return the user to local counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		e.resolver.Clear(flagUser)
		if err := e.resolver.Save(e.scopePath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "user %d now renders into local counters\n", flagUser)
		return nil
	},
}

var scopeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the user's resolved scope",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		fmt.Fprintln(cmd.OutOrStdout(), e.resolver.Resolve(flagUser))
		return nil
	},
}

func init() {
	scopeCmd.AddCommand(scopeUseCmd)
	scopeCmd.AddCommand(scopeClearCmd)
	scopeCmd.AddCommand(scopeShowCmd)
}
