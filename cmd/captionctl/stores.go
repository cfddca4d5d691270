package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Manage named counter stores",
}

var storesCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create an empty named store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		if err := e.files.Create(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created store %q\n", args[0])
		return nil
	},
}

var storesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List named stores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		names, err := e.files.List()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var storesShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a store's document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		doc, err := e.files.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var storesDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a named store and its counters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		if err := e.files.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted store %q\n", args[0])
		return nil
	},
}

var storesValidateCmd = &cobra.Command{
	Use:   "validate [NAME]",
	Short: "Check store documents for drift",
	Long: "Validate one store document, or every document under the data " +
		"directory when no name is given. Reports missing identity, " +
		"negative counters, and unknown counter keys.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		if len(args) == 1 {
			if err := e.files.Validate(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "store %q is valid\n", args[0])
			return nil
		}
		if err := e.files.ValidateAll(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "all stores valid")
		return nil
	},
}

func init() {
	storesCmd.AddCommand(storesCreateCmd)
	storesCmd.AddCommand(storesListCmd)
	storesCmd.AddCommand(storesShowCmd)
	storesCmd.AddCommand(storesDeleteCmd)
	storesCmd.AddCommand(storesValidateCmd)
}
