package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/captionkit/counter"
	"github.com/randalmurphal/captionkit/counterfile"
)

var (
	flagSetMain  int
	flagSetCycle int
)

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Inspect and adjust a named store's counters",
}

var countersShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a store's counter values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		snap, err := e.files.Fetch(cmd.Context(), counter.NamedScope(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), snap.String())
		return nil
	},
}

var countersResetCmd = &cobra.Command{
	Use:   "reset NAME",
	Short: "Clear a store's counters",
	Long: "Clear the store's counters so the next render seeds them afresh " +
		"from the template's own literal.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()
		if err := e.files.Reset(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reset counters for %q\n", args[0])
		return nil
	},
}

var countersSetCmd = &cobra.Command{
	Use:   "set NAME",
	Short: "Set a store's counter values directly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.close()

		sc := counter.NamedScope(args[0])
		snap, err := e.files.Fetch(cmd.Context(), sc)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("main") {
			if flagSetMain < 0 {
				return fmt.Errorf("%s must be non-negative", counterfile.KeyMain)
			}
			snap = snap.WithMain(flagSetMain)
		}
		if cmd.Flags().Changed("cycle") {
			if flagSetCycle < 0 {
				return fmt.Errorf("%s must be non-negative", counterfile.KeyCycle)
			}
			snap = snap.WithCycle(flagSetCycle)
		}
		if err := e.files.Commit(cmd.Context(), sc, snap); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), snap.String())
		return nil
	},
}

func init() {
	countersSetCmd.Flags().IntVar(&flagSetMain, "main", 0, "main (episode) counter value")
	countersSetCmd.Flags().IntVar(&flagSetCycle, "cycle", 0, "cycle index value")

	countersCmd.AddCommand(countersShowCmd)
	countersCmd.AddCommand(countersResetCmd)
	countersCmd.AddCommand(countersSetCmd)
}
