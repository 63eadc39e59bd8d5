// Command abacus is the interactive calculator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abacist/abacus/pkg/abacus"
)

func main() {
	var (
		dbPath   string
		noStore  bool
		histSize int
	)

	newSession := func() *abacus.Session {
		opts := []abacus.Option{}
		if !noStore {
			opts = append(opts, abacus.WithSQLiteStore(dbPath))
		}
		if histSize > 0 {
			opts = append(opts, abacus.WithHistoryLimit(histSize))
		}
		return abacus.New(opts...)
	}

	rootCmd := &cobra.Command{
		Use:   "abacus",
		Short: "Interactive calculator with named values and history",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			defer s.Close()
			runREPL(s)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "abacus.db", "SQLite database path")
	rootCmd.PersistentFlags().BoolVar(&noStore, "no-store", false, "Disable persistence")
	rootCmd.PersistentFlags().IntVar(&histSize, "history-limit", 0, "Override the history bound")

	evalCmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate one expression and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			defer s.Close()
			for _, arg := range args {
				if err := replay(s, arg); err != nil {
					return err
				}
			}
			s.Calculate()
			if s.InError() {
				return fmt.Errorf("cannot evaluate expression")
			}
			fmt.Println(s.Display())
			return nil
		},
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded calculations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			defer s.Close()
			for i, e := range s.History() {
				fmt.Printf("%3d  %s = %s\n", i, e.Expression(), e.Result)
			}
			return nil
		},
	}

	varsCmd := &cobra.Command{
		Use:   "vars",
		Short: "List saved variables, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			defer s.Close()
			for _, v := range s.Variables() {
				fmt.Println("  " + renderVariable(v))
			}
			return nil
		},
	}
	varsCmd.AddCommand(&cobra.Command{
		Use:   "del <name>",
		Short: "Delete a saved variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession()
			defer s.Close()
			return s.DeleteVariable(args[0])
		},
	})

	rootCmd.AddCommand(evalCmd, historyCmd, varsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
