package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"sb-go/internal/app"
	"sb-go/internal/config"
	"sb-go/internal/sb"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an SBApp bound to the current
// working directory. The caller must defer app.Close().
func newApp() (*app.SBApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config (run 'sb config init' first): %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	a, err := app.NewSBApp(cfg, cwd)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "sb",
	Short: "Safe local file backup tool",
	Long: `sb backs up, restores and deletes files in the current directory.
Backups are written beside the original as <name>.<unix-ts>.bak, with a
plain <stem>.bak fallback. Every command is appended to logfile.txt.

Run without arguments for the interactive prompt mode.`,
	RunE:         runInteractive,
	SilenceUsage: true,
}

// runInteractive is the prompt loop: file name, then command, until
// exit/quit or end of input. Prompts are only printed when stdin is a
// terminal so piped input stays clean.
func runInteractive(cmd *cobra.Command, args []string) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)

	for {
		filename, ok := prompt(scanner, "Please enter your file name: ", interactive)
		if !ok {
			break
		}
		if strings.EqualFold(filename, "exit") || strings.EqualFold(filename, "quit") {
			fmt.Println("Bye.")
			break
		}

		if _, err := sb.Validate(filename); err != nil {
			fmt.Fprintf(os.Stderr, "[error] %v\n", err)
			continue
		}

		command, ok := prompt(scanner, "Please enter your command (backup, restore, delete): ", interactive)
		if !ok {
			break
		}

		if err := runOne(command, filename); err != nil {
			fmt.Fprintf(os.Stderr, "[error] %v\n", err)
		}
		fmt.Println()
	}

	return scanner.Err()
}

// prompt reads one trimmed line, printing the prompt text first when
// interactive. ok is false at end of input.
func prompt(scanner *bufio.Scanner, text string, interactive bool) (line string, ok bool) {
	if interactive {
		fmt.Print(text)
	}
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

// runOne dispatches a single interactive command against a fresh app.
func runOne(command, filename string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	switch strings.ToLower(command) {
	case "backup":
		backupName, err := a.Backup(filename)
		if err != nil {
			return err
		}
		fmt.Printf("Your backup created: %s\n", backupName)
	case "restore":
		restored, err := a.Restore(filename)
		if err != nil {
			return err
		}
		fmt.Printf("Your file has been restored: %s\n", restored)
	case "delete":
		if err := a.Delete(filename); err != nil {
			return err
		}
		fmt.Printf("Deleted: %s\n", filename)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
	return nil
}

// backup command
var backupCmd = &cobra.Command{
	Use:   "backup FILENAME",
	Short: "Back up a file in the current directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		backupName, err := a.Backup(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Your backup created: %s\n", backupName)
		return nil
	},
}

// restore command
var restoreCmd = &cobra.Command{
	Use:   "restore FILENAME",
	Short: "Restore a file from its most recent backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		restored, err := a.Restore(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Your file has been restored: %s\n", restored)
		return nil
	},
}

// delete command
var deleteCmd = &cobra.Command{
	Use:   "delete FILENAME",
	Short: "Delete a file in the current directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Delete(args[0]); err != nil {
			return err
		}

		fmt.Printf("Deleted: %s\n", args[0])
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View recorded operation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ops, err := a.GetHistory(limit)
		if err != nil {
			return err
		}

		if len(ops) == 0 {
			fmt.Println("No operations recorded.")
			return nil
		}

		for _, op := range ops {
			fmt.Printf("#%d  %s  %-7s  %-20s  %s\n",
				op.ID,
				op.CreatedAt.Format("2006-01-02 15:04:05"),
				op.Command,
				op.Filename,
				op.Outcome,
			)
		}
		return nil
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		hostID := uuid.New().String()
		cfg := config.NewConfig(hostID, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Host ID: %s\n", hostID)
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Host ID:   %s\n", cfg.HostID)
		fmt.Printf("Base Dir:  %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:   %s\n", cfg.LogDir)
		fmt.Printf("Audit Log: %s\n", cfg.AuditLog)
		fmt.Printf("Database:  %s (%s)\n", cfg.Database.Type, cfg.Database.DataDir)
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// root commands
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of operations to show")
	rootCmd.AddCommand(configCmd)
}
