package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SebastianNeiswanger/mvs-photo-form/internal/roster"
)

var backupDirFlag string

var backupCmd = &cobra.Command{
	Use:   "backup <roster.csv>",
	Short: "Write a timestamped backup of a roster",
	Long: `Copy a roster to a timestamped backup file without modifying it.

The copy lands next to the original (or in --dir) and is named
{name}_backup_{YYYYMMDD_HHMMSS}{ext}. Saves make the same backup
automatically when backups are enabled; this command is for taking one by
hand before a bulk operation.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := backupDirFlag
		if dir == "" {
			dir = cfg.BackupDir()
		}
		dst, err := roster.Backup(args[0], dir)
		if err != nil {
			if jsonOutput {
				outputJSONError(err, "backup_failed")
			}
			FatalClassified(err)
		}
		if jsonOutput {
			outputJSON(map[string]string{"backup": dst})
			return
		}
		fmt.Printf("Backup written: %s\n", dst)
	},
}

func init() {
	backupCmd.Flags().StringVar(&backupDirFlag, "dir", "", "Directory for the backup (default: next to the roster)")
	rootCmd.AddCommand(backupCmd)
}
