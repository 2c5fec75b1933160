package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get and set configuration values",
	Long: `Manage settings stored in .mvsform/config.yaml.

Known keys:
  backups.enabled  back the file up before every save (default true)
  backups.dir      where backups go ("" = next to the roster)
  ui.autosave      save dirty forms when navigating in the editor (default true)
  ui.theme         form theme: ayu, charm, dracula, base16, catppuccin

Environment variables override the file: MVSFORM_BACKUPS_ENABLED=false.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		val, ok := cfg.Get(args[0])
		if !ok {
			FatalErrorWithHint(fmt.Sprintf("unknown config key %q", args[0]),
				"Run 'mvsform config list' to see known keys")
		}
		if jsonOutput {
			outputJSON(map[string]string{args[0]: val})
			return
		}
		fmt.Println(val)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cfg.Set(args[0], args[1]); err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every configuration value",
	Run: func(cmd *cobra.Command, args []string) {
		all := cfg.All()
		if jsonOutput {
			outputJSON(all)
			return
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s = %s\n", k, all[k])
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
