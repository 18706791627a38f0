// Package cmd implements the command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytplay-cli/ytplay/color"
	"github.com/ytplay-cli/ytplay/constant"
	"github.com/ytplay-cli/ytplay/icon"
	"github.com/ytplay-cli/ytplay/key"
	"github.com/ytplay-cli/ytplay/log"
	"github.com/ytplay-cli/ytplay/player"
	"github.com/ytplay-cli/ytplay/provider"
	"github.com/ytplay-cli/ytplay/style"
	"github.com/ytplay-cli/ytplay/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("provider", "p", "", "Search provider")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return provider.Names(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.SearchProvider, rootCmd.PersistentFlags().Lookup("provider")))

	rootCmd.PersistentFlags().StringP("decoder", "d", "", "External decoder used for playback")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("decoder", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return player.Decoders(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.PlayerDecoder, rootCmd.PersistentFlags().Lookup("decoder")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Search YouTube and play music in the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Search YouTube and play music in the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, args)
			return
		}

		runMini(cmd)
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
