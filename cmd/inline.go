package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytplay-cli/ytplay/filesystem"
	"github.com/ytplay-cli/ytplay/inline"
	"github.com/ytplay-cli/ytplay/key"
	"github.com/ytplay-cli/ytplay/player"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Search query")
	inlineCmd.Flags().StringP("track", "t", "", "Track selector")
	inlineCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	inlineCmd.Flags().BoolP("include-streams", "s", false, "Resolve and print direct stream URLs")
	inlineCmd.Flags().BoolP("play", "P", false, "Play the selected track")
	inlineCmd.Flags().StringP("output", "o", "", "Write output to a file")
	inlineCmd.Flags().IntP("limit", "l", 0, "Limit of search results")

	lo.Must0(inlineCmd.MarkFlagRequired("query"))
	lo.Must0(viper.BindPFlag(key.SearchLimit, inlineCmd.Flags().Lookup("limit")))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Search and play without prompts",
	Long: `Search once and print the results, for scripts.

Track selectors:
  first - first track in the list
  last - last track in the list
  [number] - track by index (starting from 0)
  @[substring]@ - first track whose title contains the substring

Without a selector every result is printed. --play requires a selector.`,
	Example: `  ytplay inline -q "lofi beats" -t first --play
  ytplay inline -q "daft punk" --json`,
	PreRun: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("play")) {
			lo.Must0(cmd.MarkFlagRequired("track"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		searcher, name, err := newSearcher()
		handleErr(err)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		trackPicker := mo.None[inline.TrackPicker]()
		if selector := lo.Must(cmd.Flags().GetString("track")); selector != "" {
			fn, err := inline.ParseTrackPicker(selector)
			handleErr(err)
			trackPicker = mo.Some(fn)
		}

		options := &inline.Options{
			Out:         writer,
			Searcher:    searcher,
			Provider:    name,
			Query:       lo.Must(cmd.Flags().GetString("query")),
			Limit:       viper.GetInt(key.SearchLimit),
			Json:        lo.Must(cmd.Flags().GetBool("json")),
			TrackPicker: trackPicker,
			Play:        lo.Must(cmd.Flags().GetBool("play")),
		}

		if lo.Must(cmd.Flags().GetBool("include-streams")) {
			options.Resolver = mo.Some[player.Resolver](&player.YtDlp{Format: viper.GetString(key.ResolverFormat)})
		}

		if options.Play {
			p, err := player.Default()
			handleErr(err)
			CheckDependencies(p.Decoder().Name())
			options.Player = p
		}

		handleErr(inline.Run(context.Background(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		// inline.Track wraps track.Track, so names carry their package.
		reflector.Namer = func(t reflect.Type) string {
			return filepath.Base(t.PkgPath()) + "." + t.Name()
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
