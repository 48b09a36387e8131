package commands

import (
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/melops-hh/garmin-obsidian-sync/pkg/commands/options"
	"github.com/melops-hh/garmin-obsidian-sync/pkg/garmin"
	"github.com/melops-hh/garmin-obsidian-sync/pkg/runner/sync"
	"github.com/melops-hh/garmin-obsidian-sync/pkg/store"
	"github.com/melops-hh/garmin-obsidian-sync/pkg/timeutil"
)

func New() *cobra.Command {
	oo := &options.OutputOptions{}
	fo := &options.FetchOptions{}

	cmd := &cobra.Command{
		Use:   "garsync [date]",
		Short: base.Wrap80("Sync Garmin sleep and exercise summaries into an Obsidian daily note."),
		Long: base.Wrap80("Fetches one day's sleep and activity summaries from Garmin Connect " +
			"and prints them and/or inserts them into the Obsidian daily note under the " +
			"morning-log and exercise headers. The date is \"today\", \"yesterday\", or DD-MM-YYYY."),
		Example: `
garsync -p
garsync yesterday -x
garsync 01-05-2024 -p -x
garsync yesterday -x --offline
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !oo.Print && !oo.Export {
				return errors.New("nothing to do: set --print and/or --export")
			}

			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			cache, err := store.OpenCache(cfg.CachePath())
			if err != nil {
				return err
			}

			var svc garmin.Service
			if fo.Offline {
				svc = store.NewOfflineService(cache)
			} else {
				svc = store.NewCachingService(garmin.NewClient(cfg.Email(), cfg.Password()), cache)
			}

			token := timeutil.TokenToday
			if len(args) > 0 {
				token = args[0]
			}

			s := sync.Sync{
				DateToken: token,
				Print:     oo.Print,
				Export:    oo.Export,
				NotesRoot: cfg.NotesRoot(),
				Service:   svc,
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddOutputArgs(cmd, oo)
	options.AddFetchArgs(cmd, fo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addVersion(topLevel)
	addCompletions(topLevel)
}
