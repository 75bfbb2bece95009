package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fotmob/batch"
	"github.com/s0up4200/fotmob/fotmob"
)

// resource describes one API operation exposed on the command line
type resource struct {
	name  string
	arg   string
	short string
	fetch func(api fotmob.API) batch.FetchFunc
	check func(arg string) error
}

var resources = []resource{
	{
		name:  "league",
		arg:   "id",
		short: "Fetch league/competition data",
		fetch: func(api fotmob.API) batch.FetchFunc { return api.GetLeague },
	},
	{
		name:  "matches",
		arg:   "YYYYMMDD",
		short: "Fetch the matches played on a date",
		fetch: func(api fotmob.API) batch.FetchFunc { return api.GetMatches },
		check: checkDate,
	},
	{
		name:  "match",
		arg:   "matchId",
		short: "Fetch details of a single match",
		fetch: func(api fotmob.API) batch.FetchFunc { return api.GetMatchDetails },
	},
	{
		name:  "player",
		arg:   "id",
		short: "Fetch player data and statistics",
		fetch: func(api fotmob.API) batch.FetchFunc { return api.GetPlayer },
	},
	{
		name:  "team",
		arg:   "id",
		short: "Fetch team data and statistics",
		fetch: func(api fotmob.API) batch.FetchFunc { return api.GetTeam },
	},
}

func init() {
	for _, r := range resources {
		rootCmd.AddCommand(newFetchCmd(r))
	}
}

func newFetchCmd(r resource) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <%s>", r.name, r.arg),
		Short: r.short,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return err
			}
			if r.check != nil {
				return r.check(args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := r.fetch(client)(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printDocument(cmd.OutOrStdout(), doc)
		},
	}
}

// lookupResource finds a resource by command name
func lookupResource(name string) (resource, bool) {
	for _, r := range resources {
		if r.name == name {
			return r, true
		}
	}
	return resource{}, false
}

func resourceNames() []string {
	names := make([]string, 0, len(resources))
	for _, r := range resources {
		names = append(names, r.name)
	}
	sort.Strings(names)
	return names
}

func checkDate(arg string) error {
	if _, err := time.Parse("20060102", arg); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYYMMDD, e.g. 20221030", arg)
	}
	return nil
}

func unknownResourceError(name string) error {
	return fmt.Errorf("unknown resource %q (must be one of %s)", name, strings.Join(resourceNames(), ", "))
}
