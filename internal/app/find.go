package app

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"fplthreats/internal/matcher"
)

// Find fuzzy-matches query against the catalog and prints the matching ids.
func (a *App) Find(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		fmt.Fprintln(a.Out, "no input provided")
		return nil
	}

	catalog, err := a.newFetcher().FetchCatalog(ctx)
	if err != nil {
		return err
	}

	matches := matcher.Find(catalog, query, matcher.Options{
		Threshold: a.Config.Matcher.Threshold,
		Limit:     a.Config.Matcher.Limit,
	})
	a.Logger.Debug().Str("query", query).Int("matches", len(matches)).Msg("name search finished")
	if len(matches) == 0 {
		fmt.Fprintln(a.Out, "no matches found above threshold")
		return nil
	}

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Player Name\tPlayer Code\tTeam Code\tMatch Score")
	for _, m := range matches {
		fmt.Fprintf(writer, "%s\t%d\t%d\t%d\n", m.Name, m.ID, m.TeamID, m.Score)
	}
	return writer.Flush()
}
