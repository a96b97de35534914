package app

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"fplthreats/internal/idlist"
	"fplthreats/internal/storage"
)

// SyncLists copies the held and unwanted id files into PostgreSQL.
func (a *App) SyncLists(ctx context.Context, opts SyncListsOptions) error {
	held, unwanted, err := idlist.NewFileSource(a.Config.Lists.HeldFile, a.Config.Lists.UnwantedFile, a.Logger).Lists()
	if err != nil {
		return err
	}
	parsed := map[string][]int{
		storage.ListHeld:     held,
		storage.ListUnwanted: unwanted,
	}
	a.Logger.Info().Int("held", len(held)).Int("unwanted", len(unwanted)).Msg("parsed id lists")

	if opts.DryRun {
		a.Logger.Warn().Msg("lists sync dry-run: nothing written")
		return nil
	}

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("database.dsn not configured; cannot sync lists")
	}
	defer closeStore()

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	for _, name := range []string{storage.ListHeld, storage.ListUnwanted} {
		if err := store.ReplaceList(ctx, name, parsed[name]); err != nil {
			return err
		}
	}

	fmt.Fprintf(a.Out, "synced %d held and %d unwanted ids\n", len(parsed[storage.ListHeld]), len(parsed[storage.ListUnwanted]))
	return nil
}

// ShowLists prints the id lists stored in PostgreSQL.
func (a *App) ShowLists(ctx context.Context, opts ShowListsOptions) error {
	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("database not configured; cannot show lists")
	}
	defer closeStore()

	entries, err := store.ListEntries(ctx)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "List\tPlayer ID\tAdded (UTC)")
	shown := 0
	for _, entry := range entries {
		if opts.List != "" && entry.ListName != opts.List {
			continue
		}
		fmt.Fprintf(writer, "%s\t%d\t%s\n", entry.ListName, entry.PlayerID, entry.CreatedAt.UTC().Format(time.RFC3339))
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(a.Out, "no list entries found")
		return nil
	}
	return writer.Flush()
}
