// Package queries contains the read side of the catalog.
//
// Query handlers read straight from the database through GORM instead of
// loading aggregates, and return flat read models. Lists are paged: a Page
// holds the offset and the limit (at most MaxLimit rows), and a PagedResult
// reports the total number of matching rows next to the page itself.
//
// Example:
//
//	page, err := queries.NewPage(0, 50)
//	if err != nil {
//	    return err
//	}
//	seriesID := kernel.MustUUID("4f1c7d0e-9b7a-4b0e-8f5e-0a4b5c6d7e8f")
//	query := queries.NewListEntriesQuery(queries.EntryFilter{SeriesID: &seriesID}, page)
//
//	result, err := queries.NewListEntriesQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, e := range result.Data {
//	    fmt.Printf("%d. %s\n", e.Position, e.Name)
//	}
package queries
