package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"property-listings/internal/listing"
)

var searchFlags struct {
	text     string
	status   string
	minPrice string
	maxPrice string
	sort     string
	limit    int
	offset   int
	json     bool
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search listings",
	Long: `Search listings with the same filters as the search page.

Text matches title, location and description (case sensitive).
Price bounds are inclusive; --sort accepts priceAscending or priceDescending.`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVarP(&searchFlags.text, "query", "q", "", "text to look for")
	f.StringVar(&searchFlags.status, "status", "", "available or sold")
	f.StringVar(&searchFlags.minPrice, "min-price", "", "inclusive lower price bound")
	f.StringVar(&searchFlags.maxPrice, "max-price", "", "inclusive upper price bound")
	f.StringVar(&searchFlags.sort, "sort", "", "priceAscending or priceDescending")
	f.IntVar(&searchFlags.limit, "limit", 0, "maximum rows (0 for all)")
	f.IntVar(&searchFlags.offset, "offset", 0, "rows to skip")
	f.BoolVar(&searchFlags.json, "json", false, "print JSON instead of a table")
}

func runSearch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	out, err := a.listings.Search(ctx, listing.SearchInput{
		Text:     searchFlags.text,
		Status:   searchFlags.status,
		MinPrice: searchFlags.minPrice,
		MaxPrice: searchFlags.maxPrice,
		Sort:     searchFlags.sort,
		Limit:    searchFlags.limit,
		Offset:   searchFlags.offset,
	})
	if err != nil {
		return err
	}

	if searchFlags.json {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	return writeTable(cmd.OutOrStdout(), out)
}

type jsonListing struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
}

func writeJSON(w io.Writer, out listing.SearchOutput) error {
	items := make([]jsonListing, 0, len(out.Listings))
	for _, l := range out.Listings {
		items = append(items, jsonListing{
			ID:          l.ID,
			UserID:      l.UserID,
			Title:       l.Title,
			Location:    l.Location,
			Description: l.Description,
			Price:       l.Price,
			Status:      string(l.Status),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Items []jsonListing `json:"items"`
		Total int           `json:"total"`
	}{items, out.Total})
}

func writeTable(w io.Writer, out listing.SearchOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tPRICE\tSTATUS")
	for _, l := range out.Listings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			l.ID, l.Title, l.Location, strconv.FormatFloat(l.Price, 'f', -1, 64), l.Status.Label())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d listings\n", len(out.Listings), out.Total)
	return err
}
