// Command extmarket is a small terminal browser for the extension
// marketplace, exercising every operation the SDK exposes.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	client "github.com/extmarket/client-go"
)

var (
	baseURL    string
	platform   string
	appVersion string
	timeout    time.Duration
	asJSON     bool

	rootCmd = &cobra.Command{
		Use:           "extmarket",
		Short:         "Browse the extension marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the marketplace host")
	rootCmd.PersistentFlags().StringVar(&platform, "platform", "", "value for the X-Platform header")
	rootCmd.PersistentFlags().StringVar(&appVersion, "app-version", "", "value for the X-App-Version header")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "per-request timeout")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print raw JSON instead of tables")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(downloadURLCmd)
	rootCmd.AddCommand(healthCmd)
}

func newClient() (*client.Client, error) {
	opts := []client.Option{client.WithHTTPTimeout(timeout)}
	if baseURL != "" {
		opts = append(opts, client.WithBaseURL(baseURL))
	}
	if platform != "" {
		opts = append(opts, client.WithPlatform(platform))
	}
	if appVersion != "" {
		opts = append(opts, client.WithAppVersion(appVersion))
	}
	return client.New(opts...)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// --------------------------------------------------------------------
// list
// --------------------------------------------------------------------

var (
	listPage      int
	listLimit     int
	listCategory  string
	listSearch    string
	listTags      []string
	listSort      string
	listPublisher string

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List or search extensions",
		RunE:  runList,
	}
)

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "results per page")
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category slug")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "free-text search query")
	listCmd.Flags().StringSliceVar(&listTags, "tag", nil, "filter by tag (repeatable)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort order: downloads, rating, newest, updated")
	listCmd.Flags().StringVar(&listPublisher, "publisher", "", "filter by publisher slug")
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	params := &client.ListExtensionsParams{
		Page:  client.Int(listPage),
		Limit: client.Int(listLimit),
		Tags:  listTags,
		Sort:  client.Sort(listSort),
	}
	if listCategory != "" {
		params.Category = client.String(listCategory)
	}
	if listSearch != "" {
		params.Search = client.String(listSearch)
	}
	if listPublisher != "" {
		params.Publisher = client.String(listPublisher)
	}
	res, err := c.ListExtensions(cmd.Context(), params)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(res)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tNAME\tPUBLISHER\tDOWNLOADS\tRATING")
	for _, ext := range res.Extensions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f\n",
			ext.Slug, ext.Name, ext.Publisher.Name, ext.Downloads, ext.Rating)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("page %d of %d (%d total)\n",
		res.Pagination.Page, res.Pagination.TotalPages, res.Pagination.Total)
	return nil
}

// --------------------------------------------------------------------
// show
// --------------------------------------------------------------------

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show the full detail record for an extension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		ext, err := c.GetExtension(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(ext)
		}
		fmt.Printf("%s (%s)\n", ext.Name, ext.Slug)
		fmt.Printf("  publisher: %s\n", ext.Publisher.Name)
		if ext.Description != "" {
			fmt.Printf("  %s\n", ext.Description)
		}
		if len(ext.Tags) > 0 {
			fmt.Printf("  tags: %s\n", strings.Join(ext.Tags, ", "))
		}
		fmt.Printf("  downloads: %d  rating: %.1f (%d)\n", ext.Downloads, ext.Rating, ext.RatingCount)
		if ext.LatestVersion != nil {
			fmt.Printf("  latest: %s (published %s)\n",
				ext.LatestVersion.Version, ext.LatestVersion.PublishedAt.Format(time.DateOnly))
		}
		return nil
	},
}

// --------------------------------------------------------------------
// categories / versions / reviews
// --------------------------------------------------------------------

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with extension counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		cats, err := c.ListCategories(cmd.Context())
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cats)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tNAME\tEXTENSIONS")
		for _, cat := range cats {
			fmt.Fprintf(w, "%s\t%s\t%d\n", cat.Slug, cat.Name, cat.ExtensionCount)
		}
		return w.Flush()
	},
}

var versionsCmd = &cobra.Command{
	Use:   "versions <slug>",
	Short: "Show the version history for an extension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		versions, err := c.ListVersions(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(versions)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tPUBLISHED\tMIN APP VERSION")
		for _, v := range versions {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				v.Version, v.PublishedAt.Format(time.DateOnly), v.MinAppVersion)
		}
		return w.Flush()
	},
}

var (
	reviewsPage  int
	reviewsLimit int

	reviewsCmd = &cobra.Command{
		Use:   "reviews <slug>",
		Short: "List reviews for an extension",
		Args:  cobra.ExactArgs(1),
		RunE:  runReviews,
	}
)

func init() {
	reviewsCmd.Flags().IntVar(&reviewsPage, "page", 1, "page number")
	reviewsCmd.Flags().IntVar(&reviewsLimit, "limit", 20, "results per page")
}

func runReviews(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	res, err := c.ListReviews(cmd.Context(), args[0], &client.ListReviewsParams{
		Page:  client.Int(reviewsPage),
		Limit: client.Int(reviewsLimit),
	})
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(res)
	}
	for _, r := range res.Reviews {
		fmt.Printf("%s  %d/5  %s\n", r.CreatedAt.Format(time.DateOnly), r.Rating, r.Author)
		if r.Title != "" {
			fmt.Printf("  %s\n", r.Title)
		}
		if r.Body != "" {
			fmt.Printf("  %s\n", r.Body)
		}
	}
	fmt.Printf("page %d of %d (%d total)\n",
		res.Pagination.Page, res.Pagination.TotalPages, res.Pagination.Total)
	return nil
}

// --------------------------------------------------------------------
// download-url / health
// --------------------------------------------------------------------

var (
	downloadVersion string

	downloadURLCmd = &cobra.Command{
		Use:   "download-url <slug>",
		Short: "Fetch a signed download URL",
		Args:  cobra.ExactArgs(1),
		RunE:  runDownloadURL,
	}
)

func init() {
	downloadURLCmd.Flags().StringVar(&downloadVersion, "version", "", "specific version (default: latest)")
}

func runDownloadURL(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	dl, err := c.GetDownloadURL(cmd.Context(), args[0], downloadVersion)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(dl)
	}
	fmt.Println(dl.URL)
	return nil
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check marketplace service status",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		h, err := c.Health(ctx)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(h)
		}
		fmt.Printf("status: %s\n", h.Status)
		if h.Version != "" {
			fmt.Printf("version: %s\n", h.Version)
		}
		return nil
	},
}
