// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nuclide-engine/internal/knowledge"
	"github.com/pdiddy/nuclide-engine/pkg/types"
)

var knowledgeCmd = &cobra.Command{
	Use:   "knowledge",
	Short: "Manage the knowledge base (store, retrieve, export)",
	Long: `Knowledge manages a local SQLite knowledge base of nuclide facts and
cached calculation results. Use subcommands to ingest fact files, query
them, or export.`,
}

func init() {
	knowledgeCmd.PersistentFlags().String("knowledge-dir", "", "knowledge base directory (default: knowledge)")
	knowledgeCmd.PersistentFlags().Int("max-results", 0, "default result limit for queries")
	rootCmd.AddCommand(knowledgeCmd)
}

// knowledgeConfigFromFlags layers flag overrides over the config file.
func knowledgeConfigFromFlags(cmd *cobra.Command) types.KnowledgeBaseConfig {
	cfg := knowledgeConfig()
	if dir, _ := cmd.Flags().GetString("knowledge-dir"); dir != "" {
		cfg.KnowledgeDir = dir
	}
	if maxResults, _ := cmd.Flags().GetInt("max-results"); maxResults > 0 {
		cfg.MaxResults = maxResults
	}
	return cfg
}

// --- store subcommand ---

var knowledgeStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Ingest fact YAML files into the knowledge base",
	Long: `Store reads fact files from knowledge/facts/, ingests them into a
SQLite database with FTS5 indexing, and reports per-file status.
Unchanged files are skipped on subsequent runs.`,
	RunE: runKnowledgeStore,
}

func init() {
	knowledgeCmd.AddCommand(knowledgeStoreCmd)
}

func runKnowledgeStore(cmd *cobra.Command, args []string) error {
	store, err := knowledge.NewStore(knowledgeConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d fact file(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- retrieve subcommand ---

var knowledgeRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Query the knowledge base with full-text search and filters",
	Long: `Retrieve searches the knowledge base using FTS5 full-text search,
structured filters (kind, tag, nuclide), or a combination of both.

Use --show with a fact ID to print one fact in full.`,
	RunE: runKnowledgeRetrieve,
}

func init() {
	knowledgeRetrieveCmd.Flags().String("query", "", "full-text search query")
	knowledgeRetrieveCmd.Flags().String("kind", "", "filter by fact kind: property, calculation, or reference")
	knowledgeRetrieveCmd.Flags().String("tag", "", "filter by tag")
	knowledgeRetrieveCmd.Flags().String("nuclide", "", "filter by nuclide identifier (\"U-235\")")
	knowledgeRetrieveCmd.Flags().Int("limit", 0, "maximum number of results")
	knowledgeRetrieveCmd.Flags().String("show", "", "print one fact in full by ID")
	knowledgeRetrieveCmd.Flags().Bool("json", false, "emit JSON instead of text")
	knowledgeCmd.AddCommand(knowledgeRetrieveCmd)
}

func runKnowledgeRetrieve(cmd *cobra.Command, args []string) error {
	showID, _ := cmd.Flags().GetString("show")

	store, err := knowledge.NewStore(knowledgeConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	// Show mode: print one fact in full.
	if showID != "" {
		result, err := store.Show(context.Background(), showID)
		if err != nil {
			return err
		}
		return printJSON(result)
	}

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --kind, --tag, or --nuclide")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRetrieveOutput(results, jsonOutput)
}

func formatRetrieveOutput(results []knowledge.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-12s  %-8s  %-50s  %-10s  %s\n",
		"Rank", "Kind", "Nuclide", "Content", "Source", "Conf")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, r := range results {
		content := r.Content
		if len(content) > 50 {
			content = content[:47] + "..."
		}
		source := r.Source
		if len(source) > 10 {
			source = source[:7] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-12s  %-8s  %-50s  %-10s  %.2f\n",
			i+1, r.Kind, r.Nuclide, content, source, r.Confidence)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var knowledgeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the knowledge base to YAML or JSON",
	Long: `Export writes the full knowledge base (or a filtered subset) to
knowledge/index/export.yaml or export.json. Supports the same filter
flags as retrieve for partial exports.`,
	RunE: runKnowledgeExport,
}

func init() {
	knowledgeExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	knowledgeExportCmd.Flags().String("kind", "", "filter by fact kind")
	knowledgeExportCmd.Flags().String("tag", "", "filter by tag")
	knowledgeExportCmd.Flags().String("nuclide", "", "filter by nuclide identifier")
	knowledgeCmd.AddCommand(knowledgeExportCmd)
}

func runKnowledgeExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := knowledge.NewStore(knowledgeConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to knowledge/index/export.yaml")
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to knowledge/index/export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func queryOptsFromFlags(cmd *cobra.Command, args []string) knowledge.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	kind, _ := cmd.Flags().GetString("kind")
	tag, _ := cmd.Flags().GetString("tag")
	nuclide, _ := cmd.Flags().GetString("nuclide")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := knowledge.QueryOptions{
		Query:      queryText,
		Kind:       types.FactKind(kind),
		Nuclide:    nuclide,
		MaxResults: limit,
	}
	if tag != "" {
		opts.Tags = []string{tag}
	}
	return opts
}
