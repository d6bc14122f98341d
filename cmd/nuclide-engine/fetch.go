// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nuclide-engine/internal/iaea"
	"github.com/pdiddy/nuclide-engine/internal/knowledge"
	"github.com/pdiddy/nuclide-engine/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [name | Z A]",
	Short: "Fetch evaluated nuclear data from the IAEA NDS API",
	Long: `Fetch queries the IAEA Nuclear Data Section Livechart API for one
nuclide and prints the parsed records. Supported fields: levels,
decay_rads, gammas, ground_states.

With --record the raw response is cached in the knowledge base as a
reference fact.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("field", iaea.FieldGround, "data field to request")
	fetchCmd.Flags().Bool("record", false, "cache the response in the knowledge base")
	fetchCmd.Flags().Bool("json", false, "emit JSON instead of text")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	table := loadTable()
	n, err := resolveNuclide(table, args)
	if err != nil {
		return err
	}
	field, _ := cmd.Flags().GetString("field")

	cfg := fetchConfig()
	client := &iaea.Client{
		HTTP: &http.Client{Timeout: cfg.Timeout},
		Cfg:  cfg,
	}

	rec, err := client.Fetch(cmd.Context(), n, field)
	if err != nil {
		return err
	}

	if record, _ := cmd.Flags().GetBool("record"); record {
		if err := recordFetch(cmd.Context(), n, rec); err != nil {
			return err
		}
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(rec)
	}
	printFetchRecord(rec)
	return nil
}

func fetchConfig() types.FetchConfig {
	cfg := types.FetchConfig{
		MaxRetries: viper.GetInt("fetch.max_retries"),
	}
	cfg.Timeout = viper.GetDuration("fetch.timeout")
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	cfg.UserAgent = viper.GetString("fetch.user_agent")
	if cfg.UserAgent == "" {
		cfg.UserAgent = "nuclide-engine/" + version
	}
	return cfg
}

func recordFetch(ctx context.Context, n types.Nuclide, rec *iaea.Record) error {
	store, err := knowledge.NewStore(knowledgeConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	id := fmt.Sprintf("nds-%s-%s", strings.ToLower(n.String()), rec.Field)
	return store.RecordReference(ctx, n, id, rec, "iaea-nds", []string{"nds", rec.Field})
}

func printFetchRecord(rec *iaea.Record) {
	fmt.Printf("%s (%s), field %s\n", rec.Nuclide, rec.NuclideID, rec.Field)
	if len(rec.Headers) == 0 {
		fmt.Println(rec.Raw)
		return
	}
	fmt.Println(strings.Join(rec.Headers, ", "))
	for _, row := range rec.Rows {
		fmt.Println(strings.Join(row, ", "))
	}
	fmt.Printf("%d rows\n", len(rec.Rows))
}
