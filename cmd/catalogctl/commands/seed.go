package commands

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/youbeemuhwan/commercial/services/item/domain/models"
	"github.com/youbeemuhwan/commercial/services/item/infrastructure/persistence/postgres"
)

//go:embed seed.toml
var defaultSeed []byte

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert reference data",
	Long: `Upsert categories, detail categories, colors and sizes in one transaction.

Without --file the built-in reference set is used.

Examples:
  catalogctl seed
  catalogctl seed --file ./reference.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := defaultSeed
		if seedFile != "" {
			b, err := os.ReadFile(seedFile)
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}
			raw = b
		}

		data, err := parseSeed(raw)
		if err != nil {
			return err
		}

		d, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer d.Close() //nolint:errcheck

		if err := postgres.NewReferenceSeeder(d).Seed(cmd.Context(), data); err != nil {
			return err
		}
		log.Info("reference data seeded",
			"categories", len(data.Categories),
			"detail_categories", len(data.DetailCategories),
			"colors", len(data.Colors),
			"sizes", len(data.Sizes),
		)
		return nil
	},
}

type seedDocument struct {
	Categories []struct {
		ID   int64  `toml:"id"`
		Name string `toml:"name"`
	} `toml:"category"`
	DetailCategories []struct {
		ID         int64  `toml:"id"`
		CategoryID int64  `toml:"category_id"`
		Name       string `toml:"name"`
	} `toml:"detail_category"`
	Colors []struct {
		ID   int64  `toml:"id"`
		Name string `toml:"name"`
	} `toml:"color"`
	Sizes []struct {
		ID   int64  `toml:"id"`
		Name string `toml:"name"`
	} `toml:"size"`
}

// parseSeed decodes a seed document. Every detail category must name a
// category defined in the same document.
func parseSeed(raw []byte) (postgres.ReferenceData, error) {
	var doc seedDocument
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return postgres.ReferenceData{}, fmt.Errorf("parse seed: %w", err)
	}

	var data postgres.ReferenceData
	categories := make(map[int64]bool, len(doc.Categories))
	for _, c := range doc.Categories {
		if c.ID <= 0 || c.Name == "" {
			return data, fmt.Errorf("seed: category needs a positive id and a name (got %d %q)", c.ID, c.Name)
		}
		categories[c.ID] = true
		data.Categories = append(data.Categories, models.Category{ID: c.ID, Name: c.Name})
	}
	for _, dc := range doc.DetailCategories {
		if dc.ID <= 0 || dc.Name == "" {
			return data, fmt.Errorf("seed: detail category needs a positive id and a name (got %d %q)", dc.ID, dc.Name)
		}
		if !categories[dc.CategoryID] {
			return data, fmt.Errorf("seed: detail category %d references unknown category %d", dc.ID, dc.CategoryID)
		}
		data.DetailCategories = append(data.DetailCategories, models.DetailCategory{ID: dc.ID, CategoryID: dc.CategoryID, Name: dc.Name})
	}
	for _, c := range doc.Colors {
		if c.ID <= 0 || c.Name == "" {
			return data, fmt.Errorf("seed: color needs a positive id and a name (got %d %q)", c.ID, c.Name)
		}
		data.Colors = append(data.Colors, models.Color{ID: c.ID, Name: c.Name})
	}
	for _, s := range doc.Sizes {
		if s.ID <= 0 || s.Name == "" {
			return data, fmt.Errorf("seed: size needs a positive id and a name (got %d %q)", s.ID, s.Name)
		}
		data.Sizes = append(data.Sizes, models.Size{ID: s.ID, Name: s.Name})
	}
	return data, nil
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "TOML seed file (defaults to the built-in set)")
	rootCmd.AddCommand(seedCmd)
}
