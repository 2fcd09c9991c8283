package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout accepted by the seed command.
type SeedFile struct {
	Dishes []SeedDish  `yaml:"dishes"`
	Tables []SeedTable `yaml:"tables"`
}

type SeedDish struct {
	ID          string `yaml:"id"`
	Category    string `yaml:"category"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Price       string `yaml:"price"`
	ImageURL    string `yaml:"image_url,omitempty"`
}

type SeedTable struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Capacity  int    `yaml:"capacity"`
	Available *bool  `yaml:"available,omitempty"`
}

// LoadSeedFile parses path, rejecting unknown keys.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&seed); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &seed, nil
}

func (d SeedDish) toDish() (*domain.Dish, error) {
	category, ok := domain.ParseCategory(d.Category)
	if !ok {
		return nil, fmt.Errorf("dish %q: unknown category %q", d.ID, d.Category)
	}
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return nil, fmt.Errorf("dish %q: invalid price %q", d.ID, d.Price)
	}
	return &domain.Dish{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       price,
		Category:    category,
		ImageURL:    d.ImageURL,
	}, nil
}

type SeedResult struct {
	DishesCreated int
	DishesUpdated int
	Tables        int
}

// Seed writes every dish and table of seed. Dishes with a known id are
// updated in place so running the same file twice is harmless.
func Seed(ctx context.Context, s *Services, seed *SeedFile) (SeedResult, error) {
	var result SeedResult

	for _, entry := range seed.Dishes {
		dish, err := entry.toDish()
		if err != nil {
			return result, err
		}

		if dish.ID != "" {
			_, err := s.Menu.Get(ctx, dish.Category, dish.ID)
			switch {
			case err == nil:
				if err := s.Menu.Update(ctx, operator, dish); err != nil {
					return result, fmt.Errorf("update dish %q: %w", dish.ID, err)
				}
				result.DishesUpdated++
				continue
			case !errors.Is(err, domain.ErrNotFound):
				return result, fmt.Errorf("read dish %q: %w", dish.ID, err)
			}
		}

		if err := s.Menu.Create(ctx, operator, dish); err != nil {
			return result, fmt.Errorf("create dish %q: %w", entry.Name, err)
		}
		result.DishesCreated++
	}

	for _, entry := range seed.Tables {
		table := &domain.Table{
			ID:        entry.ID,
			Name:      entry.Name,
			Capacity:  entry.Capacity,
			Available: entry.Available == nil || *entry.Available,
		}
		if err := s.Tables.Create(ctx, operator, table); err != nil {
			return result, fmt.Errorf("create table %q: %w", entry.Name, err)
		}
		result.Tables++
	}

	return result, nil
}

func (a *app) newSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load dishes and tables from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := LoadSeedFile(file)
			if err != nil {
				return err
			}
			result, err := Seed(cmd.Context(), a.services, seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dishes created: %d, updated: %d, tables: %d\n",
				result.DishesCreated, result.DishesUpdated, result.Tables)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "menu.yaml", "seed file")
	return cmd
}
