package catalogfile

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"ecopoints/internal/domain/catalog"
	"ecopoints/internal/pkg/errs"

	"github.com/spf13/viper"
)

type productEntry struct {
	ID            int     `mapstructure:"id"`
	Name          string  `mapstructure:"name"`
	Description   string  `mapstructure:"description"`
	Points        int64   `mapstructure:"points"`
	OriginalPrice string  `mapstructure:"original_price"`
	Category      string  `mapstructure:"category"`
	Rating        float64 `mapstructure:"rating"`
	Image         string  `mapstructure:"image"`
}

type file struct {
	Products []productEntry `mapstructure:"products"`
}

// Load reads the product catalog from a YAML (or any viper-supported) file.
// An empty path or a missing file yields the built-in catalog.
func Load(path string) (*catalog.Catalog, error) {
	if path == "" {
		slog.Info("No catalog path configured, using built-in catalog")
		return catalog.Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Info("Catalog file not found, using built-in catalog", "path", path)
		return catalog.Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errs.Wrapf(err, "read catalog %s", path)
	}

	var f file
	if err := v.Unmarshal(&f); err != nil {
		return nil, errs.Wrapf(err, "decode catalog %s", path)
	}
	if len(f.Products) == 0 {
		return nil, errs.Newf("catalog %s has no products", path)
	}

	products := make([]catalog.Product, len(f.Products))
	for i, p := range f.Products {
		products[i] = catalog.Product{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Points:        p.Points,
			OriginalPrice: p.OriginalPrice,
			Category:      p.Category,
			Rating:        p.Rating,
			Image:         p.Image,
		}
	}

	c, err := catalog.New(products)
	if err != nil {
		return nil, errs.Wrapf(err, "validate catalog %s", path)
	}
	slog.Info("Catalog loaded", "path", path, "products", c.Len())
	return c, nil
}
