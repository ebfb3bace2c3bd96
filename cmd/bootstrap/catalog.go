package bootstrap

import (
	"ecopoints/internal/domain/catalog"
	"ecopoints/internal/infra/catalogfile"
	"ecopoints/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalog,
	),
)

func NewCatalog(cfg config.Config) (*catalog.Catalog, error) {
	return catalogfile.Load(cfg.Catalog.Path)
}
