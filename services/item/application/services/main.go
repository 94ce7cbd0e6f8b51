package services

import (
	"github.com/youbeemuhwan/commercial/pkg/app"
	"github.com/youbeemuhwan/commercial/services/item/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Item: NewItemService(Repositories{
			Tx:               a.Db,
			Items:            postgres.NewItemRepository(a.Db),
			Thumbnails:       postgres.NewThumbnailImageRepository(a.Db),
			Details:          postgres.NewDetailImageRepository(a.Db),
			Categories:       postgres.NewCategoryRepository(a.Db),
			DetailCategories: postgres.NewDetailCategoryRepository(a.Db),
			Colors:           postgres.NewColorRepository(a.Db),
			Sizes:            postgres.NewSizeRepository(a.Db),
		}, a.Storage),
	}
}
