package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/InventarioQR-api/internal/application/dto"
	"github.com/jhoicas/InventarioQR-api/internal/application/inventory"
	"github.com/jhoicas/InventarioQR-api/internal/domain"
	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
	"github.com/jhoicas/InventarioQR-api/internal/domain/repository"
)

// locationNameFallback sentinela para referencias de ubicación que no resuelven.
const locationNameFallback = "N/A"

// ItemUseCase casos de uso CRUD del catálogo de artículos. La cantidad no se
// edita aquí: solo cambia a través del motor de movimientos de stock.
type ItemUseCase struct {
	repo         repository.ItemRepository
	locationRepo repository.LocationRepository
	txRunner     inventory.TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, locationRepo repository.LocationRepository, txRunner inventory.TxRunner) *ItemUseCase {
	return &ItemUseCase{repo: repo, locationRepo: locationRepo, txRunner: txRunner}
}

// Create crea un artículo con ID nuevo. Rechaza SKU duplicado (ErrDuplicateSKU)
// y campos obligatorios vacíos. Si la cantidad inicial es positiva registra un
// asiento Inbound de apertura, de modo que cantidad y libro son consistentes
// desde el primer momento.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	sku := strings.TrimSpace(in.SKU)
	category := strings.TrimSpace(in.Category)
	locationID := strings.TrimSpace(in.LocationID)
	if name == "" || sku == "" || category == "" || locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        name,
		SKU:         sku,
		Category:    category,
		LocationID:  locationID,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Chequeo de unicidad y alta dentro del mismo paso para que dos altas
	// simultáneas no puedan colarse con el mismo SKU.
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) error {
		existing, err := itemRepo.GetBySKU(sku)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateSKU
		}
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		if in.Quantity > 0 {
			return txRepo.Create(&entity.Transaction{
				ID:             uuid.New().String(),
				ItemID:         item.ID,
				Type:           entity.TransactionTypeInbound,
				QuantityChange: in.Quantity,
				Timestamp:      now,
				Notes:          "Stock inicial",
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(item), nil
}

// GetByID obtiene un artículo por ID; (nil, nil) si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return uc.toResponse(item), nil
}

// GetBySKU obtiene un artículo por SKU exacto (modo lookup del escáner);
// (nil, nil) si no existe.
func (uc *ItemUseCase) GetBySKU(sku string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return uc.toResponse(item), nil
}

// Update aplica el parche sobre el artículo. Un cambio de SKU se vuelve a
// verificar contra el catálogo (ErrDuplicateSKU si otro artículo ya lo usa);
// el libro cruza por ID, así que el cambio es seguro para el historial.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = name
	}
	if in.SKU != nil {
		sku := strings.TrimSpace(*in.SKU)
		if sku == "" {
			return nil, domain.ErrInvalidInput
		}
		if sku != item.SKU {
			existing, err := uc.repo.GetBySKU(sku)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != item.ID {
				return nil, domain.ErrDuplicateSKU
			}
			item.SKU = sku
		}
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Category = category
	}
	if in.LocationID != nil {
		locationID := strings.TrimSpace(*in.LocationID)
		if locationID == "" {
			return nil, domain.ErrInvalidInput
		}
		item.LocationID = locationID
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinStock = *in.MinStock
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return uc.toResponse(item), nil
}

// Delete elimina el artículo y, en cascada y en el mismo paso, todos los
// asientos del libro que lo referencian.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) error {
		item, err := itemRepo.GetByID(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := itemRepo.Delete(id); err != nil {
			return err
		}
		return txRepo.DeleteByItem(id)
	})
}

// List lista artículos con filtros combinados por AND y paginación.
func (uc *ItemUseCase) List(filter dto.ItemFilterRequest, page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(repository.ItemFilter{
		Search:     filter.Search,
		Category:   filter.Category,
		LocationID: filter.LocationID,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, item := range list {
		name, ok := names[item.LocationID]
		if !ok {
			name = uc.resolveLocationName(item.LocationID)
			names[item.LocationID] = name
		}
		items = append(items, *toItemResponse(item, name))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// resolveLocationName devuelve el nombre de la ubicación o el sentinela "N/A";
// nunca falla, las referencias colgantes son un estado válido.
func (uc *ItemUseCase) resolveLocationName(locationID string) string {
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil || location == nil {
		return locationNameFallback
	}
	return location.Name
}

func (uc *ItemUseCase) toResponse(item *entity.Item) *dto.ItemResponse {
	return toItemResponse(item, uc.resolveLocationName(item.LocationID))
}

func toItemResponse(item *entity.Item, locationName string) *dto.ItemResponse {
	if item == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		SKU:          item.SKU,
		Category:     item.Category,
		LocationID:   item.LocationID,
		LocationName: locationName,
		Quantity:     item.Quantity,
		MinStock:     item.MinStock,
		LowStock:     item.LowStock(),
		Description:  item.Description,
		ImageURL:     item.ImageURL,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
