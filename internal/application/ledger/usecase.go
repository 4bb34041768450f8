// Package ledger implementa el libro de stock: el conjunto autoritativo de
// items y su histórico de movimientos. Toda mutación valida invariantes
// (cantidad nunca negativa, código único, mínimo < máximo al crear), registra
// exactamente un movimiento en la misma transacción e invalida las caches de
// lectura.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/domain/stock"
	"github.com/jhoicas/estoque-api/internal/infrastructure/cache"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// historyCacheLimit cuántos movimientos recientes retiene la cache del histórico.
const historyCacheLimit = 500

// UseCase casos de uso del libro de stock.
// Las mutaciones de cantidad bloquean la fila (SELECT FOR UPDATE) dentro de la
// transacción: dos Receive/Issue simultáneos sobre el mismo item se serializan
// en la BD en lugar de perder una actualización.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository

	itemsCache   *cache.Snapshot[[]entity.Item]
	historyCache *cache.Snapshot[[]entity.Movement]

	log *logger.Logger
}

// Config TTLs de las vistas de lectura.
type Config struct {
	ItemsTTL   time.Duration
	HistoryTTL time.Duration
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		movRepo:      movRepo,
		itemsCache:   cache.NewSnapshot[[]entity.Item](cfg.ItemsTTL),
		historyCache: cache.NewSnapshot[[]entity.Movement](cfg.HistoryTTL),
		log:          log,
	}
}

// CreateInput datos de alta de un item.
type CreateInput struct {
	Code        string
	Name        string
	Description string
	Unit        string
	Quantity    int64
	Minimum     int64
	Maximum     int64
	Location    string
	Supplier    string
	Price       decimal.Decimal
}

// Create da de alta un item y registra el movimiento CREACION.
// Falla con ErrDuplicate si el código ya existe, ErrInvalidRange si
// mínimo >= máximo y ErrInvalidInput ante código/nombre vacíos, cantidad
// negativa o precio negativo.
func (uc *UseCase) Create(ctx context.Context, in CreateInput, username string) error {
	if in.Code == "" || in.Name == "" {
		return domain.ErrInvalidInput
	}
	if in.Minimum >= in.Maximum {
		return domain.ErrInvalidRange
	}
	if in.Quantity < 0 || in.Price.IsNegative() {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.Item{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Unit:        in.Unit,
		Quantity:    in.Quantity,
		Minimum:     in.Minimum,
		Maximum:     in.Maximum,
		Location:    in.Location,
		Supplier:    in.Supplier,
		Price:       in.Price,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		if err := itemRepo.Create(ctx, item); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.Movement{
			ItemCode: item.Code,
			ItemName: item.Name,
			Type:     entity.MovementTypeCreacion,
			Detail:   "Alta de item",
			Quantity: item.Quantity,
			Date:     now,
			Username: username,
		})
	})
	if err != nil {
		return err
	}

	uc.invalidate()
	uc.log.Info().Str("code", item.Code).Str("user", username).Msg("item creado")
	return nil
}

// UpdateField actualiza un único campo del item y registra un movimiento
// ACTUALIZACION con la transición "campo: anterior → nuevo".
//
// La relación mínimo < máximo NO se re-valida aquí: igual que en el alta
// original, solo Create la exige. Editar mínimo o máximo puede dejar un par
// incoherente que los clasificadores tratan sin romperse.
func (uc *UseCase) UpdateField(ctx context.Context, code string, field repository.FieldValue, username string) error {
	column, value, ok := fieldColumn(field)
	if !ok {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		item, err := itemRepo.GetForUpdate(ctx, code)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		old := fieldCurrent(item, column)
		if _, err := itemRepo.UpdateField(ctx, code, column, value); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.Movement{
			ItemCode: code,
			ItemName: item.Name,
			Type:     entity.MovementTypeActualizacion,
			Detail:   fmt.Sprintf("%s: %v → %v", column, old, value),
			Quantity: item.Quantity,
			Date:     now,
			Username: username,
		})
	})
	if err != nil {
		return err
	}

	uc.invalidate()
	uc.log.Info().Str("code", code).Str("field", column).Str("user", username).Msg("item actualizado")
	return nil
}

// Update aplica una edición parcial: cada campo presente en la petición se
// actualiza por separado y genera su propio registro ACTUALIZACION.
func (uc *UseCase) Update(ctx context.Context, code string, req dto.UpdateItemRequest, username string) error {
	fields := updateFields(req)
	if len(fields) == 0 {
		return domain.ErrInvalidInput
	}
	for _, f := range fields {
		if err := uc.UpdateField(ctx, code, f, username); err != nil {
			return err
		}
	}
	return nil
}

func updateFields(req dto.UpdateItemRequest) []repository.FieldValue {
	var fields []repository.FieldValue
	text := func(name string, v *string) {
		if v != nil {
			fields = append(fields, repository.FieldValue{Name: name, Text: *v, IsText: true})
		}
	}
	text("name", req.Name)
	text("description", req.Description)
	text("unit", req.Unit)
	text("location", req.Location)
	text("supplier", req.Supplier)
	if req.Minimum != nil {
		fields = append(fields, repository.FieldValue{Name: "minimum", Number: *req.Minimum})
	}
	if req.Maximum != nil {
		fields = append(fields, repository.FieldValue{Name: "maximum", Number: *req.Maximum})
	}
	if req.Price != nil {
		fields = append(fields, repository.FieldValue{Name: "price", Price: *req.Price, IsPrice: true})
	}
	return fields
}

// Receive registra una entrada de stock: incrementa la cantidad y añade el
// movimiento ENTRADA con la cantidad resultante.
func (uc *UseCase) Receive(ctx context.Context, code string, quantity int64, note, username string) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		item, err := itemRepo.GetForUpdate(ctx, code)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		newQty := item.Quantity + quantity
		if err := itemRepo.UpdateQuantity(ctx, code, newQty); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.Movement{
			ItemCode: code,
			ItemName: item.Name,
			Type:     entity.MovementTypeEntrada,
			Detail:   movementDetail("+", quantity, note),
			Quantity: newQty,
			Date:     now,
			Username: username,
		})
	})
	if err != nil {
		return err
	}

	uc.invalidate()
	uc.log.Info().Str("code", code).Int64("quantity", quantity).Str("user", username).Msg("entrada registrada")
	return nil
}

// Issue registra una salida de stock. Falla con ErrInsufficientStock si la
// cantidad pedida supera la disponible; la cantidad nunca queda negativa.
func (uc *UseCase) Issue(ctx context.Context, code string, quantity int64, note, username string) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		item, err := itemRepo.GetForUpdate(ctx, code)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Quantity < quantity {
			return domain.ErrInsufficientStock
		}
		newQty := item.Quantity - quantity
		if err := itemRepo.UpdateQuantity(ctx, code, newQty); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.Movement{
			ItemCode: code,
			ItemName: item.Name,
			Type:     entity.MovementTypeSalida,
			Detail:   movementDetail("-", quantity, note),
			Quantity: newQty,
			Date:     now,
			Username: username,
		})
	})
	if err != nil {
		return err
	}

	uc.invalidate()
	uc.log.Info().Str("code", code).Int64("quantity", quantity).Str("user", username).Msg("salida registrada")
	return nil
}

// Delete excluye el item y purga TODO su histórico en la misma transacción.
// No queda registro terminal de exclusión: un Create posterior con el mismo
// código arranca con histórico limpio.
func (uc *UseCase) Delete(ctx context.Context, code, username string) error {
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) error {
		rows, err := itemRepo.Delete(ctx, code)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrNotFound
		}
		return movRepo.DeleteByItem(ctx, code)
	})
	if err != nil {
		return err
	}

	uc.invalidate()
	uc.log.Info().Str("code", code).Str("user", username).Msg("item excluido")
	return nil
}

// Get devuelve el snapshot del item o (nil, nil) si no existe.
func (uc *UseCase) Get(ctx context.Context, code string) (*entity.Item, error) {
	return uc.itemRepo.GetByCode(ctx, code)
}

// List devuelve el snapshot completo del inventario (cacheado por TTL).
func (uc *UseCase) List(ctx context.Context) ([]entity.Item, error) {
	return uc.itemsCache.Get(ctx, uc.itemRepo.List)
}

// History devuelve movimientos en orden cronológico inverso. La vista global
// reciente se sirve desde cache; consultas por item o páginas profundas van
// directo al repositorio.
func (uc *UseCase) History(ctx context.Context, code string, limit, offset int) ([]entity.Movement, error) {
	if code != "" {
		return uc.movRepo.ListByItem(ctx, code, limit, offset)
	}
	if offset+limit > historyCacheLimit {
		return uc.movRepo.List(ctx, limit, offset)
	}
	recent, err := uc.historyCache.Get(ctx, func(ctx context.Context) ([]entity.Movement, error) {
		return uc.movRepo.List(ctx, historyCacheLimit, 0)
	})
	if err != nil {
		return nil, err
	}
	if offset >= len(recent) {
		return nil, nil
	}
	end := offset + limit
	if end > len(recent) {
		end = len(recent)
	}
	return recent[offset:end], nil
}

// Alerts clasifica el snapshot en los cuatro buckets de alerta temprana.
func (uc *UseCase) Alerts(ctx context.Context) (stock.Alerts, error) {
	items, err := uc.List(ctx)
	if err != nil {
		return stock.Alerts{}, err
	}
	return stock.BuildAlerts(items), nil
}

func (uc *UseCase) invalidate() {
	uc.itemsCache.Invalidate()
	uc.historyCache.Invalidate()
}

func movementDetail(sign string, quantity int64, note string) string {
	if note == "" {
		return fmt.Sprintf("Cant: %s%d", sign, quantity)
	}
	return fmt.Sprintf("Cant: %s%d. %s", sign, quantity, note)
}

// fieldColumn traduce el FieldValue a columna + valor tipado.
// Code y Quantity nunca son editables por esta vía.
func fieldColumn(f repository.FieldValue) (column string, value any, ok bool) {
	switch f.Name {
	case "name", "description", "unit", "location", "supplier":
		if !f.IsText {
			return "", nil, false
		}
		return f.Name, f.Text, true
	case "minimum", "maximum":
		if f.IsText || f.IsPrice || f.Number < 0 {
			return "", nil, false
		}
		return f.Name, f.Number, true
	case "price":
		if !f.IsPrice || f.Price.IsNegative() {
			return "", nil, false
		}
		return f.Name, f.Price, true
	default:
		return "", nil, false
	}
}

func fieldCurrent(item *entity.Item, column string) any {
	switch column {
	case "name":
		return item.Name
	case "description":
		return item.Description
	case "unit":
		return item.Unit
	case "location":
		return item.Location
	case "supplier":
		return item.Supplier
	case "minimum":
		return item.Minimum
	case "maximum":
		return item.Maximum
	case "price":
		return item.Price
	default:
		return nil
	}
}
