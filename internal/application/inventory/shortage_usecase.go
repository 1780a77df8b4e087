package inventory

import (
	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/domain"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	domaininv "github.com/frenchys-amb/ambutrack-api/internal/domain/inventory"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
)

// CriticalShortageLimit cuántos faltantes críticos se reportan en el ranking.
const CriticalShortageLimit = 10

// ShortageUseCase reconcilia el stock de una unidad contra el catálogo de
// estándares. Los faltantes son siempre derivados: se recalculan en cada
// lectura y nunca se persisten.
type ShortageUseCase struct {
	standardRepo  repository.StandardRepository
	stockRepo     repository.AmbulanceStockRepository
	ambulanceRepo repository.AmbulanceRepository
}

// NewShortageUseCase construye el caso de uso.
func NewShortageUseCase(
	standardRepo repository.StandardRepository,
	stockRepo repository.AmbulanceStockRepository,
	ambulanceRepo repository.AmbulanceRepository,
) *ShortageUseCase {
	return &ShortageUseCase{
		standardRepo:  standardRepo,
		stockRepo:     stockRepo,
		ambulanceRepo: ambulanceRepo,
	}
}

// Status devuelve el estado completo de una unidad: cada ítem del catálogo
// con su cantidad actual, recomendada y faltante, agrupado por sección, más
// la lista plana de faltantes lista para prellenar una requisición.
func (uc *ShortageUseCase) Status(ambulanceID string) (*dto.InventoryStatusResponse, error) {
	ambulance, err := uc.ambulanceRepo.GetByID(ambulanceID)
	if err != nil {
		return nil, err
	}
	if ambulance == nil {
		return nil, domain.ErrNotFound
	}
	standards, err := uc.standardRepo.List()
	if err != nil {
		return nil, err
	}
	stock, err := uc.stockRepo.ListByAmbulance(ambulanceID)
	if err != nil {
		return nil, err
	}

	idx := domaininv.NewStockIndex(derefStock(stock))
	sections := make(map[string][]dto.ShortfallDTO, len(entity.Categories))
	for _, std := range standards {
		current := idx.Quantity(std.Category, std.NormalizedName)
		missing := std.Quantity - current
		if missing < 0 {
			missing = 0
		}
		sections[std.Category] = append(sections[std.Category], dto.ShortfallDTO{
			Name:        std.NormalizedName,
			Section:     std.Category,
			ItemType:    string(std.ItemType),
			Current:     current,
			Recommended: std.Quantity,
			Missing:     missing,
		})
	}

	shortfalls := domaininv.Reconcile(derefStandards(standards), idx)
	return &dto.InventoryStatusResponse{
		AmbulanceID: ambulanceID,
		Sections:    sections,
		Shortfalls:  toShortfallDTOs(shortfalls),
	}, nil
}

// Critical devuelve los faltantes más agotados de una unidad, ordenados por
// cociente de agotamiento ascendente y truncados al ranking.
func (uc *ShortageUseCase) Critical(ambulanceID string) ([]dto.ShortfallDTO, error) {
	ambulance, err := uc.ambulanceRepo.GetByID(ambulanceID)
	if err != nil {
		return nil, err
	}
	if ambulance == nil {
		return nil, domain.ErrNotFound
	}
	standards, err := uc.standardRepo.List()
	if err != nil {
		return nil, err
	}
	stock, err := uc.stockRepo.ListByAmbulance(ambulanceID)
	if err != nil {
		return nil, err
	}
	shortfalls := domaininv.Reconcile(derefStandards(standards), domaininv.NewStockIndex(derefStock(stock)))
	critical := domaininv.RankCritical(shortfalls, CriticalShortageLimit)
	return toShortfallDTOs(critical), nil
}

// Shortfalls devuelve la lista plana de faltantes de una unidad, en el orden
// del catálogo. Es el punto de partida del carrito de requisición.
func (uc *ShortageUseCase) Shortfalls(ambulanceID string) ([]dto.ShortfallDTO, error) {
	status, err := uc.Status(ambulanceID)
	if err != nil {
		return nil, err
	}
	return status.Shortfalls, nil
}

func toShortfallDTOs(shortfalls []domaininv.Shortfall) []dto.ShortfallDTO {
	out := make([]dto.ShortfallDTO, 0, len(shortfalls))
	for _, s := range shortfalls {
		out = append(out, dto.ShortfallDTO{
			Name:        s.Name,
			Section:     s.Category,
			ItemType:    string(s.ItemType),
			Current:     s.Current,
			Recommended: s.Recommended,
			Missing:     s.Missing,
		})
	}
	return out
}

func derefStandards(in []*entity.Standard) []entity.Standard {
	out := make([]entity.Standard, 0, len(in))
	for _, s := range in {
		out = append(out, *s)
	}
	return out
}

func derefStock(in []*entity.AmbulanceStock) []entity.AmbulanceStock {
	out := make([]entity.AmbulanceStock, 0, len(in))
	for _, s := range in {
		out = append(out, *s)
	}
	return out
}
