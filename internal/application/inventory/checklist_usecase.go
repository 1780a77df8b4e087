package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/frenchys-amb/ambutrack-api/internal/application/audit"
	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/domain"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	domaininv "github.com/frenchys-amb/ambutrack-api/internal/domain/inventory"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
	"github.com/frenchys-amb/ambutrack-api/pkg/normalize"
)

// ChecklistUseCase guarda la verificación diaria de una unidad. Construye una
// sesión de checklist a partir del catálogo y el stock actual, le aplica los
// ítems reportados y persiste el resultado con su estado final.
type ChecklistUseCase struct {
	checklistRepo repository.ChecklistRepository
	standardRepo  repository.StandardRepository
	stockRepo     repository.AmbulanceStockRepository
	ambulanceRepo repository.AmbulanceRepository
	audit         *audit.Recorder
}

// NewChecklistUseCase construye el caso de uso.
func NewChecklistUseCase(
	checklistRepo repository.ChecklistRepository,
	standardRepo repository.StandardRepository,
	stockRepo repository.AmbulanceStockRepository,
	ambulanceRepo repository.AmbulanceRepository,
	recorder *audit.Recorder,
) *ChecklistUseCase {
	return &ChecklistUseCase{
		checklistRepo: checklistRepo,
		standardRepo:  standardRepo,
		stockRepo:     stockRepo,
		ambulanceRepo: ambulanceRepo,
		audit:         recorder,
	}
}

// Submit aplica los ítems reportados sobre una sesión nueva y guarda el
// checklist. Un checklist puede guardarse incompleto: queda "con_faltantes" y
// los faltantes calculados vuelven en la respuesta para prellenar una
// requisición.
func (uc *ChecklistUseCase) Submit(ctx context.Context, userID string, in dto.SubmitChecklistRequest) (*dto.SubmitChecklistResponse, error) {
	ambulance, err := uc.ambulanceRepo.GetByID(in.AmbulanceID)
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
	stock, err := uc.stockRepo.ListByAmbulance(in.AmbulanceID)
	if err != nil {
		return nil, err
	}

	session := domaininv.NewChecklistSession(derefStandards(standards), derefStock(stock))
	for _, item := range in.Items {
		name := normalize.Name(item.Name)
		if item.Quantity != nil {
			session.SetQuantity(name, *item.Quantity)
			continue
		}
		if item.Confirmed {
			session.Confirm(name)
		}
	}

	shortfalls := session.Shortfalls()
	status := entity.ChecklistStatusWithShortfall
	if session.Complete() && len(shortfalls) == 0 {
		status = entity.ChecklistStatusComplete
	}

	checklist := &entity.Checklist{
		ID:          uuid.New().String(),
		AmbulanceID: in.AmbulanceID,
		UserID:      userID,
		Date:        in.Date,
		Shift:       in.Shift,
		Mechanical: entity.MechanicalState{
			Mileage:            in.Mileage,
			Fuel:               in.Fuel,
			OxygenMain:         in.OxygenMain,
			OxygenPortable:     in.OxygenPortable,
			OilLevel:           in.OilLevel,
			TransmissionLevel:  in.TransmissionLevel,
			BrakeFluidLevel:    in.BrakeFluidLevel,
			SteeringFluidLevel: in.SteeringFluidLevel,
			CoolantLevel:       in.CoolantLevel,
		},
		Items:        session.ItemsMap(),
		Status:       status,
		MissingCount: len(shortfalls),
		Notes:        in.Notes,
		CreatedAt:    time.Now(),
	}
	if err := uc.checklistRepo.Create(checklist); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "create", "checklists", checklist.ID, map[string]any{
		"ambulance_id": in.AmbulanceID,
		"status":       status,
		"missing":      len(shortfalls),
	})
	return &dto.SubmitChecklistResponse{
		ID:           checklist.ID,
		Status:       status,
		Progress:     session.Progress(),
		MissingCount: len(shortfalls),
		Shortfalls:   toShortfallDTOs(shortfalls),
	}, nil
}

// GetByID obtiene un checklist guardado.
func (uc *ChecklistUseCase) GetByID(id string) (*entity.Checklist, error) {
	return uc.checklistRepo.GetByID(id)
}

// ListByAmbulance lista los checklists de una unidad, más recientes primero.
func (uc *ChecklistUseCase) ListByAmbulance(ambulanceID string, limit, offset int) ([]*entity.Checklist, error) {
	return uc.checklistRepo.ListByAmbulance(ambulanceID, limit, offset)
}
