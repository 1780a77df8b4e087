package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frenchys-amb/ambutrack-api/internal/application/audit"
	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	appinv "github.com/frenchys-amb/ambutrack-api/internal/application/inventory"
	"github.com/frenchys-amb/ambutrack-api/internal/domain"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/entity"
	"github.com/frenchys-amb/ambutrack-api/internal/domain/repository"
	"github.com/frenchys-amb/ambutrack-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStorageRepo struct {
	byName map[string]*entity.StorageItem // normalized_name → ítem
}

func newFakeStorageRepo(items ...*entity.StorageItem) *fakeStorageRepo {
	r := &fakeStorageRepo{byName: make(map[string]*entity.StorageItem)}
	for _, it := range items {
		r.byName[it.NormalizedName] = it
	}
	return r
}

func (r *fakeStorageRepo) Create(item *entity.StorageItem) error {
	r.byName[item.NormalizedName] = item
	return nil
}

func (r *fakeStorageRepo) GetByID(id string) (*entity.StorageItem, error) {
	for _, it := range r.byName {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeStorageRepo) GetByNormalizedName(name string) (*entity.StorageItem, error) {
	return r.byName[name], nil
}

func (r *fakeStorageRepo) GetForUpdate(name string) (*entity.StorageItem, error) {
	return r.byName[name], nil
}

func (r *fakeStorageRepo) Update(item *entity.StorageItem) error {
	r.byName[item.NormalizedName] = item
	return nil
}

func (r *fakeStorageRepo) UpdateQuantity(id string, quantity int) error {
	for _, it := range r.byName {
		if it.ID == id {
			it.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeStorageRepo) List(string, int, int) ([]*entity.StorageItem, error) { return nil, nil }
func (r *fakeStorageRepo) ListByType(entity.ItemType, int, int) ([]*entity.StorageItem, error) {
	return nil, nil
}
func (r *fakeStorageRepo) Delete(string) error { return nil }

type fakeStockRepo struct {
	rows map[string]*entity.AmbulanceStock // ambulance_id + "/" + normalized_name
}

func newFakeStockRepo(rows ...*entity.AmbulanceStock) *fakeStockRepo {
	r := &fakeStockRepo{rows: make(map[string]*entity.AmbulanceStock)}
	for _, row := range rows {
		r.rows[row.AmbulanceID+"/"+row.NormalizedName] = row
	}
	return r
}

func (r *fakeStockRepo) Get(ambulanceID, name string) (*entity.AmbulanceStock, error) {
	return r.rows[ambulanceID+"/"+name], nil
}

func (r *fakeStockRepo) GetForUpdate(ambulanceID, name string) (*entity.AmbulanceStock, error) {
	return r.rows[ambulanceID+"/"+name], nil
}

func (r *fakeStockRepo) Upsert(stock *entity.AmbulanceStock) error {
	r.rows[stock.AmbulanceID+"/"+stock.NormalizedName] = stock
	return nil
}

func (r *fakeStockRepo) UpdateQuantity(id string, quantity int) error {
	for _, row := range r.rows {
		if row.ID == id {
			row.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeStockRepo) ListByAmbulance(string) ([]*entity.AmbulanceStock, error) { return nil, nil }
func (r *fakeStockRepo) Delete(string) error                                      { return nil }

// fakeTxRunner ejecuta la función directamente sobre los fakes. No hay
// rollback: los tests verifican que el caso de uso no mute nada antes de
// validar, que es la garantía que importa con fakes en memoria.
type fakeTxRunner struct {
	storage *fakeStorageRepo
	stock   *fakeStockRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.StorageItemRepository, repository.AmbulanceStockRepository) error) error {
	return fn(r.storage, r.stock)
}

type fakeRequisitionRepo struct {
	created []*entity.Requisition
}

func (r *fakeRequisitionRepo) Create(req *entity.Requisition) error {
	r.created = append(r.created, req)
	return nil
}

func (r *fakeRequisitionRepo) GetByID(id string) (*entity.Requisition, error) {
	for _, req := range r.created {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, nil
}

func (r *fakeRequisitionRepo) ListByAmbulance(string, int, int) ([]*entity.Requisition, error) {
	return r.created, nil
}

func (r *fakeRequisitionRepo) List(int, int) ([]*entity.Requisition, error) {
	return r.created, nil
}

type fakeAmbulanceRepo struct {
	ambulances map[string]*entity.Ambulance
}

func (r *fakeAmbulanceRepo) Create(*entity.Ambulance) error { return nil }
func (r *fakeAmbulanceRepo) GetByID(id string) (*entity.Ambulance, error) {
	return r.ambulances[id], nil
}
func (r *fakeAmbulanceRepo) GetByUnitID(string) (*entity.Ambulance, error) { return nil, nil }
func (r *fakeAmbulanceRepo) Update(*entity.Ambulance) error                { return nil }
func (r *fakeAmbulanceRepo) List(int, int) ([]*entity.Ambulance, error)    { return nil, nil }
func (r *fakeAmbulanceRepo) Delete(string) error                           { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Armado
// ──────────────────────────────────────────────────────────────────────────────

const (
	testAmbulanceID = "amb-001"
	testUserID      = "user-001"
)

type requisitionFixture struct {
	uc      *appinv.RequisitionUseCase
	storage *fakeStorageRepo
	stock   *fakeStockRepo
	reqs    *fakeRequisitionRepo
}

func newRequisitionFixture(storage *fakeStorageRepo, stock *fakeStockRepo) *requisitionFixture {
	reqs := &fakeRequisitionRepo{}
	ambulances := &fakeAmbulanceRepo{ambulances: map[string]*entity.Ambulance{
		testAmbulanceID: {ID: testAmbulanceID, UnitID: "AMB-01", Status: "active"},
	}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := appinv.NewRequisitionUseCase(
		&fakeTxRunner{storage: storage, stock: stock},
		reqs, ambulances, audit.NewRecorder(nil, log), log,
	)
	return &requisitionFixture{uc: uc, storage: storage, stock: stock, reqs: reqs}
}

func centralItem(name string, qty int) *entity.StorageItem {
	return &entity.StorageItem{
		ID:             "storage-" + name,
		Name:           name,
		NormalizedName: name,
		Quantity:       qty,
		Category:       entity.CategoryCanalizacion,
		ItemType:       entity.ItemTypeEquipment,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// La transferencia conserva el total: lo que sale del almacén central entra al
// stock de la unidad, y la requisición queda persistida con la línea movida.
func TestCreateRequisition_TransfiereYConservaElTotal(t *testing.T) {
	f := newRequisitionFixture(
		newFakeStorageRepo(centralItem("cateter_18g", 20)),
		newFakeStockRepo(&entity.AmbulanceStock{
			ID:             "stock-1",
			AmbulanceID:    testAmbulanceID,
			NormalizedName: "cateter_18g",
			Quantity:       3,
			Category:       entity.CategoryCanalizacion,
			ItemType:       entity.ItemTypeEquipment,
		}),
	)

	resp, err := f.uc.Create(context.Background(), testUserID, dto.CreateRequisitionRequest{
		AmbulanceID: testAmbulanceID,
		Date:        "2026-08-27",
		Reason:      "reposición tras servicio",
		Items: []dto.RequisitionItemRequest{
			{Name: "Catéter 18G", Quantity: 7, Category: entity.CategoryCanalizacion},
		},
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.ID, "debe persistirse la requisición")
	assert.Equal(t, 1, resp.Transferred)
	assert.Equal(t, 0, resp.Failed)

	central, _ := f.storage.GetByNormalizedName("cateter_18g")
	aboard, _ := f.stock.Get(testAmbulanceID, "cateter_18g")
	assert.Equal(t, 13, central.Quantity)
	assert.Equal(t, 10, aboard.Quantity)

	require.Len(t, f.reqs.created, 1)
	record := f.reqs.created[0]
	assert.Equal(t, testUserID, record.UserID)
	require.Len(t, record.Data.Items, 1)
	assert.Equal(t, "cateter_18g", record.Data.Items[0].Name)
	assert.Equal(t, 7, record.Data.Items[0].Quantity)
}

func TestCreateRequisition_StockInsuficienteNoMutaNada(t *testing.T) {
	f := newRequisitionFixture(
		newFakeStorageRepo(centralItem("cateter_18g", 5)),
		newFakeStockRepo(),
	)

	resp, err := f.uc.Create(context.Background(), testUserID, dto.CreateRequisitionRequest{
		AmbulanceID: testAmbulanceID,
		Date:        "2026-08-27",
		Items: []dto.RequisitionItemRequest{
			{Name: "cateter_18g", Quantity: 8, Category: entity.CategoryCanalizacion},
		},
	})

	require.NoError(t, err, "el rechazo por stock es un resultado, no un error del caso de uso")
	assert.Empty(t, resp.ID, "sin ítems transferidos no se crea registro")
	assert.Equal(t, 0, resp.Transferred)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 1)
	assert.False(t, resp.Results[0].Transferred)
	assert.NotEmpty(t, resp.Results[0].Error)

	central, _ := f.storage.GetByNormalizedName("cateter_18g")
	assert.Equal(t, 5, central.Quantity, "el almacén no debe tocarse")
	assert.Empty(t, f.reqs.created)
}

func TestCreateRequisition_ItemFueraDelCatalogo(t *testing.T) {
	f := newRequisitionFixture(newFakeStorageRepo(), newFakeStockRepo())

	resp, err := f.uc.Create(context.Background(), testUserID, dto.CreateRequisitionRequest{
		AmbulanceID: testAmbulanceID,
		Date:        "2026-08-27",
		Items: []dto.RequisitionItemRequest{
			{Name: "ítem inventado", Quantity: 1, Category: entity.CategoryMiscelaneos},
		},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.ID)
	require.Len(t, resp.Results, 1)
	assert.False(t, resp.Results[0].Transferred)
	assert.Equal(t, "tem_inventado", resp.Results[0].Name, "el resultado reporta el nombre normalizado")
}

// El fallo de un ítem no revierte los demás: la requisición persistida lleva
// solo las líneas que sí se movieron.
func TestCreateRequisition_ExitoParcialEntreItems(t *testing.T) {
	f := newRequisitionFixture(
		newFakeStorageRepo(
			centralItem("cateter_18g", 20),
			centralItem("llave_de_3_vias", 2),
		),
		newFakeStockRepo(),
	)

	resp, err := f.uc.Create(context.Background(), testUserID, dto.CreateRequisitionRequest{
		AmbulanceID: testAmbulanceID,
		Date:        "2026-08-27",
		Items: []dto.RequisitionItemRequest{
			{Name: "cateter_18g", Quantity: 7, Category: entity.CategoryCanalizacion},
			{Name: "llave_de_3_vias", Quantity: 5, Category: entity.CategoryCanalizacion},
			{Name: "no_existe", Quantity: 1, Category: entity.CategoryCanalizacion},
		},
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	assert.Equal(t, 1, resp.Transferred)
	assert.Equal(t, 2, resp.Failed)

	require.Len(t, f.reqs.created, 1)
	require.Len(t, f.reqs.created[0].Data.Items, 1)
	assert.Equal(t, "cateter_18g", f.reqs.created[0].Data.Items[0].Name)

	// El ítem rechazado por stock conserva su cantidad original.
	llave, _ := f.storage.GetByNormalizedName("llave_de_3_vias")
	assert.Equal(t, 2, llave.Quantity)
}

// Si la unidad no lleva el ítem a bordo, la transferencia crea la fila con la
// categoría y el tipo del ítem de origen.
func TestCreateRequisition_CreaFilaDeStockSiNoExiste(t *testing.T) {
	f := newRequisitionFixture(
		newFakeStorageRepo(centralItem("cateter_18g", 20)),
		newFakeStockRepo(),
	)

	_, err := f.uc.Create(context.Background(), testUserID, dto.CreateRequisitionRequest{
		AmbulanceID: testAmbulanceID,
		Date:        "2026-08-27",
		Items: []dto.RequisitionItemRequest{
			{Name: "cateter_18g", Quantity: 4, Category: entity.CategoryCanalizacion},
		},
	})

	require.NoError(t, err)
	aboard, _ := f.stock.Get(testAmbulanceID, "cateter_18g")
	require.NotNil(t, aboard)
	assert.Equal(t, 4, aboard.Quantity)
	assert.Equal(t, entity.CategoryCanalizacion, aboard.Category)
	assert.Equal(t, entity.ItemTypeEquipment, aboard.ItemType)
	assert.Equal(t, "storage-cateter_18g", aboard.ItemMasterID)
}

func TestCreateRequisition_UnidadInexistente(t *testing.T) {
	f := newRequisitionFixture(newFakeStorageRepo(), newFakeStockRepo())

	_, err := f.uc.Create(context.Background(), testUserID, dto.CreateRequisitionRequest{
		AmbulanceID: "no-existe",
		Date:        "2026-08-27",
		Items: []dto.RequisitionItemRequest{
			{Name: "cateter_18g", Quantity: 1, Category: entity.CategoryCanalizacion},
		},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
