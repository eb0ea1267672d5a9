package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pro/internal/application/production"
	"github.com/tu-usuario/gestion-pro/internal/application/stock"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria del flujo de producción.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "00000000-0000-0000-0000-0000000000c1"
	testUserID    = "00000000-0000-0000-0000-0000000000u1"
)

type memStore struct {
	products  map[string]*entity.Product
	runs      map[string]*entity.ProductionRun
	tasks     map[string]*entity.PackagingTask // clave: production_run_id
	movements []*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		runs:     make(map[string]*entity.ProductionRun),
		tasks:    make(map[string]*entity.PackagingTask),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.products {
		p := *v
		c.products[k] = &p
	}
	for k, v := range s.runs {
		r := *v
		c.runs[k] = &r
	}
	for k, v := range s.tasks {
		t := *v
		c.tasks[k] = &t
	}
	c.movements = append([]*entity.StockMovement(nil), s.movements...)
	return c
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *memProductRepo) UpdateStock(id string, stockQty decimal.Decimal, updatedAt time.Time) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock = stockQty
	p.UpdatedAt = updatedAt
	return nil
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *memMovementRepo) List(string, repository.MovementFilter) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (r *memMovementRepo) ListByRef(companyID, refType, refID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.CompanyID == companyID && m.RefType == refType && m.RefID == refID {
			out = append(out, m)
		}
	}
	return out, nil
}

type memRunRepo struct{ s *memStore }

func (r *memRunRepo) Create(run *entity.ProductionRun) error {
	cp := *run
	r.s.runs[run.ID] = &cp
	return nil
}

func (r *memRunRepo) GetByID(id string) (*entity.ProductionRun, error) {
	run, ok := r.s.runs[id]
	if !ok {
		return nil, nil
	}
	cp := *run
	return &cp, nil
}

func (r *memRunRepo) GetForUpdate(id string) (*entity.ProductionRun, error) { return r.GetByID(id) }

func (r *memRunRepo) Update(run *entity.ProductionRun) error {
	cp := *run
	r.s.runs[run.ID] = &cp
	return nil
}

type memTaskRepo struct{ s *memStore }

func (r *memTaskRepo) Upsert(t *entity.PackagingTask) error {
	if existing, ok := r.s.tasks[t.ProductionRunID]; ok {
		existing.QtyToPackage = t.QtyToPackage
		existing.ProductName = t.ProductName
		existing.Status = t.Status
		existing.UpdatedAt = t.UpdatedAt
		return nil
	}
	cp := *t
	r.s.tasks[t.ProductionRunID] = &cp
	return nil
}

func (r *memTaskRepo) GetByRunID(runID string) (*entity.PackagingTask, error) {
	t, ok := r.s.tasks[runID]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapshot := r.s.clone()
	if err := fn(&memMovementRepo{r.s}, &memProductRepo{r.s}); err != nil {
		*r.s = *snapshot
		return err
	}
	return nil
}

func (r *memTxRunner) RunProduction(ctx context.Context, fn func(
	runRepo repository.ProductionRunRepository,
	taskRepo repository.PackagingTaskRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapshot := r.s.clone()
	if err := fn(&memRunRepo{r.s}, &memTaskRepo{r.s}, &memMovementRepo{r.s}, &memProductRepo{r.s}); err != nil {
		*r.s = *snapshot
		return err
	}
	return nil
}

func newWorkflow(s *memStore) *production.WorkflowUseCase {
	tx := &memTxRunner{s}
	ledger := stock.NewLedgerUseCase(tx, &memMovementRepo{s})
	return production.NewWorkflowUseCase(tx, ledger)
}

func seedRun(s *memStore, id, status string) {
	s.products["p1"] = &entity.Product{
		ID: "p1", CompanyID: testCompanyID, SKU: "SKU-p1", Name: "Café 500g",
		UnitWeight: decimal.NewFromInt(1), Stock: decimal.NewFromInt(10),
	}
	s.runs[id] = &entity.ProductionRun{
		ID: id, CompanyID: testCompanyID, OrderItemID: "item-1", ProductID: "p1",
		RequestedQty: decimal.NewFromInt(50), Status: status,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestStart_PendingPasaAInProgress(t *testing.T) {
	s := newMemStore()
	seedRun(s, "run-1", entity.ProductionStatusPending)
	uc := newWorkflow(s)

	require.NoError(t, uc.Start(context.Background(), testCompanyID, "run-1"))

	run := s.runs["run-1"]
	assert.Equal(t, entity.ProductionStatusInProgress, run.Status)
	require.NotNil(t, run.StartedAt, "start debe registrar la marca de inicio")
}

func TestStart_DesdeEstadoNoPendingFalla(t *testing.T) {
	for _, status := range []string{
		entity.ProductionStatusInProgress,
		entity.ProductionStatusCompleted,
		entity.ProductionStatusApproved,
		entity.ProductionStatusRejected,
	} {
		s := newMemStore()
		seedRun(s, "run-1", status)
		uc := newWorkflow(s)

		err := uc.Start(context.Background(), testCompanyID, "run-1")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "estado %s", status)
	}
}

func TestStart_RunInexistente(t *testing.T) {
	s := newMemStore()
	uc := newWorkflow(s)

	err := uc.Start(context.Background(), testCompanyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFinish_Rechazada(t *testing.T) {
	s := newMemStore()
	seedRun(s, "run-1", entity.ProductionStatusInProgress)
	uc := newWorkflow(s)

	err := uc.Finish(context.Background(), testCompanyID, testUserID, "run-1",
		decimal.Zero, entity.ProductionStatusRejected)
	require.NoError(t, err)

	run := s.runs["run-1"]
	assert.Equal(t, entity.ProductionStatusRejected, run.Status)
	assert.Nil(t, run.ProducedQty)
	assert.Empty(t, s.tasks, "un rechazo no genera tarea de empaque")
	assert.Empty(t, s.movements, "un rechazo no toca el stock")
}

func TestFinish_CompletadaPersisteCantidadSinEmpaque(t *testing.T) {
	s := newMemStore()
	seedRun(s, "run-1", entity.ProductionStatusInProgress)
	uc := newWorkflow(s)

	err := uc.Finish(context.Background(), testCompanyID, testUserID, "run-1",
		decimal.NewFromInt(48), entity.ProductionStatusCompleted)
	require.NoError(t, err)

	run := s.runs["run-1"]
	assert.Equal(t, entity.ProductionStatusCompleted, run.Status)
	require.NotNil(t, run.ProducedQty)
	assert.True(t, run.ProducedQty.Equal(decimal.NewFromInt(48)))
	require.NotNil(t, run.CompletedAt)
	assert.Empty(t, s.tasks, "solo approved dispara empaque")
}

func TestFinish_AprobadaCreaTareaYEntradaAStock(t *testing.T) {
	s := newMemStore()
	seedRun(s, "run-1", entity.ProductionStatusInProgress)
	uc := newWorkflow(s)

	err := uc.Finish(context.Background(), testCompanyID, testUserID, "run-1",
		decimal.NewFromInt(50), entity.ProductionStatusApproved)
	require.NoError(t, err)

	run := s.runs["run-1"]
	assert.Equal(t, entity.ProductionStatusApproved, run.Status)
	assert.Equal(t, testUserID, run.ApprovedBy)

	task := s.tasks["run-1"]
	require.NotNil(t, task, "la aprobación debe crear la tarea de empaque")
	assert.True(t, task.QtyToPackage.Equal(decimal.NewFromInt(50)))
	assert.True(t, task.QtyPackaged.IsZero())
	assert.Equal(t, entity.PackagingStatusPending, task.Status)

	require.Len(t, s.movements, 1, "la producción aprobada entra a stock")
	mov := s.movements[0]
	assert.Equal(t, entity.MovementTypeProductionOutput, mov.Type)
	assert.Equal(t, "run-1", mov.RefID)
	assert.Equal(t, entity.MovementRefProductionRun, mov.RefType)
	assert.True(t, s.products["p1"].Stock.Equal(decimal.NewFromInt(60)))
}

// TestFinish_AprobadaDosVeces es la propiedad de idempotencia de la
// aprobación: el reintento no duplica la tarea ni vuelve a mover stock.
func TestFinish_AprobadaDosVecesEsIdempotente(t *testing.T) {
	s := newMemStore()
	seedRun(s, "run-1", entity.ProductionStatusInProgress)
	uc := newWorkflow(s)
	ctx := context.Background()

	qty := decimal.NewFromInt(50)
	require.NoError(t, uc.Finish(ctx, testCompanyID, testUserID, "run-1", qty, entity.ProductionStatusApproved))
	require.NoError(t, uc.Finish(ctx, testCompanyID, testUserID, "run-1", qty, entity.ProductionStatusApproved),
		"el reintento de una aprobación confirmada no debe fallar")

	assert.Len(t, s.tasks, 1, "debe existir exactamente una tarea de empaque")
	assert.True(t, s.tasks["run-1"].QtyToPackage.Equal(qty))
	assert.Len(t, s.movements, 1, "el reintento no registra un segundo movimiento")
	assert.True(t, s.products["p1"].Stock.Equal(decimal.NewFromInt(60)),
		"el stock se incrementa una sola vez")
}

func TestFinish_DesdeTerminalDistintoFalla(t *testing.T) {
	s := newMemStore()
	seedRun(s, "run-1", entity.ProductionStatusRejected)
	uc := newWorkflow(s)

	err := uc.Finish(context.Background(), testCompanyID, testUserID, "run-1",
		decimal.NewFromInt(50), entity.ProductionStatusApproved)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Empty(t, s.tasks)
}

func TestFinish_DesdePendingFalla(t *testing.T) {
	s := newMemStore()
	seedRun(s, "run-1", entity.ProductionStatusPending)
	uc := newWorkflow(s)

	err := uc.Finish(context.Background(), testCompanyID, testUserID, "run-1",
		decimal.NewFromInt(50), entity.ProductionStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"finish requiere que la producción esté en curso")
}

func TestFinish_CantidadInvalida(t *testing.T) {
	s := newMemStore()
	seedRun(s, "run-1", entity.ProductionStatusInProgress)
	uc := newWorkflow(s)

	err := uc.Finish(context.Background(), testCompanyID, testUserID, "run-1",
		decimal.Zero, entity.ProductionStatusApproved)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, entity.ProductionStatusInProgress, s.runs["run-1"].Status,
		"la transición no debe consumarse si la cantidad es inválida")
}

func TestFinish_ResultadoDesconocido(t *testing.T) {
	s := newMemStore()
	seedRun(s, "run-1", entity.ProductionStatusInProgress)
	uc := newWorkflow(s)

	err := uc.Finish(context.Background(), testCompanyID, testUserID, "run-1",
		decimal.NewFromInt(1), "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
