package disbursement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
)

type fakeDisbursementRepo struct {
	sheets map[uuid.UUID]*entity.DisbursementSheet
}

func newFakeDisbursementRepo() *fakeDisbursementRepo {
	return &fakeDisbursementRepo{sheets: make(map[uuid.UUID]*entity.DisbursementSheet)}
}

func (r *fakeDisbursementRepo) CreateSheet(_ context.Context, sheet *entity.DisbursementSheet) error {
	r.sheets[sheet.ID] = sheet
	return nil
}

func (r *fakeDisbursementRepo) FindSheetByID(_ context.Context, id uuid.UUID) (*entity.DisbursementSheet, error) {
	sheet, ok := r.sheets[id]
	if !ok {
		return nil, domainerror.ErrSheetNotFound
	}
	return sheet, nil
}

func (r *fakeDisbursementRepo) FindAllSheets(_ context.Context) ([]*entity.DisbursementSheet, error) {
	result := make([]*entity.DisbursementSheet, 0, len(r.sheets))
	for _, s := range r.sheets {
		result = append(result, s)
	}
	return result, nil
}

func (r *fakeDisbursementRepo) AddRecord(_ context.Context, record *entity.DisbursementRecord) error {
	sheet, ok := r.sheets[record.SheetID]
	if !ok {
		return domainerror.ErrSheetNotFound
	}
	sheet.Records = append(sheet.Records, *record)
	return nil
}

func (r *fakeDisbursementRepo) DeleteSheet(_ context.Context, id uuid.UUID) error {
	delete(r.sheets, id)
	return nil
}

func TestCreateSheetRejectsBlankName(t *testing.T) {
	uc := NewCreateSheetUseCase(newFakeDisbursementRepo())

	_, err := uc.Execute(context.Background(), CreateSheetInput{Name: "  "})
	if !errors.Is(err, domainerror.ErrEmptySheetName) {
		t.Fatalf("expected ErrEmptySheetName, got %v", err)
	}
}

func TestAddRecordKeepsInsertionOrder(t *testing.T) {
	repo := newFakeDisbursementRepo()
	sheetUC := NewCreateSheetUseCase(repo)
	recordUC := NewAddRecordUseCase(repo)

	created, err := sheetUC.Execute(context.Background(), CreateSheetInput{Name: "كشف رمضان"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := []string{"محمد", "فاطمة", "خالد"}
	for _, name := range names {
		_, err := recordUC.Execute(context.Background(), AddRecordInput{
			SheetID:          created.Sheet.ID,
			Name:             name,
			DisbursementDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Method:           entity.DisbursementMethodCash,
			Amount:           decimal.NewFromInt(500),
			Currency:         entity.CurrencyEGP,
		})
		if err != nil {
			t.Fatalf("unexpected error adding %s: %v", name, err)
		}
	}

	sheet := repo.sheets[created.Sheet.ID]
	if len(sheet.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(sheet.Records))
	}
	for i, name := range names {
		if sheet.Records[i].Name != name || sheet.Records[i].Position != i {
			t.Errorf("expected %s at position %d, got %s at %d", name, i, sheet.Records[i].Name, sheet.Records[i].Position)
		}
	}
}

func TestAddRecordRejectsUnknownMethod(t *testing.T) {
	uc := NewAddRecordUseCase(newFakeDisbursementRepo())

	_, err := uc.Execute(context.Background(), AddRecordInput{
		SheetID: uuid.New(),
		Name:    "محمد",
		Method:  entity.DisbursementMethod("شيك"),
		Amount:  decimal.NewFromInt(100),
	})
	if !errors.Is(err, domainerror.ErrInvalidDisbursementMethod) {
		t.Fatalf("expected ErrInvalidDisbursementMethod, got %v", err)
	}
}

func TestAddRecordUnknownSheet(t *testing.T) {
	uc := NewAddRecordUseCase(newFakeDisbursementRepo())

	_, err := uc.Execute(context.Background(), AddRecordInput{
		SheetID: uuid.New(),
		Name:    "محمد",
		Method:  entity.DisbursementMethodCash,
		Amount:  decimal.NewFromInt(100),
	})
	if !errors.Is(err, domainerror.ErrSheetNotFound) {
		t.Fatalf("expected ErrSheetNotFound, got %v", err)
	}
}

func TestDeleteSheetRemovesRecords(t *testing.T) {
	repo := newFakeDisbursementRepo()
	created, err := NewCreateSheetUseCase(repo).Execute(context.Background(), CreateSheetInput{Name: "كشف قديم"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := NewDeleteSheetUseCase(repo).Execute(context.Background(), DeleteSheetInput{ID: created.Sheet.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.sheets) != 0 {
		t.Error("expected sheet removed")
	}
}
