package invoice

import (
	"bytes"
	"context"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	today   = time.Date(2024, time.May, 6, 9, 30, 0, 0, time.UTC)
	addDate = time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
)

type fakeInvoiceRepository struct {
	invoices  map[int]invoice.Invoice
	companies map[string]company.Company
	nextID    int
}

func (f *fakeInvoiceRepository) List(ctx context.Context) ([]invoice.Invoice, error) {
	list := make([]invoice.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		list = append(list, inv)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakeInvoiceRepository) GetByID(ctx context.Context, id int) (invoice.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return invoice.Invoice{}, pgx.ErrNoRows
	}
	return inv, nil
}

func (f *fakeInvoiceRepository) Create(ctx context.Context, compCode string, amt decimal.Decimal) (invoice.Invoice, error) {
	if _, ok := f.companies[compCode]; !ok {
		return invoice.Invoice{}, &pgconn.PgError{Code: "23503", ConstraintName: "invoices_comp_code_fkey"}
	}
	f.nextID++
	inv := invoice.Invoice{ID: f.nextID, CompCode: compCode, Amt: amt, AddDate: addDate}
	f.invoices[inv.ID] = inv
	return inv, nil
}

func (f *fakeInvoiceRepository) Update(ctx context.Context, id int, amt decimal.Decimal, paid bool, paidDate *time.Time) (invoice.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return invoice.Invoice{}, pgx.ErrNoRows
	}
	inv.Amt, inv.Paid, inv.PaidDate = amt, paid, paidDate
	f.invoices[id] = inv
	return inv, nil
}

func (f *fakeInvoiceRepository) Delete(ctx context.Context, id int) error {
	if _, ok := f.invoices[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.invoices, id)
	return nil
}

// fakeCompanyLookup only serves GetByCode; the invoice service needs nothing else.
type fakeCompanyLookup struct {
	company.CompanyRepository
	companies map[string]company.Company
}

func (f *fakeCompanyLookup) GetByCode(ctx context.Context, code string) (company.Company, error) {
	c, ok := f.companies[code]
	if !ok {
		return company.Company{}, pgx.ErrNoRows
	}
	return c, nil
}

func newTestService() (*InvoiceServiceImpl, *fakeInvoiceRepository) {
	paidOn := time.Date(2018, time.February, 2, 0, 0, 0, 0, time.UTC)
	companies := map[string]company.Company{
		"apple": {Code: "apple", Name: "Apple", Description: "Maker of OSX."},
		"ibm":   {Code: "ibm", Name: "IBM", Description: "Big blue."},
	}
	repo := &fakeInvoiceRepository{
		companies: companies,
		nextID:    3,
		invoices: map[int]invoice.Invoice{
			1: {ID: 1, CompCode: "apple", Amt: decimal.NewFromInt(100), AddDate: addDate},
			2: {ID: 2, CompCode: "apple", Amt: decimal.NewFromInt(200), Paid: true, AddDate: addDate, PaidDate: &paidOn},
			3: {ID: 3, CompCode: "ibm", Amt: decimal.NewFromInt(300), AddDate: addDate},
		},
	}
	svc := NewInvoiceService(repo, &fakeCompanyLookup{companies: companies}).(*InvoiceServiceImpl)
	svc.now = func() time.Time { return today }
	return svc, repo
}

func boolPtr(b bool) *bool { return &b }

func amtPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestInvoiceService_List(t *testing.T) {
	svc, _ := newTestService()

	invoices, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []invoice.InvoiceListItem{
		{ID: 1, CompCode: "apple"},
		{ID: 2, CompCode: "apple"},
		{ID: 3, CompCode: "ibm"},
	}, invoices)
}

func TestInvoiceService_GetByID(t *testing.T) {
	svc, _ := newTestService()

	inv, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, inv.ID)
	assert.Equal(t, "2024-05-01", inv.AddDate)
	assert.Nil(t, inv.PaidDate)
	assert.Equal(t, company.CompanyResponse{Code: "apple", Name: "Apple", Description: "Maker of OSX."}, inv.Company)

	_, err = svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, invoice.ErrInvoiceNotFound)
}

func TestInvoiceService_Create(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), invoice.CreateInvoiceRequest{CompCode: "ibm", Amt: amtPtr(400)})

	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, "ibm", created.CompCode)
	assert.False(t, created.Paid)
	assert.Nil(t, created.PaidDate)
	assert.True(t, decimal.NewFromInt(400).Equal(created.Amt))
}

func TestInvoiceService_Create_UnknownCompany(t *testing.T) {
	svc, _ := newTestService()
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	_, err := svc.Create(context.Background(), invoice.CreateInvoiceRequest{CompCode: "nope", Amt: amtPtr(1)})

	assert.ErrorIs(t, err, invoice.ErrUnknownCompany)
	assert.Contains(t, logs.String(), `"constraint":"invoices_comp_code_fkey"`)
}

func TestInvoiceService_Update_PaidTransitions(t *testing.T) {
	t.Run("unpaid to paid stamps today", func(t *testing.T) {
		svc, _ := newTestService()
		updated, err := svc.Update(context.Background(), 1, invoice.UpdateInvoiceRequest{Amt: amtPtr(150), Paid: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, updated.Paid)
		require.NotNil(t, updated.PaidDate)
		assert.Equal(t, "2024-05-06", *updated.PaidDate)
		assert.True(t, decimal.NewFromInt(150).Equal(updated.Amt))
	})

	t.Run("paid to unpaid clears paid_date", func(t *testing.T) {
		svc, _ := newTestService()
		updated, err := svc.Update(context.Background(), 2, invoice.UpdateInvoiceRequest{Amt: amtPtr(200), Paid: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, updated.Paid)
		assert.Nil(t, updated.PaidDate)
	})

	t.Run("paid stays paid keeps paid_date", func(t *testing.T) {
		svc, _ := newTestService()
		updated, err := svc.Update(context.Background(), 2, invoice.UpdateInvoiceRequest{Amt: amtPtr(250), Paid: boolPtr(true)})
		require.NoError(t, err)
		require.NotNil(t, updated.PaidDate)
		assert.Equal(t, "2018-02-02", *updated.PaidDate)
	})

	t.Run("unpaid stays unpaid", func(t *testing.T) {
		svc, _ := newTestService()
		updated, err := svc.Update(context.Background(), 3, invoice.UpdateInvoiceRequest{Amt: amtPtr(300), Paid: boolPtr(false)})
		require.NoError(t, err)
		assert.Nil(t, updated.PaidDate)
	})
}

func TestInvoiceService_Update_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), 999, invoice.UpdateInvoiceRequest{Amt: amtPtr(1), Paid: boolPtr(true)})

	assert.ErrorIs(t, err, invoice.ErrInvoiceNotFound)
}

func TestInvoiceService_Delete(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.NotContains(t, repo.invoices, 3)

	assert.ErrorIs(t, svc.Delete(context.Background(), 3), invoice.ErrInvoiceNotFound)
}
