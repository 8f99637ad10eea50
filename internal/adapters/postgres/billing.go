package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/invoice"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/lineitem"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/receipt"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

var (
	_ ports.InvoiceRepository = (*InvoiceRepository)(nil)
	_ ports.ReceiptRepository = (*ReceiptRepository)(nil)
)

// itemTable describes a line item table and its parent key column.
type itemTable struct {
	name   string
	parent string
}

var (
	invoiceItems = itemTable{name: "invoice_items", parent: "invoice_id"}
	receiptItems = itemTable{name: "receipt_items", parent: "receipt_id"}
)

// replace deletes the parent's items and inserts items in order, setting
// their IDs.
func (t itemTable) replace(ctx context.Context, q querier, parentID int64, items []lineitem.Item) error {
	if _, err := q.Exec(ctx, `DELETE FROM `+t.name+` WHERE `+t.parent+` = $1`, parentID); err != nil {
		return err
	}

	b := &pgx.Batch{}
	for i := range items {
		b.Queue(`
			INSERT INTO `+t.name+` (`+t.parent+`, position, description, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			parentID, i, items[i].Description, items[i].Quantity, items[i].UnitPriceCents,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&items[i].ID)
		})
	}
	return q.SendBatch(ctx, b).Close()
}

// load returns the items of each parent, in position order.
func (t itemTable) load(ctx context.Context, q querier, parentIDs []int64) (map[int64][]lineitem.Item, error) {
	rows, err := q.Query(ctx, `
		SELECT `+t.parent+`, id, description, quantity, unit_price_cents
		FROM `+t.name+`
		WHERE `+t.parent+` = ANY($1)
		ORDER BY `+t.parent+`, position`, parentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]lineitem.Item, len(parentIDs))
	for rows.Next() {
		var parent int64
		var it lineitem.Item
		if err := rows.Scan(&parent, &it.ID, &it.Description, &it.Quantity, &it.UnitPriceCents); err != nil {
			return nil, err
		}
		out[parent] = append(out[parent], it)
	}
	return out, rows.Err()
}

// --- invoices ---

// InvoiceRepository stores invoices and their line items. Writes touching
// both tables run in one transaction.
type InvoiceRepository struct{ db *DB }

// NewInvoiceRepository creates an InvoiceRepository.
func NewInvoiceRepository(db *DB) *InvoiceRepository { return &InvoiceRepository{db: db} }

const invoiceColumns = `id, number, client_name, issue_date, due_date, status, notes, created_at, updated_at`

func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(&inv.ID, &inv.Number, &inv.ClientName, &inv.IssueDate, &inv.DueDate, &inv.Status, &inv.Notes,
		&inv.CreatedAt, &inv.UpdatedAt)
	return &inv, err
}

func (r *InvoiceRepository) List(ctx context.Context, f invoice.Filter) ([]invoice.Invoice, error) {
	var w where
	if f.Status != "" {
		w.add("status = $%d", f.Status)
	}
	rows, err := r.db.Pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, translate("invoice", 0, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (invoice.Invoice, error) {
		inv, err := scanInvoice(row)
		return *inv, err
	})
	if err != nil {
		return nil, translate("invoice", 0, err)
	}

	ids := make([]int64, len(out))
	for i := range out {
		ids[i] = out[i].ID
	}
	items, err := invoiceItems.load(ctx, r.db.Pool, ids)
	if err != nil {
		return nil, translate("invoice", 0, err)
	}
	for i := range out {
		out[i].Items = items[out[i].ID]
	}
	return nonNil(out), nil
}

func (r *InvoiceRepository) Get(ctx context.Context, id int64) (*invoice.Invoice, error) {
	inv, err := scanInvoice(r.db.Pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		return nil, translate("invoice", id, err)
	}
	items, err := invoiceItems.load(ctx, r.db.Pool, []int64{id})
	if err != nil {
		return nil, translate("invoice", id, err)
	}
	inv.Items = items[id]
	return inv, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, in *invoice.Invoice) (*invoice.Invoice, error) {
	var out *invoice.Invoice
	err := pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		var err error
		out, err = scanInvoice(tx.QueryRow(ctx, `
			INSERT INTO invoices (number, client_name, issue_date, due_date, status, notes)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+invoiceColumns,
			in.Number, in.ClientName, in.IssueDate, in.DueDate, in.Status, in.Notes))
		if err != nil {
			return err
		}
		out.Items = append([]lineitem.Item(nil), in.Items...)
		return invoiceItems.replace(ctx, tx, out.ID, out.Items)
	})
	if err != nil {
		return nil, translate("invoice", 0, err)
	}
	return out, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, id int64, in *invoice.Invoice) (*invoice.Invoice, error) {
	var out *invoice.Invoice
	err := pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		var err error
		out, err = scanInvoice(tx.QueryRow(ctx, `
			UPDATE invoices SET number = $2, client_name = $3, issue_date = $4, due_date = $5, status = $6,
				notes = $7, updated_at = now()
			WHERE id = $1
			RETURNING `+invoiceColumns,
			id, in.Number, in.ClientName, in.IssueDate, in.DueDate, in.Status, in.Notes))
		if err != nil {
			return err
		}
		out.Items = append([]lineitem.Item(nil), in.Items...)
		return invoiceItems.replace(ctx, tx, id, out.Items)
	})
	if err != nil {
		return nil, translate("invoice", id, err)
	}
	return out, nil
}

// Delete removes the invoice; its items go with it through ON DELETE CASCADE.
func (r *InvoiceRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db.Pool, "invoices", "invoice", id)
}

// --- receipts ---

// ReceiptRepository stores receipts and their line items.
type ReceiptRepository struct{ db *DB }

// NewReceiptRepository creates a ReceiptRepository.
func NewReceiptRepository(db *DB) *ReceiptRepository { return &ReceiptRepository{db: db} }

const receiptColumns = `id, vendor, purchase_date, category, status, document_id, created_at, updated_at`

func scanReceipt(row pgx.Row) (*receipt.Receipt, error) {
	var rc receipt.Receipt
	err := row.Scan(&rc.ID, &rc.Vendor, &rc.PurchaseDate, &rc.Category, &rc.Status, &rc.DocumentID,
		&rc.CreatedAt, &rc.UpdatedAt)
	return &rc, err
}

func (r *ReceiptRepository) List(ctx context.Context, f receipt.Filter) ([]receipt.Receipt, error) {
	var w where
	if f.Status != "" {
		w.add("status = $%d", f.Status)
	}
	if f.Category != "" {
		w.add("category = $%d", f.Category)
	}
	rows, err := r.db.Pool.Query(ctx, `SELECT `+receiptColumns+` FROM receipts`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, translate("receipt", 0, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (receipt.Receipt, error) {
		rc, err := scanReceipt(row)
		return *rc, err
	})
	if err != nil {
		return nil, translate("receipt", 0, err)
	}

	ids := make([]int64, len(out))
	for i := range out {
		ids[i] = out[i].ID
	}
	items, err := receiptItems.load(ctx, r.db.Pool, ids)
	if err != nil {
		return nil, translate("receipt", 0, err)
	}
	for i := range out {
		out[i].Items = items[out[i].ID]
	}
	return nonNil(out), nil
}

func (r *ReceiptRepository) Get(ctx context.Context, id int64) (*receipt.Receipt, error) {
	rc, err := scanReceipt(r.db.Pool.QueryRow(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE id = $1`, id))
	if err != nil {
		return nil, translate("receipt", id, err)
	}
	items, err := receiptItems.load(ctx, r.db.Pool, []int64{id})
	if err != nil {
		return nil, translate("receipt", id, err)
	}
	rc.Items = items[id]
	return rc, nil
}

func (r *ReceiptRepository) Create(ctx context.Context, in *receipt.Receipt) (*receipt.Receipt, error) {
	var out *receipt.Receipt
	err := pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		var err error
		out, err = scanReceipt(tx.QueryRow(ctx, `
			INSERT INTO receipts (vendor, purchase_date, category, status, document_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+receiptColumns,
			in.Vendor, in.PurchaseDate, in.Category, in.Status, in.DocumentID))
		if err != nil {
			return err
		}
		out.Items = append([]lineitem.Item(nil), in.Items...)
		return receiptItems.replace(ctx, tx, out.ID, out.Items)
	})
	if err != nil {
		return nil, translate("receipt", 0, err)
	}
	return out, nil
}

func (r *ReceiptRepository) Update(ctx context.Context, id int64, in *receipt.Receipt) (*receipt.Receipt, error) {
	var out *receipt.Receipt
	err := pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		var err error
		out, err = scanReceipt(tx.QueryRow(ctx, `
			UPDATE receipts SET vendor = $2, purchase_date = $3, category = $4, status = $5,
				document_id = $6, updated_at = now()
			WHERE id = $1
			RETURNING `+receiptColumns,
			id, in.Vendor, in.PurchaseDate, in.Category, in.Status, in.DocumentID))
		if err != nil {
			return err
		}
		out.Items = append([]lineitem.Item(nil), in.Items...)
		return receiptItems.replace(ctx, tx, id, out.Items)
	})
	if err != nil {
		return nil, translate("receipt", id, err)
	}
	return out, nil
}

func (r *ReceiptRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db.Pool, "receipts", "receipt", id)
}

