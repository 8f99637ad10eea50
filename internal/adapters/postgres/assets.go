package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/document"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/inventory"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

var (
	_ ports.InventoryRepository = (*InventoryRepository)(nil)
	_ ports.DocumentRepository  = (*DocumentRepository)(nil)
)

// --- inventory ---

// InventoryRepository stores inventory items. Stock status is derived on
// read and has no column.
type InventoryRepository struct{ db *DB }

// NewInventoryRepository creates an InventoryRepository.
func NewInventoryRepository(db *DB) *InventoryRepository { return &InventoryRepository{db: db} }

const inventoryColumns = `id, name, sku, category, quantity, reorder_level, max_level, unit_cost_cents, location,
	created_at, updated_at`

func scanItem(row pgx.Row) (*inventory.Item, error) {
	var it inventory.Item
	err := row.Scan(&it.ID, &it.Name, &it.SKU, &it.Category, &it.Quantity, &it.ReorderLevel, &it.MaxLevel,
		&it.UnitCostCents, &it.Location, &it.CreatedAt, &it.UpdatedAt)
	return &it, err
}

func (r *InventoryRepository) List(ctx context.Context, f inventory.Filter) ([]inventory.Item, error) {
	var w where
	if f.Category != "" {
		w.add("category = $%d", f.Category)
	}
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, translate("inventory item", 0, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (inventory.Item, error) {
		it, err := scanItem(row)
		return *it, err
	})
	if err != nil {
		return nil, translate("inventory item", 0, err)
	}
	return nonNil(out), nil
}

func (r *InventoryRepository) Get(ctx context.Context, id int64) (*inventory.Item, error) {
	it, err := scanItem(r.db.Pool.QueryRow(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE id = $1`, id))
	if err != nil {
		return nil, translate("inventory item", id, err)
	}
	return it, nil
}

func (r *InventoryRepository) Create(ctx context.Context, it *inventory.Item) (*inventory.Item, error) {
	out, err := scanItem(r.db.Pool.QueryRow(ctx, `
		INSERT INTO inventory_items (name, sku, category, quantity, reorder_level, max_level, unit_cost_cents, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+inventoryColumns,
		it.Name, it.SKU, it.Category, it.Quantity, it.ReorderLevel, it.MaxLevel, it.UnitCostCents, it.Location))
	if err != nil {
		return nil, translate("inventory item", 0, err)
	}
	return out, nil
}

func (r *InventoryRepository) Update(ctx context.Context, id int64, it *inventory.Item) (*inventory.Item, error) {
	out, err := scanItem(r.db.Pool.QueryRow(ctx, `
		UPDATE inventory_items SET name = $2, sku = $3, category = $4, quantity = $5, reorder_level = $6,
			max_level = $7, unit_cost_cents = $8, location = $9, updated_at = now()
		WHERE id = $1
		RETURNING `+inventoryColumns,
		id, it.Name, it.SKU, it.Category, it.Quantity, it.ReorderLevel, it.MaxLevel, it.UnitCostCents, it.Location))
	if err != nil {
		return nil, translate("inventory item", id, err)
	}
	return out, nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db.Pool, "inventory_items", "inventory item", id)
}

// --- documents ---

// DocumentRepository stores document metadata. Content lives in the blob
// store.
type DocumentRepository struct{ db *DB }

// NewDocumentRepository creates a DocumentRepository.
func NewDocumentRepository(db *DB) *DocumentRepository { return &DocumentRepository{db: db} }

const documentColumns = `id, title, class, category, file_name, content_type, size, storage_key, uploaded_by,
	created_at, updated_at`

func scanDocument(row pgx.Row) (*document.Document, error) {
	var d document.Document
	var class string
	err := row.Scan(&d.ID, &d.Title, &class, &d.Category, &d.FileName, &d.ContentType, &d.Size, &d.StorageKey,
		&d.UploadedBy, &d.CreatedAt, &d.UpdatedAt)
	d.Class = catalog.FileClass(class)
	return &d, err
}

func (r *DocumentRepository) List(ctx context.Context, f document.Filter) ([]document.Document, error) {
	var w where
	if f.Class != "" {
		w.add("class = $%d", string(f.Class))
	}
	if f.Category != "" {
		w.add("category = $%d", f.Category)
	}
	rows, err := r.db.Pool.Query(ctx, `SELECT `+documentColumns+` FROM documents`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, translate("document", 0, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (document.Document, error) {
		d, err := scanDocument(row)
		return *d, err
	})
	if err != nil {
		return nil, translate("document", 0, err)
	}
	return nonNil(out), nil
}

func (r *DocumentRepository) Get(ctx context.Context, id int64) (*document.Document, error) {
	d, err := scanDocument(r.db.Pool.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
	if err != nil {
		return nil, translate("document", id, err)
	}
	return d, nil
}

func (r *DocumentRepository) Create(ctx context.Context, d *document.Document) (*document.Document, error) {
	out, err := scanDocument(r.db.Pool.QueryRow(ctx, `
		INSERT INTO documents (title, class, category, file_name, content_type, size, storage_key, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+documentColumns,
		d.Title, string(d.Class), d.Category, d.FileName, d.ContentType, d.Size, d.StorageKey, d.UploadedBy))
	if err != nil {
		return nil, translate("document", 0, err)
	}
	return out, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db.Pool, "documents", "document", id)
}

// Store bundles one repository per record type over a shared pool.
type Store struct {
	Staff     *StaffRepository
	Mentees   *MenteeRepository
	Invoices  *InvoiceRepository
	Receipts  *ReceiptRepository
	Inventory *InventoryRepository
	Documents *DocumentRepository
	Users     *UserRepository
}

// NewStore creates every repository over db.
func NewStore(db *DB) *Store {
	return &Store{
		Staff:     NewStaffRepository(db),
		Mentees:   NewMenteeRepository(db),
		Invoices:  NewInvoiceRepository(db),
		Receipts:  NewReceiptRepository(db),
		Inventory: NewInventoryRepository(db),
		Documents: NewDocumentRepository(db),
		Users:     NewUserRepository(db),
	}
}
