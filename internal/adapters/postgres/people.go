package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/mentorship-admin/internal/domain"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/mentee"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/staff"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/user"
	"github.com/jsamuelsen11/mentorship-admin/internal/ports"
)

var (
	_ ports.StaffRepository  = (*StaffRepository)(nil)
	_ ports.MenteeRepository = (*MenteeRepository)(nil)
	_ ports.UserRepository   = (*UserRepository)(nil)
)

// --- staff ---

// StaffRepository stores staff members in the staff table.
type StaffRepository struct{ db *DB }

// NewStaffRepository creates a StaffRepository.
func NewStaffRepository(db *DB) *StaffRepository { return &StaffRepository{db: db} }

const staffColumns = `id, first_name, last_name, email, phone, role, position, active, created_at, updated_at`

func scanStaff(row pgx.Row) (*staff.Staff, error) {
	var s staff.Staff
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Phone, &s.Role, &s.Position, &s.Active,
		&s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *StaffRepository) List(ctx context.Context, f staff.Filter) ([]staff.Staff, error) {
	var w where
	if f.Role != "" {
		w.add("role = $%d", f.Role)
	}
	if f.Active != nil {
		w.add("active = $%d", *f.Active)
	}
	rows, err := r.db.Pool.Query(ctx, `SELECT `+staffColumns+` FROM staff`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, translate("staff", 0, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (staff.Staff, error) {
		s, err := scanStaff(row)
		return *s, err
	})
	if err != nil {
		return nil, translate("staff", 0, err)
	}
	return nonNil(out), nil
}

func (r *StaffRepository) Get(ctx context.Context, id int64) (*staff.Staff, error) {
	s, err := scanStaff(r.db.Pool.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id))
	if err != nil {
		return nil, translate("staff member", id, err)
	}
	return s, nil
}

func (r *StaffRepository) Create(ctx context.Context, s *staff.Staff) (*staff.Staff, error) {
	out, err := scanStaff(r.db.Pool.QueryRow(ctx, `
		INSERT INTO staff (first_name, last_name, email, phone, role, position, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+staffColumns,
		s.FirstName, s.LastName, s.Email, s.Phone, s.Role, s.Position, s.Active))
	if err != nil {
		return nil, translate("staff member", 0, err)
	}
	return out, nil
}

func (r *StaffRepository) Update(ctx context.Context, id int64, s *staff.Staff) (*staff.Staff, error) {
	out, err := scanStaff(r.db.Pool.QueryRow(ctx, `
		UPDATE staff SET first_name = $2, last_name = $3, email = $4, phone = $5, role = $6,
			position = $7, active = $8, updated_at = now()
		WHERE id = $1
		RETURNING `+staffColumns,
		id, s.FirstName, s.LastName, s.Email, s.Phone, s.Role, s.Position, s.Active))
	if err != nil {
		return nil, translate("staff member", id, err)
	}
	return out, nil
}

func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db.Pool, "staff", "staff member", id)
}

// --- mentees ---

// MenteeRepository stores mentees in the mentees table.
type MenteeRepository struct{ db *DB }

// NewMenteeRepository creates a MenteeRepository.
func NewMenteeRepository(db *DB) *MenteeRepository { return &MenteeRepository{db: db} }

const menteeColumns = `id, first_name, last_name, email, phone, mentor_id, program, status, start_date, notes,
	created_at, updated_at`

func scanMentee(row pgx.Row) (*mentee.Mentee, error) {
	var m mentee.Mentee
	err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.MentorID, &m.Program, &m.Status,
		&m.StartDate, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *MenteeRepository) List(ctx context.Context, f mentee.Filter) ([]mentee.Mentee, error) {
	var w where
	if f.Status != "" {
		w.add("status = $%d", f.Status)
	}
	if f.MentorID != nil {
		w.add("mentor_id = $%d", *f.MentorID)
	}
	rows, err := r.db.Pool.Query(ctx, `SELECT `+menteeColumns+` FROM mentees`+w.String()+` ORDER BY id`, w.args...)
	if err != nil {
		return nil, translate("mentee", 0, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (mentee.Mentee, error) {
		m, err := scanMentee(row)
		return *m, err
	})
	if err != nil {
		return nil, translate("mentee", 0, err)
	}
	return nonNil(out), nil
}

func (r *MenteeRepository) Get(ctx context.Context, id int64) (*mentee.Mentee, error) {
	m, err := scanMentee(r.db.Pool.QueryRow(ctx, `SELECT `+menteeColumns+` FROM mentees WHERE id = $1`, id))
	if err != nil {
		return nil, translate("mentee", id, err)
	}
	return m, nil
}

func (r *MenteeRepository) Create(ctx context.Context, m *mentee.Mentee) (*mentee.Mentee, error) {
	out, err := scanMentee(r.db.Pool.QueryRow(ctx, `
		INSERT INTO mentees (first_name, last_name, email, phone, mentor_id, program, status, start_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+menteeColumns,
		m.FirstName, m.LastName, m.Email, m.Phone, m.MentorID, m.Program, m.Status, m.StartDate, m.Notes))
	if err != nil {
		return nil, translate("mentee", 0, err)
	}
	return out, nil
}

func (r *MenteeRepository) Update(ctx context.Context, id int64, m *mentee.Mentee) (*mentee.Mentee, error) {
	out, err := scanMentee(r.db.Pool.QueryRow(ctx, `
		UPDATE mentees SET first_name = $2, last_name = $3, email = $4, phone = $5, mentor_id = $6,
			program = $7, status = $8, start_date = $9, notes = $10, updated_at = now()
		WHERE id = $1
		RETURNING `+menteeColumns,
		id, m.FirstName, m.LastName, m.Email, m.Phone, m.MentorID, m.Program, m.Status, m.StartDate, m.Notes))
	if err != nil {
		return nil, translate("mentee", id, err)
	}
	return out, nil
}

func (r *MenteeRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db.Pool, "mentees", "mentee", id)
}

// --- users ---

// UserRepository stores accounts in the users table.
type UserRepository struct{ db *DB }

// NewUserRepository creates a UserRepository.
func NewUserRepository(db *DB) *UserRepository { return &UserRepository{db: db} }

const userColumns = `id, name, email, password_hash, role, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return &u, err
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	u, err := scanUser(r.db.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, translate("user", id, err)
	}
	return u, nil
}

// GetByEmail matches emails case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := scanUser(r.db.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return nil, translate("user", 0, err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	out, err := scanUser(r.db.Pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		u.Name, u.Email, u.PasswordHash, u.Role))
	if err != nil {
		return nil, translate("user", 0, err)
	}
	return out, nil
}
