package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/service"
)

const uniqueViolation = "23505"

type PostgresStore struct {
	DB *sql.DB
}

var _ service.Store = (*PostgresStore)(nil)

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func affected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

const menuColumns = `id, name, description, price, category, image, is_vegetarian, is_spicy,
	preparation_time, in_stock, inventory, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row scanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.Image,
		&item.IsVegetarian, &item.IsSpicy, &item.PreparationTime, &item.InStock, &item.Inventory,
		&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresStore) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+menuColumns+` FROM menu_items ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *PostgresStore) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRowContext(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

func (r *PostgresStore) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO menu_items (`+menuColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		item.ID, item.Name, item.Description, item.Price, item.Category, item.Image,
		item.IsVegetarian, item.IsSpicy, item.PreparationTime, item.InStock, item.Inventory,
		item.CreatedAt, item.UpdatedAt)
	return err
}

func (r *PostgresStore) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return affected(r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, category=$4, image=$5, is_vegetarian=$6,
		    is_spicy=$7, preparation_time=$8, in_stock=$9, inventory=$10, updated_at=$11
		WHERE id=$12`,
		item.Name, item.Description, item.Price, item.Category, item.Image, item.IsVegetarian,
		item.IsSpicy, item.PreparationTime, item.InStock, item.Inventory, item.UpdatedAt, item.ID))
}

func (r *PostgresStore) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const orderColumns = `id, table_id, table_number, customer_id, status, order_type, payment_mode,
	total_amount, loyalty_points_earned, scheduled_time, created_at, updated_at`

func scanOrder(row scanner) (*domain.Order, error) {
	var (
		o         domain.Order
		scheduled sql.NullTime
	)
	err := row.Scan(&o.ID, &o.TableID, &o.TableNumber, &o.CustomerID, &o.Status, &o.OrderType, &o.PaymentMode,
		&o.TotalAmount, &o.LoyaltyPointsEarned, &scheduled, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.ScheduledTime = nullTime(scheduled)
	return &o, nil
}

// CreateOrder writes the order and its lines in one transaction.
func (r *PostgresStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var scheduled sql.NullTime
	if order.ScheduledTime != nil {
		scheduled = sql.NullTime{Time: *order.ScheduledTime, Valid: true}
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		order.ID, order.TableID, order.TableNumber, order.CustomerID, order.Status, order.OrderType,
		order.PaymentMode, order.TotalAmount, order.LoyaltyPointsEarned, scheduled,
		order.CreatedAt, order.UpdatedAt); err != nil {
		return err
	}

	for i, line := range order.Lines {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_lines (order_id, position, menu_item_id, name, quantity, unit_price, pack)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			order.ID, i, line.MenuItemID, line.Name, line.Quantity, line.UnitPrice, line.Pack); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresStore) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	lines, err := r.orderLines(ctx, `WHERE order_id = $1`, id)
	if err != nil {
		return nil, err
	}
	order.Lines = lines[order.ID]
	return order, nil
}

func (r *PostgresStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.orderLines(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = lines[orders[i].ID]
	}
	return orders, nil
}

func (r *PostgresStore) orderLines(ctx context.Context, where string, args ...any) (map[string][]domain.OrderLine, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT order_id, menu_item_id, name, quantity, unit_price, pack
		FROM order_lines `+where+`
		ORDER BY order_id, position`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make(map[string][]domain.OrderLine)
	for rows.Next() {
		var (
			orderID string
			line    domain.OrderLine
		)
		if err := rows.Scan(&orderID, &line.MenuItemID, &line.Name, &line.Quantity, &line.UnitPrice, &line.Pack); err != nil {
			return nil, err
		}
		lines[orderID] = append(lines[orderID], line)
	}
	return lines, rows.Err()
}

// UpdateOrder persists status and payment mode. Lines are immutable once placed.
func (r *PostgresStore) UpdateOrder(ctx context.Context, order *domain.Order) error {
	return affected(r.DB.ExecContext(ctx, `
		UPDATE orders SET status=$1, payment_mode=$2, updated_at=$3 WHERE id=$4`,
		order.Status, order.PaymentMode, order.UpdatedAt, order.ID))
}

const tableColumns = `id, number, seats, status, current_order_id, reserved_by, reserved_until, created_at`

func scanTable(row scanner) (*domain.Table, error) {
	var t domain.Table
	if err := row.Scan(&t.ID, &t.Number, &t.Seats, &t.Status, &t.CurrentOrderID, &t.ReservedBy, &t.ReservedUntil, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresStore) CreateTable(ctx context.Context, table *domain.Table) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO restaurant_tables (`+tableColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		table.ID, table.Number, table.Seats, table.Status, table.CurrentOrderID, table.ReservedBy,
		table.ReservedUntil, table.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %d", domain.ErrDuplicateTableNumber, table.Number)
	}
	return err
}

func (r *PostgresStore) GetTable(ctx context.Context, id string) (*domain.Table, error) {
	t, err := scanTable(r.DB.QueryRowContext(ctx, `SELECT `+tableColumns+` FROM restaurant_tables WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *PostgresStore) GetTableByNumber(ctx context.Context, number int) (*domain.Table, error) {
	t, err := scanTable(r.DB.QueryRowContext(ctx, `SELECT `+tableColumns+` FROM restaurant_tables WHERE number = $1`, number))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *PostgresStore) ListTables(ctx context.Context) ([]domain.Table, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+tableColumns+` FROM restaurant_tables ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		tables = append(tables, *t)
	}
	return tables, rows.Err()
}

func (r *PostgresStore) UpdateTable(ctx context.Context, table *domain.Table) error {
	err := affected(r.DB.ExecContext(ctx, `
		UPDATE restaurant_tables
		SET number=$1, seats=$2, status=$3, current_order_id=$4, reserved_by=$5, reserved_until=$6
		WHERE id=$7`,
		table.Number, table.Seats, table.Status, table.CurrentOrderID, table.ReservedBy, table.ReservedUntil, table.ID))
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %d", domain.ErrDuplicateTableNumber, table.Number)
	}
	return err
}

func (r *PostgresStore) DeleteTable(ctx context.Context, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM restaurant_tables WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const requestColumns = `id, table_number, request_type, status, created_at, completed_at`

func scanServiceRequest(row scanner) (*domain.ServiceRequest, error) {
	var (
		req       domain.ServiceRequest
		completed sql.NullTime
	)
	if err := row.Scan(&req.ID, &req.TableNumber, &req.RequestType, &req.Status, &req.CreatedAt, &completed); err != nil {
		return nil, err
	}
	req.CompletedAt = nullTime(completed)
	return &req, nil
}

func completedAt(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func (r *PostgresStore) CreateServiceRequest(ctx context.Context, req *domain.ServiceRequest) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO service_requests (`+requestColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		req.ID, req.TableNumber, req.RequestType, req.Status, req.CreatedAt, completedAt(req.CompletedAt))
	return err
}

func (r *PostgresStore) GetServiceRequest(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	req, err := scanServiceRequest(r.DB.QueryRowContext(ctx, `SELECT `+requestColumns+` FROM service_requests WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return req, nil
}

func (r *PostgresStore) ListServiceRequests(ctx context.Context) ([]domain.ServiceRequest, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+requestColumns+` FROM service_requests ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := []domain.ServiceRequest{}
	for rows.Next() {
		req, err := scanServiceRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func (r *PostgresStore) UpdateServiceRequest(ctx context.Context, req *domain.ServiceRequest) error {
	return affected(r.DB.ExecContext(ctx, `
		UPDATE service_requests SET status=$1, completed_at=$2 WHERE id=$3`,
		req.Status, completedAt(req.CompletedAt), req.ID))
}

const billingColumns = `id, table_number, status, created_at, completed_at`

func scanBillingRequest(row scanner) (*domain.BillingRequest, error) {
	var (
		req       domain.BillingRequest
		completed sql.NullTime
	)
	if err := row.Scan(&req.ID, &req.TableNumber, &req.Status, &req.CreatedAt, &completed); err != nil {
		return nil, err
	}
	req.CompletedAt = nullTime(completed)
	return &req, nil
}

func (r *PostgresStore) CreateBillingRequest(ctx context.Context, req *domain.BillingRequest) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO billing_requests (`+billingColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		req.ID, req.TableNumber, req.Status, req.CreatedAt, completedAt(req.CompletedAt))
	return err
}

func (r *PostgresStore) GetBillingRequest(ctx context.Context, id string) (*domain.BillingRequest, error) {
	req, err := scanBillingRequest(r.DB.QueryRowContext(ctx, `SELECT `+billingColumns+` FROM billing_requests WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return req, nil
}

func (r *PostgresStore) ListBillingRequests(ctx context.Context) ([]domain.BillingRequest, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+billingColumns+` FROM billing_requests ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := []domain.BillingRequest{}
	for rows.Next() {
		req, err := scanBillingRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func (r *PostgresStore) UpdateBillingRequest(ctx context.Context, req *domain.BillingRequest) error {
	return affected(r.DB.ExecContext(ctx, `
		UPDATE billing_requests SET status=$1, completed_at=$2 WHERE id=$3`,
		req.Status, completedAt(req.CompletedAt), req.ID))
}

const reservationColumns = `id, customer_name, customer_phone, res_date, res_time, party_size,
	special_requests, table_number, status, created_at`

func scanReservation(row scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := row.Scan(&res.ID, &res.CustomerName, &res.CustomerPhone, &res.Date, &res.Time, &res.PartySize,
		&res.SpecialRequests, &res.TableNumber, &res.Status, &res.CreatedAt); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *PostgresStore) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reservations (`+reservationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		res.ID, res.CustomerName, res.CustomerPhone, res.Date, res.Time, res.PartySize,
		res.SpecialRequests, res.TableNumber, res.Status, res.CreatedAt)
	return err
}

func (r *PostgresStore) GetReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := scanReservation(r.DB.QueryRowContext(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return res, nil
}

func (r *PostgresStore) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY res_date, res_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *res)
	}
	return list, rows.Err()
}

func (r *PostgresStore) UpdateReservation(ctx context.Context, res *domain.Reservation) error {
	return affected(r.DB.ExecContext(ctx, `
		UPDATE reservations SET status=$1, table_number=$2 WHERE id=$3`,
		res.Status, res.TableNumber, res.ID))
}

func (r *PostgresStore) CreateFeedback(ctx context.Context, fb *domain.Feedback) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO feedback (id, table_number, order_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		fb.ID, fb.TableNumber, fb.OrderID, fb.Rating, fb.Comment, fb.CreatedAt)
	return err
}

func (r *PostgresStore) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, table_number, order_id, rating, comment, created_at
		FROM feedback
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Feedback{}
	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(&fb.ID, &fb.TableNumber, &fb.OrderID, &fb.Rating, &fb.Comment, &fb.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, fb)
	}
	return list, rows.Err()
}

func (r *PostgresStore) GetLoyaltyAccount(ctx context.Context, customerID string) (*domain.LoyaltyAccount, error) {
	var acc domain.LoyaltyAccount
	err := r.DB.QueryRowContext(ctx, `
		SELECT customer_id, points, last_updated FROM loyalty_points WHERE customer_id = $1`, customerID).
		Scan(&acc.CustomerID, &acc.Points, &acc.LastUpdated)
	if err != nil {
		return nil, notFound(err)
	}
	return &acc, nil
}

func (r *PostgresStore) SaveLoyaltyAccount(ctx context.Context, account *domain.LoyaltyAccount) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO loyalty_points (customer_id, points, last_updated)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id) DO UPDATE SET points = EXCLUDED.points, last_updated = EXCLUDED.last_updated`,
		account.CustomerID, account.Points, account.LastUpdated)
	return err
}

// EnsureSchema creates every table the store needs. It is safe to run on each start.
func (r *PostgresStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL CHECK (price > 0),
			category TEXT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			is_vegetarian BOOLEAN NOT NULL DEFAULT FALSE,
			is_spicy BOOLEAN NOT NULL DEFAULT FALSE,
			preparation_time INT NOT NULL DEFAULT 15 CHECK (preparation_time >= 1),
			in_stock BOOLEAN NOT NULL DEFAULT TRUE,
			inventory INT NOT NULL DEFAULT 100 CHECK (inventory >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS restaurant_tables (
			id TEXT PRIMARY KEY,
			number INT NOT NULL UNIQUE CHECK (number >= 1),
			seats INT NOT NULL CHECK (seats BETWEEN 1 AND 20),
			status TEXT NOT NULL DEFAULT 'available',
			current_order_id TEXT NOT NULL DEFAULT '',
			reserved_by TEXT NOT NULL DEFAULT '',
			reserved_until TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			table_id TEXT NOT NULL DEFAULT '',
			table_number INT NOT NULL DEFAULT 0,
			customer_id TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			order_type TEXT NOT NULL,
			payment_mode TEXT NOT NULL,
			total_amount NUMERIC(12,2) NOT NULL,
			loyalty_points_earned INT NOT NULL DEFAULT 0,
			scheduled_time TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_lines (
			order_id TEXT NOT NULL REFERENCES orders(id),
			position INT NOT NULL,
			menu_item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			quantity INT NOT NULL CHECK (quantity >= 1),
			unit_price NUMERIC(10,2) NOT NULL CHECK (unit_price >= 0),
			pack BOOLEAN NOT NULL DEFAULT FALSE,
			PRIMARY KEY (order_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS service_requests (
			id TEXT PRIMARY KEY,
			table_number INT NOT NULL,
			request_type TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS billing_requests (
			id TEXT PRIMARY KEY,
			table_number INT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			res_date TEXT NOT NULL,
			res_time TEXT NOT NULL,
			party_size INT NOT NULL CHECK (party_size BETWEEN 1 AND 20),
			special_requests TEXT NOT NULL DEFAULT '',
			table_number INT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id TEXT PRIMARY KEY,
			table_number INT NOT NULL,
			order_id TEXT NOT NULL DEFAULT '',
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS loyalty_points (
			customer_id TEXT PRIMARY KEY,
			points INT NOT NULL DEFAULT 0 CHECK (points >= 0),
			last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at)",
		"CREATE INDEX IF NOT EXISTS idx_service_requests_status ON service_requests (status)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
