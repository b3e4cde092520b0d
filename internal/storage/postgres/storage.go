package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/AshisChetia/bookmart/internal/domain/errors"
	"github.com/AshisChetia/bookmart/internal/domain/model"
	"github.com/AshisChetia/bookmart/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage uses. Tests swap in
// a pgxmock pool through it.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// newPgxPool is a seam for tests.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type bookRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Books() repository.BookRepository {
	return &bookRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            fullname TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            role TEXT NOT NULL DEFAULT 'user',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS books (
            id SERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            author TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            stock INT NOT NULL DEFAULT 0,
            category TEXT NOT NULL DEFAULT '',
            seller_id BIGINT NOT NULL,
            image_url TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            buyer_id BIGINT NOT NULL,
            seller_id BIGINT NOT NULL,
            book_id BIGINT NOT NULL,
            quantity INT NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            shipping_address TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_seller ON orders(seller_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_buyer ON orders(buyer_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_book ON orders(book_id)`,
		`CREATE INDEX IF NOT EXISTS idx_books_seller ON books(seller_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const bookColumns = `id, title, author, price, stock, category, seller_id, image_url, created_at`

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.Stock, &b.Category, &b.SellerID, &b.ImageURL, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBooks(rows pgx.Rows) ([]model.Book, error) {
	defer rows.Close()

	var result []model.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- UserRepository implementation ---

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, fullname, email, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.FullName, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- BookRepository implementation ---

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books WHERE id=$1`
	b, err := scanBook(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) CountBySeller(ctx context.Context, sellerID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM books WHERE seller_id=$1`
	var count int
	if err := r.storage.pool.QueryRow(ctx, query, sellerID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bookRepository) FindByCategories(ctx context.Context, categories []string, excludeIDs []int64, limit int) ([]model.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books
                   WHERE category = ANY($1) AND NOT (id = ANY($2))
                   ORDER BY id
                   LIMIT $3`
	rows, err := r.storage.pool.Query(ctx, query, categories, idList(excludeIDs), limit)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

func (r *bookRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const query = `SELECT ` + bookColumns + ` FROM books
                   WHERE id = ANY($1)
                   ORDER BY array_position($1, id)`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

func (r *bookRepository) FindAnyExcluding(ctx context.Context, excludeIDs []int64, limit int) ([]model.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books
                   WHERE NOT (id = ANY($1))
                   ORDER BY id
                   LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, idList(excludeIDs), limit)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

func (r *bookRepository) List(ctx context.Context, category string, limit int) ([]model.Book, error) {
	const query = `SELECT ` + bookColumns + ` FROM books
                   WHERE $1 = '' OR LOWER(category) = LOWER($1)
                   ORDER BY created_at DESC, id DESC
                   LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, category, limit)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

func (r *bookRepository) CategoriesInScanOrder(ctx context.Context) ([]string, error) {
	const query = `SELECT category FROM books ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) ListBySeller(ctx context.Context, sellerID int64) ([]model.SellerOrder, error) {
	const query = `SELECT o.id, o.buyer_id, o.seller_id, o.book_id, o.quantity, o.total_amount,
                          o.status, o.shipping_address, o.created_at, b.category
                   FROM orders o
                   LEFT JOIN books b ON b.id = o.book_id
                   WHERE o.seller_id=$1
                   ORDER BY o.created_at, o.id`
	rows, err := r.storage.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SellerOrder
	for rows.Next() {
		var o model.SellerOrder
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.SellerID, &o.BookID, &o.Quantity, &o.TotalAmount,
			&o.Status, &o.ShippingAddress, &o.CreatedAt, &o.BookCategory); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// unknownBookTitle stands in for books deleted after being ordered.
const unknownBookTitle = "Unknown Book"

func (r *orderRepository) TopBooksBySeller(ctx context.Context, sellerID int64, since time.Time, limit int) ([]model.RankedBook, error) {
	const query = `SELECT o.book_id, b.title, b.author, b.image_url, b.price,
                          SUM(o.quantity), SUM(o.total_amount), COUNT(*)
                   FROM orders o
                   LEFT JOIN books b ON b.id = o.book_id
                   WHERE o.seller_id=$1 AND ($2::timestamptz IS NULL OR o.created_at >= $2)
                   GROUP BY o.book_id, b.title, b.author, b.image_url, b.price
                   ORDER BY SUM(o.quantity) DESC, o.book_id
                   LIMIT $3`
	var sinceArg *time.Time
	if !since.IsZero() {
		sinceArg = &since
	}
	rows, err := r.storage.pool.Query(ctx, query, sellerID, sinceArg, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.RankedBook
	for rows.Next() {
		var (
			rb                      model.RankedBook
			title, author, imageURL *string
			price                   *float64
		)
		if err := rows.Scan(&rb.BookID, &title, &author, &imageURL, &price,
			&rb.TotalQuantitySold, &rb.TotalRevenue, &rb.OrderCount); err != nil {
			return nil, err
		}
		rb.Title = unknownBookTitle
		if title != nil {
			rb.Title = *title
		}
		if author != nil {
			rb.Author = *author
		}
		if imageURL != nil {
			rb.ImageURL = *imageURL
		}
		if price != nil {
			rb.Price = *price
		}
		result = append(result, rb)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) PurchasesByBuyer(ctx context.Context, buyerID int64) ([]model.Purchase, error) {
	const query = `SELECT o.book_id, b.category
                   FROM orders o
                   LEFT JOIN books b ON b.id = o.book_id
                   WHERE o.buyer_id=$1
                   ORDER BY o.created_at, o.id`
	rows, err := r.storage.pool.Query(ctx, query, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Purchase
	for rows.Next() {
		var p model.Purchase
		if err := rows.Scan(&p.BookID, &p.Category); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) TopSellingBookIDs(ctx context.Context, limit int) ([]int64, error) {
	const query = `SELECT book_id FROM orders
                   GROUP BY book_id
                   ORDER BY SUM(quantity) DESC, book_id
                   LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// idList keeps = ANY($n) well-typed when there is nothing to exclude.
func idList(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
