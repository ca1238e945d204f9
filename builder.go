package sqlcraft

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/avisio/sqlcraft/internal/sqlerr"
)

const defaultIDColumn = "ID"

// Builder is the statement builder facade. It binds a dialect, connection
// info, an id column convention and a value serializer once; the
// configuration is immutable afterwards and may be shared read only across
// goroutines. Every statement instance the builder creates is single use.
type Builder struct {
	dialect             Dialect
	conn                ConnectionInfo
	db                  *sql.DB
	ownsDB              bool
	serializer          ValueSerializer
	idColumn            string
	closeAfterStatement bool
	middlewares         []Middleware
	schemaCache         *cache.Cache
	cacheTTL            time.Duration

	mu       sync.Mutex
	creating map[string]struct{}
	closed   bool
}

// Option configures a builder at construction time.
type Option func(*Builder) error

// WithSerializer replaces the default value serializer.
func WithSerializer(s ValueSerializer) Option {
	return func(b *Builder) error {
		b.serializer = s
		return nil
	}
}

// WithIDColumn sets the global id column name of this builder.
func WithIDColumn(name string) Option {
	return func(b *Builder) error {
		b.idColumn = strings.ToUpper(name)
		return nil
	}
}

// WithCloseAfterStatement releases each statement's executor right after
// execution.
func WithCloseAfterStatement() Option {
	return func(b *Builder) error {
		b.closeAfterStatement = true
		return nil
	}
}

// WithMiddleware appends middlewares to every statement's handler chain.
func WithMiddleware(ms ...Middleware) Option {
	return func(b *Builder) error {
		b.middlewares = append(b.middlewares, ms...)
		return nil
	}
}

// WithSchemaCacheTTL sets how long table and column existence checks are
// cached.
func WithSchemaCacheTTL(ttl time.Duration) Option {
	return func(b *Builder) error {
		b.cacheTTL = ttl
		return nil
	}
}

// NewBuilder opens a database handle from the connection info and creates a
// builder for the named dialect.
func NewBuilder(dialectName string, conn ConnectionInfo, opts ...Option) (*Builder, error) {
	db, err := sql.Open(conn.Driver, conn.DSN)
	if err != nil {
		return nil, err
	}
	b, err := OpenBuilder(db, dialectName, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	b.conn = conn
	b.ownsDB = true
	return b, nil
}

// OpenBuilder creates a builder on an existing database handle. The handle
// stays owned by the caller.
func OpenBuilder(db *sql.DB, dialectName string, opts ...Option) (*Builder, error) {
	dialect, ok := getDialect(dialectName)
	if !ok {
		return nil, sqlerr.ErrInvalidDialect(dialectName)
	}
	b := &Builder{
		dialect:    dialect,
		db:         db,
		serializer: DefaultSerializer{},
		idColumn:   defaultIDColumn,
		cacheTTL:   5 * time.Minute,
		creating:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	b.schemaCache = cache.New(b.cacheTTL, 2*b.cacheTTL)
	return b, nil
}

// Close releases the database handle if the builder owns it.
func (b *Builder) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return sqlerr.ErrBuilderClosed
	}
	b.closed = true
	if b.ownsDB {
		return b.db.Close()
	}
	return nil
}

func (b *Builder) newStatement() baseStatement {
	executor := &sqlExecutor{db: b.db}
	return baseStatement{
		builder:  b,
		executor: executor,
		handler:  BuildChain(&coreHandler{executor: executor}, b.middlewares),
	}
}

// Create starts a CREATE TABLE statement.
func (b *Builder) Create() *Create {
	return &Create{baseStatement: b.newStatement()}
}

// Insert starts an INSERT statement.
func (b *Builder) Insert() *Insert {
	return &Insert{baseStatement: b.newStatement()}
}

// Update starts an UPDATE statement.
func (b *Builder) Update() *Update {
	return &Update{baseStatement: b.newStatement()}
}

// Delete starts a DELETE statement.
func (b *Builder) Delete() *Delete {
	return &Delete{baseStatement: b.newStatement()}
}

// Select starts a SELECT statement over the given output columns.
func (b *Builder) Select(columns ...ColumnID) *Select {
	return &Select{baseStatement: b.newStatement(), columns: columns}
}

// HasTable checks whether the table exists. Results are cached for the
// configured TTL; DDL operations through this builder invalidate the cache.
func (b *Builder) HasTable(ctx context.Context, name string) (bool, error) {
	table := strings.ToUpper(name)
	key := "table:" + table
	if cached, found := b.schemaCache.Get(key); found {
		return cached.(bool), nil
	}
	rows, err := b.db.QueryContext(ctx, b.dialect.TableExistsSQL(table))
	if err != nil {
		return false, err
	}
	defer rows.Close()
	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, err
	}
	b.schemaCache.Set(key, exists, b.cacheTTL)
	return exists, nil
}

// HasColumn checks whether the column is present on the table.
func (b *Builder) HasColumn(ctx context.Context, table, column string) (bool, error) {
	names, err := b.columnNames(ctx, table)
	if err != nil {
		return false, err
	}
	wanted := strings.ToUpper(column)
	for _, name := range names {
		if strings.ToUpper(name) == wanted {
			return true, nil
		}
	}
	return false, nil
}

// ColumnCount reports the number of columns of the table.
func (b *Builder) ColumnCount(ctx context.Context, table string) (int, error) {
	names, err := b.columnNames(ctx, table)
	if err != nil {
		return 0, err
	}
	return len(names), nil
}

// AllTableNames lists every table of the database.
func (b *Builder) AllTableNames(ctx context.Context) ([]string, error) {
	return b.queryCatalog(ctx, b.dialect.AllTablesSQL())
}

// DropTable drops the table and reports whether it existed. A missing table
// is not an error here.
func (b *Builder) DropTable(ctx context.Context, name string) (bool, error) {
	table := strings.ToUpper(name)
	exists, err := b.HasTable(ctx, table)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	stmt := b.newStatement()
	stmt.setTable(table)
	f := newFormatter(b.dialect, b.idColumn, ConstDropTable).AppendTableName(table)
	if _, err := stmt.execute(ctx, f, StatementExec, "DROP"); err != nil {
		return false, err
	}
	b.invalidateTable(table)
	b.schemaCache.Set("table:"+table, false, b.cacheTTL)
	return true, nil
}

// AddColumn adds a column to the table.
func (b *Builder) AddColumn(ctx context.Context, table string, def ColumnDef) error {
	name := strings.ToUpper(table)
	stmt := b.newStatement()
	stmt.setTable(name)
	f := newFormatter(b.dialect, b.idColumn, ConstAlterTable).
		AppendTableName(name).
		AppendConstant(ConstAddColumn)
	def.writeTo(f)
	if _, err := stmt.execute(ctx, f, StatementExec, "ALTER"); err != nil {
		return err
	}
	b.invalidateTable(name)
	return nil
}

// RemoveColumn removes a column from the table.
func (b *Builder) RemoveColumn(ctx context.Context, table string, column ColumnID) error {
	name := strings.ToUpper(table)
	stmt := b.newStatement()
	stmt.setTable(name)
	f := newFormatter(b.dialect, b.idColumn, ConstAlterTable).
		AppendTableName(name).
		AppendConstant(ConstDropColumn)
	f.pad()
	f.sb.WriteString(column.Name)
	if _, err := stmt.execute(ctx, f, StatementExec, "ALTER"); err != nil {
		return err
	}
	b.invalidateTable(name)
	return nil
}

// CreateTableIfNotExists executes the configured create statement only when
// the table is absent. Calling it for an existing table is a no-op.
func (b *Builder) CreateTableIfNotExists(ctx context.Context, name string, configure func(*Create)) error {
	exists, err := b.HasTable(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	create := b.Create().Table(name)
	configure(create)
	return create.Execute(ctx)
}

// ForTable pins a table name, yielding a single table convenience facade.
func (b *Builder) ForTable(name string) *TableBuilder {
	return &TableBuilder{builder: b, table: strings.ToUpper(name)}
}

func (b *Builder) columnNames(ctx context.Context, table string) ([]string, error) {
	name := strings.ToUpper(table)
	key := "columns:" + name
	if cached, found := b.schemaCache.Get(key); found {
		return cached.([]string), nil
	}
	names, err := b.queryCatalog(ctx, b.dialect.ColumnNamesSQL(name))
	if err != nil {
		return nil, err
	}
	b.schemaCache.Set(key, names, b.cacheTTL)
	return names, nil
}

// queryCatalog runs a catalog query and collects the first column of every
// row.
func (b *Builder) queryCatalog(ctx context.Context, query string) ([]string, error) {
	rows, err := b.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (b *Builder) noteTableExists(table string) {
	b.schemaCache.Set("table:"+table, true, b.cacheTTL)
	b.schemaCache.Delete("columns:" + table)
}

func (b *Builder) invalidateTable(table string) {
	b.schemaCache.Delete("table:" + table)
	b.schemaCache.Delete("columns:" + table)
}

func (b *Builder) markCreating(table string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.creating[table] = struct{}{}
}

func (b *Builder) unmarkCreating(table string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.creating, table)
}

func (b *Builder) isCreating(table string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, busy := b.creating[table]
	return busy
}
