package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	currency "github.com/malusev998/nbp-rates"
)

const MySQLTimeFormat = "2006-01-02 15:04:05"

var ErrNotEnoughBytesInGenerator = errors.New("id generator must return 16 bytes")

type (
	IDGenerator interface {
		Generate() []byte
	}

	uuidGenerator struct{}

	mysqlStorage struct {
		ctx         context.Context
		db          *sql.DB
		idGenerator IDGenerator
		tableName   string
	}
)

func (uuidGenerator) Generate() []byte {
	id := uuid.New()

	return id[:]
}

func NewMySQLStorage(config MySQLConfig) (currency.Storage, error) {
	db, err := sql.Open("mysql", config.ConnectionString)

	if err != nil {
		return nil, err
	}

	return NewSQLStorage(config.Cxt, db, config.IDGenerator, config.TableName, config.Migrate)
}

func NewSQLStorage(ctx context.Context, db *sql.DB, idGenerator IDGenerator, tableName string, migrate bool) (currency.Storage, error) {
	if idGenerator == nil {
		idGenerator = uuidGenerator{}
	}

	st := mysqlStorage{
		ctx:         contextOrBackground(ctx),
		db:          db,
		idGenerator: idGenerator,
		tableName:   tableName,
	}

	if migrate {
		if err := st.Migrate(); err != nil {
			return nil, err
		}
	}

	return st, nil
}

func (m mysqlStorage) newID() (uuid.UUID, error) {
	bytes := m.idGenerator.Generate()

	if len(bytes) != 16 {
		return uuid.Nil, ErrNotEnoughBytesInGenerator
	}

	return uuid.FromBytes(bytes)
}

func (m mysqlStorage) Store(rates []currency.Rate) ([]currency.RateWithID, error) {
	tx, err := m.db.BeginTx(m.ctx, nil)

	if err != nil {
		return nil, err
	}

	stmt, err := tx.PrepareContext(m.ctx, fmt.Sprintf(
		"INSERT INTO %s(id, iso, currency_name, rate, effective_date, created_at) VALUES (?,?,?,?,?,?);",
		m.tableName,
	))

	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	defer stmt.Close()

	now := time.Now().UTC().Truncate(time.Second)
	stored := make([]currency.RateWithID, 0, len(rates))

	for _, rate := range rates {
		id, err := m.newID()

		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}

		_, err = stmt.ExecContext(m.ctx, id.String(), rate.ISO, rate.CurrencyName, rate.Rate.String(), rate.Date, now.Format(MySQLTimeFormat))

		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}

		stored = append(stored, currency.RateWithID{
			Rate:      rate,
			ID:        id,
			CreatedAt: now,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return stored, nil
}

func (m mysqlStorage) Get(iso, dateFrom, dateTo string, page, perPage int64) ([]currency.RateWithID, error) {
	rows, err := m.db.QueryContext(m.ctx, fmt.Sprintf(
		"SELECT id, iso, currency_name, rate, DATE_FORMAT(effective_date, '%%Y-%%m-%%d'), created_at FROM %s "+
			"WHERE iso = ? AND effective_date BETWEEN ? AND ? ORDER BY effective_date LIMIT ? OFFSET ?;",
		m.tableName,
	), iso, dateFrom, dateTo, perPage, (page-1)*perPage)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	rates := make([]currency.RateWithID, 0, perPage)

	for rows.Next() {
		var (
			id        string
			rate      currency.RateWithID
			createdAt time.Time
			value     decimal.Decimal
		)

		if err := rows.Scan(&id, &rate.ISO, &rate.CurrencyName, &value, &rate.Date, &createdAt); err != nil {
			return nil, err
		}

		parsed, err := uuid.Parse(id)

		if err != nil {
			return nil, err
		}

		rate.ID = parsed
		rate.Rate.Rate = value
		rate.CreatedAt = createdAt
		rates = append(rates, rate)
	}

	return rates, rows.Err()
}

func (m mysqlStorage) Migrate() error {
	_, err := m.db.ExecContext(m.ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s(
	id CHAR(36) PRIMARY KEY,
	iso CHAR(3) NOT NULL,
	currency_name VARCHAR(255) NOT NULL,
	rate DECIMAL(18, 6) NOT NULL,
	effective_date DATE NOT NULL,
	created_at DATETIME NOT NULL,
	INDEX %s_iso_date (iso, effective_date)
);`, m.tableName, m.tableName))

	return err
}

func (m mysqlStorage) Drop() error {
	_, err := m.db.ExecContext(m.ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s;", m.tableName))

	return err
}

func (m mysqlStorage) Close() error {
	return m.db.Close()
}

func (m mysqlStorage) GetStorageProviderName() string {
	return string(MySQL)
}
