package cik

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements sql.Scanner. BIGINT columns arrive as int64 and go through
// Build; TEXT and BYTEA columns go through Parse. NULL is rejected; read
// nullable columns with sql.Null[cik.CIK].
func (c *CIK) Scan(src any) error {
	var (
		decoded CIK
		err     error
	)
	switch v := src.(type) {
	case int64:
		if v < 0 {
			err = ErrNegative
			break
		}
		decoded, err = Build(uint64(v))
	case string:
		decoded, err = Parse(v)
	case []byte:
		decoded, err = Parse(string(v))
	default:
		err = ErrUnsupported
	}
	if err != nil {
		return decodeError("sql", scanInput(src), err)
	}
	*c = decoded
	return nil
}

// SQLValue adapts a CIK to driver.Valuer. CIK cannot implement Valuer itself
// since its Value method returns the plain integer.
type SQLValue CIK

// SQL returns c as a query argument stored as BIGINT.
//
//	db.ExecContext(ctx, `INSERT INTO filers (cik) VALUES ($1)`, cik.SQL(c))
func SQL(c CIK) SQLValue {
	return SQLValue(c)
}

// Value implements driver.Valuer.
func (v SQLValue) Value() (driver.Value, error) {
	if CIK(v).IsZero() {
		return nil, ErrZero
	}
	// MaxValue fits comfortably in int64.
	return int64(v.value), nil
}

func scanInput(src any) string {
	if b, ok := src.([]byte); ok {
		return string(b)
	}
	return fmt.Sprintf("%v", src)
}
