// internal/csvio/reader.go
//
// Decoding of the delimited transaction log into typed engine records.
// All shape validation lives here: the engine only ever sees records
// whose kind, ids and amount are well formed. Malformed rows are
// reported as ErrBadRow-wrapped errors so the caller can log and keep
// streaming; they are never fatal.
//
// Expected input, one transaction per row:
//
//	type,client,tx,amount
//	deposit,1,1,10.0
//	dispute,1,1,
//
// The amount column is required for deposit/withdrawal and ignored for
// dispute/resolve/chargeback. Whitespace around fields is tolerated.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"payments/internal/engine"
)

// ErrBadRow marks a row that failed shape validation. Callers skip such
// rows; the stream itself stays usable.
var ErrBadRow = errors.New("malformed transaction row")

// Reader streams typed transactions out of a CSV transaction log.
type Reader struct {
	csv    *csv.Reader
	row    int
	header bool
}

// NewReader wraps r. The first row is treated as the header when its
// first field is "type".
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	// Reference rows legitimately omit the amount column.
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Read returns the next well-formed transaction. It returns io.EOF at
// the end of the stream and an ErrBadRow-wrapped error for a row that
// fails validation; only I/O failures are anything else.
func (r *Reader) Read() (engine.Transaction, error) {
	for {
		record, err := r.csv.Read()
		if err == io.EOF {
			return engine.Transaction{}, io.EOF
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return engine.Transaction{}, fmt.Errorf("%w: line %d: %v", ErrBadRow, parseErr.Line, parseErr.Err)
		}
		if err != nil {
			return engine.Transaction{}, err
		}

		r.row++
		if r.row == 1 && !r.header && strings.TrimSpace(record[0]) == "type" {
			r.header = true
			continue
		}
		return r.parse(record)
	}
}

func (r *Reader) parse(record []string) (engine.Transaction, error) {
	if len(record) < 3 {
		return engine.Transaction{}, fmt.Errorf("%w: row %d: want at least 3 fields, got %d", ErrBadRow, r.row, len(record))
	}

	kind, ok := engine.ParseKind(strings.TrimSpace(record[0]))
	if !ok {
		return engine.Transaction{}, fmt.Errorf("%w: row %d: unknown type %q", ErrBadRow, r.row, record[0])
	}

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return engine.Transaction{}, fmt.Errorf("%w: row %d: bad client id %q", ErrBadRow, r.row, record[1])
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return engine.Transaction{}, fmt.Errorf("%w: row %d: bad tx id %q", ErrBadRow, r.row, record[2])
	}

	out := engine.Transaction{
		Kind:   kind,
		Client: uint16(client),
		TX:     uint32(tx),
	}

	// Amount is only meaningful for deposit/withdrawal; anything a
	// reference row carries in that column is discarded.
	if kind == engine.Deposit || kind == engine.Withdrawal {
		if len(record) < 4 || strings.TrimSpace(record[3]) == "" {
			return engine.Transaction{}, fmt.Errorf("%w: row %d: %s without amount", ErrBadRow, r.row, kind)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(record[3]))
		if err != nil {
			return engine.Transaction{}, fmt.Errorf("%w: row %d: bad amount %q", ErrBadRow, r.row, record[3])
		}
		if amount.IsNegative() {
			return engine.Transaction{}, fmt.Errorf("%w: row %d: negative amount %q", ErrBadRow, r.row, record[3])
		}
		out.Amount = amount
	}
	return out, nil
}
