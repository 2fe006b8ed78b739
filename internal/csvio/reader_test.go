// internal/csvio/reader_test.go
//
// Boundary validation tests: well-formed rows come out typed, malformed
// rows come out as skippable ErrBadRow errors, and the stream survives
// them.

package csvio

import (
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments/internal/engine"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func readAll(t *testing.T, in string) (txs []engine.Transaction, skipped []error) {
	t.Helper()
	r := NewReader(strings.NewReader(in))
	for {
		tx, err := r.Read()
		if err == io.EOF {
			return txs, skipped
		}
		if err != nil {
			require.ErrorIs(t, err, ErrBadRow)
			skipped = append(skipped, err)
			continue
		}
		txs = append(txs, tx)
	}
}

func TestReadWellFormedLog(t *testing.T) {
	in := "type,client,tx,amount\n" +
		"deposit,1,1,10.0\n" +
		"withdrawal, 1, 2, 2.5\n" +
		"dispute,1,1,\n" +
		"resolve,1,1,\n" +
		"chargeback,1,1\n"

	txs, skipped := readAll(t, in)
	require.Empty(t, skipped)
	require.Len(t, txs, 5)

	assert.Equal(t, engine.Deposit, txs[0].Kind)
	assert.Equal(t, uint16(1), txs[0].Client)
	assert.Equal(t, uint32(1), txs[0].TX)
	assert.True(t, txs[0].Amount.Equal(decimalFromString(t, "10")))

	assert.Equal(t, engine.Withdrawal, txs[1].Kind)
	assert.True(t, txs[1].Amount.Equal(decimalFromString(t, "2.5")))

	assert.Equal(t, engine.Dispute, txs[2].Kind)
	assert.Equal(t, engine.Resolve, txs[3].Kind)
	assert.Equal(t, engine.Chargeback, txs[4].Kind)
	assert.True(t, txs[4].Amount.IsZero())
}

func TestReadWithoutHeader(t *testing.T) {
	txs, skipped := readAll(t, "deposit,7,9,1.2345\n")
	require.Empty(t, skipped)
	require.Len(t, txs, 1)
	assert.Equal(t, uint16(7), txs[0].Client)
	assert.Equal(t, uint32(9), txs[0].TX)
}

func TestReadSkipsMalformedRows(t *testing.T) {
	in := "type,client,tx,amount\n" +
		"deposit,1,1,10.0\n" +
		"teleport,1,2,1.0\n" + // unknown type
		"deposit,abc,3,1.0\n" + // bad client id
		"deposit,1,def,1.0\n" + // bad tx id
		"deposit,1,4\n" + // missing amount
		"deposit,1,5,\n" + // empty amount
		"deposit,1,6,ten\n" + // unparseable amount
		"deposit,1,7,-3.0\n" + // negative amount
		"deposit,70000,8,1.0\n" + // client id over uint16
		"withdrawal,1,9,5.0\n"

	txs, skipped := readAll(t, in)
	assert.Len(t, skipped, 8)
	require.Len(t, txs, 2)
	assert.Equal(t, engine.Deposit, txs[0].Kind)
	assert.Equal(t, engine.Withdrawal, txs[1].Kind)
}

func TestReferenceRowAmountIsIgnored(t *testing.T) {
	txs, skipped := readAll(t, "deposit,1,1,10.0\ndispute,1,1,99.0\n")
	require.Empty(t, skipped)
	require.Len(t, txs, 2)
	assert.True(t, txs[1].Amount.IsZero())
}

func TestEmptyInput(t *testing.T) {
	txs, skipped := readAll(t, "")
	assert.Empty(t, txs)
	assert.Empty(t, skipped)

	txs, skipped = readAll(t, "type,client,tx,amount\n")
	assert.Empty(t, txs)
	assert.Empty(t, skipped)
}
