package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/9876691/accounts/ledger"
	"github.com/9876691/accounts/log"
	"github.com/9876691/accounts/money"
)

// Reader streams validated transactions out of a CSV source.
//
// Expected columns: type,client,tx,amount. The first row is the header.
// Dispute-family rows may omit the amount column entirely or leave it empty;
// a value there is ignored since the referenced transaction is authoritative.
type Reader struct {
	csv     *csv.Reader
	logger  log.Logger
	row     int
	dropped int
}

// NewReader wraps r. The logger receives one warn entry per dropped row.
func NewReader(r io.Reader, logger log.Logger) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	if logger == nil {
		logger = log.NewNop()
	}

	return &Reader{csv: cr, logger: logger}
}

// Next returns the next valid transaction, skipping dropped rows.
// It returns io.EOF when the source is exhausted.
func (r *Reader) Next(ctx context.Context) (ledger.Transaction, error) {
	for {
		record, err := r.csv.Read()
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				r.drop(ctx, parseErr.Line, "unparseable row", log.Err(err))
				continue
			}

			return ledger.Transaction{}, err
		}

		r.row++
		if r.row == 1 {
			continue // header
		}

		tx, ok := r.parse(ctx, record)
		if !ok {
			continue
		}

		return tx, nil
	}
}

// Dropped reports how many rows were discarded so far.
func (r *Reader) Dropped() int {
	return r.dropped
}

func (r *Reader) parse(ctx context.Context, record []string) (ledger.Transaction, bool) {
	if len(record) < 3 {
		r.drop(ctx, r.row, "too few columns", log.Int("columns", len(record)))
		return ledger.Transaction{}, false
	}

	kind, err := ledger.ParseKind(record[0])
	if err != nil {
		r.drop(ctx, r.row, "unrecognized transaction type", log.String("type", record[0]))
		return ledger.Transaction{}, false
	}

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		r.drop(ctx, r.row, "invalid client id", log.String("client", record[1]))
		return ledger.Transaction{}, false
	}

	id, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		r.drop(ctx, r.row, "invalid transaction id", log.String("tx", record[2]))
		return ledger.Transaction{}, false
	}

	tx := ledger.Transaction{
		Kind:   kind,
		Client: ledger.ClientID(client),
		ID:     ledger.TransactionID(id),
	}

	if kind.Fundable() {
		if len(record) < 4 || record[3] == "" {
			r.drop(ctx, r.row, "missing amount", log.String("type", string(kind)))
			return ledger.Transaction{}, false
		}

		amount, err := money.Parse(record[3])
		if err != nil {
			r.drop(ctx, r.row, "invalid amount", log.String("amount", record[3]), log.Err(err))
			return ledger.Transaction{}, false
		}

		if amount.IsNegative() {
			r.drop(ctx, r.row, "negative amount", log.String("amount", record[3]))
			return ledger.Transaction{}, false
		}

		tx.Amount = &amount
	}

	return tx, true
}

func (r *Reader) drop(ctx context.Context, row int, reason string, fields ...log.Field) {
	r.dropped++
	fields = append(fields, log.Int("row", row))
	r.logger.Log(ctx, log.LevelWarn, "dropping record: "+reason, fields...)
}
