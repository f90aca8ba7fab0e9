package ports

import "context"

// ValueSource yields the canonicalized values of one field across every
// record in a dataset. It is the single capability the aggregator needs,
// so tabular and JSON sources share one aggregation path.
type ValueSource interface {
	// Name returns the source stem used for derived output filenames.
	Name() string

	// FieldValues extracts the canonical value of field from each record,
	// in record order. A record without the field contributes the null
	// bucket. Fails when the field cannot exist at all (absent column)
	// or the source is not shaped like a record list.
	FieldValues(ctx context.Context, field string) ([]string, error)
}
