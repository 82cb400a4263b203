package mailsift_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/mailsift"
	"github.com/optimode/mailsift/types"
)

func record(pairs ...string) types.Record {
	var r types.Record
	for i := 0; i < len(pairs); i += 2 {
		r = append(r, types.Field{Column: pairs[i], Value: pairs[i+1]})
	}
	return r
}

func TestReconcile_AttachesMatchingRow(t *testing.T) {
	rows := []types.Record{
		record("Name", "Alice", "Email", "alice@example.com"),
		record("Name", "Bob", "Email", "bob@example.com"),
	}
	results := []types.Result{
		{Email: "bob@example.com", Status: mailsift.StatusValid},
		{Email: "alice@example.com", Status: mailsift.StatusInvalid},
	}

	reconciled := mailsift.Reconcile(results, rows)
	require.Len(t, reconciled, 2)

	name, _ := reconciled[0].Record.Get("Name")
	assert.Equal(t, "Bob", name)
	name, _ = reconciled[1].Record.Get("Name")
	assert.Equal(t, "Alice", name)
}

func TestReconcile_NoMatchYieldsEmptyRecord(t *testing.T) {
	rows := []types.Record{record("Email", "alice@example.com")}
	results := []types.Result{{Email: "ghost@example.com", Status: mailsift.StatusUnknown}}

	reconciled := mailsift.Reconcile(results, rows)
	require.Len(t, reconciled, 1)
	assert.Empty(t, reconciled[0].Record)
}

func TestReconcile_CaseInsensitive(t *testing.T) {
	rows := []types.Record{record("Email", "ALICE@Example.COM")}
	results := []types.Result{{Email: "alice@example.com", Status: mailsift.StatusValid}}

	reconciled := mailsift.Reconcile(results, rows)
	require.Len(t, reconciled[0].Record, 1)
}

func TestReconcile_FirstRowWins(t *testing.T) {
	rows := []types.Record{
		record("Note", "forwarded from alice@example.com", "Owner", "first"),
		record("Email", "alice@example.com", "Owner", "second"),
	}
	results := []types.Result{{Email: "alice@example.com", Status: mailsift.StatusValid}}

	reconciled := mailsift.Reconcile(results, rows)
	owner, _ := reconciled[0].Record.Get("Owner")
	assert.Equal(t, "first", owner)
}

func TestReconcile_SubstringContainment(t *testing.T) {
	// a cell embedding the address inside a longer string still matches;
	// intentional, see the Reconcile doc comment
	rows := []types.Record{record("Email", "prefix-bob@example.com")}
	results := []types.Result{{Email: "bob@example.com", Status: mailsift.StatusValid}}

	reconciled := mailsift.Reconcile(results, rows)
	require.Len(t, reconciled[0].Record, 1)
}
