package fiscal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocument(t *testing.T) *Document {
	t.Helper()
	d, err := NewDocument("company-1", OperationOut, Partner{ID: "p-1", Name: "Mercado Central LTDA"}, "", time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return d
}

func addLine(t *testing.T, d *Document, description, qty, price, pct string) *Line {
	t.Helper()
	q := dec(qty)
	seq := (len(d.Lines) + 1) * DefaultLineSequence
	line, err := d.AddLine(LineInput{Sequence: &seq, Description: description, Quantity: &q, UnitPrice: dec(price), TaxPercent: dec(pct)})
	require.NoError(t, err)
	return line
}

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		state   State
		isValid bool
	}{
		{StateDraft, true},
		{StateValidated, true},
		{StateTransmitted, true},
		{StateAuthorized, true},
		{StateDenied, true},
		{StateCanceled, true},
		{State("sent"), false},
		{State(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.state.IsValid())
		})
	}
}

func TestState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     State
		to       State
		canTrans bool
	}{
		// A partir de draft
		{StateDraft, StateValidated, true},
		{StateDraft, StateTransmitted, false},
		{StateDraft, StateAuthorized, false},
		{StateDraft, StateCanceled, false},
		// A partir de validated
		{StateValidated, StateTransmitted, true},
		{StateValidated, StateCanceled, true},
		{StateValidated, StateAuthorized, false},
		{StateValidated, StateDraft, false},
		// A partir de transmitted
		{StateTransmitted, StateAuthorized, true},
		{StateTransmitted, StateDenied, true},
		{StateTransmitted, StateCanceled, true},
		{StateTransmitted, StateValidated, true},
		{StateTransmitted, StateDraft, false},
		// A partir de authorized
		{StateAuthorized, StateCanceled, true},
		{StateAuthorized, StateDenied, false},
		{StateAuthorized, StateDraft, false},
		// Terminais
		{StateDenied, StateCanceled, false},
		{StateDenied, StateValidated, false},
		{StateCanceled, StateDraft, false},
		{StateCanceled, StateValidated, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.canTrans, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewDocument(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		d, err := NewDocument("company-1", "", Partner{ID: "p-1", Name: "Cliente"}, "", time.Time{})
		require.NoError(t, err)

		assert.Equal(t, StateDraft, d.State)
		assert.Equal(t, OperationOut, d.OperationType)
		assert.Equal(t, "BRL", d.CurrencyCode)
		assert.Empty(t, d.Number)
		assert.False(t, d.IssueDate.IsZero())
		assert.True(t, d.Total.IsZero())
	})

	t.Run("requires company", func(t *testing.T) {
		_, err := NewDocument("", OperationOut, Partner{ID: "p-1"}, "BRL", time.Now())
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("requires partner", func(t *testing.T) {
		_, err := NewDocument("company-1", OperationOut, Partner{}, "BRL", time.Now())
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("rejects unknown operation", func(t *testing.T) {
		_, err := NewDocument("company-1", OperationType("transfer"), Partner{ID: "p-1"}, "BRL", time.Now())
		assert.ErrorIs(t, err, ErrInvalidData)
	})
}

func TestDocument_LineMutationsRecomputeTotals(t *testing.T) {
	d := newTestDocument(t)

	first := addLine(t, d, "Café", "2", "10", "10")
	addLine(t, d, "Açúcar", "1", "5.50", "0")

	assert.True(t, dec("25.5").Equal(d.Untaxed))
	assert.True(t, dec("2").Equal(d.Tax))
	assert.True(t, d.Untaxed.Add(d.Tax).Equal(d.Total))

	q := dec("4")
	_, err := d.UpdateLine(first.ID, LineInput{Description: "Café", Quantity: &q, UnitPrice: dec("10"), TaxPercent: dec("10")})
	require.NoError(t, err)
	assert.True(t, dec("49.5").Equal(d.Total))

	require.NoError(t, d.RemoveLine(first.ID))
	assert.Len(t, d.Lines, 1)
	assert.True(t, dec("5.5").Equal(d.Total))
	assert.True(t, d.Untaxed.Add(d.Tax).Equal(d.Total))
}

func TestDocument_LinesOrderedBySequence(t *testing.T) {
	d := newTestDocument(t)
	late, early := 30, 5

	_, err := d.AddLine(LineInput{Sequence: &late, Description: "C", UnitPrice: dec("1")})
	require.NoError(t, err)
	_, err = d.AddLine(LineInput{Sequence: &early, Description: "A", UnitPrice: dec("1")})
	require.NoError(t, err)
	_, err = d.AddLine(LineInput{Description: "B", UnitPrice: dec("1")})
	require.NoError(t, err)

	require.Len(t, d.Lines, 3)
	assert.Equal(t, "A", d.Lines[0].Description)
	assert.Equal(t, "B", d.Lines[1].Description)
	assert.Equal(t, "C", d.Lines[2].Description)
}

func TestDocument_SameSequenceKeepsInsertionOrder(t *testing.T) {
	d := newTestDocument(t)
	want := []string{"Arroz", "Feijão", "Açúcar", "Café", "Leite", "Óleo"}
	for _, description := range want {
		_, err := d.AddLine(LineInput{Description: description, UnitPrice: dec("1")})
		require.NoError(t, err)
	}

	// Recarga a partir do banco chega em qualquer ordem
	reloaded := d.Clone()
	for i, j := 0, len(reloaded.Lines)-1; i < j; i, j = i+1, j-1 {
		reloaded.Lines[i], reloaded.Lines[j] = reloaded.Lines[j], reloaded.Lines[i]
	}
	reloaded.SortLines()

	for _, doc := range []*Document{d, reloaded} {
		got := make([]string, 0, len(doc.Lines))
		for _, l := range doc.Lines {
			assert.Equal(t, DefaultLineSequence, l.Sequence)
			got = append(got, l.Description)
		}
		assert.Equal(t, want, got)
	}
}

func TestDocument_LineErrors(t *testing.T) {
	d := newTestDocument(t)

	_, err := d.UpdateLine("missing", LineInput{Description: "x"})
	assert.ErrorIs(t, err, ErrLineNotFound)
	assert.ErrorIs(t, d.RemoveLine("missing"), ErrLineNotFound)

	d.State = StateAuthorized
	_, err = d.AddLine(LineInput{Description: "x"})
	assert.ErrorIs(t, err, ErrDocumentLocked)
}

func TestDocument_CloneIsIndependent(t *testing.T) {
	d := newTestDocument(t)
	addLine(t, d, "Leite", "1", "4", "0")
	d.XML = &Artifact{Content: []byte("<a/>"), Filename: "a.xml"}

	c := d.Clone()
	c.Lines[0].Description = "Outro"
	c.XML.Content[1] = 'b'

	assert.Equal(t, "Leite", d.Lines[0].Description)
	assert.Equal(t, "<a/>", string(d.XML.Content))
}
