package canon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooksOrderIsContiguous(t *testing.T) {
	list := Books()
	require.Len(t, list, Size)

	seen := make(map[int]bool, Size)
	for i, b := range list {
		assert.Equal(t, i+1, b.Order, "book %s out of sequence", b.Name)
		assert.False(t, seen[b.Order], "order %d repeated", b.Order)
		seen[b.Order] = true
	}
}

func TestBooksReturnsCopy(t *testing.T) {
	list := Books()
	list[0].Name = "Changed"

	again := Books()
	assert.Equal(t, "Genesis", again[0].Name)
}

func TestDeuterocanonicalBooks(t *testing.T) {
	var got []string
	for _, b := range Books() {
		if b.IsDeuterocanonical {
			got = append(got, b.Name)
		}
	}
	want := []string{"Tobit", "Judith", "1 Maccabees", "2 Maccabees", "Wisdom", "Sirach", "Baruch"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("deuterocanonical books mismatch (-want +got):\n%s", diff)
	}
}

func TestTestamentSplit(t *testing.T) {
	var oldCount, newCount int
	for _, b := range Books() {
		switch b.Testament {
		case TestamentOld:
			oldCount++
		case TestamentNew:
			newCount++
		}
	}
	assert.Equal(t, 46, oldCount)
	assert.Equal(t, 27, newCount)
}

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Gn", "gn"},
		{"1 Sm", "1-sm"},
		{"RSV 2CE", "rsv-2ce"},
		{"  Acts ", "acts"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Key(tt.in), tt.in)
	}
}

func TestLookups(t *testing.T) {
	b, ok := ByName("1 Samuel")
	require.True(t, ok)
	assert.Equal(t, "1 Sm", b.Abbreviation)
	assert.Equal(t, 9, b.Order)

	b, ok = ByKey("1-KGS")
	require.True(t, ok)
	assert.Equal(t, "1 Kings", b.Name)

	b, ok = ByKey("1 kgs")
	require.True(t, ok)
	assert.Equal(t, "1 Kings", b.Name)

	_, ok = ByName("3 Kings")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	t.Run("static canon is valid", func(t *testing.T) {
		assert.NoError(t, Validate(Books()))
	})

	t.Run("74th book rejected", func(t *testing.T) {
		list := append(Books(), Descriptor{Name: "3 Maccabees", Abbreviation: "3 Mc", Order: 74})
		assert.ErrorIs(t, Validate(list), ErrCanonSize)
	})

	t.Run("missing book rejected", func(t *testing.T) {
		assert.ErrorIs(t, Validate(Books()[1:]), ErrCanonSize)
	})

	t.Run("duplicate abbreviation", func(t *testing.T) {
		list := Books()
		list[1].Abbreviation = list[0].Abbreviation
		assert.ErrorIs(t, Validate(list), ErrDuplicateCanonEntry)
	})

	t.Run("duplicate name", func(t *testing.T) {
		list := Books()
		list[5].Name = list[4].Name
		assert.ErrorIs(t, Validate(list), ErrDuplicateCanonEntry)
	})

	t.Run("abbreviations colliding only by case", func(t *testing.T) {
		list := Books()
		list[1].Abbreviation = "GN"
		assert.ErrorIs(t, Validate(list), ErrDuplicateCanonEntry)
	})

	t.Run("duplicate order", func(t *testing.T) {
		list := Books()
		list[2].Order = 2
		assert.ErrorIs(t, Validate(list), ErrOrderConflict)
	})

	t.Run("order out of range", func(t *testing.T) {
		list := Books()
		list[72].Order = 80
		assert.ErrorIs(t, Validate(list), ErrOrderConflict)
	})
}
