package mfclassic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCanonicalizes(t *testing.T) {
	d, err := Validate([]SectorText{
		{Number: 0, Body: join(strings.ToLower(uidLine), zeroLine, valueLine, trailerLine) + "\n"},
		{Number: 1, Unreadable: true},
	})
	require.NoError(t, err)
	assert.True(t, d.Validated())
	assert.Equal(t, join("+Sector: 0", uidLine, zeroLine, valueLine, trailerLine, "+Sector: 1", "*"), d.String())
}

func TestValidateStatus(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Status
	}{
		{"ok", join(zeroLine, zeroLine, zeroLine, trailerLine), StatusOK},
		{"three lines", join(zeroLine, zeroLine, trailerLine), StatusWrongBlockCount},
		{"empty body", "", StatusWrongBlockCount},
		{"non hex", join(zeroLine, "G"+zeroLine[1:], zeroLine, trailerLine), StatusNonHexCharacter},
		{"short line", join(zeroLine, zeroLine[1:], zeroLine, trailerLine), StatusWrongLineLength},
		{"long line", join(zeroLine, zeroLine, zeroLine+"0", trailerLine), StatusWrongLineLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Validate([]SectorText{{Number: 1, Body: tt.body}})
			assert.Equal(t, tt.want, StatusOf(err))
			if tt.want == StatusOK {
				assert.NotNil(t, d)
			} else {
				assert.Nil(t, d)
			}
		})
	}
}

func TestValidateAllOrNothing(t *testing.T) {
	d, err := Validate([]SectorText{
		{Number: 0, Body: join(uidLine, zeroLine, "zz"+zeroLine[2:], trailerLine)},
		{Number: 1, Body: join(zeroLine, trailerLine)},
	})
	assert.Nil(t, d)
	assert.Equal(t, StatusNonHexCharacter, StatusOf(err))

	var de *DumpError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 0, de.Sector)
	assert.Equal(t, 3, de.Line)
}

func TestValidateStructure(t *testing.T) {
	_, err := Validate(nil)
	assert.ErrorIs(t, err, ErrMissingHeader)
	assert.Equal(t, StatusInvalid, StatusOf(err))

	body := join(zeroLine, zeroLine, zeroLine, trailerLine)
	_, err = Validate([]SectorText{{Number: 2, Body: body}, {Number: 1, Body: body}})
	assert.ErrorIs(t, err, ErrMalformedHeader)

	d, err := Validate([]SectorText{{Number: -1, Body: body}})
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrMalformedHeader)

	d, err = Validate([]SectorText{{Number: 1, Unreadable: true, Body: body}})
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrInvalidSectorSize)

	d, err = Validate([]SectorText{{Number: 1, Unreadable: true, Body: "\n"}})
	require.NoError(t, err)
	assert.True(t, d.Sectors[0].Unreadable)
}

func TestValidateOutputParses(t *testing.T) {
	body := join(zeroLine, zeroLine, zeroLine, trailerLine)
	for _, sectors := range [][]SectorText{
		{{Number: 0, Body: body}},
		{{Number: 0, Unreadable: true}, {Number: 7, Body: body}},
	} {
		d, err := Validate(sectors)
		require.NoError(t, err)
		again, err := ParseText(d.String())
		require.NoError(t, err)
		assert.True(t, d.Equal(again))
	}
}

func TestValidateTextIdempotent(t *testing.T) {
	lines := []string{"+Sector: 0", strings.ToLower(uidLine), zeroLine, valueLine, trailerLine, "+Sector: 1", "*"}
	first, err := ValidateText(join(lines...) + "\r\n")
	require.NoError(t, err)
	second, err := ValidateText(first.String())
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
}

func TestTextsRoundTrip(t *testing.T) {
	d := mixedDump(t)
	again, err := Validate(d.Texts())
	require.NoError(t, err)
	assert.True(t, d.Equal(again))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Contains(t, StatusWrongBlockCount.String(), "4 or 16")
	assert.Contains(t, StatusWrongLineLength.String(), "32 characters")
}
