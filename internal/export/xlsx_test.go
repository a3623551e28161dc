package export

import (
	"bytes"
	"testing"

	"quiz-dump/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	questions := []domain.Question{
		{
			ID: "935", Topic: "1", Question: "Which two? (Choose two.)",
			Options:             []string{"A. a", "B. b", "C. c"},
			CorrectAnswer:       domain.StringPtr("BC"),
			SuggestedAnswerText: domain.StringPtr("Most Voted: BC (80%)"),
			DiscussionLink:      domain.StringPtr("https://example.com/discussions/935"),
			IsMultiselect:       true,
			ExpectedCount:       2,
		},
		{
			ID: "12", Topic: "2", Question: "=SUM(A1)", Options: []string{"A. a"}, ExpectedCount: 1,
			DiscussionLink: domain.StringPtr(`=HYPERLINK("https://evil.example","open")`),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, questions))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ID", "Topic", "Question", "Options", "Correct", "Suggested", "Link", "Multiselect", "Expected"}, rows[0])
	assert.Equal(t, "935", rows[1][0])
	assert.Equal(t, "A. a\nB. b\nC. c", rows[1][3])
	assert.Equal(t, "BC", rows[1][4])
	assert.Equal(t, "https://example.com/discussions/935", rows[1][6])
	assert.Equal(t, "TRUE", rows[1][7])
	assert.Equal(t, "2", rows[1][8])

	assert.Equal(t, "'=SUM(A1)", rows[2][2])
	assert.Equal(t, "", rows[2][4])
	assert.Equal(t, `'=HYPERLINK("https://evil.example","open")`, rows[2][6])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
