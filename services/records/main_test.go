package records

import (
	"context"
	"os"
	"testing"

	"github.com/mycolab/genbank/models"
	"github.com/mycolab/genbank/services/execution"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	commands []execution.Command
}

func (r *recordingRunner) Run(_ context.Context, cmd execution.Command) execution.Result {
	r.commands = append(r.commands, cmd)
	return execution.Result{Command: cmd.String()}
}

func TestFetcher(t *testing.T) {
	var cfg models.Config
	cfg.Efetch.Path = "/usr/local/bin/efetch"
	cfg.Efetch.Database = "nuccore"

	runner := &recordingRunner{}
	fetcher := NewFetcher(runner, &cfg)

	res := fetcher.Fetch(context.Background(), "MN123456.1", "/blast/fasta/abc.MN123456.1.xml")

	assert.True(t, res.Succeeded())
	require.Len(t, runner.commands, 1)
	assert.Equal(t,
		"/usr/local/bin/efetch -db nuccore -id MN123456.1 -format gb -mode xml > /blast/fasta/abc.MN123456.1.xml",
		runner.commands[0].String())
}

func TestParseRecord(t *testing.T) {
	t.Run("should extract organism, sequence and country qualifier", func(t *testing.T) {
		raw, err := os.ReadFile("testdata/MN123456.1.xml")
		require.NoError(t, err)

		record, err := ParseRecord(raw)

		require.NoError(t, err)
		assert.Equal(t, "Psilocybe cubensis", record.Organism)
		assert.Equal(t, "acgt-acg.tacg", record.Sequence)
		assert.Equal(t, "Mexico: Oaxaca", record.Location)
		assert.Contains(t, record.Metadata, "GBSet")
	})

	t.Run("should leave the location empty without a country qualifier", func(t *testing.T) {
		raw, err := os.ReadFile("testdata/OK987654.2.xml")
		require.NoError(t, err)

		record, err := ParseRecord(raw)

		require.NoError(t, err)
		assert.Equal(t, "Psilocybe mexicana", record.Organism)
		assert.Empty(t, record.Location)
	})

	t.Run("should reject content that is not XML", func(t *testing.T) {
		_, err := ParseRecord([]byte("Error: efetch failed"))

		assert.ErrorIs(t, err, ErrUnparseableRecord)
	})

	t.Run("should reject an empty file", func(t *testing.T) {
		_, err := ParseRecord([]byte{})

		assert.ErrorIs(t, err, ErrUnparseableRecord)
	})

	t.Run("should reject a record without organism", func(t *testing.T) {
		_, err := ParseRecord([]byte("<GBSet><GBSeq><GBSeq_locus>X1</GBSeq_locus></GBSeq></GBSet>"))

		assert.ErrorIs(t, err, ErrMissingOrganism)
	})

	t.Run("should use the first entry of a multi record set", func(t *testing.T) {
		raw := "<GBSet><GBSeq><GBSeq_organism>Amanita muscaria</GBSeq_organism><GBSeq_sequence>aaa</GBSeq_sequence></GBSeq>" +
			"<GBSeq><GBSeq_organism>Boletus edulis</GBSeq_organism></GBSeq></GBSet>"

		record, err := ParseRecord([]byte(raw))

		require.NoError(t, err)
		assert.Equal(t, "Amanita muscaria", record.Organism)
		assert.Equal(t, "aaa", record.Sequence)
	})
}
