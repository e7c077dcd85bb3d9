package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/botica"
	"github.com/fwojciec/botica/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where ReportWriter is expected
	var _ botica.ReportWriter = &mock.ReportWriter{}
}

func TestReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteReportFn", func(t *testing.T) {
		t.Parallel()

		var calledWith []*botica.ProductRecord
		w := &mock.ReportWriter{
			WriteReportFn: func(_ context.Context, records []*botica.ProductRecord) error {
				calledWith = records
				return nil
			},
		}

		records := []*botica.ProductRecord{
			{Name: "PARACETAMOL 500MG", URL: "https://example.com/p/paracetamol", Detail: botica.NewDetail()},
		}

		err := w.WriteReport(context.Background(), records)

		require.NoError(t, err)
		assert.Equal(t, records, calledWith)
	})

	t.Run("returns error from WriteReportFn", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("disk full")
		w := &mock.ReportWriter{
			WriteReportFn: func(_ context.Context, _ []*botica.ProductRecord) error {
				return expectedErr
			},
		}

		err := w.WriteReport(context.Background(), nil)

		assert.ErrorIs(t, err, expectedErr)
	})
}
