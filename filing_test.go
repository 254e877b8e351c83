package secmda_test

import (
	"testing"

	"github.com/fwojciec/secmda"
	"github.com/stretchr/testify/assert"
)

func TestFiling_URL(t *testing.T) {
	t.Parallel()

	f := &secmda.Filing{
		CIK:             "0000320193",
		AccessionNumber: "0000320193-24-000123",
		PrimaryDocument: "aapl-20240928.htm",
	}

	assert.Equal(t, "https://www.sec.gov/Archives/edgar/data/320193/000032019324000123/aapl-20240928.htm", f.URL())
}

func TestFiling_ReportName(t *testing.T) {
	t.Parallel()

	f := &secmda.Filing{ReportDate: "2024-06-29", Form: secmda.Form10Q}

	assert.Equal(t, "2024-06-29 10-Q", f.ReportName())
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, secmda.IsNotFound("Desired section not found."))
	assert.False(t, secmda.IsNotFound("Revenue increased 8%."))
}
