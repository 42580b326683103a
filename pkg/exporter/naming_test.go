package exporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileNames(t *testing.T) {
	fri := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	sun := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "GBC 2024-01-05 Friday.docx", DayFileName("GBC", fri, ".docx"))
	assert.Equal(t, "SFC 2024-01-05 Friday to 2024-01-07 Sunday.xlsx", RangeFileName("SFC", fri, sun, ".xlsx"))
	assert.Equal(t, "GBC 2024-01-05 Friday.xlsx", RangeFileName("GBC", fri, fri, ".xlsx"))
}
