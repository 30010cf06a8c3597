package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinSalary(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"80.000 - 120.000 MZN", 80000},
		{"60.000 - 90.000 MZN", 60000},
		{"100.000+ MZN", 100000},
		{"Comissão + Ajuda de Custo", 0},
		{"", 0},
		{"Até 45,500 MZN", 45500},
		{"1.234,56", 123456},
		{"99999999999999999999999", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinSalary(tt.in), tt.in)
	}
}

func TestSalaryRangeLabel(t *testing.T) {
	assert.Equal(t, "A combinar", SalaryRangeLabel(""))
	assert.Equal(t, "100.000+ MZN", SalaryRangeLabel("100.000+ MZN"))
}

func TestSalaryStats(t *testing.T) {
	st := SalaryStats(MockJobs)
	assert.Equal(t, 3, st.Count)
	assert.Equal(t, int64(60000), st.Min)
	assert.Equal(t, int64(100000), st.Max)
	assert.Equal(t, int64(80000), st.Mean)
	assert.Equal(t, int64(80000), st.Median)
	assert.Equal(t, "60,000 MZN", st.MinHuman)
	assert.Equal(t, "100,000 MZN", st.MaxHuman)
}

func TestSalaryStatsWithoutSalaries(t *testing.T) {
	assert.Equal(t, SalaryStat{}, SalaryStats([]Job{{ID: "1", SalaryRange: "A combinar"}}))
}
