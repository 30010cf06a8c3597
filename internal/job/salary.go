package job

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	humanize "github.com/dustin/go-humanize"
)

const SalaryCurrency = "MZN"

var salaryTokenRe = regexp.MustCompile(`\d[\d.,]*`)

// MinSalary extracts the leading amount of a free text salary range such as
// "80.000 - 120.000 MZN". Dots and commas inside the token are thousands
// separators. Ranges without a number, or with one too large to fit an
// int64, yield 0.
func MinSalary(salaryRange string) int64 {
	token := salaryTokenRe.FindString(salaryRange)
	if token == "" {
		return 0
	}
	digits := strings.NewReplacer(".", "", ",", "").Replace(token)
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// SalaryRangeLabel is what listings show for a job salary.
func SalaryRangeLabel(salaryRange string) string {
	if strings.TrimSpace(salaryRange) == "" {
		return "A combinar"
	}
	return salaryRange
}

type SalaryStat struct {
	Count     int    `json:"count"`
	Min       int64  `json:"min"`
	Max       int64  `json:"max"`
	Mean      int64  `json:"mean"`
	Median    int64  `json:"median"`
	MinHuman  string `json:"minHuman"`
	MaxHuman  string `json:"maxHuman"`
	MeanHuman string `json:"meanHuman"`
	P50Human  string `json:"medianHuman"`
}

// SalaryStats summarises the starting salaries of the jobs that advertise one.
func SalaryStats(jobs []Job) SalaryStat {
	var sample stats.Sample
	for _, j := range jobs {
		if v := MinSalary(j.SalaryRange); v > 0 {
			sample.Xs = append(sample.Xs, float64(v))
		}
	}
	if len(sample.Xs) == 0 {
		return SalaryStat{}
	}
	sort.Float64s(sample.Xs)
	sample.Sorted = true
	min, max := sample.Bounds()
	st := SalaryStat{
		Count:  len(sample.Xs),
		Min:    int64(math.Round(min)),
		Max:    int64(math.Round(max)),
		Mean:   int64(math.Round(sample.Mean())),
		Median: int64(math.Round(sample.Quantile(0.5))),
	}
	st.MinHuman = FormatSalary(st.Min)
	st.MaxHuman = FormatSalary(st.Max)
	st.MeanHuman = FormatSalary(st.Mean)
	st.P50Human = FormatSalary(st.Median)
	return st
}

// FormatSalary renders an amount the way filter chips show it, e.g. "80,000 MZN".
func FormatSalary(amount int64) string {
	return humanize.Comma(amount) + " " + SalaryCurrency
}
